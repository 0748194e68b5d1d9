// Package publish forwards streamed samples to a NATS subject.
package publish

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/nats-io/nats.go"
)

// Static errors for err113 compliance.
var (
	ErrSubjectRequired   = errors.New("subject required")
	ErrPublisherRequired = errors.New("publisher required")
)

// DefaultSubject is used when the caller does not name one.
const DefaultSubject = "urwerk.samples"

// Publisher is the subset of *nats.Conn used to forward samples.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Connect dials a NATS server for sample publishing.
func Connect(url string, opts ...nats.Option) (*nats.Conn, error) {
	opts = append([]nats.Option{
		nats.Name("urwerk-client"),
		nats.Timeout(5 * time.Second),
		nats.MaxReconnects(10),
	}, opts...)

	conn, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", url, err)
	}

	return conn, nil
}

// Samples publishes every sample of the stream as JSON on subject and
// returns how many were sent. It stops at the first stream, encode or
// publish error, or when ctx is done.
func Samples(ctx context.Context, publisher Publisher, subject string, samples iter.Seq2[any, error]) (int, error) {
	if publisher == nil {
		return 0, ErrPublisherRequired
	}

	if subject == "" {
		return 0, ErrSubjectRequired
	}

	sent := 0

	for sample, err := range samples {
		if err != nil {
			return sent, fmt.Errorf("reading sample stream: %w", err)
		}

		if err := ctx.Err(); err != nil {
			return sent, err
		}

		data, err := json.Marshal(sample)
		if err != nil {
			return sent, fmt.Errorf("encoding sample %d: %w", sent+1, err)
		}

		if err := publisher.Publish(subject, data); err != nil {
			return sent, fmt.Errorf("publishing sample %d to %s: %w", sent+1, subject, err)
		}

		sent++
	}

	return sent, nil
}

var _ Publisher = (*nats.Conn)(nil)
