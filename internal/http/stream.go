package http

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"iter"

	"github.com/neusy/urwerk-client/pkg/urwerk"
)

// StreamChunks yields one unpacked value per newline-delimited chunk of body.
// Blank lines are skipped. The first read or unpack error is yielded once
// and ends the sequence. Nothing is read ahead of the consumer.
func StreamChunks(url string, body io.Reader, contentType string) iter.Seq2[any, error] {
	return func(yield func(any, error) bool) {
		reader := bufio.NewReader(body)

		for {
			line, readErr := reader.ReadBytes('\n')

			chunk := bytes.TrimRight(line, "\r\n")
			if len(bytes.TrimSpace(chunk)) > 0 {
				value, err := Unpack(url, chunk, contentType)
				if err != nil {
					yield(nil, err)

					return
				}

				if !yield(value, nil) {
					return
				}
			}

			if readErr != nil {
				if !errors.Is(readErr, io.EOF) {
					yield(nil, urwerk.NewStreamError(url, readErr))
				}

				return
			}
		}
	}
}
