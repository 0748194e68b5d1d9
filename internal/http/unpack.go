package http

import (
	"encoding/json"
	"io"
	"mime"
	"strings"

	"github.com/neusy/urwerk-client/pkg/urwerk"
)

const plainTextMediaType = "text/plain"

// Envelope keys, checked in this order.
const (
	errorsKey  = "errors"
	resultsKey = "results"
	dataKey    = "data"
)

// Handler consumes the body of a 200/201 response.
type Handler func(url string, body io.Reader, contentType string) (any, error)

// ReadAll reads the whole body and unpacks it.
func ReadAll(url string, body io.Reader, contentType string) (any, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, urwerk.NewStreamError(url, err)
	}

	return Unpack(url, data, contentType)
}

// Unpack turns a success body into its logical payload.
//
// Empty bodies are errors. A text/plain body is returned as a string.
// Otherwise the body is decoded as JSON and an object is unwrapped:
// a truthy "errors" value fails the call, then "results" and "data" are
// returned if present. Anything else is returned as decoded.
func Unpack(url string, body []byte, contentType string) (any, error) {
	if len(body) == 0 {
		return nil, urwerk.NewEmptyResponseError(url)
	}

	if isPlainText(contentType) {
		return string(body), nil
	}

	var value any

	err := json.Unmarshal(body, &value)
	if err != nil {
		return nil, urwerk.NewDecodeError(url, body, err)
	}

	object, ok := value.(map[string]any)
	if !ok {
		return value, nil
	}

	if embedded, found := object[errorsKey]; found && truthy(embedded) {
		return nil, urwerk.NewEmbeddedError(url, body, embedded)
	}

	if results, found := object[resultsKey]; found {
		return results, nil
	}

	if data, found := object[dataKey]; found {
		return data, nil
	}

	return object, nil
}

func isPlainText(contentType string) bool {
	if contentType == "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.TrimSpace(strings.Split(contentType, ";")[0])
	}

	return strings.EqualFold(mediaType, plainTextMediaType)
}

// truthy applies JSON truthiness: null, false, 0, "", [] and {} are false.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0
	case json.Number:
		return v.String() != "0"
	case string:
		return v != ""
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return true
	}
}
