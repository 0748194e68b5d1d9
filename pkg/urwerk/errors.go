package urwerk

import (
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"net/http"

	"github.com/spf13/cast"
)

// Kind distinguishes the specializations of an API request error.
type Kind int

const (
	// KindRequest covers connection failures, unexpected status codes,
	// malformed or empty bodies and server-reported validation errors.
	KindRequest Kind = iota
	// KindAuthentication means credentials are missing or invalid.
	KindAuthentication
	// KindAuthorization means credentials are present but insufficient.
	KindAuthorization
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Sentinels matched by errors.Is against a *RequestError.
// ErrAPIRequest matches every kind.
var (
	ErrAPIRequest     = errors.New("api request error")
	ErrRequest        = errors.New("api request failed")
	ErrAuthentication = errors.New("api authentication required")
	ErrAuthorization  = errors.New("api authorization denied")
)

// Static errors for err113 compliance.
var (
	ErrAPIURLRequired       = errors.New("API URL is required")
	ErrConfigRequired       = errors.New("config is required")
	ErrInvalidParam         = errors.New("invalid query parameter")
	ErrInvalidBody          = errors.New("invalid request body")
	ErrMissingField         = errors.New("response field missing")
	ErrUnexpectedType       = errors.New("unexpected response type")
	ErrInvalidAddressDomain = errors.New("address domain must be ipv4 or ipv6")
	ErrInvalidConstants     = errors.New("invalid number of constants")
)

// RequestError is returned for every failed API call.
type RequestError struct {
	Kind       Kind
	URL        string
	Message    string
	StatusCode int
	Body       []byte
	Err        error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return e.Message
}

// Unwrap returns the underlying transport or decoding error, if any.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrAPIRequest or the sentinel for e.Kind.
func (e *RequestError) Is(target error) bool {
	switch target {
	case ErrAPIRequest:
		return true
	case ErrRequest:
		return e.Kind == KindRequest
	case ErrAuthentication:
		return e.Kind == KindAuthentication
	case ErrAuthorization:
		return e.Kind == KindAuthorization
	}

	return false
}

// FieldError is one normalized entry of an "errors" array in a response body.
type FieldError struct {
	Message string `json:"message"           yaml:"message"`
	Mapping string `json:"mapping,omitempty" yaml:"mapping,omitempty"`
	Code    string `json:"code,omitempty"    yaml:"code,omitempty"`
}

// Details parses the response body on demand and yields its embedded errors.
// A body that is not a JSON object with an "errors" array yields nothing.
func (e *RequestError) Details() iter.Seq[FieldError] {
	return func(yield func(FieldError) bool) {
		var envelope struct {
			Errors []any `json:"errors"`
		}

		if len(e.Body) == 0 || json.Unmarshal(e.Body, &envelope) != nil {
			return
		}

		for _, raw := range envelope.Errors {
			if !yield(normalizeFieldError(raw)) {
				return
			}
		}
	}
}

func normalizeFieldError(raw any) FieldError {
	switch v := raw.(type) {
	case map[string]any:
		return FieldError{
			Message: cast.ToString(v["message"]),
			Mapping: cast.ToString(v["mapping"]),
			Code:    cast.ToString(v["code"]),
		}
	default:
		return FieldError{Message: cast.ToString(v)}
	}
}

// NewConnectError reports a transport failure for url.
func NewConnectError(url string, err error) *RequestError {
	return &RequestError{
		Kind:    KindRequest,
		URL:     url,
		Message: fmt.Sprintf("api connect error (%s): %v", url, err),
		Err:     err,
	}
}

// NewHTTPError classifies an error status (>= 400) by its code.
func NewHTTPError(url string, statusCode int, body []byte) *RequestError {
	kind := KindRequest

	switch statusCode {
	case http.StatusUnauthorized:
		kind = KindAuthentication
	case http.StatusForbidden:
		kind = KindAuthorization
	}

	return &RequestError{
		Kind:       kind,
		URL:        url,
		Message:    fmt.Sprintf("api error (%s -> %d %s): %s", url, statusCode, http.StatusText(statusCode), body),
		StatusCode: statusCode,
		Body:       body,
	}
}

// NewStatusError reports a non-error status the client does not handle.
func NewStatusError(url string, statusCode int, body []byte) *RequestError {
	return &RequestError{
		Kind:       KindRequest,
		URL:        url,
		Message:    fmt.Sprintf("api status error (%s -> %s (%d)): %s", url, http.StatusText(statusCode), statusCode, body),
		StatusCode: statusCode,
		Body:       body,
	}
}

// NewEmptyResponseError reports a success response without a body.
func NewEmptyResponseError(url string) *RequestError {
	return &RequestError{
		Kind:    KindRequest,
		URL:     url,
		Message: "api empty response error: " + url,
	}
}

// NewDecodeError reports a body that is not valid JSON.
func NewDecodeError(url string, body []byte, err error) *RequestError {
	return &RequestError{
		Kind:    KindRequest,
		URL:     url,
		Message: fmt.Sprintf("api decode error (%s): %v", url, err),
		Body:    body,
		Err:     err,
	}
}

// NewEmbeddedError reports a response envelope carrying a non-empty "errors" key.
func NewEmbeddedError(url string, body []byte, embedded any) *RequestError {
	detail, err := json.Marshal(embedded)
	if err != nil {
		detail = []byte(fmt.Sprint(embedded))
	}

	return &RequestError{
		Kind:    KindRequest,
		URL:     url,
		Message: fmt.Sprintf("api response error: %s -> %s", url, detail),
		Body:    body,
	}
}

// NewStreamError reports a read failure in the middle of a streamed response.
func NewStreamError(url string, err error) *RequestError {
	return &RequestError{
		Kind:    KindRequest,
		URL:     url,
		Message: fmt.Sprintf("api stream error (%s): %v", url, err),
		Err:     err,
	}
}

// IsAuthentication checks if the error is an authentication error.
func IsAuthentication(err error) bool {
	return errors.Is(err, ErrAuthentication)
}

// IsAuthorization checks if the error is an authorization error.
func IsAuthorization(err error) bool {
	return errors.Is(err, ErrAuthorization)
}

// IsNotFound checks if the error carries a 404 status.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	reqErr := &RequestError{}
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode
	}

	return 0
}

// ResponseBody returns the raw response body carried by err, or nil.
func ResponseBody(err error) []byte {
	reqErr := &RequestError{}
	if errors.As(err, &reqErr) {
		return reqErr.Body
	}

	return nil
}
