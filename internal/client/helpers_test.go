package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/neusy/urwerk-client/internal/http"
)

// recordedRequest is what the test device received.
type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// reply is the canned answer of the test device for one route. A string
// body is sent as text/plain unless ContentType says otherwise; any other
// non-nil body is sent as JSON.
type reply struct {
	Status      int
	ContentType string
	Body        any
}

// testDevice is an httptest server answering "METHOD /path" routes.
// Unknown routes get a 404.
type testDevice struct {
	server *httptest.Server

	mu       sync.Mutex
	routes   map[string]reply
	received []recordedRequest
}

func newTestDevice(t *testing.T, routes map[string]reply) *testDevice {
	t.Helper()

	device := &testDevice{routes: routes}
	device.server = httptest.NewServer(http.HandlerFunc(device.serve))
	t.Cleanup(device.server.Close)

	return device
}

func (d *testDevice) serve(writer http.ResponseWriter, request *http.Request) {
	body, _ := io.ReadAll(request.Body)

	d.mu.Lock()
	d.received = append(d.received, recordedRequest{
		Method: request.Method,
		Path:   request.URL.Path,
		Query:  request.URL.Query(),
		Header: request.Header.Clone(),
		Body:   body,
	})
	resp, found := d.routes[request.Method+" "+request.URL.Path]
	d.mu.Unlock()

	if !found {
		writer.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(writer, `{"errors": ["not found"]}`)

		return
	}

	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}

	switch payload := resp.Body.(type) {
	case nil:
		writer.WriteHeader(status)
	case string:
		contentType := resp.ContentType
		if contentType == "" {
			contentType = "text/plain; charset=utf-8"
		}

		writer.Header().Set("Content-Type", contentType)
		writer.WriteHeader(status)
		_, _ = io.WriteString(writer, payload)
	default:
		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(status)
		_ = json.NewEncoder(writer).Encode(payload)
	}
}

func (d *testDevice) httpClient() *internalhttp.Client {
	return internalhttp.NewClient(d.server.URL + "/api/v1/")
}

func (d *testDevice) requests() []recordedRequest {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]recordedRequest(nil), d.received...)
}

// apiPath prefixes a resource path with the root path used by httpClient.
func apiPath(path string) string {
	return "/api/v1/" + path
}

// route builds a routes key for method and resource path.
func route(method, path string) string {
	return method + " " + apiPath(path)
}

// operationTest describes one resource call against a test device.
type operationTest struct {
	Name   string
	Routes map[string]reply
	Call   func(ctx context.Context, imager *SpectralImager) (any, error)

	// Want is compared to the call result unless WantErr is set.
	Want    any
	WantErr error

	// WantRequest is the "METHOD /path" of the last request; empty skips
	// the request checks.
	WantRequest string
	WantQuery   url.Values
	// WantBody is the decoded JSON body; nil expects no body.
	WantBody map[string]any
}

// runOperationTests runs a series of resource operation tests.
func runOperationTests(t *testing.T, tests []operationTest) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			device := newTestDevice(t, testCase.Routes)
			imager := NewSpectralImager(device.httpClient())

			result, err := testCase.Call(context.Background(), imager)

			if testCase.WantErr != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, testCase.WantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, testCase.Want, result)
			}

			if testCase.WantRequest == "" {
				return
			}

			received := device.requests()
			require.NotEmpty(t, received)

			last := received[len(received)-1]
			assert.Equal(t, testCase.WantRequest, last.Method+" "+last.Path)

			if testCase.WantQuery == nil {
				assert.Empty(t, last.Query)
			} else {
				assert.Equal(t, testCase.WantQuery, last.Query)
			}

			if testCase.WantBody == nil {
				assert.Empty(t, last.Body)
			} else {
				var body map[string]any
				require.NoError(t, json.Unmarshal(last.Body, &body))
				assert.Equal(t, testCase.WantBody, body)
			}
		})
	}
}
