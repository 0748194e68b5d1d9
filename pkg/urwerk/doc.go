// Package urwerk provides types, interfaces, and helpers for working with the
// HTTP API of urwerk colorsensors and spectral imagers.
//
// # Overview
//
// The urwerk package defines the resource client interfaces (e.g.,
// SystemClient, DetectablesClient, SpectralClient), the aggregates that
// expose them (Colorsensor, SpectralImager, DDB, Releases), and the error
// taxonomy shared by all calls. A concrete implementation is provided by the
// urwerkclient package, which wires configuration and transport. Most
// consumers should import urwerkclient to construct a client and then use the
// interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/neusy/urwerk-client/pkg/urwerk"
//	  "github.com/neusy/urwerk-client/pkg/urwerkclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  sensor, err := urwerkclient.NewColorsensor(&urwerk.Config{APIURL: "10.0.0.5/api/v1"})
//	  if err != nil { log.Fatal(err) }
//
//	  hostname, err := sensor.System().Hostname(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = hostname
//	}
//
// # Payloads
//
// Responses are decoded JSON: objects become Object (map[string]any), arrays
// []any, numbers float64. The API wraps most payloads in an envelope; the
// client returns the value of its "results" or "data" key. Endpoints served
// as text/plain return a string.
//
// # Streaming
//
// SamplesClient.Stream returns an iter.Seq2 that yields one decoded sample per
// line of a chunked response:
//
//	for sample, err := range sensor.Samples().Stream(ctx, urwerk.SampleStreamOptions{Count: 10}) {
//	  if err != nil { return err }
//	  fmt.Println(sample)
//	}
//
// Breaking out of the loop closes the connection.
//
// # Errors
//
// Every failed call returns a *RequestError, matched with errors.Is against
// ErrAPIRequest (all kinds), ErrRequest, ErrAuthentication (401) and
// ErrAuthorization (403). RequestError.Details yields the entries of an
// "errors" array in the response body. Resource clients wrap these errors
// with context; errors.Is and errors.As see through the wrapping.
//
// # Interceptors and metrics
//
// An InterceptorChain set on Config.Interceptors runs around every request.
// LoggingInterceptor, HeaderInterceptor and PrometheusMetrics are provided.
package urwerk
