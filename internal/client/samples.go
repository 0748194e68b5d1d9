package client

import (
	"context"
	"fmt"
	"iter"
	nethttp "net/http"

	"github.com/neusy/urwerk-client/internal/http"
	"github.com/neusy/urwerk-client/pkg/urwerk"
)

const (
	samplesPath     = "sensor/samples"
	colorspacesPath = "sensor/colorspaces"
)

// SamplesClient implements urwerk.SamplesClient.
type SamplesClient struct {
	httpClient *http.Client
}

// NewSamplesClient creates a new samples client.
func NewSamplesClient(httpClient *http.Client) *SamplesClient {
	return &SamplesClient{
		httpClient: httpClient,
	}
}

// Current implements urwerk.SamplesClient.Current.
func (c *SamplesClient) Current(ctx context.Context) (any, error) {
	result, err := c.httpClient.Get(ctx, urwerk.Path(samplesPath, "current"), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("getting current sample: %w", err)
	}

	return result, nil
}

// Stream implements urwerk.SamplesClient.Stream.
func (c *SamplesClient) Stream(ctx context.Context, opts urwerk.SampleStreamOptions) iter.Seq2[any, error] {
	return c.httpClient.Stream(ctx, &http.Request{
		Method:   nethttp.MethodGet,
		Endpoint: urwerk.Path(samplesPath),
		Params:   opts.Params(),
	})
}

// ColorspacesClient implements urwerk.ColorspacesClient.
// The current colorspace is a property of the current detection profile.
type ColorspacesClient struct {
	httpClient  *http.Client
	profiles    *DetectionProfilesClient
	colorspaces memo[[]any]
}

// NewColorspacesClient creates a new colorspaces client.
func NewColorspacesClient(httpClient *http.Client, profiles *DetectionProfilesClient) *ColorspacesClient {
	return &ColorspacesClient{
		httpClient: httpClient,
		profiles:   profiles,
	}
}

// Current implements urwerk.ColorspacesClient.Current.
func (c *ColorspacesClient) Current(ctx context.Context) (any, error) {
	profile, err := c.profiles.Current(ctx)
	if err != nil {
		return nil, err
	}

	return field(profile, "colorspace")
}

// Set implements urwerk.ColorspacesClient.Set.
func (c *ColorspacesClient) Set(ctx context.Context, spaceID string) (any, error) {
	return c.profiles.Change(ctx, urwerk.CurrentProfile, urwerk.Object{
		"colorspace": urwerk.Object{"space_id": spaceID},
	})
}

// List implements urwerk.ColorspacesClient.List.
func (c *ColorspacesClient) List(ctx context.Context) ([]any, error) {
	return c.colorspaces.get(ctx, func(ctx context.Context) ([]any, error) {
		result, err := c.httpClient.Get(ctx, urwerk.Path(colorspacesPath), nil, nil)
		if err != nil {
			return nil, fmt.Errorf("listing colorspaces: %w", err)
		}

		list, err := field(result, "colorspaces")
		if err != nil {
			return nil, err
		}

		return asList(list)
	})
}

// Get implements urwerk.ColorspacesClient.Get.
func (c *ColorspacesClient) Get(ctx context.Context, name string) (any, error) {
	result, err := c.httpClient.Get(ctx, urwerk.Path(colorspacesPath, name), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("getting colorspace %s: %w", name, err)
	}

	return result, nil
}
