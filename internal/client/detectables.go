package client

import (
	"context"
	"fmt"

	"github.com/neusy/urwerk-client/internal/http"
	"github.com/neusy/urwerk-client/pkg/urwerk"
)

const (
	detectablesPath = "sensor/detectables"
	emittersPath    = "sensor/emitters"
)

// DetectablesClient implements urwerk.DetectablesClient.
type DetectablesClient struct {
	httpClient *http.Client
}

// NewDetectablesClient creates a new detectables client.
func NewDetectablesClient(httpClient *http.Client) *DetectablesClient {
	return &DetectablesClient{
		httpClient: httpClient,
	}
}

// List implements urwerk.DetectablesClient.List.
func (c *DetectablesClient) List(ctx context.Context, filter urwerk.DetectableFilter) ([]urwerk.Object, error) {
	result, err := c.httpClient.Get(ctx, urwerk.Path(detectablesPath), filter.Params(), nil)
	if err != nil {
		return nil, fmt.Errorf("listing detectables: %w", err)
	}

	list, err := field(result, "detectables")
	if err != nil {
		return nil, err
	}

	detectables, err := asObjects(list)
	if err != nil {
		return nil, err
	}

	sortByKey(detectables, "uuid")

	return detectables, nil
}

// Get implements urwerk.DetectablesClient.Get.
func (c *DetectablesClient) Get(ctx context.Context, detectableID, profileID string) (any, error) {
	result, err := c.httpClient.Get(ctx, urwerk.Path(detectablesPath, detectableID), profileParams(profileID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting detectable %s: %w", detectableID, err)
	}

	return result, nil
}

// Create implements urwerk.DetectablesClient.Create.
func (c *DetectablesClient) Create(ctx context.Context, profileID string, data urwerk.Object) (any, error) {
	result, err := c.httpClient.Post(ctx, urwerk.Path(detectablesPath), withProfile(data, profileID), nil)
	if err != nil {
		return nil, fmt.Errorf("creating detectable: %w", err)
	}

	return result, nil
}

// Change implements urwerk.DetectablesClient.Change.
func (c *DetectablesClient) Change(ctx context.Context, detectableID string, data urwerk.Object, profileID string) (any, error) {
	result, err := c.httpClient.Put(ctx, urwerk.Path(detectablesPath, detectableID), withProfile(data, profileID), nil)
	if err != nil {
		return nil, fmt.Errorf("changing detectable %s: %w", detectableID, err)
	}

	return result, nil
}

// Delete implements urwerk.DetectablesClient.Delete.
func (c *DetectablesClient) Delete(ctx context.Context, detectableID, profileID string) (any, error) {
	result, err := c.httpClient.Delete(ctx, urwerk.Path(detectablesPath, detectableID), profileParams(profileID), nil)
	if err != nil {
		return nil, fmt.Errorf("deleting detectable %s: %w", detectableID, err)
	}

	return result, nil
}

// DeleteAll implements urwerk.DetectablesClient.DeleteAll.
func (c *DetectablesClient) DeleteAll(ctx context.Context, filter urwerk.DetectableFilter) (any, error) {
	result, err := c.httpClient.Delete(ctx, urwerk.Path(detectablesPath), filter.Params(), nil)
	if err != nil {
		return nil, fmt.Errorf("deleting detectables: %w", err)
	}

	return result, nil
}

// EmittersClient implements urwerk.EmittersClient.
type EmittersClient struct {
	httpClient *http.Client
}

// NewEmittersClient creates a new emitters client.
func NewEmittersClient(httpClient *http.Client) *EmittersClient {
	return &EmittersClient{
		httpClient: httpClient,
	}
}

// List implements urwerk.EmittersClient.List.
func (c *EmittersClient) List(ctx context.Context, profileID string) (any, error) {
	result, err := c.httpClient.Get(ctx, urwerk.Path(emittersPath), profileParams(profileID), nil)
	if err != nil {
		return nil, fmt.Errorf("listing emitters: %w", err)
	}

	return result, nil
}

// Get implements urwerk.EmittersClient.Get.
func (c *EmittersClient) Get(ctx context.Context, emitterID, profileID string) (any, error) {
	result, err := c.httpClient.Get(ctx, urwerk.Path(emittersPath, emitterID), profileParams(profileID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting emitter %s: %w", emitterID, err)
	}

	return result, nil
}

// Change implements urwerk.EmittersClient.Change.
func (c *EmittersClient) Change(ctx context.Context, emitterID string, data urwerk.Object, profileID string) (any, error) {
	result, err := c.httpClient.Put(ctx, urwerk.Path(emittersPath, emitterID), withProfile(data, profileID), nil)
	if err != nil {
		return nil, fmt.Errorf("changing emitter %s: %w", emitterID, err)
	}

	return result, nil
}
