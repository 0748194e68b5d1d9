package client

import (
	"context"
	"fmt"

	"github.com/neusy/urwerk-client/internal/http"
	"github.com/neusy/urwerk-client/pkg/urwerk"
)

const matchersPath = "sensor/matchers"

// MatchersClient implements urwerk.MatchersClient.
type MatchersClient struct {
	httpClient *http.Client
}

// NewMatchersClient creates a new matchers client.
func NewMatchersClient(httpClient *http.Client) *MatchersClient {
	return &MatchersClient{
		httpClient: httpClient,
	}
}

// List implements urwerk.MatchersClient.List.
func (c *MatchersClient) List(ctx context.Context, profileID string) ([]urwerk.Object, error) {
	result, err := c.httpClient.Get(ctx, urwerk.Path(matchersPath), profileParams(profileID), nil)
	if err != nil {
		return nil, fmt.Errorf("listing matchers: %w", err)
	}

	list, err := field(result, "matchers")
	if err != nil {
		return nil, err
	}

	matchers, err := asObjects(list)
	if err != nil {
		return nil, err
	}

	sortByKey(matchers, "uuid")

	return matchers, nil
}

// Get implements urwerk.MatchersClient.Get.
func (c *MatchersClient) Get(ctx context.Context, matcherID, profileID string) (any, error) {
	result, err := c.httpClient.Get(ctx, urwerk.Path(matchersPath, matcherID), profileParams(profileID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting matcher %s: %w", matcherID, err)
	}

	return result, nil
}

// Create implements urwerk.MatchersClient.Create.
func (c *MatchersClient) Create(ctx context.Context, profileID string, data urwerk.Object) (any, error) {
	result, err := c.httpClient.Post(ctx, urwerk.Path(matchersPath), withProfile(data, profileID), nil)
	if err != nil {
		return nil, fmt.Errorf("creating matcher: %w", err)
	}

	return result, nil
}

// Change implements urwerk.MatchersClient.Change.
func (c *MatchersClient) Change(ctx context.Context, matcherID string, data urwerk.Object, profileID string) (any, error) {
	result, err := c.httpClient.Put(ctx, urwerk.Path(matchersPath, matcherID), withProfile(data, profileID), nil)
	if err != nil {
		return nil, fmt.Errorf("changing matcher %s: %w", matcherID, err)
	}

	return result, nil
}

// Delete implements urwerk.MatchersClient.Delete.
func (c *MatchersClient) Delete(ctx context.Context, matcherID, profileID string) (any, error) {
	result, err := c.httpClient.Delete(ctx, urwerk.Path(matchersPath, matcherID), profileParams(profileID), nil)
	if err != nil {
		return nil, fmt.Errorf("deleting matcher %s: %w", matcherID, err)
	}

	return result, nil
}

// DeleteAll implements urwerk.MatchersClient.DeleteAll.
func (c *MatchersClient) DeleteAll(ctx context.Context) (any, error) {
	result, err := c.httpClient.Delete(ctx, urwerk.Path(matchersPath), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("deleting matchers: %w", err)
	}

	return result, nil
}

// SetOutputPattern implements urwerk.MatchersClient.SetOutputPattern.
func (c *MatchersClient) SetOutputPattern(ctx context.Context, matcherID string, states []any) (any, error) {
	if states == nil {
		states = []any{}
	}

	body := urwerk.Object{"output_pattern": urwerk.Object{"states": states}}

	result, err := c.httpClient.Put(ctx, urwerk.Path(matchersPath, matcherID), body, nil)
	if err != nil {
		return nil, fmt.Errorf("setting output pattern of matcher %s: %w", matcherID, err)
	}

	return result, nil
}

// OutputPattern implements urwerk.MatchersClient.OutputPattern.
func (c *MatchersClient) OutputPattern(ctx context.Context, matcherID string) (any, error) {
	return c.Get(ctx, matcherID, "")
}
