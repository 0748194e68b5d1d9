package client

import (
	"context"
	"fmt"

	"github.com/neusy/urwerk-client/internal/http"
	"github.com/neusy/urwerk-client/pkg/urwerk"
)

const systemPath = "system"

// SystemClient implements urwerk.SystemClient.
type SystemClient struct {
	httpClient *http.Client
	timeZones  memo[any]
}

// NewSystemClient creates a new system client.
func NewSystemClient(httpClient *http.Client) *SystemClient {
	return &SystemClient{
		httpClient: httpClient,
	}
}

// Get implements urwerk.SystemClient.Get.
func (c *SystemClient) Get(ctx context.Context) (urwerk.Object, error) {
	result, err := c.httpClient.Get(ctx, urwerk.Path(systemPath), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("getting system: %w", err)
	}

	return asObject(result)
}

// Change implements urwerk.SystemClient.Change.
func (c *SystemClient) Change(ctx context.Context, data urwerk.Object) (any, error) {
	result, err := c.httpClient.Put(ctx, urwerk.Path(systemPath), optionalBody(data), nil)
	if err != nil {
		return nil, fmt.Errorf("changing system: %w", err)
	}

	return result, nil
}

// Hostname implements urwerk.SystemClient.Hostname.
func (c *SystemClient) Hostname(ctx context.Context) (string, error) {
	system, err := c.Get(ctx)
	if err != nil {
		return "", err
	}

	return stringField(system, "hostname")
}

// SetHostname implements urwerk.SystemClient.SetHostname.
func (c *SystemClient) SetHostname(ctx context.Context, hostname string) (any, error) {
	return c.Change(ctx, urwerk.Object{"hostname": hostname})
}

// Reboot implements urwerk.SystemClient.Reboot.
func (c *SystemClient) Reboot(ctx context.Context) (any, error) {
	result, err := c.httpClient.Post(ctx, urwerk.Path(systemPath, "reboot"), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("rebooting: %w", err)
	}

	return result, nil
}

// FactoryReset implements urwerk.SystemClient.FactoryReset.
func (c *SystemClient) FactoryReset(ctx context.Context) (any, error) {
	result, err := c.httpClient.Post(ctx, urwerk.Path(systemPath, "factory-reset"), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("resetting to factory settings: %w", err)
	}

	return result, nil
}

// Time implements urwerk.SystemClient.Time.
func (c *SystemClient) Time(ctx context.Context) (any, error) {
	result, err := c.httpClient.Get(ctx, urwerk.Path(systemPath, "time"), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("getting system time: %w", err)
	}

	return result, nil
}

// ChangeTime implements urwerk.SystemClient.ChangeTime.
func (c *SystemClient) ChangeTime(ctx context.Context, data urwerk.Object) (any, error) {
	result, err := c.httpClient.Put(ctx, urwerk.Path(systemPath, "time"), optionalBody(data), nil)
	if err != nil {
		return nil, fmt.Errorf("changing system time: %w", err)
	}

	return result, nil
}

// TimeZones implements urwerk.SystemClient.TimeZones.
func (c *SystemClient) TimeZones(ctx context.Context) (any, error) {
	return c.timeZones.get(ctx, func(ctx context.Context) (any, error) {
		result, err := c.httpClient.Get(ctx, urwerk.Path(systemPath, "time/zones"), nil, nil)
		if err != nil {
			return nil, fmt.Errorf("getting time zones: %w", err)
		}

		return result, nil
	})
}
