package client

import (
	"context"
	"fmt"

	"github.com/spf13/cast"

	"github.com/neusy/urwerk-client/internal/http"
	"github.com/neusy/urwerk-client/pkg/urwerk"
)

const (
	devicePath       = "device"
	capabilitiesPath = "sensor/capabilities"
)

// DeviceClient implements urwerk.DeviceClient.
type DeviceClient struct {
	httpClient *http.Client
	info       memo[urwerk.Object]
}

// NewDeviceClient creates a new device client.
func NewDeviceClient(httpClient *http.Client) *DeviceClient {
	return &DeviceClient{
		httpClient: httpClient,
	}
}

func (c *DeviceClient) record(ctx context.Context) (urwerk.Object, error) {
	return c.info.get(ctx, func(ctx context.Context) (urwerk.Object, error) {
		result, err := c.httpClient.Get(ctx, urwerk.Path(devicePath), nil, nil)
		if err != nil {
			return nil, fmt.Errorf("getting device info: %w", err)
		}

		return asObject(result)
	})
}

// Info implements urwerk.DeviceClient.Info.
func (c *DeviceClient) Info(ctx context.Context) (*urwerk.DeviceInfo, error) {
	record, err := c.record(ctx)
	if err != nil {
		return nil, err
	}

	info, err := decode[urwerk.DeviceInfo](record)
	if err != nil {
		return nil, fmt.Errorf("parsing device info: %w", err)
	}

	return &info, nil
}

func (c *DeviceClient) recordField(ctx context.Context, key string) (string, error) {
	record, err := c.record(ctx)
	if err != nil {
		return "", err
	}

	return stringField(record, key)
}

// DeviceID implements urwerk.DeviceClient.DeviceID.
func (c *DeviceClient) DeviceID(ctx context.Context) (string, error) {
	return c.recordField(ctx, "device_id")
}

// ModelKey implements urwerk.DeviceClient.ModelKey.
func (c *DeviceClient) ModelKey(ctx context.Context) (string, error) {
	return c.recordField(ctx, "model_key")
}

// ModelName implements urwerk.DeviceClient.ModelName.
func (c *DeviceClient) ModelName(ctx context.Context) (string, error) {
	return c.recordField(ctx, "model")
}

// Variant implements urwerk.DeviceClient.Variant.
func (c *DeviceClient) Variant(ctx context.Context) (string, error) {
	record, err := c.record(ctx)
	if err != nil {
		return "", err
	}

	return cast.ToString(record["variant"]), nil
}

// VendorName implements urwerk.DeviceClient.VendorName.
func (c *DeviceClient) VendorName(ctx context.Context) (string, error) {
	return c.recordField(ctx, "vendor")
}

// CapabilitiesClient implements urwerk.CapabilitiesClient.
type CapabilitiesClient struct {
	httpClient   *http.Client
	capabilities memo[urwerk.Object]
}

// NewCapabilitiesClient creates a new capabilities client.
func NewCapabilitiesClient(httpClient *http.Client) *CapabilitiesClient {
	return &CapabilitiesClient{
		httpClient: httpClient,
	}
}

func (c *CapabilitiesClient) record(ctx context.Context) (urwerk.Object, error) {
	return c.capabilities.get(ctx, func(ctx context.Context) (urwerk.Object, error) {
		result, err := c.httpClient.Get(ctx, urwerk.Path(capabilitiesPath), nil, nil)
		if err != nil {
			return nil, fmt.Errorf("getting capabilities: %w", err)
		}

		return asObject(result)
	})
}

// Get implements urwerk.CapabilitiesClient.Get.
func (c *CapabilitiesClient) Get(ctx context.Context) (*urwerk.Capabilities, error) {
	record, err := c.record(ctx)
	if err != nil {
		return nil, err
	}

	capabilities, err := decode[urwerk.Capabilities](record)
	if err != nil {
		return nil, fmt.Errorf("parsing capabilities: %w", err)
	}

	return &capabilities, nil
}

// OutputPinCount implements urwerk.CapabilitiesClient.OutputPinCount.
func (c *CapabilitiesClient) OutputPinCount(ctx context.Context) (int, error) {
	record, err := c.record(ctx)
	if err != nil {
		return 0, err
	}

	return decodeField[int](record, "output_pin_count")
}

// TriggerSources implements urwerk.CapabilitiesClient.TriggerSources.
func (c *CapabilitiesClient) TriggerSources(ctx context.Context) ([]any, error) {
	record, err := c.record(ctx)
	if err != nil {
		return nil, err
	}

	sources, err := field(record, "trigger_sources")
	if err != nil {
		return nil, err
	}

	return asList(sources)
}
