package client

import (
	"context"
	"fmt"

	"github.com/neusy/urwerk-client/internal/http"
	"github.com/neusy/urwerk-client/pkg/urwerk"
)

const firmwarePath = "firmware"

// FirmwareClient implements urwerk.FirmwareClient.
type FirmwareClient struct {
	httpClient *http.Client
}

// NewFirmwareClient creates a new firmware client.
func NewFirmwareClient(httpClient *http.Client) *FirmwareClient {
	return &FirmwareClient{
		httpClient: httpClient,
	}
}

func (c *FirmwareClient) status(ctx context.Context) (any, error) {
	result, err := c.httpClient.Get(ctx, urwerk.Path(firmwarePath, "status"), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("getting firmware status: %w", err)
	}

	return result, nil
}

// Status implements urwerk.FirmwareClient.Status.
func (c *FirmwareClient) Status(ctx context.Context) (*urwerk.FirmwareStatus, error) {
	result, err := c.status(ctx)
	if err != nil {
		return nil, err
	}

	status, err := decode[urwerk.FirmwareStatus](result)
	if err != nil {
		return nil, fmt.Errorf("parsing firmware status: %w", err)
	}

	return &status, nil
}

func (c *FirmwareClient) statusField(ctx context.Context, key string) (string, error) {
	result, err := c.status(ctx)
	if err != nil {
		return "", err
	}

	return stringField(result, key)
}

// Version implements urwerk.FirmwareClient.Version.
func (c *FirmwareClient) Version(ctx context.Context) (string, error) {
	return c.statusField(ctx, "version")
}

// SourceURL implements urwerk.FirmwareClient.SourceURL.
func (c *FirmwareClient) SourceURL(ctx context.Context) (string, error) {
	return c.statusField(ctx, "source_url")
}

// BuildID implements urwerk.FirmwareClient.BuildID.
func (c *FirmwareClient) BuildID(ctx context.Context) (string, error) {
	return c.statusField(ctx, "build_id")
}

// RecoveryBuildID implements urwerk.FirmwareClient.RecoveryBuildID.
func (c *FirmwareClient) RecoveryBuildID(ctx context.Context) (string, error) {
	result, err := c.httpClient.Get(ctx, urwerk.Path(firmwarePath, "recovery"), nil, nil)
	if err != nil {
		return "", fmt.Errorf("getting recovery image: %w", err)
	}

	return stringField(result, "id")
}

// UpgradeRecoveryImage implements urwerk.FirmwareClient.UpgradeRecoveryImage.
func (c *FirmwareClient) UpgradeRecoveryImage(ctx context.Context) (any, error) {
	result, err := c.httpClient.Post(ctx, urwerk.Path(firmwarePath, "recovery", "upgrade-from-current"), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("upgrading recovery image: %w", err)
	}

	return result, nil
}
