package client

import (
	"context"
	"fmt"

	"github.com/neusy/urwerk-client/internal/http"
	"github.com/neusy/urwerk-client/pkg/urwerk"
)

const (
	constantsMaintenancePath = "maintenance/constants"
	serviceMaintenancePath   = "maintenance/services"

	normalizationConstantCount = 3
	calibrationConstantCount   = 48
)

func maintenanceHeaders(secret string) map[string]string {
	return urwerk.AuthHeader(urwerk.BasicAuth(urwerk.MaintenanceUser, secret))
}

// ConstantsMaintenanceClient implements urwerk.ConstantsMaintenanceClient.
type ConstantsMaintenanceClient struct {
	httpClient *http.Client
}

// NewConstantsMaintenanceClient creates a new constants maintenance client.
func NewConstantsMaintenanceClient(httpClient *http.Client) *ConstantsMaintenanceClient {
	return &ConstantsMaintenanceClient{
		httpClient: httpClient,
	}
}

func (c *ConstantsMaintenanceClient) values(ctx context.Context, secret, kind string) ([]float64, error) {
	result, err := c.httpClient.Get(ctx, urwerk.Path(constantsMaintenancePath, kind), nil, maintenanceHeaders(secret))
	if err != nil {
		return nil, fmt.Errorf("getting %s constants: %w", kind, err)
	}

	return decodeField[[]float64](result, "values")
}

func (c *ConstantsMaintenanceClient) setValues(ctx context.Context, secret, kind string, values []float64, count int) ([]float64, error) {
	if len(values) != count {
		return nil, fmt.Errorf("%w: %s expects %d values, got %d", urwerk.ErrInvalidConstants, kind, count, len(values))
	}

	body := urwerk.Object{"values": values}

	result, err := c.httpClient.Put(ctx, urwerk.Path(constantsMaintenancePath, kind), body, maintenanceHeaders(secret))
	if err != nil {
		return nil, fmt.Errorf("setting %s constants: %w", kind, err)
	}

	return decodeField[[]float64](result, "values")
}

// CalibrationConstants implements urwerk.ConstantsMaintenanceClient.CalibrationConstants.
func (c *ConstantsMaintenanceClient) CalibrationConstants(ctx context.Context, secret string) ([]float64, error) {
	return c.values(ctx, secret, "calibration-samples")
}

// NormalizationConstants implements urwerk.ConstantsMaintenanceClient.NormalizationConstants.
func (c *ConstantsMaintenanceClient) NormalizationConstants(ctx context.Context, secret string) ([]float64, error) {
	return c.values(ctx, secret, "normalization")
}

// SetNormalizationConstants implements urwerk.ConstantsMaintenanceClient.SetNormalizationConstants.
func (c *ConstantsMaintenanceClient) SetNormalizationConstants(ctx context.Context, secret string, values []float64) ([]float64, error) {
	return c.setValues(ctx, secret, "normalization", values, normalizationConstantCount)
}

// SetCalibrationConstants implements urwerk.ConstantsMaintenanceClient.SetCalibrationConstants.
func (c *ConstantsMaintenanceClient) SetCalibrationConstants(ctx context.Context, secret string, values []float64) ([]float64, error) {
	return c.setValues(ctx, secret, "calibration-samples", values, calibrationConstantCount)
}

// ServiceMaintenanceClient implements urwerk.ServiceMaintenanceClient.
type ServiceMaintenanceClient struct {
	httpClient *http.Client
}

// NewServiceMaintenanceClient creates a new service maintenance client.
func NewServiceMaintenanceClient(httpClient *http.Client) *ServiceMaintenanceClient {
	return &ServiceMaintenanceClient{
		httpClient: httpClient,
	}
}

// Enable implements urwerk.ServiceMaintenanceClient.Enable.
func (c *ServiceMaintenanceClient) Enable(ctx context.Context, secret, service string) (any, error) {
	result, err := c.httpClient.Post(ctx, urwerk.Path(serviceMaintenancePath, service), nil, maintenanceHeaders(secret))
	if err != nil {
		return nil, fmt.Errorf("enabling service %s: %w", service, err)
	}

	return result, nil
}

// Disable implements urwerk.ServiceMaintenanceClient.Disable.
func (c *ServiceMaintenanceClient) Disable(ctx context.Context, secret, service string) (any, error) {
	result, err := c.httpClient.Delete(ctx, urwerk.Path(serviceMaintenancePath, service), nil, maintenanceHeaders(secret))
	if err != nil {
		return nil, fmt.Errorf("disabling service %s: %w", service, err)
	}

	return result, nil
}
