package client

import (
	"context"
	"fmt"

	"github.com/neusy/urwerk-client/internal/http"
	"github.com/neusy/urwerk-client/pkg/urwerk"
)

const spectralPath = "sensor/spectral"

// SpectralClient implements urwerk.SpectralClient. Sampling settings live
// in the detection profiles.
type SpectralClient struct {
	httpClient *http.Client
	profiles   *DetectionProfilesClient
}

// NewSpectralClient creates a new spectral client.
func NewSpectralClient(httpClient *http.Client, profiles *DetectionProfilesClient) *SpectralClient {
	return &SpectralClient{
		httpClient: httpClient,
		profiles:   profiles,
	}
}

// Sample implements urwerk.SpectralClient.Sample.
func (c *SpectralClient) Sample(ctx context.Context) (urwerk.Object, error) {
	result, err := c.httpClient.Get(ctx, urwerk.Path(spectralPath, "sample"), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("getting spectral sample: %w", err)
	}

	return asObject(result)
}

// Spectrum implements urwerk.SpectralClient.Spectrum.
func (c *SpectralClient) Spectrum(ctx context.Context) ([][]float64, error) {
	sample, err := c.Sample(ctx)
	if err != nil {
		return nil, err
	}

	return decodeField[[][]float64](sample, "spectrum")
}

// SpectrumPoints implements urwerk.SpectralClient.SpectrumPoints.
func (c *SpectralClient) SpectrumPoints(ctx context.Context) ([]urwerk.SpectrumPoint, error) {
	spectrum, err := c.Spectrum(ctx)
	if err != nil {
		return nil, err
	}

	points := make([]urwerk.SpectrumPoint, 0, len(spectrum))

	for i, pair := range spectrum {
		if len(pair) < 2 {
			return nil, fmt.Errorf("%w: spectrum point %d has %d values", urwerk.ErrUnexpectedType, i, len(pair))
		}

		points = append(points, urwerk.SpectrumPoint{Wavelength: pair[0], Value: pair[1]})
	}

	return points, nil
}

// Wavelengths implements urwerk.SpectralClient.Wavelengths.
func (c *SpectralClient) Wavelengths(ctx context.Context) ([]float64, error) {
	result, err := c.httpClient.Get(ctx, urwerk.Path(spectralPath, "wavelengths"), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("getting wavelengths: %w", err)
	}

	return decodeField[[]float64](result, "wavelengths")
}

// SetDarkReference implements urwerk.SpectralClient.SetDarkReference.
func (c *SpectralClient) SetDarkReference(ctx context.Context) (any, error) {
	result, err := c.httpClient.Post(ctx, urwerk.Path(spectralPath, "dark-reference"), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("setting dark reference: %w", err)
	}

	return result, nil
}

// ResetDarkReference implements urwerk.SpectralClient.ResetDarkReference.
func (c *SpectralClient) ResetDarkReference(ctx context.Context) (any, error) {
	result, err := c.httpClient.Delete(ctx, urwerk.Path(spectralPath, "dark-reference"), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("resetting dark reference: %w", err)
	}

	return result, nil
}

// SamplingSettings implements urwerk.SpectralClient.SamplingSettings.
func (c *SpectralClient) SamplingSettings(ctx context.Context, profileID string) (urwerk.Object, error) {
	profile, err := c.profiles.Get(ctx, profileID)
	if err != nil {
		return nil, err
	}

	return objectField(profile, "sampling_settings")
}

// AverageCount implements urwerk.SpectralClient.AverageCount.
func (c *SpectralClient) AverageCount(ctx context.Context, profileID string) (int, error) {
	settings, err := c.SamplingSettings(ctx, profileID)
	if err != nil {
		return 0, err
	}

	return decodeField[int](settings, "average_count")
}

// SetAverageCount implements urwerk.SpectralClient.SetAverageCount.
func (c *SpectralClient) SetAverageCount(ctx context.Context, count int, profileID string) (any, error) {
	return c.profiles.Change(ctx, profileID, urwerk.Object{
		"sampling_settings": urwerk.Object{"average_count": count},
	})
}

// IntegrationTime implements urwerk.SpectralClient.IntegrationTime.
func (c *SpectralClient) IntegrationTime(ctx context.Context, profileID string) (float64, error) {
	settings, err := c.SamplingSettings(ctx, profileID)
	if err != nil {
		return 0, err
	}

	return decodeField[float64](settings, "integration_time")
}

// SetIntegrationTime implements urwerk.SpectralClient.SetIntegrationTime.
func (c *SpectralClient) SetIntegrationTime(ctx context.Context, integrationTime float64, profileID string) (any, error) {
	return c.profiles.Change(ctx, profileID, urwerk.Object{
		"sampling_settings": urwerk.Object{"integration_time": integrationTime},
	})
}

// Normalize implements urwerk.SpectralClient.Normalize.
func (c *SpectralClient) Normalize(ctx context.Context) (any, error) {
	result, err := c.httpClient.Post(ctx, urwerk.Path(spectralPath, "normalization"), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("normalizing: %w", err)
	}

	return result, nil
}

// ResetNormalization implements urwerk.SpectralClient.ResetNormalization.
func (c *SpectralClient) ResetNormalization(ctx context.Context) (any, error) {
	result, err := c.httpClient.Delete(ctx, urwerk.Path(spectralPath, "normalization"), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("resetting normalization: %w", err)
	}

	return result, nil
}

// RegionsOfInterest implements urwerk.SpectralClient.RegionsOfInterest.
func (c *SpectralClient) RegionsOfInterest(ctx context.Context) ([]urwerk.RegionOfInterest, error) {
	sample, err := c.Sample(ctx)
	if err != nil {
		return nil, err
	}

	return decodeField[[]urwerk.RegionOfInterest](sample, "regions_of_interest")
}

// SetRegionsOfInterest implements urwerk.SpectralClient.SetRegionsOfInterest.
// A nil slice posts no boundaries.
func (c *SpectralClient) SetRegionsOfInterest(ctx context.Context, boundaries []urwerk.Boundary) (any, error) {
	var body any
	if boundaries != nil {
		body = urwerk.Object{"boundaries": boundaries}
	}

	result, err := c.httpClient.Post(ctx, urwerk.Path(spectralPath, "regions-of-interest"), body, nil)
	if err != nil {
		return nil, fmt.Errorf("setting regions of interest: %w", err)
	}

	return result, nil
}
