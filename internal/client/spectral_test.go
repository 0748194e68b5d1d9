package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neusy/urwerk-client/pkg/urwerk"
)

func spectralSample() map[string]any {
	return map[string]any{
		"spectrum": [][]float64{{400, 0.12}, {410, 0.18}, {420, 0.25}},
		"regions_of_interest": []any{
			map[string]any{"x_min": 400, "y_min": 0.12, "x_max": 420, "y_max": 0.25},
		},
	}
}

func TestSpectralClient(t *testing.T) {
	t.Parallel()

	sampleRoute := map[string]reply{route(http.MethodGet, "sensor/spectral/sample"): {Body: spectralSample()}}
	profileRoute := map[string]reply{
		route(http.MethodGet, "sensor/detection-profiles/current"): {Body: map[string]any{
			"sampling_settings": map[string]any{"average_count": 8, "integration_time": 12.5},
		}},
	}

	runOperationTests(t, []operationTest{
		{
			Name:   "spectrum",
			Routes: sampleRoute,
			Call: func(ctx context.Context, imager *SpectralImager) (any, error) {
				return imager.Spectral().Spectrum(ctx)
			},
			Want:        [][]float64{{400, 0.12}, {410, 0.18}, {420, 0.25}},
			WantRequest: "GET " + apiPath("sensor/spectral/sample"),
		},
		{
			Name:   "spectrum points",
			Routes: sampleRoute,
			Call: func(ctx context.Context, imager *SpectralImager) (any, error) {
				return imager.Spectral().SpectrumPoints(ctx)
			},
			Want: []urwerk.SpectrumPoint{
				{Wavelength: 400, Value: 0.12},
				{Wavelength: 410, Value: 0.18},
				{Wavelength: 420, Value: 0.25},
			},
		},
		{
			Name: "spectrum point without value",
			Routes: map[string]reply{
				route(http.MethodGet, "sensor/spectral/sample"): {Body: map[string]any{"spectrum": [][]float64{{400}}}},
			},
			Call: func(ctx context.Context, imager *SpectralImager) (any, error) {
				return imager.Spectral().SpectrumPoints(ctx)
			},
			WantErr: urwerk.ErrUnexpectedType,
		},
		{
			Name:   "regions of interest",
			Routes: sampleRoute,
			Call: func(ctx context.Context, imager *SpectralImager) (any, error) {
				return imager.Spectral().RegionsOfInterest(ctx)
			},
			Want: []urwerk.RegionOfInterest{{XMin: 400, YMin: 0.12, XMax: 420, YMax: 0.25}},
		},
		{
			Name: "wavelengths",
			Routes: map[string]reply{
				route(http.MethodGet, "sensor/spectral/wavelengths"): {Body: map[string]any{"wavelengths": []float64{400, 410}}},
			},
			Call: func(ctx context.Context, imager *SpectralImager) (any, error) {
				return imager.Spectral().Wavelengths(ctx)
			},
			Want:        []float64{400, 410},
			WantRequest: "GET " + apiPath("sensor/spectral/wavelengths"),
		},
		{
			Name: "set dark reference",
			Routes: map[string]reply{
				route(http.MethodPost, "sensor/spectral/dark-reference"): {Status: http.StatusNoContent},
			},
			Call: func(ctx context.Context, imager *SpectralImager) (any, error) {
				return imager.Spectral().SetDarkReference(ctx)
			},
			WantRequest: "POST " + apiPath("sensor/spectral/dark-reference"),
		},
		{
			Name: "reset dark reference",
			Routes: map[string]reply{
				route(http.MethodDelete, "sensor/spectral/dark-reference"): {Status: http.StatusNoContent},
			},
			Call: func(ctx context.Context, imager *SpectralImager) (any, error) {
				return imager.Spectral().ResetDarkReference(ctx)
			},
			WantRequest: "DELETE " + apiPath("sensor/spectral/dark-reference"),
		},
		{
			Name:   "average count",
			Routes: profileRoute,
			Call: func(ctx context.Context, imager *SpectralImager) (any, error) {
				return imager.Spectral().AverageCount(ctx, "")
			},
			Want: 8,
		},
		{
			Name:   "integration time",
			Routes: profileRoute,
			Call: func(ctx context.Context, imager *SpectralImager) (any, error) {
				return imager.Spectral().IntegrationTime(ctx, "")
			},
			Want: 12.5,
		},
		{
			Name: "set average count",
			Routes: map[string]reply{
				route(http.MethodPut, "sensor/detection-profiles/current"): {Status: http.StatusNoContent},
			},
			Call: func(ctx context.Context, imager *SpectralImager) (any, error) {
				return imager.Spectral().SetAverageCount(ctx, 16, "")
			},
			WantRequest: "PUT " + apiPath("sensor/detection-profiles/current"),
			WantBody:    map[string]any{"sampling_settings": map[string]any{"average_count": float64(16)}},
		},
		{
			Name: "set integration time",
			Routes: map[string]reply{
				route(http.MethodPut, "sensor/detection-profiles/p-1"): {Status: http.StatusNoContent},
			},
			Call: func(ctx context.Context, imager *SpectralImager) (any, error) {
				return imager.Spectral().SetIntegrationTime(ctx, 20, "p-1")
			},
			WantRequest: "PUT " + apiPath("sensor/detection-profiles/p-1"),
			WantBody:    map[string]any{"sampling_settings": map[string]any{"integration_time": float64(20)}},
		},
		{
			Name: "normalize",
			Routes: map[string]reply{
				route(http.MethodPost, "sensor/spectral/normalization"): {Status: http.StatusNoContent},
			},
			Call: func(ctx context.Context, imager *SpectralImager) (any, error) {
				return imager.Spectral().Normalize(ctx)
			},
			WantRequest: "POST " + apiPath("sensor/spectral/normalization"),
		},
		{
			Name: "reset normalization",
			Routes: map[string]reply{
				route(http.MethodDelete, "sensor/spectral/normalization"): {Status: http.StatusNoContent},
			},
			Call: func(ctx context.Context, imager *SpectralImager) (any, error) {
				return imager.Spectral().ResetNormalization(ctx)
			},
			WantRequest: "DELETE " + apiPath("sensor/spectral/normalization"),
		},
		{
			Name: "set regions of interest",
			Routes: map[string]reply{
				route(http.MethodPost, "sensor/spectral/regions-of-interest"): {Status: http.StatusNoContent},
			},
			Call: func(ctx context.Context, imager *SpectralImager) (any, error) {
				return imager.Spectral().SetRegionsOfInterest(ctx, []urwerk.Boundary{{Lower: 400, Upper: 450}})
			},
			WantRequest: "POST " + apiPath("sensor/spectral/regions-of-interest"),
			WantBody: map[string]any{"boundaries": []any{
				map[string]any{"lower_boundary": float64(400), "upper_boundary": float64(450)},
			}},
		},
		{
			Name: "clear regions of interest",
			Routes: map[string]reply{
				route(http.MethodPost, "sensor/spectral/regions-of-interest"): {Status: http.StatusNoContent},
			},
			Call: func(ctx context.Context, imager *SpectralImager) (any, error) {
				return imager.Spectral().SetRegionsOfInterest(ctx, nil)
			},
			WantRequest: "POST " + apiPath("sensor/spectral/regions-of-interest"),
		},
	})
}

func TestSpectralImager_SharesDetectionProfiles(t *testing.T) {
	t.Parallel()

	device := newTestDevice(t, map[string]reply{})
	imager := NewSpectralImager(device.httpClient())

	require.NotNil(t, imager.Spectral())
	assert.Same(t, imager.detectionProfiles, imager.spectral.profiles)
	assert.Same(t, imager.detectionProfiles, imager.colorspaces.profiles)
	assert.Equal(t, device.server.URL+"/api/v1", imager.RootURL())
}
