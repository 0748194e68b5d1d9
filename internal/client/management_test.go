package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neusy/urwerk-client/pkg/urwerk"
)

func TestSettingsClient(t *testing.T) {
	t.Parallel()

	runOperationTests(t, []operationTest{
		{
			Name:   "reset",
			Routes: map[string]reply{route(http.MethodDelete, "settings"): {Status: http.StatusNoContent}},
			Call: func(ctx context.Context, imager *SpectralImager) (any, error) {
				return imager.Settings().Reset(ctx)
			},
			WantRequest: "DELETE " + apiPath("settings"),
		},
		{
			Name:   "dump",
			Routes: map[string]reply{route(http.MethodGet, "settings"): {Body: "[system]\nhostname = urwerk-42\n"}},
			Call: func(ctx context.Context, imager *SpectralImager) (any, error) {
				return imager.Settings().Dump(ctx)
			},
			Want:        "[system]\nhostname = urwerk-42\n",
			WantRequest: "GET " + apiPath("settings"),
		},
		{
			Name:   "dump of json",
			Routes: map[string]reply{route(http.MethodGet, "settings"): {Body: map[string]any{"hostname": "urwerk-42"}}},
			Call: func(ctx context.Context, imager *SpectralImager) (any, error) {
				return imager.Settings().Dump(ctx)
			},
			WantErr: urwerk.ErrUnexpectedType,
		},
	})
}

func TestUsersClient(t *testing.T) {
	t.Parallel()

	operator := map[string]any{"name": "operator", "role": "user"}

	runOperationTests(t, []operationTest{
		{
			Name:   "list",
			Routes: map[string]reply{route(http.MethodGet, "users"): {Body: map[string]any{"results": []any{operator}}}},
			Call: func(ctx context.Context, imager *SpectralImager) (any, error) {
				return imager.Users().List(ctx)
			},
			Want: []any{map[string]any{"name": "operator", "role": "user"}},
		},
		{
			Name:   "get",
			Routes: map[string]reply{route(http.MethodGet, "users/operator"): {Body: operator}},
			Call: func(ctx context.Context, imager *SpectralImager) (any, error) {
				return imager.Users().Get(ctx, "operator")
			},
			Want:        map[string]any{"name": "operator", "role": "user"},
			WantRequest: "GET " + apiPath("users/operator"),
		},
		{
			Name:   "create",
			Routes: map[string]reply{route(http.MethodPost, "users"): {Status: http.StatusCreated, Body: operator}},
			Call: func(ctx context.Context, imager *SpectralImager) (any, error) {
				return imager.Users().Create(ctx, urwerk.Object{"name": "operator", "password": "s3cret"})
			},
			Want:        map[string]any{"name": "operator", "role": "user"},
			WantRequest: "POST " + apiPath("users"),
			WantBody:    map[string]any{"name": "operator", "password": "s3cret"},
		},
		{
			Name:   "change",
			Routes: map[string]reply{route(http.MethodPut, "users/operator"): {Status: http.StatusNoContent}},
			Call: func(ctx context.Context, imager *SpectralImager) (any, error) {
				return imager.Users().Change(ctx, "operator", urwerk.Object{"role": "admin"})
			},
			WantRequest: "PUT " + apiPath("users/operator"),
			WantBody:    map[string]any{"role": "admin"},
		},
		{
			Name:   "delete",
			Routes: map[string]reply{route(http.MethodDelete, "users/operator"): {Status: http.StatusNoContent}},
			Call: func(ctx context.Context, imager *SpectralImager) (any, error) {
				return imager.Users().Delete(ctx, "operator")
			},
			WantRequest: "DELETE " + apiPath("users/operator"),
		},
		{
			Name:   "unauthenticated",
			Routes: map[string]reply{route(http.MethodGet, "users"): {Status: http.StatusUnauthorized, Body: "login"}},
			Call: func(ctx context.Context, imager *SpectralImager) (any, error) {
				return imager.Users().List(ctx)
			},
			WantErr: urwerk.ErrAuthentication,
		},
	})
}

func defaultsTable() map[string]reply {
	return map[string]reply{
		route(http.MethodGet, "defaults"): {Body: map[string]any{
			"defaults": []any{
				map[string]any{"object_type": "matcher", "key": "tolerance", "value": 2.5},
			},
			"factory_defaults": []any{
				map[string]any{"object_type": "matcher", "key": "tolerance", "value": 1},
				map[string]any{"object_type": "profile", "key": "average_count", "value": 4},
			},
		}},
	}
}

func TestDefaultsClient(t *testing.T) {
	t.Parallel()

	runOperationTests(t, []operationTest{
		{
			Name:   "set",
			Routes: map[string]reply{route(http.MethodPost, "defaults"): {Status: http.StatusNoContent}},
			Call: func(ctx context.Context, imager *SpectralImager) (any, error) {
				return nil, imager.Defaults().Set(ctx, "matcher", "tolerance", 2.5)
			},
			WantRequest: "POST " + apiPath("defaults"),
			WantBody:    map[string]any{"object_type": "matcher", "key": "tolerance", "value": 2.5},
		},
		{
			Name:   "defaults",
			Routes: defaultsTable(),
			Call: func(ctx context.Context, imager *SpectralImager) (any, error) {
				return imager.Defaults().Defaults(ctx)
			},
			Want: []urwerk.Default{{ObjectType: "matcher", Key: "tolerance", Value: 2.5}},
		},
		{
			Name:   "factory defaults",
			Routes: defaultsTable(),
			Call: func(ctx context.Context, imager *SpectralImager) (any, error) {
				return imager.Defaults().FactoryDefaults(ctx)
			},
			Want: []urwerk.Default{
				{ObjectType: "matcher", Key: "tolerance", Value: float64(1)},
				{ObjectType: "profile", Key: "average_count", Value: float64(4)},
			},
		},
		{
			Name:   "defaults table missing",
			Routes: map[string]reply{route(http.MethodGet, "defaults"): {Body: map[string]any{"count": 0}}},
			Call: func(ctx context.Context, imager *SpectralImager) (any, error) {
				return imager.Defaults().Defaults(ctx)
			},
			WantErr: urwerk.ErrMissingField,
		},
	})
}

func TestDefaultsClient_Get(t *testing.T) {
	t.Parallel()

	device := newTestDevice(t, defaultsTable())
	defaults := NewDefaultsClient(device.httpClient())
	ctx := context.Background()

	entry, err := defaults.Get(ctx, "matcher", "tolerance")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.InDelta(t, 2.5, entry.Value, 0)

	entry, err = defaults.Get(ctx, "profile", "average_count")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.InDelta(t, 4.0, entry.Value, 0)

	entry, err = defaults.Get(ctx, "emitter", "intensity")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestConstantsMaintenanceClient(t *testing.T) {
	t.Parallel()

	calibration := make([]float64, 48)
	for i := range calibration {
		calibration[i] = float64(i) / 10
	}

	calibrationAny := make([]any, len(calibration))
	for i, value := range calibration {
		calibrationAny[i] = value
	}

	normalization := map[string]any{"values": []float64{1, 0.97, 1.03}}

	runOperationTests(t, []operationTest{
		{
			Name: "normalization constants",
			Routes: map[string]reply{
				route(http.MethodGet, "maintenance/constants/normalization"): {Body: normalization},
			},
			Call: func(ctx context.Context, imager *SpectralImager) (any, error) {
				return imager.ConstantsMaintenance().NormalizationConstants(ctx, "hunter2")
			},
			Want:        []float64{1, 0.97, 1.03},
			WantRequest: "GET " + apiPath("maintenance/constants/normalization"),
		},
		{
			Name: "calibration constants",
			Routes: map[string]reply{
				route(http.MethodGet, "maintenance/constants/calibration-samples"): {Body: map[string]any{"values": calibration}},
			},
			Call: func(ctx context.Context, imager *SpectralImager) (any, error) {
				return imager.ConstantsMaintenance().CalibrationConstants(ctx, "hunter2")
			},
			Want: calibration,
		},
		{
			Name: "set normalization constants",
			Routes: map[string]reply{
				route(http.MethodPut, "maintenance/constants/normalization"): {Body: normalization},
			},
			Call: func(ctx context.Context, imager *SpectralImager) (any, error) {
				return imager.ConstantsMaintenance().SetNormalizationConstants(ctx, "hunter2", []float64{1, 0.97, 1.03})
			},
			Want:        []float64{1, 0.97, 1.03},
			WantRequest: "PUT " + apiPath("maintenance/constants/normalization"),
			WantBody:    map[string]any{"values": []any{float64(1), 0.97, 1.03}},
		},
		{
			Name: "set calibration constants",
			Routes: map[string]reply{
				route(http.MethodPut, "maintenance/constants/calibration-samples"): {Body: map[string]any{"values": calibration}},
			},
			Call: func(ctx context.Context, imager *SpectralImager) (any, error) {
				return imager.ConstantsMaintenance().SetCalibrationConstants(ctx, "hunter2", calibration)
			},
			Want:        calibration,
			WantRequest: "PUT " + apiPath("maintenance/constants/calibration-samples"),
			WantBody:    map[string]any{"values": calibrationAny},
		},
		{
			Name:   "too few normalization constants",
			Routes: map[string]reply{},
			Call: func(ctx context.Context, imager *SpectralImager) (any, error) {
				return imager.ConstantsMaintenance().SetNormalizationConstants(ctx, "hunter2", []float64{1, 1})
			},
			WantErr: urwerk.ErrInvalidConstants,
		},
		{
			Name:   "too many calibration constants",
			Routes: map[string]reply{},
			Call: func(ctx context.Context, imager *SpectralImager) (any, error) {
				return imager.ConstantsMaintenance().SetCalibrationConstants(ctx, "hunter2", make([]float64, 49))
			},
			WantErr: urwerk.ErrInvalidConstants,
		},
	})
}

func TestConstantsMaintenanceClient_InvalidLengthSendsNothing(t *testing.T) {
	t.Parallel()

	device := newTestDevice(t, map[string]reply{})
	constants := NewConstantsMaintenanceClient(device.httpClient())

	_, err := constants.SetNormalizationConstants(context.Background(), "hunter2", nil)
	require.ErrorIs(t, err, urwerk.ErrInvalidConstants)
	assert.Empty(t, device.requests())
}

func TestMaintenanceClients_BasicAuth(t *testing.T) {
	t.Parallel()

	device := newTestDevice(t, map[string]reply{
		route(http.MethodGet, "maintenance/constants/normalization"): {Body: map[string]any{"values": []float64{1, 1, 1}}},
		route(http.MethodPost, "maintenance/services/ssh"):          {Status: http.StatusNoContent},
		route(http.MethodDelete, "maintenance/services/ssh"):        {Status: http.StatusNoContent},
	})
	httpClient := device.httpClient()
	ctx := context.Background()

	_, err := NewConstantsMaintenanceClient(httpClient).NormalizationConstants(ctx, "hunter2\n")
	require.NoError(t, err)

	services := NewServiceMaintenanceClient(httpClient)

	_, err = services.Enable(ctx, "hunter2", "ssh")
	require.NoError(t, err)

	_, err = services.Disable(ctx, "hunter2", "ssh")
	require.NoError(t, err)

	// base64("production-msh:hunter2")
	const want = "Basic cHJvZHVjdGlvbi1tc2g6aHVudGVyMg=="

	requests := device.requests()
	require.Len(t, requests, 3)

	for _, request := range requests {
		assert.Equal(t, want, request.Header.Get("Authorization"), request.Method+" "+request.Path)
	}

	assert.Equal(t, "POST "+apiPath("maintenance/services/ssh"), requests[1].Method+" "+requests[1].Path)
	assert.Equal(t, "DELETE "+apiPath("maintenance/services/ssh"), requests[2].Method+" "+requests[2].Path)
}
