package client

import (
	"context"
	"fmt"

	"github.com/neusy/urwerk-client/internal/http"
	"github.com/neusy/urwerk-client/pkg/urwerk"
)

const detectionProfilesPath = "sensor/detection-profiles"

// DetectionProfilesClient implements urwerk.DetectionProfilesClient.
type DetectionProfilesClient struct {
	httpClient *http.Client
}

// NewDetectionProfilesClient creates a new detection profiles client.
func NewDetectionProfilesClient(httpClient *http.Client) *DetectionProfilesClient {
	return &DetectionProfilesClient{
		httpClient: httpClient,
	}
}

// List implements urwerk.DetectionProfilesClient.List.
func (c *DetectionProfilesClient) List(ctx context.Context) (any, error) {
	result, err := c.httpClient.Get(ctx, urwerk.Path(detectionProfilesPath), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("listing detection profiles: %w", err)
	}

	return result, nil
}

// Current implements urwerk.DetectionProfilesClient.Current.
func (c *DetectionProfilesClient) Current(ctx context.Context) (urwerk.Object, error) {
	return c.Get(ctx, urwerk.CurrentProfile)
}

// Get implements urwerk.DetectionProfilesClient.Get.
func (c *DetectionProfilesClient) Get(ctx context.Context, profileID string) (urwerk.Object, error) {
	profileID = profileOrCurrent(profileID)

	result, err := c.httpClient.Get(ctx, urwerk.Path(detectionProfilesPath, profileID), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("getting detection profile %s: %w", profileID, err)
	}

	return asObject(result)
}

// Create implements urwerk.DetectionProfilesClient.Create.
func (c *DetectionProfilesClient) Create(ctx context.Context, data urwerk.Object) (any, error) {
	result, err := c.httpClient.Post(ctx, urwerk.Path(detectionProfilesPath), optionalBody(data), nil)
	if err != nil {
		return nil, fmt.Errorf("creating detection profile: %w", err)
	}

	return result, nil
}

// Change implements urwerk.DetectionProfilesClient.Change.
func (c *DetectionProfilesClient) Change(ctx context.Context, profileID string, data urwerk.Object) (any, error) {
	profileID = profileOrCurrent(profileID)

	result, err := c.httpClient.Put(ctx, urwerk.Path(detectionProfilesPath, profileID), optionalBody(data), nil)
	if err != nil {
		return nil, fmt.Errorf("changing detection profile %s: %w", profileID, err)
	}

	return result, nil
}

// Delete implements urwerk.DetectionProfilesClient.Delete.
func (c *DetectionProfilesClient) Delete(ctx context.Context, profileID string) (any, error) {
	result, err := c.httpClient.Delete(ctx, urwerk.Path(detectionProfilesPath, profileID), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("deleting detection profile %s: %w", profileID, err)
	}

	return result, nil
}

// RunAutogain implements urwerk.DetectionProfilesClient.RunAutogain.
func (c *DetectionProfilesClient) RunAutogain(ctx context.Context, opts urwerk.AutogainOptions) (any, error) {
	data := urwerk.Object{}
	if opts.MinimumSampleRate != nil {
		data["minimum_sample_rate"] = *opts.MinimumSampleRate
	}

	if opts.TargetLevel != nil {
		data["level"] = *opts.TargetLevel
	}

	result, err := c.httpClient.Post(ctx, urwerk.Path(detectionProfilesPath, urwerk.CurrentProfile, "autogain"), optionalBody(data), nil)
	if err != nil {
		return nil, fmt.Errorf("running autogain: %w", err)
	}

	return result, nil
}

// SetWhiteReference implements urwerk.DetectionProfilesClient.SetWhiteReference.
func (c *DetectionProfilesClient) SetWhiteReference(ctx context.Context, profileID string) error {
	_, err := c.httpClient.Post(ctx, urwerk.Path(detectionProfilesPath, profileOrCurrent(profileID), "white-reference"), nil, nil)
	if err != nil {
		return fmt.Errorf("setting white reference: %w", err)
	}

	return nil
}

// FactoryResetWhiteReference implements urwerk.DetectionProfilesClient.FactoryResetWhiteReference.
func (c *DetectionProfilesClient) FactoryResetWhiteReference(ctx context.Context, profileID string) error {
	_, err := c.httpClient.Delete(ctx, urwerk.Path(detectionProfilesPath, profileOrCurrent(profileID), "white-reference"), nil, nil)
	if err != nil {
		return fmt.Errorf("resetting white reference: %w", err)
	}

	return nil
}

// NormalizationConstants implements urwerk.DetectionProfilesClient.NormalizationConstants.
// These may differ from the factory constants stored in the device EEPROM.
func (c *DetectionProfilesClient) NormalizationConstants(ctx context.Context, profileID string) (any, error) {
	profile, err := c.Get(ctx, profileID)
	if err != nil {
		return nil, err
	}

	return field(profile, "normalization_constant")
}

// EnableCompensation implements urwerk.DetectionProfilesClient.EnableCompensation.
func (c *DetectionProfilesClient) EnableCompensation(ctx context.Context, profileID string) (any, error) {
	return c.setCompensation(ctx, profileID, true)
}

// DisableCompensation implements urwerk.DetectionProfilesClient.DisableCompensation.
func (c *DetectionProfilesClient) DisableCompensation(ctx context.Context, profileID string) (any, error) {
	return c.setCompensation(ctx, profileID, false)
}

// setCompensation toggles the inter-sensor color value transformation.
func (c *DetectionProfilesClient) setCompensation(ctx context.Context, profileID string, enabled bool) (any, error) {
	return c.Change(ctx, profileID, urwerk.Object{
		"compensation_settings": urwerk.Object{"use_calibration_samples": enabled},
	})
}
