package urwerk

import (
	"context"
	"iter"
	"net/http"
)

// SystemClient defines operations on the "system" resource.
type SystemClient interface {
	Get(ctx context.Context) (Object, error)
	Change(ctx context.Context, data Object) (any, error)
	Hostname(ctx context.Context) (string, error)
	SetHostname(ctx context.Context, hostname string) (any, error)
	Reboot(ctx context.Context) (any, error)
	FactoryReset(ctx context.Context) (any, error)
	Time(ctx context.Context) (any, error)
	ChangeTime(ctx context.Context, data Object) (any, error)
	// TimeZones is fetched once per client.
	TimeZones(ctx context.Context) (any, error)
}

// FirmwareClient defines operations on the "firmware" resource.
type FirmwareClient interface {
	Status(ctx context.Context) (*FirmwareStatus, error)
	Version(ctx context.Context) (string, error)
	SourceURL(ctx context.Context) (string, error)
	BuildID(ctx context.Context) (string, error)
	RecoveryBuildID(ctx context.Context) (string, error)
	UpgradeRecoveryImage(ctx context.Context) (any, error)
}

// NetworkClient defines operations on the "network" resource.
type NetworkClient interface {
	Interfaces(ctx context.Context) ([]Object, error)
	Interface(ctx context.Context, name string) (Object, error)
	// SetInterfaceAddresses replaces the address configurations of one
	// protocol; the other protocol is left unchanged.
	SetInterfaceAddresses(ctx context.Context, name string, protocol IPProtocol, configurations []Object) (Object, error)
	Reset(ctx context.Context) (any, error)
}

// OutputsClient defines operations on "peripherals/outputs".
type OutputsClient interface {
	Mode(ctx context.Context) (string, error)
	SetMode(ctx context.Context, mode string) (string, error)
}

// KeypadClient defines operations on "peripherals/keypad".
type KeypadClient interface {
	Locked(ctx context.Context) (bool, error)
	SetLocked(ctx context.Context, locked bool) (any, error)
}

// DeviceClient defines operations on the "device" identity record.
// The record is fetched once per client.
type DeviceClient interface {
	Info(ctx context.Context) (*DeviceInfo, error)
	DeviceID(ctx context.Context) (string, error)
	ModelKey(ctx context.Context) (string, error)
	ModelName(ctx context.Context) (string, error)
	// Variant returns "" for devices without a variant.
	Variant(ctx context.Context) (string, error)
	VendorName(ctx context.Context) (string, error)
}

// CapabilitiesClient defines operations on "sensor/capabilities".
// The record is fetched once per client.
type CapabilitiesClient interface {
	Get(ctx context.Context) (*Capabilities, error)
	OutputPinCount(ctx context.Context) (int, error)
	TriggerSources(ctx context.Context) ([]any, error)
}

// DetectionProfilesClient defines operations on "sensor/detection-profiles".
// An empty profileID addresses the current profile.
type DetectionProfilesClient interface {
	List(ctx context.Context) (any, error)
	Current(ctx context.Context) (Object, error)
	Get(ctx context.Context, profileID string) (Object, error)
	Create(ctx context.Context, data Object) (any, error)
	Change(ctx context.Context, profileID string, data Object) (any, error)
	Delete(ctx context.Context, profileID string) (any, error)
	RunAutogain(ctx context.Context, opts AutogainOptions) (any, error)
	SetWhiteReference(ctx context.Context, profileID string) error
	FactoryResetWhiteReference(ctx context.Context, profileID string) error
	NormalizationConstants(ctx context.Context, profileID string) (any, error)
	EnableCompensation(ctx context.Context, profileID string) (any, error)
	DisableCompensation(ctx context.Context, profileID string) (any, error)
}

// DetectablesClient defines operations on "sensor/detectables".
type DetectablesClient interface {
	// List returns the detectables sorted by uuid.
	List(ctx context.Context, filter DetectableFilter) ([]Object, error)
	Get(ctx context.Context, detectableID, profileID string) (any, error)
	Create(ctx context.Context, profileID string, data Object) (any, error)
	Change(ctx context.Context, detectableID string, data Object, profileID string) (any, error)
	Delete(ctx context.Context, detectableID, profileID string) (any, error)
	DeleteAll(ctx context.Context, filter DetectableFilter) (any, error)
}

// EmittersClient defines operations on "sensor/emitters".
type EmittersClient interface {
	List(ctx context.Context, profileID string) (any, error)
	Get(ctx context.Context, emitterID, profileID string) (any, error)
	Change(ctx context.Context, emitterID string, data Object, profileID string) (any, error)
}

// MatchersClient defines operations on "sensor/matchers".
type MatchersClient interface {
	// List returns the matchers sorted by uuid.
	List(ctx context.Context, profileID string) ([]Object, error)
	Get(ctx context.Context, matcherID, profileID string) (any, error)
	Create(ctx context.Context, profileID string, data Object) (any, error)
	Change(ctx context.Context, matcherID string, data Object, profileID string) (any, error)
	Delete(ctx context.Context, matcherID, profileID string) (any, error)
	DeleteAll(ctx context.Context) (any, error)
	SetOutputPattern(ctx context.Context, matcherID string, states []any) (any, error)
	OutputPattern(ctx context.Context, matcherID string) (any, error)
}

// SamplesClient defines operations on "sensor/samples".
type SamplesClient interface {
	Current(ctx context.Context) (any, error)
	// Stream yields live samples until the device ends the stream or the
	// caller stops ranging.
	Stream(ctx context.Context, opts SampleStreamOptions) iter.Seq2[any, error]
}

// ColorspacesClient defines operations on "sensor/colorspaces".
type ColorspacesClient interface {
	// Current returns the colorspace of the current detection profile.
	Current(ctx context.Context) (any, error)
	Set(ctx context.Context, spaceID string) (any, error)
	// List is fetched once per client.
	List(ctx context.Context) ([]any, error)
	Get(ctx context.Context, name string) (any, error)
}

// SettingsClient defines operations on "settings".
type SettingsClient interface {
	Reset(ctx context.Context) (any, error)
	// Dump returns the plain-text settings export.
	Dump(ctx context.Context) (string, error)
}

// UsersClient defines operations on "users".
type UsersClient interface {
	List(ctx context.Context) (any, error)
	Get(ctx context.Context, name string) (any, error)
	Create(ctx context.Context, data Object) (any, error)
	Change(ctx context.Context, name string, data Object) (any, error)
	Delete(ctx context.Context, name string) (any, error)
}

// DefaultsClient defines operations on "defaults".
type DefaultsClient interface {
	Set(ctx context.Context, objectType, key string, value any) error
	Defaults(ctx context.Context) ([]Default, error)
	FactoryDefaults(ctx context.Context) ([]Default, error)
	// Get searches the defaults, then the factory defaults. It returns nil
	// when neither has an entry.
	Get(ctx context.Context, objectType, key string) (*Default, error)
}

// ConstantsMaintenanceClient defines operations on "maintenance/constants".
// All calls authenticate as MaintenanceUser.
type ConstantsMaintenanceClient interface {
	CalibrationConstants(ctx context.Context, secret string) ([]float64, error)
	NormalizationConstants(ctx context.Context, secret string) ([]float64, error)
	SetNormalizationConstants(ctx context.Context, secret string, values []float64) ([]float64, error)
	SetCalibrationConstants(ctx context.Context, secret string, values []float64) ([]float64, error)
}

// ServiceMaintenanceClient defines operations on "maintenance/services".
type ServiceMaintenanceClient interface {
	Enable(ctx context.Context, secret, service string) (any, error)
	Disable(ctx context.Context, secret, service string) (any, error)
}

// SpectralClient defines operations on "sensor/spectral".
type SpectralClient interface {
	Sample(ctx context.Context) (Object, error)
	// Spectrum returns [wavelength, value] pairs.
	Spectrum(ctx context.Context) ([][]float64, error)
	SpectrumPoints(ctx context.Context) ([]SpectrumPoint, error)
	Wavelengths(ctx context.Context) ([]float64, error)
	SetDarkReference(ctx context.Context) (any, error)
	ResetDarkReference(ctx context.Context) (any, error)
	SamplingSettings(ctx context.Context, profileID string) (Object, error)
	AverageCount(ctx context.Context, profileID string) (int, error)
	SetAverageCount(ctx context.Context, count int, profileID string) (any, error)
	IntegrationTime(ctx context.Context, profileID string) (float64, error)
	SetIntegrationTime(ctx context.Context, integrationTime float64, profileID string) (any, error)
	Normalize(ctx context.Context) (any, error)
	ResetNormalization(ctx context.Context) (any, error)
	RegionsOfInterest(ctx context.Context) ([]RegionOfInterest, error)
	SetRegionsOfInterest(ctx context.Context, boundaries []Boundary) (any, error)
}

// DDBDevicesClient defines the device lookups of the device database.
type DDBDevicesClient interface {
	InternalID(ctx context.Context, token, identity string) (string, error)
	BrandID(ctx context.Context, token, identity string) (string, error)
}

// DDBBrandsClient defines the brand lookups of the device database.
type DDBBrandsClient interface {
	Name(ctx context.Context, token, brandID string) (string, error)
}

// DDBTestsClient submits production test data to the device database.
type DDBTestsClient interface {
	SendReport(ctx context.Context, token string, report any) (any, error)
	SendResults(ctx context.Context, token string, results any) (any, error)
}

// DeviceClients provides access to the device management resources.
type DeviceClients interface {
	System() SystemClient
	Firmware() FirmwareClient
	Network() NetworkClient
	Outputs() OutputsClient
	Keypad() KeypadClient
	Device() DeviceClient
	Settings() SettingsClient
	Users() UsersClient
	Defaults() DefaultsClient
}

// SensorClients provides access to the sensor resources.
type SensorClients interface {
	Capabilities() CapabilitiesClient
	DetectionProfiles() DetectionProfilesClient
	Detectables() DetectablesClient
	Emitters() EmittersClient
	Matchers() MatchersClient
	Samples() SamplesClient
	Colorspaces() ColorspacesClient
}

// MaintenanceClients provides access to the factory maintenance resources.
type MaintenanceClients interface {
	ConstantsMaintenance() ConstantsMaintenanceClient
	ServiceMaintenance() ServiceMaintenanceClient
}

// Colorsensor is the client of a colorsensor device.
type Colorsensor interface {
	DeviceClients
	SensorClients
	MaintenanceClients

	RootURL() string
	UserAgent() string
}

// SpectralImager is the client of a spectral imager: a colorsensor with
// spectral sampling.
type SpectralImager interface {
	Colorsensor

	Spectral() SpectralClient
}

// DDB is the client of the device database.
type DDB interface {
	Devices() DDBDevicesClient
	Brands() DDBBrandsClient
	Tests() DDBTestsClient

	BrandNameByIdentity(ctx context.Context, token, identity string) (string, error)
}

// Releases is the client of the firmware release service.
type Releases interface {
	LatestBuildID(ctx context.Context, sensor string) (string, error)
	LatestVersion(ctx context.Context, sensor string) (string, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a urwerk client.
type Config struct {
	// APIURL is the API root, e.g. "http://10.0.0.5/api/v1".
	// Trailing slashes are removed; "http://" is assumed when no scheme is given.
	APIURL string
	// UserAgent overrides the default "urwerk-api-client/<version>" header.
	UserAgent string
	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	Logger Logger
	// HTTPClient replaces the underlying transport client. Redirects are
	// never followed regardless of its CheckRedirect.
	HTTPClient *http.Client
	// Interceptors run around every request.
	Interceptors *InterceptorChain
}
