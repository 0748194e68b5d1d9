package client

import (
	"context"
	"fmt"

	"github.com/neusy/urwerk-client/internal/http"
	"github.com/neusy/urwerk-client/pkg/urwerk"
)

// HTTPOptions builds dispatcher options from config.
func HTTPOptions(config *urwerk.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	return httpOpts
}

// Colorsensor implements the urwerk.Colorsensor interface.
type Colorsensor struct {
	httpClient *http.Client

	// Resource clients
	system               *SystemClient
	firmware             *FirmwareClient
	network              *NetworkClient
	outputs              *OutputsClient
	keypad               *KeypadClient
	device               *DeviceClient
	settings             *SettingsClient
	users                *UsersClient
	defaults             *DefaultsClient
	capabilities         *CapabilitiesClient
	detectionProfiles    *DetectionProfilesClient
	detectables          *DetectablesClient
	emitters             *EmittersClient
	matchers             *MatchersClient
	samples              *SamplesClient
	colorspaces          *ColorspacesClient
	constantsMaintenance *ConstantsMaintenanceClient
	serviceMaintenance   *ServiceMaintenanceClient
}

// NewColorsensor creates a colorsensor client on top of httpClient.
func NewColorsensor(httpClient *http.Client) *Colorsensor {
	profiles := NewDetectionProfilesClient(httpClient)

	return &Colorsensor{
		httpClient:           httpClient,
		system:               NewSystemClient(httpClient),
		firmware:             NewFirmwareClient(httpClient),
		network:              NewNetworkClient(httpClient),
		outputs:              NewOutputsClient(httpClient),
		keypad:               NewKeypadClient(httpClient),
		device:               NewDeviceClient(httpClient),
		settings:             NewSettingsClient(httpClient),
		users:                NewUsersClient(httpClient),
		defaults:             NewDefaultsClient(httpClient),
		capabilities:         NewCapabilitiesClient(httpClient),
		detectionProfiles:    profiles,
		detectables:          NewDetectablesClient(httpClient),
		emitters:             NewEmittersClient(httpClient),
		matchers:             NewMatchersClient(httpClient),
		samples:              NewSamplesClient(httpClient),
		colorspaces:          NewColorspacesClient(httpClient, profiles),
		constantsMaintenance: NewConstantsMaintenanceClient(httpClient),
		serviceMaintenance:   NewServiceMaintenanceClient(httpClient),
	}
}

// RootURL implements urwerk.Colorsensor.RootURL.
func (c *Colorsensor) RootURL() string {
	return c.httpClient.RootURL()
}

// UserAgent implements urwerk.Colorsensor.UserAgent.
func (c *Colorsensor) UserAgent() string {
	return c.httpClient.UserAgent()
}

// Resource client accessors

func (c *Colorsensor) System() urwerk.SystemClient {
	return c.system
}

func (c *Colorsensor) Firmware() urwerk.FirmwareClient {
	return c.firmware
}

func (c *Colorsensor) Network() urwerk.NetworkClient {
	return c.network
}

func (c *Colorsensor) Outputs() urwerk.OutputsClient {
	return c.outputs
}

func (c *Colorsensor) Keypad() urwerk.KeypadClient {
	return c.keypad
}

func (c *Colorsensor) Device() urwerk.DeviceClient {
	return c.device
}

func (c *Colorsensor) Settings() urwerk.SettingsClient {
	return c.settings
}

func (c *Colorsensor) Users() urwerk.UsersClient {
	return c.users
}

func (c *Colorsensor) Defaults() urwerk.DefaultsClient {
	return c.defaults
}

func (c *Colorsensor) Capabilities() urwerk.CapabilitiesClient {
	return c.capabilities
}

func (c *Colorsensor) DetectionProfiles() urwerk.DetectionProfilesClient {
	return c.detectionProfiles
}

func (c *Colorsensor) Detectables() urwerk.DetectablesClient {
	return c.detectables
}

func (c *Colorsensor) Emitters() urwerk.EmittersClient {
	return c.emitters
}

func (c *Colorsensor) Matchers() urwerk.MatchersClient {
	return c.matchers
}

func (c *Colorsensor) Samples() urwerk.SamplesClient {
	return c.samples
}

func (c *Colorsensor) Colorspaces() urwerk.ColorspacesClient {
	return c.colorspaces
}

func (c *Colorsensor) ConstantsMaintenance() urwerk.ConstantsMaintenanceClient {
	return c.constantsMaintenance
}

func (c *Colorsensor) ServiceMaintenance() urwerk.ServiceMaintenanceClient {
	return c.serviceMaintenance
}

// SpectralImager implements the urwerk.SpectralImager interface.
type SpectralImager struct {
	*Colorsensor

	spectral *SpectralClient
}

// NewSpectralImager creates a spectral imager client on top of httpClient.
func NewSpectralImager(httpClient *http.Client) *SpectralImager {
	colorsensor := NewColorsensor(httpClient)

	return &SpectralImager{
		Colorsensor: colorsensor,
		spectral:    NewSpectralClient(httpClient, colorsensor.detectionProfiles),
	}
}

func (s *SpectralImager) Spectral() urwerk.SpectralClient {
	return s.spectral
}

// DDB implements the urwerk.DDB interface.
type DDB struct {
	devices *DDBDevicesClient
	brands  *DDBBrandsClient
	tests   *DDBTestsClient
}

// NewDDB creates a device database client on top of httpClient.
func NewDDB(httpClient *http.Client) *DDB {
	return &DDB{
		devices: NewDDBDevicesClient(httpClient),
		brands:  NewDDBBrandsClient(httpClient),
		tests:   NewDDBTestsClient(httpClient),
	}
}

func (d *DDB) Devices() urwerk.DDBDevicesClient {
	return d.devices
}

func (d *DDB) Brands() urwerk.DDBBrandsClient {
	return d.brands
}

func (d *DDB) Tests() urwerk.DDBTestsClient {
	return d.tests
}

// BrandNameByIdentity implements urwerk.DDB.BrandNameByIdentity.
func (d *DDB) BrandNameByIdentity(ctx context.Context, token, identity string) (string, error) {
	brandID, err := d.devices.BrandID(ctx, token, identity)
	if err != nil {
		return "", fmt.Errorf("resolving brand of %s: %w", identity, err)
	}

	return d.brands.Name(ctx, token, brandID)
}

var (
	_ urwerk.Colorsensor    = (*Colorsensor)(nil)
	_ urwerk.SpectralImager = (*SpectralImager)(nil)
	_ urwerk.DDB            = (*DDB)(nil)
	_ urwerk.Releases       = (*ReleasesClient)(nil)
)
