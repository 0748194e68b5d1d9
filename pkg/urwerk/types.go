package urwerk

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/spf13/cast"
)

// Endpoint is an ordered list of path segments below the API root.
// A nil Endpoint addresses the root itself.
type Endpoint []string

// Path builds an Endpoint from segments.
func Path(segments ...string) Endpoint {
	return Endpoint(segments)
}

// String joins the segments with "/".
func (e Endpoint) String() string {
	return strings.Join(e, "/")
}

// Params are query parameters; values are converted to strings on encoding.
type Params map[string]any

// Values converts p to url.Values, coercing every value to its string form.
func (p Params) Values() (url.Values, error) {
	values := make(url.Values, len(p))

	for key, value := range p {
		s, err := cast.ToStringE(value)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidParam, key, err)
		}

		values.Set(key, s)
	}

	return values, nil
}

// Encode returns the form-encoded query string, keys sorted.
func (p Params) Encode() (string, error) {
	values, err := p.Values()
	if err != nil {
		return "", err
	}

	return values.Encode(), nil
}

// Keys returns the parameter names in sorted order.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// Object is a decoded JSON object.
type Object = map[string]any

// CurrentProfile addresses the active detection profile.
const CurrentProfile = "current"

// DeviceInfo is the identity record served at "device".
type DeviceInfo struct {
	DeviceID string `json:"device_id"         yaml:"device_id"         mapstructure:"device_id"`
	ModelKey string `json:"model_key"         yaml:"model_key"         mapstructure:"model_key"`
	Model    string `json:"model"             yaml:"model"             mapstructure:"model"`
	Variant  string `json:"variant,omitempty" yaml:"variant,omitempty" mapstructure:"variant"`
	Vendor   string `json:"vendor"            yaml:"vendor"            mapstructure:"vendor"`
}

// Capabilities describes the sensor hardware.
type Capabilities struct {
	OutputPinCount int   `json:"output_pin_count" yaml:"output_pin_count" mapstructure:"output_pin_count"`
	TriggerSources []any `json:"trigger_sources"  yaml:"trigger_sources"  mapstructure:"trigger_sources"`
}

// FirmwareStatus is the record served at "firmware/status".
type FirmwareStatus struct {
	Version   string `json:"version"    yaml:"version"    mapstructure:"version"`
	SourceURL string `json:"source_url" yaml:"source_url" mapstructure:"source_url"`
	BuildID   string `json:"build_id"   yaml:"build_id"   mapstructure:"build_id"`
}

// SpectrumPoint is one measured value of a spectrum.
type SpectrumPoint struct {
	Wavelength float64 `json:"wavelength" yaml:"wavelength"`
	Value      float64 `json:"value"      yaml:"value"`
}

// RegionOfInterest holds the extreme points measured inside one region.
// X is the wavelength and Y the measured value.
type RegionOfInterest struct {
	XMin float64 `json:"x_min" yaml:"x_min" mapstructure:"x_min"`
	YMin float64 `json:"y_min" yaml:"y_min" mapstructure:"y_min"`
	XMax float64 `json:"x_max" yaml:"x_max" mapstructure:"x_max"`
	YMax float64 `json:"y_max" yaml:"y_max" mapstructure:"y_max"`
}

// Boundary delimits a region of interest by wavelength.
type Boundary struct {
	Lower float64 `json:"lower_boundary" yaml:"lower_boundary"`
	Upper float64 `json:"upper_boundary" yaml:"upper_boundary"`
}

// Default is one entry of the device defaults table.
type Default struct {
	ObjectType string `json:"object_type" yaml:"object_type" mapstructure:"object_type"`
	Key        string `json:"key"         yaml:"key"         mapstructure:"key"`
	Value      any    `json:"value"       yaml:"value"       mapstructure:"value"`
}

// DetectableFilter narrows detectable listings and bulk deletes.
type DetectableFilter struct {
	ProfileID string
	MatcherID string
}

// Params converts the filter to query parameters, omitting empty fields.
func (f DetectableFilter) Params() Params {
	params := Params{}
	if f.ProfileID != "" {
		params["profile_id"] = f.ProfileID
	}

	if f.MatcherID != "" {
		params["matcher_id"] = f.MatcherID
	}

	return params
}

// AutogainOptions tunes an autogain run; nil fields are left to the device.
type AutogainOptions struct {
	MinimumSampleRate *float64
	TargetLevel       *float64
}

// SampleStreamOptions tunes a live sample stream; zero fields are omitted.
type SampleStreamOptions struct {
	Count     int
	Format    string
	Delimiter string
}

// Params converts the options to query parameters of the stream request.
func (o SampleStreamOptions) Params() Params {
	params := Params{"stream": 1}
	if o.Count > 0 {
		params["stream_count"] = o.Count
	}

	if o.Format != "" {
		params["format"] = o.Format
	}

	if o.Delimiter != "" {
		params["delimiter"] = o.Delimiter
	}

	return params
}

// IPProtocol selects an address domain of a network interface.
type IPProtocol int

const (
	IPv4 IPProtocol = 4
	IPv6 IPProtocol = 6
)

// ID returns the key used by the API ("ipv4" or "ipv6").
func (p IPProtocol) ID() string {
	switch p {
	case IPv4:
		return "ipv4"
	case IPv6:
		return "ipv6"
	default:
		return ""
	}
}

// Version returns the numeric IP version.
func (p IPProtocol) Version() int {
	return int(p)
}

// Label returns the display name.
func (p IPProtocol) Label() string {
	switch p {
	case IPv4:
		return "IPv4"
	case IPv6:
		return "IPv6"
	default:
		return fmt.Sprintf("IPProtocol(%d)", int(p))
	}
}

// Valid reports whether p is IPv4 or IPv6.
func (p IPProtocol) Valid() bool {
	return p == IPv4 || p == IPv6
}
