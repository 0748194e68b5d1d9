// Package urwerkclient provides the main entry point for creating urwerk API clients
package urwerkclient

import (
	"strings"

	"github.com/neusy/urwerk-client/internal/client"
	"github.com/neusy/urwerk-client/internal/http"
	"github.com/neusy/urwerk-client/pkg/urwerk"
)

// normalizeAPIURL strips trailing slashes and assumes http for bare hosts,
// since devices are usually addressed on the local network.
func normalizeAPIURL(apiURL string) string {
	apiURL = strings.TrimRight(apiURL, "/")
	if !strings.HasPrefix(apiURL, "http://") && !strings.HasPrefix(apiURL, "https://") {
		apiURL = "http://" + apiURL
	}

	return apiURL
}

func newHTTPClient(config *urwerk.Config) (*http.Client, error) {
	if config == nil {
		return nil, urwerk.ErrConfigRequired
	}

	if strings.TrimRight(config.APIURL, "/") == "" {
		return nil, urwerk.ErrAPIURLRequired
	}

	return http.NewClient(normalizeAPIURL(config.APIURL), client.HTTPOptions(config)...), nil
}

// NewColorsensor creates a client for a colorsensor device.
func NewColorsensor(config *urwerk.Config) (urwerk.Colorsensor, error) {
	httpClient, err := newHTTPClient(config)
	if err != nil {
		return nil, err
	}

	return client.NewColorsensor(httpClient), nil
}

// NewSpectralImager creates a client for a spectral imager device.
func NewSpectralImager(config *urwerk.Config) (urwerk.SpectralImager, error) {
	httpClient, err := newHTTPClient(config)
	if err != nil {
		return nil, err
	}

	return client.NewSpectralImager(httpClient), nil
}

// NewDDB creates a device database client. Config.APIURL is the database API
// root; every call takes its own token.
func NewDDB(config *urwerk.Config) (urwerk.DDB, error) {
	httpClient, err := newHTTPClient(config)
	if err != nil {
		return nil, err
	}

	return client.NewDDB(httpClient), nil
}

// NewReleases creates a firmware release service client.
func NewReleases(config *urwerk.Config) (urwerk.Releases, error) {
	httpClient, err := newHTTPClient(config)
	if err != nil {
		return nil, err
	}

	return client.NewReleasesClient(httpClient), nil
}

// NewColorsensorWithURL creates a colorsensor client with just an API URL.
func NewColorsensorWithURL(apiURL string) (urwerk.Colorsensor, error) {
	return NewColorsensor(&urwerk.Config{
		APIURL: apiURL,
	})
}

// NewSpectralImagerWithURL creates a spectral imager client with just an API URL.
func NewSpectralImagerWithURL(apiURL string) (urwerk.SpectralImager, error) {
	return NewSpectralImager(&urwerk.Config{
		APIURL: apiURL,
	})
}
