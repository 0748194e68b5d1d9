package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/neusy/urwerk-client/internal/http"
	"github.com/neusy/urwerk-client/pkg/urwerk"
)

const (
	ddbDevicesPath = "devices"
	ddbBrandsPath  = "brands"
	ddbTestsPath   = "tests"
	releasesPath   = "releases"
)

// DDBDevicesClient implements urwerk.DDBDevicesClient.
type DDBDevicesClient struct {
	httpClient *http.Client
}

// NewDDBDevicesClient creates a new device database devices client.
func NewDDBDevicesClient(httpClient *http.Client) *DDBDevicesClient {
	return &DDBDevicesClient{
		httpClient: httpClient,
	}
}

func (c *DDBDevicesClient) lookup(ctx context.Context, token, identity string) (urwerk.Object, error) {
	params := urwerk.Params{"identity": identity}

	result, err := c.httpClient.Get(ctx, urwerk.Path(ddbDevicesPath), params, urwerk.AuthHeader(urwerk.TokenAuth(token)))
	if err != nil {
		return nil, fmt.Errorf("looking up device %s: %w", identity, err)
	}

	return firstObject(result)
}

// InternalID implements urwerk.DDBDevicesClient.InternalID.
func (c *DDBDevicesClient) InternalID(ctx context.Context, token, identity string) (string, error) {
	device, err := c.lookup(ctx, token, identity)
	if err != nil {
		return "", err
	}

	return stringField(device, "id")
}

// BrandID implements urwerk.DDBDevicesClient.BrandID.
// The brand is referenced by a URL ending in "/api/brands/<id>/".
func (c *DDBDevicesClient) BrandID(ctx context.Context, token, identity string) (string, error) {
	device, err := c.lookup(ctx, token, identity)
	if err != nil {
		return "", err
	}

	brandURL, err := stringField(device, "brand")
	if err != nil {
		return "", err
	}

	parts := strings.Split(brandURL, "/")
	if len(parts) < 2 {
		return "", fmt.Errorf("%w: brand reference %q", urwerk.ErrUnexpectedType, brandURL)
	}

	return parts[len(parts)-2], nil
}

// DDBBrandsClient implements urwerk.DDBBrandsClient.
type DDBBrandsClient struct {
	httpClient *http.Client
}

// NewDDBBrandsClient creates a new device database brands client.
func NewDDBBrandsClient(httpClient *http.Client) *DDBBrandsClient {
	return &DDBBrandsClient{
		httpClient: httpClient,
	}
}

// Name implements urwerk.DDBBrandsClient.Name.
func (c *DDBBrandsClient) Name(ctx context.Context, token, brandID string) (string, error) {
	result, err := c.httpClient.Get(ctx, urwerk.Path(ddbBrandsPath, brandID), nil, urwerk.AuthHeader(urwerk.TokenAuth(token)))
	if err != nil {
		return "", fmt.Errorf("getting brand %s: %w", brandID, err)
	}

	return stringField(result, "name")
}

// DDBTestsClient implements urwerk.DDBTestsClient.
type DDBTestsClient struct {
	httpClient *http.Client
}

// NewDDBTestsClient creates a new device database tests client.
func NewDDBTestsClient(httpClient *http.Client) *DDBTestsClient {
	return &DDBTestsClient{
		httpClient: httpClient,
	}
}

// SendReport implements urwerk.DDBTestsClient.SendReport.
func (c *DDBTestsClient) SendReport(ctx context.Context, token string, report any) (any, error) {
	result, err := c.httpClient.Post(ctx, urwerk.Path(ddbTestsPath, "reports/"), report, urwerk.AuthHeader(urwerk.TokenAuth(token)))
	if err != nil {
		return nil, fmt.Errorf("sending test report: %w", err)
	}

	return result, nil
}

// SendResults implements urwerk.DDBTestsClient.SendResults.
func (c *DDBTestsClient) SendResults(ctx context.Context, token string, results any) (any, error) {
	result, err := c.httpClient.Post(ctx, urwerk.Path(ddbTestsPath, "results/"), results, urwerk.AuthHeader(urwerk.TokenAuth(token)))
	if err != nil {
		return nil, fmt.Errorf("sending test results: %w", err)
	}

	return result, nil
}

// ReleasesClient implements urwerk.Releases.
type ReleasesClient struct {
	httpClient *http.Client
}

// NewReleasesClient creates a new firmware releases client.
func NewReleasesClient(httpClient *http.Client) *ReleasesClient {
	return &ReleasesClient{
		httpClient: httpClient,
	}
}

func (c *ReleasesClient) latest(ctx context.Context, sensor string) (urwerk.Object, error) {
	result, err := c.httpClient.Get(ctx, urwerk.Path(releasesPath), urwerk.Params{"available_for": sensor}, nil)
	if err != nil {
		return nil, fmt.Errorf("listing releases for %s: %w", sensor, err)
	}

	releases, err := field(result, "releases")
	if err != nil {
		return nil, err
	}

	return firstObject(releases)
}

// LatestBuildID implements urwerk.Releases.LatestBuildID.
func (c *ReleasesClient) LatestBuildID(ctx context.Context, sensor string) (string, error) {
	release, err := c.latest(ctx, sensor)
	if err != nil {
		return "", err
	}

	return stringField(release, "id")
}

// LatestVersion implements urwerk.Releases.LatestVersion.
func (c *ReleasesClient) LatestVersion(ctx context.Context, sensor string) (string, error) {
	release, err := c.latest(ctx, sensor)
	if err != nil {
		return "", err
	}

	return stringField(release, "version")
}
