package client

import (
	"context"
	"fmt"

	"github.com/neusy/urwerk-client/internal/http"
	"github.com/neusy/urwerk-client/pkg/urwerk"
)

const networkPath = "network"

// NetworkClient implements urwerk.NetworkClient.
type NetworkClient struct {
	httpClient *http.Client
}

// NewNetworkClient creates a new network client.
func NewNetworkClient(httpClient *http.Client) *NetworkClient {
	return &NetworkClient{
		httpClient: httpClient,
	}
}

// Interfaces implements urwerk.NetworkClient.Interfaces.
// The interfaces are sorted by name.
func (c *NetworkClient) Interfaces(ctx context.Context) ([]urwerk.Object, error) {
	result, err := c.httpClient.Get(ctx, urwerk.Path(networkPath, "interfaces"), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("listing network interfaces: %w", err)
	}

	list, err := field(result, "network_interfaces")
	if err != nil {
		return nil, err
	}

	interfaces, err := asObjects(list)
	if err != nil {
		return nil, err
	}

	sortByKey(interfaces, "iface")

	return interfaces, nil
}

// Interface implements urwerk.NetworkClient.Interface.
func (c *NetworkClient) Interface(ctx context.Context, name string) (urwerk.Object, error) {
	result, err := c.httpClient.Get(ctx, urwerk.Path(networkPath, "interfaces", name), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("getting network interface %s: %w", name, err)
	}

	return objectField(result, "network_interface")
}

// SetInterfaceAddresses implements urwerk.NetworkClient.SetInterfaceAddresses.
func (c *NetworkClient) SetInterfaceAddresses(ctx context.Context, name string, protocol urwerk.IPProtocol,
	configurations []urwerk.Object,
) (urwerk.Object, error) {
	if !protocol.Valid() {
		return nil, fmt.Errorf("%w: %s", urwerk.ErrInvalidAddressDomain, protocol.Label())
	}

	if configurations == nil {
		configurations = []urwerk.Object{}
	}

	body := urwerk.Object{
		protocol.ID(): urwerk.Object{"address_configurations": configurations},
	}

	result, err := c.httpClient.Put(ctx, urwerk.Path(networkPath, "interfaces", name), body, nil)
	if err != nil {
		return nil, fmt.Errorf("configuring %s addresses of %s: %w", protocol.Label(), name, err)
	}

	return objectField(result, "network_interface")
}

// Reset implements urwerk.NetworkClient.Reset.
func (c *NetworkClient) Reset(ctx context.Context) (any, error) {
	result, err := c.httpClient.Delete(ctx, urwerk.Path(networkPath), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("resetting network settings: %w", err)
	}

	return result, nil
}
