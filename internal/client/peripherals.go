package client

import (
	"context"
	"fmt"

	"github.com/spf13/cast"

	"github.com/neusy/urwerk-client/internal/http"
	"github.com/neusy/urwerk-client/pkg/urwerk"
)

const (
	outputsPath = "peripherals/outputs"
	keypadPath  = "peripherals/keypad"
)

// OutputsClient implements urwerk.OutputsClient.
type OutputsClient struct {
	httpClient *http.Client
}

// NewOutputsClient creates a new outputs client.
func NewOutputsClient(httpClient *http.Client) *OutputsClient {
	return &OutputsClient{
		httpClient: httpClient,
	}
}

// Mode implements urwerk.OutputsClient.Mode.
func (c *OutputsClient) Mode(ctx context.Context) (string, error) {
	result, err := c.httpClient.Get(ctx, urwerk.Path(outputsPath), nil, nil)
	if err != nil {
		return "", fmt.Errorf("getting output mode: %w", err)
	}

	return stringField(result, "output_driver")
}

// SetMode implements urwerk.OutputsClient.SetMode.
func (c *OutputsClient) SetMode(ctx context.Context, mode string) (string, error) {
	result, err := c.httpClient.Put(ctx, urwerk.Path(outputsPath), urwerk.Object{"output_driver": mode}, nil)
	if err != nil {
		return "", fmt.Errorf("setting output mode: %w", err)
	}

	return stringField(result, "output_driver")
}

// KeypadClient implements urwerk.KeypadClient.
type KeypadClient struct {
	httpClient *http.Client
}

// NewKeypadClient creates a new keypad client.
func NewKeypadClient(httpClient *http.Client) *KeypadClient {
	return &KeypadClient{
		httpClient: httpClient,
	}
}

// Locked implements urwerk.KeypadClient.Locked.
func (c *KeypadClient) Locked(ctx context.Context) (bool, error) {
	result, err := c.httpClient.Get(ctx, urwerk.Path(keypadPath), nil, nil)
	if err != nil {
		return false, fmt.Errorf("getting keypad lock state: %w", err)
	}

	locked, err := field(result, "locked")
	if err != nil {
		return false, err
	}

	state, err := cast.ToBoolE(locked)
	if err != nil {
		return false, fmt.Errorf("%w: locked: %w", urwerk.ErrUnexpectedType, err)
	}

	return state, nil
}

// SetLocked implements urwerk.KeypadClient.SetLocked.
func (c *KeypadClient) SetLocked(ctx context.Context, locked bool) (any, error) {
	result, err := c.httpClient.Put(ctx, urwerk.Path(keypadPath), urwerk.Object{"locked": locked}, nil)
	if err != nil {
		return nil, fmt.Errorf("setting keypad lock state: %w", err)
	}

	return result, nil
}
