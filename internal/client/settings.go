package client

import (
	"context"
	"fmt"

	"github.com/neusy/urwerk-client/internal/http"
	"github.com/neusy/urwerk-client/pkg/urwerk"
)

const (
	settingsPath = "settings"
	usersPath    = "users"
	defaultsPath = "defaults"
)

// SettingsClient implements urwerk.SettingsClient.
type SettingsClient struct {
	httpClient *http.Client
}

// NewSettingsClient creates a new settings client.
func NewSettingsClient(httpClient *http.Client) *SettingsClient {
	return &SettingsClient{
		httpClient: httpClient,
	}
}

// Reset implements urwerk.SettingsClient.Reset.
func (c *SettingsClient) Reset(ctx context.Context) (any, error) {
	result, err := c.httpClient.Delete(ctx, urwerk.Path(settingsPath), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("resetting settings: %w", err)
	}

	return result, nil
}

// Dump implements urwerk.SettingsClient.Dump.
func (c *SettingsClient) Dump(ctx context.Context) (string, error) {
	result, err := c.httpClient.Get(ctx, urwerk.Path(settingsPath), nil, nil)
	if err != nil {
		return "", fmt.Errorf("dumping settings: %w", err)
	}

	dump, ok := result.(string)
	if !ok {
		return "", fmt.Errorf("%w: expected text settings dump, got %T", urwerk.ErrUnexpectedType, result)
	}

	return dump, nil
}

// UsersClient implements urwerk.UsersClient.
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{
		httpClient: httpClient,
	}
}

// List implements urwerk.UsersClient.List.
func (c *UsersClient) List(ctx context.Context) (any, error) {
	result, err := c.httpClient.Get(ctx, urwerk.Path(usersPath), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	return result, nil
}

// Get implements urwerk.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, name string) (any, error) {
	result, err := c.httpClient.Get(ctx, urwerk.Path(usersPath, name), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("getting user %s: %w", name, err)
	}

	return result, nil
}

// Create implements urwerk.UsersClient.Create.
func (c *UsersClient) Create(ctx context.Context, data urwerk.Object) (any, error) {
	result, err := c.httpClient.Post(ctx, urwerk.Path(usersPath), optionalBody(data), nil)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return result, nil
}

// Change implements urwerk.UsersClient.Change.
func (c *UsersClient) Change(ctx context.Context, name string, data urwerk.Object) (any, error) {
	result, err := c.httpClient.Put(ctx, urwerk.Path(usersPath, name), optionalBody(data), nil)
	if err != nil {
		return nil, fmt.Errorf("changing user %s: %w", name, err)
	}

	return result, nil
}

// Delete implements urwerk.UsersClient.Delete.
func (c *UsersClient) Delete(ctx context.Context, name string) (any, error) {
	result, err := c.httpClient.Delete(ctx, urwerk.Path(usersPath, name), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("deleting user %s: %w", name, err)
	}

	return result, nil
}

// DefaultsClient implements urwerk.DefaultsClient.
type DefaultsClient struct {
	httpClient *http.Client
}

// NewDefaultsClient creates a new defaults client.
func NewDefaultsClient(httpClient *http.Client) *DefaultsClient {
	return &DefaultsClient{
		httpClient: httpClient,
	}
}

// Set implements urwerk.DefaultsClient.Set.
func (c *DefaultsClient) Set(ctx context.Context, objectType, key string, value any) error {
	body := urwerk.Object{
		"object_type": objectType,
		"key":         key,
		"value":       value,
	}

	_, err := c.httpClient.Post(ctx, urwerk.Path(defaultsPath), body, nil)
	if err != nil {
		return fmt.Errorf("setting default %s/%s: %w", objectType, key, err)
	}

	return nil
}

func (c *DefaultsClient) table(ctx context.Context, key string) ([]urwerk.Default, error) {
	result, err := c.httpClient.Get(ctx, urwerk.Path(defaultsPath), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	defaults, err := decodeField[[]urwerk.Default](result, key)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", key, err)
	}

	return defaults, nil
}

// Defaults implements urwerk.DefaultsClient.Defaults.
func (c *DefaultsClient) Defaults(ctx context.Context) ([]urwerk.Default, error) {
	return c.table(ctx, "defaults")
}

// FactoryDefaults implements urwerk.DefaultsClient.FactoryDefaults.
func (c *DefaultsClient) FactoryDefaults(ctx context.Context) ([]urwerk.Default, error) {
	return c.table(ctx, "factory_defaults")
}

// Get implements urwerk.DefaultsClient.Get.
func (c *DefaultsClient) Get(ctx context.Context, objectType, key string) (*urwerk.Default, error) {
	for _, source := range []func(context.Context) ([]urwerk.Default, error){c.Defaults, c.FactoryDefaults} {
		defaults, err := source(ctx)
		if err != nil {
			return nil, err
		}

		for i := range defaults {
			if defaults[i].ObjectType == objectType && defaults[i].Key == key {
				return &defaults[i], nil
			}
		}
	}

	return nil, nil
}
