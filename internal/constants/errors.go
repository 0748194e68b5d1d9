package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIConfigured   = errors.New("no API URL configured, use --api or 'urwerk config set api <url>'")
	ErrUnknownConfigKey  = errors.New("unknown configuration key")
	ErrUnsupportedOutput = errors.New("unsupported output format")
)

// Maintenance errors.
var (
	ErrSecretRequired = errors.New("maintenance secret required")
	ErrNotATerminal   = errors.New("stdin is not a terminal, pass --secret")
)
