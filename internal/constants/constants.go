// Package constants holds values shared by the urwerk CLI commands.
package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Configuration locations.
const (
	// ConfigDirName is created below the user's home directory.
	ConfigDirName = ".urwerk"

	// ConfigFileName is the file read from ConfigDirName.
	ConfigFileName = "config.yml"

	// EnvPrefix prefixes environment overrides, e.g. URWERK_API.
	EnvPrefix = "URWERK"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)

// Command argument counts.
const (
	// MinimumArgumentCount is the argument count of KEY VALUE commands.
	MinimumArgumentCount = 2
)

// Discovery and streaming defaults.
const (
	// DefaultDiscoveryTimeout bounds "urwerk discover".
	DefaultDiscoveryTimeout = 5 * time.Second

	// DefaultAPIPath is appended to discovered hosts without a "path" record.
	DefaultAPIPath = "api/v1"

	// DefaultSampleSubject is the NATS subject streamed samples go to.
	DefaultSampleSubject = "urwerk.samples"
)

// Boolean string values.
const (
	// BooleanTrue represents the string "true".
	BooleanTrue = "true"
)
