// Package version holds the client release identifiers.
package version

import "fmt"

// These variables can be overridden at build time via ldflags:
//
//	go build -ldflags="-X github.com/neusy/urwerk-client/internal/version.Commit=abc123"
var (
	// Version is the semantic version of the client library.
	Version = "0.17.1"
	// Commit is the git commit hash the binary was built from.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// Product is the product token sent in the default User-Agent header.
const Product = "urwerk-api-client"

// UserAgent returns the default User-Agent header value.
func UserAgent() string {
	return Product + "/" + Version
}

// Full returns the full version string including commit.
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
