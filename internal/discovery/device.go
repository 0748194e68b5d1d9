package discovery

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// Device is a host that answered the mDNS browse.
type Device struct {
	// Instance is the advertised service instance name.
	Instance string

	// Hostname is the mDNS hostname, e.g. "urwerk-42.local."
	Hostname string

	// IP prefers IPv4 and falls back to IPv6.
	IP string

	Port int

	// Metadata holds the TXT records, "key=value" split on the first "=".
	Metadata map[string]string

	DiscoveredAt time.Time
}

func (d *Device) String() string {
	return fmt.Sprintf("%s (%s) at %s", d.Instance, d.Hostname, d.BaseURL())
}

// BaseURL returns the HTTP base URL of the device.
func (d *Device) BaseURL() string {
	return "http://" + net.JoinHostPort(d.IP, strconv.Itoa(d.Port))
}

// RootURL returns the API root below the base URL. An empty apiPath falls
// back to the advertised "path" TXT record.
func (d *Device) RootURL(apiPath string) string {
	if apiPath == "" {
		apiPath = d.Metadata["path"]
	}

	apiPath = strings.Trim(apiPath, "/")
	if apiPath == "" {
		return d.BaseURL()
	}

	return d.BaseURL() + "/" + apiPath
}
