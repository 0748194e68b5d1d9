package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/neusy/urwerk-client/internal/constants"
	"github.com/neusy/urwerk-client/internal/discovery"
)

// DiscoveredDevice is one row of the discover command.
type DiscoveredDevice struct {
	Instance string            `json:"instance"           yaml:"instance"`
	Hostname string            `json:"hostname"           yaml:"hostname"`
	IP       string            `json:"ip"                 yaml:"ip"`
	Port     int               `json:"port"               yaml:"port"`
	RootURL  string            `json:"root_url"           yaml:"root_url"`
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

func toDiscovered(devices []*discovery.Device, apiPath string) []DiscoveredDevice {
	rows := make([]DiscoveredDevice, 0, len(devices))

	for _, device := range devices {
		path := apiPath
		if path == "" && device.Metadata["path"] == "" {
			path = constants.DefaultAPIPath
		}

		rows = append(rows, DiscoveredDevice{
			Instance: device.Instance,
			Hostname: device.Hostname,
			IP:       device.IP,
			Port:     device.Port,
			RootURL:  device.RootURL(path),
			Metadata: device.Metadata,
		})
	}

	return rows
}

func displayDiscoveredTable(out io.Writer, rows []DiscoveredDevice) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(out, "No devices found")

		return err
	}

	table := newTable(out, "hostname", "ip", "port", "root_url")
	for _, row := range rows {
		_ = table.Append([]string{row.Hostname, row.IP, strconv.Itoa(row.Port), row.RootURL})
	}

	return renderTable(table)
}

// NewDiscoverCommand creates the discover command.
func NewDiscoverCommand() *cobra.Command {
	scanner := discovery.NewScanner()
	scanner.Timeout = constants.DefaultDiscoveryTimeout

	var apiPath string

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Find devices on the local network",
		Long:  "Browse mDNS for devices and print the API root URL of each",
		RunE: func(cmd *cobra.Command, args []string) error {
			devices, err := scanner.Scan(cmd.Context())
			if err != nil {
				return err
			}

			return render(cmd, toDiscovered(devices, apiPath), displayDiscoveredTable)
		},
	}

	cmd.Flags().DurationVar(&scanner.Timeout, "timeout", constants.DefaultDiscoveryTimeout, "how long to browse")
	cmd.Flags().StringVar(&scanner.Service, "service", discovery.DefaultService, "mDNS service type")
	cmd.Flags().StringVar(&scanner.HostPrefix, "prefix", "", "only hosts whose name starts with this prefix")
	cmd.Flags().StringVar(&apiPath, "api-path", "", "API path below the host (default from the TXT \"path\" record, else "+constants.DefaultAPIPath+")")

	return cmd
}
