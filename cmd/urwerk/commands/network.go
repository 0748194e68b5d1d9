package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewNetworkCommand creates the network command group.
func NewNetworkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Inspect device networking",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "interfaces",
		Short: "List network interfaces",
		RunE: func(cmd *cobra.Command, args []string) error {
			sensor, err := createColorsensor()
			if err != nil {
				return err
			}

			interfaces, err := sensor.Network().Interfaces(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list network interfaces: %w", err)
			}

			return render(cmd, interfaces, objectListTable("iface", "ipv4", "ipv6"))
		},
	})

	return cmd
}
