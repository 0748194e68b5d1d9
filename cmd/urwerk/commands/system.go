package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSystemCommand creates the system command group.
func NewSystemCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "system",
		Short: "Manage the device system",
		Long:  "Show system settings, change the hostname and reboot the device",
	}

	cmd.AddCommand(newSystemGetCommand())
	cmd.AddCommand(newSystemHostnameCommand())
	cmd.AddCommand(newSystemRebootCommand())

	return cmd
}

func newSystemGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show system settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			sensor, err := createColorsensor()
			if err != nil {
				return err
			}

			system, err := sensor.System().Get(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get system: %w", err)
			}

			return render(cmd, system, objectTable)
		},
	}
}

func newSystemHostnameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hostname [NAME]",
		Short: "Show or set the hostname",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sensor, err := createColorsensor()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				hostname, err := sensor.System().Hostname(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to get hostname: %w", err)
				}

				return printMessage(cmd, "Hostname", hostname)
			}

			if _, err := sensor.System().SetHostname(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to set hostname: %w", err)
			}

			return printMessage(cmd, "Hostname set", args[0])
		},
	}
}

func newSystemRebootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reboot",
		Short: "Reboot the device",
		RunE: func(cmd *cobra.Command, args []string) error {
			sensor, err := createColorsensor()
			if err != nil {
				return err
			}

			if _, err := sensor.System().Reboot(cmd.Context()); err != nil {
				return fmt.Errorf("failed to reboot: %w", err)
			}

			return printMessage(cmd, "Reboot requested", sensor.RootURL())
		},
	}
}
