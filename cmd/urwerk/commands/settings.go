package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewSettingsCommand creates the settings command group.
func NewSettingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Export device settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Print the plain-text settings export",
		RunE: func(cmd *cobra.Command, args []string) error {
			sensor, err := createColorsensor()
			if err != nil {
				return err
			}

			dump, err := sensor.Settings().Dump(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to dump settings: %w", err)
			}

			if !strings.HasSuffix(dump, "\n") {
				dump += "\n"
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), dump)

			return err
		},
	})

	return cmd
}
