package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewProfilesCommand creates the detection profiles command group.
func NewProfilesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "profiles",
		Aliases: []string{"detection-profiles"},
		Short:   "Inspect detection profiles",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List detection profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			sensor, err := createColorsensor()
			if err != nil {
				return err
			}

			profiles, err := sensor.DetectionProfiles().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list detection profiles: %w", err)
			}

			return render(cmd, profiles, anyTable("uuid", "name"))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "current",
		Short: "Show the current detection profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			sensor, err := createColorsensor()
			if err != nil {
				return err
			}

			profile, err := sensor.DetectionProfiles().Current(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get current detection profile: %w", err)
			}

			return render(cmd, profile, objectTable)
		},
	})

	return cmd
}
