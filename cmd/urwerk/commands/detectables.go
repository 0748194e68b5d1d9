package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neusy/urwerk-client/pkg/urwerk"
)

// NewDetectablesCommand creates the detectables command group.
func NewDetectablesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detectables",
		Short: "Inspect detectables",
	}

	var filter urwerk.DetectableFilter

	list := &cobra.Command{
		Use:   "list",
		Short: "List detectables",
		RunE: func(cmd *cobra.Command, args []string) error {
			sensor, err := createColorsensor()
			if err != nil {
				return err
			}

			detectables, err := sensor.Detectables().List(cmd.Context(), filter)
			if err != nil {
				return fmt.Errorf("failed to list detectables: %w", err)
			}

			return render(cmd, detectables, objectListTable("uuid", "name", "profile_id"))
		},
	}

	list.Flags().StringVar(&filter.ProfileID, "profile", "", "only detectables of this detection profile")
	list.Flags().StringVar(&filter.MatcherID, "matcher", "", "only detectables of this matcher")

	cmd.AddCommand(list)

	return cmd
}
