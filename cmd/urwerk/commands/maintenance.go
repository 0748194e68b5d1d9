package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/neusy/urwerk-client/internal/constants"
)

// readSecret prompts for the maintenance secret without echo.
var readSecret = func(out io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", constants.ErrNotATerminal
	}

	_, _ = fmt.Fprint(out, "Maintenance secret: ")

	secret, err := term.ReadPassword(fd)

	_, _ = fmt.Fprintln(out)

	if err != nil {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}

	return string(secret), nil
}

// MaintenanceConstants is the output of "maintenance constants".
type MaintenanceConstants struct {
	Calibration   []float64 `json:"calibration"   yaml:"calibration"`
	Normalization []float64 `json:"normalization" yaml:"normalization"`
}

// NewMaintenanceCommand creates the maintenance command group.
func NewMaintenanceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maintenance",
		Short: "Factory maintenance operations",
		Long:  "Factory maintenance operations, authenticated with the maintenance secret",
	}

	cmd.PersistentFlags().String("secret", "", "maintenance secret (prompted when omitted)")

	cmd.AddCommand(newMaintenanceConstantsCommand())

	return cmd
}

func maintenanceSecret(cmd *cobra.Command) (string, error) {
	secret, _ := cmd.Flags().GetString("secret")
	if secret == "" {
		var err error

		secret, err = readSecret(cmd.ErrOrStderr())
		if err != nil {
			return "", err
		}
	}

	if strings.TrimSpace(secret) == "" {
		return "", constants.ErrSecretRequired
	}

	return secret, nil
}

func newMaintenanceConstantsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "Show calibration and normalization constants",
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := maintenanceSecret(cmd)
			if err != nil {
				return err
			}

			sensor, err := createColorsensor()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			maintenance := sensor.ConstantsMaintenance()

			calibration, err := maintenance.CalibrationConstants(ctx, secret)
			if err != nil {
				return fmt.Errorf("failed to get calibration constants: %w", err)
			}

			normalization, err := maintenance.NormalizationConstants(ctx, secret)
			if err != nil {
				return fmt.Errorf("failed to get normalization constants: %w", err)
			}

			result := MaintenanceConstants{Calibration: calibration, Normalization: normalization}

			return render(cmd, result, func(out io.Writer, result MaintenanceConstants) error {
				table := newTable(out, "kind", "count", "values")
				_ = table.Append([]string{"Calibration", strconv.Itoa(len(result.Calibration)), joinFloats(result.Calibration)})
				_ = table.Append([]string{"Normalization", strconv.Itoa(len(result.Normalization)), joinFloats(result.Normalization)})

				return renderTable(table)
			})
		},
	}
}

func joinFloats(values []float64) string {
	parts := make([]string, 0, len(values))
	for _, value := range values {
		parts = append(parts, strconv.FormatFloat(value, 'g', -1, 64))
	}

	return strings.Join(parts, " ")
}
