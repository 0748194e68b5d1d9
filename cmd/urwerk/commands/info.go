package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/neusy/urwerk-client/pkg/urwerk"
)

// DeviceSummary is the output of the info command.
type DeviceSummary struct {
	RootURL  string                 `json:"root_url" yaml:"root_url"`
	Device   *urwerk.DeviceInfo     `json:"device"   yaml:"device"`
	Firmware *urwerk.FirmwareStatus `json:"firmware" yaml:"firmware"`
}

// NewInfoCommand creates the info command.
func NewInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display device information",
		Long:  "Display the identity and firmware of the configured device",
		RunE: func(cmd *cobra.Command, args []string) error {
			sensor, err := createColorsensor()
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			device, err := sensor.Device().Info(ctx)
			if err != nil {
				return fmt.Errorf("failed to get device info: %w", err)
			}

			firmware, err := sensor.Firmware().Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get firmware status: %w", err)
			}

			summary := DeviceSummary{RootURL: sensor.RootURL(), Device: device, Firmware: firmware}

			return render(cmd, summary, func(out io.Writer, summary DeviceSummary) error {
				table := newTable(out, "property", "value")
				_ = table.Append([]string{"API", summary.RootURL})
				_ = table.Append([]string{"Device ID", summary.Device.DeviceID})
				_ = table.Append([]string{"Model", summary.Device.Model})
				_ = table.Append([]string{"Model Key", summary.Device.ModelKey})

				if summary.Device.Variant != "" {
					_ = table.Append([]string{"Variant", summary.Device.Variant})
				}

				_ = table.Append([]string{"Vendor", summary.Device.Vendor})
				_ = table.Append([]string{"Firmware", summary.Firmware.Version})
				_ = table.Append([]string{"Build ID", summary.Firmware.BuildID})
				_ = table.Append([]string{"Source URL", summary.Firmware.SourceURL})

				return renderTable(table)
			})
		},
	}
}
