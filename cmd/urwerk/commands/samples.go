package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/neusy/urwerk-client/internal/constants"
	"github.com/neusy/urwerk-client/internal/publish"
	"github.com/neusy/urwerk-client/pkg/urwerk"
)

// NewSamplesCommand creates the samples command group.
func NewSamplesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "samples",
		Short: "Read sensor samples",
	}

	cmd.AddCommand(newSamplesCurrentCommand())
	cmd.AddCommand(newSamplesStreamCommand())

	return cmd
}

func newSamplesCurrentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the current sample",
		RunE: func(cmd *cobra.Command, args []string) error {
			sensor, err := createColorsensor()
			if err != nil {
				return err
			}

			sample, err := sensor.Samples().Current(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get current sample: %w", err)
			}

			return render(cmd, sample, anyTable())
		},
	}
}

func newSamplesStreamCommand() *cobra.Command {
	var opts urwerk.SampleStreamOptions

	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Stream live samples",
		Long: `Stream live samples from the device.

Samples are printed as JSON lines, or published to a NATS subject when
--nats-url is set. Interrupt to stop an unbounded stream.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sensor, err := createColorsensor()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			samples := sensor.Samples().Stream(ctx, opts)

			if natsURL := viper.GetString("nats_url"); natsURL != "" {
				conn, err := publish.Connect(natsURL)
				if err != nil {
					return err
				}
				defer conn.Close()

				subject := viper.GetString("subject")

				sent, err := publish.Samples(ctx, conn, subject, samples)
				if flushErr := conn.Flush(); err == nil && flushErr != nil {
					err = fmt.Errorf("flushing NATS connection: %w", flushErr)
				}

				if err != nil {
					return err
				}

				return printMessage(cmd, "Published", fmt.Sprintf("%d samples to %s", sent, subject))
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())

			for sample, err := range samples {
				if err != nil {
					return fmt.Errorf("sample stream failed: %w", err)
				}

				if err := encoder.Encode(sample); err != nil {
					return fmt.Errorf("failed to write sample: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Count, "count", 0, "number of samples to stream (0 streams until interrupted)")
	cmd.Flags().StringVar(&opts.Format, "format", "", "sample format requested from the device")
	cmd.Flags().StringVar(&opts.Delimiter, "delimiter", "", "sample delimiter requested from the device")
	cmd.Flags().String("nats-url", "", "publish samples to this NATS server instead of printing them")
	cmd.Flags().String("subject", constants.DefaultSampleSubject, "NATS subject for published samples")

	_ = viper.BindPFlag("nats_url", cmd.Flags().Lookup("nats-url"))
	_ = viper.BindPFlag("subject", cmd.Flags().Lookup("subject"))

	return cmd
}
