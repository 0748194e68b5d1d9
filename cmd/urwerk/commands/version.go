package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/neusy/urwerk-client/internal/version"
)

// VersionInfo is the output of the version command.
type VersionInfo struct {
	Version   string `json:"version"    yaml:"version"`
	Commit    string `json:"commit"     yaml:"commit"`
	Built     string `json:"built"      yaml:"built"`
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the urwerk CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := VersionInfo{
				Version:   version.Version,
				Commit:    version.Commit,
				Built:     version.Date,
				UserAgent: version.UserAgent(),
			}

			return render(cmd, info, func(out io.Writer, info VersionInfo) error {
				table := newTable(out, "property", "value")
				_ = table.Append("Version", info.Version)
				_ = table.Append("Commit", info.Commit)
				_ = table.Append("Built", info.Built)
				_ = table.Append("User Agent", info.UserAgent)

				return renderTable(table)
			})
		},
	}
}
