package cli

import (
	"github.com/spf13/cobra"

	metonic "github.com/katalvlaran/metonic"
)

// VersionResult is the JSON payload of the version command.
type VersionResult struct {
	Version string `json:"version"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the metonic version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return formatter.Success(VersionResult{Version: metonic.Version}, metonic.Version)
		},
	}
}
