package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metonic/cyclic"
	"github.com/katalvlaran/metonic/necklace"
)

// SegmentsOptions holds flags for the segments command.
type SegmentsOptions struct {
	*RootOptions
	Rules RuleOptions
	Cycle string
}

// SegmentsResult is the JSON payload of the segments command.
type SegmentsResult struct {
	Width    int      `json:"width"`
	Sources  []string `json:"sources"`
	Segments []string `json:"segments"`
}

// NewSegmentsCommand creates the segments command: the distinct
// fixed-width cyclic windows of one cycle or of a rule set's cycle set.
func NewSegmentsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SegmentsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "segments <width>",
		Short: "List distinct cyclic windows of the given width",
		Long: `Read every window of the given width from a ring, wrapping past the
seam, and list the distinct results sorted. With --cycle the windows come
from that single ring; otherwise from every cycle the rule set admits.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid width %q: %w", args[0], err)
			}
			return runSegments(opts, width, cmd)
		},
	}

	addRuleFlags(cmd, &opts.Rules)
	cmd.Flags().StringVar(&opts.Cycle, "cycle", "", "segment this single cycle instead of the rule-set cycles")

	return cmd
}

func runSegments(opts *SegmentsOptions, width int, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	sources := []string{opts.Cycle}
	if opts.Cycle == "" {
		rule, err := opts.Rules.Rule()
		if err != nil {
			return err
		}
		if sources, err = necklace.CycleSet(rule); err != nil {
			return err
		}
	}
	formatter.VerboseLog("segmenting %d source cycle(s) at width %d", len(sources), width)

	segs, err := cyclic.SegmentsAll(sources, width)
	if err != nil {
		return err
	}

	return formatter.Success(
		SegmentsResult{Width: width, Sources: sources, Segments: segs},
		segs...)
}
