package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/metonic/cyclic"
	"github.com/katalvlaran/metonic/necklace"
)

// FindOptions holds flags for the find command.
type FindOptions struct {
	*RootOptions
	Rules RuleOptions
	Cycle string
}

// FindResult is the JSON payload of the find command.
type FindResult struct {
	Test    string   `json:"test"`
	Matches []string `json:"matches"`
}

// NewFindCommand creates the find command: cyclic substring search of a
// test sequence against one cycle or a rule set's cycle set.
func NewFindCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FindOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "find <sequence>",
		Short: "Find cycles containing a sequence, wraparound included",
		Long: `Test whether the sequence occurs on each candidate ring, including
occurrences spanning the seam between last and first year. No match is an
empty result, not an error.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(opts, args[0], cmd)
		},
	}

	addRuleFlags(cmd, &opts.Rules)
	cmd.Flags().StringVar(&opts.Cycle, "cycle", "", "search this single cycle instead of the rule-set cycles")

	return cmd
}

func runFind(opts *FindOptions, test string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	candidates := []string{opts.Cycle}
	if opts.Cycle == "" {
		rule, err := opts.Rules.Rule()
		if err != nil {
			return err
		}
		if candidates, err = necklace.CycleSet(rule); err != nil {
			return err
		}
	}
	formatter.VerboseLog("searching %d candidate cycle(s)", len(candidates))

	matches := cyclic.FindInCycles(test, candidates)
	if matches == nil {
		matches = []string{} // stable JSON: empty array, not null
	}

	lines := matches
	if len(matches) == 0 {
		lines = []string{"no matches"}
	}

	return formatter.Success(FindResult{Test: test, Matches: matches}, lines...)
}
