package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/metonic/necklace"
	"github.com/katalvlaran/metonic/sequence"
)

// CyclesOptions holds flags for the cycles command.
type CyclesOptions struct {
	*RootOptions
	Rules   RuleOptions
	Letters bool
}

// CyclesResult is the JSON payload of the cycles command.
type CyclesResult struct {
	Rule   RuleJSON `json:"rule"`
	Cycles []string `json:"cycles"`
}

// RuleJSON is the serializable form of a rule set.
type RuleJSON struct {
	Length int   `json:"length"`
	Counts []int `json:"counts"`
	MaxI   int   `json:"max_i"`
	MaxO   int   `json:"max_o"`
}

func ruleJSON(r sequence.Rule) RuleJSON {
	return RuleJSON{Length: r.Length, Counts: r.Counts, MaxI: r.MaxI, MaxO: r.MaxO}
}

// NewCyclesCommand creates the cycles command: enumerate, filter, and
// reduce to the canonical cycle set for a rule set.
func NewCyclesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CyclesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "cycles",
		Short: "List the rotation-unique cycles admitted by a rule set",
		Long: `Enumerate every sequence of the requested length, keep those satisfying
the count and run-length rules, and reduce rotations of the same ring to
one canonical cycle. Defaults reproduce the classical Metonic rule set.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCycles(opts, cmd)
		},
	}

	addRuleFlags(cmd, &opts.Rules)
	cmd.Flags().BoolVar(&opts.Letters, "letters", false, "print cycles as O/I letters")

	return cmd
}

func runCycles(opts *CyclesOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	rule, err := opts.Rules.Rule()
	if err != nil {
		return err
	}
	formatter.VerboseLog("rule: length=%d counts=%v max_i=%d max_o=%d",
		rule.Length, rule.Counts, rule.MaxI, rule.MaxO)

	cycles, err := necklace.CycleSet(rule)
	if err != nil {
		return err
	}
	formatter.VerboseLog("%d canonical cycle(s)", len(cycles))

	lines := make([]string, 0, len(cycles))
	for _, c := range cycles {
		line := c
		if opts.Letters {
			if line, err = sequence.AsString(c); err != nil {
				return err
			}
		}
		lines = append(lines, line)
	}

	return formatter.Success(CyclesResult{Rule: ruleJSON(rule), Cycles: cycles}, lines...)
}
