package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/metonic/sequence"
)

// RuleOptions holds the constraint-set flags shared by the combinatorial
// commands, plus an optional YAML rules file that overrides them.
type RuleOptions struct {
	Length    int
	Counts    []int
	MaxI      int
	MaxO      int
	RulesFile string
}

// addRuleFlags registers the shared constraint flags with defaults from
// the classical Metonic rule set.
func addRuleFlags(cmd *cobra.Command, opts *RuleOptions) {
	def := sequence.DefaultRule()
	cmd.Flags().IntVarP(&opts.Length, "length", "n", def.Length, "sequence length in years")
	cmd.Flags().IntSliceVar(&opts.Counts, "counts", def.Counts, "allowed intercalary-year counts")
	cmd.Flags().IntVar(&opts.MaxI, "max-i", def.MaxI, "longest allowed intercalary run (cyclic)")
	cmd.Flags().IntVar(&opts.MaxO, "max-o", def.MaxO, "longest allowed ordinary run (cyclic)")
	cmd.Flags().StringVar(&opts.RulesFile, "rules", "", "YAML rules file (overrides rule flags)")
}

// Rule resolves the effective rule set: the YAML file when given,
// otherwise the flag values.
func (o *RuleOptions) Rule() (sequence.Rule, error) {
	if o.RulesFile == "" {
		return sequence.Rule{Length: o.Length, Counts: o.Counts, MaxI: o.MaxI, MaxO: o.MaxO}, nil
	}
	return LoadRules(o.RulesFile)
}

// countList accepts either a single integer or a list of integers in YAML,
// normalizing the scalar form to a one-element set at the decode boundary.
type countList []int

func (c *countList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var single int
		if err := value.Decode(&single); err != nil {
			return fmt.Errorf("counts: %w", err)
		}
		*c = countList{single}
		return nil
	case yaml.SequenceNode:
		var many []int
		if err := value.Decode(&many); err != nil {
			return fmt.Errorf("counts: %w", err)
		}
		*c = countList(many)
		return nil
	default:
		return fmt.Errorf("counts: expected an integer or a list of integers")
	}
}

// ruleFile is the YAML shape of a rules file.
type ruleFile struct {
	Length int       `yaml:"length"`
	Counts countList `yaml:"counts"`
	MaxI   int       `yaml:"max_i"`
	MaxO   int       `yaml:"max_o"`
}

// LoadRules reads a rule set from a YAML file. Example:
//
//	length: 19
//	counts: 7        # scalar or list, e.g. [6, 7]
//	max_i: 1
//	max_o: 2
func LoadRules(path string) (sequence.Rule, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return sequence.Rule{}, fmt.Errorf("read rules file: %w", err)
	}

	var rf ruleFile
	if err = yaml.Unmarshal(raw, &rf); err != nil {
		return sequence.Rule{}, fmt.Errorf("parse rules file %s: %w", path, err)
	}

	return sequence.Rule{Length: rf.Length, Counts: rf.Counts, MaxI: rf.MaxI, MaxO: rf.MaxO}, nil
}
