package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metonic/calendar"
)

// YearOptions holds flags for the year command.
type YearOptions struct {
	*RootOptions
}

// YearResult is the JSON payload of the year command.
type YearResult struct {
	Year     int `json:"year"`
	Cycle    int `json:"cycle"`
	Position int `json:"position"`
}

// NewYearCommand creates the year command: conversion between
// astronomical years and Metonic (cycle, position) coordinates.
func NewYearCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &YearOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "year <year> | year <cycle> <position>",
		Short: "Convert between astronomical years and Metonic coordinates",
		Long: `With one argument, convert an astronomical year (BCE negative, 1 BCE
is 0) to its Metonic cycle and 1-based position. With two arguments,
convert a cycle and position back to the astronomical year.`,
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runYear(opts, args, cmd)
		},
	}

	return cmd
}

func runYear(opts *YearOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	nums := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("invalid integer %q: %w", a, err)
		}
		nums[i] = n
	}

	var result YearResult
	if len(nums) == 1 {
		result.Year = nums[0]
		result.Cycle, result.Position = calendar.ToMetonic(nums[0])
	} else {
		result.Cycle, result.Position = nums[0], nums[1]
		year, err := calendar.FromMetonic(nums[0], nums[1])
		if err != nil {
			return err
		}
		result.Year = year
	}

	line := fmt.Sprintf("year %d = cycle %d, position %d", result.Year, result.Cycle, result.Position)

	return formatter.Success(result, line)
}
