package cmd

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hollowkeep/hollowkeep/internal/errors"
	"github.com/hollowkeep/hollowkeep/pkg/bsearch"
)

// demoSeq is the sequence searched when no values are given.
var demoSeq = []int{2, 5, 8, 12, 16, 23, 38, 56, 72, 91}

// findOptions holds CLI flags for find.
type findOptions struct {
	format string // "text", "json"
}

// findResult is the JSON shape of one lookup. Index is -1 on a miss.
type findResult struct {
	Target int  `json:"target"`
	Found  bool `json:"found"`
	Index  int  `json:"index"`
}

func newFindCmd() *cobra.Command {
	var opts findOptions

	cmd := &cobra.Command{
		Use:   "find <target> [values...]",
		Short: "Binary-search a sorted sequence of integers",
		Long: `Binary-search a sorted sequence of integers for a target value.

This is the same lookup the game engine uses for its room, item and
inventory registries. With no values given, a small demo sequence is
searched.

Examples:
  hollowkeep find 23
  hollowkeep find 7 1 3 5 7 9 11
  hollowkeep find 40 --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")

	return cmd
}

func runFind(cmd *cobra.Command, args []string, opts findOptions) error {
	target, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.New(errors.ErrCodeInvalidInput, "target is not an integer", err).
			WithDetail("target", args[0])
	}

	seq := demoSeq
	if len(args) > 1 {
		seq = make([]int, 0, len(args)-1)
		for _, arg := range args[1:] {
			v, err := strconv.Atoi(arg)
			if err != nil {
				return errors.New(errors.ErrCodeInvalidInput, "value is not an integer", err).
					WithDetail("value", arg)
			}
			seq = append(seq, v)
		}
		// The search precondition; cheap to verify at the CLI boundary.
		if !slices.IsSorted(seq) {
			return errors.New(errors.ErrCodeInvalidInput, "values must be in ascending order", nil).
				WithSuggestion("sort the values before searching")
		}
	}

	idx, found := bsearch.Find(seq, target)
	if !found {
		idx = -1
	}

	if opts.format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(findResult{Target: target, Found: found, Index: idx})
	}

	if found {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "found %d at index %d\n", target, idx)
	} else {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d not found\n", target)
	}
	return err
}
