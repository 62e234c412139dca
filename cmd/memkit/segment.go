package main

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/ajitpratap0/memkit/pkg/json"
	"github.com/ajitpratap0/memkit/pkg/segment"
)

// SegmentView describes a segment for JSON output.
type SegmentView struct {
	Offset int    `json:"offset"`
	Count  int    `json:"count"`
	Items  []int  `json:"items"`
	Hash   uint64 `json:"hash"`
}

func viewOf(s segment.Segment[int]) SegmentView {
	return SegmentView{Offset: s.Offset(), Count: s.Count(), Items: s.ToArray(), Hash: s.Hash()}
}

func newSegmentCmd() *cobra.Command {
	var (
		values     []int
		offset     int
		count      int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "segment",
		Short: "Show a segment over a list of values",
		Long: heredoc.Doc(`
			Builds a segment over --values and prints it together with its
			head and tail halves. A negative --count takes everything after
			--offset.

			Example:
			  memkit segment --values 10,20,30,40 --offset 1 --count 2`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				count = len(values) - offset
			}
			s, err := segment.FromSliceRange(values, offset, count)
			if err != nil {
				return err
			}

			half := s.Count() / 2
			head, err := s.Take(half)
			if err != nil {
				return err
			}
			tail, err := s.Skip(half)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				return json.Encode(out, map[string]SegmentView{
					"segment": viewOf(s),
					"head":    viewOf(head),
					"tail":    viewOf(tail),
				}, "  ")
			}
			fmt.Fprintf(out, "values:  %v\n", values)
			fmt.Fprintf(out, "segment: offset=%d count=%d %v\n", s.Offset(), s.Count(), s.ToArray())
			fmt.Fprintf(out, "head:    offset=%d count=%d %v\n", head.Offset(), head.Count(), head.ToArray())
			fmt.Fprintf(out, "tail:    offset=%d count=%d %v\n", tail.Offset(), tail.Count(), tail.ToArray())
			fmt.Fprintf(out, "hash:    %#016x\n", s.Hash())
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&values, "values", nil, "Comma-separated integers to view")
	cmd.Flags().IntVar(&offset, "offset", 0, "Segment offset")
	cmd.Flags().IntVar(&count, "count", -1, "Segment count (negative = rest)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print as JSON")

	return cmd
}
