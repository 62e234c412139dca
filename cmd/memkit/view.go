package main

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/ajitpratap0/memkit/pkg/mmap"
)

func newViewCmd() *cobra.Command {
	var (
		skip int
		take int
	)

	cmd := &cobra.Command{
		Use:   "view FILE",
		Short: "Print a range of lines from a memory-mapped file",
		Long: heredoc.Doc(`
			Maps FILE read-only and prints lines through zero-copy segments,
			each prefixed with its byte offset.

			Example:
			  memkit view access.log --skip 100 --take 10`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := mmap.Open(args[0])
			if err != nil {
				return err
			}
			defer r.Close()

			out := cmd.OutOrStdout()
			n := 0
			for line := range r.Lines() {
				n++
				if n <= skip {
					continue
				}
				if take >= 0 && n > skip+take {
					break
				}
				fmt.Fprintf(out, "%8d  %s\n", line.Offset(), line.Items())
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "Lines to skip")
	cmd.Flags().IntVar(&take, "take", -1, "Lines to print (negative = all)")

	return cmd
}
