package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/bpe-analyzer/internal/classifier"
)

func newClassifyCmd(_ *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <word>...",
		Short: "Print the category of each word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, word := range args {
				fmt.Fprintf(tw, "%s\t%s\n", word, classifier.Classify(word))
			}
			return tw.Flush()
		},
	}
}
