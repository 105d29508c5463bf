package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/bpe-analyzer/internal/fileset"
)

var errNoLabels = errors.New("no labels with spaces found")

func newExtractCmd(c *cli) *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "extract <file|glob>...",
		Short: "Print the multi-word labels of diagrams",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := fileset.Expand(args)
			if err != nil {
				return err
			}

			files, err := c.svc.AnalyzeFiles(cmd.Context(), paths, jobs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			total := 0
			for i, f := range files {
				if len(files) > 1 {
					if i > 0 {
						fmt.Fprintln(out)
					}
					fmt.Fprintf(out, "%s:\n", f.Path)
				}
				fmt.Fprintf(out, "Extracted %d label(s) with spaces\n", len(f.Labels))
				for _, l := range f.Labels {
					fmt.Fprintln(out, l)
				}
				total += len(f.Labels)
			}

			if total == 0 {
				return errNoLabels
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "files processed in parallel (default: number of CPUs)")
	return cmd
}
