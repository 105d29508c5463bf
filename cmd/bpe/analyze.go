package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/bpe-analyzer/internal/domain"
	"github.com/heartmarshall/bpe-analyzer/internal/fileset"
	"github.com/heartmarshall/bpe-analyzer/internal/report"
)

func newAnalyzeCmd(c *cli) *cobra.Command {
	var (
		format string
		jobs   int
	)

	cmd := &cobra.Command{
		Use:   "analyze <file|glob>...",
		Short: "Classify diagram labels and print a report",
		Long: `analyze runs extraction and classification over every matched file and
prints a report with one section per category and summary statistics.
Patterns may use ** to match nested directories; quote them so the shell
does not expand them first.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormat(format)
			if err != nil {
				return err
			}

			paths, err := fileset.Expand(args)
			if err != nil {
				return err
			}

			return c.analyze(cmd.Context(), cmd.OutOrStdout(), paths, f, jobs)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(domain.OutputFormatText), "output format: text, json or yaml")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "files processed in parallel (default: number of CPUs)")
	return cmd
}

func (c *cli) analyze(ctx context.Context, w io.Writer, paths []string, format domain.OutputFormat, jobs int) error {
	files, err := c.svc.AnalyzeFiles(ctx, paths, jobs)
	if err != nil {
		return err
	}
	return report.Render(w, format, files)
}

func parseFormat(s string) (domain.OutputFormat, error) {
	f := domain.OutputFormat(s)
	if !f.IsValid() {
		return "", fmt.Errorf("unknown format %q (want text, json or yaml)", s)
	}
	return f, nil
}
