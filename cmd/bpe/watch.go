package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/bpe-analyzer/internal/domain"
	"github.com/heartmarshall/bpe-analyzer/internal/fileset"
	"github.com/heartmarshall/bpe-analyzer/internal/watch"
)

func newWatchCmd(c *cli) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-run analyze whenever a diagram is saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormat(format)
			if err != nil {
				return err
			}

			paths, err := fileset.Expand(args)
			if err != nil {
				return err
			}
			if len(paths) != 1 {
				return fmt.Errorf("watch takes a single file, %q matched %d", args[0], len(paths))
			}
			path := paths[0]

			out := cmd.OutOrStdout()
			run := func(ctx context.Context) {
				if err := c.analyze(ctx, out, []string{path}, f, 1); err != nil {
					c.log.Warn("analysis failed", slog.String("path", path), slog.String("error", err.Error()))
				}
			}

			run(cmd.Context())
			c.log.Info("watching for changes, press Ctrl+C to stop", slog.String("path", path))

			return watch.New(path, c.cfg.Watch.Debounce, c.log).Run(cmd.Context(), run)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(domain.OutputFormatText), "output format: text, json or yaml")
	return cmd
}
