package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/bpe-analyzer/internal/app"
	"github.com/heartmarshall/bpe-analyzer/internal/config"
	"github.com/heartmarshall/bpe-analyzer/internal/service/diagram"
)

// cli carries the state shared by subcommands once the root has loaded the
// configuration.
type cli struct {
	configPath string

	cfg *config.Config
	log *slog.Logger
	svc *diagram.Service
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "bpe",
		Short: "Classify the labels of draw.io business-process diagrams",
		Long: `bpe extracts the multi-word labels from draw.io diagrams and classifies
each one by its first word as an action (verb-led), an object or state
(noun-led) or unclassified.`,
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "",
		"config file (default: $CONFIG_PATH or ./config.yaml)")

	root.AddCommand(
		newExtractCmd(c),
		newAnalyzeCmd(c),
		newClassifyCmd(c),
		newWatchCmd(c),
	)

	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)
	if c.configPath != "" {
		cfg, err = config.LoadFrom(c.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	c.cfg = cfg
	c.log = app.NewLoggerTo(cmd.ErrOrStderr(), cfg.Log)
	c.svc = diagram.NewService(c.log, cfg.Upload)
	return nil
}
