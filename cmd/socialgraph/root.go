package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/socialgraph/builder"
	"github.com/katalvlaran/socialgraph/config"
	"github.com/katalvlaran/socialgraph/database"
	"github.com/katalvlaran/socialgraph/dataset"
)

// app carries what every subcommand needs once the root pre-run has loaded
// configuration and built the graph.
type app struct {
	cfgPath  string
	dataset  string
	logLevel string

	cfg    *config.Config
	logger *zap.Logger
	reg    *prometheus.Registry
	db     *database.Database
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "socialgraph",
		Short: "Search the member graph induced by shared groups",
		Long: `Members who share a group are connected. The weight of a connection is
the size of its group plus one.

Subcommands:
  bfs    - fewest-hop path between two members
  iddfs  - iterative-deepening path search with a depth bound
  grow   - greedy weighted tree from a member
  dump   - connection tables
  stats  - graph counts`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.teardown(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML config file")
	pf.StringVar(&a.dataset, "dataset", "", "YAML dataset (overrides config)")
	pf.StringVar(&a.logLevel, "log-level", "", "debug|info|warn|error (overrides config)")

	root.AddCommand(
		newBFSCmd(a),
		newIDDFSCmd(a),
		newGrowCmd(a),
		newDumpCmd(a),
		newStatsCmd(a),
	)

	return root
}

// setup resolves config (file, env, flags), builds the logger and the graph.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.dataset != "" {
		cfg.Dataset = a.dataset
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger, err = config.NewLogger(cfg); err != nil {
		return fmt.Errorf("logger: %w", err)
	}

	ds, err := dataset.Load(cfg.Dataset)
	if err != nil {
		return err
	}

	a.reg = prometheus.NewRegistry()
	a.db, err = database.New(
		database.WithLogger(a.logger),
		database.WithRegisterer(a.reg),
		database.WithBuilderOptions(builder.WithSeed(cfg.Seed)),
		database.WithRandomConnections(cfg.RandomEdges),
	)
	if err != nil {
		return err
	}
	a.logger.Debug("dataset loaded",
		zap.String("path", cfg.Dataset),
		zap.Int("members", len(ds.Members)),
		zap.Int("groups", len(ds.Groups)),
	)

	return a.db.BuildGraph(ds.Members, ds.Groups)
}

// teardown prints the metrics registry when enabled and flushes the logger.
func (a *app) teardown(cmd *cobra.Command) error {
	if a.cfg != nil && a.cfg.Metrics {
		mfs, err := a.reg.Gather()
		if err != nil {
			return err
		}
		for _, mf := range mfs {
			if _, err = expfmt.MetricFamilyToText(cmd.ErrOrStderr(), mf); err != nil {
				return err
			}
		}
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}

	return nil
}
