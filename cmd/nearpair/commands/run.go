package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nearpair/cluster"
	"github.com/katalvlaran/nearpair/config"
	"github.com/katalvlaran/nearpair/pairs"
	"github.com/katalvlaran/nearpair/point"
	"github.com/katalvlaran/nearpair/report"
	"github.com/katalvlaran/nearpair/store"
)

func newRunCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <input>",
		Short: "Cluster the points in <input> and print the product of the largest groups",
		Long: `Reads one "x,y,z" point per line, ranks every pair by squared distance and
joins the nearest pairs for a fixed step budget.

With --budget -1 (the default, unless the config file sets a budget) inputs
with more than small_input_threshold points use large_budget, the rest use
small_budget. --budget 0 examines no pairs and reports no groups.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, g)
			if err != nil {
				return err
			}
			return runCluster(cmd, g, cfg, args[0])
		},
	}

	f := cmd.Flags()
	f.Int("budget", config.AutoBudget, "number of nearest pairs to examine (-1 = heuristic)")
	f.String("method", string(pairs.MethodSort), "pair ranking method: sort, heap")
	f.Int("max-points", pairs.DefaultMaxPoints, "reject inputs with more points")
	f.Int("top", report.DefaultTop, "how many of the largest groups to multiply")
	f.String("format", report.FormatText, "output format: text, json, yaml")
	f.String("db", "", "SQLite file to record the run in")

	return cmd
}

// resolveConfig layers explicitly set flags over the config file (or the
// defaults) and validates the result.
func resolveConfig(cmd *cobra.Command, g *globalFlags) (config.Config, error) {
	cfg := config.Default()
	if g.config != "" {
		var err error
		if cfg, err = config.Load(g.config); err != nil {
			return config.Config{}, err
		}
	}

	f := cmd.Flags()
	if f.Changed("budget") {
		cfg.Budget, _ = f.GetInt("budget")
	}
	if f.Changed("method") {
		cfg.Method, _ = f.GetString("method")
	}
	if f.Changed("max-points") {
		cfg.MaxPoints, _ = f.GetInt("max-points")
	}
	if f.Changed("top") {
		cfg.Top, _ = f.GetInt("top")
	}
	if f.Changed("format") {
		cfg.Format, _ = f.GetString("format")
	}
	if f.Changed("db") {
		cfg.HistoryDB, _ = f.GetString("db")
	}

	return cfg, cfg.Validate()
}

func runCluster(cmd *cobra.Command, g *globalFlags, cfg config.Config, input string) error {
	log := newLogger(cmd.ErrOrStderr(), g.verbose)

	loaded, err := point.LoadFile(input, point.WithMaxPoints(cfg.MaxPoints))
	if err != nil {
		return err
	}
	n := loaded.Len()
	budget := cfg.BudgetFor(n)
	log.Debug("loaded points", "input", input, "points", n, "budget", budget, "method", cfg.Method)

	ranker, err := pairs.NewRanker(loaded.Points(), cfg.RankOptions()...)
	if err != nil {
		return err
	}
	engine, err := cluster.New(ranker, budget, cluster.WithLogger(log))
	if err != nil {
		return err
	}
	if err := engine.Run(); err != nil {
		return fmt.Errorf("cluster %s: %w", input, err)
	}

	rep, err := report.Summarize(engine.GroupSizes(), cfg.Top)
	if err != nil {
		return err
	}
	log.Info("clustering done", "points", n, "steps", engine.Steps(), "groups", rep.Groups, "placed", rep.Placed)

	if err := report.Write(cmd.OutOrStdout(), rep, cfg.Format); err != nil {
		return err
	}

	if cfg.HistoryDB == "" {
		return nil
	}
	hist, err := store.Open(cfg.HistoryDB)
	if err != nil {
		return err
	}
	defer hist.Close()

	saved, err := hist.Save(cmd.Context(), store.Run{
		Input:   input,
		Points:  n,
		Budget:  budget,
		Method:  cfg.Method,
		Sizes:   rep.Sizes,
		Product: rep.Product,
	})
	if err != nil {
		return err
	}
	log.Info("run recorded", "id", saved.ID, "db", cfg.HistoryDB)

	return nil
}
