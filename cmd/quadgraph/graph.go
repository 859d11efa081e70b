package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quadgraph/quadgraph/pipeline/graph"
)

var (
	hardOnlyFlag   bool
	reduceFlag     bool
	seedFlag       int64
	iterationsFlag int
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Build graph and layout assets from parsed records",
	RunE: func(cmd *cobra.Command, args []string) error {
		var records []graph.Record
		if err := readJSON(dataPath(cfg.Data.Parsed), &records); err != nil {
			return err
		}

		includeCoreq := cfg.Graph.IncludeCoreq && !hardOnlyFlag
		g := graph.Build(records, includeCoreq)
		if reduceFlag {
			g = graph.Reduce(g)
		}

		seed := cfg.Graph.Seed
		if cmd.Flags().Changed("seed") {
			seed = seedFlag
		}
		iterations := cfg.Graph.Iterations
		if cmd.Flags().Changed("iterations") {
			iterations = iterationsFlag
		}
		positions := graph.SpringLayout(g, seed, iterations)

		if err := writeJSON(dataPath(cfg.Data.GraphFile), g); err != nil {
			return err
		}
		if err := writeJSON(dataPath(cfg.Data.Positions), positions); err != nil {
			return err
		}

		logger.Info("graph written",
			zap.Int("nodes", len(g.Nodes)),
			zap.Int("edges", len(g.Edges)),
			zap.Int64("seed", seed),
			zap.Bool("reduced", reduceFlag))
		return nil
	},
}

func init() {
	graphCmd.Flags().BoolVar(&hardOnlyFlag, "hard-only", false, "exclude coreq-allowed edges")
	graphCmd.Flags().BoolVar(&reduceFlag, "reduce", false, "apply transitive reduction to hard edges")
	graphCmd.Flags().Int64Var(&seedFlag, "seed", 0, "layout seed (overrides config)")
	graphCmd.Flags().IntVar(&iterationsFlag, "iterations", 0, "layout iterations (overrides config)")
	rootCmd.AddCommand(graphCmd)
}
