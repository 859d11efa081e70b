package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quadgraph/quadgraph/pipeline/catalog"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the course catalog and save raw course records",
	RunE: func(cmd *cobra.Command, args []string) error {
		options := []catalog.Option{
			catalog.WithLogger(logger),
			catalog.WithMaxRetries(uint64(cfg.Catalog.MaxRetries)),
		}
		if cfg.Catalog.BaseUrl != "" {
			options = append(options, catalog.WithBaseUrl(cfg.Catalog.BaseUrl))
		}
		client := catalog.NewClient(options...)

		courses, err := client.FetchCatalog(cmd.Context(), catalog.FetchOptions{
			Year:        cfg.Catalog.Year,
			Term:        cfg.Catalog.Term,
			Subject:     cfg.Catalog.Subject,
			Concurrency: cfg.Catalog.Concurrency,
			Sleep:       time.Duration(cfg.Catalog.Sleep),
		})
		if err != nil {
			return err
		}

		path := dataPath(cfg.Data.Courses)
		if err := writeJSON(path, courses); err != nil {
			return err
		}
		logger.Info("catalog saved", zap.Int("courses", len(courses)), zap.String("path", path))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
