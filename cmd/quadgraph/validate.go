package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quadgraph/quadgraph/pipeline/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check parsed records against the record schema",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := dataPath(cfg.Data.Parsed)
		if len(args) == 1 {
			path = args[0]
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		issues, err := schema.ValidateRecords(data)
		if err != nil {
			return err
		}
		for _, issue := range issues {
			logger.Warn("schema violation",
				zap.Int("record", issue.Record),
				zap.String("path", issue.Path),
				zap.String("message", issue.Message))
		}
		if len(issues) > 0 {
			return fmt.Errorf("%v schema violations in %v", len(issues), path)
		}

		logger.Info("records valid", zap.String("path", path))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
