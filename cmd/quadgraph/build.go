package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quadgraph/quadgraph/pipeline/catalog"
	"github.com/quadgraph/quadgraph/pipeline/db"
	"github.com/quadgraph/quadgraph/pipeline/graph"
	"github.com/quadgraph/quadgraph/pipeline/prereq"
)

var storeRecordsFlag bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Parse every prerequisite text and emit the full record set",
	RunE: func(cmd *cobra.Command, args []string) error {
		var courses []catalog.Course
		if err := readJSON(dataPath(cfg.Data.Courses), &courses); err != nil {
			return err
		}

		records := make([]graph.Record, 0, len(courses))
		counts := make(map[prereq.Kind]int)
		for _, course := range courses {
			text := ""
			if course.Prerequisites != nil {
				text = *course.Prerequisites
			}
			counts[prereq.Classify(text)]++
			records = append(records, graph.Record{
				Index:         course.Index,
				Name:          course.Name,
				Description:   course.Description,
				Prerequisites: prereq.Analyze(text),
			})
		}

		path := dataPath(cfg.Data.Parsed)
		if err := writeJSON(path, records); err != nil {
			return err
		}
		logger.Info("records built",
			zap.Int("total", len(records)),
			zap.Int("none", counts[prereq.KindNone]),
			zap.Int("course_only", counts[prereq.KindCourseOnly]),
			zap.Int("remaining", counts[prereq.KindRemaining]),
			zap.String("path", path))

		if storeRecordsFlag {
			if cfg.Database == "" {
				return fmt.Errorf("no database_url configured")
			}
			return storeRecords(cmd.Context(), records)
		}
		return nil
	},
}

func storeRecords(ctx context.Context, records []graph.Record) error {
	database, err := db.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}

	courses := make([]db.Course, 0, len(records))
	for _, record := range records {
		hard, err := json.Marshal(record.Prerequisites.Hard)
		if err != nil {
			return err
		}
		coreq, err := json.Marshal(record.Prerequisites.CoreqOK)
		if err != nil {
			return err
		}
		flags := make([]string, 0, len(record.Prerequisites.Flags))
		for _, flag := range record.Prerequisites.Flags {
			flags = append(flags, string(flag))
		}
		courses = append(courses, db.Course{
			CourseIndex: record.Index,
			Name:        record.Name,
			Description: record.Description,
			RawText:     record.Prerequisites.Raw,
			HardTree:    hard,
			CoreqTree:   coreq,
			Flags:       flags,
			Notes:       record.Prerequisites.Notes,
		})
	}
	if err := database.InsertCourses(ctx, courses); err != nil {
		return err
	}

	g := graph.Build(records, true)
	edges := make([]db.Edge, 0, len(g.Edges))
	for _, edge := range g.Edges {
		edges = append(edges, db.Edge{SourceIndex: edge.Source, TargetIndex: edge.Target, Kind: db.EdgeKind(edge.Kind)})
	}
	if err := database.InsertEdges(ctx, edges); err != nil {
		return err
	}

	logger.Info("records stored", zap.Int("courses", len(courses)), zap.Int("edges", len(edges)))
	return nil
}

func init() {
	buildCmd.Flags().BoolVar(&storeRecordsFlag, "store", false, "also insert records and edges into the configured database")
	rootCmd.AddCommand(buildCmd)
}
