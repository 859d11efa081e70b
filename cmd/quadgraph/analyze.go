package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quadgraph/quadgraph/pipeline/catalog"
	"github.com/quadgraph/quadgraph/pipeline/prereq"
)

// analyzedCourse is one catalog entry in a classification bucket.
type analyzedCourse struct {
	Index   string   `json:"index"`
	Text    string   `json:"text,omitempty"`
	Courses []string `json:"courses,omitempty"`
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Classify prerequisite texts into none, course-only, and remaining buckets",
	RunE: func(cmd *cobra.Command, args []string) error {
		var courses []catalog.Course
		if err := readJSON(dataPath(cfg.Data.Courses), &courses); err != nil {
			return err
		}

		var none, courseOnly, remaining []analyzedCourse
		for _, course := range courses {
			text := ""
			if course.Prerequisites != nil {
				text = *course.Prerequisites
			}
			switch prereq.Classify(text) {
			case prereq.KindNone:
				none = append(none, analyzedCourse{Index: course.Index})
			case prereq.KindCourseOnly:
				spans := prereq.FindCourseSpans(text)
				refs := make([]string, 0, len(spans))
				for _, span := range spans {
					refs = append(refs, span.Course)
				}
				courseOnly = append(courseOnly, analyzedCourse{Index: course.Index, Text: text, Courses: refs})
			default:
				remaining = append(remaining, analyzedCourse{Index: course.Index, Text: text})
			}
		}

		if err := writeJSON(dataPath("prereq_none.json"), none); err != nil {
			return err
		}
		if err := writeJSON(dataPath("prereq_course_only.json"), courseOnly); err != nil {
			return err
		}
		if err := writeJSON(dataPath("prereq_remaining.json"), remaining); err != nil {
			return err
		}

		logger.Info("prerequisite texts classified",
			zap.Int("none", len(none)),
			zap.Int("course_only", len(courseOnly)),
			zap.Int("remaining", len(remaining)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
