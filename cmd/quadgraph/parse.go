package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quadgraph/quadgraph/pipeline/prereq"
)

type parsedCourse struct {
	Index string      `json:"index"`
	Text  string      `json:"text"`
	Tree  prereq.Node `json:"tree"`
}

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse the course-only bucket into boolean requirement trees",
	RunE: func(cmd *cobra.Command, args []string) error {
		var courseOnly []analyzedCourse
		if err := readJSON(dataPath("prereq_course_only.json"), &courseOnly); err != nil {
			return err
		}

		parsed, unparsed := splitParsed(courseOnly)

		if err := writeJSON(dataPath("prereq_parsed.json"), parsed); err != nil {
			return err
		}
		if err := writeJSON(dataPath("prereq_unparsed.json"), unparsed); err != nil {
			return err
		}

		logger.Info("course-only texts parsed",
			zap.Int("parsed", len(parsed)),
			zap.Int("unparsed", len(unparsed)))
		return nil
	},
}

// splitParsed parses each course-only text and routes it by outcome. A
// text yielding no tree at all is unparsed; otherwise the hard tree is
// kept, falling back to the coreq-allowed tree when only that one exists.
func splitParsed(courses []analyzedCourse) ([]parsedCourse, []analyzedCourse) {
	var parsed []parsedCourse
	var unparsed []analyzedCourse
	for _, course := range courses {
		result := prereq.ParseText(course.Text)
		if result.Hard.IsEmpty() && result.CoreqOK.IsEmpty() {
			unparsed = append(unparsed, course)
			continue
		}
		tree := result.Hard
		if tree.IsEmpty() {
			tree = result.CoreqOK
		}
		parsed = append(parsed, parsedCourse{Index: course.Index, Text: course.Text, Tree: tree})
	}
	return parsed, unparsed
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
