package prereq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCourseSpans(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"single", "CS 225", []string{"CS 225"}},
		{"no space", "CS225 required", []string{"CS 225"}},
		{"letter suffix", "MATH 241H and ECE 110", []string{"MATH 241H", "ECE 110"}},
		{"order preserved", "MATH 231, CS 173 or CS 225", []string{"MATH 231", "CS 173", "CS 225"}},
		{"four letter subject", "STAT 400 or ECON 202", []string{"STAT 400", "ECON 202"}},
		{"bare number ignored", "at least 3 credit hours", nil},
		{"lowercase ignored", "cs 225 is not a token", nil},
		{"one letter subject ignored", "A 225", nil},
		{"embedded word ignored", "VITAMIN 225", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans := FindCourseSpans(tt.text)
			var got []string
			for _, span := range spans {
				got = append(got, span.Course)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindCourseSpansOffsets(t *testing.T) {
	text := "Prerequisite: CS 225 and MATH 231."
	spans := FindCourseSpans(text)
	require.Len(t, spans, 2)

	// Every reference must be backed by a concrete text offset.
	assert.Equal(t, "CS 225", text[spans[0].Start:spans[0].End])
	assert.Equal(t, "MATH 231", text[spans[1].Start:spans[1].End])
	assert.Less(t, spans[0].Start, spans[1].Start)
}

func TestNormalizeSpace(t *testing.T) {
	assert.Equal(t, "CS 225 and MATH 231", NormalizeSpace("  CS \t225  and\nMATH  231 "))
	assert.Equal(t, "", NormalizeSpace(" \t\n "))
}
