package prereq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func and(items ...Node) Node { return Node{Op: OpAnd, Items: items} }
func or(items ...Node) Node  { return Node{Op: OpOr, Items: items} }

func TestParseClause(t *testing.T) {
	tests := []struct {
		name   string
		clause string
		want   Node
	}{
		{
			"no courses",
			"Senior standing required",
			Empty(),
		},
		{
			"single course collapses to leaf",
			"CS 225",
			Course("CS 225"),
		},
		{
			"pure conjunction",
			"CS 225 and MATH 231",
			and(Course("CS 225"), Course("MATH 231")),
		},
		{
			"pure disjunction",
			"CS 225 or CS 233",
			or(Course("CS 225"), Course("CS 233")),
		},
		{
			"and/or reads as or",
			"CS 225 and/or CS 233",
			or(Course("CS 225"), Course("CS 233")),
		},
		{
			"comma list defaults to or",
			"CS 225, CS 233, CS 241",
			or(Course("CS 225"), Course("CS 233"), Course("CS 241")),
		},
		{
			"trailing or resolves the list",
			"CS 225, CS 233, or CS 241",
			or(Course("CS 225"), Course("CS 233"), Course("CS 241")),
		},
		{
			"one of groups the tail",
			"MATH 231 and one of CS 225, CS 233, or CS 241",
			and(Course("MATH 231"), or(Course("CS 225"), Course("CS 233"), Course("CS 241"))),
		},
		{
			"any of without a prior course",
			"any of CS 225, CS 233",
			or(Course("CS 225"), Course("CS 233")),
		},
		{
			"one of with a single choice collapses",
			"one of CS 225",
			Course("CS 225"),
		},
		{
			"one of phrase after all tokens falls through",
			"CS 225 and MATH 231, or one of the approved seminars",
			and(Course("CS 225"), Course("MATH 231")),
		},
		{
			"mixed connectors re-segment by commas",
			"CS 125 and CS 173, or MATH 213",
			and(and(Course("CS 125"), Course("CS 173")), Course("MATH 213")),
		},
		{
			"or and list stays a flat or",
			"CS 125 or CS 126, MATH 213 or MATH 214",
			or(Course("CS 125"), Course("CS 126"), Course("MATH 213"), Course("MATH 214")),
		},
		{
			"ambiguous segment defaults to or",
			"CS 125 and CS 126 or CS 128, MATH 213 or MATH 214",
			or(
				or(Course("CS 125"), Course("CS 126"), Course("CS 128")),
				or(Course("MATH 213"), Course("MATH 214")),
			),
		},
		{
			"duplicate tokens are kept",
			"CS 225 and CS 225",
			and(Course("CS 225"), Course("CS 225")),
		},
		{
			"messy whitespace",
			"  CS   225   and\tMATH 231 ",
			and(Course("CS 225"), Course("MATH 231")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseClause(tt.clause))
		})
	}
}

func TestParseClauseNeverEmptyWithCourses(t *testing.T) {
	clauses := []string{
		"CS 225",
		"completion of CS 225 with a grade of B",
		"CS 225, MATH 231 and PHYS 211, or consent",
	}
	for _, clause := range clauses {
		assert.False(t, ParseClause(clause).IsEmpty(), "clause %q", clause)
	}
}
