package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadgraph/quadgraph/pipeline/prereq"
)

func record(index string, raw string) Record {
	return Record{Index: index, Prerequisites: prereq.Analyze(raw)}
}

func TestBuild(t *testing.T) {
	records := []Record{
		record("CS 225", "CS 173 and one of MATH 220, MATH 221"),
		record("CS 233", "CS 225; credit or concurrent registration in CS 241"),
		record("MATH 220", ""),
	}

	g := Build(records, true)

	var ids []string
	for _, node := range g.Nodes {
		ids = append(ids, node.Id)
	}
	assert.Equal(t, []string{"CS 225", "CS 173", "MATH 220", "MATH 221", "CS 233", "CS 241"}, ids)

	assert.Equal(t, []Edge{
		{Source: "CS 173", Target: "CS 225", Kind: EdgeHard},
		{Source: "MATH 220", Target: "CS 225", Kind: EdgeHard},
		{Source: "MATH 221", Target: "CS 225", Kind: EdgeHard},
		{Source: "CS 225", Target: "CS 233", Kind: EdgeHard},
		{Source: "CS 241", Target: "CS 233", Kind: EdgeCoreq},
	}, g.Edges)
}

func TestBuildHardOnly(t *testing.T) {
	records := []Record{
		record("CS 233", "CS 225; credit or concurrent registration in CS 241"),
	}

	g := Build(records, false)
	require.Len(t, g.Edges, 1)
	assert.Equal(t, EdgeHard, g.Edges[0].Kind)

	for _, node := range g.Nodes {
		assert.NotEqual(t, "CS 241", node.Id)
	}
}

func TestBuildNodeLabels(t *testing.T) {
	name := "Data Structures"
	records := []Record{
		{Index: "CS 225", Name: &name, Prerequisites: prereq.Analyze("CS 173")},
	}

	g := Build(records, true)
	require.Len(t, g.Nodes, 2)
	assert.Equal(t, Node{Id: "CS 225", Label: "Data Structures", Subject: "CS"}, g.Nodes[0])
	// A course only ever seen as a prerequisite gets its id as label.
	assert.Equal(t, Node{Id: "CS 173", Label: "CS 173", Subject: "CS"}, g.Nodes[1])
}

func TestBuildDeterministic(t *testing.T) {
	records := []Record{
		record("CS 225", "CS 173 and CS 125, or MATH 220"),
		record("CS 374", "CS 225 and one of CS 173, MATH 213"),
	}
	assert.Equal(t, Build(records, true), Build(records, true))
}

func TestSpringLayoutDeterministic(t *testing.T) {
	g := Build([]Record{
		record("CS 225", "CS 173"),
		record("CS 233", "CS 225"),
		record("CS 241", "CS 225"),
	}, true)

	first := SpringLayout(g, 42, 50)
	second := SpringLayout(g, 42, 50)
	assert.Equal(t, first, second)

	require.Len(t, first, len(g.Nodes))
	for id, position := range first {
		assert.GreaterOrEqual(t, position.X, -3000.0, "node %v", id)
		assert.LessOrEqual(t, position.X, 3000.0, "node %v", id)
		assert.GreaterOrEqual(t, position.Y, -3000.0, "node %v", id)
		assert.LessOrEqual(t, position.Y, 3000.0, "node %v", id)
	}
}

func TestSpringLayoutEmptyGraph(t *testing.T) {
	assert.Empty(t, SpringLayout(Graph{}, 42, 50))
}

func TestReduceRemovesTransitiveEdge(t *testing.T) {
	g := Graph{
		Nodes: []Node{{Id: "A"}, {Id: "B"}, {Id: "C"}},
		Edges: []Edge{
			{Source: "A", Target: "B", Kind: EdgeHard},
			{Source: "B", Target: "C", Kind: EdgeHard},
			{Source: "A", Target: "C", Kind: EdgeHard}, // implied by A->B->C
		},
	}

	reduced := Reduce(g)
	assert.ElementsMatch(t, []Edge{
		{Source: "A", Target: "B", Kind: EdgeHard},
		{Source: "B", Target: "C", Kind: EdgeHard},
	}, reduced.Edges)
}

func TestReduceKeepsCycleEdges(t *testing.T) {
	g := Graph{
		Nodes: []Node{{Id: "A"}, {Id: "B"}, {Id: "C"}},
		Edges: []Edge{
			{Source: "A", Target: "B", Kind: EdgeHard},
			{Source: "B", Target: "A", Kind: EdgeHard},
			{Source: "A", Target: "C", Kind: EdgeHard},
			{Source: "B", Target: "C", Kind: EdgeHard},
		},
	}

	reduced := Reduce(g)

	// Both intra-cycle edges survive; the two component-crossing edges
	// collapse to the lexicographically first representative.
	assert.ElementsMatch(t, []Edge{
		{Source: "A", Target: "B", Kind: EdgeHard},
		{Source: "B", Target: "A", Kind: EdgeHard},
		{Source: "A", Target: "C", Kind: EdgeHard},
	}, reduced.Edges)
}

func TestReduceIgnoresCoreqAndSelfLoops(t *testing.T) {
	g := Graph{
		Nodes: []Node{{Id: "A"}, {Id: "B"}},
		Edges: []Edge{
			{Source: "A", Target: "A", Kind: EdgeHard},
			{Source: "A", Target: "B", Kind: EdgeCoreq},
		},
	}

	reduced := Reduce(g)
	assert.Empty(t, reduced.Edges)
	assert.Equal(t, g.Nodes, reduced.Nodes)
}
