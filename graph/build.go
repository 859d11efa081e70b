// Package graph builds dependency-graph assets from parsed course
// records: nodes and edges for rendering, deterministic layout positions,
// and a transitive reduction of the hard-prerequisite relation.
package graph

import (
	"strings"

	"github.com/quadgraph/quadgraph/pipeline/prereq"
)

// Record is one course with its parsed prerequisites, the shape the
// build stage emits and every graph consumer reads.
type Record struct {
	Index         string        `json:"index"`
	Name          *string       `json:"name"`
	Description   *string       `json:"description"`
	Prerequisites prereq.Result `json:"prerequisites"`
}

// Edge kinds.
const (
	EdgeHard  = "hard"
	EdgeCoreq = "coreq"
)

// Node is one course in the dependency graph.
type Node struct {
	Id      string `json:"id"`
	Label   string `json:"label"`
	Subject string `json:"subject"`
}

// Edge points from a prerequisite course to the course that requires it.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Kind   string `json:"kind"`
}

// Graph is the slim asset handed to renderers.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Build walks every record's requirement trees and emits one node per
// course seen and one edge per (prerequisite, course) pair. Node order is
// first-seen; tree walks are first-seen with duplicates removed, so
// repeated builds over the same records are byte-identical.
func Build(records []Record, includeCoreq bool) Graph {
	var graph Graph
	nodeIndex := make(map[string]bool)

	ensureNode := func(id, label string) {
		if nodeIndex[id] {
			return
		}
		nodeIndex[id] = true
		if label == "" {
			label = id
		}
		subject, _, _ := strings.Cut(id, " ")
		graph.Nodes = append(graph.Nodes, Node{Id: id, Label: label, Subject: subject})
	}

	for _, record := range records {
		label := record.Index
		if record.Name != nil {
			label = *record.Name
		}
		ensureNode(record.Index, label)

		for _, ref := range record.Prerequisites.Hard.Courses() {
			ensureNode(ref, "")
			graph.Edges = append(graph.Edges, Edge{Source: ref, Target: record.Index, Kind: EdgeHard})
		}
		if includeCoreq {
			for _, ref := range record.Prerequisites.CoreqOK.Courses() {
				ensureNode(ref, "")
				graph.Edges = append(graph.Edges, Edge{Source: ref, Target: record.Index, Kind: EdgeCoreq})
			}
		}
	}

	return graph
}
