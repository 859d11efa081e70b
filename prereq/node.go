// Package prereq turns free-text course prerequisite descriptions into
// machine-evaluable boolean requirement trees. All functions are pure:
// the same input text always yields the same trees, flags and notes, and
// no call mutates shared state, so callers may parse records concurrently
// without coordination.
package prereq

// Op identifies the shape of a requirement tree node.
type Op string

const (
	OpEmpty  Op = "EMPTY"
	OpCourse Op = "COURSE"
	OpAnd    Op = "AND"
	OpOr     Op = "OR"
)

// Node is one node of a requirement tree. The four shapes are closed:
// EMPTY carries nothing, COURSE carries Course, AND and OR carry Items.
// The JSON encoding is the downstream contract and must stay exact: an
// AND/OR node always has "items", a COURSE node always has "course",
// EMPTY has neither.
type Node struct {
	Op     Op     `json:"op"`
	Course string `json:"course,omitempty"`
	Items  []Node `json:"items,omitempty"`
}

// Empty returns the no-requirement terminal.
func Empty() Node {
	return Node{Op: OpEmpty}
}

// Course returns a single course-reference leaf.
func Course(ref string) Node {
	return Node{Op: OpCourse, Course: ref}
}

// IsEmpty reports whether the node is the EMPTY terminal.
func (n Node) IsEmpty() bool {
	return n.Op == OpEmpty
}

// group wraps items in op, collapsing a length-1 group to its single item.
func group(op Op, items []Node) Node {
	if len(items) == 1 {
		return items[0]
	}
	return Node{Op: op, Items: items}
}

// Courses returns every course reference in the tree in first-seen order,
// duplicates removed. This is the walk downstream graph builders perform
// to turn a tree into dependency edges.
func (n Node) Courses() []string {
	seen := make(map[string]bool)
	var refs []string

	var walk func(Node)
	walk = func(m Node) {
		if m.Op == OpCourse && m.Course != "" && !seen[m.Course] {
			seen[m.Course] = true
			refs = append(refs, m.Course)
		}
		for _, item := range m.Items {
			walk(item)
		}
	}
	walk(n)

	return refs
}
