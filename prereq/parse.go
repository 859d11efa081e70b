package prereq

import (
	"regexp"
	"strings"
)

// Semicolons are strong AND separators between clauses.
var clauseSplitRE = regexp.MustCompile(`;+`)

var coreqPhraseRE = regexp.MustCompile(`credit\s+or\s+concurrent\s+(enrollment|registration)\s+in`)

// Parsed holds the two top-level requirement trees derived from disjoint
// clause subsets of one prerequisite text.
type Parsed struct {
	// Hard must be completed before enrollment.
	Hard Node `json:"hard"`
	// CoreqOK may be satisfied by concurrent enrollment in the same term.
	CoreqOK Node `json:"coreq_ok"`
}

// Result is the complete machine-readable reading of one prerequisite
// text: the two trees plus the non-course flags and the raw clauses
// retained for human review.
type Result struct {
	Raw     *string  `json:"raw"`
	Hard    Node     `json:"hard"`
	CoreqOK Node     `json:"coreq_ok"`
	Flags   []Flag   `json:"flags"`
	Notes   []string `json:"notes"`
}

// SplitClauses splits raw text on semicolon runs into whitespace-normalized
// clauses, dropping empty ones. Clauses are never merged or reordered.
func SplitClauses(text string) []string {
	var clauses []string
	for _, clause := range clauseSplitRE.Split(text, -1) {
		if clause = NormalizeSpace(clause); clause != "" {
			clauses = append(clauses, clause)
		}
	}
	return clauses
}

// isCoreqClause reports whether a clause allows concurrent satisfaction.
func isCoreqClause(clause string) bool {
	lower := strings.ToLower(clause)
	return strings.Contains(lower, "concurrent") ||
		strings.Contains(lower, "co-requisite") ||
		strings.Contains(lower, "corequisite") ||
		coreqPhraseRE.MatchString(lower)
}

// ParseText parses a full prerequisite text: split into clauses, parse
// each clause, route every non-EMPTY tree into exactly one of the hard or
// coreq-allowed buckets, and fold each bucket into a conjunction. It
// never fails; at worst both trees are EMPTY.
func ParseText(raw string) Parsed {
	var hard, coreq []Node
	for _, clause := range SplitClauses(raw) {
		tree := ParseClause(clause)
		if tree.IsEmpty() {
			continue
		}
		if isCoreqClause(clause) {
			coreq = append(coreq, tree)
		} else {
			hard = append(hard, tree)
		}
	}
	return Parsed{Hard: fold(hard), CoreqOK: fold(coreq)}
}

// fold combines per-clause trees: none is EMPTY, one stands alone, more
// become an AND in clause order. Never an empty AND.
func fold(trees []Node) Node {
	switch len(trees) {
	case 0:
		return Empty()
	case 1:
		return trees[0]
	}
	return Node{Op: OpAnd, Items: trees}
}

// Analyze produces the full Result for one raw prerequisite text: the two
// trees, the whole-text flag set, and as notes every clause that has no
// course token or carries at least one flag.
func Analyze(raw string) Result {
	raw = strings.TrimSpace(raw)
	parsed := ParseText(raw)
	result := Result{
		Hard:    parsed.Hard,
		CoreqOK: parsed.CoreqOK,
		Flags:   []Flag{},
		Notes:   []string{},
	}
	if raw == "" {
		return result
	}

	result.Raw = &raw
	result.Flags = DetectFlags(raw)
	for _, clause := range SplitClauses(raw) {
		if len(FindCourseSpans(clause)) == 0 || len(DetectFlags(clause)) > 0 {
			result.Notes = append(result.Notes, clause)
		}
	}
	return result
}
