package prereq

import (
	"regexp"
	"strings"
)

var (
	oneOfRE    = regexp.MustCompile(`(?i)\b(one of|any of)\b`)
	commaRunRE = regexp.MustCompile(`,+`)
)

// ParseClause parses one semicolon-delimited clause into a single
// requirement tree node. A clause with no course tokens is EMPTY; a
// clause with at least one token never is.
func ParseClause(clause string) Node {
	clause = NormalizeSpace(clause)
	spans := FindCourseSpans(clause)
	if len(spans) == 0 {
		return Empty()
	}

	// "one of"/"any of" window: every token after the phrase is one choice
	// group, tokens before it stay as independently required siblings
	// ("CS 225 and one of MATH 231, MATH 241").
	if loc := oneOfRE.FindStringIndex(clause); loc != nil {
		var before, after []Node
		for _, span := range spans {
			if span.Start >= loc[1] {
				after = append(after, Course(span.Course))
			} else {
				before = append(before, Course(span.Course))
			}
		}
		if len(after) > 0 {
			return group(OpAnd, append(before, group(OpOr, after)))
		}
		// Phrase present but no tokens follow it; fall through to the
		// connector heuristics.
	}

	connectors := make([]connector, 0, len(spans)-1)
	for i := 0; i+1 < len(spans); i++ {
		connectors = append(connectors, classifyConnector(clause[spans[i].End:spans[i+1].Start]))
	}

	leaves := make([]Node, len(spans))
	for i, span := range spans {
		leaves[i] = Course(span.Course)
	}

	hasAnd := hasConnector(connectors, connectorAnd)
	hasOr := hasConnector(connectors, connectorOr)
	switch {
	case hasAnd && !hasOr:
		return group(OpAnd, leaves)
	case hasOr && !hasAnd:
		return group(OpOr, leaves)
	case !hasAnd && !hasOr:
		if hasConnector(connectors, connectorList) {
			// Comma-only enumerations read as alternatives, matching the
			// common catalog phrasing "A, B, or C".
			return group(OpOr, leaves)
		}
		return group(OpAnd, leaves)
	}

	return parseMixedClause(clause, leaves)
}

// parseMixedClause handles a clause whose connectors include both AND and
// OR: re-segment by commas, group each segment by its own conjunction,
// then recombine.
func parseMixedClause(clause string, leaves []Node) Node {
	var groups []Node
	var andSegments, orSegments int

	for _, segment := range commaRunRE.Split(clause, -1) {
		segment = NormalizeSpace(segment)
		if segment == "" {
			continue
		}
		spans := FindCourseSpans(segment)
		if len(spans) == 0 {
			continue
		}
		segmentLeaves := make([]Node, len(spans))
		for i, span := range spans {
			segmentLeaves[i] = Course(span.Course)
		}

		lower := strings.ToLower(segment)
		segmentAnd := andWordRE.MatchString(lower)
		segmentOr := orWordRE.MatchString(lower)
		switch {
		case segmentAnd && !segmentOr:
			groups = append(groups, group(OpAnd, segmentLeaves))
			andSegments++
		case segmentOr && !segmentAnd:
			groups = append(groups, group(OpOr, segmentLeaves))
			orSegments++
		default:
			// Known heuristic, not a provable parse: a segment with both
			// conjunctions or neither defaults to OR, though some catalog
			// phrasings intend AND here.
			groups = append(groups, group(OpOr, segmentLeaves))
			orSegments++
		}
	}

	if len(groups) == 0 {
		groups = leaves
	}

	switch {
	case andSegments > 0 && orSegments == 0:
		return group(OpAnd, groups)
	case orSegments > 0 && andSegments == 0:
		return group(OpOr, groups)
	}
	// Mixed segment kinds act as independently required groups.
	return group(OpAnd, groups)
}

func hasConnector(connectors []connector, want connector) bool {
	for _, c := range connectors {
		if c == want {
			return true
		}
	}
	return false
}
