package prereq

import (
	"regexp"
	"strings"
)

// connector classifies the text strictly between two adjacent course
// tokens. The classification is purely pairwise; it never looks past the
// neighboring token.
type connector int

const (
	connectorUnknown connector = iota
	connectorAnd
	connectorOr
	connectorList
)

var (
	andWordRE = regexp.MustCompile(`\band\b`)
	orWordRE  = regexp.MustCompile(`\bor\b`)
)

// classifyConnector decides how two adjacent course tokens are joined.
// "and/or" is disjunctive and takes precedence over the lone "and" it
// contains. A comma with no conjunction word is an ambiguous LIST
// separator left for the clause parser to resolve.
func classifyConnector(between string) connector {
	between = strings.ToLower(between)
	switch {
	case strings.Contains(between, "and/or"):
		return connectorOr
	case andWordRE.MatchString(between):
		return connectorAnd
	case orWordRE.MatchString(between):
		return connectorOr
	case strings.Contains(between, ","):
		return connectorList
	}
	return connectorUnknown
}
