package prereq

import (
	"regexp"
	"strings"
)

// Kind is the pre-parse classification of a prerequisite text.
type Kind string

const (
	// KindNone marks empty text or an explicit "no prerequisites" phrasing.
	KindNone Kind = "none"
	// KindCourseOnly marks text that is provably a pure boolean combination
	// of course references with no additional eligibility conditions.
	KindCourseOnly Kind = "course_only"
	// KindRemaining marks mixed course and non-course text; it still goes
	// through the clause parser, with non-course content surfaced as flags
	// and notes.
	KindRemaining Kind = "remaining"
)

var nonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*none\.?\s*$`),
	regexp.MustCompile(`(?i)no prerequisites`),
	regexp.MustCompile(`(?i)prerequisite[s]?:\s*none\b`),
}

// nonCourseKeywordRE is broader than the flag groups: it also catches
// credit-hour and registration language that disqualifies a text from the
// course-only bucket without mapping to a flag of its own.
var nonCourseKeywordRE = regexp.MustCompile(strings.Join([]string{
	`consent`, `permission`, `approval`,
	`standing`, `senior`, `junior`, `sophomore`, `freshman`,
	`major`, `minor`, `program`, `restricted`, `enrollment`, `enrolled`,
	`gpa`, `grade`, `minimum`, `credit hour`, `credits?`, `hours?`,
	`registration`, `concurrent`, `co-requisite`, `corequisite`,
	`department`, `instructor`,
}, "|"))

var (
	punctRE               = regexp.MustCompile(`[(),.;]`)
	fillerWordRE          = regexp.MustCompile(`(?i)\b(and|or|and/or|either|both|one of|two of|with|credit in)\b`)
	atLeastRE             = regexp.MustCompile(`(?i)\b(at\s+least)\b`)
	courseOnlyRemainderRE = regexp.MustCompile(`^(COURSE\s*)+$`)
)

func isNoneText(text string) bool {
	t := strings.TrimSpace(text)
	for _, p := range nonePatterns {
		if p.MatchString(t) {
			return true
		}
	}
	return false
}

// isCourseOnly reports whether, after removing every course token and all
// conjunction and quantifier filler, nothing but whitespace and
// punctuation remains.
func isCourseOnly(text string) bool {
	t := strings.TrimSpace(text)
	if nonCourseKeywordRE.MatchString(strings.ToLower(t)) {
		return false
	}
	placeholder := courseTokenRE.ReplaceAllString(t, "COURSE")
	simplified := punctRE.ReplaceAllString(placeholder, " ")
	simplified = fillerWordRE.ReplaceAllString(simplified, " ")
	simplified = atLeastRE.ReplaceAllString(simplified, " ")
	simplified = NormalizeSpace(simplified)
	return simplified == "" || courseOnlyRemainderRE.MatchString(simplified)
}

// Classify gates a text before full parsing. Non-none texts of either
// remaining kind are parsed identically; the kind only decides which
// review bucket the record lands in.
func Classify(text string) Kind {
	if strings.TrimSpace(text) == "" || isNoneText(text) {
		return KindNone
	}
	if isCourseOnly(text) {
		return KindCourseOnly
	}
	return KindRemaining
}
