package prereq

import (
	"regexp"
	"strings"
)

// courseTokenRE matches a course reference: 2-4 uppercase subject letters,
// optional whitespace, a 2-3 digit catalog number with an optional single
// uppercase suffix, as a whole word.
var courseTokenRE = regexp.MustCompile(`\b([A-Z]{2,4})\s*(\d{2,3}[A-Z]?)\b`)

var spaceRunRE = regexp.MustCompile(`\s+`)

// CourseSpan is one course token found in a text fragment. Start and End
// are byte offsets of the raw match; Course is the normalized
// "SUBJECT NUMBER" reference.
type CourseSpan struct {
	Course string
	Start  int
	End    int
}

// FindCourseSpans returns every course token in text in left-to-right
// order. Malformed tokens (a bare number, a lowercase subject) never match.
func FindCourseSpans(text string) []CourseSpan {
	var spans []CourseSpan
	for _, m := range courseTokenRE.FindAllStringSubmatchIndex(text, -1) {
		subject := text[m[2]:m[3]]
		number := text[m[4]:m[5]]
		spans = append(spans, CourseSpan{
			Course: subject + " " + number,
			Start:  m[0],
			End:    m[1],
		})
	}
	return spans
}

// NormalizeSpace collapses internal whitespace runs to single spaces and
// trims leading and trailing whitespace.
func NormalizeSpace(s string) string {
	return strings.TrimSpace(spaceRunRE.ReplaceAllString(s, " "))
}
