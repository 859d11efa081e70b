// Package catalog fetches course records from the university catalog
// explorer API: subjects for a term, course numbers per subject, and
// per-course details including the free-text prerequisite description.
package catalog

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Course is one fetched catalog record. Prerequisites is nil when the
// catalog lists none; downstream parsing treats nil and empty alike.
type Course struct {
	Index         string  `json:"index"`
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	Prerequisites *string `json:"prerequisites"`
}

var digitsRE = regexp.MustCompile(`[^0-9]`)

// SortCourses orders records by subject, then numeric catalog number,
// then the raw index, so repeated fetches emit identical files.
func SortCourses(courses []Course) {
	sort.Slice(courses, func(i, j int) bool {
		si, ni := splitIndex(courses[i].Index)
		sj, nj := splitIndex(courses[j].Index)
		if si != sj {
			return si < sj
		}
		if ni != nj {
			return ni < nj
		}
		return courses[i].Index < courses[j].Index
	})
}

func splitIndex(index string) (subject string, number int) {
	subject, rest, found := strings.Cut(index, " ")
	if !found {
		return index, 0
	}
	number, _ = strconv.Atoi(digitsRE.ReplaceAllString(rest, ""))
	return subject, number
}
