package prereq

import (
	"regexp"
	"slices"
	"strings"
)

// Flag marks a non-course eligibility condition the tree representation
// cannot express.
type Flag string

const (
	FlagConsent          Flag = "CONSENT"
	FlagCoreqAllowed     Flag = "COREQ_ALLOWED"
	FlagDeptOrInstructor Flag = "DEPT_OR_INSTRUCTOR"
	FlagGradeOrGPA       Flag = "GRADE_OR_GPA"
	FlagMajorOrProgram   Flag = "MAJOR_OR_PROGRAM"
	FlagStanding         Flag = "STANDING"
)

var flagPatterns = []struct {
	re   *regexp.Regexp
	flag Flag
}{
	{regexp.MustCompile(`consent|permission|approval`), FlagConsent},
	{regexp.MustCompile(`standing|senior|junior|sophomore|freshman`), FlagStanding},
	{regexp.MustCompile(`major|minor|program|restricted|enrollment|enrolled`), FlagMajorOrProgram},
	{regexp.MustCompile(`gpa|grade|minimum`), FlagGradeOrGPA},
	{regexp.MustCompile(`concurrent|co-requisite|corequisite`), FlagCoreqAllowed},
	{regexp.MustCompile(`department|instructor`), FlagDeptOrInstructor},
}

// DetectFlags scans text for the six non-course keyword groups. The
// result is duplicate-free and sorted by flag name. Flag detection is
// independent of tree extraction: it fires on clauses with or without
// course tokens.
func DetectFlags(text string) []Flag {
	lower := strings.ToLower(text)
	flags := []Flag{}
	for _, p := range flagPatterns {
		if p.re.MatchString(lower) {
			flags = append(flags, p.flag)
		}
	}
	slices.Sort(flags)
	return flags
}
