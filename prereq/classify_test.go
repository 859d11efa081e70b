package prereq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Kind
	}{
		{"empty", "", KindNone},
		{"whitespace", "   \t ", KindNone},
		{"bare none", "None.", KindNone},
		{"no prerequisites", "No prerequisites.", KindNone},
		{"labeled none", "Prerequisites: none", KindNone},
		{"single course", "CS 225", KindCourseOnly},
		{"boolean combination", "CS 225 and MATH 231, or CS 233", KindCourseOnly},
		{"one of phrase is filler", "One of CS 225, CS 233, or CS 241.", KindCourseOnly},
		{"either both filler", "Either CS 125 or both CS 126 and CS 128.", KindCourseOnly},
		{"standing only", "Senior standing required", KindRemaining},
		{"course plus consent", "CS 225 or consent of instructor", KindRemaining},
		{"gpa condition", "CS 225 with a minimum grade of B", KindRemaining},
		{"credit hours", "At least 6 credit hours of chemistry", KindRemaining},
		{"free prose", "Intended for students in the honors sequence", KindRemaining},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}
