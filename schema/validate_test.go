package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validRecords = `[
  {
    "index": "CS 225",
    "name": "Data Structures",
    "description": null,
    "prerequisites": {
      "raw": "CS 173 and one of MATH 220, MATH 221",
      "hard": {
        "op": "AND",
        "items": [
          {"op": "COURSE", "course": "CS 173"},
          {"op": "OR", "items": [
            {"op": "COURSE", "course": "MATH 220"},
            {"op": "COURSE", "course": "MATH 221"}
          ]}
        ]
      },
      "coreq_ok": {"op": "EMPTY"},
      "flags": [],
      "notes": []
    }
  },
  {
    "index": "MATH 220",
    "prerequisites": {
      "raw": null,
      "hard": {"op": "EMPTY"},
      "coreq_ok": {"op": "EMPTY"},
      "flags": ["CONSENT"],
      "notes": ["See department."]
    }
  }
]`

func TestValidateRecordsAccepts(t *testing.T) {
	issues, err := ValidateRecords([]byte(validRecords))
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestValidateRecordsAndWithoutItems(t *testing.T) {
	records := `[
	  {
	    "index": "CS 225",
	    "prerequisites": {
	      "raw": "x",
	      "hard": {"op": "AND"},
	      "coreq_ok": {"op": "EMPTY"},
	      "flags": [],
	      "notes": []
	    }
	  }
	]`

	issues, err := ValidateRecords([]byte(records))
	require.NoError(t, err)
	require.NotEmpty(t, issues)
	assert.Equal(t, 0, issues[0].Record)
	assert.Contains(t, issues[0].Path, "/prerequisites/hard")
}

func TestValidateRecordsCourseWithoutRef(t *testing.T) {
	records := `[
	  {
	    "index": "CS 225",
	    "prerequisites": {
	      "raw": "x",
	      "hard": {"op": "COURSE"},
	      "coreq_ok": {"op": "EMPTY"},
	      "flags": [],
	      "notes": []
	    }
	  }
	]`

	issues, err := ValidateRecords([]byte(records))
	require.NoError(t, err)
	assert.NotEmpty(t, issues)
}

func TestValidateRecordsUnknownFlag(t *testing.T) {
	records := `[
	  {
	    "index": "CS 225",
	    "prerequisites": {
	      "raw": null,
	      "hard": {"op": "EMPTY"},
	      "coreq_ok": {"op": "EMPTY"},
	      "flags": ["HONORS"],
	      "notes": []
	    }
	  }
	]`

	issues, err := ValidateRecords([]byte(records))
	require.NoError(t, err)
	assert.NotEmpty(t, issues)
}

func TestValidateRecordsReportsPerRecord(t *testing.T) {
	records := `[
	  {"index": "CS 225", "prerequisites": {"raw": null, "hard": {"op": "EMPTY"}, "coreq_ok": {"op": "EMPTY"}, "flags": [], "notes": []}},
	  {"index": "CS 173"}
	]`

	issues, err := ValidateRecords([]byte(records))
	require.NoError(t, err)
	require.NotEmpty(t, issues)
	for _, issue := range issues {
		assert.Equal(t, 1, issue.Record)
	}
}

func TestRecordSchemaCompiledOnce(t *testing.T) {
	first, err := recordSchema()
	require.NoError(t, err)
	second, err := recordSchema()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestValidateRecordsRejectsNonArray(t *testing.T) {
	_, err := ValidateRecords([]byte(`{"index": "CS 225"}`))
	assert.Error(t, err)
}
