package prereq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyConnector(t *testing.T) {
	tests := []struct {
		name    string
		between string
		want    connector
	}{
		{"and word", " and ", connectorAnd},
		{"and with filler", " and credit in ", connectorAnd},
		{"or word", " or ", connectorOr},
		{"and/or is disjunctive", " and/or ", connectorOr},
		{"comma only", ", ", connectorList},
		{"comma with noise", ", as well as ", connectorList},
		{"whitespace", "  ", connectorUnknown},
		{"punctuation only", " - ", connectorUnknown},
		{"empty", "", connectorUnknown},
		{"case insensitive", " AND ", connectorAnd},
		{"embedded and does not count", " android ", connectorUnknown},
		{"comma before and is still and", ", and ", connectorAnd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyConnector(tt.between))
		})
	}
}
