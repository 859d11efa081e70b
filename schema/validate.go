// Package schema validates emitted course records against the bundled
// JSON schema. Validation failures are data, not errors: each one is
// reported with a path and message and the batch continues.
package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed records.schema.json
var recordSchemaJSON string

// Issue is one validation failure, located by record index and a JSON
// pointer inside the record.
type Issue struct {
	Record  int    `json:"record"`
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("record %d: %v at %v", i.Record, i.Message, i.Path)
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// recordSchema compiles the bundled schema once and reuses it across
// calls.
func recordSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("records.schema.json", strings.NewReader(recordSchemaJSON)); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiled, compileErr = compiler.Compile("records.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compile record schema: %w", compileErr)
		}
	})
	return compiled, compileErr
}

// ValidateRecords checks a JSON array of parsed course records. The
// returned issues cover every failing record; an error is returned only
// when the input is not a JSON array or the bundled schema is broken.
func ValidateRecords(data []byte) ([]Issue, error) {
	schema, err := recordSchema()
	if err != nil {
		return nil, err
	}

	var records []interface{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}

	var issues []Issue
	for i, record := range records {
		err := schema.Validate(record)
		if err == nil {
			continue
		}
		validationErr, ok := err.(*jsonschema.ValidationError)
		if !ok {
			issues = append(issues, Issue{Record: i, Path: "/", Message: err.Error()})
			continue
		}
		issues = append(issues, flatten(i, validationErr)...)
	}
	return issues, nil
}

// flatten walks to the leaf causes, which carry the most specific
// location and message.
func flatten(record int, err *jsonschema.ValidationError) []Issue {
	if len(err.Causes) == 0 {
		path := err.InstanceLocation
		if path == "" {
			path = "/"
		}
		return []Issue{{Record: record, Path: path, Message: err.Message}}
	}
	var issues []Issue
	for _, cause := range err.Causes {
		issues = append(issues, flatten(record, cause)...)
	}
	return issues
}
