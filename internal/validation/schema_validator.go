// Package validation checks content files against the JSON schemas in
// configs/schemas before they are decoded into catalogs.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema paths for content files, relative to the project root
const (
	ArchetypesSchemaPath  = "configs/schemas/archetypes.schema.json"
	LootCatalogSchemaPath = "configs/schemas/loot_catalog.schema.json"
)

// SchemaValidator validates content documents against JSON schemas
type SchemaValidator interface {
	ValidateFile(dataPath, schemaPath string) error
	ValidateBytes(data []byte, schemaPath string) error
	// ValidateDocument validates an already-decoded document (e.g. from YAML)
	ValidateDocument(doc interface{}, schemaPath string) error
}

// Issue is one failed schema keyword at one document location
type Issue struct {
	Location string
	Keyword  string
}

func (i Issue) String() string {
	if i.Keyword == "" {
		return fmt.Sprintf("at %s: validation failed", i.Location)
	}
	return fmt.Sprintf("at %s: %s validation failed", i.Location, i.Keyword)
}

// SchemaError lists every leaf failure of a document
type SchemaError struct {
	Schema string
	Issues []Issue
}

func (e *SchemaError) Error() string {
	lines := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		lines[i] = "  - " + issue.String()
	}
	return fmt.Sprintf("schema validation failed (%s):\n%s", e.Schema, strings.Join(lines, "\n"))
}

type validator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	compiled map[string]*jsonschema.Schema
}

// NewSchemaValidator returns a validator that compiles each schema once
func NewSchemaValidator() SchemaValidator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		compiled: make(map[string]*jsonschema.Schema),
	}
}

func (v *validator) ValidateFile(dataPath, schemaPath string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read data file %s: %w", dataPath, err)
	}
	return v.ValidateBytes(data, schemaPath)
}

func (v *validator) ValidateBytes(data []byte, schemaPath string) error {
	schema, err := v.schema(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaPath, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	err = schema.Validate(doc)
	var verr *jsonschema.ValidationError
	if errors.As(err, &verr) {
		return &SchemaError{Schema: schemaPath, Issues: leafIssues(verr, nil)}
	}
	return err
}

// ValidateDocument round-trips doc through JSON so YAML-decoded values
// are checked with the same rules as JSON files
func (v *validator) ValidateDocument(doc interface{}, schemaPath string) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	return v.ValidateBytes(data, schemaPath)
}

func (v *validator) schema(schemaPath string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if s, ok := v.compiled[schemaPath]; ok {
		return s, nil
	}

	path, err := locate(schemaPath)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := jsonschema.UnmarshalJSON(f)
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	if err := v.compiler.AddResource(schemaPath, doc); err != nil {
		return nil, err
	}
	s, err := v.compiler.Compile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	v.compiled[schemaPath] = s
	return s, nil
}

// leafIssues flattens the cause tree. Only leaves are reported; inner nodes
// just say "some child failed".
func leafIssues(err *jsonschema.ValidationError, out []Issue) []Issue {
	if len(err.Causes) > 0 {
		for _, cause := range err.Causes {
			out = leafIssues(cause, out)
		}
		return out
	}

	issue := Issue{Location: "(root)"}
	if len(err.InstanceLocation) > 0 {
		issue.Location = "/" + strings.Join(err.InstanceLocation, "/")
	}
	if err.ErrorKind != nil {
		issue.Keyword = strings.Join(err.ErrorKind.KeywordPath(), ".")
	}
	return append(out, issue)
}

// locate resolves a project-relative path from the working directory or
// any parent up to the module root, so tests run from package dirs find
// configs/ too
func locate(rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return rel, nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, rel)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("file not found: %s", rel)
}
