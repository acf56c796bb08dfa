package validation

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/goliatone/go-site/internal/content"
)

var (
	ErrSchemaUnknown    = errors.New("schema unknown")
	ErrSchemaValidation = errors.New("schema validation failed")
)

//go:embed schemas/*.json
var schemaFiles embed.FS

var (
	compiledMu sync.Mutex
	compiled   = map[content.Kind]*jsonschema.Schema{}
)

// ValidationIssue captures a single schema failure.
type ValidationIssue struct {
	Location string
	Message  string
}

// FrontMatterError lists the schema failures of a front matter block.
type FrontMatterError struct {
	Issues []ValidationIssue
}

func (e *FrontMatterError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *FrontMatterError) Unwrap() error {
	return ErrSchemaValidation
}

// ValidateFrontMatter checks meta against the front matter schema of kind.
func ValidateFrontMatter(kind content.Kind, meta map[string]any) error {
	schema, err := schemaFor(kind)
	if err != nil {
		return err
	}

	payload, err := toJSONValue(meta)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaValidation, err)
	}
	if err := schema.Validate(payload); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return &FrontMatterError{Issues: collectValidationIssues(validationErr)}
		}
		return fmt.Errorf("%w: %v", ErrSchemaValidation, err)
	}
	return nil
}

func schemaFor(kind content.Kind) (*jsonschema.Schema, error) {
	compiledMu.Lock()
	defer compiledMu.Unlock()

	if schema, ok := compiled[kind]; ok {
		return schema, nil
	}

	name := string(kind) + ".json"
	raw, err := schemaFiles.ReadFile("schemas/" + name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSchemaUnknown, kind)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(name, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("compile %s schema: %w", kind, err)
	}
	schema, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("compile %s schema: %w", kind, err)
	}
	compiled[kind] = schema
	return schema, nil
}

// toJSONValue converts decoded front matter into the value space the
// validator understands: string keyed maps, RFC 3339 strings for timestamps
// and float64 numbers.
func toJSONValue(meta map[string]any) (any, error) {
	encoded, err := json.Marshal(canonicalize(meta))
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(encoded, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func canonicalize(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = canonicalize(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = canonicalize(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = canonicalize(item)
		}
		return out
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return v
	}
}

func collectValidationIssues(err *jsonschema.ValidationError) []ValidationIssue {
	issues := []ValidationIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, ValidationIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
