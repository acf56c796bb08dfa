package content

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

// fieldDecoder reads typed values out of a front matter map and collects
// every type mismatch instead of stopping at the first one. Missing and null
// keys yield the zero value of the field.
type fieldDecoder struct {
	meta   map[string]any
	errors goerrors.ValidationErrors
}

func newFieldDecoder(meta map[string]any) *fieldDecoder {
	if meta == nil {
		meta = map[string]any{}
	}
	return &fieldDecoder{meta: meta}
}

func (d *fieldDecoder) String(key string) string {
	value, ok := d.meta[key]
	if !ok || value == nil {
		return ""
	}
	out, ok := scalarString(value)
	if !ok {
		d.fail(key, "expected a string", value)
	}
	return out
}

// OptionalString returns nil when the key is absent, null or empty.
func (d *fieldDecoder) OptionalString(key string) *string {
	out := d.String(key)
	if out == "" {
		return nil
	}
	return &out
}

func (d *fieldDecoder) Bool(key string) bool {
	value, ok := d.meta[key]
	if !ok || value == nil {
		return false
	}
	switch v := value.(type) {
	case bool:
		return v
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err == nil {
			return parsed
		}
	}
	d.fail(key, "expected a boolean", value)
	return false
}

// Strings never returns nil. A single scalar becomes a one element list.
func (d *fieldDecoder) Strings(key string) []string {
	value, ok := d.meta[key]
	if !ok || value == nil {
		return []string{}
	}

	switch v := value.(type) {
	case []string:
		return append([]string{}, v...)
	case []any:
		out := make([]string, 0, len(v))
		for i, item := range v {
			if item == nil {
				continue
			}
			s, ok := scalarString(item)
			if !ok {
				d.fail(fmt.Sprintf("%s[%d]", key, i), "expected a string", item)
				return []string{}
			}
			out = append(out, s)
		}
		return out
	}

	if s, ok := scalarString(value); ok {
		return []string{s}
	}
	d.fail(key, "expected a list of strings", value)
	return []string{}
}

func (d *fieldDecoder) fail(field, message string, value any) {
	d.errors = append(d.errors, goerrors.FieldError{
		Field:   field,
		Message: message,
		Value:   fmt.Sprintf("%T", value),
	})
}

// Err returns the collected field errors, or nil.
func (d *fieldDecoder) Err() error {
	if len(d.errors) == 0 {
		return nil
	}
	return d.errors
}

// scalarString formats front matter scalars the way they were authored.
// Timestamps decoded by the YAML or TOML parser are rendered as a plain date
// when they carry no time of day.
func scalarString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case time.Time:
		return formatTimestamp(v), true
	default:
		return "", false
	}
}

func formatTimestamp(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.RFC3339)
}
