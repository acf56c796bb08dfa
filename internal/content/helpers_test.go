package content

import (
	"context"
	"fmt"
	"testing/fstest"

	"github.com/goliatone/go-site/internal/markdown"
	"github.com/goliatone/go-site/pkg/interfaces"
)

type logEntry struct {
	level  string
	msg    string
	fields map[string]any
}

type recordingLogger struct {
	entries *[]logEntry
	fields  map[string]any
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{entries: &[]logEntry{}, fields: map[string]any{}}
}

func (r *recordingLogger) record(level, msg string, args ...any) {
	fields := map[string]any{}
	for k, v := range r.fields {
		fields[k] = v
	}
	for i := 0; i+1 < len(args); i += 2 {
		fields[fmt.Sprint(args[i])] = args[i+1]
	}
	*r.entries = append(*r.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (r *recordingLogger) Trace(msg string, args ...any) { r.record("trace", msg, args...) }
func (r *recordingLogger) Debug(msg string, args ...any) { r.record("debug", msg, args...) }
func (r *recordingLogger) Info(msg string, args ...any)  { r.record("info", msg, args...) }
func (r *recordingLogger) Warn(msg string, args ...any)  { r.record("warn", msg, args...) }
func (r *recordingLogger) Error(msg string, args ...any) { r.record("error", msg, args...) }
func (r *recordingLogger) Fatal(msg string, args ...any) { r.record("fatal", msg, args...) }

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	merged := map[string]any{}
	for k, v := range r.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &recordingLogger{entries: r.entries, fields: merged}
}

func (r *recordingLogger) WithContext(context.Context) interfaces.Logger { return r }

func (r *recordingLogger) byLevel(level string) []logEntry {
	var out []logEntry
	for _, entry := range *r.entries {
		if entry.level == level {
			out = append(out, entry)
		}
	}
	return out
}

func loaderFor(files map[string]string, dir string) *markdown.Loader {
	fsys := fstest.MapFS{}
	for name, body := range files {
		fsys[dir+"/"+name] = &fstest.MapFile{Data: []byte(body)}
	}
	return markdown.NewLoader(fsys, markdown.LoaderConfig{Dir: dir})
}

func slugsOf[T any](records []T, slug func(T) string) []string {
	out := make([]string, len(records))
	for i, record := range records {
		out[i] = slug(record)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
