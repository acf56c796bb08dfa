package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/goliatone/go-site/internal/commands"
	sitecmd "github.com/goliatone/go-site/internal/commands/site"
	"github.com/goliatone/go-site/internal/content"
	"github.com/goliatone/go-site/pkg/interfaces"
)

type stubListHandler struct {
	last  sitecmd.ListContentCommand
	calls int
}

func (s *stubListHandler) Execute(ctx context.Context, msg sitecmd.ListContentCommand) error {
	s.calls++
	s.last = msg
	if msg.ResultCallback != nil {
		msg.ResultCallback(sitecmd.ResultEnvelope{
			Kind:    content.KindArticles,
			Records: []interfaces.Article{{Slug: "hello", Title: "Hello"}},
			Count:   1,
		})
	}
	return nil
}

func withStubModule(t *testing.T, handlers handlerSet) {
	t.Helper()
	original := moduleBuilder
	moduleBuilder = func(opts moduleOptions) (*moduleResources, error) {
		return &moduleResources{handlers: handlers}, nil
	}
	t.Cleanup(func() { moduleBuilder = original })
}

func writeContent(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, body := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return root
}

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(args, strings.NewReader(stdin), &out, &errOut)
	return out.String(), err
}

func TestRunListPassesFlagsToHandler(t *testing.T) {
	stub := &stubListHandler{}
	withStubModule(t, handlerSet{list: stub})

	out, err := runCLI(t, "", "list", "blog", "--category", "news", "--featured", "--query", "launch")
	if err != nil {
		t.Fatalf("run list: %v", err)
	}

	if stub.calls != 1 {
		t.Fatalf("expected handler called once, got %d", stub.calls)
	}
	if stub.last.Kind != "blog" || stub.last.Category != "news" || !stub.last.Featured || stub.last.Query != "launch" {
		t.Fatalf("unexpected message %#v", stub.last)
	}

	var payload struct {
		Kind    string           `json:"kind"`
		Count   int              `json:"count"`
		Records []map[string]any `json:"records"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if payload.Kind != "articles" || payload.Count != 1 || len(payload.Records) != 1 {
		t.Fatalf("unexpected payload %#v", payload)
	}
}

func TestRunErrorsWhenHandlersMissing(t *testing.T) {
	withStubModule(t, handlerSet{})

	for _, args := range [][]string{
		{"list", "blog"},
		{"show", "blog", "hello"},
		{"lint"},
	} {
		if _, err := runCLI(t, "", args...); err == nil || !strings.Contains(err.Error(), "not configured") {
			t.Fatalf("%v: expected handler error, got %v", args, err)
		}
	}
}

func TestRunRejectsWrongArgCount(t *testing.T) {
	withStubModule(t, handlerSet{})

	if _, err := runCLI(t, "", "show", "blog"); err == nil {
		t.Fatal("expected error for missing slug")
	}
}

func TestRunShowRendersBody(t *testing.T) {
	root := writeContent(t, map[string]string{
		"content/portfolio/acme.md": "---\ntitle: Acme\ndate: \"2024-01-01\"\n---\n- one\n- two",
	})

	out, err := runCLI(t, "", "--content-dir", root, "show", "projects", "acme", "--html")
	if err != nil {
		t.Fatalf("run show: %v", err)
	}

	var payload struct {
		Kind   string         `json:"kind"`
		Record map[string]any `json:"record"`
		HTML   string         `json:"html"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if payload.Kind != "portfolio" || payload.Record["slug"] != "acme" {
		t.Fatalf("unexpected payload %#v", payload)
	}
	if payload.HTML != "<ul><li>one</li><li>two</li></ul>" {
		t.Fatalf("unexpected html %q", payload.HTML)
	}
}

func TestRunShowMissingRecord(t *testing.T) {
	root := writeContent(t, map[string]string{})

	_, err := runCLI(t, "", "--content-dir", root, "show", "services", "nope")
	if !content.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRunListValidatesKind(t *testing.T) {
	root := writeContent(t, map[string]string{})

	_, err := runCLI(t, "", "--content-dir", root, "list", "widgets")
	if commands.TextCode(err) != commands.TextCodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRunRenderReadsStdin(t *testing.T) {
	root := writeContent(t, map[string]string{})

	out, err := runCLI(t, "## Title\n\n**bold**", "--content-dir", root, "render")
	if err != nil {
		t.Fatalf("run render: %v", err)
	}
	if out != "<h2>Title</h2><p><strong>bold</strong></p>\n" {
		t.Fatalf("unexpected render output %q", out)
	}
}

func TestRunRenderReadsFile(t *testing.T) {
	root := writeContent(t, map[string]string{"body.md": "- a\n- b"})

	out, err := runCLI(t, "", "--content-dir", root, "render", filepath.Join(root, "body.md"), "--variant", "portfolio")
	if err != nil {
		t.Fatalf("run render: %v", err)
	}
	if strings.TrimSpace(out) != "<ul><li>a</li><li>b</li></ul>" {
		t.Fatalf("unexpected render output %q", out)
	}
}

func TestRunLintFailsOnErrors(t *testing.T) {
	root := writeContent(t, map[string]string{
		"content/blog/good.md": "---\ntitle: Good\ndate: \"2024-01-01\"\nexcerpt: Fine\ncategory: News\n---\nbody",
		"content/blog/bad.md":  "---\ntitle: Bad\nfeatured: 7\n---\nbody",
	})

	out, err := runCLI(t, "", "--content-dir", root, "lint", "blog")
	if commands.TextCode(err) != sitecmd.TextCodeLintFailed {
		t.Fatalf("expected lint failure, got %v", err)
	}

	var report struct {
		Files  int              `json:"files"`
		Issues []map[string]any `json:"issues"`
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode report %q: %v", out, err)
	}
	if report.Files != 2 || len(report.Issues) == 0 {
		t.Fatalf("unexpected report %#v", report)
	}
}

func TestServeShutsDownWhenContextEnds(t *testing.T) {
	gin.SetMode(gin.TestMode)
	module := &moduleResources{
		router: func() (*gin.Engine, error) { return gin.New(), nil },
		addr:   "127.0.0.1:0",
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := serve(ctx, module); err != nil {
		t.Fatalf("serve: %v", err)
	}
}

func TestServeRequiresRouter(t *testing.T) {
	if err := serve(context.Background(), &moduleResources{}); err == nil {
		t.Fatal("expected router error")
	}
}
