package runtimeconfig_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-site/internal/runtimeconfig"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
	if cfg.Content.ArticlesDir != "content/blog" || cfg.Content.Extension != ".md" {
		t.Fatalf("unexpected content defaults %#v", cfg.Content)
	}
	if cfg.Content.Policy() != runtimeconfig.MalformedPolicySkip {
		t.Fatalf("expected skip policy by default, got %q", cfg.Content.Policy())
	}
}

func TestConfigValidateErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*runtimeconfig.Config)
		want   error
	}{
		{"missing articles dir", func(c *runtimeconfig.Config) { c.Content.ArticlesDir = " " }, runtimeconfig.ErrContentDirRequired},
		{"missing base dir", func(c *runtimeconfig.Config) { c.Content.BaseDir = "" }, runtimeconfig.ErrContentDirRequired},
		{"extension without dot", func(c *runtimeconfig.Config) { c.Content.Extension = "md" }, runtimeconfig.ErrContentExtensionInvalid},
		{"unknown policy", func(c *runtimeconfig.Config) { c.Content.MalformedPolicy = "ignore" }, runtimeconfig.ErrMalformedPolicyInvalid},
		{"unknown engine", func(c *runtimeconfig.Config) { c.Markdown.Engine = "blackfriday" }, runtimeconfig.ErrMarkdownEngineInvalid},
		{"negative wpm", func(c *runtimeconfig.Config) { c.Markdown.WordsPerMinute = -1 }, runtimeconfig.ErrWordsPerMinuteInvalid},
		{"bad http mode", func(c *runtimeconfig.Config) { c.HTTP.Mode = "prod" }, runtimeconfig.ErrHTTPModeInvalid},
		{"missing provider", func(c *runtimeconfig.Config) { c.Logging.Provider = "" }, runtimeconfig.ErrLoggingProviderRequired},
		{"unknown provider", func(c *runtimeconfig.Config) { c.Logging.Provider = "syslog" }, runtimeconfig.ErrLoggingProviderUnknown},
		{"bad level", func(c *runtimeconfig.Config) { c.Logging.Level = "loud" }, runtimeconfig.ErrLoggingLevelInvalid},
		{"bad gologger format", func(c *runtimeconfig.Config) {
			c.Logging.Provider = "gologger"
			c.Logging.Format = "xml"
		}, runtimeconfig.ErrLoggingFormatInvalid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := runtimeconfig.DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestConfigValidate_ConsoleIgnoresFormat(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("console provider should ignore format, got %v", err)
	}
}

func noEnv(string) (string, bool) { return "", false }

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	writeFile(t, path, "content:\n  base_dir: /srv/site\n  malformed_policy: abort\nmarkdown:\n  engine: goldmark\n")

	cfg, err := runtimeconfig.Load(runtimeconfig.LoadOptions{Path: path, LookupEnv: noEnv})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Content.BaseDir != "/srv/site" || cfg.Content.Policy() != runtimeconfig.MalformedPolicyAbort {
		t.Fatalf("unexpected content config %#v", cfg.Content)
	}
	if cfg.Content.ArticlesDir != "content/blog" {
		t.Fatalf("expected defaults to survive partial file, got %q", cfg.Content.ArticlesDir)
	}
	if cfg.Markdown.Engine != runtimeconfig.EngineGoldmark {
		t.Fatalf("expected goldmark engine, got %q", cfg.Markdown.Engine)
	}
}

func TestLoadTOMLAndJSONFiles(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "site.toml")
	writeFile(t, tomlPath, "[http]\naddr = \":9090\"\n\n[logging]\nlevel = \"debug\"\n")
	cfg, err := runtimeconfig.Load(runtimeconfig.LoadOptions{Path: tomlPath, LookupEnv: noEnv})
	if err != nil {
		t.Fatalf("Load toml: %v", err)
	}
	if cfg.HTTP.Addr != ":9090" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected toml config %#v %#v", cfg.HTTP, cfg.Logging)
	}

	jsonPath := filepath.Join(dir, "site.json")
	writeFile(t, jsonPath, `{"content": {"services_dir": "data/services"}}`)
	cfg, err = runtimeconfig.Load(runtimeconfig.LoadOptions{Path: jsonPath, LookupEnv: noEnv})
	if err != nil {
		t.Fatalf("Load json: %v", err)
	}
	if cfg.Content.ServicesDir != "data/services" {
		t.Fatalf("unexpected services dir %q", cfg.Content.ServicesDir)
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.ini")
	writeFile(t, path, "x=1")

	_, err := runtimeconfig.Load(runtimeconfig.LoadOptions{Path: path, LookupEnv: noEnv})
	if !errors.Is(err, runtimeconfig.ErrConfigFormatUnsupported) {
		t.Fatalf("expected ErrConfigFormatUnsupported, got %v", err)
	}
}

func TestLoadEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "site.yaml")
	writeFile(t, configPath, "content:\n  articles_dir: from-file\nhttp:\n  addr: \":1000\"\n")
	envPath := filepath.Join(dir, ".env")
	writeFile(t, envPath, "SITE_BLOG_DIR=from-dotenv\nSITE_HTTP_ADDR=:2000\nSITE_WORDS_PER_MINUTE=250\n")

	process := map[string]string{"SITE_HTTP_ADDR": ":3000"}
	lookup := func(key string) (string, bool) {
		value, ok := process[key]
		return value, ok
	}

	cfg, err := runtimeconfig.Load(runtimeconfig.LoadOptions{
		Path:      configPath,
		EnvFiles:  []string{envPath, filepath.Join(dir, "missing.env")},
		LookupEnv: lookup,
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Content.ArticlesDir != "from-dotenv" {
		t.Fatalf("expected dotenv to override file, got %q", cfg.Content.ArticlesDir)
	}
	if cfg.HTTP.Addr != ":3000" {
		t.Fatalf("expected process env to override dotenv, got %q", cfg.HTTP.Addr)
	}
	if cfg.Markdown.WordsPerMinute != 250 {
		t.Fatalf("expected words per minute from dotenv, got %d", cfg.Markdown.WordsPerMinute)
	}
}

func TestLoadValidatesResult(t *testing.T) {
	lookup := func(key string) (string, bool) {
		if key == "SITE_MALFORMED_POLICY" {
			return "explode", true
		}
		return "", false
	}
	_, err := runtimeconfig.Load(runtimeconfig.LoadOptions{LookupEnv: lookup})
	if !errors.Is(err, runtimeconfig.ErrMalformedPolicyInvalid) {
		t.Fatalf("expected ErrMalformedPolicyInvalid, got %v", err)
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
