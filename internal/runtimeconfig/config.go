package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
)

var ErrContentDirRequired = errors.New("site config: content directory is required")
var ErrContentExtensionInvalid = errors.New("site config: content extension must start with a dot")
var ErrMalformedPolicyInvalid = errors.New("site config: malformed policy must be skip or abort")
var ErrMarkdownEngineInvalid = errors.New("site config: markdown engine must be pipeline or goldmark")
var ErrWordsPerMinuteInvalid = errors.New("site config: words per minute must be zero or positive")
var ErrHTTPModeInvalid = errors.New("site config: http mode is invalid")
var ErrLoggingProviderRequired = errors.New("site config: logging provider is required")
var ErrLoggingProviderUnknown = errors.New("site config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("site config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("site config: logging format is invalid")

const (
	MalformedPolicySkip  = "skip"
	MalformedPolicyAbort = "abort"
)

const (
	EnginePipeline = "pipeline"
	EngineGoldmark = "goldmark"
)

// Config aggregates the settings of the content core and its outer surfaces.
type Config struct {
	Content  ContentConfig  `yaml:"content" toml:"content" json:"content"`
	Markdown MarkdownConfig `yaml:"markdown" toml:"markdown" json:"markdown"`
	HTTP     HTTPConfig     `yaml:"http" toml:"http" json:"http"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging" json:"logging"`
}

// ContentConfig locates the content directories. Kind directories are
// relative to BaseDir.
type ContentConfig struct {
	BaseDir         string `yaml:"base_dir" toml:"base_dir" json:"base_dir"`
	ArticlesDir     string `yaml:"articles_dir" toml:"articles_dir" json:"articles_dir"`
	PortfolioDir    string `yaml:"portfolio_dir" toml:"portfolio_dir" json:"portfolio_dir"`
	ServicesDir     string `yaml:"services_dir" toml:"services_dir" json:"services_dir"`
	Extension       string `yaml:"extension" toml:"extension" json:"extension"`
	MalformedPolicy string `yaml:"malformed_policy" toml:"malformed_policy" json:"malformed_policy"`
}

// MarkdownConfig selects the body renderer.
type MarkdownConfig struct {
	Engine         string         `yaml:"engine" toml:"engine" json:"engine"`
	WordsPerMinute int            `yaml:"words_per_minute" toml:"words_per_minute" json:"words_per_minute"`
	Goldmark       GoldmarkConfig `yaml:"goldmark" toml:"goldmark" json:"goldmark"`
}

// GoldmarkConfig tunes the goldmark engine when it is selected.
type GoldmarkConfig struct {
	Extensions []string `yaml:"extensions" toml:"extensions" json:"extensions"`
	HardWraps  bool     `yaml:"hard_wraps" toml:"hard_wraps" json:"hard_wraps"`
	SafeMode   bool     `yaml:"safe_mode" toml:"safe_mode" json:"safe_mode"`
}

// HTTPConfig configures the JSON API.
type HTTPConfig struct {
	Addr string `yaml:"addr" toml:"addr" json:"addr"`
	Mode string `yaml:"mode" toml:"mode" json:"mode"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string   `yaml:"provider" toml:"provider" json:"provider"`
	Level     string   `yaml:"level" toml:"level" json:"level"`
	Format    string   `yaml:"format" toml:"format" json:"format"`
	AddSource bool     `yaml:"add_source" toml:"add_source" json:"add_source"`
	Focus     []string `yaml:"focus" toml:"focus" json:"focus"`
}

// DefaultConfig returns the configuration used when nothing is supplied.
func DefaultConfig() Config {
	return Config{
		Content: ContentConfig{
			BaseDir:         ".",
			ArticlesDir:     "content/blog",
			PortfolioDir:    "content/portfolio",
			ServicesDir:     "content/services",
			Extension:       ".md",
			MalformedPolicy: MalformedPolicySkip,
		},
		Markdown: MarkdownConfig{
			Engine:         EnginePipeline,
			WordsPerMinute: 200,
		},
		HTTP: HTTPConfig{
			Addr: ":8080",
			Mode: "release",
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Content.BaseDir) == "" {
		return fmt.Errorf("%w: base_dir", ErrContentDirRequired)
	}
	for name, dir := range map[string]string{
		"articles_dir":  cfg.Content.ArticlesDir,
		"portfolio_dir": cfg.Content.PortfolioDir,
		"services_dir":  cfg.Content.ServicesDir,
	} {
		if strings.TrimSpace(dir) == "" {
			return fmt.Errorf("%w: %s", ErrContentDirRequired, name)
		}
	}
	if ext := strings.TrimSpace(cfg.Content.Extension); ext != "" && !strings.HasPrefix(ext, ".") {
		return fmt.Errorf("%w: %s", ErrContentExtensionInvalid, ext)
	}
	switch normalize(cfg.Content.MalformedPolicy) {
	case "", MalformedPolicySkip, MalformedPolicyAbort:
	default:
		return fmt.Errorf("%w: %s", ErrMalformedPolicyInvalid, cfg.Content.MalformedPolicy)
	}
	switch normalize(cfg.Markdown.Engine) {
	case "", EnginePipeline, EngineGoldmark:
	default:
		return fmt.Errorf("%w: %s", ErrMarkdownEngineInvalid, cfg.Markdown.Engine)
	}
	if cfg.Markdown.WordsPerMinute < 0 {
		return ErrWordsPerMinuteInvalid
	}
	switch normalize(cfg.HTTP.Mode) {
	case "", "debug", "release", "test":
	default:
		return fmt.Errorf("%w: %s", ErrHTTPModeInvalid, cfg.HTTP.Mode)
	}

	provider := normalize(cfg.Logging.Provider)
	if provider == "" {
		return ErrLoggingProviderRequired
	}
	if !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

// Policy returns the normalised malformed-record policy.
func (c ContentConfig) Policy() string {
	if normalize(c.MalformedPolicy) == MalformedPolicyAbort {
		return MalformedPolicyAbort
	}
	return MalformedPolicySkip
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch normalize(level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch normalize(format) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
