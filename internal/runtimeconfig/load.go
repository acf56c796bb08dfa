package runtimeconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var ErrConfigFormatUnsupported = errors.New("site config: unsupported config file format")

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SITE_"

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// Path is an optional YAML, TOML or JSON config file.
	Path string
	// EnvFiles lists dotenv files to read; missing files are ignored.
	EnvFiles []string
	// LookupEnv resolves process environment variables (defaults to os.LookupEnv).
	LookupEnv func(string) (string, bool)
}

// Load builds a Config from defaults, the optional config file, dotenv files
// and environment variables, in increasing order of precedence. Process
// environment wins over dotenv values.
func Load(opts LoadOptions) (Config, error) {
	cfg := DefaultConfig()

	if path := strings.TrimSpace(opts.Path); path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	dotenv, err := readEnvFiles(opts.EnvFiles)
	if err != nil {
		return Config{}, err
	}
	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	env := func(key string) (string, bool) {
		if value, ok := lookup(EnvPrefix + key); ok {
			return value, true
		}
		value, ok := dotenv[EnvPrefix+key]
		return value, ok
	}

	if err := applyEnv(&cfg, env); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("site config: read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		err = decoder.Decode(cfg)
	default:
		return fmt.Errorf("%w: %s", ErrConfigFormatUnsupported, path)
	}
	if err != nil {
		return fmt.Errorf("site config: decode %s: %w", path, err)
	}
	return nil
}

func readEnvFiles(files []string) (map[string]string, error) {
	existing := make([]string, 0, len(files))
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("site config: stat %s: %w", file, err)
		}
		existing = append(existing, file)
	}
	if len(existing) == 0 {
		return map[string]string{}, nil
	}
	values, err := godotenv.Read(existing...)
	if err != nil {
		return nil, fmt.Errorf("site config: read env files: %w", err)
	}
	return values, nil
}

func applyEnv(cfg *Config, env func(string) (string, bool)) error {
	fields := map[string]*string{
		"CONTENT_DIR":      &cfg.Content.BaseDir,
		"BLOG_DIR":         &cfg.Content.ArticlesDir,
		"PORTFOLIO_DIR":    &cfg.Content.PortfolioDir,
		"SERVICES_DIR":     &cfg.Content.ServicesDir,
		"CONTENT_EXT":      &cfg.Content.Extension,
		"MALFORMED_POLICY": &cfg.Content.MalformedPolicy,
		"MARKDOWN_ENGINE":  &cfg.Markdown.Engine,
		"HTTP_ADDR":        &cfg.HTTP.Addr,
		"HTTP_MODE":        &cfg.HTTP.Mode,
		"LOG_PROVIDER":     &cfg.Logging.Provider,
		"LOG_LEVEL":        &cfg.Logging.Level,
		"LOG_FORMAT":       &cfg.Logging.Format,
	}
	for key, target := range fields {
		if value, ok := env(key); ok {
			*target = value
		}
	}

	if value, ok := env("WORDS_PER_MINUTE"); ok {
		wpm, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrWordsPerMinuteInvalid, value)
		}
		cfg.Markdown.WordsPerMinute = wpm
	}
	return nil
}
