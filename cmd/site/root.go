package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type globalFlags struct {
	configPath string
	contentDir string
	logLevel   string
	envFiles   []string
}

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "site",
		Short: "Site content loader and API",
		Long: `site loads blog articles, portfolio items and service offerings from
Markdown files with front matter, and serves them as JSON.

Usage:
  site serve
  site list blog --category news
  site show portfolio acme --html
  site render body.md --variant portfolio
  site lint --strict`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a YAML, TOML or JSON config file")
	root.PersistentFlags().StringVar(&flags.contentDir, "content-dir", "", "Content root directory (overrides config)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (overrides config)")
	root.PersistentFlags().StringSliceVar(&flags.envFiles, "env-file", []string{".env"}, "Dotenv files to read")

	root.AddCommand(
		newServeCommand(flags),
		newListCommand(flags),
		newShowCommand(flags),
		newRenderCommand(flags),
		newLintCommand(flags),
	)
	return root
}

func (f *globalFlags) module(cmd *cobra.Command) (*moduleResources, error) {
	module, err := moduleBuilder(moduleOptions{
		ConfigPath: f.configPath,
		ContentDir: f.contentDir,
		LogLevel:   f.logLevel,
		EnvFiles:   f.envFiles,
		LogWriter:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("bootstrap module: %w", err)
	}
	return module, nil
}

func writeJSON(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
