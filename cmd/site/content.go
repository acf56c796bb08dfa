package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	sitecmd "github.com/goliatone/go-site/internal/commands/site"
)

func newListCommand(flags *globalFlags) *cobra.Command {
	var (
		category string
		featured bool
		query    string
	)

	cmd := &cobra.Command{
		Use:   "list <kind>",
		Short: "List articles, portfolio items or services",
		Long: `List prints the records of one collection as JSON.

Examples:
  site list blog
  site list blog --category news --query launch
  site list portfolio --featured
  site list services`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := flags.module(cmd)
			if err != nil {
				return err
			}
			if module.handlers.list == nil {
				return errors.New("list handler not configured")
			}

			var result sitecmd.ResultEnvelope
			msg := sitecmd.ListContentCommand{
				Kind:           args[0],
				Category:       category,
				Featured:       featured,
				Query:          query,
				ResultCallback: func(env sitecmd.ResultEnvelope) { result = env },
			}
			if err := module.handlers.list.Execute(cmd.Context(), msg); err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]any{
				"kind":    result.Kind,
				"count":   result.Count,
				"records": result.Records,
			})
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only records in this category (blog, portfolio)")
	cmd.Flags().BoolVar(&featured, "featured", false, "Only featured records (blog, portfolio)")
	cmd.Flags().StringVar(&query, "query", "", "Case-insensitive title or excerpt search (blog)")
	return cmd
}

func newShowCommand(flags *globalFlags) *cobra.Command {
	var includeHTML bool

	cmd := &cobra.Command{
		Use:   "show <kind> <slug>",
		Short: "Show a single record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := flags.module(cmd)
			if err != nil {
				return err
			}
			if module.handlers.show == nil {
				return errors.New("show handler not configured")
			}

			var result sitecmd.ResultEnvelope
			msg := sitecmd.ShowContentCommand{
				Kind:           args[0],
				Slug:           args[1],
				IncludeHTML:    includeHTML,
				ResultCallback: func(env sitecmd.ResultEnvelope) { result = env },
			}
			if err := module.handlers.show.Execute(cmd.Context(), msg); err != nil {
				return err
			}

			payload := map[string]any{
				"kind":   result.Kind,
				"record": result.Records,
			}
			if includeHTML {
				payload["html"] = result.HTML
			}
			return writeJSON(cmd.OutOrStdout(), payload)
		},
	}

	cmd.Flags().BoolVar(&includeHTML, "html", false, "Include the rendered body")
	return cmd
}

func newRenderCommand(flags *globalFlags) *cobra.Command {
	var variant string

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render Markdown to HTML",
		Long: `Render converts a Markdown file, or standard input when the file is
omitted or "-", with the site pipeline and prints the HTML.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			module, err := flags.module(cmd)
			if err != nil {
				return err
			}
			if module.handlers.render == nil {
				return errors.New("render handler not configured")
			}

			var html string
			msg := sitecmd.RenderMarkdownCommand{
				Variant:        variant,
				Source:         source,
				ResultCallback: func(env sitecmd.ResultEnvelope) { html = env.HTML },
			}
			if err := module.handlers.render.Execute(cmd.Context(), msg); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), html)
			return err
		},
	}

	cmd.Flags().StringVar(&variant, "variant", "standard", "Pipeline variant: standard or portfolio")
	return cmd
}

func newLintCommand(flags *globalFlags) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "lint [kind...]",
		Short: "Check content files against the front matter schemas",
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := flags.module(cmd)
			if err != nil {
				return err
			}
			if module.handlers.lint == nil {
				return errors.New("lint handler not configured")
			}

			msg := sitecmd.LintContentCommand{
				Kinds:  args,
				Strict: strict,
				ResultCallback: func(env sitecmd.ResultEnvelope) {
					if env.Report != nil {
						_ = writeJSON(cmd.OutOrStdout(), env.Report)
					}
				},
			}
			return module.handlers.lint.Execute(cmd.Context(), msg)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on warnings as well as errors")
	return cmd
}

func readSource(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(data), nil
}
