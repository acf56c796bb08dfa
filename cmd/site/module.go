package main

import (
	"io"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	command "github.com/goliatone/go-command"

	sitecmd "github.com/goliatone/go-site/internal/commands/site"
	"github.com/goliatone/go-site/internal/di"
	"github.com/goliatone/go-site/internal/runtimeconfig"
	"github.com/goliatone/go-site/pkg/interfaces"
)

// moduleOptions carries the global flags into module construction.
type moduleOptions struct {
	ConfigPath string
	ContentDir string
	LogLevel   string
	EnvFiles   []string
	LogWriter  io.Writer
}

type handlerSet struct {
	list   command.Commander[sitecmd.ListContentCommand]
	show   command.Commander[sitecmd.ShowContentCommand]
	render command.Commander[sitecmd.RenderMarkdownCommand]
	lint   command.Commander[sitecmd.LintContentCommand]
}

type moduleResources struct {
	handlers handlerSet
	router   func() (*gin.Engine, error)
	addr     string
	logger   interfaces.Logger
}

var moduleBuilder = buildModule

func buildModule(opts moduleOptions) (*moduleResources, error) {
	cfg, err := runtimeconfig.Load(runtimeconfig.LoadOptions{
		Path:     opts.ConfigPath,
		EnvFiles: opts.EnvFiles,
	})
	if err != nil {
		return nil, err
	}
	if dir := strings.TrimSpace(opts.ContentDir); dir != "" {
		cfg.Content.BaseDir = dir
	}
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.Logging.Level = level
	}

	writer := opts.LogWriter
	if writer == nil {
		writer = os.Stderr
	}
	container, err := di.NewContainer(cfg, di.WithLogWriter(writer))
	if err != nil {
		return nil, err
	}

	set, err := container.RegisterCommands(nil)
	if err != nil {
		return nil, err
	}

	return &moduleResources{
		handlers: handlerSet{
			list:   set.List,
			show:   set.Show,
			render: set.Render,
			lint:   set.Lint,
		},
		router: container.Router,
		addr:   cfg.HTTP.Addr,
		logger: container.Logger(),
	}, nil
}
