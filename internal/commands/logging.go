package commands

import (
	"strings"

	"github.com/goliatone/go-site/internal/logging"
	"github.com/goliatone/go-site/pkg/interfaces"
)

const commandModuleRoot = "site.commands"

// CommandLogger returns a module-scoped logger for command handlers, enriching it with
// the fields every command entry carries.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	logger := logging.CommandsLogger(provider)
	if name == "" {
		name = "core"
	} else {
		logger = logging.ModuleLogger(provider, commandModuleRoot+"."+name)
	}
	return logging.WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": name,
	})
}
