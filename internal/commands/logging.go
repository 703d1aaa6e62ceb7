package commands

import (
	"strings"

	"github.com/goliatone/go-ccpm/internal/logging"
	"github.com/goliatone/go-ccpm/pkg/interfaces"
)

const commandModuleRoot = "ccpm.commands"

// CommandLogger returns a module-scoped logger for command handlers tagged
// with the command component and module name.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	logger := logging.ModuleLogger(provider, commandModuleRoot+"."+name)
	return logging.WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": name,
	})
}

// EnsureLogger returns logger, or a no-op logger when it is nil.
func EnsureLogger(logger interfaces.Logger) interfaces.Logger {
	if logger == nil {
		return logging.NoOp()
	}
	return logger
}
