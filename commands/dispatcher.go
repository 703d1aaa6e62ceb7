package commands

import (
	"fmt"

	"github.com/goliatone/go-command/dispatcher"

	contentcmd "github.com/goliatone/go-ccpm/internal/commands/content"
	markdowncmd "github.com/goliatone/go-ccpm/internal/commands/markdown"
)

// GlobalDispatcher subscribes handlers to the process wide go-command
// dispatcher so callers can use dispatcher.Dispatch.
type GlobalDispatcher struct{}

var _ CommandDispatcher = GlobalDispatcher{}

// RegisterCommand subscribes handler under its message type.
func (GlobalDispatcher) RegisterCommand(handler any) (CommandSubscription, error) {
	switch h := handler.(type) {
	case *contentcmd.ValidateBodyHandler:
		return dispatcher.SubscribeCommand[contentcmd.ValidateBodyCommand](h), nil
	case *markdowncmd.StripFrontmatterHandler:
		return dispatcher.SubscribeCommand[markdowncmd.StripFrontmatterCommand](h), nil
	case *markdowncmd.CheckFrontmatterHandler:
		return dispatcher.SubscribeCommand[markdowncmd.CheckFrontmatterCommand](h), nil
	default:
		return nil, fmt.Errorf("commands: unsupported handler %T", handler)
	}
}
