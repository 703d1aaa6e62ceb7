package commands

import (
	"errors"

	basecommands "github.com/goliatone/go-ccpm/internal/commands"
	"github.com/goliatone/go-ccpm/internal/di"
	"github.com/goliatone/go-ccpm/pkg/interfaces"
)

// CommandRegistry records command handlers so hosts can expose them via CLI or cron.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CommandDispatcher subscribes command handlers to a dispatcher implementation.
type CommandDispatcher interface {
	RegisterCommand(handler any) (CommandSubscription, error)
}

// CommandSubscription allows hosts to tear down dispatcher subscriptions.
type CommandSubscription interface {
	Unsubscribe()
}

// RegistrationOptions configures how handlers are registered.
type RegistrationOptions struct {
	Registry       CommandRegistry
	Dispatcher     CommandDispatcher
	LoggerProvider interfaces.LoggerProvider
}

// RegistrationResult captures the container's command handlers and any dispatcher subscriptions.
type RegistrationResult struct {
	Handlers      []any
	Subscriptions []CommandSubscription
}

// Close unsubscribes every dispatcher subscription.
func (r *RegistrationResult) Close() {
	if r == nil {
		return
	}
	for _, sub := range r.Subscriptions {
		sub.Unsubscribe()
	}
	r.Subscriptions = nil
}

// RegisterContainerCommands hands the command handlers built by the container
// to the optional registry and dispatcher integrations.
func RegisterContainerCommands(container *di.Container, opts RegistrationOptions) (*RegistrationResult, error) {
	if container == nil {
		return &RegistrationResult{}, nil
	}

	provider := opts.LoggerProvider
	if provider == nil {
		provider = container.LoggerProvider()
	}
	logger := basecommands.CommandLogger(provider, "registration")

	result := &RegistrationResult{
		Handlers:      make([]any, 0),
		Subscriptions: make([]CommandSubscription, 0),
	}

	var errs error

	register := func(handler any) {
		if handler == nil {
			return
		}
		result.Handlers = append(result.Handlers, handler)

		if opts.Registry != nil {
			if err := opts.Registry.RegisterCommand(handler); err != nil {
				errs = errors.Join(errs, err)
			}
		}

		if opts.Dispatcher != nil {
			subscription, err := opts.Dispatcher.RegisterCommand(handler)
			if err != nil {
				errs = errors.Join(errs, err)
			} else if subscription != nil {
				result.Subscriptions = append(result.Subscriptions, subscription)
			}
		}
	}

	if set := container.ContentCommands(); set != nil {
		register(set.Validate)
	}
	if set := container.MarkdownCommands(); set != nil {
		register(set.Strip)
		register(set.Check)
	}

	if errs != nil {
		logger.Error("commands.registration.failed", "error", errs)
	} else {
		logger.Debug("commands.registration.completed",
			"handlers", len(result.Handlers),
			"subscriptions", len(result.Subscriptions),
		)
	}

	if len(result.Handlers) == 0 {
		return result, errors.New("no command handlers registered; ensure the container was constructed with NewContainer")
	}

	return result, errs
}
