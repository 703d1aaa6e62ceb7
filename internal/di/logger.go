package di

import (
	"github.com/goliatone/go-ccpm/internal/logging/console"
	"github.com/goliatone/go-ccpm/internal/logging/gologger"
)

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil {
		return nil
	}

	cfg := c.Config.Logging
	switch normalizedProvider(cfg.Provider) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
		if err != nil {
			return err
		}
		c.loggerProvider = provider
	default:
		opts := console.Options{Writer: c.logWriter}
		if cfg.Level != "" {
			level, err := console.ParseLevel(cfg.Level)
			if err != nil {
				return err
			}
			opts.MinLevel = &level
		}
		c.loggerProvider = console.NewProvider(opts)
	}
	return nil
}
