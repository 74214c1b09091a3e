package bookmarks

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-bookmarks/internal/logging/console"
	"github.com/goliatone/go-bookmarks/internal/logging/gologger"
	"github.com/goliatone/go-bookmarks/pkg/interfaces"
)

// NewLoggerProvider builds the provider named by cfg.Provider. An empty
// provider returns nil, which keeps every module logger a no-op.
func NewLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "":
		return nil, nil
	case "console":
		opts := console.Options{}
		if level, ok := console.ParseLevel(cfg.Level); ok {
			opts.MinLevel = &level
		}
		return console.NewProvider(opts), nil
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
	default:
		return nil, fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, cfg.Provider)
	}
}
