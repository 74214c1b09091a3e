package bookmarks

import (
	"github.com/goliatone/go-bookmarks/internal/netscape"
	"github.com/goliatone/go-bookmarks/internal/runtimeconfig"
)

var (
	ErrLoggingProviderUnknown = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid    = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid   = runtimeconfig.ErrLoggingFormatInvalid
	ErrDateRangeInvalid       = runtimeconfig.ErrDateRangeInvalid
)

// CategoryIO is the go-errors category of failures reading an export.
var CategoryIO = netscape.CategoryIO

type (
	Config        = runtimeconfig.Config
	LoggingConfig = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
