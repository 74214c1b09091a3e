package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"
)

var ErrLoggingProviderUnknown = errors.New("bookmarks config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("bookmarks config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("bookmarks config: logging format is invalid")

// Config holds the parser options. A parser built from a Config never
// mutates it, so one value can back any number of concurrent parses.
type Config struct {
	// KeepNestedTags tags links with the names of their enclosing folders.
	KeepNestedTags bool
	// DefaultTags are prepended to every record's tags.
	DefaultTags []string
	// DefaultPub is used verbatim when a link carries no visibility
	// attribute, and returned by boolean parsing for unknown tokens.
	DefaultPub any
	// NormalizeDates truncates epochs that land beyond now+DateRange.
	NormalizeDates bool
	// DateRange is a relative offset such as "30 years" or "1 year 6 months".
	DateRange string
	Logging   LoggingConfig
}

// LoggingConfig captures provider-specific options for runtime logging.
// An empty Provider keeps the parser silent.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns the defaults of the Netscape bookmark parser.
func DefaultConfig() Config {
	return Config{
		KeepNestedTags: true,
		DefaultTags:    []string{},
		DefaultPub:     0,
		NormalizeDates: true,
		DateRange:      "30 years",
		Logging: LoggingConfig{
			Provider: "",
			Level:    "info",
		},
	}
}

// Validate checks parser options with ozzo-validation and the logging block
// against the supported providers.
func (cfg Config) Validate() error {
	err := validation.ValidateStruct(&cfg,
		validation.Field(&cfg.DateRange,
			validation.When(cfg.NormalizeDates, validation.Required, validation.By(validateDateRange)),
		),
		validation.Field(&cfg.DefaultTags, validation.Each(validation.By(validateTag))),
	)
	if err != nil {
		return goerrors.FromOzzoValidation(err, "bookmarks config: invalid parser options")
	}
	return cfg.Logging.validate()
}

func validateDateRange(value any) error {
	raw, _ := value.(string)
	if _, err := ParseRange(raw); err != nil {
		return validation.NewError("bookmarks.config.date_range_invalid", err.Error())
	}
	return nil
}

func validateTag(value any) error {
	tag, _ := value.(string)
	if strings.TrimSpace(tag) == "" {
		return validation.NewError("bookmarks.config.default_tag_empty", "default tags must not be blank")
	}
	return nil
}

func (cfg LoggingConfig) validate() error {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if provider == "" {
		return nil
	}
	if provider != "console" && provider != "gologger" {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
