package bookmarkscmd

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/goliatone/go-bookmarks/internal/commands"
	"github.com/goliatone/go-bookmarks/internal/logging"
	"github.com/goliatone/go-bookmarks/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

const (
	parseOperation  = "bookmarks.parse_file"
	exportOperation = "bookmarks.export_file"
)

var (
	// ErrParserRequired is returned when a handler was built without a parser.
	ErrParserRequired = errors.New("bookmarks command: parser is required")
	// ErrExporterRequired is returned when the export handler has no exporter.
	ErrExporterRequired = errors.New("bookmarks command: exporter is required")
)

var (
	_ command.Commander[ParseFileCommand]  = (*ParseFileHandler)(nil)
	_ command.Commander[ExportFileCommand] = (*ExportFileHandler)(nil)
)

// Sink receives the records of a successful parse.
type Sink func(ctx context.Context, records []interfaces.Record) error

// ParseFileHandler parses bookmark files via the shared command handler foundation.
type ParseFileHandler struct {
	inner *commands.Handler[ParseFileCommand]
}

// NewParseFileHandler creates a handler that parses with parser and passes
// the records to sink. A nil sink discards them.
func NewParseFileHandler(parser interfaces.BookmarkParser, sink Sink, logger interfaces.Logger, opts ...commands.HandlerOption[ParseFileCommand]) *ParseFileHandler {
	baseLogger := logging.OrNoOp(logger)

	exec := func(ctx context.Context, msg ParseFileCommand) error {
		if parser == nil {
			return ErrParserRequired
		}
		records, err := parseFile(ctx, parser, msg.Path)
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"path":    msg.Path,
			"records": len(records),
		}).Info("bookmarks.command.parse_file.completed")

		if sink == nil {
			return nil
		}
		return sink(ctx, records)
	}

	handlerOpts := []commands.HandlerOption[ParseFileCommand]{
		commands.WithLogger[ParseFileCommand](baseLogger),
		commands.WithOperation[ParseFileCommand](parseOperation),
		commands.WithMessageFields(func(msg ParseFileCommand) map[string]any {
			return map[string]any{"path": msg.Path}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ParseFileCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ParseFileHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ParseFileCommand].
func (h *ParseFileHandler) Execute(ctx context.Context, msg ParseFileCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ExportFileHandler re-exports bookmark files as Netscape HTML.
type ExportFileHandler struct {
	inner *commands.Handler[ExportFileCommand]
}

// NewExportFileHandler creates a handler that parses with parser and writes
// with exporter, either to the command's Output file or to out.
func NewExportFileHandler(parser interfaces.BookmarkParser, exporter interfaces.Exporter, out io.Writer, logger interfaces.Logger, opts ...commands.HandlerOption[ExportFileCommand]) *ExportFileHandler {
	baseLogger := logging.OrNoOp(logger)
	if out == nil {
		out = os.Stdout
	}

	exec := func(ctx context.Context, msg ExportFileCommand) error {
		if parser == nil {
			return ErrParserRequired
		}
		if exporter == nil {
			return ErrExporterRequired
		}
		records, err := parseFile(ctx, parser, msg.Path)
		if err != nil {
			return err
		}
		if err := writeExport(exporter, out, msg.Output, records); err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"path":    msg.Path,
			"output":  msg.Output,
			"records": len(records),
		}).Info("bookmarks.command.export_file.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[ExportFileCommand]{
		commands.WithLogger[ExportFileCommand](baseLogger),
		commands.WithOperation[ExportFileCommand](exportOperation),
		commands.WithMessageFields(func(msg ExportFileCommand) map[string]any {
			fields := map[string]any{"path": msg.Path}
			if msg.Output != "" {
				fields["output"] = msg.Output
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ExportFileCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ExportFileHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ExportFileCommand].
func (h *ExportFileHandler) Execute(ctx context.Context, msg ExportFileCommand) error {
	return h.inner.Execute(ctx, msg)
}

func parseFile(ctx context.Context, parser interfaces.BookmarkParser, path string) ([]interfaces.Record, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return parser.ParseFile(path)
}

func writeExport(exporter interfaces.Exporter, out io.Writer, output string, records []interfaces.Record) (err error) {
	if output == "" {
		return exporter.Export(out, records)
	}
	file, err := os.Create(output)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()
	return exporter.Export(file, records)
}
