package bookmarkscmd

import (
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	parseFileMessageType  = "bookmarks.parse_file"
	exportFileMessageType = "bookmarks.export_file"
)

// ParseFileCommand parses the Netscape export stored at Path and hands the
// records to the handler's sink.
type ParseFileCommand struct {
	Path string `json:"path"`
}

// Type implements command.Message.
func (ParseFileCommand) Type() string { return parseFileMessageType }

// Validate ensures a path is present before handlers execute.
func (cmd ParseFileCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Path, validation.Required, validation.By(notBlank(parseFileMessageType+".path_required", "path is required"))),
	)
}

// ExportFileCommand parses Path and writes the records back out as a
// Netscape bookmark file. An empty Output writes to the handler's writer.
type ExportFileCommand struct {
	Path   string `json:"path"`
	Output string `json:"output,omitempty"`
}

// Type implements command.Message.
func (ExportFileCommand) Type() string { return exportFileMessageType }

// Validate ensures a source is present and the export does not overwrite it.
func (cmd ExportFileCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Path, validation.Required, validation.By(notBlank(exportFileMessageType+".path_required", "path is required"))),
		validation.Field(&cmd.Output, validation.When(strings.TrimSpace(cmd.Output) != "", validation.By(func(value any) error {
			output, _ := value.(string)
			if filepath.Clean(output) == filepath.Clean(cmd.Path) {
				return validation.NewError(exportFileMessageType+".output_overwrites_source", "output must differ from the source file")
			}
			return nil
		}))),
	)
}

func notBlank(code, message string) validation.RuleFunc {
	return func(value any) error {
		if s, _ := value.(string); strings.TrimSpace(s) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}
