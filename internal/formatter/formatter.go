// Package formatter renders people for non-interactive output.
package formatter

import (
	"fmt"

	"github.com/yildizm/swdex/internal/people"
)

// Formatter defines the interface for output formatting
type Formatter interface {
	// FormatList renders records in the order given
	FormatList(records []people.Record) ([]byte, error)

	// FormatDetail renders the detail fields of one record
	FormatDetail(record people.Record) ([]byte, error)
}

// New returns the formatter for format. Color only affects text output.
func New(format string, color bool) (Formatter, error) {
	switch format {
	case "json":
		return NewJSON(), nil
	case "markdown", "md":
		return NewMarkdown(), nil
	case "csv":
		return NewCSV(), nil
	case "text", "terminal", "":
		return NewTerminal(color), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}
