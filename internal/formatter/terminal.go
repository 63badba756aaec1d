package formatter

import (
	"strings"

	"github.com/yildizm/go-termfmt"

	"github.com/yildizm/swdex/internal/people"
)

// terminalFormatter formats output as plain text for terminal display using go-termfmt
type terminalFormatter struct {
	opts *termfmt.TerminalOptions
}

// NewTerminal creates a new terminal formatter with optional color support
func NewTerminal(color bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = !emojiDisabled()
	return &terminalFormatter{opts: opts}
}

func (f *terminalFormatter) FormatList(records []people.Record) ([]byte, error) {
	var b strings.Builder

	f.writeListHeader(&b, len(records))

	if len(records) > 0 {
		items := make([]termfmt.TreeItem, 0, len(records))
		for i, rec := range records {
			items = append(items, termfmt.TreeItem{
				Label: rec.Name,
				Value: rec.Description(),
				Last:  i == len(records)-1,
			})
		}
		b.WriteString(termfmt.TreeViewWithOptions(items, f.opts))
		b.WriteString("\n")
	}

	return []byte(b.String()), nil
}

func (f *terminalFormatter) FormatDetail(record people.Record) ([]byte, error) {
	var b strings.Builder

	symbol := termfmt.GetEmoji("info", f.opts)
	b.WriteString(symbol + " " + record.Name + "\n")

	fields := record.Fields()
	items := make([]termfmt.TreeItem, 0, len(fields))
	for i, field := range fields {
		items = append(items, termfmt.TreeItem{
			Label: field.Label,
			Value: field.Display(),
			Last:  i == len(fields)-1,
		})
	}
	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts))
	b.WriteString("\n")

	return []byte(b.String()), nil
}

// writeListHeader writes the list title with the record count
func (f *terminalFormatter) writeListHeader(b *strings.Builder, count int) {
	symbol := termfmt.GetEmoji("statistics", f.opts)
	b.WriteString(symbol + " Star Wars Characters (" + formatNumber(count) + ")\n")
}
