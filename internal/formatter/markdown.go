package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/swdex/internal/people"
)

// markdownFormatter formats output as Markdown tables
type markdownFormatter struct{}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) FormatList(records []people.Record) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# Star Wars Characters\n\n")
	fmt.Fprintf(&b, "%s found.\n\n", pluralize(len(records), "character", "characters"))

	if len(records) == 0 {
		return []byte(b.String()), nil
	}

	b.WriteString("| # | Name | Height | Mass | Birth Year |\n")
	b.WriteString("|---|------|--------|------|------------|\n")
	for i, rec := range records {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n",
			i+1,
			escapeMarkdownCell(rec.Name),
			escapeMarkdownCell(rec.Height),
			escapeMarkdownCell(rec.Mass),
			escapeMarkdownCell(rec.BirthYear))
	}

	return []byte(b.String()), nil
}

func (f *markdownFormatter) FormatDetail(record people.Record) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", escapeMarkdownCell(record.Name))
	b.WriteString("| Field | Value |\n")
	b.WriteString("|-------|-------|\n")
	for _, field := range record.Fields() {
		fmt.Fprintf(&b, "| %s | %s |\n", field.Label, escapeMarkdownCell(field.Display()))
	}

	return []byte(b.String()), nil
}

// escapeMarkdownCell keeps a value inside one table cell
func escapeMarkdownCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
