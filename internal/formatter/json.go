package formatter

import (
	"encoding/json"

	"github.com/yildizm/swdex/internal/people"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

// ListOutput is the JSON document for a list
type ListOutput struct {
	Count  int             `json:"count"`
	People []people.Record `json:"people"`
}

// DetailOutput is the JSON document for one record. Fields carries the
// rendered rows with units so consumers need not know them.
type DetailOutput struct {
	people.Record
	Fields []FieldOutput `json:"fields"`
}

// FieldOutput is one labelled detail row
type FieldOutput struct {
	Label   string `json:"label"`
	Value   string `json:"value"`
	Unit    string `json:"unit,omitempty"`
	Display string `json:"display"`
}

func (f *jsonFormatter) FormatList(records []people.Record) ([]byte, error) {
	if records == nil {
		records = []people.Record{}
	}
	output := &ListOutput{
		Count:  len(records),
		People: records,
	}
	return json.MarshalIndent(output, "", "  ")
}

func (f *jsonFormatter) FormatDetail(record people.Record) ([]byte, error) {
	output := &DetailOutput{Record: record}
	for _, field := range record.Fields() {
		output.Fields = append(output.Fields, FieldOutput{
			Label:   field.Label,
			Value:   field.Value,
			Unit:    field.Unit,
			Display: field.Display(),
		})
	}
	return json.MarshalIndent(output, "", "  ")
}
