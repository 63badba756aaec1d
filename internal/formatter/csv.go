package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/yildizm/swdex/internal/people"
)

// csvFormatter formats records as CSV, one row per record
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

var csvHeaders = []string{"Name", "Height", "Mass", "Birth Year"}

func (f *csvFormatter) FormatList(records []people.Record) ([]byte, error) {
	return writeCSV(records)
}

func (f *csvFormatter) FormatDetail(record people.Record) ([]byte, error) {
	return writeCSV([]people.Record{record})
}

func writeCSV(records []people.Record) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	if err := writer.Write(csvHeaders); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, rec := range records {
		row := []string{rec.Name, rec.Height, rec.Mass, rec.BirthYear}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return b.Bytes(), nil
}
