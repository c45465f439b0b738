package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Format identifies an export rendering.
type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

// ParseFormat normalises a query value; an empty value selects CSV.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatPDF:
		return FormatPDF, nil
	}
	return "", fmt.Errorf("unsupported export format %q", raw)
}

// ContentType returns the MIME type of the rendering.
func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "text/csv; charset=utf-8"
}

// Dataset defines tabular export content.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}

// FromRecords flattens a slice of JSON-serialisable rows into a dataset keyed by
// headers. Null values become empty cells.
func FromRecords(headers []string, records interface{}) (Dataset, error) {
	raw, err := json.Marshal(records)
	if err != nil {
		return Dataset{}, fmt.Errorf("encode records: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var items []map[string]interface{}
	if err := decoder.Decode(&items); err != nil {
		return Dataset{}, fmt.Errorf("decode records: %w", err)
	}

	rows := make([]map[string]string, 0, len(items))
	for _, item := range items {
		row := make(map[string]string, len(headers))
		for _, header := range headers {
			row[header] = cell(item[header])
		}
		rows = append(rows, row)
	}
	return Dataset{Headers: headers, Rows: rows}, nil
}

func cell(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
