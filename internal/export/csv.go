package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// RenderCSV writes one row per slot with the 7 fixed columns.
// Roles not staffed on a slot's weekday are left empty.
func RenderCSV(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(tableHeaders()); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range doc.Rows {
		if err := w.Write(tableCells(r, "")); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
