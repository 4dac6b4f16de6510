package utils

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// ExportFilename builds a timestamped export filename such as
// payments-export-2026-08-29-1530.csv
func ExportFilename(prefix string, t time.Time) string {
	return fmt.Sprintf("%s-export-%s.csv", prefix, t.Format("2006-01-02-1504"))
}

// BuildCSV renders rows as UTF-8 CSV prefixed with a BOM so spreadsheet
// tools pick up the encoding. Header order is fixed by the caller.
func BuildCSV(headers []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF})

	w := csv.NewWriter(&buf)
	if err := w.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %v", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %v", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SendCSV streams a CSV download with the standard headers
func SendCSV(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(200, "text/csv; charset=utf-8", data)
}
