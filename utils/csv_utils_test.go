package utils

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportFilename(t *testing.T) {
	at := time.Date(2026, 8, 29, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "payments-export-2026-08-29-1530.csv", ExportFilename("payments", at))
	assert.Equal(t, "customers-export-2026-08-29-1530.csv", ExportFilename("customers", at))
}

func TestBuildCSVStartsWithBOM(t *testing.T) {
	data, err := BuildCSV([]string{"ID", "Amount"}, [][]string{{"1", "150000.00"}})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))
}

func TestBuildCSVHeaderOrderPreserved(t *testing.T) {
	headers := []string{"Payment ID", "Order Number", "Method", "Amount"}
	data, err := BuildCSV(headers, [][]string{
		{"1", "ORD-20260829150405-ABCDEF12", "vnpay", "150000.00"},
		{"2", "ORD-20260829150406-12345678", "cod", "90000.00"},
	})
	require.NoError(t, err)

	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})))
	records, err := reader.ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, headers, records[0])
	assert.Equal(t, "vnpay", records[1][2])
}

func TestBuildCSVQuotesFieldsWithCommas(t *testing.T) {
	data, err := BuildCSV([]string{"Address"}, [][]string{{"12 Ly Thuong Kiet, Ha Noi, Vietnam"}})
	require.NoError(t, err)

	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})))
	records, err := reader.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "12 Ly Thuong Kiet, Ha Noi, Vietnam", records[1][0])
}
