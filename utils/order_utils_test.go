package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/TrungLe-99/ShopViet/models"
	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderNumberFormat(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 4, 5, 0, time.UTC)
	number := GenerateOrderNumber(now)

	assert.Regexp(t, regexp.MustCompile(`^ORD-20260829150405-[0-9A-F]{8}$`), number)
}

func TestGenerateOrderNumberUnique(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		number := GenerateOrderNumber(now)
		assert.False(t, seen[number], "duplicate order number %s", number)
		seen[number] = true
	}
}

func TestBankTransferReference(t *testing.T) {
	assert.Equal(t, "DHORD-20260829150405-ABCDEF12", BankTransferReference("ORD-20260829150405-ABCDEF12"))
}

func TestFormatAddressSnapshot(t *testing.T) {
	address := &models.Address{
		FullName:   "Nguyen Van A",
		Phone:      "0901234567",
		Line1:      "12 Ly Thuong Kiet",
		City:       "Ha Noi",
		Country:    "Vietnam",
		PostalCode: "100000",
	}

	snapshot := FormatAddressSnapshot(address)
	assert.Equal(t, "Nguyen Van A, 0901234567, 12 Ly Thuong Kiet, Ha Noi, Vietnam, 100000", snapshot)
}

func TestFormatAddressSnapshotSkipsEmptyParts(t *testing.T) {
	address := &models.Address{
		FullName: "Nguyen Van B",
		Phone:    "0907654321",
		Line1:    "5 Tran Phu",
		Line2:    "  ",
		City:     "Da Nang",
		Country:  "Vietnam",
	}

	snapshot := FormatAddressSnapshot(address)
	assert.NotContains(t, snapshot, ", ,")
	assert.Equal(t, "Nguyen Van B, 0907654321, 5 Tran Phu, Da Nang, Vietnam", snapshot)
}
