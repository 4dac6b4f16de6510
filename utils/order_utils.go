package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/TrungLe-99/ShopViet/models"
	"github.com/google/uuid"
)

// GenerateOrderNumber creates a server-side order number. The timestamp
// keeps numbers monotonically distinguishable, the uuid fragment keeps them
// unique under concurrent checkouts.
func GenerateOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:8]
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102150405"), suffix)
}

// BankTransferReference builds the reference customers must quote when
// paying by bank transfer
func BankTransferReference(orderNumber string) string {
	return "DH" + orderNumber
}

// FormatAddressSnapshot flattens an address into the single-line form frozen
// onto orders
func FormatAddressSnapshot(a *models.Address) string {
	parts := []string{a.FullName, a.Phone, a.Line1}
	if a.Line2 != "" {
		parts = append(parts, a.Line2)
	}
	parts = append(parts, a.City)
	if a.State != "" {
		parts = append(parts, a.State)
	}
	parts = append(parts, a.Country, a.PostalCode)

	var out []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, strings.TrimSpace(p))
		}
	}
	return strings.Join(out, ", ")
}
