package domain

import "fmt"

// OrderNumberPrefix returns the per-year prefix for order numbers,
// e.g. "ORD-2026-"
func OrderNumberPrefix(year int) string {
	return fmt.Sprintf("ORD-%d-", year)
}

// FormatOrderNumber formats a human-readable order number,
// e.g. "ORD-2026-0042". The sequence restarts each year because the
// prefix changes.
func FormatOrderNumber(year, seq int) string {
	return fmt.Sprintf("%s%04d", OrderNumberPrefix(year), seq)
}
