package client

import (
	"time"
)

// Demo dataset shown to every session except fresh registrations.
const demoTotalRecycled = 485

// MockTransactions returns the fixed demo ledger, newest first.
func MockTransactions(now time.Time) []Transaction {
	return []Transaction{
		{ID: "1", Amount: 50, Type: "earned", Description: "Plastic Recycling (5kg)", Date: isoString(now.AddDate(0, 0, -2))},
		{ID: "2", Amount: 100, Type: "spent", Description: "Market Voucher", Date: isoString(now.AddDate(0, 0, -5))},
		{ID: "3", Amount: 30, Type: "earned", Description: "Glass Recycling (3kg)", Date: isoString(now.AddDate(0, 0, -6))},
	}
}

// MockPickups returns the fixed two-element demo pickup set used
// whenever the backend cannot be reached.
func MockPickups(now time.Time) []PickupRequest {
	return []PickupRequest{
		{
			ID:          "mock-1",
			Status:      StatusAssigned,
			ScheduledAt: isoString(now.AddDate(0, 0, 1)),
			Location:    "Av. Amílcar Cabral, Bissau",
			Items:       []WasteItem{{Type: "plastic", Quantity: 2}, {Type: "paper", Quantity: 1}},
		},
		{
			ID:          "mock-2",
			Status:      StatusCompleted,
			ScheduledAt: isoString(now.AddDate(0, 0, -2)),
			Location:    "Av. Amílcar Cabral, Bissau",
			Items:       []WasteItem{{Type: "glass", Quantity: 3}},
		},
	}
}

// MockChart returns the demo weekly recycling chart.
func MockChart() []ChartPoint {
	return []ChartPoint{
		{Name: "Mon", Plastic: 4, Paper: 2, Glass: 1, Metal: 0, Organic: 1, EWaste: 0},
		{Name: "Tue", Plastic: 3, Paper: 5, Glass: 2, Metal: 1, Organic: 2, EWaste: 0},
		{Name: "Wed", Plastic: 2, Paper: 2, Glass: 1, Metal: 0, Organic: 3, EWaste: 0},
		{Name: "Thu", Plastic: 6, Paper: 3, Glass: 3, Metal: 0, Organic: 2, EWaste: 1},
		{Name: "Fri", Plastic: 5, Paper: 4, Glass: 2, Metal: 1, Organic: 2, EWaste: 0},
		{Name: "Sat", Plastic: 8, Paper: 6, Glass: 4, Metal: 2, Organic: 5, EWaste: 0},
		{Name: "Sun", Plastic: 3, Paper: 2, Glass: 1, Metal: 0, Organic: 2, EWaste: 0},
	}
}

// EmptyChart returns a zeroed weekly chart for fresh accounts.
func EmptyChart() []ChartPoint {
	days := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	out := make([]ChartPoint, len(days))
	for i, d := range days {
		out[i] = ChartPoint{Name: d}
	}
	return out
}

// isoString formats a timestamp the way the web stack does
// (toISOString: UTC with millisecond precision).
func isoString(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
