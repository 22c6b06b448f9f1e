// Package client is the Go SDK for the Recolhe+ platform: an API client
// with offline fallback, the session/auth flow, and the application shell
// state machine the product's screens hang off.
package client

import "time"

// Roles and views mirror the product surface.
const (
	RoleUser      = "user"
	RoleCollector = "collector"
	RoleAdmin     = "admin"
)

type View string

const (
	ViewDashboard View = "DASHBOARD"
	ViewPickup    View = "PICKUP"
	ViewHistory   View = "HISTORY"
	ViewAssistant View = "ASSISTANT"
	ViewRewards   View = "REWARDS"
	ViewSmartBin  View = "SMART_BIN"
	ViewMap       View = "MAP"
)

// Views lists every navigable view.
func Views() []View {
	return []View{ViewDashboard, ViewPickup, ViewHistory, ViewAssistant, ViewRewards, ViewSmartBin, ViewMap}
}

// User is the client-side account record (camelCase wire naming).
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	EcoCoins int    `json:"ecoCoins"`
	Language string `json:"language,omitempty"`
}

// WasteItem is one line of a pickup draft. Quantity counts sacks;
// WeightKg is an alternative measure. At least one is expected.
type WasteItem struct {
	Type     string  `json:"type"`
	Quantity int     `json:"quantity,omitempty"`
	WeightKg float64 `json:"weightKg,omitempty"`
}

// Pickup statuses; the client only ever creates `requested` records.
const (
	StatusRequested  = "requested"
	StatusAssigned   = "assigned"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// PickupRequest is a scheduled collection as the client sees it.
// ScheduledAt is an ISO-8601 timestamp string.
type PickupRequest struct {
	ID          string      `json:"id"`
	Status      string      `json:"status"`
	ScheduledAt string      `json:"scheduledAt"`
	Items       []WasteItem `json:"items"`
	Location    string      `json:"location"`
	Notes       string      `json:"notes,omitempty"`
}

// Transaction is one EcoCoin ledger entry, newest kept first.
type Transaction struct {
	ID          string `json:"id"`
	Amount      int    `json:"amount"`
	Type        string `json:"type"` // "earned" or "spent"
	Description string `json:"description"`
	Date        string `json:"date"`
}

// ChatMessage is one entry of the assistant transcript. Provisional
// marks the placeholder shown while a reply is awaited.
type ChatMessage struct {
	ID          string    `json:"id"`
	Role        string    `json:"role"` // "user" or "model"
	Text        string    `json:"text"`
	Timestamp   time.Time `json:"timestamp"`
	Provisional bool      `json:"-"`
}

// ChartPoint is one day of the dashboard's weekly recycling chart.
type ChartPoint struct {
	Name    string `json:"name"`
	Plastic int    `json:"plastic"`
	Paper   int    `json:"paper"`
	Glass   int    `json:"glass"`
	Metal   int    `json:"metal"`
	Organic int    `json:"organic"`
	EWaste  int    `json:"e-waste"`
}
