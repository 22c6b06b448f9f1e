package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Pickup lifecycle. Clients create requests; status moves forward on the
// collector side only.
const (
	PickupRequested  = "requested"
	PickupAssigned   = "assigned"
	PickupInProgress = "in_progress"
	PickupCompleted  = "completed"
	PickupCancelled  = "cancelled"
)

// Waste categories accepted by the platform.
var WasteTypes = []string{"plastic", "glass", "paper", "metal", "organic", "e-waste"}

// WasteItem is one line of a pickup request. Either a sack count or a
// weight is expected; both fields are optional on the wire.
type WasteItem struct {
	Type     string  `json:"type"`
	Quantity int     `json:"quantity,omitempty"`
	WeightKg float64 `json:"weightKg,omitempty"`
}

// Pickup is a scheduled waste collection. Items is a JSONB array of
// WasteItem records.
type Pickup struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Status      string         `gorm:"size:20;not null;default:'requested'" json:"status"`
	Items       datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"items"`
	ScheduledAt time.Time      `gorm:"not null" json:"scheduled_at"`
	Location    string         `gorm:"not null;size:500" json:"location"`
	Notes       string         `gorm:"size:1000" json:"notes,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
