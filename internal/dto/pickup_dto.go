package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/renoverde/recolhe-plus/internal/models"
)

// CreatePickupRequest mirrors what the SPA submits: camelCase field names.
type CreatePickupRequest struct {
	Items       []models.WasteItem `json:"items"`
	ScheduledAt time.Time          `json:"scheduledAt"`
	Location    string             `json:"location"`
	Notes       string             `json:"notes,omitempty"`
}

// PickupResponse keeps the storage snake_case naming on the wire; clients
// map it to their own camelCase records.
type PickupResponse struct {
	ID          uuid.UUID          `json:"id"`
	UserID      uuid.UUID          `json:"user_id"`
	Status      string             `json:"status"`
	Items       []models.WasteItem `json:"items"`
	ScheduledAt string             `json:"scheduled_at"`
	Location    string             `json:"location"`
	Notes       string             `json:"notes,omitempty"`
	CreatedAt   string             `json:"created_at"`
}

type RedeemRequest struct {
	AmountXOF   int    `json:"amountXOF"`
	Description string `json:"description"`
}

type RedeemResponse struct {
	User        UserResponse        `json:"user"`
	Transaction TransactionResponse `json:"transaction"`
}

type TransactionResponse struct {
	ID          uuid.UUID `json:"id"`
	Amount      int       `json:"amount"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
}

func NewTransactionResponse(t *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Amount:      t.Amount,
		Type:        t.Type,
		Description: t.Description,
		Date:        t.Date.UTC().Format("2006-01-02T15:04:05.000Z"),
	}
}

type AdminStatsResponse struct {
	Users        int64 `json:"users"`
	Pickups      int64 `json:"pickups"`
	Transactions int64 `json:"transactions"`
}
