package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	TransactionEarned = "earned"
	TransactionSpent  = "spent"
)

// Transaction is one EcoCoin ledger entry. Append-only; redemptions write
// a `spent` row in the same database transaction that debits the balance.
type Transaction struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount      int       `gorm:"not null;check:amount > 0" json:"amount"`
	Type        string    `gorm:"size:10;not null" json:"type"`
	Description string    `gorm:"size:500" json:"description"`
	Date        time.Time `gorm:"not null" json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}
