package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/renoverde/recolhe-plus/internal/dto"
	"github.com/renoverde/recolhe-plus/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ExchangeRate is the fixed conversion: 1 EcoCoin = 10 XOF.
const ExchangeRate = 10

var (
	ErrInsufficientBalance = errors.New("insufficient EcoCoin balance")
	ErrInvalidAmount       = errors.New("amount must be positive")
)

type RewardService struct {
	db *gorm.DB
}

func NewRewardService(db *gorm.DB) *RewardService {
	return &RewardService{db: db}
}

// CostInCoins converts an XOF amount to EcoCoins, rounding up.
func CostInCoins(amountXOF int) int {
	return (amountXOF + ExchangeRate - 1) / ExchangeRate
}

// Redeem debits the coin cost and appends a `spent` ledger row in one
// database transaction. The balance check runs against the row locked
// inside the transaction, so rapid repeat calls cannot drive the balance
// negative.
func (s *RewardService) Redeem(userID uuid.UUID, req *dto.RedeemRequest) (*dto.RedeemResponse, error) {
	if req.AmountXOF <= 0 {
		return nil, ErrInvalidAmount
	}
	cost := CostInCoins(req.AmountXOF)

	var user models.User
	var txn models.Transaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&user, "id = ?", userID).Error; err != nil {
			return fmt.Errorf("user not found: %w", err)
		}
		if user.EcoCoins < cost {
			return ErrInsufficientBalance
		}

		user.EcoCoins -= cost
		if err := tx.Model(&user).Update("eco_coins", user.EcoCoins).Error; err != nil {
			return err
		}

		txn = models.Transaction{
			ID:          uuid.New(),
			UserID:      userID,
			Amount:      cost,
			Type:        models.TransactionSpent,
			Description: req.Description,
			Date:        time.Now().UTC(),
		}
		return tx.Create(&txn).Error
	})
	if err != nil {
		return nil, err
	}

	return &dto.RedeemResponse{
		User:        dto.NewUserResponse(&user),
		Transaction: dto.NewTransactionResponse(&txn),
	}, nil
}

// lockForUpdate adds SELECT ... FOR UPDATE so the balance read and the
// debit serialize across concurrent redeems.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// Transactions lists the caller's ledger newest-first.
func (s *RewardService) Transactions(userID uuid.UUID) ([]dto.TransactionResponse, error) {
	var rows []models.Transaction
	if err := s.db.Where("user_id = ?", userID).Order("date DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	out := make([]dto.TransactionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewTransactionResponse(&rows[i]))
	}
	return out, nil
}
