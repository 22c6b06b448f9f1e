package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles an account can hold. Collectors see every pickup; admins get the
// stats panel on top of that.
const (
	RoleUser      = "user"
	RoleCollector = "collector"
	RoleAdmin     = "admin"
)

// Languages supported by the product (Guinea-Bissau market).
const (
	LangEnglish    = "en"
	LangFrench     = "fr"
	LangPortuguese = "pt"
)

// User is a registered Recolhe+ account. EcoCoins only move through
// transaction rows, never by direct assignment.
type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name         string         `gorm:"not null;size:255" json:"name"`
	Email        string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Role         string         `gorm:"size:20;default:'user'" json:"role"`
	EcoCoins     int            `gorm:"column:eco_coins;not null;default:0;check:eco_coins >= 0" json:"eco_coins"`
	Language     string         `gorm:"size:5;default:'en'" json:"language"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
