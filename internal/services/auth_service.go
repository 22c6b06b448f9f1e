package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/renoverde/recolhe-plus/internal/config"
	"github.com/renoverde/recolhe-plus/internal/dto"
	"github.com/renoverde/recolhe-plus/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrValidation         = errors.New("please provide all fields")
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := NormalizeEmail(req.Email)
	if req.Name == "" || email == "" || req.Password == "" {
		return nil, ErrValidation
	}

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         normalizeRole(req.Role),
		EcoCoins:     0,
		Language:     normalizeLanguage(req.Language),
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.respond(&user)
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, ErrValidation
	}

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.respond(&user)
}

func (s *AuthService) respond(user *models.User) (*dto.AuthResponse, error) {
	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		User:  dto.NewUserResponse(user),
		Token: token,
	}, nil
}

func (s *AuthService) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"role":  user.Role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// NormalizeEmail trims and lower-cases an email before any comparison or
// storage; both clients and the server apply the same rule.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizeRole(role string) string {
	switch role {
	case models.RoleCollector, models.RoleAdmin:
		return role
	default:
		return models.RoleUser
	}
}

func normalizeLanguage(lang string) string {
	switch lang {
	case models.LangFrench, models.LangPortuguese:
		return lang
	default:
		return models.LangEnglish
	}
}
