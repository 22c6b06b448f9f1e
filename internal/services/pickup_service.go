package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/renoverde/recolhe-plus/internal/dto"
	"github.com/renoverde/recolhe-plus/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrNoItems         = errors.New("at least one waste item is required")
	ErrInvalidWaste    = errors.New("unknown waste type")
	ErrLocationMissing = errors.New("location is required")
)

type PickupService struct {
	db *gorm.DB
}

func NewPickupService(db *gorm.DB) *PickupService {
	return &PickupService{db: db}
}

func (s *PickupService) Create(userID uuid.UUID, req *dto.CreatePickupRequest) (*dto.PickupResponse, error) {
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}
	for _, item := range req.Items {
		if !validWasteType(item.Type) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWaste, item.Type)
		}
	}
	if req.Location == "" {
		return nil, ErrLocationMissing
	}

	itemsJSON, err := json.Marshal(req.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode items: %w", err)
	}

	scheduledAt := req.ScheduledAt
	if scheduledAt.IsZero() {
		scheduledAt = time.Now().UTC()
	}

	pickup := models.Pickup{
		ID:          uuid.New(),
		UserID:      userID,
		Status:      models.PickupRequested,
		Items:       datatypes.JSON(itemsJSON),
		ScheduledAt: scheduledAt,
		Location:    req.Location,
		Notes:       req.Notes,
	}

	if err := s.db.Create(&pickup).Error; err != nil {
		return nil, fmt.Errorf("failed to create pickup: %w", err)
	}

	return pickupResponse(&pickup), nil
}

// List returns the caller's pickups newest-first. Collectors see every
// request on the platform.
func (s *PickupService) List(userID uuid.UUID, role string) ([]dto.PickupResponse, error) {
	query := s.db.Order("scheduled_at DESC")
	if role != models.RoleCollector {
		query = query.Where("user_id = ?", userID)
	}

	var pickups []models.Pickup
	if err := query.Find(&pickups).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch pickups: %w", err)
	}

	out := make([]dto.PickupResponse, 0, len(pickups))
	for i := range pickups {
		out = append(out, *pickupResponse(&pickups[i]))
	}
	return out, nil
}

func pickupResponse(p *models.Pickup) *dto.PickupResponse {
	var items []models.WasteItem
	if len(p.Items) > 0 {
		// Rows predating item validation may hold junk; surface an empty
		// list rather than failing the whole response.
		_ = json.Unmarshal(p.Items, &items)
	}
	return &dto.PickupResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		Status:      p.Status,
		Items:       items,
		ScheduledAt: p.ScheduledAt.UTC().Format(isoMillis),
		Location:    p.Location,
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt.UTC().Format(isoMillis),
	}
}

// isoMillis matches JavaScript's toISOString, which the client parses.
const isoMillis = "2006-01-02T15:04:05.000Z"

func validWasteType(t string) bool {
	for _, w := range models.WasteTypes {
		if t == w {
			return true
		}
	}
	return false
}
