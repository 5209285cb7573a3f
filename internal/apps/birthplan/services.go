package birthplan

import (
	"errors"

	"github.com/bemnascer/bemnascer-backend/internal/ownership"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrPlanNotFound = errors.New("childbirth plan not found")

type BirthPlanService struct {
	db *gorm.DB
}

func NewBirthPlanService(db *gorm.DB) *BirthPlanService {
	return &BirthPlanService{db: db}
}

// List returns the whole catalog with a per-entry flag telling whether the
// calling client has selected it.
func (s *BirthPlanService) List(userID uuid.UUID) ([]PlanItem, error) {
	client, err := ownership.ResolveClient(s.db, userID)
	if err != nil {
		return nil, err
	}

	var plans []BirthPlan
	if err := s.db.Order("type ASC, name ASC").Find(&plans).Error; err != nil {
		return nil, err
	}

	var selections []Selection
	if err := s.db.Scopes(ownership.ForClient(client.ID)).Find(&selections).Error; err != nil {
		return nil, err
	}
	selected := make(map[uuid.UUID]bool, len(selections))
	for _, sel := range selections {
		selected[sel.PlanID] = true
	}

	items := make([]PlanItem, 0, len(plans))
	for _, p := range plans {
		items = append(items, PlanItem{
			ID:           p.ID,
			Name:         p.Name,
			Type:         p.Type,
			ClientSelect: selected[p.ID],
		})
	}
	return items, nil
}

// UpdateSelection replaces the client's plan selection with the given set,
// atomically.
func (s *BirthPlanService) UpdateSelection(userID uuid.UUID, req UpdateSelectionRequest) error {
	client, err := ownership.ResolveClient(s.db, userID)
	if err != nil {
		return err
	}

	// Reject unknown plan IDs before touching anything.
	if len(req.PlanIDs) > 0 {
		var count int64
		if err := s.db.Model(&BirthPlan{}).Where("id IN ?", req.PlanIDs).Count(&count).Error; err != nil {
			return err
		}
		if count != int64(len(req.PlanIDs)) {
			return ErrPlanNotFound
		}
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", client.ID).Delete(&Selection{}).Error; err != nil {
			return err
		}
		for _, planID := range req.PlanIDs {
			sel := Selection{ClientID: client.ID, PlanID: planID}
			if err := tx.Create(&sel).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Seed inserts catalog entries, skipping (name, type) pairs that already
// exist.
func (s *BirthPlanService) Seed(req SeedPlansRequest) (int, error) {
	created := 0
	for _, item := range req.Plans {
		if item.Name == "" {
			continue
		}
		var count int64
		if err := s.db.Model(&BirthPlan{}).
			Where("name = ? AND type = ?", item.Name, item.Type).
			Count(&count).Error; err != nil {
			return created, err
		}
		if count > 0 {
			continue
		}
		p := BirthPlan{ID: uuid.New(), Name: item.Name, Type: item.Type}
		if err := s.db.Create(&p).Error; err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
