package term

import (
	"errors"
	"strings"
	"time"

	"github.com/bemnascer/bemnascer-backend/internal/models"
	"github.com/bemnascer/bemnascer-backend/internal/ownership"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTermNotFound       = errors.New("term not found")
	ErrInvalidDescription = errors.New("description cannot be empty")
)

type TermService struct {
	db *gorm.DB
}

func NewTermService(db *gorm.DB) *TermService {
	return &TermService{db: db}
}

func nameForType(termType string) string {
	if termType == TypePrivacy {
		return NamePrivacyPolicy
	}
	return NameUseTerm
}

func (s *TermService) Get(termType string) (*Term, error) {
	var t Term
	if err := s.db.First(&t, "name = ?", nameForType(termType)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTermNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Accept marks the term of the given type as accepted on the caller's
// profile, stamping the acceptance time.
func (s *TermService) Accept(userID uuid.UUID, termType string) error {
	client, err := ownership.ResolveClient(s.db, userID)
	if err != nil {
		return err
	}

	if _, err := s.Get(termType); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if nameForType(termType) == NamePrivacyPolicy {
		updates["accept_privacy_policies"] = true
		updates["accept_privacy_policies_date"] = time.Now().UTC()
	} else {
		updates["accept_term"] = true
		updates["accept_term_date"] = time.Now().UTC()
	}

	return s.db.Model(&models.Client{}).Where("id = ?", client.ID).Updates(updates).Error
}

// Update replaces a term's description and clears the matching acceptance
// flag on every client, forcing re-acceptance on next login.
func (s *TermService) Update(termType string, req UpdateTermRequest) error {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return ErrInvalidDescription
	}

	t, err := s.Get(termType)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(t).Update("description", description).Error; err != nil {
			return err
		}

		flag := "accept_term"
		if t.Name == NamePrivacyPolicy {
			flag = "accept_privacy_policies"
		}
		return tx.Model(&models.Client{}).
			Where(flag+" = ?", true).
			Update(flag, false).Error
	})
}

// Seed creates the two terms if they are missing. Runs at startup.
func (s *TermService) Seed() error {
	for _, name := range []string{NameUseTerm, NamePrivacyPolicy} {
		var count int64
		if err := s.db.Model(&Term{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			t := Term{ID: uuid.New(), Name: name}
			if err := s.db.Create(&t).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
