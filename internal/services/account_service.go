package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bemnascer/bemnascer-backend/internal/apps/birthplan"
	"github.com/bemnascer/bemnascer-backend/internal/apps/checklist"
	"github.com/bemnascer/bemnascer-backend/internal/apps/schedule"
	"github.com/bemnascer/bemnascer-backend/internal/dto"
	"github.com/bemnascer/bemnascer-backend/internal/models"
	"github.com/bemnascer/bemnascer-backend/internal/ownership"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const gestationDays = 280

var (
	ErrEmailTaken   = errors.New("email is already taken")
	ErrNotDeletable = errors.New("account cannot be deleted")
	ErrInvalidInput = errors.New("invalid registration data")
)

type AccountService struct {
	db    *gorm.DB
	email *EmailService
}

func NewAccountService(db *gorm.DB, email *EmailService) *AccountService {
	return &AccountService{db: db, email: email}
}

// RegisterClient creates the user and its pregnancy profile in one
// transaction, stamping term acceptance at signup time.
func (s *AccountService) RegisterClient(req *dto.RegisterClientRequest) (*models.Client, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if name == "" || email == "" || len(req.Password) < 6 {
		return nil, ErrInvalidInput
	}

	dpd, err := time.ParseInLocation("2006-01-02", req.ProbableDateOfDelivery, time.UTC)
	if err != nil {
		return nil, ErrInvalidInput
	}
	if req.BabyGender != "" && req.BabyGender != models.BabyGenderMale && req.BabyGender != models.BabyGenderFemale {
		return nil, ErrInvalidInput
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("email lookup failed: %w", err)
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := models.User{
		ID:        uuid.New(),
		Username:  email,
		Email:     email,
		Password:  string(hash),
		Provider:  "local",
		Role:      models.RoleClient,
		Confirmed: true,
	}
	client := models.Client{
		ID:                        uuid.New(),
		Name:                      name,
		ProbableDateOfDelivery:    dpd,
		BabyGender:                req.BabyGender,
		FatherName:                req.FatherName,
		BabyName:                  req.BabyName,
		AcceptTerm:                true,
		AcceptTermDate:            now,
		AcceptPrivacyPolicies:     true,
		AcceptPrivacyPoliciesDate: now,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		client.UserID = user.ID
		return tx.Create(&client).Error
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	if s.email != nil {
		if err := s.email.SendWelcomeEmail(user.Email, client.Name); err != nil {
			slog.Error("welcome email failed", "error", err, "user_id", user.ID.String())
		}
	}

	return &client, nil
}

func (s *AccountService) GetMyData(userID uuid.UUID) (*models.Client, error) {
	return ownership.ResolveClient(s.db, userID)
}

func (s *AccountService) UpdateClient(userID uuid.UUID, req *dto.UpdateClientRequest) (*models.Client, error) {
	client, err := ownership.ResolveClient(s.db, userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrInvalidInput
		}
		updates["name"] = name
	}
	if req.ProbableDateOfDelivery != nil {
		dpd, err := time.ParseInLocation("2006-01-02", *req.ProbableDateOfDelivery, time.UTC)
		if err != nil {
			return nil, ErrInvalidInput
		}
		updates["probable_date_of_delivery"] = dpd
	}
	if req.BabyGender != nil {
		if *req.BabyGender != "" && *req.BabyGender != models.BabyGenderMale && *req.BabyGender != models.BabyGenderFemale {
			return nil, ErrInvalidInput
		}
		updates["baby_gender"] = *req.BabyGender
	}
	if req.FatherName != nil {
		updates["father_name"] = *req.FatherName
	}
	if req.BabyName != nil {
		updates["baby_name"] = *req.BabyName
	}

	if len(updates) > 0 {
		if err := s.db.Model(client).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("profile update failed: %w", err)
		}
	}
	return client, nil
}

// GetHome computes where the pregnancy stands today. Gestation is counted
// from the conception date, 280 days before the probable date of delivery.
func (s *AccountService) GetHome(userID uuid.UUID, now time.Time) (*dto.HomeResponse, error) {
	client, err := ownership.ResolveClient(s.db, userID)
	if err != nil {
		return nil, err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dpd := client.ProbableDateOfDelivery
	conception := dpd.AddDate(0, 0, -gestationDays)

	totalDays := int(today.Sub(conception).Hours() / 24)
	if totalDays < 0 {
		totalDays = 0
	}
	if totalDays > gestationDays {
		totalDays = gestationDays
	}

	weeks := totalDays / 7
	days := totalDays % 7

	trimester := 3
	switch {
	case weeks <= 13:
		trimester = 1
	case weeks <= 27:
		trimester = 2
	}

	percent := totalDays * 100 / gestationDays
	remaining := gestationDays - totalDays

	var todays []schedule.Schedule
	err = s.db.Scopes(ownership.ForClient(client.ID)).
		Where("date >= ? AND date < ?", today, today.AddDate(0, 0, 1)).
		Order("time ASC").
		Find(&todays).Error
	if err != nil {
		return nil, fmt.Errorf("schedule lookup failed: %w", err)
	}

	items := make([]dto.HomeScheduleItem, 0, len(todays))
	for _, item := range todays {
		items = append(items, dto.HomeScheduleItem{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Date:        item.Date,
			Time:        item.Time,
		})
	}

	return &dto.HomeResponse{
		Client:          *client,
		GestationWeeks:  weeks,
		GestationDays:   days,
		Trimester:       trimester,
		PercentComplete: percent,
		DaysRemaining:   remaining,
		TodaySchedules:  items,
	}, nil
}

// CreateMaster provisions an administrator account. Masters have no
// pregnancy profile.
func (s *AccountService) CreateMaster(req *dto.CreateMasterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || len(req.Password) < 6 {
		return nil, ErrInvalidInput
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("email lookup failed: %w", err)
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:        uuid.New(),
		Username:  email,
		Email:     email,
		Password:  string(hash),
		Provider:  "local",
		Role:      models.RoleMaster,
		Confirmed: true,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create master: %w", err)
	}
	return &user, nil
}

func (s *AccountService) ListMasters() ([]dto.ClientListItem, error) {
	var users []models.User
	if err := s.db.Where("role = ?", models.RoleMaster).Order("email ASC").Find(&users).Error; err != nil {
		return nil, err
	}

	items := make([]dto.ClientListItem, 0, len(users))
	for _, u := range users {
		items = append(items, dto.ClientListItem{
			UserID:  u.ID,
			Email:   u.Email,
			Blocked: u.Blocked,
			Role:    u.Role,
		})
	}
	return items, nil
}

// DeleteMaster removes an administrator account. The target must actually
// be a master; client accounts go through the cascade path instead.
func (s *AccountService) DeleteMaster(targetID uuid.UUID) error {
	var user models.User
	if err := s.db.First(&user, "id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ownership.ErrAccountNotFound
		}
		return fmt.Errorf("user lookup failed: %w", err)
	}
	if user.Role != models.RoleMaster {
		return ErrNotDeletable
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&user).Error
	})
}

func (s *AccountService) ListClients() ([]dto.ClientListItem, error) {
	var clients []models.Client
	if err := s.db.Preload("User").Order("name ASC").Find(&clients).Error; err != nil {
		return nil, err
	}

	items := make([]dto.ClientListItem, 0, len(clients))
	for _, c := range clients {
		items = append(items, dto.ClientListItem{
			ID:      c.ID,
			UserID:  c.UserID,
			Name:    c.Name,
			Email:   c.User.Email,
			Blocked: c.User.Blocked,
			Role:    c.User.Role,
		})
	}
	return items, nil
}

// SetBlocked flips a user's blocked flag. Blocking also revokes refresh
// tokens so live sessions end at the next refresh.
func (s *AccountService) SetBlocked(targetID uuid.UUID, blocked bool) error {
	var user models.User
	if err := s.db.First(&user, "id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ownership.ErrAccountNotFound
		}
		return fmt.Errorf("user lookup failed: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).Update("blocked", blocked).Error; err != nil {
			return err
		}
		if blocked {
			return tx.Where("user_id = ?", user.ID).Delete(&models.RefreshToken{}).Error
		}
		return nil
	})
}

// DeleteSelf removes the caller's own account and everything under it.
func (s *AccountService) DeleteSelf(userID uuid.UUID) error {
	return s.deleteChain(userID)
}

// DeleteByMaster removes a client account on behalf of an administrator.
// Only role-1 accounts with a pregnancy profile qualify.
func (s *AccountService) DeleteByMaster(targetID uuid.UUID) error {
	var user models.User
	if err := s.db.First(&user, "id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ownership.ErrAccountNotFound
		}
		return fmt.Errorf("user lookup failed: %w", err)
	}
	if user.Role != models.RoleClient {
		return ErrNotDeletable
	}
	var count int64
	if err := s.db.Model(&models.Client{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		return fmt.Errorf("client lookup failed: %w", err)
	}
	if count == 0 {
		return ErrNotDeletable
	}

	return s.deleteChain(targetID)
}

// deleteChain removes a user and every record hanging off its client
// profile, leaf first, inside one transaction. Topics go before their
// lists, all children before the client, the client before the user.
// A second call for the same ID finds nothing and reports not found.
func (s *AccountService) deleteChain(userID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ownership.ErrAccountNotFound
			}
			return fmt.Errorf("user lookup failed: %w", err)
		}

		var client models.Client
		hasClient := true
		if err := tx.First(&client, "user_id = ?", user.ID).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("client lookup failed: %w", err)
			}
			hasClient = false
		}

		if hasClient {
			var lists []checklist.List
			if err := tx.Where("client_id = ?", client.ID).Find(&lists).Error; err != nil {
				return fmt.Errorf("list lookup failed: %w", err)
			}
			for _, list := range lists {
				if err := tx.Where("list_id = ?", list.ID).Delete(&checklist.Topic{}).Error; err != nil {
					return fmt.Errorf("topic delete failed: %w", err)
				}
				if err := tx.Delete(&checklist.List{}, "id = ?", list.ID).Error; err != nil {
					return fmt.Errorf("list delete failed: %w", err)
				}
			}

			if err := tx.Where("client_id = ?", client.ID).Delete(&schedule.Schedule{}).Error; err != nil {
				return fmt.Errorf("schedule delete failed: %w", err)
			}
			if err := tx.Where("client_id = ?", client.ID).Delete(&birthplan.Selection{}).Error; err != nil {
				return fmt.Errorf("birth plan selection delete failed: %w", err)
			}
			if err := tx.Delete(&client).Error; err != nil {
				return fmt.Errorf("client delete failed: %w", err)
			}
		}

		if err := tx.Where("user_id = ?", user.ID).Delete(&models.RefreshToken{}).Error; err != nil {
			return fmt.Errorf("refresh token delete failed: %w", err)
		}
		if err := tx.Unscoped().Delete(&user).Error; err != nil {
			return fmt.Errorf("user delete failed: %w", err)
		}
		return nil
	})
}
