package schedule

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/bemnascer/bemnascer-backend/internal/ownership"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrSlotTaken        = errors.New("there is already a schedule at this date and time")
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidTime      = errors.New("time must be in HH:MM format")
	ErrInvalidName      = errors.New("name must have between 3 and 100 characters")
)

var timePattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

type ScheduleService struct {
	db *gorm.DB
}

func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{db: db}
}

func parseDay(s string) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return day, nil
}

func validName(name string) bool {
	return len(name) >= 3 && len(name) <= 100
}

func (s *ScheduleService) Create(userID uuid.UUID, req CreateScheduleRequest) (*Schedule, error) {
	name := strings.Join(strings.Fields(req.Name), " ")
	if !validName(name) {
		return nil, ErrInvalidName
	}
	if !timePattern.MatchString(req.Time) {
		return nil, ErrInvalidTime
	}
	day, err := parseDay(req.Date)
	if err != nil {
		return nil, err
	}

	client, err := ownership.ResolveClient(s.db, userID)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&Schedule{}).
		Scopes(ownership.ForClient(client.ID)).
		Where("date = ? AND time = ?", day, req.Time).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlotTaken
	}

	entry := Schedule{
		ID:          uuid.New(),
		ClientID:    client.ID,
		Date:        day,
		Time:        req.Time,
		Name:        name,
		Description: req.Description,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetDay returns the client's appointments for one day, earliest first.
func (s *ScheduleService) GetDay(userID uuid.UUID, dayStr string) ([]Schedule, error) {
	day, err := parseDay(dayStr)
	if err != nil {
		return nil, err
	}

	client, err := ownership.ResolveClient(s.db, userID)
	if err != nil {
		return nil, err
	}

	var entries []Schedule
	err = s.db.Scopes(ownership.ForClient(client.ID)).
		Where("date >= ? AND date < ?", day, day.AddDate(0, 0, 1)).
		Order("time ASC").
		Find(&entries).Error
	return entries, err
}

func (s *ScheduleService) getOwned(userID, scheduleID uuid.UUID) (*Schedule, error) {
	client, err := ownership.ResolveClient(s.db, userID)
	if err != nil {
		return nil, err
	}

	var entry Schedule
	if err := s.db.Scopes(ownership.ForClient(client.ID)).First(&entry, "id = ?", scheduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (s *ScheduleService) Update(userID, scheduleID uuid.UUID, req UpdateScheduleRequest) (*Schedule, error) {
	entry, err := s.getOwned(userID, scheduleID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		day, err := parseDay(*req.Date)
		if err != nil {
			return nil, err
		}
		entry.Date = day
	}
	if req.Time != nil {
		if !timePattern.MatchString(*req.Time) {
			return nil, ErrInvalidTime
		}
		entry.Time = *req.Time
	}
	if req.Name != nil {
		name := strings.Join(strings.Fields(*req.Name), " ")
		if !validName(name) {
			return nil, ErrInvalidName
		}
		entry.Name = name
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}

	// Slot probe excludes the entry being updated.
	var count int64
	if err := s.db.Model(&Schedule{}).
		Scopes(ownership.ForClient(entry.ClientID)).
		Where("date = ? AND time = ? AND id <> ?", entry.Date, entry.Time, entry.ID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlotTaken
	}

	if err := s.db.Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *ScheduleService) Delete(userID, scheduleID uuid.UUID) error {
	entry, err := s.getOwned(userID, scheduleID)
	if err != nil {
		return err
	}
	return s.db.Delete(entry).Error
}
