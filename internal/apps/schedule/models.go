package schedule

import (
	"time"

	"github.com/bemnascer/bemnascer-backend/internal/models"
	"github.com/google/uuid"
)

// Schedule is an appointment on a client's calendar. Date holds the day at
// UTC midnight; Time is the HH:MM slot. A client cannot book the same slot
// twice.
type Schedule struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	ClientID    uuid.UUID     `gorm:"type:uuid;not null;index;uniqueIndex:idx_schedules_slot" json:"client_id"`
	Date        time.Time     `gorm:"not null;uniqueIndex:idx_schedules_slot" json:"date"`
	Time        string        `gorm:"not null;size:5;uniqueIndex:idx_schedules_slot" json:"time"`
	Name        string        `gorm:"not null;size:100" json:"name"`
	Description string        `gorm:"type:text" json:"description"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	Client      models.Client `gorm:"foreignKey:ClientID" json:"-"`
}

// --- DTOs ---

type CreateScheduleRequest struct {
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"` // HH:MM
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateScheduleRequest struct {
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
