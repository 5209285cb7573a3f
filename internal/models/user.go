package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role identifies the access level of a user account. The integer values
// are part of the API contract consumed by the mobile app.
type Role int

const (
	RoleClient Role = 1
	RoleMaster Role = 3
)

// User is the credential record behind every account. Clients (role 1) own a
// Client profile; masters (role 3) manage content and other accounts.
type User struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Username           string         `gorm:"not null;size:255;uniqueIndex" json:"username"`
	Email              string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password           string         `gorm:"not null" json:"-"`
	Provider           string         `gorm:"size:50;default:'local'" json:"-"`
	Role               Role           `gorm:"default:1" json:"role"`
	Blocked            bool           `gorm:"default:false" json:"blocked"`
	Confirmed          bool           `gorm:"default:true" json:"-"`
	ResetPasswordToken *string        `gorm:"size:64;index" json:"-"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}
