package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	BabyGenderMale   = "male"
	BabyGenderFemale = "female"
)

// Client is the pregnancy profile attached one-to-one to a role-1 user.
// Checklists, schedules and birth-plan selections hang off this record and
// are removed together with it when the account is deleted.
type Client struct {
	ID                        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID                    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Name                      string    `gorm:"not null;size:100" json:"name"`
	ProbableDateOfDelivery    time.Time `gorm:"not null" json:"probable_date_of_delivery"`
	BabyGender                string    `gorm:"size:10" json:"baby_gender"`
	FatherName                string    `gorm:"size:100" json:"father_name"`
	BabyName                  string    `gorm:"size:100" json:"baby_name"`
	AcceptTerm                bool      `gorm:"default:false" json:"accept_term"`
	AcceptTermDate            time.Time `json:"accept_term_date"`
	AcceptPrivacyPolicies     bool      `gorm:"default:false" json:"accept_privacy_policies"`
	AcceptPrivacyPoliciesDate time.Time `json:"accept_privacy_policies_date"`
	CreatedAt                 time.Time `json:"created_at"`
	UpdatedAt                 time.Time `json:"updated_at"`
	User                      User      `gorm:"foreignKey:UserID" json:"-"`
}
