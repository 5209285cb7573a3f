package term

import (
	"time"

	"github.com/google/uuid"
)

// The two legal documents every client must accept. Term names are fixed;
// only their descriptions change over time.
const (
	NameUseTerm       = "Termo de Uso"
	NamePrivacyPolicy = "Política de Privacidade"

	TypeUse     = "use"
	TypePrivacy = "privacy"
)

type Term struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null;size:100;uniqueIndex" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// --- DTOs ---

type UpdateTermRequest struct {
	Description string `json:"description"`
}
