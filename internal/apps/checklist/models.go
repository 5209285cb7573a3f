package checklist

import (
	"time"

	"github.com/bemnascer/bemnascer-backend/internal/models"
	"github.com/google/uuid"
)

// List is a named checklist owned by a client ("Mala da Maternidade",
// "Enxoval do Bebê"...). Names are unique per client, topics per list.
type List struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	ClientID  uuid.UUID     `gorm:"type:uuid;not null;index;uniqueIndex:idx_lists_client_name" json:"client_id"`
	Name      string        `gorm:"not null;size:100;uniqueIndex:idx_lists_client_name" json:"name"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	Topics    []Topic       `gorm:"foreignKey:ListID" json:"topics,omitempty"`
	Client    models.Client `gorm:"foreignKey:ClientID" json:"-"`
}

type Topic struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ListID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_topics_list_name" json:"list_id"`
	Name      string    `gorm:"not null;size:100;uniqueIndex:idx_topics_list_name" json:"name"`
	Checked   bool      `gorm:"default:false" json:"checked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	List      List      `gorm:"foreignKey:ListID" json:"-"`
}

// --- DTOs ---

type CreateListRequest struct {
	Name string `json:"name"`
}

type CreateTopicRequest struct {
	Name   string    `json:"name"`
	ListID uuid.UUID `json:"list_id"`
}

type RenameRequest struct {
	Name string `json:"name"`
}

type CheckTopicRequest struct {
	Checked bool `json:"checked"`
}
