package birthplan

import (
	"time"

	"github.com/google/uuid"
)

// BirthPlan is a catalog entry ("parto normal", "analgesia"...) grouped by
// type. Clients mark the entries that make up their childbirth plan.
type BirthPlan struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null;size:150" json:"name"`
	Type      string    `gorm:"not null;size:50;index" json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Selection joins a client to a chosen plan entry. Modeled explicitly so
// the cascade deleter can clear a client's selections directly.
type Selection struct {
	ClientID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"client_id"`
	PlanID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"plan_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Selection) TableName() string {
	return "birth_plan_selections"
}

// --- DTOs ---

type PlanItem struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	ClientSelect bool      `json:"client_select"`
}

type SeedPlanItem struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type SeedPlansRequest struct {
	Plans []SeedPlanItem `json:"plans"`
}

type UpdateSelectionRequest struct {
	PlanIDs []uuid.UUID `json:"plan_ids"`
}
