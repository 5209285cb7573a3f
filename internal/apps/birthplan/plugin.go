package birthplan

import (
	"github.com/bemnascer/bemnascer-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BirthPlanPlugin struct{}

func New() *BirthPlanPlugin {
	return &BirthPlanPlugin{}
}

func (p *BirthPlanPlugin) ID() string {
	return "birthplan"
}

func (p *BirthPlanPlugin) Models() []interface{} {
	return []interface{}{
		&BirthPlan{},
		&Selection{},
	}
}

func (p *BirthPlanPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	service := NewBirthPlanService(db)
	handler := NewBirthPlanHandler(service)

	router.Get("/birthplans", handler.List)
	router.Put("/birthplans/selection", handler.UpdateSelection)
}

func (p *BirthPlanPlugin) RegisterMasterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	service := NewBirthPlanService(db)
	handler := NewBirthPlanHandler(service)

	router.Post("/birthplans", handler.Seed)
}
