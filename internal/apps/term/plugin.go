package term

import (
	"github.com/bemnascer/bemnascer-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TermPlugin struct{}

func New() *TermPlugin {
	return &TermPlugin{}
}

func (p *TermPlugin) ID() string {
	return "term"
}

func (p *TermPlugin) Models() []interface{} {
	return []interface{}{
		&Term{},
	}
}

func (p *TermPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	service := NewTermService(db)
	handler := NewTermHandler(service)

	router.Get("/terms", handler.Get)
	router.Post("/terms/accept", handler.Accept)
}

func (p *TermPlugin) RegisterMasterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	service := NewTermService(db)
	handler := NewTermHandler(service)

	router.Put("/terms", handler.Update)
}
