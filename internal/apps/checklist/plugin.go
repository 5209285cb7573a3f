package checklist

import (
	"github.com/bemnascer/bemnascer-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ChecklistPlugin struct{}

func New() *ChecklistPlugin {
	return &ChecklistPlugin{}
}

func (p *ChecklistPlugin) ID() string {
	return "checklist"
}

func (p *ChecklistPlugin) Models() []interface{} {
	return []interface{}{
		&List{},
		&Topic{},
	}
}

func (p *ChecklistPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	service := NewChecklistService(db)
	handler := NewChecklistHandler(service)

	group := router.Group("/checklist")
	group.Post("/lists", handler.CreateList)
	group.Get("/lists", handler.ListLists)
	group.Put("/lists/:id", handler.RenameList)
	group.Delete("/lists/:id", handler.DeleteList)
	group.Post("/topics", handler.CreateTopic)
	group.Get("/topics", handler.ListTopics)
	group.Put("/topics/:id", handler.RenameTopic)
	group.Patch("/topics/:id/checked", handler.CheckTopic)
	group.Delete("/topics/:id", handler.DeleteTopic)
}
