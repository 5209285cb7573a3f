package schedule

import (
	"github.com/bemnascer/bemnascer-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SchedulePlugin struct{}

func New() *SchedulePlugin {
	return &SchedulePlugin{}
}

func (p *SchedulePlugin) ID() string {
	return "schedule"
}

func (p *SchedulePlugin) Models() []interface{} {
	return []interface{}{
		&Schedule{},
	}
}

func (p *SchedulePlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	service := NewScheduleService(db)
	handler := NewScheduleHandler(service)

	group := router.Group("/schedules")
	group.Post("/", handler.Create)
	group.Get("/", handler.GetDay)
	group.Put("/:id", handler.Update)
	group.Delete("/:id", handler.Delete)
}
