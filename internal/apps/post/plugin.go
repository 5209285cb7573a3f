package post

import (
	"github.com/bemnascer/bemnascer-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PostPlugin struct{}

func New() *PostPlugin {
	return &PostPlugin{}
}

func (p *PostPlugin) ID() string {
	return "post"
}

func (p *PostPlugin) Models() []interface{} {
	return []interface{}{
		&Post{},
	}
}

func (p *PostPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	service := NewPostService(db)
	handler := NewPostHandler(service)

	router.Get("/posts", handler.List)
}

func (p *PostPlugin) RegisterMasterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	service := NewPostService(db)
	handler := NewPostHandler(service)

	router.Post("/posts", handler.Create)
	router.Delete("/posts/:id", handler.Delete)
}
