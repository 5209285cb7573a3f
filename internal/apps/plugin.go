package apps

import (
	"github.com/bemnascer/bemnascer-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Plugin defines the interface every feature module must implement.
type Plugin interface {
	// ID returns the unique module identifier.
	ID() string

	// Models returns the list of GORM model pointers for AutoMigrate.
	Models() []interface{}

	// RegisterRoutes mounts module routes on the given Fiber group.
	// The group is already prefixed with /api and has JWT middleware applied.
	RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config)
}

// MasterPlugin extends Plugin with master-only route registration.
type MasterPlugin interface {
	Plugin

	// RegisterMasterRoutes mounts master-only routes on the given Fiber
	// group. The group has both JWT and Master middleware applied.
	RegisterMasterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config)
}
