package ownership

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ForClient returns a GORM scope that filters by the owning client.
func ForClient(clientID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("client_id = ?", clientID)
	}
}
