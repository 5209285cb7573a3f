package ownership

import (
	"errors"

	"github.com/bemnascer/bemnascer-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrAccountNotFound means the user → client chain is broken: either the
// user vanished or no profile is attached to it.
var ErrAccountNotFound = errors.New("user not found")

// ResolveClient walks the identity chain from an authenticated user ID to
// its client profile. Every per-client operation starts here.
func ResolveClient(db *gorm.DB, userID uuid.UUID) (*models.Client, error) {
	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	var client models.Client
	if err := db.First(&client, "user_id = ?", user.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	return &client, nil
}
