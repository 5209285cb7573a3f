package term

import (
	"testing"
	"time"

	"github.com/bemnascer/bemnascer-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&Term{},
	))
	return db
}

func newTestClient(t *testing.T, db *gorm.DB, email string, accepted bool) *models.User {
	t.Helper()

	user := models.User{
		ID:       uuid.New(),
		Username: email,
		Email:    email,
		Password: "x",
		Provider: "local",
		Role:     models.RoleClient,
	}
	require.NoError(t, db.Create(&user).Error)

	client := models.Client{
		ID:                     uuid.New(),
		UserID:                 user.ID,
		Name:                   "Ana",
		ProbableDateOfDelivery: time.Now().UTC().AddDate(0, 0, 100),
		AcceptTerm:             accepted,
		AcceptPrivacyPolicies:  accepted,
	}
	require.NoError(t, db.Create(&client).Error)
	return &user
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewTermService(db)

	require.NoError(t, svc.Seed())
	require.NoError(t, svc.Seed())

	var count int64
	require.NoError(t, db.Model(&Term{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestGetByType(t *testing.T) {
	db := newTestDB(t)
	svc := NewTermService(db)
	require.NoError(t, svc.Seed())

	use, err := svc.Get(TypeUse)
	require.NoError(t, err)
	assert.Equal(t, NameUseTerm, use.Name)

	privacy, err := svc.Get(TypePrivacy)
	require.NoError(t, err)
	assert.Equal(t, NamePrivacyPolicy, privacy.Name)

	// Unknown types fall back to the use term.
	fallback, err := svc.Get("whatever")
	require.NoError(t, err)
	assert.Equal(t, NameUseTerm, fallback.Name)
}

func TestAcceptStampsClient(t *testing.T) {
	db := newTestDB(t)
	svc := NewTermService(db)
	require.NoError(t, svc.Seed())
	user := newTestClient(t, db, "ana@example.com", false)

	require.NoError(t, svc.Accept(user.ID, TypeUse))

	var client models.Client
	require.NoError(t, db.First(&client, "user_id = ?", user.ID).Error)
	assert.True(t, client.AcceptTerm)
	assert.False(t, client.AcceptTermDate.IsZero())
	assert.False(t, client.AcceptPrivacyPolicies)
}

func TestUpdateClearsAcceptanceFlags(t *testing.T) {
	db := newTestDB(t)
	svc := NewTermService(db)
	require.NoError(t, svc.Seed())
	ana := newTestClient(t, db, "ana@example.com", true)
	bia := newTestClient(t, db, "bia@example.com", true)

	require.NoError(t, svc.Update(TypeUse, UpdateTermRequest{Description: "Nova versão do termo"}))

	// Every client must re-accept the use term; the privacy flag is
	// untouched.
	for _, u := range []*models.User{ana, bia} {
		var client models.Client
		require.NoError(t, db.First(&client, "user_id = ?", u.ID).Error)
		assert.False(t, client.AcceptTerm)
		assert.True(t, client.AcceptPrivacyPolicies)
	}

	updated, err := svc.Get(TypeUse)
	require.NoError(t, err)
	assert.Equal(t, "Nova versão do termo", updated.Description)
}

func TestUpdateRejectsEmptyDescription(t *testing.T) {
	db := newTestDB(t)
	svc := NewTermService(db)
	require.NoError(t, svc.Seed())

	err := svc.Update(TypeUse, UpdateTermRequest{Description: "   "})
	assert.ErrorIs(t, err, ErrInvalidDescription)
}
