package post

import (
	"testing"
	"time"

	"github.com/bemnascer/bemnascer-backend/internal/models"
	"github.com/bemnascer/bemnascer-backend/internal/ownership"
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
		&Post{},
	))
	return db
}

func newTestClient(t *testing.T, db *gorm.DB, email string) *models.User {
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
	}
	require.NoError(t, db.Create(&client).Error)
	return &user
}

func TestCreateAndListPosts(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)
	user := newTestClient(t, db, "ana@example.com")

	first, err := svc.Create(CreatePostRequest{Title: "Alimentação na gravidez"})
	require.NoError(t, err)
	require.NoError(t, db.Model(first).Update("created_at", time.Now().Add(-time.Hour)).Error)

	_, err = svc.Create(CreatePostRequest{Title: "Exercícios do terceiro trimestre"})
	require.NoError(t, err)

	posts, err := svc.ListForClient(user.ID)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "Exercícios do terceiro trimestre", posts[0].Title)
}

func TestCreatePostRequiresTitle(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)

	_, err := svc.Create(CreatePostRequest{Title: "   "})
	assert.ErrorIs(t, err, ErrInvalidTitle)
}

func TestListPostsRequiresClientProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)

	_, err := svc.ListForClient(uuid.New())
	assert.ErrorIs(t, err, ownership.ErrAccountNotFound)
}

func TestDeletePost(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)

	p, err := svc.Create(CreatePostRequest{Title: "Alimentação na gravidez"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(p.ID))
	assert.ErrorIs(t, svc.Delete(p.ID), ErrPostNotFound)
}
