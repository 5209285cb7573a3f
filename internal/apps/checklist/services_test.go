package checklist

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
		&List{},
		&Topic{},
	))
	return db
}

func newTestClient(t *testing.T, db *gorm.DB, email string) (*models.User, *models.Client) {
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
	return &user, &client
}

func TestCreateList(t *testing.T) {
	db := newTestDB(t)
	svc := NewChecklistService(db)
	user, client := newTestClient(t, db, "ana@example.com")

	list, err := svc.CreateList(user.ID, CreateListRequest{Name: "  Mala  da   Maternidade "})
	require.NoError(t, err)
	assert.Equal(t, "Mala da Maternidade", list.Name)
	assert.Equal(t, client.ID, list.ClientID)
}

func TestCreateListDuplicateName(t *testing.T) {
	db := newTestDB(t)
	svc := NewChecklistService(db)
	user, _ := newTestClient(t, db, "ana@example.com")

	_, err := svc.CreateList(user.ID, CreateListRequest{Name: "Enxoval"})
	require.NoError(t, err)

	_, err = svc.CreateList(user.ID, CreateListRequest{Name: "Enxoval"})
	assert.ErrorIs(t, err, ErrDuplicateListName)
}

func TestCreateListSameNameDifferentClients(t *testing.T) {
	db := newTestDB(t)
	svc := NewChecklistService(db)
	ana, _ := newTestClient(t, db, "ana@example.com")
	bia, _ := newTestClient(t, db, "bia@example.com")

	_, err := svc.CreateList(ana.ID, CreateListRequest{Name: "Enxoval"})
	require.NoError(t, err)

	// Uniqueness is per client, not global.
	_, err = svc.CreateList(bia.ID, CreateListRequest{Name: "Enxoval"})
	assert.NoError(t, err)
}

func TestCreateListInvalidName(t *testing.T) {
	db := newTestDB(t)
	svc := NewChecklistService(db)
	user, _ := newTestClient(t, db, "ana@example.com")

	_, err := svc.CreateList(user.ID, CreateListRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestCreateListWithoutProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewChecklistService(db)

	_, err := svc.CreateList(uuid.New(), CreateListRequest{Name: "Enxoval"})
	assert.ErrorIs(t, err, ownership.ErrAccountNotFound)
}

func TestRenameListExcludesSelf(t *testing.T) {
	db := newTestDB(t)
	svc := NewChecklistService(db)
	user, _ := newTestClient(t, db, "ana@example.com")

	list, err := svc.CreateList(user.ID, CreateListRequest{Name: "Enxoval"})
	require.NoError(t, err)

	// Renaming a list to its own current name is not a conflict.
	renamed, err := svc.RenameList(user.ID, list.ID, RenameRequest{Name: "Enxoval"})
	require.NoError(t, err)
	assert.Equal(t, "Enxoval", renamed.Name)
}

func TestRenameListConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewChecklistService(db)
	user, _ := newTestClient(t, db, "ana@example.com")

	_, err := svc.CreateList(user.ID, CreateListRequest{Name: "Enxoval"})
	require.NoError(t, err)
	other, err := svc.CreateList(user.ID, CreateListRequest{Name: "Mala"})
	require.NoError(t, err)

	_, err = svc.RenameList(user.ID, other.ID, RenameRequest{Name: "Enxoval"})
	assert.ErrorIs(t, err, ErrDuplicateListName)
}

func TestListOwnershipIsolation(t *testing.T) {
	db := newTestDB(t)
	svc := NewChecklistService(db)
	ana, _ := newTestClient(t, db, "ana@example.com")
	bia, _ := newTestClient(t, db, "bia@example.com")

	list, err := svc.CreateList(ana.ID, CreateListRequest{Name: "Enxoval"})
	require.NoError(t, err)

	// Another client cannot see, rename or delete it.
	_, err = svc.RenameList(bia.ID, list.ID, RenameRequest{Name: "Roubada"})
	assert.ErrorIs(t, err, ErrListNotFound)
	assert.ErrorIs(t, svc.DeleteList(bia.ID, list.ID), ErrListNotFound)

	lists, err := svc.GetLists(bia.ID)
	require.NoError(t, err)
	assert.Empty(t, lists)
}

func TestDeleteListCascadesTopics(t *testing.T) {
	db := newTestDB(t)
	svc := NewChecklistService(db)
	user, _ := newTestClient(t, db, "ana@example.com")

	list, err := svc.CreateList(user.ID, CreateListRequest{Name: "Enxoval"})
	require.NoError(t, err)
	_, err = svc.CreateTopic(user.ID, CreateTopicRequest{Name: "Fraldas", ListID: list.ID})
	require.NoError(t, err)
	_, err = svc.CreateTopic(user.ID, CreateTopicRequest{Name: "Body", ListID: list.ID})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteList(user.ID, list.ID))

	var topics int64
	require.NoError(t, db.Model(&Topic{}).Where("list_id = ?", list.ID).Count(&topics).Error)
	assert.Zero(t, topics)
}

func TestCreateTopicDuplicatePerList(t *testing.T) {
	db := newTestDB(t)
	svc := NewChecklistService(db)
	user, _ := newTestClient(t, db, "ana@example.com")

	listA, err := svc.CreateList(user.ID, CreateListRequest{Name: "Enxoval"})
	require.NoError(t, err)
	listB, err := svc.CreateList(user.ID, CreateListRequest{Name: "Mala"})
	require.NoError(t, err)

	_, err = svc.CreateTopic(user.ID, CreateTopicRequest{Name: "Fraldas", ListID: listA.ID})
	require.NoError(t, err)

	_, err = svc.CreateTopic(user.ID, CreateTopicRequest{Name: "Fraldas", ListID: listA.ID})
	assert.ErrorIs(t, err, ErrDuplicateTopicName)

	// The same name is fine in a different list.
	_, err = svc.CreateTopic(user.ID, CreateTopicRequest{Name: "Fraldas", ListID: listB.ID})
	assert.NoError(t, err)
}

func TestCheckTopic(t *testing.T) {
	db := newTestDB(t)
	svc := NewChecklistService(db)
	user, _ := newTestClient(t, db, "ana@example.com")

	list, err := svc.CreateList(user.ID, CreateListRequest{Name: "Enxoval"})
	require.NoError(t, err)
	topic, err := svc.CreateTopic(user.ID, CreateTopicRequest{Name: "Fraldas", ListID: list.ID})
	require.NoError(t, err)

	checked, err := svc.CheckTopic(user.ID, topic.ID, true)
	require.NoError(t, err)
	assert.True(t, checked.Checked)

	unchecked, err := svc.CheckTopic(user.ID, topic.ID, false)
	require.NoError(t, err)
	assert.False(t, unchecked.Checked)
}

func TestRenameTopicConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewChecklistService(db)
	user, _ := newTestClient(t, db, "ana@example.com")

	list, err := svc.CreateList(user.ID, CreateListRequest{Name: "Enxoval"})
	require.NoError(t, err)
	_, err = svc.CreateTopic(user.ID, CreateTopicRequest{Name: "Fraldas", ListID: list.ID})
	require.NoError(t, err)
	topic, err := svc.CreateTopic(user.ID, CreateTopicRequest{Name: "Body", ListID: list.ID})
	require.NoError(t, err)

	_, err = svc.RenameTopic(user.ID, topic.ID, RenameRequest{Name: "Fraldas"})
	assert.ErrorIs(t, err, ErrDuplicateTopicName)

	// Renaming to its own name stays allowed.
	_, err = svc.RenameTopic(user.ID, topic.ID, RenameRequest{Name: "Body"})
	assert.NoError(t, err)
}

func TestDeleteTopic(t *testing.T) {
	db := newTestDB(t)
	svc := NewChecklistService(db)
	user, _ := newTestClient(t, db, "ana@example.com")

	list, err := svc.CreateList(user.ID, CreateListRequest{Name: "Enxoval"})
	require.NoError(t, err)
	topic, err := svc.CreateTopic(user.ID, CreateTopicRequest{Name: "Fraldas", ListID: list.ID})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTopic(user.ID, topic.ID))
	assert.ErrorIs(t, svc.DeleteTopic(user.ID, topic.ID), ErrTopicNotFound)
}
