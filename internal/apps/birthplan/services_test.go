package birthplan

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
		&BirthPlan{},
		&Selection{},
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

func seedPlans(t *testing.T, svc *BirthPlanService) []PlanItem {
	t.Helper()

	req := SeedPlansRequest{Plans: []SeedPlanItem{
		{Name: "Parto normal", Type: "delivery"},
		{Name: "Cesárea", Type: "delivery"},
		{Name: "Analgesia", Type: "pain"},
	}}

	created, err := svc.Seed(req)
	require.NoError(t, err)
	require.Equal(t, 3, created)

	var plans []BirthPlan
	require.NoError(t, svc.db.Order("type ASC, name ASC").Find(&plans).Error)
	items := make([]PlanItem, 0, len(plans))
	for _, p := range plans {
		items = append(items, PlanItem{ID: p.ID, Name: p.Name, Type: p.Type})
	}
	return items
}

func TestSeedSkipsExisting(t *testing.T) {
	db := newTestDB(t)
	svc := NewBirthPlanService(db)
	seedPlans(t, svc)

	req := SeedPlansRequest{Plans: []SeedPlanItem{
		{Name: "Parto normal", Type: "delivery"},
	}}

	created, err := svc.Seed(req)
	require.NoError(t, err)
	assert.Zero(t, created)
}

func TestListMarksSelections(t *testing.T) {
	db := newTestDB(t)
	svc := NewBirthPlanService(db)
	user := newTestClient(t, db, "ana@example.com")
	plans := seedPlans(t, svc)

	require.NoError(t, svc.UpdateSelection(user.ID, UpdateSelectionRequest{
		PlanIDs: []uuid.UUID{plans[0].ID},
	}))

	items, err := svc.List(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 3)

	selected := 0
	for _, item := range items {
		if item.ClientSelect {
			selected++
			assert.Equal(t, plans[0].ID, item.ID)
		}
	}
	assert.Equal(t, 1, selected)
}

func TestSelectionsAreIsolatedPerClient(t *testing.T) {
	db := newTestDB(t)
	svc := NewBirthPlanService(db)
	ana := newTestClient(t, db, "ana@example.com")
	bia := newTestClient(t, db, "bia@example.com")
	plans := seedPlans(t, svc)

	require.NoError(t, svc.UpdateSelection(ana.ID, UpdateSelectionRequest{
		PlanIDs: []uuid.UUID{plans[0].ID},
	}))

	items, err := svc.List(bia.ID)
	require.NoError(t, err)
	for _, item := range items {
		assert.False(t, item.ClientSelect)
	}
}

func TestUpdateSelectionReplacesSet(t *testing.T) {
	db := newTestDB(t)
	svc := NewBirthPlanService(db)
	user := newTestClient(t, db, "ana@example.com")
	plans := seedPlans(t, svc)

	require.NoError(t, svc.UpdateSelection(user.ID, UpdateSelectionRequest{
		PlanIDs: []uuid.UUID{plans[0].ID, plans[1].ID},
	}))
	require.NoError(t, svc.UpdateSelection(user.ID, UpdateSelectionRequest{
		PlanIDs: []uuid.UUID{plans[2].ID},
	}))

	var selections []Selection
	require.NoError(t, db.Find(&selections).Error)
	require.Len(t, selections, 1)
	assert.Equal(t, plans[2].ID, selections[0].PlanID)
}

func TestUpdateSelectionUnknownPlan(t *testing.T) {
	db := newTestDB(t)
	svc := NewBirthPlanService(db)
	user := newTestClient(t, db, "ana@example.com")
	plans := seedPlans(t, svc)

	require.NoError(t, svc.UpdateSelection(user.ID, UpdateSelectionRequest{
		PlanIDs: []uuid.UUID{plans[0].ID},
	}))

	err := svc.UpdateSelection(user.ID, UpdateSelectionRequest{
		PlanIDs: []uuid.UUID{uuid.New()},
	})
	assert.ErrorIs(t, err, ErrPlanNotFound)

	// The previous selection is untouched.
	var selections []Selection
	require.NoError(t, db.Find(&selections).Error)
	require.Len(t, selections, 1)
	assert.Equal(t, plans[0].ID, selections[0].PlanID)
}

func TestListWithoutProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewBirthPlanService(db)

	_, err := svc.List(uuid.New())
	assert.ErrorIs(t, err, ownership.ErrAccountNotFound)
}
