package ownership

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/resumehub/resumehub-backend/pkg/db/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupOwnershipTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
CREATE TABLE IF NOT EXISTS skills (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  name TEXT NOT NULL,
  level INTEGER,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(ddl).Error)
	return db
}

func seedSkill(t *testing.T, db *gorm.DB, userID uuid.UUID, active bool) uuid.UUID {
	t.Helper()
	row := &models.Skill{ID: uuid.New(), UserID: userID, Name: "Go", IsActive: active}
	require.NoError(t, db.Create(row).Error)
	return row.ID
}

func TestOwns(t *testing.T) {
	db := setupOwnershipTestDB(t)
	checker := NewChecker(db)
	ctx := context.Background()

	owner := uuid.New()
	stranger := uuid.New()
	id := seedSkill(t, db, owner, true)

	owns, err := checker.Owns(ctx, Skills, id, owner)
	require.NoError(t, err)
	require.True(t, owns)

	owns, err = checker.Owns(ctx, Skills, id, stranger)
	require.NoError(t, err)
	require.False(t, owns)

	owns, err = checker.Owns(ctx, Skills, uuid.New(), owner)
	require.NoError(t, err)
	require.False(t, owns)
}

func TestOwnsIgnoresSoftDeletedRows(t *testing.T) {
	db := setupOwnershipTestDB(t)
	checker := NewChecker(db)
	ctx := context.Background()

	owner := uuid.New()
	id := seedSkill(t, db, owner, false)

	// The inactive flag must survive the insert; a column default that
	// overrides an explicit false would make every seeded row active.
	var stored models.Skill
	require.NoError(t, db.Where("id = ?", id).First(&stored).Error)
	require.False(t, stored.IsActive)

	owns, err := checker.Owns(ctx, Skills, id, owner)
	require.NoError(t, err)
	require.False(t, owns)
}

func TestOwnsAll(t *testing.T) {
	db := setupOwnershipTestDB(t)
	checker := NewChecker(db)
	ctx := context.Background()

	owner := uuid.New()
	a := seedSkill(t, db, owner, true)
	b := seedSkill(t, db, owner, true)

	owns, err := checker.OwnsAll(ctx, Skills, []uuid.UUID{a, b}, owner)
	require.NoError(t, err)
	require.True(t, owns)

	// Duplicate ids must not double-count against the row total.
	owns, err = checker.OwnsAll(ctx, Skills, []uuid.UUID{a, a, b}, owner)
	require.NoError(t, err)
	require.True(t, owns)

	owns, err = checker.OwnsAll(ctx, Skills, []uuid.UUID{a, uuid.New()}, owner)
	require.NoError(t, err)
	require.False(t, owns)

	owns, err = checker.OwnsAll(ctx, Skills, nil, owner)
	require.NoError(t, err)
	require.True(t, owns)
}

func TestUnknownResource(t *testing.T) {
	db := setupOwnershipTestDB(t)
	checker := NewChecker(db)
	ctx := context.Background()

	_, err := checker.Owns(ctx, Resource("payment_methods"), uuid.New(), uuid.New())
	require.Error(t, err)

	_, err = checker.OwnsAll(ctx, Resource("payment_methods"), []uuid.UUID{uuid.New()}, uuid.New())
	require.Error(t, err)
}
