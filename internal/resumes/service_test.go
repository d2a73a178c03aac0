package resumes

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/resumehub/resumehub-backend/pkg/db/models"
	pkgerrors "github.com/resumehub/resumehub-backend/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testTxRunner struct {
	db *gorm.DB
}

func (r *testTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func setupResumesTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	statements := []string{
		`CREATE TABLE IF NOT EXISTS personal_information (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  full_name TEXT NOT NULL,
  professional_title TEXT NOT NULL,
  email TEXT NOT NULL,
  phone_number TEXT,
  location TEXT,
  social_media_urls TEXT NOT NULL DEFAULT '{}',
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS professional_summaries (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  summary TEXT NOT NULL,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS work_experiences (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  title TEXT NOT NULL,
  name TEXT NOT NULL,
  url TEXT,
  location TEXT,
  start_date DATETIME NOT NULL,
  end_date DATETIME,
  is_current INTEGER NOT NULL DEFAULT 0,
  description TEXT,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS projects (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  title TEXT NOT NULL,
  url TEXT,
  start_date DATETIME NOT NULL,
  end_date DATETIME,
  description TEXT NOT NULL,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS skills (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  name TEXT NOT NULL,
  level INTEGER,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS education (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  degree TEXT NOT NULL,
  name TEXT NOT NULL,
  url TEXT,
  start_date DATETIME NOT NULL,
  end_date DATETIME,
  location TEXT NOT NULL,
  description TEXT,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS certifications (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  name TEXT NOT NULL,
  url TEXT,
  description TEXT,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS resumes (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  title TEXT NOT NULL DEFAULT 'Default Resume',
  personal_information_id TEXT,
  professional_summary_ids TEXT NOT NULL DEFAULT '{}',
  work_experience_ids TEXT NOT NULL DEFAULT '{}',
  project_ids TEXT NOT NULL DEFAULT '{}',
  skill_ids TEXT NOT NULL DEFAULT '{}',
  education_ids TEXT NOT NULL DEFAULT '{}',
  certification_ids TEXT NOT NULL DEFAULT '{}',
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func newResumesService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db := setupResumesTestDB(t)
	return NewService(&testTxRunner{db: db}, db), db
}

func seedSkillRow(t *testing.T, db *gorm.DB, userID uuid.UUID, name string) uuid.UUID {
	t.Helper()
	row := &models.Skill{ID: uuid.New(), UserID: userID, Name: name, IsActive: true}
	require.NoError(t, db.Create(row).Error)
	return row.ID
}

func seedPersonalInfoRow(t *testing.T, db *gorm.DB, userID uuid.UUID) uuid.UUID {
	t.Helper()
	row := &models.PersonalInformation{
		ID:                uuid.New(),
		UserID:            userID,
		FullName:          "Jordan Smith",
		ProfessionalTitle: "Backend Engineer",
		Email:             "jordan@example.com",
		IsActive:          true,
	}
	require.NoError(t, db.Create(row).Error)
	return row.ID
}

func seedWorkExperienceRow(t *testing.T, db *gorm.DB, userID uuid.UUID, title string, start time.Time) uuid.UUID {
	t.Helper()
	end := start.AddDate(1, 0, 0)
	row := &models.WorkExperience{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Name:      "Acme Corp",
		StartDate: start,
		EndDate:   &end,
		IsActive:  true,
	}
	require.NoError(t, db.Create(row).Error)
	return row.ID
}

func TestResumeCreateValidatesReferences(t *testing.T) {
	svc, db := newResumesService(t)
	ctx := context.Background()
	userID := uuid.New()
	stranger := uuid.New()

	infoID := seedPersonalInfoRow(t, db, userID)
	mine := seedSkillRow(t, db, userID, "Go")
	theirs := seedSkillRow(t, db, stranger, "Rust")

	created, err := svc.Create(ctx, userID, CreateResumeRequest{
		PersonalInformationID: &infoID,
		SkillIDs:              []uuid.UUID{mine},
	})
	require.NoError(t, err)
	require.Equal(t, "Default Resume", created.Title)
	require.Equal(t, []uuid.UUID{mine}, []uuid.UUID(created.SkillIDs))

	// Another user's row must be rejected even though it exists.
	_, err = svc.Create(ctx, userID, CreateResumeRequest{
		PersonalInformationID: &infoID,
		SkillIDs:              []uuid.UUID{mine, theirs},
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())

	// A made-up id is rejected the same way.
	_, err = svc.Create(ctx, userID, CreateResumeRequest{
		PersonalInformationID: &infoID,
		SkillIDs:              []uuid.UUID{uuid.New()},
	})
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestResumeCreateValidatesPersonalInformation(t *testing.T) {
	svc, db := newResumesService(t)
	ctx := context.Background()
	userID := uuid.New()

	infoID := seedPersonalInfoRow(t, db, userID)

	_, err := svc.Create(ctx, userID, CreateResumeRequest{
		PersonalInformationID: &infoID,
	})
	require.NoError(t, err)

	// A resume cannot be created without its personal information section.
	_, err = svc.Create(ctx, userID, CreateResumeRequest{})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())

	bogus := uuid.New()
	_, err = svc.Create(ctx, userID, CreateResumeRequest{
		PersonalInformationID: &bogus,
	})
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestResumeGetByIDExpandsAndDropsDanglingRefs(t *testing.T) {
	svc, db := newResumesService(t)
	ctx := context.Background()
	userID := uuid.New()

	infoID := seedPersonalInfoRow(t, db, userID)
	goID := seedSkillRow(t, db, userID, "Go")
	dockerID := seedSkillRow(t, db, userID, "Docker")
	workID := seedWorkExperienceRow(t, db, userID, "Engineer", time.Now().UTC().AddDate(-2, 0, 0))

	created, err := svc.Create(ctx, userID, CreateResumeRequest{
		PersonalInformationID: &infoID,
		SkillIDs:              []uuid.UUID{goID, dockerID},
		WorkExperienceIDs:     []uuid.UUID{workID},
	})
	require.NoError(t, err)

	expanded, err := svc.GetByID(ctx, created.ID, userID)
	require.NoError(t, err)
	require.NotNil(t, expanded.PersonalInformation)
	require.Len(t, expanded.Skills, 2)
	require.Len(t, expanded.WorkExperiences, 1)

	// Soft-delete one referenced skill and the contact header. Reads drop
	// what no longer resolves instead of failing.
	require.NoError(t, db.Model(&models.Skill{}).Where("id = ?", goID).UpdateColumn("is_active", false).Error)
	require.NoError(t, db.Model(&models.PersonalInformation{}).Where("id = ?", infoID).UpdateColumn("is_active", false).Error)

	expanded, err = svc.GetByID(ctx, created.ID, userID)
	require.NoError(t, err)
	require.Nil(t, expanded.PersonalInformation)
	require.Len(t, expanded.Skills, 1)
	require.Equal(t, "Docker", expanded.Skills[0].Name)
}

func TestResumeUpdate(t *testing.T) {
	svc, db := newResumesService(t)
	ctx := context.Background()
	userID := uuid.New()

	infoID := seedPersonalInfoRow(t, db, userID)
	goID := seedSkillRow(t, db, userID, "Go")
	created, err := svc.Create(ctx, userID, CreateResumeRequest{
		PersonalInformationID: &infoID,
		SkillIDs:              []uuid.UUID{goID},
	})
	require.NoError(t, err)

	// Clearing a list with an explicit empty array.
	empty := []uuid.UUID{}
	title := "Backend Focus"
	updated, err := svc.Update(ctx, created.ID, userID, UpdateResumeRequest{
		Title:    &title,
		SkillIDs: &empty,
	})
	require.NoError(t, err)
	require.Equal(t, "Backend Focus", updated.Title)
	require.Empty(t, updated.SkillIDs)

	// Updating with a reference that fails validation leaves the row alone.
	bad := []uuid.UUID{uuid.New()}
	_, err = svc.Update(ctx, created.ID, userID, UpdateResumeRequest{
		SkillIDs: &bad,
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())

	// An empty update body is rejected.
	_, err = svc.Update(ctx, created.ID, userID, UpdateResumeRequest{})
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())

	// A single-character title falls below the minimum length.
	short := "X"
	_, err = svc.Update(ctx, created.ID, userID, UpdateResumeRequest{Title: &short})
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestResumeUpdateSkipsUntouchedReferences(t *testing.T) {
	svc, db := newResumesService(t)
	ctx := context.Background()
	userID := uuid.New()

	infoID := seedPersonalInfoRow(t, db, userID)
	goID := seedSkillRow(t, db, userID, "Go")
	created, err := svc.Create(ctx, userID, CreateResumeRequest{
		PersonalInformationID: &infoID,
		SkillIDs:              []uuid.UUID{goID},
	})
	require.NoError(t, err)

	// The stored skill reference goes stale after the resume was composed.
	require.NoError(t, db.Model(&models.Skill{}).Where("id = ?", goID).UpdateColumn("is_active", false).Error)

	// A title-only update does not touch the skill list, so the stale
	// reference stays a read-time concern and the write succeeds.
	title := "Platform Engineering"
	updated, err := svc.Update(ctx, created.ID, userID, UpdateResumeRequest{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "Platform Engineering", updated.Title)
	require.Equal(t, []uuid.UUID{goID}, []uuid.UUID(updated.SkillIDs))

	// Resubmitting the stale list explicitly is still rejected.
	stale := []uuid.UUID{goID}
	_, err = svc.Update(ctx, created.ID, userID, UpdateResumeRequest{SkillIDs: &stale})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestResumeDeleteAndScoping(t *testing.T) {
	svc, db := newResumesService(t)
	ctx := context.Background()
	userID := uuid.New()
	stranger := uuid.New()

	infoID := seedPersonalInfoRow(t, db, userID)
	goID := seedSkillRow(t, db, userID, "Go")
	created, err := svc.Create(ctx, userID, CreateResumeRequest{
		PersonalInformationID: &infoID,
		SkillIDs:              []uuid.UUID{goID},
	})
	require.NoError(t, err)

	// A stranger sees not-found, never forbidden.
	_, err = svc.GetByID(ctx, created.ID, stranger)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())

	require.NoError(t, svc.Delete(ctx, created.ID, userID))

	_, err = svc.GetByID(ctx, created.ID, userID)
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())

	// Deleting the resume never touches the sections it referenced.
	var count int64
	require.NoError(t, db.Model(&models.Skill{}).Where("id = ? AND is_active = ?", goID, true).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestResumeGetAll(t *testing.T) {
	svc, db := newResumesService(t)
	ctx := context.Background()
	userID := uuid.New()

	infoID := seedPersonalInfoRow(t, db, userID)
	_, err := svc.Create(ctx, userID, CreateResumeRequest{PersonalInformationID: &infoID})
	require.NoError(t, err)
	_, err = svc.Create(ctx, userID, CreateResumeRequest{PersonalInformationID: &infoID})
	require.NoError(t, err)

	list, err := svc.GetAll(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 2)

	other, err := svc.GetAll(ctx, uuid.New())
	require.NoError(t, err)
	require.Empty(t, other)
}
