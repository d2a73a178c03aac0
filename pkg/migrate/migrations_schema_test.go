package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/resumehub/resumehub-backend/pkg/migrate"
)

func TestMigrationsDirValidates(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("migrations dir failed validation: %v", err)
	}
}

func TestSectionsMigrationEnforcesSingleton(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_resume_sections.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no resume sections migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE UNIQUE INDEX idx_personal_information_active_user",
		"ON personal_information (user_id) WHERE is_active",
		"CREATE TABLE work_experiences",
		"is_current BOOLEAN NOT NULL DEFAULT FALSE",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestSessionsMigrationBacksTokenUniqueness(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_users_and_sessions.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no users/sessions migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	for _, sub := range []string{
		"CREATE UNIQUE INDEX idx_users_username",
		"CREATE UNIQUE INDEX idx_users_email",
		"CREATE UNIQUE INDEX idx_sessions_token",
	} {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}
