package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BeforeCreate hooks mint the primary key client-side when the caller did not
// set one, keeping inserts portable across Postgres and the sqlite test
// harness.

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (m *User) BeforeCreate(*gorm.DB) error                { ensureID(&m.ID); return nil }
func (m *Session) BeforeCreate(*gorm.DB) error             { ensureID(&m.ID); return nil }
func (m *PersonalInformation) BeforeCreate(*gorm.DB) error { ensureID(&m.ID); return nil }
func (m *ProfessionalSummary) BeforeCreate(*gorm.DB) error { ensureID(&m.ID); return nil }
func (m *WorkExperience) BeforeCreate(*gorm.DB) error      { ensureID(&m.ID); return nil }
func (m *Project) BeforeCreate(*gorm.DB) error             { ensureID(&m.ID); return nil }
func (m *Skill) BeforeCreate(*gorm.DB) error               { ensureID(&m.ID); return nil }
func (m *Education) BeforeCreate(*gorm.DB) error           { ensureID(&m.ID); return nil }
func (m *Certification) BeforeCreate(*gorm.DB) error       { ensureID(&m.ID); return nil }
func (m *Resume) BeforeCreate(*gorm.DB) error              { ensureID(&m.ID); return nil }
