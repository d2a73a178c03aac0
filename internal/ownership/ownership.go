package ownership

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Resource names a user-scoped table eligible for ownership checks. The
// allow-list keeps caller-supplied strings away from SQL identifiers.
type Resource string

const (
	PersonalInformation   Resource = "personal_information"
	ProfessionalSummaries Resource = "professional_summaries"
	WorkExperiences       Resource = "work_experiences"
	Projects              Resource = "projects"
	Skills                Resource = "skills"
	Education             Resource = "education"
	Certifications        Resource = "certifications"
	Resumes               Resource = "resumes"
)

var allowedResources = map[Resource]bool{
	PersonalInformation:   true,
	ProfessionalSummaries: true,
	WorkExperiences:       true,
	Projects:              true,
	Skills:                true,
	Education:             true,
	Certifications:        true,
	Resumes:               true,
}

// Checker answers whether rows belong to a user. Only active rows count;
// soft-deleted rows are invisible to ownership checks.
type Checker struct {
	db *gorm.DB
}

// NewChecker constructs a checker bound to the provided GORM DB.
func NewChecker(db *gorm.DB) *Checker {
	return &Checker{db: db}
}

// WithTx returns a checker bound to the provided transaction handle.
func (c *Checker) WithTx(tx *gorm.DB) *Checker {
	return &Checker{db: tx}
}

// Owns reports whether the row exists, is active and belongs to the user.
func (c *Checker) Owns(ctx context.Context, resource Resource, id, userID uuid.UUID) (bool, error) {
	if !allowedResources[resource] {
		return false, fmt.Errorf("unknown resource %q", resource)
	}

	var count int64
	err := c.db.WithContext(ctx).
		Table(string(resource)).
		Where("id = ? AND user_id = ? AND is_active = ?", id, userID, true).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// OwnsAll reports whether every id resolves to an active row of the user.
// The empty list is vacuously owned; otherwise the check is all-or-nothing.
func (c *Checker) OwnsAll(ctx context.Context, resource Resource, ids []uuid.UUID, userID uuid.UUID) (bool, error) {
	if !allowedResources[resource] {
		return false, fmt.Errorf("unknown resource %q", resource)
	}
	if len(ids) == 0 {
		return true, nil
	}

	unique := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	var count int64
	err := c.db.WithContext(ctx).
		Table(string(resource)).
		Where("id IN ? AND user_id = ? AND is_active = ?", unique, userID, true).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == int64(len(unique)), nil
}
