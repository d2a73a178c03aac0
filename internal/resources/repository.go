package resources

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository is the shared persistence surface for user-scoped, soft-deleted
// resume sections. Every query is bound to the owning user and to active
// rows; soft-deleted rows are invisible through this type.
type Repository[T any] struct {
	db       *gorm.DB
	ordering []string
}

// NewRepository builds a repository for the model type with the given list
// ordering clauses.
func NewRepository[T any](db *gorm.DB, ordering ...string) *Repository[T] {
	return &Repository[T]{db: db, ordering: ordering}
}

// WithTx returns a repository bound to the provided transaction handle.
func (r *Repository[T]) WithTx(tx *gorm.DB) *Repository[T] {
	return &Repository[T]{db: tx, ordering: r.ordering}
}

func (r *Repository[T]) scoped(ctx context.Context, userID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(new(T)).
		Where("user_id = ? AND is_active = ?", userID, true)
}

// Create inserts a new row.
func (r *Repository[T]) Create(ctx context.Context, row *T) (*T, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// ListByUser returns the user's active rows in the configured ordering.
func (r *Repository[T]) ListByUser(ctx context.Context, userID uuid.UUID) ([]T, error) {
	query := r.scoped(ctx, userID)
	for _, clause := range r.ordering {
		query = query.Order(clause)
	}

	var rows []T
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByIDs returns the subset of ids that resolve to active rows of the
// user, in the configured ordering. Missing ids are silently dropped.
func (r *Repository[T]) ListByIDs(ctx context.Context, ids []uuid.UUID, userID uuid.UUID) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	query := r.scoped(ctx, userID).Where("id IN ?", ids)
	for _, clause := range r.ordering {
		query = query.Order(clause)
	}

	var rows []T
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID loads a single active row of the user.
func (r *Repository[T]) FindByID(ctx context.Context, id, userID uuid.UUID) (*T, error) {
	var row T
	if err := r.scoped(ctx, userID).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// FindFirstByUser loads the user's single active row for singleton resources.
func (r *Repository[T]) FindFirstByUser(ctx context.Context, userID uuid.UUID) (*T, error) {
	var row T
	if err := r.scoped(ctx, userID).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// CountByUser counts the user's active rows.
func (r *Repository[T]) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.scoped(ctx, userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateColumns applies a partial update and reports the affected row count.
// Zero rows means the target does not exist, is inactive or is not owned by
// the user; callers translate that to a not-found result.
func (r *Repository[T]) UpdateColumns(ctx context.Context, id, userID uuid.UUID, columns map[string]any) (int64, error) {
	result := r.scoped(ctx, userID).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// SoftDelete deactivates the row and reports the affected row count.
func (r *Repository[T]) SoftDelete(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	result := r.scoped(ctx, userID).Where("id = ?", id).UpdateColumn("is_active", false)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
