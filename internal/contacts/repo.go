package contacts

import (
	"context"

	"gorm.io/gorm"

	"github.com/drishtilibrary/drishti-backend/pkg/db/models"
)

// Repository exposes persistence helpers for contact submissions.
type Repository interface {
	Create(ctx context.Context, submission *models.ContactSubmission) error
	List(ctx context.Context) ([]models.ContactSubmission, error)
	MarkRead(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a contacts repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) Create(ctx context.Context, submission *models.ContactSubmission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

func (r *repositoryImpl) List(ctx context.Context) ([]models.ContactSubmission, error) {
	var rows []models.ContactSubmission
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repositoryImpl) MarkRead(ctx context.Context, id int64) error {
	// Unconditional write; zero rows affected is not an error.
	return r.db.WithContext(ctx).
		Model(&models.ContactSubmission{}).
		Where("id = ?", id).
		UpdateColumn("is_read", true).Error
}

func (r *repositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ContactSubmission{}).Error
}
