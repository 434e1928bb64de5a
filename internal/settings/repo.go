package settings

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/drishtilibrary/drishti-backend/pkg/db/models"
)

// Repository exposes persistence helpers for site settings.
type Repository interface {
	List(ctx context.Context) ([]models.Setting, error)
	Upsert(ctx context.Context, key, value string, now time.Time) error
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a settings repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) List(ctx context.Context) ([]models.Setting, error) {
	var rows []models.Setting
	if err := r.db.WithContext(ctx).Order("key").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repositoryImpl) Upsert(ctx context.Context, key, value string, now time.Time) error {
	row := models.Setting{Key: key, Value: value, UpdatedAt: now}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.Assignments(map[string]any{"value": value, "updated_at": now}),
		}).
		Create(&row).Error
}
