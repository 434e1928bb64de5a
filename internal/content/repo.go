package content

import (
	"context"

	"gorm.io/gorm"

	"github.com/drishtilibrary/drishti-backend/pkg/db/models"
)

// Repository exposes persistence helpers for the four ordered content
// collections. Every operation is a single-row effect; display ordering is
// sort_order ascending with insertion order breaking ties.
type Repository interface {
	ListSlides(ctx context.Context, onlyActive bool) ([]models.HeroSlide, error)
	CreateSlide(ctx context.Context, slide *models.HeroSlide) error
	UpdateSlide(ctx context.Context, id int64, fields map[string]any) error
	DeleteSlide(ctx context.Context, id int64) error

	ListGalleryImages(ctx context.Context, onlyActive bool) ([]models.GalleryImage, error)
	CreateGalleryImage(ctx context.Context, image *models.GalleryImage) error
	UpdateGalleryImage(ctx context.Context, id int64, fields map[string]any) error
	DeleteGalleryImage(ctx context.Context, id int64) error

	ListShifts(ctx context.Context, onlyActive bool) ([]models.Shift, error)
	CreateShift(ctx context.Context, shift *models.Shift) error
	UpdateShift(ctx context.Context, id int64, fields map[string]any) error
	DeleteShift(ctx context.Context, id int64) error

	ListFacilities(ctx context.Context, onlyActive bool) ([]models.Facility, error)
	CreateFacility(ctx context.Context, facility *models.Facility) error
	UpdateFacility(ctx context.Context, id int64, fields map[string]any) error
	DeleteFacility(ctx context.Context, id int64) error
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a content repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) ordered(ctx context.Context, onlyActive bool) *gorm.DB {
	query := r.db.WithContext(ctx).Order("sort_order, id")
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	return query
}

func (r *repositoryImpl) ListSlides(ctx context.Context, onlyActive bool) ([]models.HeroSlide, error) {
	var rows []models.HeroSlide
	if err := r.ordered(ctx, onlyActive).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repositoryImpl) CreateSlide(ctx context.Context, slide *models.HeroSlide) error {
	return r.db.WithContext(ctx).Create(slide).Error
}

func (r *repositoryImpl) UpdateSlide(ctx context.Context, id int64, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.HeroSlide{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repositoryImpl) DeleteSlide(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.HeroSlide{}).Error
}

func (r *repositoryImpl) ListGalleryImages(ctx context.Context, onlyActive bool) ([]models.GalleryImage, error) {
	var rows []models.GalleryImage
	if err := r.ordered(ctx, onlyActive).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repositoryImpl) CreateGalleryImage(ctx context.Context, image *models.GalleryImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *repositoryImpl) UpdateGalleryImage(ctx context.Context, id int64, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.GalleryImage{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repositoryImpl) DeleteGalleryImage(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.GalleryImage{}).Error
}

func (r *repositoryImpl) ListShifts(ctx context.Context, onlyActive bool) ([]models.Shift, error) {
	var rows []models.Shift
	if err := r.ordered(ctx, onlyActive).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repositoryImpl) CreateShift(ctx context.Context, shift *models.Shift) error {
	return r.db.WithContext(ctx).Create(shift).Error
}

func (r *repositoryImpl) UpdateShift(ctx context.Context, id int64, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.Shift{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repositoryImpl) DeleteShift(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Shift{}).Error
}

func (r *repositoryImpl) ListFacilities(ctx context.Context, onlyActive bool) ([]models.Facility, error) {
	var rows []models.Facility
	if err := r.ordered(ctx, onlyActive).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repositoryImpl) CreateFacility(ctx context.Context, facility *models.Facility) error {
	return r.db.WithContext(ctx).Create(facility).Error
}

func (r *repositoryImpl) UpdateFacility(ctx context.Context, id int64, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.Facility{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repositoryImpl) DeleteFacility(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Facility{}).Error
}
