package content

import (
	"context"

	"github.com/drishtilibrary/drishti-backend/pkg/db/models"
	pkgerrors "github.com/drishtilibrary/drishti-backend/pkg/errors"
	"github.com/drishtilibrary/drishti-backend/pkg/types"
)

// GalleryInput is the admin payload for creating or replacing a gallery image.
type GalleryInput struct {
	ImageURL  string           `json:"image_url" validate:"required"`
	Caption   string           `json:"caption"`
	IsActive  bool             `json:"is_active"`
	SortOrder types.LenientInt `json:"sort_order"`
}

// PublicGalleryImage is the reduced projection served to the public site.
type PublicGalleryImage struct {
	ID       int64  `json:"id"`
	ImageURL string `json:"image_url"`
	Caption  string `json:"caption"`
}

// GalleryService exposes gallery image operations.
type GalleryService interface {
	ListPublic(ctx context.Context) ([]PublicGalleryImage, error)
	ListAll(ctx context.Context) ([]models.GalleryImage, error)
	Add(ctx context.Context, input GalleryInput) error
	Update(ctx context.Context, id int64, input GalleryInput) error
	Delete(ctx context.Context, id int64) error
}

type galleryService struct {
	repo Repository
}

// NewGalleryService wires gallery dependencies.
func NewGalleryService(repo Repository) (GalleryService, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "content repository required")
	}
	return &galleryService{repo: repo}, nil
}

func (s *galleryService) ListPublic(ctx context.Context) ([]PublicGalleryImage, error) {
	rows, err := s.repo.ListGalleryImages(ctx, true)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Database error")
	}
	out := make([]PublicGalleryImage, 0, len(rows))
	for _, row := range rows {
		out = append(out, PublicGalleryImage{
			ID:       row.ID,
			ImageURL: row.ImageURL,
			Caption:  row.Caption,
		})
	}
	return out, nil
}

func (s *galleryService) ListAll(ctx context.Context) ([]models.GalleryImage, error) {
	rows, err := s.repo.ListGalleryImages(ctx, false)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Database error")
	}
	return rows, nil
}

func (s *galleryService) Add(ctx context.Context, input GalleryInput) error {
	if input.ImageURL == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "image_url is required")
	}

	image := models.GalleryImage{
		ImageURL:  input.ImageURL,
		Caption:   input.Caption,
		IsActive:  true,
		SortOrder: input.SortOrder.Int(),
	}
	if err := s.repo.CreateGalleryImage(ctx, &image); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Add failed")
	}
	return nil
}

func (s *galleryService) Update(ctx context.Context, id int64, input GalleryInput) error {
	if input.ImageURL == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "image_url is required")
	}

	fields := map[string]any{
		"image_url":  input.ImageURL,
		"caption":    input.Caption,
		"is_active":  input.IsActive,
		"sort_order": input.SortOrder.Int(),
	}
	if err := s.repo.UpdateGalleryImage(ctx, id, fields); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Update failed")
	}
	return nil
}

func (s *galleryService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteGalleryImage(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Delete failed")
	}
	return nil
}
