package content

import (
	"context"

	"github.com/drishtilibrary/drishti-backend/pkg/db/models"
	pkgerrors "github.com/drishtilibrary/drishti-backend/pkg/errors"
	"github.com/drishtilibrary/drishti-backend/pkg/types"
)

// SlideInput is the admin payload for creating or replacing a hero slide.
// Update is a full-row replace: every field is written as supplied, so a
// payload without is_active stores false.
type SlideInput struct {
	ImageURL  string           `json:"image_url" validate:"required"`
	Title     string           `json:"title" validate:"required"`
	Subtitle  string           `json:"subtitle"`
	IsActive  bool             `json:"is_active"`
	SortOrder types.LenientInt `json:"sort_order"`
}

// PublicSlide is the reduced projection served to the public site.
type PublicSlide struct {
	ID       int64  `json:"id"`
	ImageURL string `json:"image_url"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// SlideService exposes hero slide operations.
type SlideService interface {
	ListPublic(ctx context.Context) ([]PublicSlide, error)
	ListAll(ctx context.Context) ([]models.HeroSlide, error)
	Add(ctx context.Context, input SlideInput) error
	Update(ctx context.Context, id int64, input SlideInput) error
	Delete(ctx context.Context, id int64) error
}

type slideService struct {
	repo Repository
}

// NewSlideService wires slide dependencies.
func NewSlideService(repo Repository) (SlideService, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "content repository required")
	}
	return &slideService{repo: repo}, nil
}

func (s *slideService) ListPublic(ctx context.Context) ([]PublicSlide, error) {
	rows, err := s.repo.ListSlides(ctx, true)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Database error")
	}
	out := make([]PublicSlide, 0, len(rows))
	for _, row := range rows {
		out = append(out, PublicSlide{
			ID:       row.ID,
			ImageURL: row.ImageURL,
			Title:    row.Title,
			Subtitle: row.Subtitle,
		})
	}
	return out, nil
}

func (s *slideService) ListAll(ctx context.Context) ([]models.HeroSlide, error) {
	rows, err := s.repo.ListSlides(ctx, false)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Database error")
	}
	return rows, nil
}

func (s *slideService) Add(ctx context.Context, input SlideInput) error {
	if input.ImageURL == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "image_url is required")
	}
	if input.Title == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "title is required")
	}

	// New rows are implicitly active; is_active in the payload is ignored.
	slide := models.HeroSlide{
		ImageURL:  input.ImageURL,
		Title:     input.Title,
		Subtitle:  input.Subtitle,
		IsActive:  true,
		SortOrder: input.SortOrder.Int(),
	}
	if err := s.repo.CreateSlide(ctx, &slide); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Add failed")
	}
	return nil
}

func (s *slideService) Update(ctx context.Context, id int64, input SlideInput) error {
	if input.ImageURL == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "image_url is required")
	}
	if input.Title == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "title is required")
	}

	fields := map[string]any{
		"image_url":  input.ImageURL,
		"title":      input.Title,
		"subtitle":   input.Subtitle,
		"is_active":  input.IsActive,
		"sort_order": input.SortOrder.Int(),
	}
	if err := s.repo.UpdateSlide(ctx, id, fields); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Update failed")
	}
	return nil
}

func (s *slideService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteSlide(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Delete failed")
	}
	return nil
}
