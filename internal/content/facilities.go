package content

import (
	"context"

	"github.com/drishtilibrary/drishti-backend/pkg/db/models"
	pkgerrors "github.com/drishtilibrary/drishti-backend/pkg/errors"
	"github.com/drishtilibrary/drishti-backend/pkg/types"
)

const defaultFacilityIcon = "fa-check"

// FacilityInput is the admin payload for creating or replacing a facility.
type FacilityInput struct {
	Icon        string           `json:"icon"`
	Title       string           `json:"title" validate:"required"`
	Description string           `json:"description"`
	IsActive    bool             `json:"is_active"`
	SortOrder   types.LenientInt `json:"sort_order"`
}

// PublicFacility is the reduced projection served to the public site.
type PublicFacility struct {
	ID          int64  `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// FacilityService exposes facility operations.
type FacilityService interface {
	ListPublic(ctx context.Context) ([]PublicFacility, error)
	ListAll(ctx context.Context) ([]models.Facility, error)
	Add(ctx context.Context, input FacilityInput) error
	Update(ctx context.Context, id int64, input FacilityInput) error
	Delete(ctx context.Context, id int64) error
}

type facilityService struct {
	repo Repository
}

// NewFacilityService wires facility dependencies.
func NewFacilityService(repo Repository) (FacilityService, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "content repository required")
	}
	return &facilityService{repo: repo}, nil
}

func (s *facilityService) ListPublic(ctx context.Context) ([]PublicFacility, error) {
	rows, err := s.repo.ListFacilities(ctx, true)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Database error")
	}
	out := make([]PublicFacility, 0, len(rows))
	for _, row := range rows {
		out = append(out, PublicFacility{
			ID:          row.ID,
			Icon:        row.Icon,
			Title:       row.Title,
			Description: row.Description,
		})
	}
	return out, nil
}

func (s *facilityService) ListAll(ctx context.Context) ([]models.Facility, error) {
	rows, err := s.repo.ListFacilities(ctx, false)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Database error")
	}
	return rows, nil
}

func (s *facilityService) Add(ctx context.Context, input FacilityInput) error {
	if input.Title == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "title is required")
	}

	icon := input.Icon
	if icon == "" {
		icon = defaultFacilityIcon
	}
	facility := models.Facility{
		Icon:        icon,
		Title:       input.Title,
		Description: input.Description,
		IsActive:    true,
		SortOrder:   input.SortOrder.Int(),
	}
	if err := s.repo.CreateFacility(ctx, &facility); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Add failed")
	}
	return nil
}

func (s *facilityService) Update(ctx context.Context, id int64, input FacilityInput) error {
	if input.Title == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "title is required")
	}

	fields := map[string]any{
		"icon":        input.Icon,
		"title":       input.Title,
		"description": input.Description,
		"is_active":   input.IsActive,
		"sort_order":  input.SortOrder.Int(),
	}
	if err := s.repo.UpdateFacility(ctx, id, fields); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Update failed")
	}
	return nil
}

func (s *facilityService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteFacility(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Delete failed")
	}
	return nil
}
