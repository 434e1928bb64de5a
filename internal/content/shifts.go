package content

import (
	"context"

	"github.com/drishtilibrary/drishti-backend/pkg/db/models"
	pkgerrors "github.com/drishtilibrary/drishti-backend/pkg/errors"
	"github.com/drishtilibrary/drishti-backend/pkg/types"
)

const defaultShiftIcon = "fa-clock"

// ShiftInput is the admin payload for creating or replacing a shift.
type ShiftInput struct {
	Icon        string           `json:"icon"`
	TimeSlot    string           `json:"time_slot" validate:"required"`
	Description string           `json:"description"`
	IsActive    bool             `json:"is_active"`
	SortOrder   types.LenientInt `json:"sort_order"`
}

// PublicShift is the reduced projection served to the public site.
type PublicShift struct {
	ID          int64  `json:"id"`
	Icon        string `json:"icon"`
	TimeSlot    string `json:"time_slot"`
	Description string `json:"description"`
}

// ShiftService exposes shift operations.
type ShiftService interface {
	ListPublic(ctx context.Context) ([]PublicShift, error)
	ListAll(ctx context.Context) ([]models.Shift, error)
	Add(ctx context.Context, input ShiftInput) error
	Update(ctx context.Context, id int64, input ShiftInput) error
	Delete(ctx context.Context, id int64) error
}

type shiftService struct {
	repo Repository
}

// NewShiftService wires shift dependencies.
func NewShiftService(repo Repository) (ShiftService, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "content repository required")
	}
	return &shiftService{repo: repo}, nil
}

func (s *shiftService) ListPublic(ctx context.Context) ([]PublicShift, error) {
	rows, err := s.repo.ListShifts(ctx, true)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Database error")
	}
	out := make([]PublicShift, 0, len(rows))
	for _, row := range rows {
		out = append(out, PublicShift{
			ID:          row.ID,
			Icon:        row.Icon,
			TimeSlot:    row.TimeSlot,
			Description: row.Description,
		})
	}
	return out, nil
}

func (s *shiftService) ListAll(ctx context.Context) ([]models.Shift, error) {
	rows, err := s.repo.ListShifts(ctx, false)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Database error")
	}
	return rows, nil
}

func (s *shiftService) Add(ctx context.Context, input ShiftInput) error {
	if input.TimeSlot == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "time_slot is required")
	}

	icon := input.Icon
	if icon == "" {
		icon = defaultShiftIcon
	}
	shift := models.Shift{
		Icon:        icon,
		TimeSlot:    input.TimeSlot,
		Description: input.Description,
		IsActive:    true,
		SortOrder:   input.SortOrder.Int(),
	}
	if err := s.repo.CreateShift(ctx, &shift); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Add failed")
	}
	return nil
}

func (s *shiftService) Update(ctx context.Context, id int64, input ShiftInput) error {
	if input.TimeSlot == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "time_slot is required")
	}

	fields := map[string]any{
		"icon":        input.Icon,
		"time_slot":   input.TimeSlot,
		"description": input.Description,
		"is_active":   input.IsActive,
		"sort_order":  input.SortOrder.Int(),
	}
	if err := s.repo.UpdateShift(ctx, id, fields); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Update failed")
	}
	return nil
}

func (s *shiftService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteShift(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Delete failed")
	}
	return nil
}
