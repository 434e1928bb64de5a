package contacts

import (
	"context"
	"time"

	"github.com/drishtilibrary/drishti-backend/pkg/db/models"
	pkgerrors "github.com/drishtilibrary/drishti-backend/pkg/errors"
)

// SubmitInput is the public contact form payload.
type SubmitInput struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	ShiftPreference string `json:"shift_preference"`
	Message         string `json:"message"`
}

// Service accepts public lead-capture submissions and exposes them for admin
// triage.
type Service interface {
	Submit(ctx context.Context, input SubmitInput) error
	List(ctx context.Context) ([]models.ContactSubmission, error)
	MarkRead(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

// NewService wires contact submission dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "contacts repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Submit(ctx context.Context, input SubmitInput) error {
	if input.Name == "" || input.Phone == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "Name and phone are required")
	}

	submission := models.ContactSubmission{
		Name:            input.Name,
		Phone:           input.Phone,
		ShiftPreference: input.ShiftPreference,
		Message:         input.Message,
		IsRead:          false,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, &submission); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Submission failed")
	}
	return nil
}

func (s *service) List(ctx context.Context) ([]models.ContactSubmission, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Database error")
	}
	return rows, nil
}

func (s *service) MarkRead(ctx context.Context, id int64) error {
	if err := s.repo.MarkRead(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Update failed")
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Delete failed")
	}
	return nil
}
