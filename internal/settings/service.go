package settings

import (
	"context"
	"time"

	"github.com/drishtilibrary/drishti-backend/pkg/db/models"
	pkgerrors "github.com/drishtilibrary/drishti-backend/pkg/errors"
)

// Service exposes the site settings to the public site and the admin console.
type Service interface {
	// PublicMap collapses every stored setting into a flat key -> value map.
	PublicMap(ctx context.Context) (map[string]string, error)
	// ListAll returns the full row set, unprojected.
	ListAll(ctx context.Context) ([]models.Setting, error)
	// Set upserts a single key: insert if absent, replace if present.
	Set(ctx context.Context, key, value string) error
}

type service struct {
	repo Repository
}

// NewService wires settings dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "settings repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) PublicMap(ctx context.Context) (map[string]string, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Database error")
	}
	flat := make(map[string]string, len(rows))
	for _, row := range rows {
		flat[row.Key] = row.Value
	}
	return flat, nil
}

func (s *service) ListAll(ctx context.Context) ([]models.Setting, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Database error")
	}
	return rows, nil
}

func (s *service) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "key is required")
	}
	if err := s.repo.Upsert(ctx, key, value, time.Now().UTC()); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Update failed")
	}
	return nil
}
