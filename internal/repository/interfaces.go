package repository

import (
	"context"
	"errors"

	"github.com/haythamstudio/intake/internal/domain"
)

// ErrNotFound is returned when a draft id does not exist.
var ErrNotFound = errors.New("draft not found")

// DraftRepo persists resumable inquiry drafts.
type DraftRepo interface {
	Create(ctx context.Context, d *domain.Draft) error
	GetByID(ctx context.Context, id string) (*domain.Draft, error)
	List(ctx context.Context) ([]*domain.Draft, error)
	Update(ctx context.Context, d *domain.Draft) error
	Delete(ctx context.Context, id string) error
}
