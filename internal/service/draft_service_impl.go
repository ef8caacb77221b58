package service

import (
	"context"
	"time"

	"github.com/haythamstudio/intake/internal/domain"
	"github.com/haythamstudio/intake/internal/repository"
	"github.com/google/uuid"
)

type draftService struct {
	drafts repository.DraftRepo
}

func NewDraftService(drafts repository.DraftRepo) DraftService {
	return &draftService{drafts: drafts}
}

// Save creates the draft on first call and updates it afterwards, keyed by
// whether the draft already carries an id.
func (s *draftService) Save(ctx context.Context, d *domain.Draft) (*domain.Draft, error) {
	now := time.Now().UTC()
	d.UpdatedAt = now
	if d.ID == "" {
		d.ID = uuid.New().String()
		d.CreatedAt = now
		if err := s.drafts.Create(ctx, d); err != nil {
			return nil, err
		}
		return d, nil
	}
	if err := s.drafts.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *draftService) GetByID(ctx context.Context, id string) (*domain.Draft, error) {
	return s.drafts.GetByID(ctx, id)
}

func (s *draftService) List(ctx context.Context) ([]*domain.Draft, error) {
	return s.drafts.List(ctx)
}

func (s *draftService) Delete(ctx context.Context, id string) error {
	return s.drafts.Delete(ctx, id)
}
