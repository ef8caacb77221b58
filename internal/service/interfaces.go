package service

import (
	"context"

	"github.com/haythamstudio/intake/internal/catalog"
	"github.com/haythamstudio/intake/internal/domain"
)

// SubmitOutcome describes how the remote endpoint disposed of a submission.
type SubmitOutcome int

const (
	// OutcomeAccepted means the inquiry was recorded by the studio.
	OutcomeAccepted SubmitOutcome = iota
	// OutcomeAlreadyUsed means the booking link was consumed by an earlier
	// submission. The link is terminal; retrying cannot succeed.
	OutcomeAlreadyUsed
)

type InquiryService interface {
	// LoadServices fetches the tenant's service menu and returns a catalogue
	// with the fetched services applied as an override. A failed or invalid
	// fetch returns the error; callers decide whether to fall back.
	LoadServices(ctx context.Context, tenantID, token string) (catalog.Catalog, error)
	// Submit builds the inquiry document from the form state and posts it.
	Submit(ctx context.Context, state domain.FormState, cat catalog.Catalog, tenantID, token string) (SubmitOutcome, error)
}

type DraftService interface {
	Save(ctx context.Context, d *domain.Draft) (*domain.Draft, error)
	GetByID(ctx context.Context, id string) (*domain.Draft, error)
	List(ctx context.Context) ([]*domain.Draft, error)
	Delete(ctx context.Context, id string) error
}
