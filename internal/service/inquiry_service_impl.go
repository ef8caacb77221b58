package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/haythamstudio/intake/internal/booking"
	"github.com/haythamstudio/intake/internal/catalog"
	"github.com/haythamstudio/intake/internal/domain"
	"github.com/haythamstudio/intake/internal/submission"
)

// ErrSubmitInFlight is returned when a second Submit races an ongoing one.
var ErrSubmitInFlight = errors.New("submission already in progress")

type inquiryService struct {
	api     booking.Client
	builder submission.Builder

	inFlight atomic.Bool
}

func NewInquiryService(api booking.Client) InquiryService {
	return &inquiryService{api: api, builder: submission.NewBuilder()}
}

func (s *inquiryService) LoadServices(ctx context.Context, tenantID, token string) (catalog.Catalog, error) {
	records, err := s.api.FetchServices(ctx, tenantID, token)
	if err != nil {
		return catalog.Catalog{}, err
	}
	services := make([]catalog.Service, 0, len(records))
	for _, r := range records {
		services = append(services, serviceFromRecord(r))
	}
	return catalog.Default().WithServices(services), nil
}

func (s *inquiryService) Submit(ctx context.Context, state domain.FormState, cat catalog.Catalog, tenantID, token string) (SubmitOutcome, error) {
	// Single-use links make duplicate posts destructive, so concurrent
	// submits are refused rather than queued.
	if !s.inFlight.CompareAndSwap(false, true) {
		return OutcomeAccepted, ErrSubmitInFlight
	}
	defer s.inFlight.Store(false)

	doc := s.builder.Build(state, cat, tenantID)
	err := s.api.Submit(ctx, &doc, tenantID, token)
	if errors.Is(err, booking.ErrLinkUsed) {
		return OutcomeAlreadyUsed, nil
	}
	if err != nil {
		return OutcomeAccepted, fmt.Errorf("submitting inquiry: %w", err)
	}
	return OutcomeAccepted, nil
}

// serviceFromRecord maps an API service row into the catalogue shape. Rows
// with a blank category group under "Other".
func serviceFromRecord(r booking.ServiceRecord) catalog.Service {
	category := r.CategoryName
	if category == "" {
		category = "Other"
	}
	return catalog.Service{
		Key:          r.ServiceKey,
		Label:        r.ServiceName,
		Category:     category,
		ID:           r.ID,
		BasePrice:    r.BasePrice,
		PricingType:  domain.PricingType(r.PricingType),
		Description:  r.Description,
		Deliverables: r.Deliverables,
	}
}
