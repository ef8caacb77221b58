package cli

import (
	"context"
	"fmt"
	"testing"

	"github.com/haythamstudio/intake/internal/booking"
	"github.com/haythamstudio/intake/internal/catalog"
	"github.com/haythamstudio/intake/internal/domain"
	"github.com/haythamstudio/intake/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInquiryService struct {
	cat       catalog.Catalog
	loadErr   error
	outcome   service.SubmitOutcome
	submitErr error
}

func (f *fakeInquiryService) LoadServices(ctx context.Context, tenantID, token string) (catalog.Catalog, error) {
	return f.cat, f.loadErr
}

func (f *fakeInquiryService) Submit(ctx context.Context, state domain.FormState, cat catalog.Catalog, tenantID, token string) (service.SubmitOutcome, error) {
	return f.outcome, f.submitErr
}

type fakeDraftService struct {
	drafts []*domain.Draft
}

func (f *fakeDraftService) Save(ctx context.Context, d *domain.Draft) (*domain.Draft, error) {
	if d.ID == "" {
		d.ID = fmt.Sprintf("draft-%d", len(f.drafts)+1)
		f.drafts = append(f.drafts, d)
	}
	return d, nil
}

func (f *fakeDraftService) GetByID(ctx context.Context, id string) (*domain.Draft, error) {
	for _, d := range f.drafts {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, fmt.Errorf("draft not found")
}

func (f *fakeDraftService) List(ctx context.Context) ([]*domain.Draft, error) {
	return f.drafts, nil
}

func (f *fakeDraftService) Delete(ctx context.Context, id string) error {
	for i, d := range f.drafts {
		if d.ID == id {
			f.drafts = append(f.drafts[:i], f.drafts[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("draft not found")
}

func testApp(inquiries service.InquiryService, drafts service.DraftService) *App {
	return &App{
		Inquiries:     inquiries,
		Drafts:        drafts,
		Catalog:       catalog.Default(),
		IDs:           &domain.SequentialIDGenerator{Prefix: "evt"},
		IsInteractive: func() bool { return false },
	}
}

func TestResolveDraft(t *testing.T) {
	drafts := &fakeDraftService{drafts: []*domain.Draft{
		{ID: "abc12345-aaaa"},
		{ID: "abd99999-bbbb"},
	}}
	app := testApp(&fakeInquiryService{}, drafts)
	ctx := context.Background()

	got, err := resolveDraft(ctx, app, "abc12345-aaaa")
	require.NoError(t, err)
	assert.Equal(t, "abc12345-aaaa", got.ID)

	got, err = resolveDraft(ctx, app, "abd")
	require.NoError(t, err)
	assert.Equal(t, "abd99999-bbbb", got.ID)

	_, err = resolveDraft(ctx, app, "ab")
	assert.ErrorContains(t, err, "ambiguous")

	_, err = resolveDraft(ctx, app, "zzz")
	assert.ErrorContains(t, err, "not found")

	_, err = resolveDraft(ctx, app, "")
	assert.ErrorContains(t, err, "required")
}

func TestSessionCatalog_LegacyUsesDefaults(t *testing.T) {
	app := testApp(&fakeInquiryService{loadErr: booking.ErrLinkInvalid}, &fakeDraftService{})

	cat, err := sessionCatalog(context.Background(), app, "studio-1", "")
	require.NoError(t, err)
	assert.False(t, cat.HasServiceOverride(), "no token means the built-in menu, no fetch")
}

func TestSessionCatalog_TokenFetches(t *testing.T) {
	fetched := catalog.Default().WithServices([]catalog.Service{{Key: "DRONE", Label: "Drone"}})
	app := testApp(&fakeInquiryService{cat: fetched}, &fakeDraftService{})

	cat, err := sessionCatalog(context.Background(), app, "studio-1", "tok")
	require.NoError(t, err)
	require.True(t, cat.HasServiceOverride())
	assert.Len(t, cat.Services(), 1)
}

func TestSessionCatalog_InvalidLink(t *testing.T) {
	app := testApp(&fakeInquiryService{loadErr: booking.ErrLinkInvalid}, &fakeDraftService{})

	_, err := sessionCatalog(context.Background(), app, "studio-1", "tok")
	assert.ErrorIs(t, err, booking.ErrLinkInvalid)
	assert.ErrorContains(t, err, "invalid or has expired")
}

func TestStartCmd_RequiresTerminal(t *testing.T) {
	app := testApp(&fakeInquiryService{}, &fakeDraftService{})
	cmd := NewRootCmd(app)
	cmd.SetArgs([]string{"start", "--tenant", "studio-1"})

	err := cmd.Execute()
	assert.ErrorContains(t, err, "interactive terminal")
}

func TestMenuActionEncoding(t *testing.T) {
	assert.Equal(t, "edit:evt-001", editAction("evt-001"))
	assert.Equal(t, "remove:evt-001", removeAction("evt-001"))
}
