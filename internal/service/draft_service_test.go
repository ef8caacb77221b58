package service

import (
	"context"
	"testing"

	"github.com/haythamstudio/intake/internal/domain"
	"github.com/haythamstudio/intake/internal/repository"
	"github.com/haythamstudio/intake/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDraftService(t *testing.T) DraftService {
	return NewDraftService(repository.NewSQLiteDraftRepo(testutil.NewTestDB(t)))
}

func TestDraftService_SaveAssignsID(t *testing.T) {
	svc := newDraftService(t)
	ctx := context.Background()

	d := &domain.Draft{
		TenantID: "studio-1",
		Token:    "tok",
		State:    domain.NewFormState(&domain.SequentialIDGenerator{Prefix: "evt"}),
	}
	saved, err := svc.Save(ctx, d)
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())
	assert.Equal(t, saved.CreatedAt, saved.UpdatedAt)
}

func TestDraftService_SaveUpdatesExisting(t *testing.T) {
	svc := newDraftService(t)
	ctx := context.Background()

	d := &domain.Draft{
		TenantID: "studio-1",
		Token:    "tok",
		State:    domain.NewFormState(&domain.SequentialIDGenerator{Prefix: "evt"}),
	}
	saved, err := svc.Save(ctx, d)
	require.NoError(t, err)
	id := saved.ID

	saved.State.ProjectTitle = "Monsoon Elopement"
	again, err := svc.Save(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, id, again.ID)

	got, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Monsoon Elopement", got.State.ProjectTitle)

	drafts, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, drafts, 1, "saving twice never forks the draft")
}

func TestDraftService_Delete(t *testing.T) {
	svc := newDraftService(t)
	ctx := context.Background()

	saved, err := svc.Save(ctx, &domain.Draft{
		TenantID: "studio-1",
		State:    domain.NewFormState(&domain.SequentialIDGenerator{Prefix: "evt"}),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, saved.ID))
	_, err = svc.GetByID(ctx, saved.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
