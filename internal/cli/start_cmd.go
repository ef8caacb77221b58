package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/haythamstudio/intake/internal/booking"
	"github.com/haythamstudio/intake/internal/catalog"
	"github.com/haythamstudio/intake/internal/cli/formatter"
	"github.com/haythamstudio/intake/internal/domain"
	"github.com/haythamstudio/intake/internal/wizard"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	var tenantID, token, resumeID string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start or resume an inquiry",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("the inquiry wizard needs an interactive terminal")
			}
			ctx := context.Background()

			draft, err := loadDraft(ctx, app, resumeID)
			if err != nil {
				return err
			}
			if draft != nil {
				// A resumed draft keeps its original link.
				tenantID = draft.TenantID
				token = draft.Token
			}
			if tenantID == "" {
				return fmt.Errorf("--tenant is required")
			}

			cat, err := sessionCatalog(ctx, app, tenantID, token)
			if err != nil {
				return err
			}

			form := wizard.NewForm(cat, app.IDs)
			if draft == nil {
				draft = &domain.Draft{TenantID: tenantID, Token: token, State: form.State()}
			} else {
				form.Restore(draft.State)
			}

			return newWizardSession(app, form, draft, tenantID, token).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&tenantID, "tenant", "", "Studio tenant id")
	cmd.Flags().StringVar(&token, "token", "", "Single-use booking link token")
	cmd.Flags().StringVar(&resumeID, "resume", "", "Draft id to resume")

	return cmd
}

func loadDraft(ctx context.Context, app *App, resumeID string) (*domain.Draft, error) {
	if resumeID == "" {
		return nil, nil
	}
	draft, err := resolveDraft(ctx, app, resumeID)
	if err != nil {
		return nil, err
	}
	fmt.Println(formatter.Dim("Resuming draft " + draft.DisplayID()))
	return draft, nil
}

// sessionCatalog resolves the catalogue for the session. A tokenized link
// must produce a fetched service list; the legacy tenant path runs on the
// built-in defaults.
func sessionCatalog(ctx context.Context, app *App, tenantID, token string) (catalog.Catalog, error) {
	if token == "" {
		return app.Catalog, nil
	}

	fmt.Println(formatter.Dim("Checking your booking link…"))
	cat, err := app.Inquiries.LoadServices(ctx, tenantID, token)
	if errors.Is(err, booking.ErrLinkInvalid) {
		return catalog.Catalog{}, fmt.Errorf("this booking link is invalid or has expired: %w", err)
	}
	if err != nil {
		return catalog.Catalog{}, err
	}
	return cat, nil
}
