package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/haythamstudio/intake/internal/cli/formatter"
	"github.com/haythamstudio/intake/internal/domain"
	"github.com/spf13/cobra"
)

func newDraftCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Manage saved inquiry drafts",
	}

	cmd.AddCommand(
		newDraftListCmd(app),
		newDraftRemoveCmd(app),
	)

	return cmd
}

func newDraftListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved drafts",
		RunE: func(cmd *cobra.Command, args []string) error {
			drafts, err := app.Drafts.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderDraftList(drafts))
			return nil
		},
	}
}

func newDraftRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <draft-id>",
		Short: "Delete a saved draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			draft, err := resolveDraft(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Drafts.Delete(ctx, draft.ID); err != nil {
				return err
			}
			fmt.Println(formatter.Success("Deleted draft " + draft.DisplayID()))
			return nil
		},
	}
}

// resolveDraft finds a draft by exact id or unambiguous id prefix.
func resolveDraft(ctx context.Context, app *App, input string) (*domain.Draft, error) {
	if input == "" {
		return nil, fmt.Errorf("draft id is required")
	}

	drafts, err := app.Drafts.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, d := range drafts {
		if d.ID == input {
			return d, nil
		}
	}

	var matches []*domain.Draft
	for _, d := range drafts {
		if strings.HasPrefix(d.ID, input) {
			matches = append(matches, d)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("draft not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("draft id prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
