package cli

import (
	"context"
	"fmt"

	"github.com/haythamstudio/intake/internal/catalog"
	"github.com/haythamstudio/intake/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// newServicesCmd prints the service menu for a booking link, or the
// built-in defaults when no link is given. Handy for checking a link
// before sitting down to fill in the whole wizard.
func newServicesCmd(app *App) *cobra.Command {
	var tenantID, token string

	cmd := &cobra.Command{
		Use:   "services",
		Short: "Show the available services",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := app.Catalog
			if token != "" {
				if tenantID == "" {
					return fmt.Errorf("--tenant is required with --token")
				}
				fetched, err := app.Inquiries.LoadServices(context.Background(), tenantID, token)
				if err != nil {
					return err
				}
				cat = fetched
			}

			fmt.Println(formatter.Header("Services"))
			for _, svc := range cat.Services() {
				fmt.Println(renderServiceLine(svc))
			}
			if !cat.HasServiceOverride() {
				fmt.Println(formatter.Dim("\n(built-in menu; pass --tenant and --token to see a studio's own list)"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tenantID, "tenant", "", "Studio tenant id")
	cmd.Flags().StringVar(&token, "token", "", "Single-use booking link token")

	return cmd
}

func renderServiceLine(svc catalog.Service) string {
	line := fmt.Sprintf("  %s %s", formatter.StyleGreen.Render("●"), formatter.Bold(svc.Label))
	if svc.Category != "" {
		line += formatter.Dim(" · " + svc.Category)
	}
	if svc.Description != "" {
		line += "\n    " + formatter.Dim(svc.Description)
	}
	return line
}
