package cli

import (
	"github.com/haythamstudio/intake/internal/catalog"
	"github.com/haythamstudio/intake/internal/domain"
	"github.com/haythamstudio/intake/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Inquiries service.InquiryService
	Drafts    service.DraftService

	// Catalog is the built-in reference dataset, used whenever no
	// tokenized service list is in effect.
	Catalog catalog.Catalog

	// IDs generates event, location, and service row ids.
	IDs domain.IDGenerator

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "intake" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "intake",
		Short: "Photography inquiry wizard",
		Long:  "Guided intake wizard for photography project inquiries: contact, project, events, deliverables, submit.",
	}

	root.AddCommand(
		newStartCmd(app),
		newDraftCmd(app),
		newServicesCmd(app),
	)

	return root
}
