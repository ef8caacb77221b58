package formatter

import (
	"fmt"
	"strings"

	"github.com/haythamstudio/intake/internal/domain"
)

// RenderDraftList renders saved drafts, newest first.
func RenderDraftList(drafts []*domain.Draft) string {
	if len(drafts) == 0 {
		return Dim("No saved drafts.") + "\n"
	}

	var b strings.Builder
	b.WriteString(Header("Saved Drafts"))
	b.WriteString("\n")
	for _, d := range drafts {
		title := d.State.ProjectTitle
		if strings.TrimSpace(title) == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(&b, "  %s  %s %s\n",
			StyleBlue.Render(d.DisplayID()),
			title,
			Dim(d.UpdatedAt.Local().Format("2006-01-02 15:04")))
	}
	return b.String()
}
