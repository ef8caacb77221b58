package formatter

import (
	"fmt"
	"strings"

	"github.com/haythamstudio/intake/internal/catalog"
	"github.com/haythamstudio/intake/internal/domain"
)

// RenderReview renders the final review screen: everything the wizard
// collected, with catalogue keys resolved to display labels.
func RenderReview(state domain.FormState, cat catalog.Catalog) string {
	var b strings.Builder

	b.WriteString(Header("Review Your Inquiry"))
	b.WriteString("\n\n")

	b.WriteString(Bold("Contact"))
	b.WriteString("\n")
	writeContact(&b, "Primary", state.Primary)
	if !state.Secondary.Blank() {
		writeContact(&b, "Secondary", state.Secondary)
	}

	b.WriteString("\n")
	b.WriteString(Bold("Project"))
	b.WriteString("\n")
	writeField(&b, "Title", state.ProjectTitle)
	if pt, ok := cat.ProjectType(state.ProjectType); ok {
		writeField(&b, "Type", pt.Label)
	}
	if state.EstimatedGuestCount != "" {
		writeField(&b, "Guests", state.EstimatedGuestCount)
	}
	if state.BudgetLabel != "" {
		writeField(&b, "Budget", state.BudgetLabel)
	}

	b.WriteString("\n")
	b.WriteString(Bold(fmt.Sprintf("Events (%d)", len(state.Events))))
	b.WriteString("\n")
	for i, evt := range state.Events {
		writeEvent(&b, i+1, evt, cat)
	}

	b.WriteString("\n")
	b.WriteString(Bold("Deliverables"))
	b.WriteString("\n")
	if dm, ok := cat.DeliveryMethod(state.DeliveryMethod); ok {
		writeField(&b, "Delivery", dm.Label)
	}
	if state.PhotobookRequired {
		writeField(&b, "Photobook", fmt.Sprintf("%d copies", state.PhotobookCopies))
	}
	for _, vo := range state.VideoOutputs {
		label := vo.Key
		if out, ok := cat.VideoOutput(vo.Key); ok {
			label = out.Label
		}
		writeField(&b, "Video", fmt.Sprintf("%s (%s)", label, vo.Duration))
	}
	if strings.TrimSpace(state.AdditionalNotes) != "" {
		writeField(&b, "Notes", state.AdditionalNotes)
	}

	return b.String()
}

func writeContact(b *strings.Builder, label string, c domain.ContactInfo) {
	line := c.Name
	if c.Role != "" {
		line += Dim(" (" + c.Role + ")")
	}
	var details []string
	if c.Email != "" {
		details = append(details, c.Email)
	}
	if c.Phone != "" {
		details = append(details, c.Phone)
	}
	if len(details) > 0 {
		line += Dim(" · " + strings.Join(details, " · "))
	}
	writeField(b, label, line)
}

func writeEvent(b *strings.Builder, n int, evt domain.Event, cat catalog.Catalog) {
	title := fmt.Sprintf("Event %d", n)
	if et, ok := cat.EventType(evt.EventType); ok {
		title += ": " + et.Label
	}
	if evt.Date != "" {
		title += Dim(" on " + evt.Date)
	}
	if evt.TimeStart != "" && evt.TimeEnd != "" {
		title += Dim(fmt.Sprintf(" %s to %s", evt.TimeStart, evt.TimeEnd))
	}
	fmt.Fprintf(b, "  %s\n", title)

	for _, loc := range evt.Locations {
		if strings.TrimSpace(loc.Name) == "" {
			continue
		}
		line := loc.Name
		if lt, ok := cat.LocationType(loc.LocationType); ok {
			line += Dim(" · " + lt.Label)
		}
		if loc.Activity != "" {
			line += Dim(" · " + loc.Activity)
		}
		fmt.Fprintf(b, "    %s %s\n", StyleBlue.Render("◆"), line)
	}
	for _, line := range evt.Services {
		if !line.Selected() {
			continue
		}
		label := line.ServiceKey
		var qty string
		if svc, ok := cat.Service(line.ServiceKey); ok {
			label = svc.Label
			if catalog.QuantityRelevant(svc.PricingType) {
				qty = Dim(fmt.Sprintf(" × %d", line.Quantity))
			}
		}
		fmt.Fprintf(b, "    %s %s%s\n", StyleGreen.Render("●"), label, qty)
	}
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %s %s\n", Dim(label+":"), value)
}
