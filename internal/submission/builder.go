package submission

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/haythamstudio/intake/internal/catalog"
	"github.com/haythamstudio/intake/internal/domain"
)

// Builder assembles outbound documents. IDs and Now are injectable so
// tests can pin the generated identifier and timestamp.
type Builder struct {
	IDs domain.IDGenerator
	Now func() time.Time
}

// NewBuilder returns a production builder using uuid ids and wall time.
func NewBuilder() Builder {
	return Builder{IDs: domain.UUIDGenerator{}, Now: time.Now}
}

// Build produces the submission document for an already-validated form.
// It does not re-validate: building from unvalidated state yields a
// well-formed but possibly half-empty document. Display labels are
// resolved from the catalog at build time, never from values cached in
// the form, so a fetched service list always wins over stale labels.
func (b Builder) Build(state domain.FormState, cat catalog.Catalog, tenantID string) Document {
	doc := Document{
		InquiryID:       "inq_" + b.IDs.NewID(),
		TenantID:        tenantID,
		CreatedAt:       b.Now().UTC().Format(time.RFC3339),
		Status:          domain.InquiryNew,
		Stage:           domain.StageInquiry,
		Client:          b.buildClient(state),
		Project:         b.buildProject(state, cat),
		Events:          b.buildEvents(state, cat),
		Deliverables:    b.buildDeliverables(state),
		AdditionalNotes: state.AdditionalNotes,
	}
	return doc
}

func (b Builder) buildClient(state domain.FormState) Client {
	client := Client{
		PrimaryContact: Contact{
			Name:  state.Primary.Name,
			Email: state.Primary.Email,
			Phone: state.Primary.Phone,
			Role:  strings.ToUpper(state.Primary.Role),
		},
	}
	// All-or-nothing: the secondary block rides on its name alone.
	if strings.TrimSpace(state.Secondary.Name) != "" {
		client.SecondaryContact = &Contact{
			Name:  state.Secondary.Name,
			Email: state.Secondary.Email,
			Phone: state.Secondary.Phone,
			Role:  strings.ToUpper(state.Secondary.Role),
		}
	}
	return client
}

func (b Builder) buildProject(state domain.FormState, cat catalog.Catalog) Project {
	typeLabel := ""
	if pt, ok := cat.ProjectType(state.ProjectType); ok {
		typeLabel = pt.Label
	}
	return Project{
		Title:               state.ProjectTitle,
		Type:                TypeRef{Key: state.ProjectType, Label: typeLabel},
		EstimatedGuestCount: parseGuestCount(state.EstimatedGuestCount),
		Currency:            domain.Currency,
		Budget: Budget{
			Min:   state.BudgetMin,
			Max:   state.BudgetMax,
			Label: state.BudgetLabel,
		},
	}
}

func (b Builder) buildEvents(state domain.FormState, cat catalog.Catalog) []Event {
	events := make([]Event, len(state.Events))
	for idx, e := range state.Events {
		eventLabel := ""
		if et, ok := cat.EventType(e.EventType); ok {
			eventLabel = et.Label
		}

		locations := make([]Location, len(e.Locations))
		for li, loc := range e.Locations {
			locations[li] = Location{
				Order:        li + 1,
				Name:         loc.Name,
				Address:      loc.Address,
				LocationType: loc.LocationType,
				Activity:     nullableString(loc.Activity),
			}
		}

		var services []ServiceLine
		for _, svc := range e.Services {
			if !svc.Selected() {
				continue
			}
			label := ""
			if s, ok := cat.Service(svc.ServiceKey); ok {
				label = s.Label
			}
			services = append(services, ServiceLine{
				Service:  TypeRef{Key: svc.ServiceKey, Label: label},
				Quantity: svc.Quantity,
				Notes:    nullableString(svc.Notes),
			})
		}

		events[idx] = Event{
			EventID:   fmt.Sprintf("evt_%03d", idx+1),
			EventType: TypeRef{Key: e.EventType, Label: eventLabel},
			Date:      e.Date,
			Time: EventTime{
				Start:    e.TimeStart,
				End:      e.TimeEnd,
				Timezone: domain.Timezone,
			},
			Locations: locations,
			Services:  services,
		}
	}
	return events
}

func (b Builder) buildDeliverables(state domain.FormState) Deliverables {
	outputs := make([]domain.VideoOutputSelection, len(state.VideoOutputs))
	copy(outputs, state.VideoOutputs)
	return Deliverables{
		DeliveryMethod: state.DeliveryMethod,
		PhotoBook: PhotoBook{
			Required: state.PhotobookRequired,
			Copies:   state.PhotobookCopies,
		},
		VideoOutputs: outputs,
	}
}

func parseGuestCount(raw string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &n
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
