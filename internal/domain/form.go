package domain

import "strings"

const (
	MinQuantity = 1
	MaxQuantity = 1000
)

// ContactInfo holds one contact block. The secondary contact is optional
// and is included in a submission as a unit only when its name is set.
type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// Blank reports whether no field of the contact has been filled in.
func (c ContactInfo) Blank() bool {
	return strings.TrimSpace(c.Name) == "" &&
		strings.TrimSpace(c.Email) == "" &&
		strings.TrimSpace(c.Phone) == "" &&
		strings.TrimSpace(c.Role) == ""
}

// Location is one venue row inside an event. Only Name is required for the
// parent event to count as having a valid location.
type Location struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	LocationType string `json:"location_type"`
	Activity     string `json:"activity"`
}

// ServiceLine is one requested service row inside an event. Lines with an
// empty ServiceKey are treated as unselected and never leave the form.
type ServiceLine struct {
	ID         string `json:"id"`
	ServiceKey string `json:"service_key"`
	Quantity   int    `json:"quantity"`
	Notes      string `json:"notes"`
}

// Selected reports whether the line carries a chosen service.
func (s ServiceLine) Selected() bool {
	return strings.TrimSpace(s.ServiceKey) != ""
}

// ClampQuantity bounds a service quantity to [MinQuantity, MaxQuantity].
func ClampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}

// VideoOutputSelection is a chosen video output with its requested
// duration. Deselecting an output removes the entry entirely.
type VideoOutputSelection struct {
	Key      string `json:"key"`
	Duration string `json:"duration"`
}

// Event is one shoot date with its venues and requested services. An event
// always holds at least one location and one service line; the editors
// refuse a removal that would leave either collection empty.
type Event struct {
	ID        string        `json:"id"`
	EventType string        `json:"event_type"`
	Date      string        `json:"date"`
	TimeStart string        `json:"time_start"`
	TimeEnd   string        `json:"time_end"`
	Locations []Location    `json:"locations"`
	Services  []ServiceLine `json:"services"`
}

// HasNamedLocation reports whether at least one location has a venue name.
func (e Event) HasNamedLocation() bool {
	for _, loc := range e.Locations {
		if strings.TrimSpace(loc.Name) != "" {
			return true
		}
	}
	return false
}

// HasSelectedService reports whether at least one service line is selected.
func (e Event) HasSelectedService() bool {
	for _, svc := range e.Services {
		if svc.Selected() {
			return true
		}
	}
	return false
}

// FormState is the aggregate of everything collected by the inquiry
// wizard. It is mutated only through the wizard's editors and setters,
// each of which works on a fresh snapshot (see Clone).
type FormState struct {
	Primary   ContactInfo `json:"primary"`
	Secondary ContactInfo `json:"secondary"`

	ProjectTitle        string `json:"project_title"`
	ProjectType         string `json:"project_type"`
	EstimatedGuestCount string `json:"estimated_guest_count"`
	BudgetMin           int    `json:"budget_min"`
	BudgetMax           *int   `json:"budget_max"`
	BudgetLabel         string `json:"budget_label"`

	Events []Event `json:"events"`

	DeliveryMethod    string                 `json:"delivery_method"`
	PhotobookRequired bool                   `json:"photobook_required"`
	PhotobookCopies   int                    `json:"photobook_copies"`
	VideoOutputs      []VideoOutputSelection `json:"video_outputs"`

	AdditionalNotes string `json:"additional_notes"`
}

// NewFormState creates an all-empty form seeded with exactly one empty
// event, matching what a fresh inquiry session starts from.
func NewFormState(ids IDGenerator) FormState {
	return FormState{
		Events:          []Event{NewEvent(ids)},
		PhotobookCopies: 1,
	}
}

// NewEvent creates an empty event pre-populated with one empty location
// and one empty service line.
func NewEvent(ids IDGenerator) Event {
	return Event{
		ID:        ids.NewID(),
		Locations: []Location{NewLocation(ids)},
		Services:  []ServiceLine{NewServiceLine(ids)},
	}
}

// NewLocation creates an all-blank location row.
func NewLocation(ids IDGenerator) Location {
	return Location{ID: ids.NewID()}
}

// NewServiceLine creates an unselected service row with the default quantity.
func NewServiceLine(ids IDGenerator) ServiceLine {
	return ServiceLine{ID: ids.NewID(), Quantity: MinQuantity}
}

// Clone returns a deep copy of the form state. Editors mutate the copy and
// swap it in, so earlier snapshots never alias the live state.
func (f FormState) Clone() FormState {
	out := f
	out.Events = make([]Event, len(f.Events))
	for i, e := range f.Events {
		out.Events[i] = e.clone()
	}
	if f.VideoOutputs != nil {
		out.VideoOutputs = make([]VideoOutputSelection, len(f.VideoOutputs))
		copy(out.VideoOutputs, f.VideoOutputs)
	}
	return out
}

func (e Event) clone() Event {
	out := e
	out.Locations = make([]Location, len(e.Locations))
	copy(out.Locations, e.Locations)
	out.Services = make([]ServiceLine, len(e.Services))
	copy(out.Services, e.Services)
	return out
}

// EventIndex returns the 0-based position of the event with the given id,
// or -1 when absent.
func (f FormState) EventIndex(eventID string) int {
	for i, e := range f.Events {
		if e.ID == eventID {
			return i
		}
	}
	return -1
}
