package wizard

import (
	"strconv"
	"strings"

	"github.com/haythamstudio/intake/internal/catalog"
	"github.com/haythamstudio/intake/internal/domain"
)

// Field names accepted by the collection editors.
const (
	FieldEventType = "event_type"
	FieldDate      = "date"
	FieldTimeStart = "time_start"
	FieldTimeEnd   = "time_end"

	FieldName         = "name"
	FieldAddress      = "address"
	FieldLocationType = "location_type"
	FieldActivity     = "activity"

	FieldServiceKey = "service_key"
	FieldQuantity   = "quantity"
	FieldNotes      = "notes"
)

// Form owns the collected state for one inquiry session together with the
// current validation errors. Every mutation works on a fresh deep copy of
// the state and swaps it in, so snapshots handed out earlier never change
// underneath their holders.
type Form struct {
	state  domain.FormState
	errors ErrorMap
	ids    domain.IDGenerator
	cat    catalog.Catalog
}

// NewForm creates a form seeded with one empty event.
func NewForm(cat catalog.Catalog, ids domain.IDGenerator) *Form {
	return &Form{
		state:  domain.NewFormState(ids),
		errors: ErrorMap{},
		ids:    ids,
		cat:    cat,
	}
}

// State returns the current immutable snapshot of the form.
func (f *Form) State() domain.FormState { return f.state }

// Errors returns the live error map for the current step.
func (f *Form) Errors() ErrorMap { return f.errors }

// Catalog returns the reference data in effect for this session.
func (f *Form) Catalog() catalog.Catalog { return f.cat }

// SetCatalog swaps the reference data, e.g. after a tokenized service
// fetch replaced the default service list.
func (f *Form) SetCatalog(cat catalog.Catalog) { f.cat = cat }

// Restore replaces the form state wholesale, used when resuming a saved
// draft. Errors are reset; the next advance revalidates from scratch.
func (f *Form) Restore(state domain.FormState) {
	f.state = state.Clone()
	f.errors = ErrorMap{}
}

func (f *Form) mutate(fn func(next *domain.FormState)) {
	next := f.state.Clone()
	fn(&next)
	f.state = next
}

// Scalar setters.

// SetPrimaryContact replaces the primary contact block and clears any
// errors recorded against its fields.
func (f *Form) SetPrimaryContact(c domain.ContactInfo) {
	f.mutate(func(next *domain.FormState) { next.Primary = c })
	for _, field := range []string{"primary_name", "primary_email", "primary_phone", "primary_role"} {
		f.errors.Clear(ContactKey(field))
	}
}

// SetSecondaryContact replaces the optional secondary contact block.
func (f *Form) SetSecondaryContact(c domain.ContactInfo) {
	f.mutate(func(next *domain.FormState) { next.Secondary = c })
}

func (f *Form) SetProjectTitle(title string) {
	f.mutate(func(next *domain.FormState) { next.ProjectTitle = title })
	f.errors.Clear(ProjectKey("project_title"))
}

// SelectProjectType records the chosen project type key. Changing the
// type can change the step sequence; the controller re-derives it on
// every navigation.
func (f *Form) SelectProjectType(key string) {
	f.mutate(func(next *domain.FormState) { next.ProjectType = key })
	f.errors.Clear(ProjectKey("project_type"))
}

func (f *Form) SetGuestCount(count string) {
	f.mutate(func(next *domain.FormState) { next.EstimatedGuestCount = count })
}

// SelectBudget copies the range's bounds and label into the form at
// selection time. Unknown labels are ignored.
func (f *Form) SelectBudget(label string) {
	r, ok := f.cat.BudgetRange(label)
	if !ok {
		return
	}
	f.mutate(func(next *domain.FormState) {
		next.BudgetMin = r.Min
		next.BudgetMax = r.Max
		next.BudgetLabel = r.Label
	})
	f.errors.Clear(ProjectKey("budget_label"))
}

func (f *Form) SetDeliveryMethod(key string) {
	f.mutate(func(next *domain.FormState) { next.DeliveryMethod = key })
	f.errors.Clear(DeliverablesKey("delivery_method"))
}

func (f *Form) SetPhotobook(required bool, copies int) {
	if copies < 1 {
		copies = 1
	}
	f.mutate(func(next *domain.FormState) {
		next.PhotobookRequired = required
		next.PhotobookCopies = copies
	})
}

func (f *Form) SetAdditionalNotes(notes string) {
	f.mutate(func(next *domain.FormState) { next.AdditionalNotes = notes })
}

// ToggleVideoOutput adds the output with its catalogue default duration,
// or removes it entirely when already selected.
func (f *Form) ToggleVideoOutput(key string) {
	f.mutate(func(next *domain.FormState) {
		for i, v := range next.VideoOutputs {
			if v.Key == key {
				next.VideoOutputs = append(next.VideoOutputs[:i], next.VideoOutputs[i+1:]...)
				return
			}
		}
		duration := ""
		if vo, ok := f.cat.VideoOutput(key); ok {
			duration = vo.DefaultDuration
		}
		next.VideoOutputs = append(next.VideoOutputs, domain.VideoOutputSelection{Key: key, Duration: duration})
	})
}

// SetVideoOutputKeys reconciles the selection set against keys: newly
// selected outputs are seeded with their default duration, existing ones
// keep their duration, deselected ones are dropped.
func (f *Form) SetVideoOutputKeys(keys []string) {
	f.mutate(func(next *domain.FormState) {
		current := make(map[string]domain.VideoOutputSelection, len(next.VideoOutputs))
		for _, v := range next.VideoOutputs {
			current[v.Key] = v
		}
		out := make([]domain.VideoOutputSelection, 0, len(keys))
		for _, key := range keys {
			if v, ok := current[key]; ok {
				out = append(out, v)
				continue
			}
			duration := ""
			if vo, ok := f.cat.VideoOutput(key); ok {
				duration = vo.DefaultDuration
			}
			out = append(out, domain.VideoOutputSelection{Key: key, Duration: duration})
		}
		next.VideoOutputs = out
	})
}

// Event editors.

// AddEvent appends a new empty event (with one blank location and service
// line) to the end of the list.
func (f *Form) AddEvent() {
	f.mutate(func(next *domain.FormState) {
		next.Events = append(next.Events, domain.NewEvent(f.ids))
	})
}

// RemoveEvent deletes the event unless it is the last one remaining, in
// which case the call is a silent no-op. Surviving events keep their ids;
// only their display ordinals shift.
func (f *Form) RemoveEvent(eventID string) {
	if len(f.state.Events) <= 1 {
		return
	}
	idx := f.state.EventIndex(eventID)
	if idx < 0 {
		return
	}
	f.mutate(func(next *domain.FormState) {
		next.Events = append(next.Events[:idx], next.Events[idx+1:]...)
	})
	f.errors.ClearEvent(idx)
}

// UpdateEvent replaces one field on the matching event and clears any
// event-scoped errors recorded against it. Unknown fields are ignored.
func (f *Form) UpdateEvent(eventID, field, value string) {
	idx := f.state.EventIndex(eventID)
	if idx < 0 {
		return
	}
	f.mutate(func(next *domain.FormState) {
		e := &next.Events[idx]
		switch field {
		case FieldEventType:
			e.EventType = value
		case FieldDate:
			e.Date = value
		case FieldTimeStart:
			e.TimeStart = value
		case FieldTimeEnd:
			e.TimeEnd = value
		}
	})
	f.errors.ClearScope(ScopeEvent, idx)
}

// Location editors.

func (f *Form) AddLocation(eventID string) {
	idx := f.state.EventIndex(eventID)
	if idx < 0 {
		return
	}
	f.mutate(func(next *domain.FormState) {
		e := &next.Events[idx]
		e.Locations = append(e.Locations, domain.NewLocation(f.ids))
	})
}

// RemoveLocation deletes the location unless it is the event's last one.
func (f *Form) RemoveLocation(eventID, locationID string) {
	idx := f.state.EventIndex(eventID)
	if idx < 0 || len(f.state.Events[idx].Locations) <= 1 {
		return
	}
	f.mutate(func(next *domain.FormState) {
		e := &next.Events[idx]
		for i, loc := range e.Locations {
			if loc.ID == locationID {
				e.Locations = append(e.Locations[:i], e.Locations[i+1:]...)
				return
			}
		}
	})
}

// UpdateLocation replaces one field on the matching location and clears
// location-scoped errors for the owning event.
func (f *Form) UpdateLocation(eventID, locationID, field, value string) {
	idx := f.state.EventIndex(eventID)
	if idx < 0 {
		return
	}
	f.mutate(func(next *domain.FormState) {
		e := &next.Events[idx]
		for i := range e.Locations {
			if e.Locations[i].ID != locationID {
				continue
			}
			switch field {
			case FieldName:
				e.Locations[i].Name = value
			case FieldAddress:
				e.Locations[i].Address = value
			case FieldLocationType:
				e.Locations[i].LocationType = value
			case FieldActivity:
				e.Locations[i].Activity = value
			}
			return
		}
	})
	f.errors.ClearScope(ScopeLocation, idx)
}

// Service editors.

func (f *Form) AddService(eventID string) {
	idx := f.state.EventIndex(eventID)
	if idx < 0 {
		return
	}
	f.mutate(func(next *domain.FormState) {
		e := &next.Events[idx]
		e.Services = append(e.Services, domain.NewServiceLine(f.ids))
	})
}

// RemoveService deletes the service line unless it is the event's last one.
func (f *Form) RemoveService(eventID, serviceID string) {
	idx := f.state.EventIndex(eventID)
	if idx < 0 || len(f.state.Events[idx].Services) <= 1 {
		return
	}
	f.mutate(func(next *domain.FormState) {
		e := &next.Events[idx]
		for i, svc := range e.Services {
			if svc.ID == serviceID {
				e.Services = append(e.Services[:i], e.Services[i+1:]...)
				return
			}
		}
	})
}

// UpdateService replaces one field on the matching service line and
// clears service-scoped errors for the owning event. Quantity values are
// parsed and clamped to the allowed range; unparseable input falls back
// to the minimum.
func (f *Form) UpdateService(eventID, serviceID, field, value string) {
	idx := f.state.EventIndex(eventID)
	if idx < 0 {
		return
	}
	f.mutate(func(next *domain.FormState) {
		e := &next.Events[idx]
		for i := range e.Services {
			if e.Services[i].ID != serviceID {
				continue
			}
			switch field {
			case FieldServiceKey:
				e.Services[i].ServiceKey = value
			case FieldQuantity:
				q, err := strconv.Atoi(strings.TrimSpace(value))
				if err != nil {
					q = domain.MinQuantity
				}
				e.Services[i].Quantity = domain.ClampQuantity(q)
			case FieldNotes:
				e.Services[i].Notes = value
			}
			return
		}
	})
	f.errors.ClearScope(ScopeService, idx)
}
