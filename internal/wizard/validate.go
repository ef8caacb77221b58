package wizard

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/haythamstudio/intake/internal/catalog"
	"github.com/haythamstudio/intake/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate runs the validator for the given role against the state.
// Review has no validator, and the Events validator only applies when the
// selected project type carries an Events step, so both return an empty
// map. Validators never mutate the state.
func Validate(role Role, state domain.FormState, cat catalog.Catalog) ErrorMap {
	switch role {
	case RoleContact:
		return ValidateContact(state, cat)
	case RoleProject:
		return ValidateProject(state, cat)
	case RoleEvents:
		return ValidateEvents(state)
	case RoleDeliverables:
		return ValidateDeliverables(state)
	default:
		return ErrorMap{}
	}
}

// ValidateContact checks the primary contact block. The secondary contact
// is optional and never validated.
func ValidateContact(state domain.FormState, cat catalog.Catalog) ErrorMap {
	errs := ErrorMap{}
	if strings.TrimSpace(state.Primary.Name) == "" {
		errs[ContactKey("primary_name")] = "Full name is required"
	}
	email := strings.TrimSpace(state.Primary.Email)
	if email == "" {
		errs[ContactKey("primary_email")] = "Email is required"
	} else if !emailPattern.MatchString(email) {
		errs[ContactKey("primary_email")] = "Please enter a valid email"
	}
	if strings.TrimSpace(state.Primary.Phone) == "" {
		errs[ContactKey("primary_phone")] = "Phone number is required"
	}
	if !cat.IsContactRole(state.Primary.Role) {
		errs[ContactKey("primary_role")] = "Please select a role"
	}
	return errs
}

// ValidateProject checks the project step: title, a known project type,
// and a captured budget selection.
func ValidateProject(state domain.FormState, cat catalog.Catalog) ErrorMap {
	errs := ErrorMap{}
	if strings.TrimSpace(state.ProjectTitle) == "" {
		errs[ProjectKey("project_title")] = "Project title is required"
	}
	if _, ok := cat.ProjectType(state.ProjectType); !ok {
		errs[ProjectKey("project_type")] = "Please select a project type"
	}
	if state.BudgetLabel == "" {
		errs[ProjectKey("budget_label")] = "Please select a budget range"
	}
	return errs
}

// ValidateEvents checks every event: type and date set, at least one
// named location, at least one selected service. Violations across
// events are all surfaced together, each message tagged with the event's
// 1-based display ordinal.
func ValidateEvents(state domain.FormState) ErrorMap {
	errs := ErrorMap{}
	for idx, e := range state.Events {
		ordinal := idx + 1
		if e.EventType == "" {
			errs[EventKey(ScopeEvent, idx, "type")] = fmt.Sprintf("Event %d: Please select an event type", ordinal)
		}
		if e.Date == "" {
			errs[EventKey(ScopeEvent, idx, "date")] = fmt.Sprintf("Event %d: Date is required", ordinal)
		}
		if !e.HasNamedLocation() {
			errs[EventKey(ScopeLocation, idx, "name")] = fmt.Sprintf("Event %d: At least one venue name is required", ordinal)
		}
		if !e.HasSelectedService() {
			errs[EventKey(ScopeService, idx, "service_key")] = fmt.Sprintf("Event %d: At least one service is required", ordinal)
		}
	}
	return errs
}

// ValidateDeliverables checks that a delivery method was chosen. Photo
// book and video outputs are optional.
func ValidateDeliverables(state domain.FormState) ErrorMap {
	errs := ErrorMap{}
	if state.DeliveryMethod == "" {
		errs[DeliverablesKey("delivery_method")] = "Please select a delivery method"
	}
	return errs
}
