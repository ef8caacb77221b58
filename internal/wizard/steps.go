package wizard

// Role is the semantic meaning of a wizard step. The same role lands on a
// different step number depending on whether the selected project type
// has an Events step, so callers must always resolve roles through
// RoleAt rather than comparing step numbers.
type Role int

const (
	RoleContact Role = iota
	RoleProject
	RoleEvents
	RoleDeliverables
	RoleReview
)

// Label returns the progress-bar label for the role.
func (r Role) Label() string {
	switch r {
	case RoleContact:
		return "Contact"
	case RoleProject:
		return "Project"
	case RoleEvents:
		return "Events"
	case RoleDeliverables:
		return "Deliverables"
	case RoleReview:
		return "Review"
	default:
		return ""
	}
}

// Step sequences keyed by the multiple-events capability flag.
var stepRoles = map[bool][]Role{
	true:  {RoleContact, RoleProject, RoleEvents, RoleDeliverables, RoleReview},
	false: {RoleContact, RoleProject, RoleDeliverables, RoleReview},
}

// Roles returns the ordered step sequence for the capability flag.
func Roles(multiEvent bool) []Role {
	return stepRoles[multiEvent]
}

// StepCount returns the number of wizard steps: 5 with an Events step,
// 4 without.
func StepCount(multiEvent bool) int {
	return len(stepRoles[multiEvent])
}

// StepLabels returns the ordered progress labels for the capability flag.
func StepLabels(multiEvent bool) []string {
	roles := stepRoles[multiEvent]
	labels := make([]string, len(roles))
	for i, r := range roles {
		labels[i] = r.Label()
	}
	return labels
}

// RoleAt resolves the 1-based step number to its semantic role. Step
// numbers outside [1, StepCount] clamp to the nearest valid step.
func RoleAt(multiEvent bool, step int) Role {
	roles := stepRoles[multiEvent]
	if step < 1 {
		step = 1
	}
	if step > len(roles) {
		step = len(roles)
	}
	return roles[step-1]
}
