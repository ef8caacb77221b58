// Package catalog holds the fixed reference data driving the inquiry
// wizard: project types, event types, services, location types, budget
// ranges, contact roles, delivery methods, and video outputs.
//
// The default dataset is immutable. A per-session service override (the
// list fetched for a tokenized booking link) is carried explicitly on the
// Catalog value; service lookups prefer the override when present, every
// other lookup always answers from the defaults.
package catalog

import "github.com/haythamstudio/intake/internal/domain"

type ProjectType struct {
	Key                    string
	Label                  string
	Category               domain.ProjectCategory
	SupportsMultipleEvents bool
}

type EventType struct {
	Key   string
	Label string
}

type Service struct {
	Key          string
	Label        string
	Category     string
	ID           string
	BasePrice    float64
	PricingType  domain.PricingType
	Description  string
	Deliverables string
}

type LocationType struct {
	Key   string
	Label string
}

// BudgetRange bounds are copied into the form at selection time; a nil
// Max means the range is unbounded above.
type BudgetRange struct {
	Label string
	Min   int
	Max   *int
}

type DeliveryMethod struct {
	Key   string
	Label string
}

type VideoOutput struct {
	Key             string
	Label           string
	DefaultDuration string
}

// Catalog is a read-only view over the reference data.
type Catalog struct {
	serviceOverride []Service
}

// Default returns the catalog backed entirely by the built-in dataset.
func Default() Catalog {
	return Catalog{}
}

// WithServices returns a copy of the catalog whose service list is
// replaced by the given records. The defaults remain untouched.
func (c Catalog) WithServices(services []Service) Catalog {
	override := make([]Service, len(services))
	copy(override, services)
	c.serviceOverride = override
	return c
}

// HasServiceOverride reports whether a fetched service list is in effect.
func (c Catalog) HasServiceOverride() bool {
	return c.serviceOverride != nil
}

// Services returns the effective service list: the override when present,
// otherwise the built-in defaults.
func (c Catalog) Services() []Service {
	if c.serviceOverride != nil {
		return c.serviceOverride
	}
	return defaultServices
}

func (c Catalog) ProjectTypes() []ProjectType       { return defaultProjectTypes }
func (c Catalog) EventTypes() []EventType           { return defaultEventTypes }
func (c Catalog) LocationTypes() []LocationType     { return defaultLocationTypes }
func (c Catalog) BudgetRanges() []BudgetRange       { return defaultBudgetRanges }
func (c Catalog) ContactRoles() []string            { return defaultContactRoles }
func (c Catalog) DeliveryMethods() []DeliveryMethod { return defaultDeliveryMethods }
func (c Catalog) VideoOutputs() []VideoOutput       { return defaultVideoOutputs }

// ProjectType looks up a project type by key.
func (c Catalog) ProjectType(key string) (ProjectType, bool) {
	for _, p := range defaultProjectTypes {
		if p.Key == key {
			return p, true
		}
	}
	return ProjectType{}, false
}

// SupportsMultipleEvents reports whether the given project type key names
// a type with an Events step. Unknown or empty keys report false.
func (c Catalog) SupportsMultipleEvents(key string) bool {
	p, ok := c.ProjectType(key)
	return ok && p.SupportsMultipleEvents
}

// EventType looks up an event type by key.
func (c Catalog) EventType(key string) (EventType, bool) {
	for _, e := range defaultEventTypes {
		if e.Key == key {
			return e, true
		}
	}
	return EventType{}, false
}

// Service looks up a service by key in the effective service list.
func (c Catalog) Service(key string) (Service, bool) {
	for _, s := range c.Services() {
		if s.Key == key {
			return s, true
		}
	}
	return Service{}, false
}

// LocationType looks up a location type by key.
func (c Catalog) LocationType(key string) (LocationType, bool) {
	for _, l := range defaultLocationTypes {
		if l.Key == key {
			return l, true
		}
	}
	return LocationType{}, false
}

// BudgetRange looks up a budget range by its display label.
func (c Catalog) BudgetRange(label string) (BudgetRange, bool) {
	for _, b := range defaultBudgetRanges {
		if b.Label == label {
			return b, true
		}
	}
	return BudgetRange{}, false
}

// IsContactRole reports whether role is one of the known contact roles.
func (c Catalog) IsContactRole(role string) bool {
	for _, r := range defaultContactRoles {
		if r == role {
			return true
		}
	}
	return false
}

// DeliveryMethod looks up a delivery method by key.
func (c Catalog) DeliveryMethod(key string) (DeliveryMethod, bool) {
	for _, d := range defaultDeliveryMethods {
		if d.Key == key {
			return d, true
		}
	}
	return DeliveryMethod{}, false
}

// VideoOutput looks up a video output kind by key.
func (c Catalog) VideoOutput(key string) (VideoOutput, bool) {
	for _, v := range defaultVideoOutputs {
		if v.Key == key {
			return v, true
		}
	}
	return VideoOutput{}, false
}

// QuantityLabel returns the display label for a service's quantity input
// given its pricing type.
func QuantityLabel(pt domain.PricingType) string {
	switch pt {
	case domain.PricingHourly:
		return "Hours"
	case domain.PricingDaily:
		return "Days"
	case domain.PricingPerPhoto:
		return "Number of Photos"
	default:
		return "Quantity"
	}
}

// QuantityRelevant reports whether a quantity input should be offered for
// the given pricing type.
func QuantityRelevant(pt domain.PricingType) bool {
	switch pt {
	case domain.PricingHourly, domain.PricingPerPhoto, domain.PricingPerEvent:
		return true
	default:
		return false
	}
}
