package domain

import "time"

// Draft is a locally saved, resumable inquiry session. The booking token
// is kept alongside the state so a resumed session talks to the same
// tokenized endpoint it started with.
type Draft struct {
	ID        string
	TenantID  string
	Token     string
	State     FormState
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayID returns a short identifier suitable for listings.
func (d *Draft) DisplayID() string {
	if len(d.ID) >= 8 {
		return d.ID[:8]
	}
	return d.ID
}
