package wizard

import (
	"testing"

	"github.com/haythamstudio/intake/internal/catalog"
	"github.com/stretchr/testify/assert"
)

func TestStepCount(t *testing.T) {
	assert.Equal(t, 5, StepCount(true))
	assert.Equal(t, 4, StepCount(false))
}

func TestStepLabels(t *testing.T) {
	assert.Equal(t, []string{"Contact", "Project", "Events", "Deliverables", "Review"}, StepLabels(true))
	assert.Equal(t, []string{"Contact", "Project", "Deliverables", "Review"}, StepLabels(false))
}

func TestRoleAt_MultiEvent(t *testing.T) {
	assert.Equal(t, RoleContact, RoleAt(true, 1))
	assert.Equal(t, RoleProject, RoleAt(true, 2))
	assert.Equal(t, RoleEvents, RoleAt(true, 3))
	assert.Equal(t, RoleDeliverables, RoleAt(true, 4))
	assert.Equal(t, RoleReview, RoleAt(true, 5))
}

func TestRoleAt_SingleEvent(t *testing.T) {
	assert.Equal(t, RoleContact, RoleAt(false, 1))
	assert.Equal(t, RoleProject, RoleAt(false, 2))
	assert.Equal(t, RoleDeliverables, RoleAt(false, 3), "Deliverables shifts to step 3 without an Events step")
	assert.Equal(t, RoleReview, RoleAt(false, 4))
}

func TestRoleAt_ClampsOutOfRange(t *testing.T) {
	assert.Equal(t, RoleContact, RoleAt(true, 0))
	assert.Equal(t, RoleReview, RoleAt(true, 99))
	assert.Equal(t, RoleReview, RoleAt(false, 5))
}

// Every project type in the catalogue resolves its sequence purely from
// the capability flag: the Events step exists iff the flag is set.
func TestRoleAt_AllCatalogueProjectTypes(t *testing.T) {
	c := catalog.Default()
	for _, pt := range c.ProjectTypes() {
		multi := pt.SupportsMultipleEvents
		if multi {
			assert.Equal(t, 5, StepCount(multi), "type=%s", pt.Key)
			assert.Equal(t, RoleEvents, RoleAt(multi, 3), "type=%s", pt.Key)
		} else {
			assert.Equal(t, 4, StepCount(multi), "type=%s", pt.Key)
			assert.Equal(t, RoleDeliverables, RoleAt(multi, 3), "type=%s", pt.Key)
		}
	}
}

func TestRoleLabel(t *testing.T) {
	assert.Equal(t, "Contact", RoleContact.Label())
	assert.Equal(t, "Review", RoleReview.Label())
	assert.Equal(t, "", Role(99).Label())
}
