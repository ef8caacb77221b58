package catalog

import (
	"testing"

	"github.com/haythamstudio/intake/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectType_Lookup(t *testing.T) {
	c := Default()

	p, ok := c.ProjectType("WEDDING")
	require.True(t, ok)
	assert.Equal(t, "Wedding Photography", p.Label)
	assert.True(t, p.SupportsMultipleEvents)

	p, ok = c.ProjectType("FAMILY")
	require.True(t, ok)
	assert.False(t, p.SupportsMultipleEvents)

	_, ok = c.ProjectType("UNKNOWN")
	assert.False(t, ok)
}

func TestSupportsMultipleEvents(t *testing.T) {
	c := Default()
	assert.True(t, c.SupportsMultipleEvents("WEDDING"))
	assert.True(t, c.SupportsMultipleEvents("BRANDING"))
	assert.False(t, c.SupportsMultipleEvents("NEWBORN"))
	assert.False(t, c.SupportsMultipleEvents(""))
	assert.False(t, c.SupportsMultipleEvents("NOPE"))
}

func TestBudgetRange_Lookup(t *testing.T) {
	c := Default()

	b, ok := c.BudgetRange("1L – 3L")
	require.True(t, ok)
	assert.Equal(t, 100000, b.Min)
	require.NotNil(t, b.Max)
	assert.Equal(t, 300000, *b.Max)

	b, ok = c.BudgetRange("5L+")
	require.True(t, ok)
	assert.Equal(t, 500000, b.Min)
	assert.Nil(t, b.Max, "top range is unbounded")
}

func TestServiceOverride_Precedence(t *testing.T) {
	c := Default()
	_, ok := c.Service("CANDID_PHOTO")
	require.True(t, ok)

	fetched := []Service{
		{Key: "PREMIUM_CANDID", Label: "Premium Candid", PricingType: domain.PricingHourly},
	}
	o := c.WithServices(fetched)

	assert.True(t, o.HasServiceOverride())
	assert.False(t, c.HasServiceOverride(), "override must not leak into the original")

	_, ok = o.Service("CANDID_PHOTO")
	assert.False(t, ok, "default services hidden while override active")
	s, ok := o.Service("PREMIUM_CANDID")
	require.True(t, ok)
	assert.Equal(t, "Premium Candid", s.Label)

	// Non-service lookups still answer from the defaults.
	_, ok = o.EventType("HALDI")
	assert.True(t, ok)
	assert.True(t, o.IsContactRole("Bride"))
}

func TestQuantityLabel(t *testing.T) {
	cases := []struct {
		pt   domain.PricingType
		want string
	}{
		{domain.PricingHourly, "Hours"},
		{domain.PricingDaily, "Days"},
		{domain.PricingPerPhoto, "Number of Photos"},
		{domain.PricingPerEvent, "Quantity"},
		{domain.PricingFixed, "Quantity"},
		{"", "Quantity"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, QuantityLabel(tc.pt), "pricing=%s", tc.pt)
	}
}

func TestQuantityRelevant(t *testing.T) {
	assert.True(t, QuantityRelevant(domain.PricingHourly))
	assert.True(t, QuantityRelevant(domain.PricingPerPhoto))
	assert.True(t, QuantityRelevant(domain.PricingPerEvent))
	assert.False(t, QuantityRelevant(domain.PricingFixed))
	assert.False(t, QuantityRelevant(domain.PricingDaily))
	assert.False(t, QuantityRelevant(""))
}

func TestVideoOutput_Defaults(t *testing.T) {
	c := Default()
	v, ok := c.VideoOutput("TEASER")
	require.True(t, ok)
	assert.Equal(t, "3–5 min", v.DefaultDuration)
}
