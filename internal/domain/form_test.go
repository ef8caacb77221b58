package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormState_SeedsOneEmptyEvent(t *testing.T) {
	ids := &SequentialIDGenerator{Prefix: "t"}
	f := NewFormState(ids)

	require.Len(t, f.Events, 1)
	e := f.Events[0]
	require.Len(t, e.Locations, 1)
	require.Len(t, e.Services, 1)
	assert.Equal(t, "", e.EventType)
	assert.Equal(t, "", e.Locations[0].Name)
	assert.Equal(t, "", e.Services[0].ServiceKey)
	assert.Equal(t, 1, e.Services[0].Quantity)
	assert.Equal(t, 1, f.PhotobookCopies)
}

func TestSequentialIDGenerator_Deterministic(t *testing.T) {
	ids := &SequentialIDGenerator{Prefix: "row"}
	assert.Equal(t, "row-001", ids.NewID())
	assert.Equal(t, "row-002", ids.NewID())
	assert.Equal(t, "row-003", ids.NewID())
}

func TestUUIDGenerator_Unique(t *testing.T) {
	var g UUIDGenerator
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := g.NewID()
		require.NotEmpty(t, id)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestClampQuantity(t *testing.T) {
	cases := []struct{ in, want int }{
		{-5, 1},
		{0, 1},
		{1, 1},
		{42, 42},
		{1000, 1000},
		{1001, 1000},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClampQuantity(tc.in), "in=%d", tc.in)
	}
}

func TestContactInfo_Blank(t *testing.T) {
	assert.True(t, ContactInfo{}.Blank())
	assert.True(t, ContactInfo{Name: "  "}.Blank())
	assert.False(t, ContactInfo{Phone: "123"}.Blank())
}

func TestEvent_HasNamedLocationAndSelectedService(t *testing.T) {
	e := Event{
		Locations: []Location{{Name: "  "}, {Name: ""}},
		Services:  []ServiceLine{{ServiceKey: ""}},
	}
	assert.False(t, e.HasNamedLocation())
	assert.False(t, e.HasSelectedService())

	e.Locations[1].Name = "The Oberoi Grand"
	e.Services[0].ServiceKey = "CANDID_PHOTO"
	assert.True(t, e.HasNamedLocation())
	assert.True(t, e.HasSelectedService())
}

func TestFormState_CloneIsDeep(t *testing.T) {
	ids := &SequentialIDGenerator{}
	f := NewFormState(ids)
	f.VideoOutputs = []VideoOutputSelection{{Key: "TEASER", Duration: "3–5 min"}}

	c := f.Clone()
	c.Events[0].EventType = "HALDI"
	c.Events[0].Locations[0].Name = "changed"
	c.Events[0].Services[0].ServiceKey = "DRONE"
	c.VideoOutputs[0].Duration = "1 min"

	assert.Equal(t, "", f.Events[0].EventType)
	assert.Equal(t, "", f.Events[0].Locations[0].Name)
	assert.Equal(t, "", f.Events[0].Services[0].ServiceKey)
	assert.Equal(t, "3–5 min", f.VideoOutputs[0].Duration)
}

func TestFormState_EventIndex(t *testing.T) {
	ids := &SequentialIDGenerator{}
	f := NewFormState(ids)
	f.Events = append(f.Events, NewEvent(ids))

	assert.Equal(t, 0, f.EventIndex(f.Events[0].ID))
	assert.Equal(t, 1, f.EventIndex(f.Events[1].ID))
	assert.Equal(t, -1, f.EventIndex("missing"))
}
