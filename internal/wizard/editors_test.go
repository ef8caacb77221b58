package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEvent_AppendsWithDefaults(t *testing.T) {
	f := newTestForm()
	f.AddEvent()

	events := f.State().Events
	require.Len(t, events, 2)
	assert.NotEqual(t, events[0].ID, events[1].ID)
	require.Len(t, events[1].Locations, 1)
	require.Len(t, events[1].Services, 1)
	assert.Equal(t, 1, events[1].Services[0].Quantity)
}

func TestRemoveEvent_LastItemGuard(t *testing.T) {
	f := newTestForm()
	only := f.State().Events[0].ID

	f.RemoveEvent(only)
	assert.Len(t, f.State().Events, 1, "removing the sole event is a no-op")

	f.AddEvent()
	f.RemoveEvent(only)
	events := f.State().Events
	require.Len(t, events, 1)
	assert.NotEqual(t, only, events[0].ID)
}

func TestRemoveEvent_SurvivorsKeepIDs(t *testing.T) {
	f := newTestForm()
	f.AddEvent()
	f.AddEvent()
	first := f.State().Events[0].ID
	third := f.State().Events[2].ID

	f.RemoveEvent(f.State().Events[1].ID)

	events := f.State().Events
	require.Len(t, events, 2)
	assert.Equal(t, first, events[0].ID)
	assert.Equal(t, third, events[1].ID, "ids are stable; only ordinals shift")
}

func TestUpdateEvent_TouchesOnlyTargetField(t *testing.T) {
	f := newTestForm()
	f.AddEvent()
	e0 := f.State().Events[0].ID

	f.UpdateEvent(e0, FieldEventType, "HALDI")
	f.UpdateEvent(e0, FieldDate, "2026-11-19")

	events := f.State().Events
	assert.Equal(t, "HALDI", events[0].EventType)
	assert.Equal(t, "2026-11-19", events[0].Date)
	assert.Equal(t, "", events[0].TimeStart)
	assert.Equal(t, "", events[1].EventType, "sibling untouched")
}

func TestUpdateEvent_UnknownIDOrFieldIgnored(t *testing.T) {
	f := newTestForm()
	before := f.State()

	f.UpdateEvent("missing", FieldDate, "2026-01-01")
	f.UpdateEvent(before.Events[0].ID, "bogus_field", "x")

	assert.Equal(t, before.Events[0], f.State().Events[0])
}

func TestEditors_SnapshotSemantics(t *testing.T) {
	f := newTestForm()
	before := f.State()
	eventID := before.Events[0].ID

	f.UpdateEvent(eventID, FieldEventType, "RECEPTION")

	assert.Equal(t, "", before.Events[0].EventType, "earlier snapshot unchanged")
	assert.Equal(t, "RECEPTION", f.State().Events[0].EventType)
}

func TestLocationEditors(t *testing.T) {
	f := newTestForm()
	eventID := f.State().Events[0].ID
	firstLoc := f.State().Events[0].Locations[0].ID

	// Last-item guard.
	f.RemoveLocation(eventID, firstLoc)
	require.Len(t, f.State().Events[0].Locations, 1)

	f.AddLocation(eventID)
	require.Len(t, f.State().Events[0].Locations, 2)

	f.UpdateLocation(eventID, firstLoc, FieldName, "Taj Palace")
	f.UpdateLocation(eventID, firstLoc, FieldLocationType, "VENUE")
	f.UpdateLocation(eventID, firstLoc, FieldActivity, "Ceremony")
	f.UpdateLocation(eventID, firstLoc, FieldAddress, "1 Mansingh Road")

	loc := f.State().Events[0].Locations[0]
	assert.Equal(t, "Taj Palace", loc.Name)
	assert.Equal(t, "VENUE", loc.LocationType)
	assert.Equal(t, "Ceremony", loc.Activity)
	assert.Equal(t, "1 Mansingh Road", loc.Address)

	f.RemoveLocation(eventID, firstLoc)
	locs := f.State().Events[0].Locations
	require.Len(t, locs, 1)
	assert.NotEqual(t, firstLoc, locs[0].ID)
}

func TestServiceEditors(t *testing.T) {
	f := newTestForm()
	eventID := f.State().Events[0].ID
	firstSvc := f.State().Events[0].Services[0].ID

	f.RemoveService(eventID, firstSvc)
	require.Len(t, f.State().Events[0].Services, 1, "last service line is kept")

	f.AddService(eventID)
	f.UpdateService(eventID, firstSvc, FieldServiceKey, "DRONE")
	f.UpdateService(eventID, firstSvc, FieldNotes, "sunset coverage")

	svc := f.State().Events[0].Services[0]
	assert.Equal(t, "DRONE", svc.ServiceKey)
	assert.Equal(t, "sunset coverage", svc.Notes)

	f.RemoveService(eventID, firstSvc)
	assert.Len(t, f.State().Events[0].Services, 1)
}

func TestUpdateService_QuantityParsedAndClamped(t *testing.T) {
	f := newTestForm()
	eventID := f.State().Events[0].ID
	svcID := f.State().Events[0].Services[0].ID

	cases := []struct {
		in   string
		want int
	}{
		{"8", 8},
		{"0", 1},
		{"-3", 1},
		{"5000", 1000},
		{"garbage", 1},
		{"", 1},
	}
	for _, tc := range cases {
		f.UpdateService(eventID, svcID, FieldQuantity, tc.in)
		assert.Equal(t, tc.want, f.State().Events[0].Services[0].Quantity, "in=%q", tc.in)
	}
}

func TestUpdateEvent_ClearsEventScopedErrors(t *testing.T) {
	f := newTestForm()
	c := NewController(f)
	fillContact(f)
	require.True(t, c.Advance())
	fillProject(f, "WEDDING")
	require.True(t, c.Advance())
	require.False(t, c.Advance(), "empty event blocks the Events step")

	eventID := f.State().Events[0].ID
	require.NotEmpty(t, f.Errors().Get(EventKey(ScopeEvent, 0, "date")))
	require.NotEmpty(t, f.Errors().Get(EventKey(ScopeLocation, 0, "name")))

	f.UpdateEvent(eventID, FieldDate, "2026-11-21")

	assert.Empty(t, f.Errors().Get(EventKey(ScopeEvent, 0, "date")))
	assert.Empty(t, f.Errors().Get(EventKey(ScopeEvent, 0, "type")), "event-scoped keys clear together")
	assert.NotEmpty(t, f.Errors().Get(EventKey(ScopeLocation, 0, "name")), "location scope untouched")
	assert.NotEmpty(t, f.Errors().Get(EventKey(ScopeService, 0, "service_key")))
}

func TestUpdateLocationAndService_ClearTheirScopes(t *testing.T) {
	f := newTestForm()
	c := NewController(f)
	fillContact(f)
	require.True(t, c.Advance())
	fillProject(f, "WEDDING")
	require.True(t, c.Advance())
	require.False(t, c.Advance())

	e := f.State().Events[0]
	f.UpdateLocation(e.ID, e.Locations[0].ID, FieldName, "The Oberoi Grand")
	assert.Empty(t, f.Errors().Get(EventKey(ScopeLocation, 0, "name")))

	f.UpdateService(e.ID, e.Services[0].ID, FieldServiceKey, "CANDID_PHOTO")
	assert.Empty(t, f.Errors().Get(EventKey(ScopeService, 0, "service_key")))
	assert.NotEmpty(t, f.Errors().Get(EventKey(ScopeEvent, 0, "date")), "event scope survives")
}

func TestSetters_ClearFieldErrors(t *testing.T) {
	f := newTestForm()
	c := NewController(f)
	require.False(t, c.Advance())
	require.Len(t, f.Errors(), 4)

	fillContact(f)
	assert.True(t, f.Errors().Empty())
}

// Scenario D: toggling a video output on then off removes the entry
// entirely.
func TestToggleVideoOutput(t *testing.T) {
	f := newTestForm()

	f.ToggleVideoOutput("TEASER")
	require.Len(t, f.State().VideoOutputs, 1)
	assert.Equal(t, "TEASER", f.State().VideoOutputs[0].Key)
	assert.Equal(t, "3–5 min", f.State().VideoOutputs[0].Duration, "duration seeded from catalogue default")

	f.ToggleVideoOutput("TEASER")
	assert.Empty(t, f.State().VideoOutputs, "full removal, not a disabled marker")
}

func TestSetVideoOutputKeys_PreservesExistingDurations(t *testing.T) {
	f := newTestForm()
	f.ToggleVideoOutput("TEASER")
	f.SetVideoOutputKeys([]string{"TEASER", "FULL_FILM"})

	outputs := f.State().VideoOutputs
	require.Len(t, outputs, 2)
	assert.Equal(t, "3–5 min", outputs[0].Duration)
	assert.Equal(t, "45–60 min", outputs[1].Duration)

	f.SetVideoOutputKeys([]string{"FULL_FILM"})
	outputs = f.State().VideoOutputs
	require.Len(t, outputs, 1)
	assert.Equal(t, "FULL_FILM", outputs[0].Key)
}

func TestSelectBudget_CopiesBoundsAtSelectionTime(t *testing.T) {
	f := newTestForm()
	f.SelectBudget("1L – 3L")

	s := f.State()
	assert.Equal(t, 100000, s.BudgetMin)
	require.NotNil(t, s.BudgetMax)
	assert.Equal(t, 300000, *s.BudgetMax)
	assert.Equal(t, "1L – 3L", s.BudgetLabel)

	f.SelectBudget("no such range")
	assert.Equal(t, "1L – 3L", f.State().BudgetLabel, "unknown label ignored")

	f.SelectBudget("5L+")
	s = f.State()
	assert.Equal(t, 500000, s.BudgetMin)
	assert.Nil(t, s.BudgetMax)
}

func TestRestore_ResetsErrors(t *testing.T) {
	f := newTestForm()
	c := NewController(f)
	require.False(t, c.Advance())
	require.NotEmpty(t, f.Errors())

	saved := f.State()
	f.Restore(saved)
	assert.True(t, f.Errors().Empty())
	assert.Equal(t, saved.Events[0].ID, f.State().Events[0].ID)
}

func TestRemoveEvent_ClearsItsErrors(t *testing.T) {
	f := newTestForm()
	f.AddEvent()
	f.Errors()[EventKey(ScopeEvent, 1, "date")] = "Event 2: Date is required"

	f.RemoveEvent(f.State().Events[1].ID)
	assert.Empty(t, f.Errors().Get(EventKey(ScopeEvent, 1, "date")))
}
