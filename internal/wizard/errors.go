package wizard

import "sort"

// Scope identifies which part of the form an error key belongs to.
// Event-scoped scopes carry the 0-based event ordinal so errors from
// several events can be surfaced and cleared independently.
type Scope int

const (
	ScopeContact Scope = iota
	ScopeProject
	ScopeEvent
	ScopeLocation
	ScopeService
	ScopeDeliverables
)

// Key addresses one validation message. Event is the 0-based event
// ordinal for event-scoped keys and -1 otherwise.
type Key struct {
	Scope Scope
	Event int
	Field string
}

func ContactKey(field string) Key      { return Key{Scope: ScopeContact, Event: -1, Field: field} }
func ProjectKey(field string) Key      { return Key{Scope: ScopeProject, Event: -1, Field: field} }
func DeliverablesKey(field string) Key { return Key{Scope: ScopeDeliverables, Event: -1, Field: field} }

// EventKey builds a key scoped to one event ordinal. scope must be
// ScopeEvent, ScopeLocation, or ScopeService.
func EventKey(scope Scope, event int, field string) Key {
	return Key{Scope: scope, Event: event, Field: field}
}

// ErrorMap holds the validation messages for the current step. It is
// replaced wholesale by a validator on each advance attempt and trimmed
// key-by-key as the user edits the implicated fields.
type ErrorMap map[Key]string

func (m ErrorMap) Empty() bool { return len(m) == 0 }

// Get returns the message for a key, or "" when the key is clean.
func (m ErrorMap) Get(k Key) string { return m[k] }

// Clear removes a single key.
func (m ErrorMap) Clear(k Key) { delete(m, k) }

// ClearScope removes every key with the given scope. When event >= 0 only
// keys for that event ordinal are removed; event < 0 clears the scope
// across all events.
func (m ErrorMap) ClearScope(scope Scope, event int) {
	for k := range m {
		if k.Scope != scope {
			continue
		}
		if event >= 0 && k.Event != event {
			continue
		}
		delete(m, k)
	}
}

// ClearEvent removes every key attached to the given event ordinal,
// regardless of scope.
func (m ErrorMap) ClearEvent(event int) {
	for k := range m {
		if k.Event == event {
			delete(m, k)
		}
	}
}

// Messages returns all messages in a stable display order: non-event keys
// first by scope then field, event keys by ordinal then scope then field.
func (m ErrorMap) Messages() []string {
	keys := make([]Key, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Event != b.Event {
			return a.Event < b.Event
		}
		if a.Scope != b.Scope {
			return a.Scope < b.Scope
		}
		return a.Field < b.Field
	})
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = m[k]
	}
	return out
}
