package core

import "reflect"

type guardEntry struct {
	key uintptr
	fn  Guard
}

// GuardRegistry holds the ordered guard collections consulted per attempt:
// global guards applied to every navigation, enter guards keyed by target
// route, and leave guards keyed by the route being departed. Registration
// order is evaluation order; duplicate registrations are independent entries.
type GuardRegistry struct {
	global []guardEntry
	enter  map[string][]guardEntry
	leave  map[string][]guardEntry
}

func NewGuardRegistry() *GuardRegistry {
	return &GuardRegistry{
		enter: map[string][]guardEntry{},
		leave: map[string][]guardEntry{},
	}
}

// guardKey identifies a guard function for removal. Closures created from the
// same literal share a code pointer, so removal treats them as the same guard.
func guardKey(g Guard) uintptr {
	return reflect.ValueOf(g).Pointer()
}

// AddGlobal appends a guard consulted on every attempt.
func (r *GuardRegistry) AddGlobal(g Guard) {
	if g == nil {
		return
	}
	r.global = append(r.global, guardEntry{key: guardKey(g), fn: g})
}

// RemoveGlobal deletes the first global entry registered for g. Removing a
// guard that was never registered is a no-op.
func (r *GuardRegistry) RemoveGlobal(g Guard) {
	if g == nil {
		return
	}
	r.global = removeFirst(r.global, guardKey(g))
}

// AddEnter appends a guard consulted when route is the navigation target.
func (r *GuardRegistry) AddEnter(route string, g Guard) {
	if g == nil || route == "" {
		return
	}
	r.enter[route] = append(r.enter[route], guardEntry{key: guardKey(g), fn: g})
}

func (r *GuardRegistry) RemoveEnter(route string, g Guard) {
	if g == nil {
		return
	}
	r.enter[route] = removeFirst(r.enter[route], guardKey(g))
}

// AddLeave appends a guard consulted when route is being departed.
func (r *GuardRegistry) AddLeave(route string, g Guard) {
	if g == nil || route == "" {
		return
	}
	r.leave[route] = append(r.leave[route], guardEntry{key: guardKey(g), fn: g})
}

func (r *GuardRegistry) RemoveLeave(route string, g Guard) {
	if g == nil {
		return
	}
	r.leave[route] = removeFirst(r.leave[route], guardKey(g))
}

// AddRoute registers an enter and a leave guard for one route in a single
// call. Either half may be nil; each half is removable on its own through
// RemoveEnter and RemoveLeave.
func (r *GuardRegistry) AddRoute(route string, enter, leave Guard) {
	r.AddEnter(route, enter)
	r.AddLeave(route, leave)
}

// Clear drops every registered guard. Called on pipeline teardown.
func (r *GuardRegistry) Clear() {
	r.global = nil
	r.enter = map[string][]guardEntry{}
	r.leave = map[string][]guardEntry{}
}

func (r *GuardRegistry) globalGuards() []Guard {
	return guardsOf(r.global)
}

func (r *GuardRegistry) enterGuards(route string) []Guard {
	return guardsOf(r.enter[route])
}

func (r *GuardRegistry) leaveGuards(route string) []Guard {
	return guardsOf(r.leave[route])
}

// guardsOf snapshots an entry list so in-flight attempts are unaffected by
// later registry mutation.
func guardsOf(entries []guardEntry) []Guard {
	if len(entries) == 0 {
		return nil
	}
	out := make([]Guard, len(entries))
	for i, e := range entries {
		out[i] = e.fn
	}
	return out
}

func removeFirst(entries []guardEntry, key uintptr) []guardEntry {
	for i, e := range entries {
		if e.key == key {
			return append(entries[:i:i], entries[i+1:]...)
		}
	}
	return entries
}
