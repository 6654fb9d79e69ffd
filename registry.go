package nanocron

import "fmt"

// Registry owns a set of Schedules plus the global state (UTC offset,
// execution depth, destroy flag) spec'd for the scheduler core. It performs
// no synchronization of its own: a Registry is a unit of external locking,
// and concurrent calls from multiple goroutines must be serialized by the
// caller.
type Registry struct {
	entries []*Schedule
	index   map[*Schedule]int

	executionDepth int
	destroyPending bool
	destroyed      bool

	utcOffsetMinutes int
}

// New returns a fresh, empty Registry with a zero UTC offset.
func New() *Registry {
	return &Registry{
		index: make(map[*Schedule]int),
	}
}

// Destroy releases every Schedule and the Registry itself. If a callback is
// currently executing (executionDepth > 0), teardown is deferred until the
// outermost Execute/ExecuteBetween invocation unwinds; this call just
// records the request.
func (r *Registry) Destroy() {
	if r.destroyed || r.destroyPending {
		return
	}
	if r.executionDepth > 0 {
		r.destroyPending = true
		return
	}
	r.teardown()
}

func (r *Registry) teardown() {
	r.entries = nil
	r.index = nil
	r.destroyed = true
	r.destroyPending = false
}

// closed reports whether the registry refuses further operations: either
// torn down already, or a destroy request is pending.
func (r *Registry) closed() bool {
	return r.destroyed || r.destroyPending
}

// Add parses text and, on success, appends a new Schedule bound to cb and
// user to the registry, returning it as a handle. It fails if the registry
// is destroyed/pending destruction or if text fails to parse; in either
// case no partial Schedule is left in the registry.
func (r *Registry) Add(text string, cb Callback, user any) (*Schedule, error) {
	if r.closed() {
		return nil, ErrDestroyed
	}
	if cb == nil {
		return nil, fmt.Errorf("nanocron: callback must not be nil")
	}

	fields, err := parseSchedule(text)
	if err != nil {
		return nil, err
	}

	s := &Schedule{
		text:     text,
		fields:   fields,
		callback: cb,
		user:     user,
	}

	r.index[s] = len(r.entries)
	r.entries = append(r.entries, s)
	return s, nil
}

// Remove removes handle from the registry. If a callback is currently
// executing, removal is deferred (the Schedule is tombstoned and skipped
// for the remainder of the enclosing outermost Execute); otherwise it is
// removed immediately. Returns ErrMembership if handle does not belong to
// this registry.
func (r *Registry) Remove(handle *Schedule) error {
	if r.closed() {
		return ErrDestroyed
	}
	idx, ok := r.index[handle]
	if !ok {
		return ErrMembership
	}

	if r.executionDepth > 0 {
		handle.tombstoned = true
		return nil
	}

	r.removeAt(idx)
	return nil
}

// removeAt physically removes the entry at idx, preserving registration
// order of the remaining entries (schedules are visited in registration
// order, so a swap-with-last delete would corrupt that ordering guarantee),
// and keeps index in sync.
func (r *Registry) removeAt(idx int) {
	victim := r.entries[idx]
	copy(r.entries[idx:], r.entries[idx+1:])
	r.entries = r.entries[:len(r.entries)-1]

	delete(r.index, victim)
	for i := idx; i < len(r.entries); i++ {
		r.index[r.entries[i]] = i
	}
}

// sweepTombstoned physically removes every tombstoned Schedule. Called only
// when executionDepth returns to zero.
func (r *Registry) sweepTombstoned() {
	i := 0
	for i < len(r.entries) {
		if r.entries[i].tombstoned {
			r.removeAt(i)
			continue
		}
		i++
	}
}

// SetOffset stores the fixed UTC offset (in minutes) applied to every
// subsequent matching operation. Schedules are not reparsed. Rejects
// |minutes| > 1440.
func (r *Registry) SetOffset(minutes int) error {
	if r.closed() {
		return ErrDestroyed
	}
	if minutes < -1440 || minutes > 1440 {
		return ErrInvalidOffset
	}
	r.utcOffsetMinutes = minutes
	return nil
}

// GetOffset returns the currently configured UTC offset in minutes (0 for a
// destroyed or nil registry).
func (r *Registry) GetOffset() int {
	if r == nil || r.destroyed {
		return 0
	}
	return r.utcOffsetMinutes
}

// Len reports the number of live (non-tombstoned) schedules currently held.
func (r *Registry) Len() int {
	n := 0
	for _, s := range r.entries {
		if !s.tombstoned {
			n++
		}
	}
	return n
}
