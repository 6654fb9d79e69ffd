package nanocron

import "errors"

// Sentinel errors. Use errors.Is to test for them; parse failures returned
// by Add wrap ErrParse with the specific reason via *ParseError.
var (
	// ErrParse is returned (wrapped in a *ParseError) when a schedule
	// expression violates the grammar.
	ErrParse = errors.New("nanocron: parse failure")

	// ErrMembership is returned by Remove when the handle does not belong
	// to the registry it was passed to.
	ErrMembership = errors.New("nanocron: handle is not a member of this registry")

	// ErrDestroyed is returned by Add, Remove, SetOffset and ExecuteBetween
	// on a registry whose destruction has been requested (immediately, or
	// deferred because it happened during callback execution).
	ErrDestroyed = errors.New("nanocron: registry is destroyed or pending destruction")

	// ErrInvalidOffset is returned by SetOffset when the minute offset
	// falls outside [-1440, 1440].
	ErrInvalidOffset = errors.New("nanocron: utc offset out of range [-1440, 1440]")

	// ErrInvalidInstant is returned when an Instant has an out-of-range
	// nanosecond component.
	ErrInvalidInstant = errors.New("nanocron: instant has out-of-range nanoseconds")
)
