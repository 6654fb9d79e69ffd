package nanocron

import "time"

// Instant is a (seconds since Unix epoch, nanoseconds-of-second) pair.
// Total order is lexicographic on that pair.
type Instant struct {
	Sec  int64
	Nsec int64
}

// Valid reports whether the nanosecond component is within [0, 999999999].
func (i Instant) Valid() bool {
	return i.Nsec >= 0 && i.Nsec <= 999_999_999
}

// Before reports whether i happens strictly before other.
func (i Instant) Before(other Instant) bool {
	if i.Sec != other.Sec {
		return i.Sec < other.Sec
	}
	return i.Nsec < other.Nsec
}

// After reports whether i happens strictly after other.
func (i Instant) After(other Instant) bool {
	return other.Before(i)
}

// Now returns the current UTC Instant read from the host clock. It is the
// only place in this package that touches the wall clock; everything else
// takes an Instant as an explicit argument.
func Now() Instant {
	t := time.Now().UTC()
	return Instant{Sec: t.Unix(), Nsec: int64(t.Nanosecond())}
}

// brokenDown holds the calendar fields the matcher compares against a
// Schedule's Fields, after applying the registry's UTC offset.
type brokenDown struct {
	nsec  uint64
	sec   uint64
	min   uint64
	hour  uint64
	dom   uint64
	month uint64
	dow   uint64
}

// breakDown decomposes the instant's seconds component, shifted by
// offsetMinutes*60, into calendar fields. The nanosecond is carried through
// unchanged (it is not affected by a timezone offset).
func breakDown(i Instant, offsetMinutes int) (brokenDown, bool) {
	shifted := i.Sec + int64(offsetMinutes)*60
	t := time.Unix(shifted, 0).UTC()
	return brokenDown{
		nsec:  uint64(i.Nsec),
		sec:   uint64(t.Second()),
		min:   uint64(t.Minute()),
		hour:  uint64(t.Hour()),
		dom:   uint64(t.Day()),
		month: uint64(t.Month()),
		dow:   uint64(t.Weekday()),
	}, true
}

// breakDownSeconds is like breakDown but for a raw seconds count that hasn't
// been paired with a nanosecond yet (used by the next-trigger search, which
// walks whole seconds).
func breakDownSeconds(sec int64, offsetMinutes int) brokenDown {
	shifted := sec + int64(offsetMinutes)*60
	t := time.Unix(shifted, 0).UTC()
	return brokenDown{
		sec:   uint64(t.Second()),
		min:   uint64(t.Minute()),
		hour:  uint64(t.Hour()),
		dom:   uint64(t.Day()),
		month: uint64(t.Month()),
		dow:   uint64(t.Weekday()),
	}
}

// value returns the field value at index idx (the same order as the seven
// Schedule fields: nanosecond, second, minute, hour, dom, month, dow).
func (b brokenDown) value(idx int) uint64 {
	switch idx {
	case fieldNanosecond:
		return b.nsec
	case fieldSecond:
		return b.sec
	case fieldMinute:
		return b.min
	case fieldHour:
		return b.hour
	case fieldDom:
		return b.dom
	case fieldMonth:
		return b.month
	case fieldDow:
		return b.dow
	default:
		return 0
	}
}
