package nanocron

import "testing"

func TestExecuteDedupSameInstant(t *testing.T) {
	r := New()
	var fired int
	r.Add("0 * * * * * *", func(any, Instant) { fired++ }, nil)

	now := Instant{Sec: 1_739_788_200}
	r.Execute(now)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}

	r.Execute(now)
	if fired != 1 {
		t.Fatalf("repeating Execute with the same instant: fired = %d, want 1", fired)
	}

	r.Execute(Instant{Sec: 1_739_788_201})
	if fired != 2 {
		t.Fatalf("fired = %d, want 2", fired)
	}
}

func TestExecuteNanosecondList(t *testing.T) {
	r := New()
	var fired int
	r.Add("250000000,750000000 * * * * * *", func(any, Instant) { fired++ }, nil)

	sec := int64(1_739_788_200)
	r.Execute(Instant{Sec: sec, Nsec: 250_000_000})
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}

	r.Execute(Instant{Sec: sec, Nsec: 750_000_000})
	if fired != 2 {
		t.Fatalf("fired = %d, want 2", fired)
	}

	r.Execute(Instant{Sec: sec, Nsec: 500_000_000})
	if fired != 2 {
		t.Fatalf("an instant between the two list members must not refire: fired = %d, want 2", fired)
	}
}

func TestExecuteVixieDomDowScenario(t *testing.T) {
	r := New()
	var fired int
	r.Add("0 0 0 0 1 * 5", func(any, Instant) { fired++ }, nil)

	r.Execute(Instant{Sec: 1_738_368_000}) // Sat, day 1: DOM matches
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}

	r.Execute(Instant{Sec: 1_738_886_400}) // Fri: DOW matches
	if fired != 2 {
		t.Fatalf("fired = %d, want 2", fired)
	}

	r.Execute(Instant{Sec: 1_738_531_200}) // neither field matches
	if fired != 2 {
		t.Fatalf("fired = %d, want 2 (no match expected)", fired)
	}
}

func TestExecuteSkipsOutOfRangeNanosecond(t *testing.T) {
	r := New()
	var fired int
	r.Add("* * * * * * *", func(any, Instant) { fired++ }, nil)

	r.Execute(Instant{Sec: 1, Nsec: 1_000_000_000})
	if fired != 0 {
		t.Fatal("an out-of-range nanosecond must be a silent no-op")
	}
}

func TestExecuteRegistrationOrder(t *testing.T) {
	r := New()
	var order []string
	r.Add("* * * * * * *", func(any, Instant) { order = append(order, "a") }, nil)
	r.Add("* * * * * * *", func(any, Instant) { order = append(order, "b") }, nil)
	r.Add("* * * * * * *", func(any, Instant) { order = append(order, "c") }, nil)

	r.Execute(Instant{Sec: 1})

	want := []string{"a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestExecuteReentrantAddVisitedPastCursor(t *testing.T) {
	r := New()
	var secondFired bool

	r.Add("* * * * * * *", func(any, Instant) {
		r.Add("* * * * * * *", func(any, Instant) { secondFired = true }, nil)
	}, nil)

	// A Schedule appended during a callback, past the iteration cursor, is
	// visited within the same Execute call: this registry grows r.entries
	// in place and the iteration bound is re-read on every step.
	r.Execute(Instant{Sec: 1})
	if !secondFired {
		t.Fatal("a schedule appended past the cursor should be visited in the same Execute call")
	}
}

func TestExecuteReentrantAddNotVisitedBeforeCursor(t *testing.T) {
	r := New()
	var order []string

	r.Add("* * * * * * *", func(any, Instant) {
		order = append(order, "a")
		r.Add("* * * * * * *", func(any, Instant) { order = append(order, "added") }, nil)
	}, nil)
	r.Add("* * * * * * *", func(any, Instant) { order = append(order, "b") }, nil)

	r.Execute(Instant{Sec: 1})

	want := []string{"a", "b", "added"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestExecuteReentrantRemoveSelf(t *testing.T) {
	r := New()
	var fired int
	var handle *Schedule

	handle, _ = r.Add("* * * * * * *", func(any, Instant) {
		fired++
		r.Remove(handle)
	}, nil)

	r.Execute(Instant{Sec: 1})
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}

	r.Execute(Instant{Sec: 2})
	if fired != 1 {
		t.Fatalf("a self-removed schedule must not fire again: fired = %d, want 1", fired)
	}
	if r.Len() != 0 {
		t.Fatal("expected the tombstoned schedule to be swept")
	}
}

func TestExecuteReentrantRemoveOtherDuringIteration(t *testing.T) {
	r := New()
	var aFired, bFired, cFired int

	var bHandle *Schedule
	r.Add("* * * * * * *", func(any, Instant) {
		aFired++
		r.Remove(bHandle)
	}, nil)
	bHandle, _ = r.Add("* * * * * * *", func(any, Instant) { bFired++ }, nil)
	r.Add("* * * * * * *", func(any, Instant) { cFired++ }, nil)

	r.Execute(Instant{Sec: 1})

	if aFired != 1 || cFired != 1 {
		t.Fatalf("aFired=%d cFired=%d, want 1,1", aFired, cFired)
	}
	if bFired != 0 {
		t.Fatalf("bFired=%d, want 0: b is removed before it is visited", bFired)
	}
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 after sweep", r.Len())
	}
}

func TestExecuteBetweenReplays(t *testing.T) {
	r := New()
	var fires []Instant
	r.Add("0 * * * * * *", func(_ any, at Instant) { fires = append(fires, at) }, nil)

	after := Instant{Sec: 1_739_788_200}
	until := Instant{Sec: 1_739_788_203}
	if err := r.ExecuteBetween(after, until); err != nil {
		t.Fatal(err)
	}

	if len(fires) != 3 {
		t.Fatalf("fires = %v, want 3 entries", fires)
	}
	if fires[len(fires)-1] != until {
		t.Fatalf("last fire = %v, want %v", fires[len(fires)-1], until)
	}
}

func TestExecuteBetweenNoOpWhenUntilNotAfter(t *testing.T) {
	r := New()
	var fired bool
	r.Add("* * * * * * *", func(any, Instant) { fired = true }, nil)

	now := Instant{Sec: 5}
	if err := r.ExecuteBetween(now, now); err != nil {
		t.Fatal(err)
	}
	if fired {
		t.Fatal("ExecuteBetween(t, t) must not fire anything")
	}
}
