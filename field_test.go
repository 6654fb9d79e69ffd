package nanocron

import "testing"

func TestFieldNextMatchSingleAtom(t *testing.T) {
	f := Field{Atoms: []Atom{{Start: 10, End: 50, Step: 5}}}

	v, ok := f.NextMatch(0, 59)
	if !ok || v != 10 {
		t.Fatalf("NextMatch(0, 59) = (%d, %v), want (10, true)", v, ok)
	}

	v, ok = f.NextMatch(12, 59)
	if !ok || v != 15 {
		t.Fatalf("NextMatch(12, 59) = (%d, %v), want (15, true)", v, ok)
	}

	v, ok = f.NextMatch(51, 59)
	if ok {
		t.Fatalf("NextMatch(51, 59) = (%d, true), want no match", v)
	}
}

func TestFieldNextMatchAcrossAtoms(t *testing.T) {
	f := Field{Atoms: []Atom{
		{Start: 0, End: 10, Step: 1},
		{Start: 40, End: 50, Step: 1},
	}}

	v, ok := f.NextMatch(11, 59)
	if !ok || v != 40 {
		t.Fatalf("NextMatch(11, 59) = (%d, %v), want (40, true)", v, ok)
	}
}

func TestFieldNextMatchLoGreaterThanHi(t *testing.T) {
	f := Field{Atoms: []Atom{{Start: 0, End: 59, Step: 1}}}
	if _, ok := f.NextMatch(30, 10); ok {
		t.Fatal("expected no match when lo > hi")
	}
}

func TestFieldNextMatchOverflowingStepContributesNothing(t *testing.T) {
	// start is near the top of the uint64 range; bumping it by the step to
	// reach minCandidate would overflow, so this atom must contribute
	// nothing rather than wrap around.
	const maxU64 = ^uint64(0)
	f := Field{Atoms: []Atom{{Start: maxU64 - 2, End: maxU64, Step: 10}}}

	if _, ok := f.NextMatch(maxU64-1, maxU64); ok {
		t.Fatal("expected overflowing atom to contribute no match")
	}
}

func TestAtomMatches(t *testing.T) {
	a := Atom{Start: 10, End: 20, Step: 3}
	for _, v := range []uint64{10, 13, 16, 19} {
		if !a.matches(v) {
			t.Errorf("expected %d to match", v)
		}
	}
	for _, v := range []uint64{9, 11, 20, 21} {
		if a.matches(v) {
			t.Errorf("expected %d not to match", v)
		}
	}
}
