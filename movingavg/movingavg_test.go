package movingavg

import "testing"

func TestDecreaseAppliesLengthRatio(t *testing.T) {
	a := New(4)
	a.Observe(100)
	a.Decrease()
	// 100 * 4 / 5 = 80
	if got := a.Value(); got != 80 {
		t.Fatalf("expected 80 after one decrease, got %d", got)
	}
}

func TestObserveAddsOnTopOfDecayedValue(t *testing.T) {
	a := New(4)
	a.Observe(100)
	a.Decrease()
	a.Observe(20)
	if got := a.Value(); got != 100 {
		t.Fatalf("expected 80+20=100, got %d", got)
	}
}

func TestNewCoercesInvalidLengthToOne(t *testing.T) {
	a := New(0)
	if a.Length() != 1 {
		t.Fatalf("expected length 1 for invalid input, got %d", a.Length())
	}
}

func TestMonthlyScalesToThirtyDays(t *testing.T) {
	a := New(10)
	a.Observe(100)
	// 100 * 30 / 10 / 1 = 300
	if got := a.Monthly(1); got != 300 {
		t.Fatalf("expected 300, got %d", got)
	}
}

func TestSchedulerTicksOnlyDueSlots(t *testing.T) {
	s := NewScheduler(8)
	a1 := New(4)
	a1.Observe(80)
	a2 := New(4)
	a2.Observe(80)
	s.Track(3, a1)
	s.Track(11, a2) // 11 % 8 == 3, same slot as a1

	s.Tick(3)
	if a1.Value() != 64 {
		t.Fatalf("expected a1 decayed to 64, got %d", a1.Value())
	}
	if a2.Value() != 64 {
		t.Fatalf("expected a2 (slot 11 %% 8 == 3) decayed to 64, got %d", a2.Value())
	}

	a3 := New(4)
	a3.Observe(80)
	s.Track(5, a3)
	s.Tick(3)
	if a3.Value() != 80 {
		t.Fatalf("slot 5 is not due on tick 3, expected untouched value 80, got %d", a3.Value())
	}
}

func TestSchedulerUntrackStopsUpdates(t *testing.T) {
	s := NewScheduler(4)
	a := New(4)
	a.Observe(80)
	s.Track(1, a)
	s.Untrack(1)

	s.Tick(1)
	if a.Value() != 80 {
		t.Fatalf("untracked average should not decay, got %d", a.Value())
	}
}
