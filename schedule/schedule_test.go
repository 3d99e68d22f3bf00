package schedule

import (
	"sync"
	"testing"
	"time"

	"github.com/katalvlaran/cargoflow/cargo"
)

func TestDueMatchesDateModuloInterval(t *testing.T) {
	// interval 4: cargo 2 is due on dates 2, 6, 10, ... and not on 3, 4, 5.
	if !Due(2, 2, 4) {
		t.Fatal("expected cargo 2 due on date 2 with interval 4")
	}
	if !Due(6, 2, 4) {
		t.Fatal("expected cargo 2 due on date 6 with interval 4")
	}
	if Due(3, 2, 4) {
		t.Fatal("did not expect cargo 2 due on date 3 with interval 4")
	}
}

func TestDueTreatsZeroIntervalAsOne(t *testing.T) {
	for date := int64(0); date < 5; date++ {
		if !Due(date, 7, 0) {
			t.Fatalf("expected every date due with a zero interval, date %d was not", date)
		}
	}
}

func TestNewCoercesInvalidDayTicksToOne(t *testing.T) {
	d := New(WithDayTicks(0))
	if d.dayTicks != 1 {
		t.Fatalf("expected dayTicks coerced to 1, got %d", d.dayTicks)
	}
}

func TestRunInvokesSpawnAndJoinAtConfiguredOffsets(t *testing.T) {
	// A 4-tick day with spawn at offset 2 and join at offset 0 means every
	// fourth tick should fire the corresponding callback, since cargo 0's
	// recalc interval of 1 makes it due on every date.
	d := New(WithDayTicks(4), WithSpawnTick(2), WithJoinTick(0))

	var mu sync.Mutex
	var spawned, joined int

	done := make(chan struct{})
	go d.Run(done, time.Millisecond, []cargo.ID{0}, func(cargo.ID) uint32 { return 1 },
		func(cargo.ID, int64) {
			mu.Lock()
			spawned++
			mu.Unlock()
		},
		func(cargo.ID, int64) {
			mu.Lock()
			joined++
			mu.Unlock()
		},
	)

	time.Sleep(50 * time.Millisecond)
	close(done)
	time.Sleep(5 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if spawned == 0 {
		t.Fatal("expected at least one spawn callback to have fired")
	}
	if joined == 0 {
		t.Fatal("expected at least one join callback to have fired")
	}
}

func TestRunSkipsCargoNotDueToday(t *testing.T) {
	d := New(WithDayTicks(2), WithSpawnTick(0), WithJoinTick(1))

	var mu sync.Mutex
	var spawned int

	done := make(chan struct{})
	// With a recalc interval of 1_000_000, this cargo ID's remainder
	// (999_999) is far larger than any date this short run could possibly
	// reach, so date%interval never equals cargoID%interval and it is never
	// due.
	const farCargo cargo.ID = 999_999
	go d.Run(done, time.Millisecond, []cargo.ID{farCargo}, func(cargo.ID) uint32 { return 1_000_000 },
		func(cargo.ID, int64) {
			mu.Lock()
			spawned++
			mu.Unlock()
		},
		func(cargo.ID, int64) {},
	)

	time.Sleep(20 * time.Millisecond)
	close(done)
	time.Sleep(5 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if spawned != 0 {
		t.Fatalf("expected cargo not due today to never spawn, got %d spawns", spawned)
	}
}
