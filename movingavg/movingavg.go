// Package movingavg smooths a station link's observed vehicle capacity over
// time, the way moving_average.h's MovingAverage<uint> template does. The
// engine's graph builder reads smoothed capacity rather than the latest raw
// observation, so a single unusually full or empty vehicle run doesn't
// swing a link's apparent capacity from one day to the next.
package movingavg

// Average holds the running moving-average state for one observed
// quantity (a link's capacity, in this engine's case), decayed once per
// simulated day over a configurable window length.
type Average struct {
	length uint
	value  uint32
}

// New creates an Average with the given window length, the number of days
// a fresh observation takes to fully displace the old running value.
// length must be at least 1; a zero or negative length is treated as 1,
// mirroring the source's assertion that length is always positive by
// falling back to the smallest valid window instead of panicking.
func New(length uint) *Average {
	if length < 1 {
		length = 1
	}
	return &Average{length: length}
}

// Length returns the averaging window in days.
func (a *Average) Length() uint { return a.length }

// Value returns the current smoothed value.
func (a *Average) Value() uint32 { return a.value }

// Decrease applies one day's decay to the running value: value * length /
// (length + 1), truncating. Called once per day for every link whose
// RunAverages turn has come up, before that day's fresh observations (if
// any) are folded in via Observe.
func (a *Average) Decrease() {
	a.value = uint32(uint64(a.value) * uint64(a.length) / uint64(a.length+1))
}

// Observe folds in a freshly observed raw value, adding it on top of
// whatever remains of the decayed running value. The source adds capacity
// observations directly onto the post-decrease value rather than blending
// them, so a link that has carried no traffic in a while still shows full
// credit for today's capacity instead of a damped fraction of it.
func (a *Average) Observe(raw uint32) {
	a.value += raw
}

// Monthly scales the running value to a monthly figure, matching
// value * 30 / length / unit from the source; unit defaults to 1 when the
// caller has no separate per-unit scaling (the engine's capacity figures
// need none).
func (a *Average) Monthly(unit uint32) uint32 {
	if unit == 0 {
		unit = 1
	}
	return uint32(uint64(a.value) * 30 / uint64(a.length) / uint64(unit))
}

// Scheduler runs each tracked Average's daily Decrease on its own day of a
// rolling cycle, the way RunAverages spreads every pool item's update
// across DayTicks ticks instead of updating the whole pool at once. Items
// are identified by a caller-assigned slot, the same role a station's pool
// index plays in the source: slot % cycleLength == tick % cycleLength
// picks which items are due on a given tick.
type Scheduler struct {
	cycleLength uint
	items       map[uint]*Average
}

// NewScheduler creates a Scheduler spreading updates over cycleLength
// ticks. A cycleLength of 0 is invalid input from the caller; it is
// coerced to 1 so every item runs on every tick rather than dividing by
// zero.
func NewScheduler(cycleLength uint) *Scheduler {
	if cycleLength < 1 {
		cycleLength = 1
	}
	return &Scheduler{cycleLength: cycleLength, items: make(map[uint]*Average)}
}

// Track registers avg under slot, so it will be decayed on its assigned
// tick of the scheduler's cycle.
func (s *Scheduler) Track(slot uint, avg *Average) {
	s.items[slot] = avg
}

// Untrack removes slot from the scheduler, called when a station's link is
// torn down.
func (s *Scheduler) Untrack(slot uint) {
	delete(s.items, slot)
}

// Tick decays every tracked Average whose slot is due on the given tick
// counter value.
func (s *Scheduler) Tick(tick uint) {
	due := tick % s.cycleLength
	for slot, avg := range s.items {
		if slot%s.cycleLength == due {
			avg.Decrease()
		}
	}
}
