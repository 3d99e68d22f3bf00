// Package schedule drives the engine's per-cargo spawn/join cadence. It
// follows OnTick_LinkGraph's design directly: two fixed tick-within-day
// offsets decide when any cargo may spawn or join a job, and a
// date-modulo-interval test spreads different cargos' turns evenly across
// the recalculation cycle instead of running every cargo on the same day.
// The tick source itself is niceyeti-tabular's channerics.NewTicker rather
// than a hand-rolled time.Ticker loop, matching this engine's
// channel-based worker idiom elsewhere.
package schedule

import (
	"time"

	"github.com/niceyeti/channerics"

	"github.com/katalvlaran/cargoflow/cargo"
)

// Default tick-within-day offsets, taken from the original simulator's
// COMPONENTS_JOIN_TICK/COMPONENTS_SPAWN_TICK constants, and the day length
// (in ticks) those offsets are measured against.
const (
	DefaultSpawnTick = 58
	DefaultJoinTick  = 21
	DefaultDayTicks  = 74
)

// Driver holds the tick offsets one simulator session uses; it carries no
// mutable state itself; the running date/tick-within-day counters live in
// Run's own local scope for the duration of one driver loop.
type Driver struct {
	spawnTick int
	joinTick  int
	dayTicks  int
}

// Option configures a Driver.
type Option func(*Driver)

// WithSpawnTick overrides the tick-within-day offset at which jobs spawn.
func WithSpawnTick(t int) Option { return func(d *Driver) { d.spawnTick = t } }

// WithJoinTick overrides the tick-within-day offset at which jobs join.
func WithJoinTick(t int) Option { return func(d *Driver) { d.joinTick = t } }

// WithDayTicks overrides how many ticks make up one simulated day, letting
// tests run a full day/night cycle in a handful of ticks instead of 74.
func WithDayTicks(t int) Option { return func(d *Driver) { d.dayTicks = t } }

// New creates a Driver using the original simulator's default tick offsets
// unless overridden by opts.
func New(opts ...Option) *Driver {
	d := &Driver{spawnTick: DefaultSpawnTick, joinTick: DefaultJoinTick, dayTicks: DefaultDayTicks}
	for _, opt := range opts {
		opt(d)
	}
	if d.dayTicks < 1 {
		d.dayTicks = 1
	}
	return d
}

// Due reports whether cargoID's turn falls on date, given its configured
// recalculation interval: date % interval == cargoID % interval. A
// recalcInterval of 0 is treated as 1, so every cargo is due every day
// rather than dividing by zero.
func Due(date int64, cargoID cargo.ID, recalcInterval uint32) bool {
	if recalcInterval == 0 {
		recalcInterval = 1
	}
	interval := int64(recalcInterval)
	return date%interval == int64(cargoID)%interval
}

// Run drives the spawn/join cadence until done is closed, treating each
// tick of tickInterval as one simulated tick-within-day. On the driver's
// spawn offset it calls onSpawn for every cargo in cargos whose turn is
// due today (per Due); on the join offset it calls onJoin the same way.
// Both callbacks receive the current simulated date, so a caller spawning
// a job can stamp its join date and a caller persisting registry state can
// record which date it last acted on. recalcInterval looks up each
// cargo's configured interval at call time, so a live configuration
// change takes effect on the next cycle without restarting the driver.
// Run blocks until done closes; callers that want the driver running in
// the background should invoke it in its own goroutine.
func (d *Driver) Run(done <-chan struct{}, tickInterval time.Duration, cargos []cargo.ID, recalcInterval func(cargo.ID) uint32, onSpawn, onJoin func(cargo.ID, int64)) {
	var date int64
	dateFract := 0

	for range channerics.NewTicker(done, tickInterval) {
		switch dateFract {
		case d.spawnTick:
			for _, c := range cargos {
				if Due(date, c, recalcInterval(c)) {
					onSpawn(c, date)
				}
			}
		case d.joinTick:
			for _, c := range cargos {
				if Due(date, c, recalcInterval(c)) {
					onJoin(c, date)
				}
			}
		}

		dateFract++
		if dateFract >= d.dayTicks {
			dateFract = 0
			date++
		}
	}
}
