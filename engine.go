package cargoflow

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/cargoflow/cargo"
	"github.com/katalvlaran/cargoflow/config"
	"github.com/katalvlaran/cargoflow/graphbuilder"
	"github.com/katalvlaran/cargoflow/internal/engineerr"
	"github.com/katalvlaran/cargoflow/job"
	"github.com/katalvlaran/cargoflow/metrics"
	"github.com/katalvlaran/cargoflow/persist"
	"github.com/katalvlaran/cargoflow/registry"
	"github.com/katalvlaran/cargoflow/schedule"
	"github.com/katalvlaran/cargoflow/station"
)

// Engine is the top-level object a simulator process constructs once per
// session. It owns one registry.Registry per cargo type, runs schedule's
// tick driver against station.Observer, hands discovered components to
// job.Spawn, and folds each finished job's routes into a station.Registry
// the simulator reads from. Persistence is optional: a nil Store (the
// zero value of Engine's store field) simply skips every save/load call.
type Engine struct {
	mu sync.Mutex

	cfg      *config.Config
	observer station.Observer
	cargos   []cargo.ID

	registries map[cargo.ID]*registry.Registry
	jobs       map[cargo.ID]map[int]*job.Job

	routes     *station.Registry
	store      persist.Store
	collectors *metrics.Collectors
	driver     *schedule.Driver
}

// Option customizes an Engine at construction time.
type Option func(*Engine)

// WithStore gives the engine a persistence backend. Without this option
// the engine keeps all state in memory only.
func WithStore(store persist.Store) Option {
	return func(e *Engine) { e.store = store }
}

// WithMetrics registers the engine's Prometheus collectors against
// registerer instead of the default registry.
func WithMetrics(registerer prometheus.Registerer) Option {
	return func(e *Engine) { e.collectors = metrics.New(registerer) }
}

// WithScheduleDriver overrides the default tick driver, letting callers
// configure a faster day length and tick offsets for tests and examples.
func WithScheduleDriver(d *schedule.Driver) Option {
	return func(e *Engine) { e.driver = d }
}

// New constructs an Engine for the given cargos, reading obs for station
// state and cfg for per-cargo tunables. If a Store was supplied via
// WithStore, every cargo's registry cursor is restored from it
// immediately so a restarted engine resumes its discovery sweep instead
// of starting over from station 0.
func New(cfg *config.Config, obs station.Observer, cargos []cargo.ID, opts ...Option) *Engine {
	e := &Engine{
		cfg:        cfg,
		observer:   obs,
		cargos:     append([]cargo.ID(nil), cargos...),
		registries: make(map[cargo.ID]*registry.Registry, len(cargos)),
		jobs:       make(map[cargo.ID]map[int]*job.Job, len(cargos)),
		routes:     station.NewRegistry(),
		driver:     schedule.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	for _, c := range cargos {
		r := registry.New(c)
		if e.store != nil {
			if state, err := e.store.LoadRegistry(context.Background(), c); err == nil {
				r.Restore(state.Cursor, state.Current)
			}
		}
		e.registries[c] = r
		e.jobs[c] = make(map[int]*job.Job)
	}
	return e
}

// Routes returns the per-station, per-cargo routing tables the engine has
// published so far, for the simulator to read vehicle destinations from.
func (e *Engine) Routes() *station.Registry { return e.routes }

// Run drives the engine's spawn/join cadence until ctx is canceled,
// ticking once every tickInterval. It blocks; callers that want it
// running in the background should invoke it in its own goroutine.
func (e *Engine) Run(ctx context.Context, tickInterval time.Duration) {
	done := make(chan struct{})
	go func() {
		<-ctx.Done()
		close(done)
	}()
	e.driver.Run(done, tickInterval, e.cargos, e.recalcInterval, e.onSpawnTick, e.onJoinTick)
}

func (e *Engine) recalcInterval(c cargo.ID) uint32 {
	return e.cfg.Snapshot(config.CargoID(c)).RecalcInterval
}

func (e *Engine) registryFor(c cargo.ID) *registry.Registry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registries[c]
}

// buildComponent adapts graphbuilder.Build to the fixed signature
// registry.NextComponent requires, so registry never has to import
// graphbuilder directly.
func buildComponent(obs station.Observer, c cargo.ID, seed cargo.StationID, settings config.Snapshot) (*cargo.Component, error) {
	return graphbuilder.Build(obs, c, seed, settings)
}

// onSpawnTick discovers the next eligible component for cargo c, if any,
// and starts its job running on a worker goroutine.
func (e *Engine) onSpawnTick(c cargo.ID, date int64) {
	reg := e.registryFor(c)
	settings := e.cfg.Snapshot(config.CargoID(c))

	comp, err := reg.NextComponent(e.observer, settings, buildComponent)
	if err != nil {
		engineerr.Warnf("engine: component discovery failed for cargo %d: %v", c, err)
		return
	}

	if e.store != nil {
		state := persist.RegistryState{Cargo: c, Cursor: reg.Cursor(), Current: reg.Generation()}
		if err := e.store.SaveRegistry(context.Background(), state); err != nil {
			engineerr.Warnf("engine: failed to persist registry state for cargo %d: %v", c, err)
		}
	}

	if comp == nil {
		return
	}

	joinDate := date + int64(settings.RecalcInterval)
	comp.SetJoinDate(joinDate)

	j := job.Spawn(context.Background(), c, comp, joinDate, e.collectors)

	e.mu.Lock()
	e.jobs[c][comp.ID()] = j
	e.mu.Unlock()
}

// onJoinTick joins every already-finished job for cargo c, publishing its
// routed flows into the engine's routing table registry and, if a store
// is configured, persisting the finished component.
func (e *Engine) onJoinTick(c cargo.ID, _ int64) {
	e.mu.Lock()
	live := e.jobs[c]
	finished := make([]*job.Job, 0, len(live))
	for id, j := range live {
		if j.Done() {
			finished = append(finished, j)
			delete(live, id)
		}
	}
	e.mu.Unlock()

	for _, j := range finished {
		if err := j.Join(e.collectors); err != nil {
			engineerr.Warnf("engine: job for cargo %d component %d failed: %v", c, j.Component.ID(), err)
			continue
		}
		e.publish(j.Component)
	}
}

// publish folds a finished component's per-node flows into the engine's
// routing table registry, skipping nodes whose station no longer exists,
// and, if a store is configured, saves the component's final state for
// inspection or crash recovery.
func (e *Engine) publish(comp *cargo.Component) {
	for i := 0; i < comp.Size(); i++ {
		node := comp.GetNode(i)
		if len(node.Flows) == 0 || !e.observer.Exists(node.Station) {
			continue
		}
		e.routes.Table(node.Station, comp.Cargo()).Merge(node.Flows)
	}

	if e.store == nil {
		return
	}
	if err := e.store.SaveComponent(context.Background(), persist.ToRecord(comp)); err != nil {
		engineerr.Warnf("engine: failed to persist finished component %d for cargo %d: %v", comp.ID(), comp.Cargo(), err)
	}
}
