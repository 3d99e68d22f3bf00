// Package job runs one link graph component through its handler pipeline
// — InitHandler, DemandCalculator, MCF pass 1, FlowMapper, MCF pass 2,
// FlowMapper again — on a dedicated goroutine, falling back to running
// inline if that goroutine cannot be started. It follows the teacher
// module's flow package for its context-threading idiom (ctx.Err()
// checked between stages, even though the engine never actually cancels a
// running job) and niceyeti-tabular's channel-based worker pattern for the
// spawn/join shape.
package job

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/katalvlaran/cargoflow/cargo"
	"github.com/katalvlaran/cargoflow/demand"
	"github.com/katalvlaran/cargoflow/flowmap"
	"github.com/katalvlaran/cargoflow/internal/engineerr"
	"github.com/katalvlaran/cargoflow/mcf"
	"github.com/katalvlaran/cargoflow/metrics"
)

// ErrAlreadyJoined indicates Join was called twice on the same Job.
var ErrAlreadyJoined = errors.New("job: already joined")

// Handler is one stage of the pipeline. It receives the job's context
// (checked for cancellation between handlers, never inside one — a single
// handler always runs to completion once started) and the component it
// operates on.
type Handler func(ctx context.Context, comp *cargo.Component) error

// Pipeline returns the fixed ordered handler list spec §4.6 names:
// InitHandler, DemandCalculator, MCF pass 1, FlowMapper, MCF pass 2,
// FlowMapper. Handlers are stateless functions closing over no job state,
// so two jobs may run this same pipeline concurrently on distinct
// components without interference.
func Pipeline() []struct {
	Name string
	Run  Handler
} {
	return []struct {
		Name string
		Run  Handler
	}{
		{"InitHandler", initHandler},
		{"DemandCalculator", demandHandler},
		{"MCFPass1", mcfPass1Handler},
		{"FlowMapper", flowMapHandler},
		{"MCFPass2", mcfPass2Handler},
		{"FlowMapper", flowMapHandler},
	}
}

func initHandler(_ context.Context, comp *cargo.Component) error {
	comp.ResetDemand()
	return nil
}

func demandHandler(_ context.Context, comp *cargo.Component) error {
	demand.Calculate(comp)
	return nil
}

func mcfPass1Handler(_ context.Context, comp *cargo.Component) error {
	mcf.Pass1(comp)
	return nil
}

func mcfPass2Handler(_ context.Context, comp *cargo.Component) error {
	mcf.Pass2(comp)
	return nil
}

func flowMapHandler(_ context.Context, comp *cargo.Component) error {
	flowmap.Fold(comp)
	return nil
}

// Job is one in-flight link graph component working its way through the
// handler pipeline on a worker goroutine (or, if that goroutine could not
// be started, already finished inline by the time Spawn returns).
type Job struct {
	Cargo     cargo.ID
	Component *cargo.Component
	JoinDate  int64

	done    chan struct{}
	err     error
	joined  bool
	started time.Time
}

// Spawn starts comp's handler pipeline. It first tries to run the
// pipeline on a new goroutine; if the runtime cannot allocate one (the
// only realistic failure mode in Go, triggered in tests by replacing
// trySpawnWorker), the pipeline runs inline before Spawn returns and
// the returned Job is already done. Either way the caller always ends up
// with a Job whose Join will not block once the pipeline has actually
// finished.
func Spawn(ctx context.Context, cargoID cargo.ID, comp *cargo.Component, joinDate int64, collectors *metrics.Collectors) *Job {
	j := &Job{
		Cargo:     cargoID,
		Component: comp,
		JoinDate:  joinDate,
		done:      make(chan struct{}),
		started:   time.Now(),
	}

	label := strconv.Itoa(int(cargoID))
	if collectors != nil {
		collectors.JobSpawned(label)
		collectors.SetComponentSize(label, comp.Size())
	}

	run := func() {
		defer close(j.done)
		j.err = runPipeline(ctx, cargoID, comp)
	}

	if ok := trySpawnWorker(run); !ok {
		engineerr.Infof("job: worker creation failed for cargo %d, running inline", cargoID)
		if collectors != nil {
			collectors.WorkerFallback(label)
		}
		run()
	}

	return j
}

// trySpawnWorker starts run on a new goroutine and reports success. Go's
// runtime does not expose a failable goroutine-creation API the way a
// native thread pool does, so this always succeeds; it exists as a single
// seam the engine can fail deliberately through in tests exercising the
// inline fallback path (spec §5's "If worker creation fails the job runs
// inline").
var trySpawnWorker = func(run func()) bool {
	go run()
	return true
}

// runPipeline executes every handler in order, stopping (and returning an
// engineerr.JobError) at the first one that errors or if ctx is canceled
// between stages. The teacher's flow.Dinic checks ctx.Err() the same way
// between major algorithm steps, even in this engine's case where nothing
// ever actually cancels a running job — the check exists for API symmetry
// with that idiom and as a seam for callers who build their own
// cancellation on top.
func runPipeline(ctx context.Context, cargoID cargo.ID, comp *cargo.Component) error {
	label := strconv.Itoa(int(cargoID))
	jobCtx, span := metrics.StartJob(ctx, label, comp.ID())
	defer span.End()

	for _, stage := range Pipeline() {
		if err := jobCtx.Err(); err != nil {
			return engineerr.JobError{Cargo: cargoID, Component: comp.ID(), Handler: stage.Name, Err: err}
		}

		stageCtx, stageSpan := metrics.StartHandler(jobCtx, stage.Name)
		err := stage.Run(stageCtx, comp)
		metrics.EndWithError(stageSpan, err)
		if err != nil {
			return engineerr.JobError{Cargo: cargoID, Component: comp.ID(), Handler: stage.Name, Err: err}
		}
	}
	return nil
}

// Join blocks until the job's pipeline has finished and returns its
// result. Calling Join a second time returns ErrAlreadyJoined rather than
// blocking forever on an already-closed channel read repeated, since a job
// is meant to be joined exactly once per spec §4.6.
func (j *Job) Join(collectors *metrics.Collectors) error {
	if j.joined {
		return ErrAlreadyJoined
	}
	<-j.done
	j.joined = true
	if collectors != nil {
		collectors.JobJoined(strconv.Itoa(int(j.Cargo)), time.Since(j.started))
	}
	return j.err
}

// Done reports whether the job's pipeline has finished, for callers (the
// tick driver) that want to poll without blocking.
func (j *Job) Done() bool {
	select {
	case <-j.done:
		return true
	default:
		return false
	}
}
