// Package engineerr is the engine's typed-error and event-logging helper,
// mirroring flow package's EdgeError: a small struct implementing error
// that carries structured context instead of flattening it into a string
// up front. There is no single logging library shared by the retrieved
// reference repos, so this package logs through the standard library's
// log package directly rather than pulling in a third-party logger
// arbitrarily; structured fields for dashboards live in the metrics/
// tracing layer instead, not here.
package engineerr

import (
	"fmt"
	"log"

	"github.com/katalvlaran/cargoflow/cargo"
)

// JobError reports a failure attributable to one cargo's job, carrying
// enough context to log or surface without re-parsing a formatted string.
type JobError struct {
	Cargo     cargo.ID
	Component int
	Handler   string
	Err       error
}

func (e JobError) Error() string {
	return fmt.Sprintf("engine: cargo %d component %d handler %s: %v", e.Cargo, e.Component, e.Handler, e.Err)
}

func (e JobError) Unwrap() error { return e.Err }

// Infof logs an informational event — worker-creation fallback, a
// transient station going invalid, and similar non-error conditions spec
// §7 says should be logged but not escalated.
func Infof(format string, args ...any) {
	log.Printf("INFO: "+format, args...)
}

// Warnf logs a recoverable condition worth an operator's attention, such
// as a corrupt-save load being rejected.
func Warnf(format string, args ...any) {
	log.Printf("WARN: "+format, args...)
}
