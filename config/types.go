// Package config centralizes the cargo distribution engine's tunable
// settings behind a functional-options constructor, mirroring the
// nodeConfig/Option shape the scenario package uses for its graph
// constructors: a small struct with sane defaults, mutated in order by
// Option values.
package config

import "errors"

// Sentinel errors for configuration validation.
var (
	// ErrInvalidAccuracy indicates Accuracy was set below 1.
	ErrInvalidAccuracy = errors.New("config: accuracy must be >= 1")

	// ErrInvalidPercent indicates a percent-valued field fell outside [0, 1000].
	// Mod distance intentionally allows values above 100 (the engine squares
	// the excess to sharpen distance falloff), hence the generous upper bound.
	ErrInvalidPercent = errors.New("config: percent value out of range")

	// ErrInvalidInterval indicates RecalcInterval was set to zero.
	ErrInvalidInterval = errors.New("config: recalc interval must be >= 1")
)

// Shape selects how the demand calculator distributes supply across a
// component's nodes for one cargo.
type Shape int

const (
	// ShapeSymmetric makes demand roughly proportional to the product of
	// supplies at both ends and enforces a balanced return flow
	// (passenger-like distribution).
	ShapeSymmetric Shape = iota

	// ShapeAntisymmetric makes demand proportional to the source supply
	// only; no return flow is enforced (freight-like distribution).
	ShapeAntisymmetric

	// ShapeManual skips demand calculation for this cargo entirely.
	ShapeManual
)

// String renders the shape using the names used in configuration files.
func (s Shape) String() string {
	switch s {
	case ShapeSymmetric:
		return "symmetric"
	case ShapeAntisymmetric:
		return "antisymmetric"
	case ShapeManual:
		return "manual"
	default:
		return "unknown"
	}
}

// ParseShape parses the configuration-file spelling of a Shape.
func ParseShape(s string) (Shape, error) {
	switch s {
	case "symmetric":
		return ShapeSymmetric, nil
	case "antisymmetric":
		return ShapeAntisymmetric, nil
	case "manual", "off", "":
		return ShapeManual, nil
	default:
		return ShapeManual, errors.New("config: unknown distribution shape " + s)
	}
}

// Snapshot is the immutable configuration view a Component carries from the
// moment the graph builder constructs it, so background work sees a stable
// configuration even if the live Config changes mid-job.
type Snapshot struct {
	Shape                Shape
	Accuracy             uint32
	ModSize              uint32
	ModDistance          uint32
	ShortPathSaturation  uint32
	RecalcInterval       uint32
	MovingAverageLength  uint32
}
