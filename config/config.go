package config

// CargoID mirrors cargo.ID's underlying representation without importing
// the cargo package, which itself embeds a config.Snapshot in its
// Component type — config must stay a leaf dependency.
type CargoID int32

// Option customizes a Config before it is frozen into a Snapshot.
//
// As a rule, option constructors never panic at runtime. Out-of-range
// inputs are either ignored (keeping the value they would otherwise
// override) or clamped, as each option's own doc comment states.
type Option func(cfg *Config)

// Config holds the engine-wide tunables that drive demand calculation and
// flow routing, loaded once per simulator session and read thereafter by
// the graph builder, demand calculator, and MCF solver. Config itself is
// mutable (so a running session can be reconfigured between cargos' jobs);
// each Component instead carries a frozen Snapshot taken when it was built.
type Config struct {
	// Shapes maps a cargo type to its distribution shape. A cargo absent
	// from this map defaults to ShapeSymmetric.
	Shapes map[CargoID]Shape

	// Accuracy bounds how many passes the demand calculator and MCF solver
	// make to converge; higher values trade CPU for precision. Must be >= 1.
	Accuracy uint32

	// ModSize is a percentage (0-100 typical, unbounded in practice) tuning
	// how strongly a destination's own supply weights the demand assigned
	// to it under the symmetric shape; 0 ignores destination supply.
	ModSize uint32

	// ModDistance is a percentage tuning how strongly distance suppresses
	// demand share; values above 100 square the excess over 100 for a
	// sharper falloff.
	ModDistance uint32

	// ShortPathSaturation is the percentage of an edge's capacity pass 1
	// is allowed to saturate before falling back to normal flow pushing.
	ShortPathSaturation uint32

	// RecalcInterval is, in simulated days, how often each cargo's graph
	// registry is allowed to spawn a new component job.
	RecalcInterval uint32

	// MovingAverageLength is, in simulated days, the smoothing window
	// applied to observed link capacities before the graph builder reads
	// them.
	MovingAverageLength uint32
}

// defaults mirrors OpenTTD's stock linkgraph settings.
func defaults() *Config {
	return &Config{
		Shapes:              make(map[CargoID]Shape),
		Accuracy:            16,
		ModSize:             100,
		ModDistance:         100,
		ShortPathSaturation: 80,
		RecalcInterval:      32,
		MovingAverageLength: 96,
	}
}

// New returns a Config initialized with defaults, then applies each
// provided Option in order. Later options override earlier ones.
func New(opts ...Option) *Config {
	cfg := defaults()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithAccuracy overrides Accuracy. Values below 1 are ignored.
func WithAccuracy(accuracy uint32) Option {
	return func(cfg *Config) {
		if accuracy >= 1 {
			cfg.Accuracy = accuracy
		}
	}
}

// WithModSize overrides ModSize.
func WithModSize(pct uint32) Option {
	return func(cfg *Config) { cfg.ModSize = pct }
}

// WithModDistance overrides ModDistance. Values above 100 are permitted:
// the demand calculator squares the excess to sharpen distance falloff.
func WithModDistance(pct uint32) Option {
	return func(cfg *Config) { cfg.ModDistance = pct }
}

// WithShortPathSaturation overrides ShortPathSaturation. Values above 100
// are clamped to 100.
func WithShortPathSaturation(pct uint32) Option {
	return func(cfg *Config) {
		if pct > 100 {
			pct = 100
		}
		cfg.ShortPathSaturation = pct
	}
}

// WithRecalcInterval overrides RecalcInterval. Values below 1 are ignored.
func WithRecalcInterval(days uint32) Option {
	return func(cfg *Config) {
		if days >= 1 {
			cfg.RecalcInterval = days
		}
	}
}

// WithMovingAverageLength overrides MovingAverageLength. A zero length is
// ignored (it would make the moving average divide by zero).
func WithMovingAverageLength(days uint32) Option {
	return func(cfg *Config) {
		if days >= 1 {
			cfg.MovingAverageLength = days
		}
	}
}

// WithShape sets the distribution shape for one cargo type.
func WithShape(c CargoID, shape Shape) Option {
	return func(cfg *Config) {
		if cfg.Shapes == nil {
			cfg.Shapes = make(map[CargoID]Shape)
		}
		cfg.Shapes[c] = shape
	}
}

// ShapeFor returns the configured distribution shape for c, defaulting to
// ShapeSymmetric when c has no explicit entry.
func (cfg *Config) ShapeFor(c CargoID) Shape {
	if cfg.Shapes == nil {
		return ShapeSymmetric
	}
	if s, ok := cfg.Shapes[c]; ok {
		return s
	}
	return ShapeSymmetric
}

// Snapshot freezes the tunables relevant to one cargo's component into an
// immutable value a Component can carry for its whole lifetime.
func (cfg *Config) Snapshot(c CargoID) Snapshot {
	return Snapshot{
		Shape:               cfg.ShapeFor(c),
		Accuracy:            cfg.Accuracy,
		ModSize:             cfg.ModSize,
		ModDistance:         cfg.ModDistance,
		ShortPathSaturation: cfg.ShortPathSaturation,
		RecalcInterval:      cfg.RecalcInterval,
		MovingAverageLength: cfg.MovingAverageLength,
	}
}

// Validate checks the tunables that must hold for the demand calculator
// and MCF solver to behave, returning the first violated sentinel error.
func (cfg *Config) Validate() error {
	if cfg.Accuracy < 1 {
		return ErrInvalidAccuracy
	}
	if cfg.RecalcInterval < 1 {
		return ErrInvalidInterval
	}
	if cfg.ModSize > 1000 || cfg.ModDistance > 1000 {
		return ErrInvalidPercent
	}
	return nil
}
