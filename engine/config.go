package engine

const (
	DEFAULT_STACK_DEPTH = 1024 // Default maximum call stack depth.
	DEFAULT_CELL_COUNT  = 1024 // Default initial tape length.
)

// Config is the run configuration of an engine. It does not change during
// a run.
type Config struct {
	MaxStackDepth   int  `toml:"max_stack_depth"`    // Maximum call stack depth.
	CellCount       int  `toml:"initial_cell_count"` // Initial tape length.
	AbortOnError    bool `toml:"abort_on_error"`     // Abort on recoverable errors.
	AllowTapeGrowth bool `toml:"allow_tape_growth"`  // Grow the tape when moving past its end.
	MaxCellCount    int  `toml:"max_cell_count"`     // Tape growth limit, 0 for none.
	MaxMarkers      int  `toml:"max_markers"`        // Marker list capacity limit, 0 for none.
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MaxStackDepth:   DEFAULT_STACK_DEPTH,
		CellCount:       DEFAULT_CELL_COUNT,
		AbortOnError:    true,
		AllowTapeGrowth: true,
	}
}

// Validate checks the configuration for impossible settings.
func (cfg Config) Validate() (err error) {
	switch {
	case cfg.MaxStackDepth < 0:
		err = ErrConfig("max_stack_depth")
	case cfg.CellCount < 1:
		err = ErrConfig("initial_cell_count")
	case cfg.MaxCellCount < 0, cfg.MaxCellCount > 0 && cfg.MaxCellCount < cfg.CellCount:
		err = ErrConfig("max_cell_count")
	case cfg.MaxMarkers < 0:
		err = ErrConfig("max_markers")
	}

	return
}
