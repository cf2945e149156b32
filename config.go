package art

import "fmt"

// DefaultArenaGrowthFactor is the value normalized selects for a zero
// ArenaGrowthFactor.
const DefaultArenaGrowthFactor = 2.0

// Config configures a tree beyond the bare capacity New accepts: a
// validated, normalized value type rather than a pile of functional
// options.
type Config struct {
	// InitialCapacity is the initial length of the row-id arena, passed to
	// NewRowArena. Zero means an empty arena: no row-id can be added until
	// Resize gives it a length, since Reserve does not change the length.
	InitialCapacity int
	// ArenaGrowthFactor is validated and normalized by NewWithConfig; zero
	// selects DefaultArenaGrowthFactor. The row-id arena does not use it:
	// Reserve and Resize grow the arena to exactly the requested size.
	ArenaGrowthFactor float64
	// Debug raises the package-wide tracer to debug level when the tree is
	// created; the level then applies to every tree and is not restored.
	// When false the tracer is left untouched.
	Debug bool
}

func (cfg Config) normalized() Config {
	if cfg.ArenaGrowthFactor == 0 {
		cfg.ArenaGrowthFactor = DefaultArenaGrowthFactor
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.InitialCapacity < 0 {
		return fmt.Errorf("%w: negative initial capacity %d", ErrInvalidConfig, cfg.InitialCapacity)
	}
	if cfg.ArenaGrowthFactor < 0 {
		return fmt.Errorf("%w: negative arena growth factor %v", ErrInvalidConfig, cfg.ArenaGrowthFactor)
	}
	if cfg.ArenaGrowthFactor != 0 && cfg.ArenaGrowthFactor < 1 {
		return fmt.Errorf("%w: arena growth factor %v must be >= 1", ErrInvalidConfig, cfg.ArenaGrowthFactor)
	}
	return nil
}
