// Package config loads engine configurations.
//
// Settings may come from a TOML file, a Starlark file, or name=expression
// assignments. In all cases the setting names are:
//
//	max_stack_depth     maximum subroutine call depth
//	initial_cell_count  initial tape length
//	abort_on_error      abort the run on recoverable errors
//	allow_tape_growth   grow the tape when moving past its end
//	max_cell_count      tape growth limit, 0 for none
//	max_markers         marker list capacity limit, 0 for none
package config

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"slices"

	"go.starlark.net/starlark"

	"github.com/ezrec/bfpp/engine"
)

type setting struct {
	name string
	get  func(cfg *engine.Config) starlark.Value
	set  func(cfg *engine.Config, value starlark.Value) error
}

func intSetting(name string, field func(cfg *engine.Config) *int) setting {
	return setting{
		name: name,
		get: func(cfg *engine.Config) starlark.Value {
			return starlark.MakeInt(*field(cfg))
		},
		set: func(cfg *engine.Config, value starlark.Value) (err error) {
			if _, ok := value.(starlark.Int); !ok {
				return ErrType
			}
			n, err := starlark.AsInt32(value)
			if err != nil {
				return
			}
			*field(cfg) = n
			return
		},
	}
}

func boolSetting(name string, field func(cfg *engine.Config) *bool) setting {
	return setting{
		name: name,
		get: func(cfg *engine.Config) starlark.Value {
			return starlark.Bool(*field(cfg))
		},
		set: func(cfg *engine.Config, value starlark.Value) (err error) {
			b, ok := value.(starlark.Bool)
			if !ok {
				return ErrType
			}
			*field(cfg) = bool(b)
			return
		},
	}
}

var _settings = []setting{
	intSetting("max_stack_depth", func(cfg *engine.Config) *int { return &cfg.MaxStackDepth }),
	intSetting("initial_cell_count", func(cfg *engine.Config) *int { return &cfg.CellCount }),
	boolSetting("abort_on_error", func(cfg *engine.Config) *bool { return &cfg.AbortOnError }),
	boolSetting("allow_tape_growth", func(cfg *engine.Config) *bool { return &cfg.AllowTapeGrowth }),
	intSetting("max_cell_count", func(cfg *engine.Config) *int { return &cfg.MaxCellCount }),
	intSetting("max_markers", func(cfg *engine.Config) *int { return &cfg.MaxMarkers }),
}

func lookup(name string) (s setting, ok bool) {
	n := slices.IndexFunc(_settings, func(s setting) bool { return s.name == name })
	if n < 0 {
		return
	}

	return _settings[n], true
}

// Names returns the setting names.
func Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, s := range _settings {
			if !yield(s.name) {
				return
			}
		}
	}
}

// All returns an iterator over the names and values of the settings.
func All(cfg engine.Config) iter.Seq2[string, string] {
	return func(yield func(name string, value string) bool) {
		for _, s := range _settings {
			if !yield(s.name, s.get(&cfg).String()) {
				return
			}
		}
	}
}

// Load applies the settings of a .toml or .star file, and validates the
// result. Errors name the file once.
func Load(cfg *engine.Config, path string) (err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	named := false
	switch filepath.Ext(path) {
	case ".toml":
		err = DecodeToml(cfg, inf)
	case ".star":
		err = DecodeStarlark(cfg, path, inf)
		named = hasPosition(err)
	default:
		err = ErrFormat(path)
		named = true
	}

	if err == nil {
		err = cfg.Validate()
	}

	if err != nil && !named {
		err = fmt.Errorf("%v: %w", path, err)
	}

	return
}
