package config

import (
	"errors"
	"strings"

	"go.starlark.net/resolve"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/bfpp/engine"
)

// predeclared returns the names visible to configuration scripts.
func predeclared() starlark.StringDict {
	return starlark.StringDict{
		"DEFAULT_STACK_DEPTH": starlark.MakeInt(engine.DEFAULT_STACK_DEPTH),
		"DEFAULT_CELL_COUNT":  starlark.MakeInt(engine.DEFAULT_CELL_COUNT),
	}
}

// DecodeStarlark executes a Starlark script, and applies the values of its
// globals that are setting names. Other globals are ignored.
// The src parameter is as for starlark.ExecFileOptions.
func DecodeStarlark(cfg *engine.Config, filename string, src any) (err error) {
	thread := starlark.Thread{Name: filename}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, &thread, filename, src, predeclared())
	if err != nil {
		return
	}

	update := *cfg
	for _, s := range _settings {
		value, ok := globals[s.name]
		if !ok {
			continue
		}
		err = s.set(&update, value)
		if err != nil {
			err = ErrSetting{Name: s.name, Err: err}
			return
		}
	}

	*cfg = update
	return
}

// Set applies a name=expression assignment. The expression is evaluated
// by Starlark, with the current settings visible by name.
func Set(cfg *engine.Config, assignment string) (err error) {
	name, expr, ok := strings.Cut(assignment, "=")
	name = strings.TrimSpace(name)
	if !ok || len(name) == 0 || len(strings.TrimSpace(expr)) == 0 {
		err = ErrAssignment
		return
	}

	s, ok := lookup(name)
	if !ok {
		err = ErrUnknown(name)
		return
	}

	pred := predeclared()
	for _, each := range _settings {
		pred[each.name] = each.get(cfg)
	}
	pred["true"] = starlark.True
	pred["false"] = starlark.False

	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	prog := "rc=" + strings.TrimSpace(expr) + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, name, prog, pred)
	if err != nil {
		err = ErrSetting{Name: name, Err: err}
		return
	}

	err = s.set(cfg, dict["rc"])
	if err != nil {
		err = ErrSetting{Name: name, Err: err}
	}

	return
}

// hasPosition is true for script errors that begin with a file position.
func hasPosition(err error) bool {
	var serr syntax.Error
	var rerr resolve.ErrorList
	return errors.As(err, &serr) || errors.As(err, &rerr)
}
