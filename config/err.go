package config

import (
	"errors"

	"github.com/ezrec/bfpp/translate"
)

var f = translate.From

var (
	ErrAssignment = errors.New(f("assignment is not name=value"))
	ErrType       = errors.New(f("wrong type"))
)

// ErrUnknown is returned for an unknown setting name.
type ErrUnknown string

func (err ErrUnknown) Error() string {
	return f("setting %v unknown", string(err))
}

// ErrFormat is returned for a configuration file of unknown format.
type ErrFormat string

func (err ErrFormat) Error() string {
	return f("%v is not a .toml or .star file", string(err))
}

// ErrSetting indicates the setting that could not be applied.
type ErrSetting struct {
	Name string
	Err  error
}

func (err ErrSetting) Error() string {
	return f("setting %v %v", err.Name, err.Err)
}

func (err ErrSetting) Unwrap() error {
	return err.Err
}
