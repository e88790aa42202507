package engine

import (
	"errors"

	"github.com/ezrec/bfpp/translate"
)

var f = translate.From

var (
	// Abort reasons
	ErrTapeGrowth     = errors.New(f("tape growth failed"))
	ErrInputExhausted = errors.New(f("input exhausted"))
	ErrOutput         = errors.New(f("output failed"))
	ErrStackFull      = errors.New(f("stack full"))
	ErrStackEmpty     = errors.New(f("stack empty"))
	ErrTagRange       = errors.New(f("tag out of range"))
)

// ErrConfig is returned for an invalid configuration setting.
type ErrConfig string

func (err ErrConfig) Error() string {
	return f("config %v invalid", string(err))
}

// ErrAbort indicates the instruction that aborted a run.
type ErrAbort struct {
	Ip  int
	Op  Instruction
	Err error
}

func (err *ErrAbort) Error() string {
	return f("abort at %v '%v' %v", err.Ip, err.Op, err.Err)
}

func (err *ErrAbort) Unwrap() error {
	return err.Err
}
