package runner

import (
	"github.com/ezrec/bfpp/translate"
)

var f = translate.From

// ErrRuntime indicates the program location of a runtime error.
type ErrRuntime struct {
	Name   string // Program name.
	Ip     int    // Instruction pointer.
	LineNo int    // Line of the instruction pointer, from 1.
	Column int    // Column of the instruction pointer, from 1.
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("%v:%d:%d %v", err.Name, err.LineNo, err.Column, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
