// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package runner executes BF++ programs one after another.
package runner

import (
	"errors"
	"iter"
	"log"

	"github.com/ezrec/bfpp/engine"
	"github.com/ezrec/bfpp/internal"
	"github.com/ezrec/bfpp/io"
)

// Runner state. Configuration + IO stream.
type Runner struct {
	Verbose bool          // If set, enables verbose logging.
	Config  engine.Config // Configuration of every run.
	Stream  io.Stream     // Input and output of every run.

	Runs int // Programs run.
}

// NewRunner creates a new runner.
func NewRunner(cfg engine.Config) (rn *Runner) {
	rn = &Runner{
		Config: cfg,
	}

	return
}

// Sources joins the inline program texts and the program files, in that
// order.
func Sources(exprs []string, paths []string) iter.Seq2[Source, error] {
	return internal.IterSeq2Concat(Exprs(exprs...), Files(paths...))
}

// Run runs each source in turn. A failed source does not stop the
// sources after it; all errors are joined.
func (rn *Runner) Run(sources iter.Seq2[Source, error]) (err error) {
	var errs []error

	for src, serr := range sources {
		if serr == nil {
			serr = rn.RunSource(src)
		}
		if serr != nil {
			if rn.Verbose {
				log.Printf("runner: %v", serr)
			}
			errs = append(errs, serr)
		}
	}

	err = errors.Join(errs...)

	return
}

// RunSource runs a single program, with a fresh engine.
func (rn *Runner) RunSource(src Source) (err error) {
	if rn.Verbose {
		log.Printf("runner: %v: %v bytes", src.Name, len(src.Text))
	}

	rn.Stream.Rewind()

	eng := engine.New(src.Text, rn.Config, &rn.Stream, &rn.Stream)
	eng.Verbose = rn.Verbose

	rn.Runs++

	err = eng.Run()
	if err != nil {
		lineno, column := Position(src.Text, eng.Ip)
		err = &ErrRuntime{
			Name:   src.Name,
			Ip:     eng.Ip,
			LineNo: lineno,
			Column: column,
			Err:    err,
		}
		if rn.Verbose && eng.Tape != nil {
			log.Printf("runner: %v: abort\n%v", src.Name, eng)
		}
		return
	}

	if rn.Verbose {
		log.Printf("runner: %v: %v ticks, %v read, %v written", src.Name, eng.Ticks, rn.Stream.Reads, rn.Stream.Writes)
	}

	return
}
