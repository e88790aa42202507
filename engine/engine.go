package engine

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/ezrec/bfpp/marker"
)

const (
	FOCUS_LOOP = "[]" // Loop bracket marker focus.
	FOCUS_TAG  = ":"  // Subroutine tag marker focus.
)

// Engine is the execution state of a single BF++ program.
type Engine struct {
	Verbose bool // Set to enable verbose logging.

	Config Config        // Run configuration.
	Text   []byte        // Program text.
	Input  io.ByteReader // Input source, may be nil.
	Output io.ByteWriter // Output sink, may be nil.

	Ip    int   // Current instruction pointer.
	Tape  *Tape // Cell memory and address register.
	Mark  int   // Marked address register.
	Stack Stack // Return stack.

	Loops *marker.List // Loop bracket markers, nil if unavailable.
	Tags  *marker.List // Tag markers, nil if unavailable.

	Ticks int // Instructions executed since reset.

	exhausted bool
}

// New creates an engine for a program. The engine must be Reset before
// it can Tick.
func New(text []byte, cfg Config, input io.ByteReader, output io.ByteWriter) (eng *Engine) {
	eng = &Engine{
		Config: cfg,
		Text:   text,
		Input:  input,
		Output: output,
	}

	return
}

// Run executes a program to completion with a new engine.
func Run(text []byte, cfg Config, input io.ByteReader, output io.ByteWriter) error {
	return New(text, cfg, input, output).Run()
}

// Reset the engine state.
// - Validates the configuration.
// - Rebuilds the marker lists.
// - Allocates a zeroed tape.
// - Clears the registers, stack and end of input state.
func (eng *Engine) Reset() (err error) {
	cfg := eng.Config

	err = cfg.Validate()
	if err != nil {
		return
	}

	if eng.Verbose {
		log.Printf("engine: reset")
	}

	ix := &marker.Indexer{Limit: cfg.MaxMarkers}
	// Unavailable markers make every jump a no-op.
	eng.Loops, err = ix.Mark(eng.Text, FOCUS_LOOP)
	if err != nil && eng.Verbose {
		log.Printf("engine: loop markers: %v", err)
	}
	eng.Tags, err = ix.Mark(eng.Text, FOCUS_TAG)
	if err != nil && eng.Verbose {
		log.Printf("engine: tag markers: %v", err)
	}
	err = nil

	eng.Tape = NewTape(cfg.CellCount, cfg.MaxCellCount)
	eng.Stack.Limit = cfg.MaxStackDepth
	eng.Stack.Reset()
	eng.Ip = 0
	eng.Mark = 0
	eng.Ticks = 0
	eng.exhausted = false

	return
}

// Done returns true when the instruction pointer has left the program.
func (eng *Engine) Done() bool {
	return eng.Ip >= len(eng.Text)
}

// Exhausted returns true once the input source has reached its end.
func (eng *Engine) Exhausted() bool {
	return eng.exhausted
}

// Run resets the engine, and executes the program until it ends or aborts.
func (eng *Engine) Run() (err error) {
	err = eng.Reset()
	if err != nil {
		return
	}

	for done := eng.Done(); !done; {
		done, err = eng.Tick()
		if err != nil {
			break
		}
	}

	if eng.Verbose {
		log.Printf("engine: %v ticks, %v cells", eng.Ticks, eng.Tape.Len())
	}

	return
}

// Tick executes a single instruction.
func (eng *Engine) Tick() (done bool, err error) {
	if eng.Done() {
		done = true
		return
	}

	op := Decode(eng.Text[eng.Ip])
	if eng.Verbose && op != OP_NOP {
		log.Printf("engine: %04x: %v", eng.Ip, op)
	}

	next, err := eng.Execute(op)
	if err != nil {
		err = &ErrAbort{Ip: eng.Ip, Op: op, Err: err}
		return
	}

	eng.Ip = next
	eng.Ticks++

	done = eng.Done()
	return
}

// Execute executes a single instruction at the current instruction pointer,
// and returns the next instruction pointer.
func (eng *Engine) Execute(op Instruction) (next int, err error) {
	cfg := &eng.Config
	tape := eng.Tape

	next = eng.Ip + 1

	switch op {
	case OP_NOP:
		// pass
	case OP_LEFT:
		tape.Left()
	case OP_RIGHT:
		move := tape.Right(cfg.AllowTapeGrowth)
		if eng.Verbose && move != MOVE_STEP {
			log.Printf("engine: tape %v to %v cells", move, tape.Len())
		}
		if move == MOVE_FAIL && cfg.AbortOnError {
			err = ErrTapeGrowth
		}
	case OP_INC:
		tape.SetCell(tape.Cell() + 1)
	case OP_DEC:
		tape.SetCell(tape.Cell() - 1)
	case OP_OUTPUT:
		if eng.Output == nil {
			break
		}
		werr := eng.Output.WriteByte(tape.Cell())
		if werr != nil {
			err = errors.Join(ErrOutput, werr)
		}
	case OP_INPUT:
		tape.SetCell(0)
		if eng.exhausted {
			break
		}
		if eng.Input == nil {
			eng.exhausted = true
		} else {
			value, rerr := eng.Input.ReadByte()
			if rerr == nil {
				tape.SetCell(value)
				break
			}
			eng.exhausted = true
		}
		if cfg.AbortOnError {
			err = ErrInputExhausted
		}
	case OP_LOOP:
		if tape.Cell() != 0 {
			break
		}
		n, ok := eng.Loops.Index(eng.Ip)
		if !ok {
			break
		}
		pos, ok := eng.Loops.Forward(eng.Text, n, '[', ']')
		if ok {
			next = pos + 1
		}
	case OP_REPEAT:
		if tape.Cell() == 0 {
			break
		}
		n, ok := eng.Loops.Index(eng.Ip)
		if !ok {
			break
		}
		pos, ok := eng.Loops.Backward(eng.Text, n, '[', ']')
		if ok {
			next = pos + 1
		}
	case OP_TAG:
		if ip, ok := eng.Stack.Pop(); ok {
			next = ip + 1
			break
		}
		// Tag definition: record the ordinal, and skip the tag body.
		n, ok := eng.Tags.Index(eng.Ip)
		if !ok {
			break
		}
		tape.SetCell(byte(n))
		pos, ok := eng.Tags.At(n + 1)
		if ok {
			next = pos + 1
		}
	case OP_CALL:
		if eng.Stack.Full() {
			err = ErrStackFull
			break
		}
		eng.Stack.Push(eng.Ip)
		pos, ok := eng.Tags.At(int(tape.Cell()))
		switch {
		case ok:
			next = pos + 1
		case cfg.AbortOnError:
			err = ErrTagRange
		default:
			// Restart, as if the call target were position 0.
			next = 1
		}
	case OP_MARK:
		eng.Mark = tape.Address
	case OP_RECALL:
		tape.Seek(eng.Mark)
	case OP_HOME:
		tape.Seek(0)
	case OP_RETURN:
		ip, ok := eng.Stack.Pop()
		if !ok {
			err = ErrStackEmpty
			break
		}
		next = ip + 1
	case OP_NOT:
		if tape.Cell() == 0 {
			tape.SetCell(1)
		} else {
			tape.SetCell(0)
		}
	default:
		panic(fmt.Sprintf("engine: unknown instruction %v", op))
	}

	return
}

// String returns the current engine state as a string.
func (eng *Engine) String() (text string) {
	regs := []string{
		"ip", "op", "addr", "cell", "mark", "stack", "depth", "cells",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "ip":
			strval = fmt.Sprintf("%04x", eng.Ip)
		case "op":
			strval = "----"
			if !eng.Done() {
				strval = Decode(eng.Text[eng.Ip]).String()
			}
		case "addr":
			strval = fmt.Sprintf("%04x", eng.Tape.Address)
		case "cell":
			strval = fmt.Sprintf("%02x", eng.Tape.Cell())
		case "mark":
			strval = fmt.Sprintf("%04x", eng.Mark)
		case "stack":
			val, ok := eng.Stack.Peek()
			if ok {
				strval = fmt.Sprintf("%04x", val)
			} else {
				strval = "----"
			}
		case "depth":
			strval = fmt.Sprintf("%d/%d", eng.Stack.Depth(), eng.Stack.Limit)
		case "cells":
			strval = fmt.Sprintf("%d", eng.Tape.Len())
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}
