package engine

import (
	"github.com/ezrec/bfpp/marker"
)

// Move is the result of an address movement on the tape.
type Move int

//go:generate go tool stringer -linecomment -type=Move
const (
	MOVE_STEP = Move(0) // step
	MOVE_WRAP = Move(1) // wrap
	MOVE_GROW = Move(2) // grow
	MOVE_FAIL = Move(3) // fail
)

// Tape is the cell memory of the engine, with its address register.
type Tape struct {
	Cells   []byte // Cell values.
	Address int    // Current cell.
	Limit   int    // Maximum number of cells, 0 for no limit.
}

// NewTape creates a zeroed tape of count cells.
func NewTape(count int, limit int) (tp *Tape) {
	tp = &Tape{
		Cells: make([]byte, count),
		Limit: limit,
	}

	return
}

// Len returns the current number of cells.
func (tp *Tape) Len() int {
	return len(tp.Cells)
}

// Cell returns the value of the current cell.
func (tp *Tape) Cell() byte {
	return tp.Cells[tp.Address]
}

// SetCell sets the value of the current cell.
func (tp *Tape) SetCell(value byte) {
	tp.Cells[tp.Address] = value
}

// Seek moves to an address. Addresses outside of the tape wrap to 0.
func (tp *Tape) Seek(address int) {
	if address < 0 || address >= len(tp.Cells) {
		address = 0
	}
	tp.Address = address
}

// Left moves one cell left. Moving left of address 0 wraps to the last cell.
func (tp *Tape) Left() (move Move) {
	move = MOVE_STEP
	if tp.Address == 0 {
		tp.Address = len(tp.Cells)
		move = MOVE_WRAP
	}
	tp.Address--

	return
}

// Right moves one cell right. Moving past the last cell grows the tape if
// grow is set, otherwise wraps to address 0. If the tape cannot grow within
// its limit, the address wraps to 0 and MOVE_FAIL is returned.
func (tp *Tape) Right(grow bool) (move Move) {
	tp.Address++
	if tp.Address < len(tp.Cells) {
		return MOVE_STEP
	}

	if !grow {
		tp.Address = 0
		return MOVE_WRAP
	}

	size := marker.Grow(len(tp.Cells))
	if tp.Limit > 0 && size > tp.Limit {
		tp.Address = 0
		return MOVE_FAIL
	}

	tp.Cells = append(tp.Cells, make([]byte, size-len(tp.Cells))...)
	return MOVE_GROW
}
