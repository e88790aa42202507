package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape_Left(t *testing.T) {
	assert := assert.New(t)

	tp := NewTape(4, 0)
	assert.Equal(4, tp.Len())

	assert.Equal(MOVE_WRAP, tp.Left())
	assert.Equal(3, tp.Address)

	assert.Equal(MOVE_STEP, tp.Left())
	assert.Equal(2, tp.Address)
}

func TestTape_Right(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		count   int
		limit   int
		grow    bool
		move    Move
		address int
		length  int
	}){
		{"step", 4, 0, true, MOVE_STEP, 1, 4},
		{"wrap", 1, 0, false, MOVE_WRAP, 0, 1},
		{"grow", 1, 0, true, MOVE_GROW, 1, 9},
		{"grow_limit", 1, 9, true, MOVE_GROW, 1, 9},
		{"fail", 1, 8, true, MOVE_FAIL, 0, 1},
	}

	for _, entry := range table {
		tp := NewTape(entry.count, entry.limit)
		assert.Equal(entry.move, tp.Right(entry.grow), entry.name)
		assert.Equal(entry.address, tp.Address, entry.name)
		assert.Equal(entry.length, tp.Len(), entry.name)
	}
}

func TestTape_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	for count := 1; count < 8; count++ {
		tp := NewTape(count, 0)
		tp.Left()
		tp.Right(false)
		assert.Equal(0, tp.Address, count)
	}
}

func TestTape_Grow(t *testing.T) {
	assert := assert.New(t)

	tp := NewTape(2, 0)
	tp.Cells[1] = 0x55
	tp.Address = 1

	assert.Equal(MOVE_GROW, tp.Right(true))
	assert.Equal(11, tp.Len())
	assert.Equal(byte(0x55), tp.Cells[1])
	for _, cell := range tp.Cells[2:] {
		assert.Equal(byte(0), cell)
	}
}

func TestTape_Seek(t *testing.T) {
	assert := assert.New(t)

	tp := NewTape(4, 0)
	tp.Seek(3)
	assert.Equal(3, tp.Address)
	tp.SetCell(7)
	assert.Equal(byte(7), tp.Cells[3])

	tp.Seek(4)
	assert.Equal(0, tp.Address)
	tp.Seek(-1)
	assert.Equal(0, tp.Address)
}

func TestMove_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("grow", MOVE_GROW.String())
	assert.Equal("Move(9)", Move(9).String())
}
