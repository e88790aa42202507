package io

import (
	"errors"
	"io"
)

// Stream provides the byte input and output of a BF++ program.
// It wraps an io.Reader for input and io.Writer for output.
//
// Once a read from Input fails, the stream is exhausted and no further reads
// are attempted until Rewind.
type Stream struct {
	Input  io.Reader
	Output io.Writer

	exhausted bool

	Reads  int // Bytes read since the last Rewind.
	Writes int // Bytes written since the last Rewind.
}

var _ io.ByteReader = (*Stream)(nil)
var _ io.ByteWriter = (*Stream)(nil)

// Rewind clears the end of input state and the counters.
// The underlying reader is not rewound.
func (st *Stream) Rewind() {
	st.exhausted = false
	st.Reads = 0
	st.Writes = 0
}

// Exhausted returns true if the input has reached its end.
func (st *Stream) Exhausted() bool {
	return st.exhausted
}

// ReadByte reads the next input byte.
// Returns ErrExhausted at, and after, the end of the input.
func (st *Stream) ReadByte() (value byte, err error) {
	if st.exhausted {
		err = ErrExhausted
		return
	}

	if st.Input == nil {
		st.exhausted = true
		err = ErrExhausted
		return
	}

	var one [1]byte
	_, err = io.ReadFull(st.Input, one[:])
	if err != nil {
		st.exhausted = true
		if errors.Is(err, io.EOF) {
			err = ErrExhausted
		} else {
			err = errors.Join(ErrExhausted, err)
		}
		return
	}

	st.Reads++
	value = one[0]
	return
}

// WriteByte writes a byte to the output. Output is discarded if there is no
// Output writer.
func (st *Stream) WriteByte(value byte) (err error) {
	if st.Output == nil {
		return
	}

	_, err = st.Output.Write([]byte{value})
	if err != nil {
		return
	}

	st.Writes++
	return
}
