package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{Limit: 4}
	assert.True(s.Empty())
	assert.False(s.Full())

	s.Push(0x1234)
	assert.False(s.Empty())
	assert.Equal(1, s.Depth())
	assert.Equal(0x1234, s.Data[0])
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{Limit: 4}
	s.Push(0x1234)
	s.Push(0xABCD)

	val, ok := s.Pop()
	assert.True(ok)
	assert.Equal(0xABCD, val)
	assert.Equal(1, s.Depth())

	val, ok = s.Pop()
	assert.True(ok)
	assert.Equal(0x1234, val)
	assert.Equal(0, s.Depth())
}

func TestStack_Pop_Empty(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{Limit: 4}
	val, ok := s.Pop()
	assert.False(ok)
	assert.Equal(0, val)
}

func TestStack_Peek(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{Limit: 4}
	_, ok := s.Peek()
	assert.False(ok)

	s.Push(0x1234)
	s.Push(0xABCD)

	val, ok := s.Peek()
	assert.True(ok)
	assert.Equal(0xABCD, val)
	assert.Equal(2, s.Depth())
}

func TestStack_Full(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{Limit: 16}
	for i := 0; i < s.Limit; i++ {
		assert.False(s.Full())
		s.Push(i)
	}

	assert.True(s.Full())
	assert.False(s.Empty())

	s = &Stack{Limit: 0}
	assert.True(s.Full())
	assert.True(s.Empty())
}

func TestStack_Reset(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{Limit: 4}
	s.Reset()
	assert.True(s.Empty())

	s.Push(1)
	s.Push(2)
	s.Reset()
	assert.True(s.Empty())
	assert.Equal(0, s.Depth())
}
