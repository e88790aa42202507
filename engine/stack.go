package engine

// Stack is the bounded return stack of the engine.
type Stack struct {
	Limit int   // Maximum stack depth.
	Data  []int // Saved instruction pointers.
}

func (s *Stack) Push(value int) {
	s.Data = append(s.Data, value)
}

func (s *Stack) Pop() (value int, ok bool) {
	value, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Full() bool {
	return len(s.Data) >= s.Limit
}

func (s *Stack) Depth() int {
	return len(s.Data)
}

func (s *Stack) Peek() (value int, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
