package marker

import (
	"iter"
	"slices"
	"strings"
)

const (
	INITIAL_CAPACITY = 8 // Starting capacity of a marker list.
)

// Grow returns the capacity following size.
func Grow(size int) int {
	return size*3/2 + 8
}

// List is an ascending list of program positions.
type List struct {
	positions []int
}

// Indexer builds marker lists.
type Indexer struct {
	Limit int // Maximum list capacity, 0 for no limit.
}

// Mark returns the list of every position in text whose character is in
// focus, using an unlimited Indexer. The list is never nil.
// Mark panics if focus is empty.
func Mark(text []byte, focus string) (list *List) {
	ix := &Indexer{}
	list, err := ix.Mark(text, focus)
	if err != nil {
		panic(err)
	}

	return
}

// Mark returns the list of every position in text whose character is in
// focus. If the list would grow past the indexer limit, the list is
// abandoned and ErrCapacity is returned with a nil list.
func (ix *Indexer) Mark(text []byte, focus string) (list *List, err error) {
	if len(focus) == 0 {
		err = ErrFocusEmpty
		return
	}

	size := INITIAL_CAPACITY
	if !ix.allowed(size) {
		err = ErrCapacity
		return
	}

	positions := make([]int, 0, size)
	for pos, c := range text {
		if strings.IndexByte(focus, c) < 0 {
			continue
		}

		// Keep room for one more entry after this one.
		if len(positions)+1 >= cap(positions) {
			size = Grow(cap(positions))
			if !ix.allowed(size) {
				err = ErrCapacity
				return
			}
			grown := make([]int, len(positions), size)
			copy(grown, positions)
			positions = grown
		}

		positions = append(positions, pos)
	}

	list = &List{positions: positions}
	return
}

func (ix *Indexer) allowed(size int) bool {
	return ix.Limit <= 0 || size <= ix.Limit
}

// Len returns the number of markers.
func (l *List) Len() int {
	if l == nil {
		return 0
	}

	return len(l.positions)
}

// Cap returns the capacity of the backing storage.
func (l *List) Cap() int {
	if l == nil {
		return 0
	}

	return cap(l.positions)
}

// At returns the n'th marker position.
func (l *List) At(n int) (pos int, ok bool) {
	if n < 0 || n >= l.Len() {
		return
	}

	return l.positions[n], true
}

// Index returns the index of the marker at position pos.
func (l *List) Index(pos int) (n int, ok bool) {
	if l.Len() == 0 {
		return
	}

	n, ok = slices.BinarySearch(l.positions, pos)
	if !ok {
		n = 0
	}

	return
}

// All returns an iterator over the index and position of every marker.
func (l *List) All() iter.Seq2[int, int] {
	if l == nil {
		return func(yield func(int, int) bool) {}
	}

	return slices.All(l.positions)
}

// Forward finds the position of the close character that pairs with the
// open character at marker n, skipping nested pairs.
func (l *List) Forward(text []byte, n int, open, close byte) (pos int, ok bool) {
	depth := 0
	for j := n + 1; j < l.Len(); j++ {
		at := l.positions[j]
		switch text[at] {
		case open:
			depth++
		case close:
			if depth == 0 {
				return at, true
			}
			depth--
		}
	}

	return
}

// Backward finds the position of the open character that pairs with the
// close character at marker n, skipping nested pairs.
func (l *List) Backward(text []byte, n int, open, close byte) (pos int, ok bool) {
	depth := 0
	for j := n - 1; j >= 0 && j < l.Len(); j-- {
		at := l.positions[j]
		switch text[at] {
		case close:
			depth++
		case open:
			if depth == 0 {
				return at, true
			}
			depth--
		}
	}

	return
}
