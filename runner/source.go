package runner

import (
	"fmt"
	"iter"
	"os"
)

// Source is a named program text.
type Source struct {
	Name string
	Text []byte
}

// Files returns an iterator of sources read from files.
// A file that cannot be read yields its error.
func Files(paths ...string) iter.Seq2[Source, error] {
	return func(yield func(src Source, err error) bool) {
		for _, path := range paths {
			text, err := os.ReadFile(path)
			if !yield(Source{Name: path, Text: text}, err) {
				return
			}
		}
	}
}

// Exprs returns an iterator of sources from inline program texts.
func Exprs(texts ...string) iter.Seq2[Source, error] {
	return func(yield func(src Source, err error) bool) {
		for n, text := range texts {
			src := Source{
				Name: fmt.Sprintf("-e#%d", n+1),
				Text: []byte(text),
			}
			if !yield(src, nil) {
				return
			}
		}
	}
}

// Position returns the line and column, both from 1, of a position in text.
func Position(text []byte, pos int) (lineno int, column int) {
	lineno = 1
	column = 1
	for n, c := range text {
		if n >= pos {
			break
		}
		if c == '\n' {
			lineno++
			column = 1
		} else {
			column++
		}
	}

	return
}
