package runner

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/bfpp/engine"
)

func doRun(rn *Runner, sources []Source, input []byte, t *testing.T) (output []byte, err error) {
	rn.Stream.Input = bytes.NewReader(input)
	buffer := &bytes.Buffer{}
	rn.Stream.Output = buffer

	err = rn.Run(func(yield func(Source, error) bool) {
		for _, src := range sources {
			if !yield(src, nil) {
				return
			}
		}
	})

	output = buffer.Bytes()
	return
}

func TestRunner(t *testing.T) {
	assert := assert.New(t)

	rn := NewRunner(engine.DefaultConfig())

	assert.False(rn.Verbose)
	assert.Equal(engine.DefaultConfig(), rn.Config)
	assert.Equal(0, rn.Runs)
}

func TestRunner_Sequential(t *testing.T) {
	assert := assert.New(t)

	rn := NewRunner(engine.DefaultConfig())
	rn.Verbose = true

	sources := []Source{
		{Name: "first", Text: []byte("++.>+.")},
		{Name: "second", Text: []byte(".,.")},
		{Name: "third", Text: []byte(">.")},
	}

	// Every program starts with a fresh tape.
	output, err := doRun(rn, sources, []byte("xyz"), t)
	assert.NoError(err)
	assert.Equal([]byte{2, 1, 0, 'x', 0}, output)
	assert.Equal(3, rn.Runs)
}

func TestRunner_Abort(t *testing.T) {
	assert := assert.New(t)

	rn := NewRunner(engine.DefaultConfig())

	sources := []Source{
		{Name: "good", Text: []byte("+.")},
		{Name: "bad", Text: []byte("+.\n  +/")},
		{Name: "never", Text: []byte("+.")},
	}

	// Programs after the failed one still run.
	output, err := doRun(rn, sources, nil, t)
	assert.ErrorIs(err, engine.ErrStackEmpty)
	assert.Equal([]byte{1, 1, 1}, output)
	assert.Equal(3, rn.Runs)

	var er *ErrRuntime
	assert.True(errors.As(err, &er))
	assert.Equal("bad", er.Name)
	assert.Equal(6, er.Ip)
	assert.Equal(2, er.LineNo)
	assert.Equal(4, er.Column)
}

func TestRunner_Input(t *testing.T) {
	assert := assert.New(t)

	cfg := engine.DefaultConfig()
	cfg.AbortOnError = false
	rn := NewRunner(cfg)

	sources := []Source{
		{Name: "drain", Text: []byte(",.,.,.")},
		{Name: "after", Text: []byte("+,.")},
	}

	output, err := doRun(rn, sources, []byte("A"), t)
	assert.NoError(err)
	assert.Equal([]byte{'A', 0, 0, 0}, output)

	rn.Config.AbortOnError = true
	_, err = doRun(rn, sources, []byte("A"), t)
	assert.ErrorIs(err, engine.ErrInputExhausted)
}

func TestRunner_Config(t *testing.T) {
	assert := assert.New(t)

	cfg := engine.DefaultConfig()
	cfg.MaxStackDepth = -1
	rn := NewRunner(cfg)
	rn.Verbose = true

	_, err := doRun(rn, []Source{{Name: "x", Text: []byte("+")}}, nil, t)
	assert.ErrorIs(err, engine.ErrConfig("max_stack_depth"))
}

func TestRunner_Files(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "two.bf")
	assert.NoError(os.WriteFile(path, []byte("++."), 0o644))
	missing := filepath.Join(dir, "missing.bf")

	rn := NewRunner(engine.DefaultConfig())
	buffer := &bytes.Buffer{}
	rn.Stream.Output = buffer

	err := rn.Run(Sources([]string{"+.", "+++."}, []string{path, missing, path}))
	assert.ErrorIs(err, os.ErrNotExist)
	assert.Equal([]byte{1, 3, 2, 2}, buffer.Bytes())
	assert.Equal(4, rn.Runs)
}

func TestRunner_MissingFile(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "one.bf")
	assert.NoError(os.WriteFile(path, []byte("+."), 0o644))
	missing := filepath.Join(dir, "missing.bf")

	rn := NewRunner(engine.DefaultConfig())
	buffer := &bytes.Buffer{}
	rn.Stream.Output = buffer

	err := rn.Run(Files(missing, path))
	assert.ErrorIs(err, os.ErrNotExist)
	assert.ErrorContains(err, "missing.bf")
	assert.Equal([]byte{1}, buffer.Bytes())
	assert.Equal(1, rn.Runs)
}

func TestRunner_Errors(t *testing.T) {
	assert := assert.New(t)

	rn := NewRunner(engine.DefaultConfig())

	sources := []Source{
		{Name: "empty", Text: []byte("/")},
		{Name: "full", Text: []byte(":;")},
		{Name: "fine", Text: []byte("++.")},
	}

	output, err := doRun(rn, sources, nil, t)
	assert.ErrorIs(err, engine.ErrStackEmpty)
	assert.ErrorIs(err, engine.ErrStackFull)
	assert.Equal([]byte{2}, output)
	assert.Equal(3, rn.Runs)
}

func TestSources(t *testing.T) {
	assert := assert.New(t)

	var names []string
	for src, err := range Sources([]string{"+", "-"}, nil) {
		assert.NoError(err)
		names = append(names, src.Name)
	}
	assert.Equal([]string{"-e#1", "-e#2"}, names)

	// Early stop.
	for src := range Exprs("a", "b") {
		assert.Equal("-e#1", src.Name)
		break
	}
}

func TestPosition(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text   string
		pos    int
		lineno int
		column int
	}){
		{"", 0, 1, 1},
		{"abc", 0, 1, 1},
		{"abc", 2, 1, 3},
		{"ab\ncd", 3, 2, 1},
		{"ab\ncd", 4, 2, 2},
		{"ab\n\n", 4, 3, 1},
		{"ab", 9, 1, 3},
	}

	for _, entry := range table {
		lineno, column := Position([]byte(entry.text), entry.pos)
		assert.Equal(entry.lineno, lineno, strings.ReplaceAll(entry.text, "\n", "\\n"))
		assert.Equal(entry.column, column, entry.text)
	}
}
