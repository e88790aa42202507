package io

import (
	"errors"

	"github.com/ezrec/bfpp/translate"
)

var f = translate.From

var (
	// Stream errors
	ErrExhausted = errors.New(f("input exhausted"))
)
