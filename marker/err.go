package marker

import (
	"errors"

	"github.com/ezrec/bfpp/translate"
)

var f = translate.From

var (
	ErrFocusEmpty = errors.New(f("focus empty"))
	ErrCapacity   = errors.New(f("marker capacity exceeded"))
)
