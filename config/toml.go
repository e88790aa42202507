package config

import (
	"io"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/bfpp/engine"
)

// DecodeToml applies the settings of a TOML document.
// Settings missing from the document are unchanged.
func DecodeToml(cfg *engine.Config, r io.Reader) (err error) {
	update := *cfg

	md, err := toml.NewDecoder(r).Decode(&update)
	if err != nil {
		return
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		err = ErrUnknown(undecoded[0].String())
		return
	}

	*cfg = update
	return
}
