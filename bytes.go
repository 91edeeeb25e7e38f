package cliargs

import (
	"encoding"

	"github.com/dustin/go-humanize"
)

// Bytes is a byte quantity given in human readable form, such as 100GB or 4KiB. See
// https://godoc.org/github.com/dustin/go-humanize.
type Bytes int64

var _ encoding.TextUnmarshaler = (*Bytes)(nil)

// ParseBytes converts s for OptionAs and ArgumentAs.
func ParseBytes(s string) (Bytes, error) {
	ui64, err := humanize.ParseBytes(s)
	return Bytes(ui64), err
}

func (me *Bytes) UnmarshalText(text []byte) (err error) {
	b, err := ParseBytes(string(text))
	if err != nil {
		return
	}
	*me = b
	return
}

func (me Bytes) Int64() int64 {
	return int64(me)
}

func (me Bytes) String() string {
	return humanize.Bytes(uint64(me))
}
