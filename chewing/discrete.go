package chewing

import (
	"github.com/npillmayer/zhuyin"
	"github.com/npillmayer/zhuyin/table"
)

// Discrete is a decoder for 26-key layouts where keys do double duty as
// initials and finals.
//
// Keys are assigned to the slots initial → medial → final → tone, at most
// one key per slot. A key which does not fit the current slot is tried for
// the next one. For keys carrying two initials the first one is taken;
// the index corrects it where the context calls for the second one.
type Discrete struct {
	layout *table.Layout
	index  *table.Index
}

var _ zhuyin.KeyDecoder = (*Discrete)(nil)

// NewDiscrete creates a decoder for a 26-key layout. Missing tables will
// panic.
func NewDiscrete(layout *table.Layout, index *table.Index) *Discrete {
	mustHaveTables("discrete", layout, index)
	return &Discrete{layout: layout, index: index}
}

// MaxKeyLength is part of interface zhuyin.KeyDecoder.
func (d *Discrete) MaxKeyLength() int {
	return MaxKeyLength
}

// InScheme is part of interface zhuyin.KeyDecoder.
func (d *Discrete) InScheme(opts zhuyin.Options, r rune) []string {
	return probe(d.layout, opts, r)
}

// DecodeWindow is part of interface zhuyin.KeyDecoder.
func (d *Discrete) DecodeWindow(opts zhuyin.Options, window string) (zhuyin.Key, bool) {
	opts = opts.Without(zhuyin.AmbAll)
	keys := []rune(window)
	if len(keys) == 0 {
		return zhuyin.Key{}, false
	}
	var symbols [3]string
	tone := zhuyin.ZeroTone
	i := 0
	for slot, st := range []*table.SymbolTable{d.layout.Initials, d.layout.Middles, d.layout.Finals} {
		if i == len(keys) {
			break
		}
		if sym, ok := st.Lookup(keys[i]); ok {
			symbols[slot] = sym
			i++
		}
	}
	if i < len(keys) && opts.Has(zhuyin.UseTone) {
		if t, ok := d.layout.Tones.Lookup(keys[i]); ok {
			tone = t
			i++
		}
	}
	if opts.Has(zhuyin.ForceTone) && tone == zhuyin.ZeroTone {
		return zhuyin.Key{}, false
	}
	if i != len(keys) {
		return zhuyin.Key{}, false
	}
	k, ok := d.index.Search(opts, symbols[0]+symbols[1]+symbols[2])
	if !ok {
		return zhuyin.Key{}, false
	}
	return k.WithTone(tone), true
}
