package chewing

import (
	"strings"

	"github.com/npillmayer/zhuyin"
	"github.com/npillmayer/zhuyin/table"
)

// Simple is a decoder for layouts with one Bopomofo symbol per key.
type Simple struct {
	layout *table.Layout
	index  *table.Index
}

var _ zhuyin.KeyDecoder = (*Simple)(nil)

// NewSimple creates a decoder for a layout with one symbol per key.
// Missing tables will panic.
func NewSimple(layout *table.Layout, index *table.Index) *Simple {
	mustHaveTables("simple", layout, index)
	return &Simple{layout: layout, index: index}
}

// MaxKeyLength is part of interface zhuyin.KeyDecoder.
func (d *Simple) MaxKeyLength() int {
	return MaxKeyLength
}

// InScheme is part of interface zhuyin.KeyDecoder.
func (d *Simple) InScheme(opts zhuyin.Options, r rune) []string {
	return probe(d.layout, opts, r)
}

// DecodeWindow is part of interface zhuyin.KeyDecoder.
// Every key of window is translated to its symbol, and the concatenation of
// the symbols is looked up as a whole.
func (d *Simple) DecodeWindow(opts zhuyin.Options, window string) (zhuyin.Key, bool) {
	opts = opts.Without(zhuyin.AmbAll)
	keys, tone := extractTone(d.layout, opts, []rune(window))
	if opts.Has(zhuyin.ForceTone) && tone == zhuyin.ZeroTone {
		return zhuyin.Key{}, false
	}
	if len(keys) == 0 {
		return zhuyin.Key{}, false
	}
	var composed strings.Builder
	for _, r := range keys {
		sym, ok := d.layout.Symbols.Lookup(r)
		if !ok {
			return zhuyin.Key{}, false
		}
		composed.WriteString(sym)
	}
	k, ok := d.index.Search(opts, composed.String())
	if !ok {
		return zhuyin.Key{}, false
	}
	return k.WithTone(tone), true
}
