/*
Package chewing implements key decoders for Bopomofo keyboard layouts.

Chewing is the family of conventions for typing Bopomofo on a Latin
keyboard. Three strategies cover all of the layouts:

■ Simple decodes layouts where every key carries exactly one Bopomofo
symbol (Standard, IBM, GinYieh, ETen and Standard on a Dvorak keyboard).
Symbols are concatenated in the order they are typed and the result is
looked up in the Bopomofo index; typing symbols out of order is corrected
by the index.

■ Discrete decodes 26-key layouts (Hsu, ETen26) where a key may carry an
initial and a final. Keys are assigned to the slots initial, medial, final
and tone, one key per slot, in this order.

■ DaChen decodes the DaChen CP26 layout, where the standard layout is
folded onto the letter keys. Keys carrying two symbols of the same kind are
pressed twice for the second one.

All decoders implement zhuyin.KeyDecoder. They hold read-only tables only
and may be used concurrently.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Use of this source code is governed by a BSD-style license that can be
found in the LICENSE file.

*/
package chewing

import (
	"fmt"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/zhuyin"
	"github.com/npillmayer/zhuyin/table"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// MaxKeyLength is the maximum number of keys making up one syllable,
// tone key included.
const MaxKeyLength = 4

// probe collects the interpretations of a key in every role of a layout.
// A key may produce at most 3 interpretations.
func probe(layout *table.Layout, opts zhuyin.Options, r rune) []string {
	var candidates []string
	for _, role := range []table.Role{table.RoleInitial, table.RoleMiddle, table.RoleFinal} {
		first, second, n := layout.Table(role).Lookup2(r)
		if n > 0 {
			candidates = append(candidates, first)
		}
		if n > 1 {
			candidates = append(candidates, second)
		}
	}
	if opts.Has(zhuyin.UseTone) {
		if t, ok := layout.Tones.Lookup(r); ok {
			candidates = append(candidates, t.Symbol())
		}
	}
	if len(candidates) > 3 {
		panic(fmt.Sprintf("chewing: layout %s: key %q has %d interpretations", layout.Name,
			r, len(candidates)))
	}
	return candidates
}

// extractTone strips a trailing tone key from keys, if tones are in use.
func extractTone(layout *table.Layout, opts zhuyin.Options, keys []rune) ([]rune, zhuyin.Tone) {
	if !opts.Has(zhuyin.UseTone) || len(keys) == 0 {
		return keys, zhuyin.ZeroTone
	}
	if t, ok := layout.Tones.Lookup(keys[len(keys)-1]); ok {
		return keys[:len(keys)-1], t
	}
	return keys, zhuyin.ZeroTone
}

func mustHaveTables(name string, layout *table.Layout, index *table.Index) {
	if layout == nil || index == nil {
		panic(fmt.Sprintf("chewing: %s decoder needs a layout and an index", name))
	}
}
