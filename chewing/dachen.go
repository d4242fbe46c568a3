package chewing

import (
	"fmt"

	"github.com/npillmayer/zhuyin"
	"github.com/npillmayer/zhuyin/table"
)

// MaxDaChenKeyLength is the maximum number of keys making up one syllable
// on a DaChen CP26 keyboard, tone key included.
const MaxDaChenKeyLength = 7

// Digraphs produced by a single key of the DaChen CP26 layout.
var dachenDigraphs = map[rune]string{
	'u': "ㄧㄚ",
}

// step is one stage of a key cycling through a medial and a final.
type step struct {
	middle, final string
}

// DaChen is a decoder for the DaChen CP26 layout.
//
// Keys carrying two initials (or two finals) produce the first symbol if
// pressed once and the second one if pressed twice. Pressing such a key
// again toggles back, i.e. the choice is decided by the parity of the
// number of presses. All presses of the key belong to the same syllable.
//
// Keys carrying a medial and a final cycle through medial, final and, for
// digraph keys, medial plus final.
type DaChen struct {
	layout *table.Layout
	index  *table.Index
	cycles map[rune][]step
}

var _ zhuyin.KeyDecoder = (*DaChen)(nil)

// NewDaChen creates a decoder for a DaChen CP26 layout. Missing tables will
// panic.
func NewDaChen(layout *table.Layout, index *table.Index) *DaChen {
	mustHaveTables("DaChen", layout, index)
	d := &DaChen{layout: layout, index: index, cycles: make(map[rune][]step)}
	for _, m := range []zhuyin.Middle{zhuyin.I, zhuyin.U, zhuyin.V} {
		r, ok := layout.Middles.KeyFor(m.Symbol())
		if !ok {
			continue
		}
		fin, ok := layout.Finals.Lookup(r)
		if !ok {
			continue
		}
		steps := []step{{middle: m.Symbol()}, {final: fin}}
		if dg, ok := dachenDigraphs[r]; ok && dg == m.Symbol()+fin {
			steps = append(steps, step{middle: m.Symbol(), final: fin})
		}
		d.cycles[r] = steps
		tracer().Debugf("DaChen: key %q cycles through %d steps", r, len(steps))
	}
	return d
}

// MaxKeyLength is part of interface zhuyin.KeyDecoder.
func (d *DaChen) MaxKeyLength() int {
	return MaxDaChenKeyLength
}

// InScheme is part of interface zhuyin.KeyDecoder.
func (d *DaChen) InScheme(opts zhuyin.Options, r rune) []string {
	candidates := probe(d.layout, opts, r)
	if dg, ok := dachenDigraphs[r]; ok {
		candidates = append(candidates, dg)
	}
	if len(candidates) > 3 {
		panic(fmt.Sprintf("chewing: layout %s: key %q has %d interpretations", d.layout.Name,
			r, len(candidates)))
	}
	return candidates
}

// DecodeWindow is part of interface zhuyin.KeyDecoder.
func (d *DaChen) DecodeWindow(opts zhuyin.Options, window string) (zhuyin.Key, bool) {
	opts = opts.Without(zhuyin.AmbAll)
	keys, tone := extractTone(d.layout, opts, []rune(window))
	if opts.Has(zhuyin.ForceTone) && tone == zhuyin.ZeroTone {
		return zhuyin.Key{}, false
	}
	if len(keys) == 0 {
		return zhuyin.Key{}, false
	}
	consumed := make([]bool, len(keys)) // repeated presses, taken by an earlier slot
	var ini, mid, fin string
	i := 0
	if first, second, n := d.layout.Initials.Lookup2(keys[i]); n > 0 {
		ini = pick(keys, consumed, i, first, second, n)
		i++
	}
	i = skipConsumed(consumed, i)
	if i < len(keys) {
		if steps, ok := d.cycles[keys[i]]; ok {
			s := steps[repeats(keys, consumed, i)%len(steps)]
			mid, fin = s.middle, s.final
			i++
		} else if sym, ok := d.layout.Middles.Lookup(keys[i]); ok {
			mid = sym
			i++
		}
		i = skipConsumed(consumed, i)
	}
	if i < len(keys) && fin == "" {
		if first, second, n := d.layout.Finals.Lookup2(keys[i]); n > 0 {
			fin = pick(keys, consumed, i, first, second, n)
			i++
		}
		i = skipConsumed(consumed, i)
	}
	if i != len(keys) {
		return zhuyin.Key{}, false
	}
	k, ok := d.index.Search(opts, ini+mid+fin)
	if !ok {
		return zhuyin.Key{}, false
	}
	return k.WithTone(tone), true
}

// pick chooses between alternate symbols by the parity of the number of
// later presses of the key at position at.
func pick(keys []rune, consumed []bool, at int, first, second string, n int) string {
	if n < 2 {
		return first
	}
	if repeats(keys, consumed, at)%2 == 1 {
		return second
	}
	return first
}

// repeats counts the later occurrences of the key at position at and marks
// them as consumed.
func repeats(keys []rune, consumed []bool, at int) int {
	count := 0
	for j := at + 1; j < len(keys); j++ {
		if !consumed[j] && keys[j] == keys[at] {
			consumed[j] = true
			count++
		}
	}
	return count
}

func skipConsumed(consumed []bool, i int) int {
	for i < len(consumed) && consumed[i] {
		i++
	}
	return i
}
