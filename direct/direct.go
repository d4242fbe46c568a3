/*
Package direct implements key decoders for typing phonetic spellings
directly.

Instead of mapping keys of a Latin keyboard to Bopomofo symbols, some users
type syllables as they are written: either in Bopomofo glyphs, using a
Bopomofo keyboard or an OS level input method, or in a Latin
transliteration (Hanyu Pinyin, Luoma Pinyin or Mandarin Phonetic Symbols
II). All cases are handled by type Decoder, which looks up a complete
syllable at a time. Syllables are separated by blanks or apostrophes, e.g.

   ni3 hao3
   xi'an

A syllable may be followed by a tone marker. For Bopomofo this is one of
the tone glyphs ˉ ˊ ˇ ˋ ˙, for the transliterations the tone numbers 1 to 5
are used.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Use of this source code is governed by a BSD-style license that can be
found in the LICENSE file.

*/
package direct

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/zhuyin"
	"github.com/npillmayer/zhuyin/table"
	"golang.org/x/text/unicode/rangetable"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Decoder decodes syllables typed in their phonetic spelling.
type Decoder struct {
	name        string
	index       *table.Index
	alphabet    *unicode.RangeTable  // characters allowed in a spelling
	tones       map[rune]zhuyin.Tone // tone markers
	defaultTone zhuyin.Tone          // tone for syllables without a marker
	maxLen      int
}

var _ zhuyin.SeparatingDecoder = (*Decoder)(nil)

// Bopomofo glyphs used for Mandarin, ㄅ to ㄩ.
var bopomofo = rangetable.New(
	'ㄅ', 'ㄆ', 'ㄇ', 'ㄈ', 'ㄉ', 'ㄊ', 'ㄋ', 'ㄌ', 'ㄍ', 'ㄎ', 'ㄏ', 'ㄐ', 'ㄑ', 'ㄒ',
	'ㄓ', 'ㄔ', 'ㄕ', 'ㄖ', 'ㄗ', 'ㄘ', 'ㄙ', 'ㄚ', 'ㄛ', 'ㄜ', 'ㄝ', 'ㄞ', 'ㄟ', 'ㄠ',
	'ㄡ', 'ㄢ', 'ㄣ', 'ㄤ', 'ㄥ', 'ㄦ', 'ㄧ', 'ㄨ', 'ㄩ',
)

// Lower-case Latin letters plus the vowels with diacritics used in
// transliterations.
var latinLetters = rangetable.Merge(
	&unicode.RangeTable{R16: []unicode.Range16{{Lo: 'a', Hi: 'z', Stride: 1}}},
	rangetable.New('ê', 'ü'),
)

// NewZhuyin creates a decoder for Bopomofo spellings. Tone markers are the
// Bopomofo tone glyphs; syllables without one are in tone 1.
func NewZhuyin() *Decoder {
	tones := make(map[rune]zhuyin.Tone, 5)
	for t := zhuyin.Tone1; t <= zhuyin.Tone5; t++ {
		r, _ := utf8.DecodeRuneInString(t.Symbol())
		tones[r] = t
	}
	return newDecoder("direct_zhuyin", table.BopomofoIndex(), bopomofo, tones, zhuyin.Tone1)
}

var toneDigits = map[rune]zhuyin.Tone{
	'1': zhuyin.Tone1, '2': zhuyin.Tone2, '3': zhuyin.Tone3, '4': zhuyin.Tone4, '5': zhuyin.Tone5,
}

// NewPinyin creates a decoder for Hanyu Pinyin spellings. Tone markers are
// the digits 1 to 5; syllables without one carry no tone.
func NewPinyin() *Decoder {
	return newDecoder("hanyu_pinyin", table.PinyinIndex(), latinLetters, toneDigits, zhuyin.ZeroTone)
}

// NewLuoma creates a decoder for Luoma Pinyin spellings, with tone digits
// as for Hanyu Pinyin.
func NewLuoma() *Decoder {
	return newDecoder("luoma_pinyin", table.LuomaIndex(), latinLetters, toneDigits, zhuyin.ZeroTone)
}

// NewSecondaryBopomofo creates a decoder for Mandarin Phonetic Symbols II
// spellings, with tone digits as for Hanyu Pinyin.
func NewSecondaryBopomofo() *Decoder {
	return newDecoder("secondary_bopomofo", table.SecondaryBopomofoIndex(), latinLetters,
		toneDigits, zhuyin.ZeroTone)
}

func newDecoder(name string, index *table.Index, alphabet *unicode.RangeTable,
	tones map[rune]zhuyin.Tone, defaultTone zhuyin.Tone) *Decoder {
	//
	if index == nil {
		panic(fmt.Sprintf("direct: decoder %s needs an index", name))
	}
	d := &Decoder{
		name:        name,
		index:       index,
		alphabet:    alphabet,
		tones:       tones,
		defaultTone: defaultTone,
	}
	index.Items(func(item table.IndexItem) {
		if n := utf8.RuneCountInString(item.Input); n > d.maxLen {
			d.maxLen = n
		}
	})
	d.maxLen++ // tone marker
	tracer().P("decoder", name).Debugf("max key length is %d", d.maxLen)
	return d
}

// MaxKeyLength is part of interface zhuyin.KeyDecoder.
func (d *Decoder) MaxKeyLength() int {
	return d.maxLen
}

// IsSeparator is part of interface zhuyin.SeparatingDecoder.
// Syllables are separated by blanks and apostrophes.
func (d *Decoder) IsSeparator(r rune) bool {
	return r == ' ' || r == '\''
}

// InScheme is part of interface zhuyin.KeyDecoder.
func (d *Decoder) InScheme(opts zhuyin.Options, r rune) []string {
	if unicode.Is(d.alphabet, r) {
		return []string{string(r)}
	}
	if opts.Has(zhuyin.UseTone) {
		if t, ok := d.tones[r]; ok {
			return []string{t.Symbol()}
		}
	}
	return nil
}

// DecodeWindow is part of interface zhuyin.KeyDecoder.
// The window is looked up as a whole, after stripping a trailing tone
// marker, if tones are in use.
func (d *Decoder) DecodeWindow(opts zhuyin.Options, window string) (zhuyin.Key, bool) {
	opts = opts.Without(zhuyin.AmbAll)
	tone, found := d.defaultTone, false
	if opts.Has(zhuyin.UseTone) && len(window) > 0 {
		r, size := utf8.DecodeLastRuneInString(window)
		if t, ok := d.tones[r]; ok {
			tone, found = t, true
			window = window[:len(window)-size]
		}
	}
	if opts.Has(zhuyin.ForceTone) && !found {
		return zhuyin.Key{}, false
	}
	if window == "" {
		return zhuyin.Key{}, false
	}
	k, ok := d.index.Search(opts, window)
	if !ok {
		return zhuyin.Key{}, false
	}
	return k.WithTone(tone), true
}

func (d *Decoder) String() string {
	return d.name
}
