package zhuyin

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Initial is the consonant a syllable starts with, if any.
type Initial uint8

// Initials in Bopomofo order.
const (
	ZeroInitial Initial = iota
	B                   // ㄅ
	P                   // ㄆ
	M                   // ㄇ
	F                   // ㄈ
	D                   // ㄉ
	T                   // ㄊ
	N                   // ㄋ
	L                   // ㄌ
	G                   // ㄍ
	K                   // ㄎ
	H                   // ㄏ
	J                   // ㄐ
	Q                   // ㄑ
	X                   // ㄒ
	ZH                  // ㄓ
	CH                  // ㄔ
	SH                  // ㄕ
	R                   // ㄖ
	Z                   // ㄗ
	C                   // ㄘ
	S                   // ㄙ
	maxInitial = S
)

// Middle is the medial glide of a syllable, if any.
type Middle uint8

// Medials.
const (
	ZeroMiddle Middle = iota
	I                 // ㄧ
	U                 // ㄨ
	V                 // ㄩ
	maxMiddle = V
)

// Final is the rime of a syllable without its medial, if any.
type Final uint8

// Finals in Bopomofo order.
const (
	ZeroFinal Final = iota
	A               // ㄚ
	O               // ㄛ
	E               // ㄜ
	EH              // ㄝ
	AI              // ㄞ
	EI              // ㄟ
	AO              // ㄠ
	OU              // ㄡ
	AN              // ㄢ
	EN              // ㄣ
	ANG             // ㄤ
	ENG             // ㄥ
	ER              // ㄦ
	maxFinal = ER
)

// Tone is the lexical tone of a syllable. ZeroTone denotes the absence of
// tone information.
type Tone uint8

// Tones.
const (
	ZeroTone Tone = iota
	Tone1         // ˉ (usually not written)
	Tone2         // ˊ
	Tone3         // ˇ
	Tone4         // ˋ
	Tone5         // ˙ (neutral tone)
	maxTone = Tone5
)

var initialSymbols = [...]string{"", "ㄅ", "ㄆ", "ㄇ", "ㄈ", "ㄉ", "ㄊ", "ㄋ", "ㄌ",
	"ㄍ", "ㄎ", "ㄏ", "ㄐ", "ㄑ", "ㄒ", "ㄓ", "ㄔ", "ㄕ", "ㄖ", "ㄗ", "ㄘ", "ㄙ"}

var middleSymbols = [...]string{"", "ㄧ", "ㄨ", "ㄩ"}

var finalSymbols = [...]string{"", "ㄚ", "ㄛ", "ㄜ", "ㄝ", "ㄞ", "ㄟ", "ㄠ", "ㄡ",
	"ㄢ", "ㄣ", "ㄤ", "ㄥ", "ㄦ"}

var toneSymbols = [...]string{"", "ˉ", "ˊ", "ˇ", "ˋ", "˙"}

// Symbol returns the Bopomofo symbol of an initial.
func (i Initial) Symbol() string {
	if i > maxInitial {
		return ""
	}
	return initialSymbols[i]
}

// Symbol returns the Bopomofo symbol of a medial.
func (m Middle) Symbol() string {
	if m > maxMiddle {
		return ""
	}
	return middleSymbols[m]
}

// Symbol returns the Bopomofo symbol of a final.
func (f Final) Symbol() string {
	if f > maxFinal {
		return ""
	}
	return finalSymbols[f]
}

// Symbol returns the tone mark of a tone. ZeroTone has an empty tone mark.
func (t Tone) Symbol() string {
	if t > maxTone {
		return ""
	}
	return toneSymbols[t]
}

// ToneFromSymbol returns the tone for a tone mark.
func ToneFromSymbol(s string) (Tone, bool) {
	for t := Tone1; t <= maxTone; t++ {
		if toneSymbols[t] == s {
			return t, true
		}
	}
	return ZeroTone, false
}

// Key is a phonetic key, i.e. a canonical syllable reading plus tone.
//
// Index is the position of the (toneless) syllable within the canonical
// phoneme table of package table. It is not used for key comparison, but
// dictionary lookup uses it to resolve ambiguities.
type Key struct {
	Initial Initial
	Middle  Middle
	Final   Final
	Tone    Tone
	Index   uint16
}

// Equal compares keys structurally: all components and the tone have to
// match. Comparison under ambiguity options is the business of dictionary
// lookup.
func (k Key) Equal(other Key) bool {
	return k.Initial == other.Initial && k.Middle == other.Middle &&
		k.Final == other.Final && k.Tone == other.Tone
}

// IsEmpty is true for a key without any phonetic component.
func (k Key) IsEmpty() bool {
	return k.Initial == ZeroInitial && k.Middle == ZeroMiddle && k.Final == ZeroFinal
}

// WithTone returns a copy of k with tone t.
func (k Key) WithTone(t Tone) Key {
	k.Tone = t
	return k
}

// Zhuyin returns the Bopomofo spelling of a key, without tone mark.
func (k Key) Zhuyin() string {
	return k.Initial.Symbol() + k.Middle.Symbol() + k.Final.Symbol()
}

// String returns the Bopomofo spelling of a key, followed by the tone mark
// for tones 2 to 5.
func (k Key) String() string {
	if k.Tone > Tone1 {
		return k.Zhuyin() + k.Tone.Symbol()
	}
	return k.Zhuyin()
}

// GoString is used for %#v.
func (k Key) GoString() string {
	return fmt.Sprintf("Key{%q tone=%d #%d}", k.Zhuyin(), k.Tone, k.Index)
}

// ParseZhuyin decomposes a Bopomofo string into its components. The string
// has to be in canonical order, i.e. initial–medial–final, every component
// being optional. The tone is not part of the string.
func ParseZhuyin(s string) (Initial, Middle, Final, bool) {
	var ini Initial
	var mid Middle
	var fin Final
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		sym := s[:size]
		s = s[size:]
		if i := lookupSymbol(initialSymbols[:], sym); i > 0 && ini == 0 && mid == 0 && fin == 0 {
			ini = Initial(i)
		} else if m := lookupSymbol(middleSymbols[:], sym); m > 0 && mid == 0 && fin == 0 {
			mid = Middle(m)
		} else if f := lookupSymbol(finalSymbols[:], sym); f > 0 && fin == 0 {
			fin = Final(f)
		} else {
			CT().P("rune", fmt.Sprintf("%#U", r)).Debugf("not a canonical Bopomofo string")
			return ZeroInitial, ZeroMiddle, ZeroFinal, false
		}
	}
	return ini, mid, fin, ini != 0 || mid != 0 || fin != 0
}

// IsBopomofoSymbol is true if s is one of the 37 Bopomofo symbols used
// for Mandarin.
func IsBopomofoSymbol(s string) bool {
	return lookupSymbol(initialSymbols[:], s) > 0 || lookupSymbol(middleSymbols[:], s) > 0 ||
		lookupSymbol(finalSymbols[:], s) > 0
}

func lookupSymbol(symbols []string, s string) int {
	if s == "" {
		return 0
	}
	for i, sym := range symbols {
		if sym == s {
			return i
		}
	}
	return 0
}

// Keys is a sequence of phonetic keys.
type Keys []Key

// String joins the spellings of the keys, separated by blanks.
func (keys Keys) String() string {
	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(k.String())
	}
	return sb.String()
}
