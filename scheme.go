package zhuyin

import (
	"strconv"
	"strings"
)

// Scheme is a keyboard convention for typing Mandarin syllables.
// The set of schemes is closed.
type Scheme int8

// Keyboard schemes. The zero value is not a valid scheme.
const (
	Standard          Scheme = iota + 1 // DaChen standard layout, one symbol per key
	IBM                                 // IBM layout
	GinYieh                             // GinYieh layout
	ETen                                // ETen layout
	StandardDvorak                      // standard layout on a Dvorak keyboard
	Hsu                                 // Hsu layout, letter keys only
	ETen26                              // ETen 26-key layout
	HsuDvorak                           // Hsu layout on a Dvorak keyboard
	DaChenCP26                          // DaChen 26-key layout, keys pressed repeatedly
	DirectZhuyin                        // Bopomofo symbols typed directly
	HanyuPinyin                         // Hanyu Pinyin with tone digits
	LuomaPinyin                         // Wade–Giles based Luoma Pinyin with tone digits
	SecondaryBopomofo                   // Mandarin Phonetic Symbols II with tone digits
	maxScheme         = SecondaryBopomofo
)

var schemeNames = [...]string{"", "standard", "ibm", "ginyieh", "eten", "standard_dvorak",
	"hsu", "eten26", "hsu_dvorak", "dachen_cp26", "direct_zhuyin", "hanyu_pinyin",
	"luoma_pinyin", "secondary_bopomofo"}

// Schemes returns all valid schemes.
func Schemes() []Scheme {
	s := make([]Scheme, 0, int(maxScheme))
	for sch := Standard; sch <= maxScheme; sch++ {
		s = append(s, sch)
	}
	return s
}

// IsValid is true for every scheme of the closed set of schemes.
func (s Scheme) IsValid() bool {
	return s >= Standard && s <= maxScheme
}

// Stringer for type Scheme
func (s Scheme) String() string {
	if !s.IsValid() {
		return "Scheme(" + strconv.FormatInt(int64(s), 10) + ")"
	}
	return schemeNames[s]
}

// SchemeFromName finds a scheme by name, e.g. "hsu" or "hanyu_pinyin".
// Dashes are treated as underscores and case is ignored.
func SchemeFromName(name string) (Scheme, bool) {
	name = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for s := Standard; s <= maxScheme; s++ {
		if schemeNames[s] == name {
			return s, true
		}
	}
	return 0, false
}
