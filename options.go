package zhuyin

import (
	"sort"
	"strings"
)

// Options is a set of flags controlling the parse of one line of input.
// The same bits are used to flag entries of the phonetic indexes.
//
// Bit values are part of the API and will not change.
type Options uint32

// Table flags and parse options.
const (
	IsZhuyin         Options = 1 << 1 // index entry is a Bopomofo spelling
	IsPinyin         Options = 1 << 2 // index entry is a Pinyin spelling
	ZhuyinIncomplete Options = 1 << 3 // accept Bopomofo initials without a rime
	PinyinIncomplete Options = 1 << 4 // accept Pinyin initials without a rime
	UseTone          Options = 1 << 5 // interpret tone keys
	ForceTone        Options = 1 << 6 // every key has to carry a tone
	CorrectHsu       Options = 1 << 7 // Hsu keyboard corrections
	CorrectEten26    Options = 1 << 8 // ETen26 keyboard corrections
	CorrectShuffle   Options = 1 << 9 // symbols typed out of order

	CorrectAll = CorrectHsu | CorrectEten26 | CorrectShuffle
)

// Ambiguity classes. They are not interpreted during parsing, but by
// dictionary lookup.
const (
	AmbCCh   Options = 1 << (20 + iota) // ㄘ ~ ㄔ
	AmbSSh                              // ㄙ ~ ㄕ
	AmbZZh                              // ㄗ ~ ㄓ
	AmbFH                               // ㄈ ~ ㄏ
	AmbGK                               // ㄍ ~ ㄎ
	AmbLN                               // ㄌ ~ ㄋ
	AmbLR                               // ㄌ ~ ㄖ
	AmbAnAng                            // ㄢ ~ ㄤ
	AmbEnEng                            // ㄣ ~ ㄥ
	AmbInIng                            // ㄧㄣ ~ ㄧㄥ

	AmbAll Options = 0x3FF << 20
)

// Has is true if all flags of o are set in opts.
func (opts Options) Has(o Options) bool {
	return opts&o == o
}

// Without returns opts with all flags of o cleared.
func (opts Options) Without(o Options) Options {
	return opts &^ o
}

var optionNames = map[string]Options{
	"is_zhuyin":         IsZhuyin,
	"is_pinyin":         IsPinyin,
	"zhuyin_incomplete": ZhuyinIncomplete,
	"pinyin_incomplete": PinyinIncomplete,
	"use_tone":          UseTone,
	"force_tone":        ForceTone,
	"correct_hsu":       CorrectHsu,
	"correct_eten26":    CorrectEten26,
	"correct_shuffle":   CorrectShuffle,
	"amb_c_ch":          AmbCCh,
	"amb_s_sh":          AmbSSh,
	"amb_z_zh":          AmbZZh,
	"amb_f_h":           AmbFH,
	"amb_g_k":           AmbGK,
	"amb_l_n":           AmbLN,
	"amb_l_r":           AmbLR,
	"amb_an_ang":        AmbAnAng,
	"amb_en_eng":        AmbEnEng,
	"amb_in_ing":        AmbInIng,
}

// OptionFromName returns the option flag for a lower-case name like
// "use_tone" or "amb_an_ang".
func OptionFromName(name string) (Options, bool) {
	o, ok := optionNames[strings.ToLower(strings.TrimSpace(name))]
	return o, ok
}

// Names returns the names of all flags set, in alphabetical order.
func (opts Options) Names() []string {
	var names []string
	for name, o := range optionNames {
		if opts.Has(o) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func (opts Options) String() string {
	return "[" + strings.Join(opts.Names(), "|") + "]"
}
