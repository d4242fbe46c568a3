package table

import (
	"fmt"
	"sync"

	"github.com/npillmayer/zhuyin"
)

// indexBuilder collects items for an index. Later additions of an input
// replace earlier ones if they have higher precedence.
type indexBuilder struct {
	name    string
	entries map[string]IndexItem
	rank    map[string]int
}

// Precedence of index items. Corrections replace incomplete entries, and
// nothing replaces a complete syllable.
const (
	rankIncomplete = iota
	rankShuffle
	rankCorrection
	rankComplete
)

func newBuilder(name string) *indexBuilder {
	return &indexBuilder{
		name:    name,
		entries: make(map[string]IndexItem),
		rank:    make(map[string]int),
	}
}

func (b *indexBuilder) add(input string, flags zhuyin.Options, entry uint16, rank int) {
	if r, ok := b.rank[input]; ok {
		if r > rank {
			return
		}
		if r == rank && b.entries[input].Entry != entry {
			panic(fmt.Sprintf("table: index %s: conflicting entries for %q", b.name, input))
		}
	}
	b.entries[input] = IndexItem{Input: input, Flags: flags, Entry: entry}
	b.rank[input] = rank
}

func (b *indexBuilder) index() *Index {
	items := make([]IndexItem, 0, len(b.entries))
	for _, item := range b.entries {
		items = append(items, item)
	}
	return NewIndex(b.name, items)
}

// addBopomofo adds every syllable of the content table, incomplete ones
// flagged with zhuyin.ZhuyinIncomplete.
func (b *indexBuilder) addBopomofo() {
	for _, item := range contentItems() {
		if item.Incomplete {
			b.add(item.Key.Zhuyin(), zhuyin.IsZhuyin|zhuyin.ZhuyinIncomplete, item.Key.Index, rankIncomplete)
		} else {
			b.add(item.Key.Zhuyin(), zhuyin.IsZhuyin, item.Key.Index, rankComplete)
		}
	}
}

// addShuffled adds every ordering of the symbols of a complete syllable,
// flagged with zhuyin.CorrectShuffle.
func (b *indexBuilder) addShuffled() {
	for _, item := range contentItems() {
		if item.Incomplete {
			continue
		}
		var symbols []string
		for _, s := range []string{item.Key.Initial.Symbol(), item.Key.Middle.Symbol(), item.Key.Final.Symbol()} {
			if s != "" {
				symbols = append(symbols, s)
			}
		}
		canonical := item.Key.Zhuyin()
		permute(symbols, func(p string) {
			if p != canonical {
				b.add(p, zhuyin.IsZhuyin|zhuyin.CorrectShuffle, item.Key.Index, rankShuffle)
			}
		})
	}
}

func permute(symbols []string, f func(string)) {
	var rec func(prefix string, rest []string)
	rec = func(prefix string, rest []string) {
		if len(rest) == 0 {
			f(prefix)
			return
		}
		for i := range rest {
			others := make([]string, 0, len(rest)-1)
			others = append(others, rest[:i]...)
			others = append(others, rest[i+1:]...)
			rec(prefix+rest[i], others)
		}
	}
	rec("", symbols)
}

// keyboardCorrections describes the corrections of a 26-key layout: the
// palatal initials ㄐㄑㄒ, if followed by something other than ㄧ or ㄩ,
// stand for the retroflex initials ㄓㄔㄕ. Some initials typed without a
// rime stand for the final on the same key.
type keyboardCorrections struct {
	flag       zhuyin.Options
	standalone map[zhuyin.Initial]zhuyin.Final
}

var hsuCorrections = keyboardCorrections{
	flag: zhuyin.CorrectHsu,
	standalone: map[zhuyin.Initial]zhuyin.Final{
		zhuyin.G: zhuyin.E, zhuyin.H: zhuyin.O, zhuyin.K: zhuyin.ANG,
		zhuyin.L: zhuyin.ER, zhuyin.M: zhuyin.AN, zhuyin.N: zhuyin.EN,
	},
}

var eten26Corrections = keyboardCorrections{
	flag: zhuyin.CorrectEten26,
	standalone: map[zhuyin.Initial]zhuyin.Final{
		zhuyin.P: zhuyin.OU, zhuyin.M: zhuyin.AN, zhuyin.N: zhuyin.EN,
		zhuyin.T: zhuyin.ANG, zhuyin.L: zhuyin.ENG, zhuyin.H: zhuyin.ER,
	},
}

var palatalToRetroflex = map[zhuyin.Initial]zhuyin.Initial{
	zhuyin.ZH: zhuyin.J, zhuyin.CH: zhuyin.Q, zhuyin.SH: zhuyin.X,
}

func (b *indexBuilder) addCorrections(kc keyboardCorrections) {
	flags := zhuyin.IsZhuyin | kc.flag
	for _, item := range contentItems() {
		palatal, ok := palatalToRetroflex[item.Key.Initial]
		if !ok || item.Key.Middle == zhuyin.I || item.Key.Middle == zhuyin.V {
			continue
		}
		input := zhuyin.Key{Initial: palatal, Middle: item.Key.Middle, Final: item.Key.Final}.Zhuyin()
		b.add(input, flags, item.Key.Index, rankCorrection)
	}
	for ini, fin := range kc.standalone {
		k, ok := KeyOf(zhuyin.ZeroInitial, zhuyin.ZeroMiddle, fin)
		if !ok {
			panic(fmt.Sprintf("table: correction target %s is not a syllable", fin.Symbol()))
		}
		b.add(ini.Symbol(), flags, k.Index, rankCorrection)
	}
}

// romanization spells syllables and lone initials in a Latin
// transliteration.
type romanization struct {
	spellings func(zhuyin.Initial, zhuyin.Middle, zhuyin.Final) []string
	initial   func(zhuyin.Initial) string
}

var (
	hanyuPinyin       = romanization{zhuyin.PinyinSpellings, zhuyin.PinyinInitial}
	luomaPinyin       = romanization{zhuyin.LuomaSpellings, zhuyin.LuomaInitial}
	secondaryBopomofo = romanization{zhuyin.SecondaryBopomofoSpellings, zhuyin.SecondaryBopomofoInitial}
)

// addRomanized adds the spellings of every syllable, and the spellings of
// lone initials flagged with zhuyin.PinyinIncomplete.
func (b *indexBuilder) addRomanized(rz romanization) {
	for _, item := range contentItems() {
		k := item.Key
		if !item.Incomplete {
			for _, sp := range rz.spellings(k.Initial, k.Middle, k.Final) {
				b.add(sp, zhuyin.IsPinyin, k.Index, rankComplete)
			}
		}
		if k.Initial != zhuyin.ZeroInitial && k.Middle == zhuyin.ZeroMiddle && k.Final == zhuyin.ZeroFinal {
			if ini := rz.initial(k.Initial); ini != "" {
				b.add(ini, zhuyin.IsPinyin|zhuyin.PinyinIncomplete, k.Index, rankIncomplete)
			}
		}
	}
}

var indexes struct {
	bopomofo, hsu, eten26, pinyin, luoma, secondary *Index
	bopoOnce, hsuOnce, etenOnce, pyOnce             sync.Once
	luomaOnce, secondaryOnce                        sync.Once
}

// BopomofoIndex returns the index of Bopomofo spellings, including
// incomplete input and symbols typed out of order.
func BopomofoIndex() *Index {
	indexes.bopoOnce.Do(func() {
		b := newBuilder("bopomofo")
		b.addBopomofo()
		b.addShuffled()
		indexes.bopomofo = b.index()
	})
	return indexes.bopomofo
}

// HsuIndex returns the index of Bopomofo spellings with Hsu keyboard
// corrections.
func HsuIndex() *Index {
	indexes.hsuOnce.Do(func() {
		b := newBuilder("hsu")
		b.addBopomofo()
		b.addCorrections(hsuCorrections)
		indexes.hsu = b.index()
	})
	return indexes.hsu
}

// Eten26Index returns the index of Bopomofo spellings with ETen26 keyboard
// corrections.
func Eten26Index() *Index {
	indexes.etenOnce.Do(func() {
		b := newBuilder("eten26")
		b.addBopomofo()
		b.addCorrections(eten26Corrections)
		indexes.eten26 = b.index()
	})
	return indexes.eten26
}

// PinyinIndex returns the index of Hanyu Pinyin spellings.
func PinyinIndex() *Index {
	indexes.pyOnce.Do(func() {
		b := newBuilder("pinyin")
		b.addRomanized(hanyuPinyin)
		indexes.pinyin = b.index()
	})
	return indexes.pinyin
}

// LuomaIndex returns the index of Luoma Pinyin spellings.
func LuomaIndex() *Index {
	indexes.luomaOnce.Do(func() {
		b := newBuilder("luoma")
		b.addRomanized(luomaPinyin)
		indexes.luoma = b.index()
	})
	return indexes.luoma
}

// SecondaryBopomofoIndex returns the index of Mandarin Phonetic Symbols II
// spellings.
func SecondaryBopomofoIndex() *Index {
	indexes.secondaryOnce.Do(func() {
		b := newBuilder("secondary_bopomofo")
		b.addRomanized(secondaryBopomofo)
		indexes.secondary = b.index()
	})
	return indexes.secondary
}

// IndexFor returns the index a scheme decodes against.
func IndexFor(scheme zhuyin.Scheme) *Index {
	switch scheme {
	case zhuyin.Hsu, zhuyin.HsuDvorak:
		return HsuIndex()
	case zhuyin.ETen26:
		return Eten26Index()
	case zhuyin.HanyuPinyin:
		return PinyinIndex()
	case zhuyin.LuomaPinyin:
		return LuomaIndex()
	case zhuyin.SecondaryBopomofo:
		return SecondaryBopomofoIndex()
	case zhuyin.Standard, zhuyin.IBM, zhuyin.GinYieh, zhuyin.ETen, zhuyin.StandardDvorak,
		zhuyin.DaChenCP26, zhuyin.DirectZhuyin:
		return BopomofoIndex()
	}
	panic(fmt.Sprintf("table: no index for scheme %v", scheme))
}
