package table

import (
	"fmt"
	"strings"
	"sync"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/zhuyin"
)

// Rimes per initial. "-" denotes an initial which is a complete syllable on
// its own. Initials without "-" get an incomplete initial-only entry.
var syllables = []struct {
	initial string
	rimes   string
}{
	{"", "ㄚ ㄛ ㄜ ㄝ ㄞ ㄟ ㄠ ㄡ ㄢ ㄣ ㄤ ㄥ ㄦ ㄧ ㄧㄚ ㄧㄛ ㄧㄝ ㄧㄞ ㄧㄠ ㄧㄡ ㄧㄢ ㄧㄣ ㄧㄤ ㄧㄥ " +
		"ㄨ ㄨㄚ ㄨㄛ ㄨㄞ ㄨㄟ ㄨㄢ ㄨㄣ ㄨㄤ ㄨㄥ ㄩ ㄩㄝ ㄩㄢ ㄩㄣ ㄩㄥ"},
	{"ㄅ", "ㄚ ㄛ ㄞ ㄟ ㄠ ㄢ ㄣ ㄤ ㄥ ㄧ ㄧㄝ ㄧㄠ ㄧㄢ ㄧㄣ ㄧㄥ ㄨ"},
	{"ㄆ", "ㄚ ㄛ ㄞ ㄟ ㄠ ㄡ ㄢ ㄣ ㄤ ㄥ ㄧ ㄧㄝ ㄧㄠ ㄧㄢ ㄧㄣ ㄧㄥ ㄨ"},
	{"ㄇ", "ㄚ ㄛ ㄜ ㄞ ㄟ ㄠ ㄡ ㄢ ㄣ ㄤ ㄥ ㄧ ㄧㄝ ㄧㄠ ㄧㄡ ㄧㄢ ㄧㄣ ㄧㄥ ㄨ"},
	{"ㄈ", "ㄚ ㄛ ㄟ ㄡ ㄢ ㄣ ㄤ ㄥ ㄨ"},
	{"ㄉ", "ㄚ ㄜ ㄞ ㄟ ㄠ ㄡ ㄢ ㄣ ㄤ ㄥ ㄧ ㄧㄚ ㄧㄝ ㄧㄠ ㄧㄡ ㄧㄢ ㄧㄥ ㄨ ㄨㄛ ㄨㄟ ㄨㄢ ㄨㄣ ㄨㄥ"},
	{"ㄊ", "ㄚ ㄜ ㄞ ㄠ ㄡ ㄢ ㄤ ㄥ ㄧ ㄧㄝ ㄧㄠ ㄧㄢ ㄧㄥ ㄨ ㄨㄛ ㄨㄟ ㄨㄢ ㄨㄣ ㄨㄥ"},
	{"ㄋ", "ㄚ ㄜ ㄞ ㄟ ㄠ ㄡ ㄢ ㄣ ㄤ ㄥ ㄧ ㄧㄝ ㄧㄠ ㄧㄡ ㄧㄢ ㄧㄣ ㄧㄤ ㄧㄥ ㄨ ㄨㄛ ㄨㄢ ㄨㄥ ㄩ ㄩㄝ"},
	{"ㄌ", "ㄚ ㄛ ㄜ ㄞ ㄟ ㄠ ㄡ ㄢ ㄤ ㄥ ㄧ ㄧㄚ ㄧㄝ ㄧㄠ ㄧㄡ ㄧㄢ ㄧㄣ ㄧㄤ ㄧㄥ ㄨ ㄨㄛ ㄨㄢ ㄨㄣ ㄨㄥ ㄩ ㄩㄝ"},
	{"ㄍ", "ㄚ ㄜ ㄞ ㄟ ㄠ ㄡ ㄢ ㄣ ㄤ ㄥ ㄨ ㄨㄚ ㄨㄛ ㄨㄞ ㄨㄟ ㄨㄢ ㄨㄣ ㄨㄤ ㄨㄥ"},
	{"ㄎ", "ㄚ ㄜ ㄞ ㄟ ㄠ ㄡ ㄢ ㄣ ㄤ ㄥ ㄨ ㄨㄚ ㄨㄛ ㄨㄞ ㄨㄟ ㄨㄢ ㄨㄣ ㄨㄤ ㄨㄥ"},
	{"ㄏ", "ㄚ ㄜ ㄞ ㄟ ㄠ ㄡ ㄢ ㄣ ㄤ ㄥ ㄨ ㄨㄚ ㄨㄛ ㄨㄞ ㄨㄟ ㄨㄢ ㄨㄣ ㄨㄤ ㄨㄥ"},
	{"ㄐ", "ㄧ ㄧㄚ ㄧㄝ ㄧㄠ ㄧㄡ ㄧㄢ ㄧㄣ ㄧㄤ ㄧㄥ ㄩ ㄩㄝ ㄩㄢ ㄩㄣ ㄩㄥ"},
	{"ㄑ", "ㄧ ㄧㄚ ㄧㄝ ㄧㄠ ㄧㄡ ㄧㄢ ㄧㄣ ㄧㄤ ㄧㄥ ㄩ ㄩㄝ ㄩㄢ ㄩㄣ ㄩㄥ"},
	{"ㄒ", "ㄧ ㄧㄚ ㄧㄝ ㄧㄠ ㄧㄡ ㄧㄢ ㄧㄣ ㄧㄤ ㄧㄥ ㄩ ㄩㄝ ㄩㄢ ㄩㄣ ㄩㄥ"},
	{"ㄓ", "- ㄚ ㄜ ㄞ ㄟ ㄠ ㄡ ㄢ ㄣ ㄤ ㄥ ㄨ ㄨㄚ ㄨㄛ ㄨㄞ ㄨㄟ ㄨㄢ ㄨㄣ ㄨㄤ ㄨㄥ"},
	{"ㄔ", "- ㄚ ㄜ ㄞ ㄠ ㄡ ㄢ ㄣ ㄤ ㄥ ㄨ ㄨㄚ ㄨㄛ ㄨㄞ ㄨㄟ ㄨㄢ ㄨㄣ ㄨㄤ ㄨㄥ"},
	{"ㄕ", "- ㄚ ㄜ ㄞ ㄟ ㄠ ㄡ ㄢ ㄣ ㄤ ㄥ ㄨ ㄨㄚ ㄨㄛ ㄨㄞ ㄨㄟ ㄨㄢ ㄨㄣ ㄨㄤ"},
	{"ㄖ", "- ㄜ ㄠ ㄡ ㄢ ㄣ ㄤ ㄥ ㄨ ㄨㄚ ㄨㄛ ㄨㄟ ㄨㄢ ㄨㄣ ㄨㄥ"},
	{"ㄗ", "- ㄚ ㄜ ㄞ ㄟ ㄠ ㄡ ㄢ ㄣ ㄤ ㄥ ㄨ ㄨㄛ ㄨㄟ ㄨㄢ ㄨㄣ ㄨㄥ"},
	{"ㄘ", "- ㄚ ㄜ ㄞ ㄠ ㄡ ㄢ ㄣ ㄤ ㄥ ㄨ ㄨㄛ ㄨㄟ ㄨㄢ ㄨㄣ ㄨㄥ"},
	{"ㄙ", "- ㄚ ㄜ ㄞ ㄠ ㄡ ㄢ ㄣ ㄤ ㄥ ㄨ ㄨㄛ ㄨㄟ ㄨㄢ ㄨㄣ ㄨㄥ"},
}

// ContentItem is an entry of the canonical phoneme table.
type ContentItem struct {
	Key        zhuyin.Key // toneless key, Index set to the item's position
	Incomplete bool       // initial without a rime; not a syllable on its own
}

var content struct {
	once  sync.Once
	items []ContentItem
	pos   map[uint32]uint16
}

func packKey(ini zhuyin.Initial, mid zhuyin.Middle, fin zhuyin.Final) uint32 {
	return uint32(ini)<<16 | uint32(mid)<<8 | uint32(fin)
}

func compareContent(a, b interface{}) int {
	ka, kb := a.(ContentItem).Key, b.(ContentItem).Key
	pa, pb := packKey(ka.Initial, ka.Middle, ka.Final), packKey(kb.Initial, kb.Middle, kb.Final)
	switch {
	case pa < pb:
		return -1
	case pa > pb:
		return 1
	}
	return 0
}

func setupContent() {
	list := arraylist.New()
	for _, s := range syllables {
		var ini zhuyin.Initial
		if s.initial != "" {
			i, _, _, ok := zhuyin.ParseZhuyin(s.initial)
			if !ok || i == zhuyin.ZeroInitial {
				panic(fmt.Sprintf("table: invalid initial %q in content data", s.initial))
			}
			ini = i
		}
		complete := false
		for _, rime := range strings.Fields(s.rimes) {
			if rime == "-" {
				complete = true
				list.Add(ContentItem{Key: zhuyin.Key{Initial: ini}})
				continue
			}
			i, mid, fin, ok := zhuyin.ParseZhuyin(rime)
			if !ok || i != zhuyin.ZeroInitial {
				panic(fmt.Sprintf("table: invalid rime %q in content data", rime))
			}
			list.Add(ContentItem{Key: zhuyin.Key{Initial: ini, Middle: mid, Final: fin}})
		}
		if ini != zhuyin.ZeroInitial && !complete {
			list.Add(ContentItem{Key: zhuyin.Key{Initial: ini}, Incomplete: true})
		}
	}
	list.Sort(compareContent)
	content.items = make([]ContentItem, 0, list.Size())
	content.pos = make(map[uint32]uint16, list.Size())
	list.Each(func(i int, value interface{}) {
		item := value.(ContentItem)
		p := packKey(item.Key.Initial, item.Key.Middle, item.Key.Final)
		if _, dup := content.pos[p]; dup {
			panic(fmt.Sprintf("table: duplicate syllable %s in content data", item.Key.Zhuyin()))
		}
		item.Key.Index = uint16(i)
		content.pos[p] = uint16(i)
		content.items = append(content.items, item)
	})
	tracer().Debugf("table: content table has %d entries", len(content.items))
}

func contentItems() []ContentItem {
	content.once.Do(setupContent)
	return content.items
}

// ContentSize returns the number of entries of the canonical phoneme table.
func ContentSize() int {
	return len(contentItems())
}

// Content returns entry #index of the canonical phoneme table.
func Content(index int) (ContentItem, bool) {
	items := contentItems()
	if index < 0 || index >= len(items) {
		return ContentItem{}, false
	}
	return items[index], true
}

// KeyOf returns the canonical (toneless) key for a combination of initial,
// medial and final. It returns false if the combination is not an entry of
// the phoneme table. Incomplete entries are found as well.
func KeyOf(ini zhuyin.Initial, mid zhuyin.Middle, fin zhuyin.Final) (zhuyin.Key, bool) {
	items := contentItems()
	i, ok := content.pos[packKey(ini, mid, fin)]
	if !ok {
		return zhuyin.Key{}, false
	}
	return items[i].Key, true
}

// ParseKey returns the canonical key for a Bopomofo spelling in canonical
// order, optionally followed by a tone mark.
func ParseKey(s string) (zhuyin.Key, bool) {
	tone := zhuyin.ZeroTone
	for t := zhuyin.Tone1; t <= zhuyin.Tone5; t++ {
		if m := t.Symbol(); strings.HasSuffix(s, m) {
			tone, s = t, strings.TrimSuffix(s, m)
			break
		}
	}
	ini, mid, fin, ok := zhuyin.ParseZhuyin(s)
	if !ok {
		return zhuyin.Key{}, false
	}
	k, ok := KeyOf(ini, mid, fin)
	return k.WithTone(tone), ok
}
