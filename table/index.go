package table

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/zhuyin"
)

// IndexItem maps a composed phonetic string to an entry of the content
// table.
type IndexItem struct {
	Input string         // composed Bopomofo or Pinyin string
	Flags zhuyin.Options // IsZhuyin/IsPinyin, incomplete and correction flags
	Entry uint16         // position in the content table
}

// Index is a sorted table of composed phonetic strings. An index does not
// contain any string twice.
type Index struct {
	name  string
	items []IndexItem
}

func compareIndexItems(a, b interface{}) int {
	return utils.StringComparator(a.(IndexItem).Input, b.(IndexItem).Input)
}

// NewIndex creates an index from a list of items, which need not be sorted.
// Items referencing non-existing content entries or composed strings present
// more than once will panic.
func NewIndex(name string, items []IndexItem) *Index {
	list := arraylist.New()
	size := ContentSize()
	for _, item := range items {
		if int(item.Entry) >= size {
			panic(fmt.Sprintf("table: index %s: item %q references entry #%d of %d",
				name, item.Input, item.Entry, size))
		}
		list.Add(item)
	}
	list.Sort(compareIndexItems)
	ix := &Index{name: name, items: make([]IndexItem, 0, list.Size())}
	list.Each(func(i int, value interface{}) {
		item := value.(IndexItem)
		if i > 0 && ix.items[i-1].Input == item.Input {
			panic(fmt.Sprintf("table: index %s: duplicate input %q", name, item.Input))
		}
		ix.items = append(ix.items, item)
	})
	tracer().P("index", name).Debugf("index has %d entries", len(ix.items))
	return ix
}

// Name returns the name of an index.
func (ix *Index) Name() string {
	return ix.name
}

// Len returns the number of items in an index.
func (ix *Index) Len() int {
	return len(ix.items)
}

// Items calls f for every item of an index, in sorted order.
func (ix *Index) Items(f func(IndexItem)) {
	for _, item := range ix.items {
		f(item)
	}
}

// Search looks up a composed phonetic string and returns the canonical key
// for it. The key's tone is zhuyin.ZeroTone.
//
// An item matches only if the options allow it: items flagged as incomplete
// need the corresponding incomplete option, and items flagged with
// correction classes need all of those classes present in opts.
//
// Finding more than one item for a string means a corrupt index and will
// panic.
func (ix *Index) Search(opts zhuyin.Options, composed string) (zhuyin.Key, bool) {
	if composed == "" {
		return zhuyin.Key{}, false
	}
	i := sort.Search(len(ix.items), func(i int) bool {
		return strings.Compare(ix.items[i].Input, composed) >= 0
	})
	if i >= len(ix.items) || ix.items[i].Input != composed {
		return zhuyin.Key{}, false
	}
	if i+1 < len(ix.items) && ix.items[i+1].Input == composed {
		panic(fmt.Sprintf("table: index %s: ambiguous input %q", ix.name, composed))
	}
	item := ix.items[i]
	if !checkOptions(opts, item.Flags) {
		tracer().P("input", composed).Debugf("index item rejected for options %s", opts)
		return zhuyin.Key{}, false
	}
	return contentItems()[item.Entry].Key, true
}

func checkOptions(opts, flags zhuyin.Options) bool {
	if flags.Has(zhuyin.ZhuyinIncomplete) && !opts.Has(zhuyin.ZhuyinIncomplete) {
		return false
	}
	if flags.Has(zhuyin.PinyinIncomplete) && !opts.Has(zhuyin.PinyinIncomplete) {
		return false
	}
	corrections := flags & zhuyin.CorrectAll
	return opts&corrections == corrections
}
