package table

import (
	"fmt"
	"sort"

	"github.com/npillmayer/zhuyin"
)

// Role is the part a key plays for a keyboard layout.
type Role int8

// Roles of keys.
const (
	NoRole      Role = iota
	RoleInitial      // key produces an initial
	RoleMiddle       // key produces a medial
	RoleFinal        // key produces a final
	RoleTone         // key produces a tone
)

var roleNames = [...]string{"none", "initial", "middle", "final", "tone"}

func (r Role) String() string {
	if r < NoRole || int(r) >= len(roleNames) {
		return fmt.Sprintf("Role(%d)", r)
	}
	return roleNames[r]
}

func roleFromName(name string) Role {
	for i, n := range roleNames {
		if i > 0 && n == name {
			return Role(i)
		}
	}
	return NoRole
}

// SymbolItem maps a key to a Bopomofo symbol.
type SymbolItem struct {
	Key    rune
	Symbol string
}

// SymbolTable maps keys to Bopomofo symbols. A key may be mapped to at most
// two symbols; their order is significant.
type SymbolTable struct {
	items []SymbolItem // sorted by key, alternates in layout order
}

func newSymbolTable(items []SymbolItem) *SymbolTable {
	st := &SymbolTable{items: make([]SymbolItem, len(items))}
	copy(st.items, items)
	sort.SliceStable(st.items, func(i, j int) bool {
		return st.items[i].Key < st.items[j].Key
	})
	return st
}

func (st *SymbolTable) find(key rune) (int, int) {
	from := sort.Search(len(st.items), func(i int) bool { return st.items[i].Key >= key })
	to := from
	for to < len(st.items) && st.items[to].Key == key {
		to++
	}
	return from, to
}

// Lookup returns the (first) symbol for a key.
func (st *SymbolTable) Lookup(key rune) (string, bool) {
	if st == nil {
		return "", false
	}
	from, to := st.find(key)
	if from == to {
		return "", false
	}
	return st.items[from].Symbol, true
}

// Lookup2 returns the symbols for a key which is mapped to two alternative
// symbols. n is the number of symbols found (0, 1 or 2). More than two
// symbols for a key means corrupt table data and will panic.
func (st *SymbolTable) Lookup2(key rune) (first, second string, n int) {
	if st == nil {
		return
	}
	from, to := st.find(key)
	switch n = to - from; n {
	case 0:
	case 1:
		first = st.items[from].Symbol
	case 2:
		first, second = st.items[from].Symbol, st.items[from+1].Symbol
	default:
		panic(fmt.Sprintf("table: key %q mapped to %d symbols", key, n))
	}
	return
}

// Len returns the number of items of a symbol table.
func (st *SymbolTable) Len() int {
	if st == nil {
		return 0
	}
	return len(st.items)
}

// ToneItem maps a key to a tone.
type ToneItem struct {
	Key  rune
	Tone zhuyin.Tone
}

// ToneTable maps keys to tones.
type ToneTable struct {
	items []ToneItem
}

func newToneTable(items []ToneItem) *ToneTable {
	tt := &ToneTable{items: make([]ToneItem, len(items))}
	copy(tt.items, items)
	sort.SliceStable(tt.items, func(i, j int) bool {
		return tt.items[i].Key < tt.items[j].Key
	})
	return tt
}

// Lookup returns the tone for a key.
func (tt *ToneTable) Lookup(key rune) (zhuyin.Tone, bool) {
	if tt == nil {
		return zhuyin.ZeroTone, false
	}
	i := sort.Search(len(tt.items), func(i int) bool { return tt.items[i].Key >= key })
	if i < len(tt.items) && tt.items[i].Key == key {
		return tt.items[i].Tone, true
	}
	return zhuyin.ZeroTone, false
}

// KeyFor returns the key producing tone t.
func (tt *ToneTable) KeyFor(t zhuyin.Tone) (rune, bool) {
	if tt == nil {
		return 0, false
	}
	for _, item := range tt.items {
		if item.Tone == t {
			return item.Key, true
		}
	}
	return 0, false
}

// KeyFor returns the first key producing symbol.
func (st *SymbolTable) KeyFor(symbol string) (rune, bool) {
	if st == nil {
		return 0, false
	}
	for _, item := range st.items {
		if item.Symbol == symbol {
			return item.Key, true
		}
	}
	return 0, false
}
