package table

import (
	"embed"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/npillmayer/zhuyin"
	"github.com/npillmayer/zhuyin/internal/layoutparse"
)

//go:embed layouts/*.txt
var layoutFiles embed.FS

// Layout is a keyboard layout, mapping Latin keys to Bopomofo symbols and
// tones.
type Layout struct {
	Name     string
	Initials *SymbolTable // keys producing initials
	Middles  *SymbolTable // keys producing medials
	Finals   *SymbolTable // keys producing finals
	Symbols  *SymbolTable // union of the above, in layout order per key
	Tones    *ToneTable
}

// Table returns the symbol table for a role.
func (l *Layout) Table(role Role) *SymbolTable {
	switch role {
	case RoleInitial:
		return l.Initials
	case RoleMiddle:
		return l.Middles
	case RoleFinal:
		return l.Finals
	}
	return nil
}

// ReadLayout reads a keyboard layout in layout file format (see package
// internal/layoutparse). Every symbol has to match its role, tones are given
// as numbers 1…5. A key may produce at most two symbols of a role.
func ReadLayout(name string, r io.Reader) (*Layout, error) {
	var items [4][]SymbolItem
	var all []SymbolItem
	var tones []ToneItem
	count := make(map[string]int)
	var err error
	perr := layoutparse.Parse(r, func(token *layoutparse.Token) {
		if err != nil {
			return
		}
		role, sym := roleFromName(token.Field(1)), token.Field(2)
		switch role {
		case RoleTone:
			n, e := strconv.Atoi(sym)
			if e != nil || n < int(zhuyin.Tone1) || n > int(zhuyin.Tone5) {
				err = fmt.Errorf("layout %s, line %d: invalid tone %q", name, token.LineNo, sym)
				return
			}
			tones = append(tones, ToneItem{Key: token.Key, Tone: zhuyin.Tone(n)})
			return
		case NoRole:
			err = fmt.Errorf("layout %s, line %d: unknown role %q", name, token.LineNo, token.Field(1))
			return
		}
		if symbolRole(sym) != role {
			err = fmt.Errorf("layout %s, line %d: %q is not a symbol of role %s",
				name, token.LineNo, sym, role)
			return
		}
		k := role.String() + string(token.Key)
		if count[k]++; count[k] > 2 {
			err = fmt.Errorf("layout %s, line %d: key %q has more than 2 symbols of role %s",
				name, token.LineNo, token.Key, role)
			return
		}
		item := SymbolItem{Key: token.Key, Symbol: sym}
		items[role-RoleInitial] = append(items[role-RoleInitial], item)
		all = append(all, item)
	})
	if perr != nil {
		return nil, fmt.Errorf("layout %s: %w", name, perr)
	}
	if err != nil {
		return nil, err
	}
	return &Layout{
		Name:     name,
		Initials: newSymbolTable(items[0]),
		Middles:  newSymbolTable(items[1]),
		Finals:   newSymbolTable(items[2]),
		Symbols:  newSymbolTable(all),
		Tones:    newToneTable(tones),
	}, nil
}

func symbolRole(sym string) Role {
	ini, mid, fin, ok := zhuyin.ParseZhuyin(sym)
	switch {
	case !ok || !zhuyin.IsBopomofoSymbol(sym):
		return NoRole
	case ini != zhuyin.ZeroInitial:
		return RoleInitial
	case mid != zhuyin.ZeroMiddle:
		return RoleMiddle
	case fin != zhuyin.ZeroFinal:
		return RoleFinal
	}
	return NoRole
}

// --- Built-in layouts ------------------------------------------------------

var layoutSources = map[zhuyin.Scheme]string{
	zhuyin.Standard:   "standard",
	zhuyin.IBM:        "ibm",
	zhuyin.GinYieh:    "ginyieh",
	zhuyin.ETen:       "eten",
	zhuyin.Hsu:        "hsu",
	zhuyin.ETen26:     "eten26",
	zhuyin.DaChenCP26: "dachen_cp26",
}

var dvorakVariants = map[zhuyin.Scheme]zhuyin.Scheme{
	zhuyin.StandardDvorak: zhuyin.Standard,
	zhuyin.HsuDvorak:      zhuyin.Hsu,
}

// qwertyToDvorak maps a key of a QWERTY keyboard to the character printed
// on the same physical key of a Dvorak keyboard.
var qwertyToDvorak = map[rune]rune{
	'-': '[', '=': ']',
	'q': '\'', 'w': ',', 'e': '.', 'r': 'p', 't': 'y', 'y': 'f', 'u': 'g',
	'i': 'c', 'o': 'r', 'p': 'l', '[': '/', ']': '=',
	'a': 'a', 's': 'o', 'd': 'e', 'f': 'u', 'g': 'i', 'h': 'd', 'j': 'h',
	'k': 't', 'l': 'n', ';': 's', '\'': '-',
	'z': ';', 'x': 'q', 'c': 'j', 'v': 'k', 'b': 'x', 'n': 'b', 'm': 'm',
	',': 'w', '.': 'v', '/': 'z',
}

// DvorakKey returns the character printed on a Dvorak keyboard on the
// physical key which carries r on a QWERTY keyboard.
func DvorakKey(r rune) rune {
	if d, ok := qwertyToDvorak[r]; ok {
		return d
	}
	return r
}

var builtin struct {
	once    sync.Once
	layouts map[zhuyin.Scheme]*Layout
}

func setupLayouts() {
	builtin.layouts = make(map[zhuyin.Scheme]*Layout, len(layoutSources)+len(dvorakVariants))
	for scheme, name := range layoutSources {
		f, err := layoutFiles.Open("layouts/" + name + ".txt")
		if err != nil {
			panic(fmt.Sprintf("table: cannot open built-in layout %s: %v", name, err))
		}
		l, err := ReadLayout(name, f)
		f.Close()
		if err != nil {
			panic(fmt.Sprintf("table: corrupt built-in layout: %v", err))
		}
		builtin.layouts[scheme] = l
		tracer().P("layout", name).Debugf("loaded %d symbols, %d tones", l.Symbols.Len(), len(l.Tones.items))
	}
	for scheme, base := range dvorakVariants {
		builtin.layouts[scheme] = remap(builtin.layouts[base], scheme.String(), DvorakKey)
	}
}

func remap(l *Layout, name string, mapping func(rune) rune) *Layout {
	mapSymbols := func(st *SymbolTable) *SymbolTable {
		items := make([]SymbolItem, len(st.items))
		for i, item := range st.items {
			items[i] = SymbolItem{Key: mapping(item.Key), Symbol: item.Symbol}
		}
		return newSymbolTable(items)
	}
	tones := make([]ToneItem, len(l.Tones.items))
	for i, item := range l.Tones.items {
		tones[i] = ToneItem{Key: mapping(item.Key), Tone: item.Tone}
	}
	return &Layout{
		Name:     name,
		Initials: mapSymbols(l.Initials),
		Middles:  mapSymbols(l.Middles),
		Finals:   mapSymbols(l.Finals),
		Symbols:  mapSymbols(l.Symbols),
		Tones:    newToneTable(tones),
	}
}

// LayoutFor returns the built-in keyboard layout for a scheme. Schemes
// without a keyboard layout (direct input) return nil.
func LayoutFor(scheme zhuyin.Scheme) *Layout {
	builtin.once.Do(setupLayouts)
	return builtin.layouts[scheme]
}
