package table

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/zhuyin"
)

func TestContentTable(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	if ContentSize() < 400 {
		t.Fatalf("expected content table to hold all syllables, has %d entries", ContentSize())
	}
	var prev zhuyin.Key
	for i := 0; i < ContentSize(); i++ {
		item, ok := Content(i)
		if !ok {
			t.Fatalf("expected entry #%d to exist", i)
		}
		if int(item.Key.Index) != i {
			t.Errorf("entry #%d has index %d", i, item.Key.Index)
		}
		if i > 0 && packKey(prev.Initial, prev.Middle, prev.Final) >= packKey(item.Key.Initial,
			item.Key.Middle, item.Key.Final) {
			t.Errorf("content table not sorted at #%d: %s >= %s", i, prev.Zhuyin(), item.Key.Zhuyin())
		}
		prev = item.Key
	}
	if _, ok := Content(ContentSize()); ok {
		t.Errorf("expected access beyond table size to fail")
	}
}

func TestContentKeys(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	for _, s := range []string{"ㄋㄧ", "ㄏㄠ", "ㄓ", "ㄙㄨㄥ", "ㄩㄝ", "ㄦ", "ㄌㄩㄝ"} {
		k, ok := ParseKey(s)
		if !ok {
			t.Errorf("expected %q to be a syllable", s)
			continue
		}
		if k.Zhuyin() != s {
			t.Errorf("expected key for %q to spell %q, is %q", s, s, k.Zhuyin())
		}
		item, _ := Content(int(k.Index))
		if item.Incomplete {
			t.Errorf("expected %q to be a complete syllable", s)
		}
	}
	for _, s := range []string{"ㄅㄨㄥ", "ㄐㄚ", "ㄓㄧ", "ㄧㄧ"} {
		if _, ok := ParseKey(s); ok {
			t.Errorf("expected %q not to be a syllable", s)
		}
	}
	k, ok := ParseKey("ㄅ")
	if !ok {
		t.Fatalf("expected initial-only entry for ㄅ")
	}
	if item, _ := Content(int(k.Index)); !item.Incomplete {
		t.Errorf("expected ㄅ to be flagged as incomplete")
	}
	k, ok = ParseKey("ㄏㄠˇ")
	if !ok || k.Tone != zhuyin.Tone3 {
		t.Errorf("expected ㄏㄠˇ to parse with tone 3, have %#v", k)
	}
}

func TestLayouts(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	for _, scheme := range zhuyin.Schemes() {
		l := LayoutFor(scheme)
		switch scheme {
		case zhuyin.DirectZhuyin, zhuyin.HanyuPinyin, zhuyin.LuomaPinyin, zhuyin.SecondaryBopomofo:
			if l != nil {
				t.Errorf("expected no keyboard layout for %v", scheme)
			}
			continue
		}
		if l == nil {
			t.Fatalf("expected built-in layout for %v", scheme)
		}
		if l.Initials.Len() != 21 || l.Middles.Len() != 3 || l.Finals.Len() != 13 {
			t.Errorf("layout %s: expected 21/3/13 symbols, have %d/%d/%d", l.Name,
				l.Initials.Len(), l.Middles.Len(), l.Finals.Len())
		}
		if len(l.Tones.items) != 5 {
			t.Errorf("layout %s: expected 5 tone keys, have %d", l.Name, len(l.Tones.items))
		}
	}
	std := LayoutFor(zhuyin.Standard)
	if s, _ := std.Symbols.Lookup('s'); s != "ㄋ" {
		t.Errorf("expected standard 's' to produce ㄋ, is %q", s)
	}
	if s, _ := std.Symbols.Lookup(';'); s != "ㄤ" {
		t.Errorf("expected standard ';' to produce ㄤ, is %q", s)
	}
	if tone, _ := std.Tones.Lookup(' '); tone != zhuyin.Tone1 {
		t.Errorf("expected space to be tone 1, is %d", tone)
	}
	dv := LayoutFor(zhuyin.StandardDvorak)
	if s, _ := dv.Symbols.Lookup('o'); s != "ㄋ" {
		t.Errorf("expected Dvorak 'o' to produce ㄋ, is %q", s)
	}
	hsu := LayoutFor(zhuyin.Hsu)
	first, second, n := hsu.Initials.Lookup2('j')
	if n != 2 || first != "ㄐ" || second != "ㄓ" {
		t.Errorf("expected Hsu 'j' to be ㄐ/ㄓ, is %q/%q (%d)", first, second, n)
	}
	if tone, _ := hsu.Tones.Lookup('f'); tone != zhuyin.Tone3 {
		t.Errorf("expected Hsu 'f' to be tone 3, is %d", tone)
	}
}

func TestReadLayoutErrors(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	inputs := []string{
		"a ; initial ; ㄧ\n",                                   // wrong role
		"a ; vowel ; ㄚ\n",                                     // unknown role
		"a ; tone ; 7\n",                                       // tone out of range
		"a ; final ; ㄚ\na ; final ; ㄛ\na ; final ; ㄜ\n",      // too many alternates
		"a ; final ; ab\n",                                     // not Bopomofo
		"a final\n",                                            // syntax
	}
	for i, input := range inputs {
		if _, err := ReadLayout("test", strings.NewReader(input)); err == nil {
			t.Errorf("input #%d: expected error, got none", i)
		}
	}
	l, err := ReadLayout("test", strings.NewReader("a ; final ; ㄚ\na ; final ; ㄛ\nU+0020 ; tone ; 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	if f, s, n := l.Finals.Lookup2('a'); n != 2 || f != "ㄚ" || s != "ㄛ" {
		t.Errorf("expected alternates ㄚ/ㄛ in layout order, have %q/%q", f, s)
	}
}

func TestLookup2Panics(t *testing.T) {
	st := newSymbolTable([]SymbolItem{{'a', "ㄚ"}, {'a', "ㄛ"}, {'a', "ㄜ"}})
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected corrupt symbol table to panic")
		}
	}()
	st.Lookup2('a')
}
