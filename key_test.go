package zhuyin

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestParseZhuyin(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tests := []struct {
		s   string
		key Key
		ok  bool
	}{
		{"ㄋㄧ", Key{Initial: N, Middle: I}, true},
		{"ㄏㄠ", Key{Initial: H, Final: AO}, true},
		{"ㄓ", Key{Initial: ZH}, true},
		{"ㄩㄥ", Key{Middle: V, Final: ENG}, true},
		{"ㄦ", Key{Final: ER}, true},
		{"ㄧㄋ", Key{}, false}, // not canonical
		{"ㄋㄋ", Key{}, false},
		{"ni", Key{}, false},
		{"", Key{}, false},
	}
	for _, test := range tests {
		ini, mid, fin, ok := ParseZhuyin(test.s)
		if ok != test.ok {
			t.Errorf("%q: expected ok=%v", test.s, test.ok)
			continue
		}
		k := Key{Initial: ini, Middle: mid, Final: fin}
		if !k.Equal(test.key) {
			t.Errorf("%q: expected %#v, have %#v", test.s, test.key, k)
		}
		if ok && k.Zhuyin() != test.s {
			t.Errorf("%q: spelling is %q", test.s, k.Zhuyin())
		}
	}
}

func TestKeyString(t *testing.T) {
	k := Key{Initial: N, Middle: I}
	if k.String() != "ㄋㄧ" || k.WithTone(Tone1).String() != "ㄋㄧ" {
		t.Errorf("expected keys without tone and in tone 1 to have no tone mark")
	}
	if s := k.WithTone(Tone3).String(); s != "ㄋㄧˇ" {
		t.Errorf("expected ㄋㄧˇ, have %q", s)
	}
	if k.WithTone(Tone3).Zhuyin() != "ㄋㄧ" {
		t.Errorf("expected Zhuyin() to omit the tone mark")
	}
	if !k.WithTone(Tone2).Equal(k.WithTone(Tone2)) || k.WithTone(Tone2).Equal(k) {
		t.Errorf("expected tone to take part in key comparison")
	}
	keys := Keys{k.WithTone(Tone3), {Initial: H, Final: AO, Tone: Tone5}}
	if keys.String() != "ㄋㄧˇ ㄏㄠ˙" {
		t.Errorf("expected ㄋㄧˇ ㄏㄠ˙, have %q", keys.String())
	}
	if tone, ok := ToneFromSymbol("ˋ"); !ok || tone != Tone4 {
		t.Errorf("expected ˋ to be tone 4")
	}
	if !(Key{}).IsEmpty() || k.IsEmpty() {
		t.Errorf("IsEmpty is broken")
	}
}

func TestPinyinSpellings(t *testing.T) {
	tests := []struct {
		key      Key
		spelling string
	}{
		{Key{Initial: N, Middle: I}, "ni"},
		{Key{Initial: H, Final: AO}, "hao"},
		{Key{Initial: ZH}, "zhi"},
		{Key{Initial: S}, "si"},
		{Key{Middle: I}, "yi"},
		{Key{Middle: I, Final: OU}, "you"},
		{Key{Middle: I, Final: AN}, "yan"},
		{Key{Middle: I, Final: ENG}, "ying"},
		{Key{Middle: U}, "wu"},
		{Key{Middle: U, Final: EI}, "wei"},
		{Key{Middle: U, Final: ANG}, "wang"},
		{Key{Middle: U, Final: ENG}, "weng"},
		{Key{Middle: V}, "yu"},
		{Key{Middle: V, Final: AN}, "yuan"},
		{Key{Middle: V, Final: ENG}, "yong"},
		{Key{Initial: J, Middle: V, Final: EH}, "jue"},
		{Key{Initial: X, Middle: V, Final: ENG}, "xiong"},
		{Key{Initial: L, Middle: V}, "lü"},
		{Key{Initial: G, Middle: U, Final: EN}, "gun"},
		{Key{Initial: D, Middle: U, Final: ENG}, "dong"},
		{Key{Initial: Q, Middle: I, Final: OU}, "qiu"},
		{Key{Final: ER}, "er"},
	}
	for _, test := range tests {
		sp := PinyinSpellings(test.key.Initial, test.key.Middle, test.key.Final)
		if len(sp) == 0 || sp[0] != test.spelling {
			t.Errorf("%s: expected %q, have %v", test.key, test.spelling, sp)
		}
	}
	if sp := PinyinSpellings(N, V, EH); len(sp) != 2 || sp[1] != "nve" {
		t.Errorf("expected ㄋㄩㄝ to be spelled nüe and nve, have %v", sp)
	}
	if sp := PinyinSpellings(B, ZeroMiddle, ZeroFinal); sp != nil {
		t.Errorf("expected bare initial ㄅ to have no spelling, have %v", sp)
	}
}

func TestKeyPinyin(t *testing.T) {
	if p := (Key{Initial: N, Middle: I, Tone: Tone3}).Pinyin(); p != "ni3" {
		t.Errorf("expected ni3, have %q", p)
	}
	if p := (Key{Initial: N, Middle: I}).Pinyin(); p != "ni" {
		t.Errorf("expected ni, have %q", p)
	}
	if p := (Key{Initial: B, Tone: Tone1}).Pinyin(); p != "b1" {
		t.Errorf("expected incomplete key ㄅ to be b1, have %q", p)
	}
}

func TestOptions(t *testing.T) {
	opts := UseTone | CorrectHsu
	if !opts.Has(UseTone) || opts.Has(ForceTone) || opts.Has(UseTone|ForceTone) {
		t.Errorf("Has is broken for %s", opts)
	}
	if opts.Without(CorrectAll) != UseTone {
		t.Errorf("expected corrections to be cleared, have %s", opts.Without(CorrectAll))
	}
	if opts.String() != "[correct_hsu|use_tone]" {
		t.Errorf("unexpected option names %s", opts)
	}
	if o, ok := OptionFromName(" Amb_An_Ang "); !ok || o != AmbAnAng {
		t.Errorf("expected to find option amb_an_ang")
	}
	if AmbAll&(UseTone|ForceTone|CorrectAll|IsZhuyin|IsPinyin) != 0 {
		t.Errorf("expected ambiguity flags not to overlap parse options")
	}
	// bit values are part of the API
	if UseTone != 0x20 || CorrectShuffle != 0x200 || AmbCCh != 1<<20 {
		t.Errorf("option bit values have changed")
	}
}

func TestSchemes(t *testing.T) {
	if len(Schemes()) != 13 {
		t.Errorf("expected 13 keyboard schemes, have %d", len(Schemes()))
	}
	for _, s := range Schemes() {
		if s2, ok := SchemeFromName(s.String()); !ok || s2 != s {
			t.Errorf("expected scheme %v to be found by its name", s)
		}
	}
	if s, ok := SchemeFromName("Hsu-Dvorak"); !ok || s != HsuDvorak {
		t.Errorf("expected Hsu-Dvorak to name the Hsu Dvorak scheme")
	}
	if s, ok := SchemeFromName("luoma_pinyin"); !ok || s != LuomaPinyin {
		t.Errorf("expected luoma_pinyin to name the Luoma Pinyin scheme")
	}
	if _, ok := SchemeFromName("qwerty"); ok {
		t.Errorf("expected qwerty not to be a scheme")
	}
	if Scheme(0).IsValid() || Scheme(0).String() != "Scheme(0)" {
		t.Errorf("expected zero scheme to be invalid")
	}
}

func TestSpan(t *testing.T) {
	if (Span{Begin: 4, End: 8}).Len() != 4 {
		t.Errorf("expected span [4,8) to have length 4")
	}
}

func TestTaiwanRomanizations(t *testing.T) {
	tests := []struct {
		key       Key
		luoma     string
		secondary string
	}{
		{Key{Initial: ZH}, "chih", "jr"},
		{Key{Initial: C}, "tzhu", "tsz"},
		{Key{Initial: Q, Middle: V, Final: AN}, "chhüan", "chiuan"},
		{Key{Initial: X, Middle: I, Final: ENG}, "hsing", "shing"},
		{Key{Initial: L, Middle: I, Final: OU}, "liu", "liou"},
		{Key{Initial: D, Middle: U, Final: EI}, "tui", "duei"},
		{Key{Initial: H, Final: AO}, "hao", "hau"},
		{Key{Middle: I, Final: AN}, "yen", "yan"},
		{Key{Middle: V, Final: EN}, "yün", "yun"},
		{Key{Middle: U, Final: ENG}, "weng", "weng"},
		{Key{Final: ER}, "erh", "er"},
	}
	for _, test := range tests {
		if sp := LuomaSpellings(test.key.Initial, test.key.Middle, test.key.Final); len(sp) == 0 || sp[0] != test.luoma {
			t.Errorf("%s: expected Luoma %q, have %v", test.key, test.luoma, sp)
		}
		if sp := SecondaryBopomofoSpellings(test.key.Initial, test.key.Middle, test.key.Final); len(sp) == 0 || sp[0] != test.secondary {
			t.Errorf("%s: expected MPS II %q, have %v", test.key, test.secondary, sp)
		}
	}
	if sp := LuomaSpellings(N, V, ZeroFinal); len(sp) != 2 || sp[1] != "nv" {
		t.Errorf("expected ㄋㄩ to be spelled nü and nv, have %v", sp)
	}
	if LuomaInitial(ZH) != "" || LuomaInitial(J) != "ch" || SecondaryBopomofoInitial(X) != "sh" {
		t.Errorf("unexpected spelling of lone initials")
	}
}
