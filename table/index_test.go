package table

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/zhuyin"
)

func TestIndexSorted(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	for _, ix := range []*Index{BopomofoIndex(), HsuIndex(), Eten26Index(), PinyinIndex(),
		LuomaIndex(), SecondaryBopomofoIndex()} {
		prev := ""
		ix.Items(func(item IndexItem) {
			if item.Input <= prev {
				t.Errorf("index %s not strictly sorted at %q", ix.Name(), item.Input)
			}
			prev = item.Input
		})
		t.Logf("index %s has %d entries", ix.Name(), ix.Len())
	}
}

func TestSearch(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tests := []struct {
		index  *Index
		opts   zhuyin.Options
		input  string
		result string // Bopomofo spelling, "" for no match
	}{
		{BopomofoIndex(), 0, "ㄋㄧ", "ㄋㄧ"},
		{BopomofoIndex(), 0, "ㄋ", ""},
		{BopomofoIndex(), zhuyin.ZhuyinIncomplete, "ㄋ", "ㄋ"},
		{BopomofoIndex(), 0, "ㄓ", "ㄓ"},
		{BopomofoIndex(), 0, "ㄧㄋ", ""},
		{BopomofoIndex(), zhuyin.CorrectShuffle, "ㄧㄋ", "ㄋㄧ"},
		{BopomofoIndex(), zhuyin.CorrectShuffle, "ㄠㄏ", "ㄏㄠ"},
		{BopomofoIndex(), zhuyin.CorrectHsu, "ㄐㄚ", ""},
		{HsuIndex(), 0, "ㄐㄚ", ""},
		{HsuIndex(), zhuyin.CorrectHsu, "ㄐㄚ", "ㄓㄚ"},
		{HsuIndex(), zhuyin.CorrectHsu, "ㄐㄧㄚ", "ㄐㄧㄚ"},
		{HsuIndex(), zhuyin.CorrectHsu, "ㄍ", "ㄜ"},
		{HsuIndex(), zhuyin.CorrectHsu | zhuyin.CorrectEten26, "ㄐ", "ㄓ"},
		{Eten26Index(), zhuyin.CorrectHsu, "ㄊ", ""},
		{Eten26Index(), zhuyin.CorrectEten26, "ㄊ", "ㄤ"},
		{PinyinIndex(), 0, "ni", "ㄋㄧ"},
		{PinyinIndex(), 0, "hao", "ㄏㄠ"},
		{PinyinIndex(), 0, "lve", "ㄌㄩㄝ"},
		{PinyinIndex(), 0, "lüe", "ㄌㄩㄝ"},
		{PinyinIndex(), 0, "juan", "ㄐㄩㄢ"},
		{PinyinIndex(), 0, "you", "ㄧㄡ"},
		{PinyinIndex(), 0, "weng", "ㄨㄥ"},
		{PinyinIndex(), 0, "zhi", "ㄓ"},
		{PinyinIndex(), 0, "zh", ""},
		{PinyinIndex(), zhuyin.PinyinIncomplete, "zh", "ㄓ"},
		{PinyinIndex(), zhuyin.ZhuyinIncomplete, "b", ""},
		{PinyinIndex(), 0, "ㄋㄧ", ""},
	}
	for i, test := range tests {
		k, ok := test.index.Search(test.opts, test.input)
		if test.result == "" {
			if ok {
				t.Errorf("test #%d: expected %q not to match in %s, found %s", i, test.input,
					test.index.Name(), k.Zhuyin())
			}
			continue
		}
		if !ok {
			t.Errorf("test #%d: expected %q to match in %s", i, test.input, test.index.Name())
			continue
		}
		if k.Zhuyin() != test.result || k.Tone != zhuyin.ZeroTone {
			t.Errorf("test #%d: expected %q → %s, have %#v", i, test.input, test.result, k)
		}
	}
}

func TestIndexDuplicatePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected duplicate index input to panic")
		}
	}()
	NewIndex("dup", []IndexItem{
		{Input: "ㄚ", Flags: zhuyin.IsZhuyin, Entry: 0},
		{Input: "ㄚ", Flags: zhuyin.IsZhuyin, Entry: 1},
	})
}

func TestPinyinOfContent(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	for i := 0; i < ContentSize(); i++ {
		item, _ := Content(i)
		py := item.Key.Pinyin()
		if py == "" {
			t.Errorf("expected pinyin spelling for %s", item.Key.Zhuyin())
			continue
		}
		opts := zhuyin.Options(0)
		if item.Incomplete {
			opts = zhuyin.PinyinIncomplete
		}
		k, ok := PinyinIndex().Search(opts, py)
		if !ok || k.Index != item.Key.Index {
			t.Errorf("expected pinyin %q to lead back to %s", py, item.Key.Zhuyin())
		}
	}
}

func TestRomanizationsOfContent(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	for _, rz := range []struct {
		index *Index
		romanization
	}{
		{LuomaIndex(), luomaPinyin},
		{SecondaryBopomofoIndex(), secondaryBopomofo},
	} {
		for i := 0; i < ContentSize(); i++ {
			item, _ := Content(i)
			k := item.Key
			var spelling string
			opts := zhuyin.Options(0)
			if item.Incomplete {
				spelling = rz.initial(k.Initial)
				opts = zhuyin.PinyinIncomplete
				if spelling == "" {
					continue
				}
			} else {
				sp := rz.spellings(k.Initial, k.Middle, k.Final)
				if len(sp) == 0 {
					t.Errorf("%s: expected spelling for %s", rz.index.Name(), k.Zhuyin())
					continue
				}
				spelling = sp[0]
			}
			found, ok := rz.index.Search(opts, spelling)
			if !ok || found.Index != k.Index {
				t.Errorf("%s: expected %q to lead back to %s", rz.index.Name(), spelling, k.Zhuyin())
			}
		}
	}
}
