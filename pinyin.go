package zhuyin

import "strings"

var pinyinInitials = [...]string{"", "b", "p", "m", "f", "d", "t", "n", "l", "g", "k",
	"h", "j", "q", "x", "zh", "ch", "sh", "r", "z", "c", "s"}

var pinyinFinals = [...]string{"", "a", "o", "e", "ê", "ai", "ei", "ao", "ou", "an",
	"en", "ang", "eng", "er"}

var pinyinRimesI = map[Final]string{ZeroFinal: "i", A: "ia", O: "io", EH: "ie", AI: "iai",
	AO: "iao", OU: "iu", AN: "ian", EN: "in", ANG: "iang", ENG: "ing"}

var pinyinRimesU = map[Final]string{ZeroFinal: "u", A: "ua", O: "uo", AI: "uai", EI: "ui",
	AN: "uan", EN: "un", ANG: "uang", ENG: "ong"}

var pinyinRimesV = map[Final]string{ZeroFinal: "ü", EH: "üe", AN: "üan", EN: "ün", ENG: "iong"}

// PinyinSpellings returns the Hanyu Pinyin spellings of a toneless syllable,
// the orthographic one first. Syllables with ü after n or l have a second
// spelling using 'v', as is common on Latin keyboards.
//
// Bare initials have no spelling, except for the ones which form a complete
// syllable on their own (zhi, chi, shi, ri, zi, ci, si). Combinations which
// do not occur in Mandarin may still produce a spelling; it is the phoneme
// table which decides what a valid syllable is.
func PinyinSpellings(ini Initial, mid Middle, fin Final) []string {
	if ini > maxInitial || mid > maxMiddle || fin > maxFinal {
		return nil
	}
	p := pinyinInitials[ini]
	switch mid {
	case ZeroMiddle:
		if fin == ZeroFinal {
			if ini >= ZH {
				return []string{p + "i"}
			}
			return nil
		}
		return []string{p + pinyinFinals[fin]}
	case I:
		rime, ok := pinyinRimesI[fin]
		if !ok {
			return nil
		}
		if ini == ZeroInitial {
			switch rime {
			case "i", "in", "ing":
				return []string{"y" + rime}
			case "iu":
				return []string{"you"}
			}
			return []string{"y" + rime[1:]}
		}
		return []string{p + rime}
	case U:
		rime, ok := pinyinRimesU[fin]
		if !ok {
			return nil
		}
		if ini == ZeroInitial {
			switch rime {
			case "u":
				return []string{"wu"}
			case "ui":
				return []string{"wei"}
			case "un":
				return []string{"wen"}
			case "ong":
				return []string{"weng"}
			}
			return []string{"w" + rime[1:]}
		}
		return []string{p + rime}
	case V:
		rime, ok := pinyinRimesV[fin]
		if !ok {
			return nil
		}
		switch ini {
		case ZeroInitial:
			if rime == "iong" {
				return []string{"yong"}
			}
			return []string{"y" + strings.Replace(rime, "ü", "u", 1)}
		case J, Q, X:
			return []string{p + strings.Replace(rime, "ü", "u", 1)}
		case N, L:
			if rime == "iong" {
				return []string{p + rime}
			}
			return []string{p + rime, p + strings.Replace(rime, "ü", "v", 1)}
		}
		return []string{p + rime}
	}
	return nil
}

// PinyinInitial returns the Pinyin letters of an initial, e.g. "zh" for ㄓ.
func PinyinInitial(ini Initial) string {
	if ini > maxInitial {
		return ""
	}
	return pinyinInitials[ini]
}

// Pinyin returns the Hanyu Pinyin spelling of a key, followed by the tone
// number, if any. Keys consisting of an initial only are spelled by the
// initial's letters.
func (k Key) Pinyin() string {
	var s string
	if sp := PinyinSpellings(k.Initial, k.Middle, k.Final); len(sp) > 0 {
		s = sp[0]
	} else if k.Middle == ZeroMiddle && k.Final == ZeroFinal {
		s = PinyinInitial(k.Initial)
	}
	if s != "" && k.Tone > ZeroTone && k.Tone <= maxTone {
		s += string(rune('0' + k.Tone))
	}
	return s
}
