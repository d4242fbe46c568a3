package zhuyin

import "strings"

// Luoma Pinyin is Wade–Giles as typed on a Latin keyboard: the aspiration
// apostrophe is written as 'h' (p' → ph, ch' → chh), as the apostrophe
// separates syllables.
var luomaInitials = [...]string{"", "p", "ph", "m", "f", "t", "th", "n", "l", "k", "kh",
	"h", "ch", "chh", "hs", "ch", "chh", "sh", "j", "ts", "tsh", "s"}

var luomaBare = map[Initial]string{ZH: "chih", CH: "chhih", SH: "shih", R: "jih",
	Z: "tzu", C: "tzhu", S: "ssu"}

var luomaFinals = [...]string{"", "a", "o", "e", "eh", "ai", "ei", "ao", "ou", "an",
	"en", "ang", "eng", "erh"}

var luomaRimesI = map[Final]string{ZeroFinal: "i", A: "ia", O: "io", EH: "ieh", AI: "iai",
	AO: "iao", OU: "iu", AN: "ien", EN: "in", ANG: "iang", ENG: "ing"}

var luomaRimesU = map[Final]string{ZeroFinal: "u", A: "ua", O: "uo", AI: "uai", EI: "ui",
	AN: "uan", EN: "un", ANG: "uang", ENG: "ung"}

var luomaRimesV = map[Final]string{ZeroFinal: "ü", EH: "üeh", AN: "üan", EN: "ün", ENG: "iung"}

// Secondary Bopomofo is the Mandarin Phonetic Symbols II romanization.
var secondaryInitials = [...]string{"", "b", "p", "m", "f", "d", "t", "n", "l", "g", "k",
	"h", "j", "ch", "sh", "j", "ch", "sh", "r", "tz", "ts", "s"}

var secondaryBare = map[Initial]string{ZH: "jr", CH: "chr", SH: "shr", R: "r",
	Z: "tz", C: "tsz", S: "sz"}

var secondaryFinals = [...]string{"", "a", "o", "e", "ê", "ai", "ei", "au", "ou", "an",
	"en", "ang", "eng", "er"}

var secondaryRimesI = map[Final]string{ZeroFinal: "i", A: "ia", O: "io", EH: "ie", AI: "iai",
	AO: "iau", OU: "iou", AN: "ian", EN: "in", ANG: "iang", ENG: "ing"}

var secondaryRimesU = map[Final]string{ZeroFinal: "u", A: "ua", O: "uo", AI: "uai", EI: "uei",
	AN: "uan", EN: "uen", ANG: "uang", ENG: "ung"}

var secondaryRimesV = map[Final]string{ZeroFinal: "iu", EH: "iue", AN: "iuan", EN: "iun", ENG: "iung"}

// LuomaSpellings returns the Luoma Pinyin spellings of a toneless syllable.
// Syllables containing ü have a second spelling using 'v'.
//
// Bare initials have no spelling, except for ㄓ to ㄙ, which form a
// syllable on their own (chih, chhih, shih, jih, tzu, tzhu, ssu).
func LuomaSpellings(ini Initial, mid Middle, fin Final) []string {
	if ini > maxInitial || mid > maxMiddle || fin > maxFinal {
		return nil
	}
	p := luomaInitials[ini]
	switch mid {
	case ZeroMiddle:
		if fin == ZeroFinal {
			if bare, ok := luomaBare[ini]; ok {
				return []string{bare}
			}
			return nil
		}
		return []string{p + luomaFinals[fin]}
	case I:
		rime, ok := luomaRimesI[fin]
		if !ok {
			return nil
		}
		if ini == ZeroInitial {
			switch rime {
			case "i", "in", "ing":
				return []string{"y" + rime}
			}
			return []string{"y" + rime[1:]}
		}
		return []string{p + rime}
	case U:
		rime, ok := luomaRimesU[fin]
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
			case "ung":
				return []string{"weng"}
			}
			return []string{"w" + rime[1:]}
		}
		return []string{p + rime}
	case V:
		rime, ok := luomaRimesV[fin]
		if !ok {
			return nil
		}
		if ini == ZeroInitial {
			if rime == "iung" {
				return []string{"yung"}
			}
			p = "y"
		}
		if !strings.Contains(rime, "ü") {
			return []string{p + rime}
		}
		return []string{p + rime, p + strings.Replace(rime, "ü", "v", 1)}
	}
	return nil
}

// LuomaInitial returns the Luoma Pinyin letters of an initial typed without
// a rime. ㄓ to ㄙ have no such spelling, as they are spelled as syllables.
func LuomaInitial(ini Initial) string {
	if ini > maxInitial || ini >= ZH {
		return ""
	}
	return luomaInitials[ini]
}

// SecondaryBopomofoSpellings returns the spelling of a toneless syllable in
// Mandarin Phonetic Symbols II.
//
// Bare initials have no spelling, except for ㄓ to ㄙ, which form a
// syllable on their own (jr, chr, shr, r, tz, tsz, sz).
func SecondaryBopomofoSpellings(ini Initial, mid Middle, fin Final) []string {
	if ini > maxInitial || mid > maxMiddle || fin > maxFinal {
		return nil
	}
	p := secondaryInitials[ini]
	switch mid {
	case ZeroMiddle:
		if fin == ZeroFinal {
			if bare, ok := secondaryBare[ini]; ok {
				return []string{bare}
			}
			return nil
		}
		return []string{p + secondaryFinals[fin]}
	case I:
		rime, ok := secondaryRimesI[fin]
		if !ok {
			return nil
		}
		if ini == ZeroInitial {
			switch rime {
			case "i", "in", "ing":
				return []string{"y" + rime}
			}
			return []string{"y" + rime[1:]}
		}
		return []string{p + rime}
	case U:
		rime, ok := secondaryRimesU[fin]
		if !ok {
			return nil
		}
		if ini == ZeroInitial {
			switch rime {
			case "u":
				return []string{"wu"}
			case "ung":
				return []string{"weng"}
			}
			return []string{"w" + rime[1:]}
		}
		return []string{p + rime}
	case V:
		rime, ok := secondaryRimesV[fin]
		if !ok {
			return nil
		}
		if ini == ZeroInitial {
			return []string{"y" + rime[1:]}
		}
		return []string{p + rime}
	}
	return nil
}

// SecondaryBopomofoInitial returns the Mandarin Phonetic Symbols II letters
// of an initial typed without a rime. ㄓ to ㄙ have no such spelling, as
// they are spelled as syllables.
func SecondaryBopomofoInitial(ini Initial) string {
	if ini > maxInitial || ini >= ZH {
		return ""
	}
	return secondaryInitials[ini]
}
