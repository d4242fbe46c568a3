/*
Package table holds the phonetic data used for decoding keyboard input.

There are three kinds of tables:

■ The content table is the canonical list of Mandarin syllables (plus a few
initial-only entries for incomplete input), sorted by initial, medial and
final. A syllable's position in this list is its key's Index.

■ Keyboard layouts map Latin keys to Bopomofo symbols and tones. Layouts are
read from embedded data files, see package internal/layoutparse for the
format. Dvorak variants are derived from their QWERTY counterparts.

■ Indexes map composed phonetic strings (Bopomofo or Pinyin) to entries of
the content table. Each index entry carries flags (see zhuyin.Options) which
decide if a lookup under a given set of options may match it.

All tables are built once, on first use, and are read-only afterwards. They
may be shared between goroutines. Corrupt table data is a programming error
and results in a panic.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Use of this source code is governed by a BSD-style license that can be
found in the LICENSE file.

*/
package table

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
