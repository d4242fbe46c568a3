/*
Package zhuyin is about parsing keyboard input for Mandarin Chinese phonetic
input methods.

Description

Mandarin pronunciation is written with Zhuyin (Bopomofo) symbols or with a
Latin transliteration (Pinyin). Neither can be typed directly on a Latin
keyboard, so a family of keyboard conventions exists: some place one
Bopomofo symbol on every physical key (Standard, IBM, GinYieh, ETen), some
squeeze the 37 symbols onto the 26 letter keys and let a single key stand
for two symbols (Hsu, ETen26, DaChen CP26), and some expect the user to type
the syllable's spelling directly (Bopomofo glyphs or Hanyu Pinyin).

Input methods collect the raw keystrokes of a user and have to find out
which syllables the keystrokes spell. The result of this step is a sequence
of phonetic keys, each one paired with the span of raw input it has been
decoded from. A phrase lookup engine later matches the keys against a
phonetic dictionary; this is not part of this module.

Contents

Base package zhuyin provides the shared vocabulary: phonetic keys (type
Key), raw input spans (type Span), parse options (type Options), the closed
set of keyboard schemes (type Scheme) and the interface KeyDecoder, which is
implemented by the decoding strategies in sub-packages chewing and direct.
Package table holds the canonical phoneme table, the keyboard layouts and
the sorted indexes from composed phonetic strings to keys.
Package segment contains the greedy longest-match driver which uses a
KeyDecoder to tokenize a line of input, and package parser binds everything
to a scheme for clients:

   p := parser.New()
   p.Configure(zhuyin.Standard)
   keys, spans, n := p.Parse(zhuyin.UseTone, "su3cl3")

Options

Option bits are stable: clients may store option values. Every scheme may
add options of its own (e.g., Hsu input always enables CorrectHsu), but
options given by a client are never cleared.

Errors

Not being able to decode some input is not an error. Parsing stops at the
first position where no key can be decoded and reports the number of bytes
consumed; clients treat the remainder as they see fit. Corrupt tables or
unknown schemes are programming errors and will panic.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package zhuyin

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
