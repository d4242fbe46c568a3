/*
Package segment is about splitting raw keyboard input into phonetic keys.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

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


Typical Usage

Segmenter provides an interface similar to bufio.Scanner for stepping
through the keys of a line of raw input.
Successive calls to a segmenter's Next() method will step through the keys
decoded from the input. Clients get the key by calling Key(), and the raw
input it has been decoded from by calling Span() or Text().

Clients instantiate a zhuyin.KeyDecoder and use it as the decoding engine
for a segmenter:

  decoder := chewing.NewSimple(...)
  segmenter := segment.NewSegmenter(decoder)
  segmenter.Init(zhuyin.UseTone, "su3cl3")
  for segmenter.Next() {
    // do something with segmenter.Key() or segmenter.Span()
  }
  rest := input[segmenter.Consumed():]

How it works

Before decoding, the segmenter determines the longest prefix of the input
which consists of characters known to the decoder. Then, starting at the
beginning of the input, it tries windows of decreasing length, starting at
the decoder's maximum key length. The first (i.e., longest) window the
decoder accepts wins. Segmenting stops if no window can be decoded at the
current position; there is no skipping of characters.

Decoders implementing zhuyin.SeparatingDecoder are driven differently:
input is cut into tokens at separator characters, and every token is
decoded as a whole. The first token which cannot be decoded stops
segmenting. */
package segment

import (
	"unicode/utf8"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/zhuyin"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// A Segmenter receives a line of raw keyboard input and segments it into
// phonetic keys.
//
// The decoding of keys is done by a zhuyin.KeyDecoder; the segmenter
// decides which windows of input are presented to the decoder.
//
// Segmenters are not safe for concurrent use, but creating one is cheap.
type Segmenter struct {
	decoder   zhuyin.KeyDecoder
	separator zhuyin.SeparatingDecoder // non-nil for token-wise decoding
	opts      zhuyin.Options
	text      string
	offsets   []int // byte offsets of the runes of the decodable prefix, plus its end
	runeInx   int   // rune index of pos within offsets
	pos       int   // byte position of first unconsumed character
	key       zhuyin.Key
	span      zhuyin.Span
	done      bool
}

// NewSegmenter creates a new Segmenter for a decoder.
// Before using newly created segmenters, clients will have to call
// Init(...) on them.
//
// If decoder implements zhuyin.SeparatingDecoder, the segmenter will cut
// input at separators instead of searching for the longest window.
func NewSegmenter(decoder zhuyin.KeyDecoder) *Segmenter {
	if decoder == nil {
		panic("segment.NewSegmenter: decoder must not be nil")
	}
	s := &Segmenter{decoder: decoder}
	if sep, ok := decoder.(zhuyin.SeparatingDecoder); ok {
		s.separator = sep
	}
	return s
}

// Init initializes a Segmenter with options and a line of input.
// s is either a newly created segmenter to be initialized, or we may
// re-initialize a segmenter already in use.
func (s *Segmenter) Init(opts zhuyin.Options, text string) {
	s.opts = opts
	s.text = text
	s.pos, s.runeInx = 0, 0
	s.key, s.span = zhuyin.Key{}, zhuyin.Span{}
	s.done = false
	s.offsets = s.offsets[:0]
	if s.separator != nil {
		return
	}
	limit := 0
	for limit < len(text) {
		r, size := utf8.DecodeRuneInString(text[limit:])
		if len(s.decoder.InScheme(opts, r)) == 0 {
			break
		}
		s.offsets = append(s.offsets, limit)
		limit += size
	}
	s.offsets = append(s.offsets, limit)
	CT().Debugf("segmenter: decodable prefix is %d of %d bytes", limit, len(text))
}

// Next gets the next key. It returns false if no more keys can be decoded,
// either because the input has been consumed or because decoding got stuck.
// Clients compare Consumed() to the length of the input to find out.
func (s *Segmenter) Next() bool {
	if s.done {
		return false
	}
	var ok bool
	if s.separator != nil {
		ok = s.nextToken()
	} else {
		ok = s.nextWindow()
	}
	if !ok {
		s.done = true
	}
	return ok
}

// nextWindow tries windows of decreasing length at the current position.
func (s *Segmenter) nextWindow() bool {
	remaining := len(s.offsets) - 1 - s.runeInx
	if remaining <= 0 {
		return false
	}
	n := s.decoder.MaxKeyLength()
	if remaining < n {
		n = remaining
	}
	for ; n > 0; n-- {
		end := s.offsets[s.runeInx+n]
		if k, ok := s.decoder.DecodeWindow(s.opts, s.text[s.pos:end]); ok {
			s.key, s.span = k, zhuyin.Span{Begin: s.pos, End: end}
			s.pos, s.runeInx = end, s.runeInx+n
			CT().P("span", s.span).Debugf("segmenter: key %s", k)
			return true
		}
	}
	CT().P("pos", s.pos).Debugf("segmenter: no key decodable")
	return false
}

// nextToken decodes the token starting at the current position. A token
// ends at a separator or at the first character unknown to the decoder.
// Separators following the token are consumed.
func (s *Segmenter) nextToken() bool {
	end := s.pos
	for end < len(s.text) {
		r, size := utf8.DecodeRuneInString(s.text[end:])
		if s.separator.IsSeparator(r) || len(s.decoder.InScheme(s.opts, r)) == 0 {
			break
		}
		end += size
	}
	if end == s.pos {
		return false
	}
	k, ok := s.decoder.DecodeWindow(s.opts, s.text[s.pos:end])
	if !ok {
		CT().P("pos", s.pos).Debugf("segmenter: token %q not decodable", s.text[s.pos:end])
		return false
	}
	s.key, s.span = k, zhuyin.Span{Begin: s.pos, End: end}
	for end < len(s.text) {
		r, size := utf8.DecodeRuneInString(s.text[end:])
		if !s.separator.IsSeparator(r) {
			break
		}
		end += size
	}
	s.pos = end
	CT().P("span", s.span).Debugf("segmenter: key %s", k)
	return true
}

// Key returns the most recently decoded key.
func (s *Segmenter) Key() zhuyin.Key {
	return s.key
}

// Span returns the span of raw input the most recent key has been decoded
// from.
func (s *Segmenter) Span() zhuyin.Span {
	return s.span
}

// Text returns the raw input the most recent key has been decoded from.
func (s *Segmenter) Text() string {
	return s.text[s.span.Begin:s.span.End]
}

// Consumed returns the number of bytes of input consumed so far.
func (s *Segmenter) Consumed() int {
	return s.pos
}

// Parse segments a line of input into keys, using a decoder. It returns the
// keys, the spans of input they have been decoded from, and the number of
// bytes consumed. keys and spans are of equal length.
func Parse(decoder zhuyin.KeyDecoder, opts zhuyin.Options, text string) (zhuyin.Keys, []zhuyin.Span, int) {
	s := NewSegmenter(decoder)
	s.Init(opts, text)
	var keys zhuyin.Keys
	var spans []zhuyin.Span
	for s.Next() {
		keys = append(keys, s.Key())
		spans = append(spans, s.Span())
	}
	return keys, spans, s.Consumed()
}
