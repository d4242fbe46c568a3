/*
Package parser binds key decoders and tables to keyboard schemes.

A Parser is configured for one of the schemes of zhuyin.Scheme and then
parses lines of raw keyboard input into phonetic keys:

   p := parser.New()
   p.Configure(zhuyin.Hsu)
   keys, spans, n := p.Parse(zhuyin.UseTone, "nefhwf")

Every scheme may add options of its own, e.g. Hsu input is always parsed
with zhuyin.CorrectHsu. Options given by clients are never cleared.

Parsing is a pure function of the options, the input and the configured
scheme. Parse may be called concurrently, as long as no other goroutine
re-configures the parser at the same time. Pool lends independently
configured parsers to concurrent workers.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Use of this source code is governed by a BSD-style license that can be
found in the LICENSE file.

*/
package parser

import (
	"fmt"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/zhuyin"
	"github.com/npillmayer/zhuyin/chewing"
	"github.com/npillmayer/zhuyin/direct"
	"github.com/npillmayer/zhuyin/segment"
	"github.com/npillmayer/zhuyin/table"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Parser parses raw keyboard input for a keyboard scheme.
type Parser struct {
	scheme  zhuyin.Scheme
	decoder zhuyin.KeyDecoder
	options zhuyin.Options // options mandated by the scheme
}

// New creates an unconfigured parser. Clients have to call Configure before
// parsing.
func New() *Parser {
	return &Parser{}
}

// Configure selects a keyboard scheme. Subsequent calls to Parse will use
// the tables of this scheme only.
//
// The set of schemes is closed, so an unknown scheme is a programming error
// and will panic.
func (p *Parser) Configure(scheme zhuyin.Scheme) {
	switch scheme {
	case zhuyin.Standard, zhuyin.IBM, zhuyin.GinYieh, zhuyin.ETen, zhuyin.StandardDvorak:
		p.decoder = chewing.NewSimple(table.LayoutFor(scheme), table.IndexFor(scheme))
		p.options = zhuyin.CorrectShuffle
	case zhuyin.Hsu, zhuyin.HsuDvorak:
		p.decoder = chewing.NewDiscrete(table.LayoutFor(scheme), table.IndexFor(scheme))
		p.options = zhuyin.CorrectHsu
	case zhuyin.ETen26:
		p.decoder = chewing.NewDiscrete(table.LayoutFor(scheme), table.IndexFor(scheme))
		p.options = zhuyin.CorrectEten26
	case zhuyin.DaChenCP26:
		p.decoder = chewing.NewDaChen(table.LayoutFor(scheme), table.IndexFor(scheme))
		p.options = 0
	case zhuyin.DirectZhuyin:
		p.decoder = direct.NewZhuyin()
		p.options = 0
	case zhuyin.HanyuPinyin:
		p.decoder = direct.NewPinyin()
		p.options = 0
	case zhuyin.LuomaPinyin:
		p.decoder = direct.NewLuoma()
		p.options = 0
	case zhuyin.SecondaryBopomofo:
		p.decoder = direct.NewSecondaryBopomofo()
		p.options = 0
	default:
		panic(fmt.Sprintf("parser: unknown keyboard scheme %v", scheme))
	}
	p.scheme = scheme
	tracer().P("scheme", scheme).Debugf("parser configured, options %s", p.options)
}

// Scheme returns the configured scheme, or 0 for an unconfigured parser.
func (p *Parser) Scheme() zhuyin.Scheme {
	return p.scheme
}

// Options returns the options mandated by the configured scheme.
func (p *Parser) Options() zhuyin.Options {
	return p.options
}

// Decoder returns the key decoder for the configured scheme.
func (p *Parser) Decoder() zhuyin.KeyDecoder {
	return p.decoder
}

// Parse segments a line of raw input into phonetic keys. It returns the
// keys, the spans of input they have been decoded from, and the number of
// bytes consumed. Parsing stops at the first position where no key can be
// decoded; clients compare the number of bytes consumed to the length of
// text to find out.
//
// Calling Parse on an unconfigured parser will panic.
func (p *Parser) Parse(opts zhuyin.Options, text string) (zhuyin.Keys, []zhuyin.Span, int) {
	if p.decoder == nil {
		panic("parser: Parse called on unconfigured parser")
	}
	opts |= p.options
	keys, spans, n := segment.Parse(p.decoder, opts, text)
	tracer().P("scheme", p.scheme).Debugf("parsed %d keys from %d of %d bytes", len(keys), n, len(text))
	return keys, spans, n
}
