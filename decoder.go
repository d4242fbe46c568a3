package zhuyin

// KeyDecoder represents a strategy to decode raw keyboard input into
// phonetic keys. KeyDecoders are used by segmenters to tokenize a line of
// input.
//
// DecodeWindow decodes a window of input as a whole. It either succeeds
// in decoding every character of the window into a single key, or fails.
//
// InScheme returns every interpretation of a single character under the
// decoder's scheme; an empty result means that r may not be part of any key.
//
// MaxKeyLength is the length (in characters) of the longest window which
// may ever decode successfully.
type KeyDecoder interface {
	DecodeWindow(opts Options, window string) (Key, bool)
	InScheme(opts Options, r rune) []string
	MaxKeyLength() int
}

// SeparatingDecoder is a KeyDecoder for input where keys are delimited
// by separator characters. Segmenters will not search for the longest
// window, but rather hand every token between separators to DecodeWindow.
type SeparatingDecoder interface {
	KeyDecoder
	IsSeparator(r rune) bool
}

// Span is a half-open range [Begin, End) of byte offsets into raw input.
type Span struct {
	Begin, End int
}

// Len returns the length of a span in bytes.
func (sp Span) Len() int {
	return sp.End - sp.Begin
}
