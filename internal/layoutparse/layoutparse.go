/* Package layoutparse provides a parser for keyboard layout files.

Keyboard layout files describe which phonetic symbol (or tone) a key of a
Latin keyboard produces. The format borrows from the files of the Unicode
Character Database: one item per line, fields separated by semicolons,
comments starting with '#'.

   # key ; role    ; symbol
   q     ; initial ; ㄆ
   U+0020; tone    ; 1      # space bar

The first field is the key, given either as a single character or as a
code-point in U+hex notation. The latter is required for space, '#' and ';'.
*/
package layoutparse

import "fmt"

// Token is a type for communicating between the line-level scanner and
// its clients. Every item line of a layout file results in one token.
type Token struct {
	LineNo    int       // line of the item within the input source
	TokenType tokenType // type of token
	Key       rune      // the key of the item line
	Fields    []string  // fields following the key, trimmed
	Comment   string    // rest-of-line comment
	Error     error     // error condition, if any
}

type tokenType int8

const (
	undefined tokenType = iota
	eof
	emptyDocument
	keyItem
)

func (tt tokenType) String() string {
	switch tt {
	case eof:
		return "eof"
	case emptyDocument:
		return "empty"
	case keyItem:
		return "item"
	}
	return "undefined"
}

// newToken creates a token initialized with a line number.
func newToken(line int) *Token {
	return &Token{
		LineNo: line,
		Fields: []string{},
	}
}

func (token *Token) String() string {
	return fmt.Sprintf("token[at %d %#U type=%s %#v]", token.LineNo, token.Key,
		token.TokenType, token.Fields)
}

// Field gets field #i (1…n) following the key.
func (token *Token) Field(i int) string {
	if i > 0 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}
