package layoutparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// --- Line level scanner ----------------------------------------------------

// Scanner is a type for a line-level scanner.
//
// Our line-level scanner will operate by calling scanning steps in a chain, iteratively.
// Each step function inspects the remainder of the current line and then possibly
// branches out to a subsequent step function.
//
type Scanner struct {
	lines     *bufio.Scanner
	lineNo    int
	line      string      // unconsumed part of current line
	Step      scannerStep // the next scanner step to execute in a chain
	LastError error       // last error, if any
	Token     *Token      // last token produced by scanner
}

// We're building up a scanner from chains of scanner step functions.
// Tokens may be modified by a step function.
// A scanner step will return the next step in the chain, or nil to stop/accept.
//
type scannerStep func(*Token) (*Token, scannerStep)

// New creates a scanner for an input reader.
func New(inputReader io.Reader) (*Scanner, error) {
	if inputReader == nil {
		return nil, errors.New("no input present")
	}
	sc := &Scanner{lines: bufio.NewScanner(inputReader)}
	return sc, nil
}

// Parse iterates over each item line of the layout file and calls callback f on it.
func Parse(r io.Reader, f func(token *Token)) error {
	sc, err := New(r)
	if err != nil {
		return err
	}
	for sc.Next() {
		f(sc.Token)
	}
	return sc.LastError
}

// Next is called to receive the next item token.
//
// Next skips empty lines and comment lines and then iterates over a chain of
// step functions until it reaches an accepting state. Acceptance is signalled
// by getting a nil-step return value from a step function.
//
// If a step function returns an error-signalling token, scanning stops and
// Next returns false. Clients check LastError.
//
func (sc *Scanner) Next() bool {
	if sc.LastError != nil {
		return false
	}
	if !sc.advanceLine() {
		sc.Token = newToken(sc.lineNo)
		sc.Token.TokenType = eof
		if err := sc.lines.Err(); err != nil {
			sc.LastError = err
		}
		return false
	}
	sc.Token = newToken(sc.lineNo)
	sc.Step = sc.ScanKey
	for sc.Step != nil {
		sc.Token, sc.Step = sc.Step(sc.Token)
		if sc.Token.Error != nil {
			sc.LastError = sc.Token.Error
			return false
		}
	}
	return true
}

// advanceLine moves to the next line carrying an item.
func (sc *Scanner) advanceLine() bool {
	for sc.lines.Scan() {
		sc.lineNo++
		text := sc.lines.Text()
		if strings.TrimSpace(text) == "" || strings.HasPrefix(strings.TrimLeft(text, " \t"), "#") {
			continue
		}
		sc.line = text
		return true
	}
	return false
}

// ScanKey is the first step function for an item line. It recognizes the key.
//
//    key:
//      -> U+hex: code-point
//      -> other: single character
//
func (sc *Scanner) ScanKey(token *Token) (*Token, scannerStep) {
	token.TokenType = keyItem
	end := strings.IndexByte(sc.line, ';')
	if end < 0 {
		token.Error = fmt.Errorf("line %d: missing field separator", sc.lineNo)
		return token, nil
	}
	k := strings.TrimSpace(sc.line[:end])
	sc.line = sc.line[end+1:]
	if strings.HasPrefix(k, "U+") || strings.HasPrefix(k, "u+") {
		n, err := strconv.ParseUint(k[2:], 16, 32)
		if err != nil {
			token.Error = fmt.Errorf("line %d: hex decoding error: %w", sc.lineNo, err)
			return token, nil
		}
		token.Key = rune(n)
		return token, sc.ScanItemBody
	}
	if utf8.RuneCountInString(k) != 1 {
		token.Error = fmt.Errorf("line %d: key must be a single character, is %q", sc.lineNo, k)
		return token, nil
	}
	token.Key, _ = utf8.DecodeRuneInString(k)
	return token, sc.ScanItemBody
}

// ScanItemBody splits the remainder of an item line into fields and comment.
func (sc *Scanner) ScanItemBody(token *Token) (*Token, scannerStep) {
	rest := sc.line
	sc.line = ""
	a := strings.SplitN(rest, "#", 2)
	if len(a) > 1 {
		token.Comment = strings.TrimSpace(a[1])
	}
	for _, f := range strings.Split(a[0], ";") {
		token.Fields = append(token.Fields, strings.TrimSpace(f))
	}
	if len(token.Fields) == 0 || token.Fields[0] == "" {
		token.Error = fmt.Errorf("line %d: item without fields", sc.lineNo)
	}
	return token, nil
}
