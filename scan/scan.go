// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan // import "github.com/zmath/frac/scan"

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token represents a token or text string returned from the scanner.
type Token struct {
	Type Type   // The type of this item.
	Line int    // The line number on which this token appears
	Text string // The text of this item.
}

// Type identifies the type of lex items.
type Type int

const (
	EOF   Type = iota // zero value so an empty Token is EOF
	Error             // error occurred; value is text of error
	Newline
	// Interesting things
	Assign     // '='
	Identifier // alphanumeric identifier
	LeftParen  // '('
	Number     // simple number: 3, 0.25, 1e-3
	Operator   // known operator
	Rational   // rational number like 2/3
	RightParen // ')'
	Semicolon  // ';'
	Special    // special command: the rest of a line that starts with ')'
)

var typeNames = [...]string{
	EOF:        "EOF",
	Error:      "Error",
	Newline:    "Newline",
	Assign:     "Assign",
	Identifier: "Identifier",
	LeftParen:  "LeftParen",
	Number:     "Number",
	Operator:   "Operator",
	Rational:   "Rational",
	RightParen: "RightParen",
	Semicolon:  "Semicolon",
	Special:    "Special",
}

func (t Type) String() string {
	if 0 <= t && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

func (i Token) String() string {
	switch {
	case i.Type == EOF:
		return "EOF"
	case i.Type == Error:
		return "error: " + i.Text
	case len(i.Text) > 10:
		return fmt.Sprintf("%s: %.10q...", i.Type, i.Text)
	}
	return fmt.Sprintf("%s: %q", i.Type, i.Text)
}

const eof = -1

// stateFn represents the state of the scanner as a function that returns the next state.
type stateFn func(*Scanner) stateFn

// Scanner holds the state of the scanner.
type Scanner struct {
	r     *bufio.Reader
	done  bool   // the reader is exhausted
	input string // the line of text being scanned.
	line  int    // line number in input
	pos   int    // current position in the input
	start int    // start position of this item
	width int    // width of last rune read
	token Token
}

// New creates a new scanner for the input.
func New(r io.Reader) *Scanner {
	return &Scanner{
		r: bufio.NewReader(r),
	}
}

// loadLine reads the next line of input, replacing the exhausted one.
// It strips carriage returns to make subsequent processing simpler,
// and supplies the newline missing from an unterminated last line.
func (l *Scanner) loadLine() bool {
	if l.done {
		return false
	}
	text, err := l.r.ReadString('\n')
	if err != nil {
		l.done = true
		if text == "" {
			return false
		}
	}
	text = strings.ReplaceAll(text, "\r", "")
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	l.input = text
	l.line++
	l.pos = 0
	l.start = 0
	return true
}

// next returns the next rune in the current line.
func (l *Scanner) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = w
	l.pos += w
	return r
}

// peek returns but does not consume the next rune in the input.
func (l *Scanner) peek() rune {
	r := l.next()
	l.backup()
	return r
}

// backup steps back one rune. Can only be called once per call of next.
func (l *Scanner) backup() {
	l.pos -= l.width
}

// emit passes an item back to the client.
func (l *Scanner) emit(t Type) stateFn {
	text := l.input[l.start:l.pos]
	if t == Newline {
		text = "\n"
	}
	l.token = Token{t, l.line, text}
	l.start = l.pos
	return nil
}

// ignore skips over the pending input before this point.
func (l *Scanner) ignore() {
	l.start = l.pos
}

// accept consumes the next rune if it's from the valid set.
func (l *Scanner) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.backup()
	return false
}

// acceptRun consumes a run of runes from the valid set.
func (l *Scanner) acceptRun(valid string) {
	for strings.ContainsRune(valid, l.next()) {
	}
	l.backup()
}

// errorf returns an error token and skips to the newline that ends the line.
func (l *Scanner) errorf(format string, args ...interface{}) stateFn {
	l.token = Token{Error, l.line, fmt.Sprintf(format, args...)}
	l.pos = len(l.input) - 1
	l.start = l.pos
	return nil
}

// Next returns the next token.
func (l *Scanner) Next() Token {
	if l.pos >= len(l.input) && !l.loadLine() {
		return Token{EOF, l.line, "EOF"}
	}
	l.token = Token{EOF, l.line, "EOF"}
	state := lexAny
	for {
		state = state(l)
		if state == nil {
			return l.token
		}
	}
}

// lexAny scans non-space items.
func lexAny(l *Scanner) stateFn {
	switch r := l.next(); {
	case r == eof:
		return l.emit(Newline)
	case r == '\n':
		return l.emit(Newline)
	case isSpace(r):
		return lexSpace
	case r == '#':
		return lexComment
	case r == ')' && strings.TrimSpace(l.input[:l.start]) == "":
		return lexSpecial
	case r == ';':
		return l.emit(Semicolon)
	case r == '(':
		return l.emit(LeftParen)
	case r == ')':
		return l.emit(RightParen)
	case r == '=':
		return l.emit(Assign)
	case r == '.' || isDigit(r):
		l.backup()
		return lexNumber
	case isAlpha(r):
		return lexIdentifier
	case strings.ContainsRune("+-*/%^", r):
		return lexOperator
	default:
		return l.errorf("unrecognized character: %#U", r)
	}
}

// lexSpace scans a run of space characters.
func lexSpace(l *Scanner) stateFn {
	for isSpace(l.peek()) {
		l.next()
	}
	l.ignore()
	return lexAny
}

// lexComment scans a comment. The comment marker is known to be present.
func lexComment(l *Scanner) stateFn {
	for {
		r := l.next()
		if r == eof || r == '\n' {
			l.backup()
			break
		}
	}
	l.ignore()
	return lexAny
}

// lexSpecial scans a special command: the rest of the line after ')'.
func lexSpecial(l *Scanner) stateFn {
	l.ignore() // The ')'.
	for {
		r := l.next()
		if r == eof || r == '\n' {
			l.backup()
			break
		}
	}
	l.token = Token{Special, l.line, strings.TrimSpace(l.input[l.start:l.pos])}
	l.start = l.pos
	return nil
}

// lexIdentifier scans an alphanumeric.
func lexIdentifier(l *Scanner) stateFn {
	for isAlphaNumeric(l.peek()) {
		l.next()
	}
	return l.emit(Identifier)
}

// lexOperator scans an operator, which may be two characters long.
func lexOperator(l *Scanner) stateFn {
	switch l.input[l.start] {
	case '*':
		l.accept("*")
	case '/':
		l.accept("/")
	}
	return l.emit(Operator)
}

// lexNumber scans a number: decimal digits with an optional fraction and
// exponent. Digits followed immediately by '/' and more digits form a
// rational number like 2/3.
func lexNumber(l *Scanner) stateFn {
	const digits = "0123456789"
	l.acceptRun(digits)
	if l.accept(".") {
		l.acceptRun(digits)
	}
	if l.input[l.start:l.pos] == "." {
		return l.errorf("bad number syntax: %q", ".")
	}
	if l.peek() == 'e' || l.peek() == 'E' {
		mark := l.pos
		l.next()
		l.accept("+-")
		if !isDigit(l.peek()) {
			l.pos = mark // Not an exponent after all.
		} else {
			l.acceptRun(digits)
		}
	}
	if l.peek() == '/' {
		mark := l.pos
		l.next()
		if isDigit(l.peek()) {
			l.acceptRun(digits)
			if isAlphaNumeric(l.peek()) {
				l.next()
				return l.errorf("bad number syntax: %q", l.input[l.start:l.pos])
			}
			return l.emit(Rational)
		}
		l.pos = mark
	}
	if isAlphaNumeric(l.peek()) {
		l.next()
		return l.errorf("bad number syntax: %q", l.input[l.start:l.pos])
	}
	return l.emit(Number)
}

// isSpace reports whether r is a space character.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isAlpha(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// isAlphaNumeric reports whether r is an alphabetic, digit, or underscore.
func isAlphaNumeric(r rune) bool {
	return isAlpha(r) || unicode.IsDigit(r)
}
