// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse turns lines of frac input into statements for exec.
package parse // import "github.com/zmath/frac/parse"

import (
	"fmt"

	"github.com/zmath/frac/exec"
	"github.com/zmath/frac/scan"
	"github.com/zmath/frac/value"
)

// Parser stores the state for the frac parser.
type Parser struct {
	scanner  *scan.Scanner
	tokens   []scan.Token    // Points to tokenBuf.
	tokenBuf [100]scan.Token // Reusable.
	fileName string
	lineNum  int
	context  *exec.Context
}

// NewParser returns a new parser that will read from the scanner.
func NewParser(fileName string, scanner *scan.Scanner, context *exec.Context) *Parser {
	return &Parser{
		scanner:  scanner,
		fileName: fileName,
		context:  context,
	}
}

// Loc returns the current input location in the form "name:line: ".
// If the name is empty or "<stdin>", it returns the empty string.
func (p *Parser) Loc() string {
	if p.fileName == "" || p.fileName == "<stdin>" {
		return ""
	}
	return fmt.Sprintf("%s:%d: ", p.fileName, p.lineNum)
}

// Printf formats the args and writes them to the configured output writer.
func (p *Parser) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.context.Config().Output(), format, args...)
}

// Println prints the args and writes them to the configured output writer.
func (p *Parser) Println(args ...interface{}) {
	fmt.Fprintln(p.context.Config().Output(), args...)
}

func (p *Parser) next() scan.Token {
	tok := p.peek()
	if tok.Type != scan.EOF {
		p.tokens = p.tokens[1:]
		p.lineNum = tok.Line
	}
	return tok
}

func (p *Parser) peek() scan.Token {
	if len(p.tokens) == 0 {
		return scan.Token{Type: scan.EOF}
	}
	return p.tokens[0]
}

// errorf discards the rest of the line and panics with a value.Error,
// which run.Run recovers.
func (p *Parser) errorf(format string, args ...interface{}) {
	p.tokens = p.tokenBuf[:0]
	panic(value.Errorf(format, args...))
}

func (p *Parser) need(want scan.Type) scan.Token {
	tok := p.next()
	if tok.Type != want {
		p.errorf("expected %s, got %s", want, tok)
	}
	return tok
}

// Line reads a line of input and returns the statements it holds.
// A nil returned slice means there were no statements.
// The boolean is false at EOF.
//
// Line
//
//	) special command '\n'
//	statementList '\n'
func (p *Parser) Line() ([]*exec.Statement, bool) {
	if !p.readTokensToNewline() {
		return nil, false
	}
	tok := p.peek()
	switch tok.Type {
	case scan.EOF:
		return nil, true
	case scan.Special:
		p.next()
		p.special(tok.Text)
		return nil, true
	}
	list := p.statementList()
	if len(list) > 0 && p.context.Config().Debug("parse") {
		for _, s := range list {
			p.Println(s)
		}
	}
	return list, true
}

// readTokensToNewline reads the tokens of the next line of input.
// The boolean is false at EOF.
// We read all tokens before parsing for easy error recovery
// if an error occurs mid-line.
func (p *Parser) readTokensToNewline() bool {
	p.tokens = p.tokenBuf[:0]
	for {
		tok := p.scanner.Next()
		switch tok.Type {
		case scan.Error:
			p.lineNum = tok.Line
			// Drop the rest of the line so the next read starts afresh.
			for t := tok; t.Type != scan.Newline && t.Type != scan.EOF; {
				t = p.scanner.Next()
			}
			p.errorf("%s", tok.Text)
		case scan.Newline:
			p.lineNum = tok.Line
			return true
		case scan.EOF:
			return len(p.tokens) > 0
		}
		p.tokens = append(p.tokens, tok)
		p.lineNum = tok.Line
	}
}

// statementList:
//
//	statement [';' statement]...
func (p *Parser) statementList() []*exec.Statement {
	var list []*exec.Statement
	for {
		if p.peek().Type == scan.Semicolon {
			p.next()
			continue
		}
		if p.peek().Type == scan.EOF {
			return list
		}
		list = append(list, p.statement())
		switch tok := p.next(); tok.Type {
		case scan.EOF:
			return list
		case scan.Semicolon:
		default:
			p.errorf("unexpected %s", tok)
		}
	}
}

// statement:
//
//	identifier '=' expr
//	expr
//	expr 'cmp' expr
func (p *Parser) statement() *exec.Statement {
	if len(p.tokens) >= 2 && p.tokens[0].Type == scan.Identifier && p.tokens[1].Type == scan.Assign {
		name := p.next().Text
		if name == "cmp" || exec.IsFunction(name) {
			p.errorf("cannot assign to %s", name)
		}
		p.next()
		return &exec.Statement{Assign: name, Expr: p.expr()}
	}
	s := &exec.Statement{Expr: p.expr()}
	if tok := p.peek(); tok.Type == scan.Identifier && tok.Text == "cmp" {
		p.next()
		s.Cmp = p.expr()
	}
	return s
}

// expr:
//
//	term [('+' | '-') term]...
func (p *Parser) expr() exec.Expr {
	e := p.term()
	for p.peekOperator("+", "-") {
		op := p.next().Text
		e = &exec.BinaryExpr{Op: op, Left: e, Right: p.term()}
	}
	return e
}

// term:
//
//	unary [('*' | '/' | '//' | '%') unary]...
func (p *Parser) term() exec.Expr {
	e := p.unary()
	for p.peekOperator("*", "/", "//", "%") {
		op := p.next().Text
		e = &exec.BinaryExpr{Op: op, Left: e, Right: p.unary()}
	}
	return e
}

// unary:
//
//	'-' unary
//	'+' unary
//	function unary
//	power
func (p *Parser) unary() exec.Expr {
	tok := p.peek()
	switch {
	case tok.Type == scan.Operator && tok.Text == "-":
		p.next()
		return &exec.UnaryExpr{Op: "-", Right: p.unary()}
	case tok.Type == scan.Operator && tok.Text == "+":
		p.next()
		return p.unary()
	case tok.Type == scan.Identifier && exec.IsFunction(tok.Text):
		p.next()
		return &exec.UnaryExpr{Op: tok.Text, Right: p.unary()}
	}
	return p.power()
}

// power:
//
//	primary [('**' | '^') unary]
func (p *Parser) power() exec.Expr {
	e := p.primary()
	if p.peekOperator("**", "^") {
		op := p.next().Text
		e = &exec.BinaryExpr{Op: op, Left: e, Right: p.unary()}
	}
	return e
}

// primary:
//
//	number
//	number rational
//	rational
//	identifier
//	'(' expr ')'
func (p *Parser) primary() exec.Expr {
	tok := p.next()
	switch tok.Type {
	case scan.Number:
		if p.peek().Type == scan.Rational {
			// A mixed number such as 1 1/2.
			return p.literal(tok.Text + " " + p.next().Text)
		}
		return p.literal(tok.Text)
	case scan.Rational:
		return p.literal(tok.Text)
	case scan.Identifier:
		if tok.Text == "cmp" {
			p.errorf("unexpected %s", tok)
		}
		return &exec.VarExpr{Name: tok.Text}
	case scan.LeftParen:
		e := p.expr()
		p.need(scan.RightParen)
		return e
	case scan.EOF:
		p.errorf("unexpected end of line")
	}
	p.errorf("unexpected %s", tok)
	panic("not reached")
}

func (p *Parser) literal(text string) exec.Expr {
	v, err := value.Parse(text)
	if err != nil {
		p.errorf("%s", err)
	}
	return exec.Literal{Value: v}
}

// peekOperator reports whether the next token is one of the operators.
func (p *Parser) peekOperator(ops ...string) bool {
	tok := p.peek()
	if tok.Type != scan.Operator {
		return false
	}
	for _, op := range ops {
		if tok.Text == op {
			return true
		}
	}
	return false
}
