// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"strconv"
	"strings"

	"github.com/zmath/frac/logger"
	"github.com/zmath/frac/value"
)

const defaultFile = "save.frac"

// debugFlags are the names accepted by )debug.
var debugFlags = []string{"cpu", "inexact", "panic", "parse"}

const helpText = `Expressions:
	+ - * / // % ** ^   arithmetic; // is /, % is the Euclidean remainder
	abs sqrt inv int float   functions of one argument
	x = expr            assign; _ holds the last result
	a cmp b             compare, printing a < b, a = b or a > b
	1 1/2               mixed number literal
Special commands:
	)bound [n]          largest denominator tried for decimals
	)clear              delete all variables
	)debug [name]       toggle a debug flag: cpu inexact panic parse
	)format ["fmt"]     print results with a fmt verb such as %.4f
	)get [file]         load variables (default save.frac)
	)glyph [on|off]     print fractions as ¹⁄₂
	)help               print this text
	)log [level]        set the log level
	)mixed [on|off]     print improper fractions as mixed numbers
	)prompt "text"      set the prompt
	)repeat [n]         digits taken as a repeating block
	)save [file]        save variables (default save.frac)
	)vars               print the variables
`

// Help returns the summary printed by )help.
func Help() string {
	return helpText
}

// special runs the special command in text, the rest of a line that began
// with ')'.
func (p *Parser) special(text string) {
	conf := p.context.Config()
	cmd, arg := text, ""
	if i := strings.IndexAny(text, " \t"); i >= 0 {
		cmd, arg = text[:i], strings.TrimSpace(text[i:])
	}
	switch cmd {
	case "":
		p.errorf("missing special command")
	case "help":
		p.Printf("%s", helpText)
	case "mixed":
		if arg == "" {
			p.Println(onOff(conf.Mixed()))
			break
		}
		conf.SetMixed(p.boolArg(cmd, arg))
	case "glyph":
		if arg == "" {
			p.Println(onOff(conf.Glyph()))
			break
		}
		conf.SetGlyph(p.boolArg(cmd, arg))
	case "bound":
		if arg == "" {
			p.Println(conf.Bound())
			break
		}
		conf.SetBound(p.intArg(cmd, arg, 1, 1<<31-1))
	case "repeat":
		if arg == "" {
			p.Println(conf.Repeat())
			break
		}
		conf.SetRepeat(p.intArg(cmd, arg, 1, value.MaxRepeat))
	case "format":
		if arg == "" {
			p.Printf("%q\n", conf.Format())
			break
		}
		conf.SetFormat(p.stringArg(cmd, arg))
	case "prompt":
		if arg == "" {
			p.Printf("%q\n", conf.Prompt())
			break
		}
		conf.SetPrompt(p.stringArg(cmd, arg))
	case "debug":
		if arg == "" {
			for _, name := range debugFlags {
				p.Printf("%s\t%s\n", name, onOff(conf.Debug(name)))
			}
			break
		}
		if !isDebugFlag(arg) {
			p.errorf("no debug flag %q", arg)
		}
		conf.SetDebug(arg, !conf.Debug(arg))
		p.Printf("%s\t%s\n", arg, onOff(conf.Debug(arg)))
	case "log":
		if arg == "" {
			p.Println(logger.Level())
			break
		}
		logger.SetLevel(p.intArg(cmd, arg, 0, logger.DEBUG))
	case "vars":
		for _, name := range p.context.Names() {
			v, _ := p.context.Lookup(name)
			p.Printf("%s = %s\n", name, p.context.Render(v))
		}
	case "clear":
		for _, name := range p.context.Names() {
			delete(p.context.Globals, name)
		}
	case "save":
		file := defaultFile
		if arg != "" {
			file = arg
		}
		if err := p.context.SaveFile(file); err != nil {
			p.errorf("%s", err)
		}
	case "get":
		file := defaultFile
		if arg != "" {
			file = arg
		}
		n, err := p.context.LoadFile(file)
		if err != nil {
			p.errorf("%s", err)
		}
		logger.Printf("loaded %d variables from %s", n, file)
	default:
		p.errorf(")%s: unknown special command", cmd)
	}
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

func isDebugFlag(name string) bool {
	for _, f := range debugFlags {
		if f == name {
			return true
		}
	}
	return false
}

func (p *Parser) boolArg(cmd, arg string) bool {
	switch arg {
	case "on", "1", "true":
		return true
	case "off", "0", "false":
		return false
	}
	p.errorf(")%s: expected on or off, got %q", cmd, arg)
	panic("not reached")
}

func (p *Parser) intArg(cmd, arg string, lo, hi int) int {
	n, err := strconv.Atoi(arg)
	if err != nil {
		p.errorf(")%s: bad number %q", cmd, arg)
	}
	if n < lo || hi < n {
		p.errorf(")%s: %d out of range [%d, %d]", cmd, n, lo, hi)
	}
	return n
}

// stringArg returns arg, unquoting it if it is a Go string literal.
func (p *Parser) stringArg(cmd, arg string) string {
	if arg[0] != '"' && arg[0] != '`' {
		return arg
	}
	s, err := strconv.Unquote(arg)
	if err != nil {
		p.errorf(")%s: bad string %s", cmd, arg)
	}
	return s
}
