// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exec evaluates parsed frac statements.
package exec // import "github.com/zmath/frac/exec"

import (
	"fmt"
	"sort"

	"github.com/zmath/frac/config"
	"github.com/zmath/frac/value"
)

// Symtab is a symbol table, a map of names to values.
type Symtab map[string]value.Rational

// Context holds execution context, specifically the binding of names to values.
type Context struct {
	// config is the configuration state used for evaluation, printing, etc.
	config *config.Config

	// Globals holds the variables, including "_", the most recent result.
	Globals Symtab
}

// NewContext returns a new execution context: the variables,
// plus the execution configuration.
func NewContext(conf *config.Config) *Context {
	return &Context{
		config:  conf,
		Globals: make(Symtab),
	}
}

func (c *Context) Config() *config.Config {
	return c.config
}

// Converter returns the decimal converter described by the configuration.
func (c *Context) Converter() value.Converter {
	return value.Converter{
		Bound:  c.config.Bound(),
		Repeat: c.config.Repeat(),
	}
}

// Lookup returns the value of a variable.
func (c *Context) Lookup(name string) (value.Rational, bool) {
	v, ok := c.Globals[name]
	return v, ok
}

// Assign binds the variable to the value.
func (c *Context) Assign(name string, v value.Rational) {
	c.Globals[name] = v
}

// Names returns the names of the variables, sorted.
func (c *Context) Names() []string {
	names := make([]string, 0, len(c.Globals))
	for name := range c.Globals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render formats v for output according to the configuration: with the
// configured fmt format if there is one, else as glyphs, else as a plain
// or mixed number.
func (c *Context) Render(v value.Rational) string {
	conf := c.config
	switch {
	case conf.Format() != "":
		return fmt.Sprintf(conf.Format(), v)
	case conf.Glyph():
		return v.GlyphString()
	}
	return v.SetMixed(conf.Mixed()).String()
}

// Exec runs the statement and returns the text to print, which is
// empty for assignments.
func (c *Context) Exec(s *Statement) (string, error) {
	v, err := s.Expr.Eval(c)
	if err != nil {
		return "", err
	}
	if s.Cmp != nil {
		w, err := s.Cmp.Eval(c)
		if err != nil {
			return "", err
		}
		mixed := c.config.Mixed()
		return value.CompareString(v.SetMixed(mixed), w.SetMixed(mixed))
	}
	if s.Assign != "" {
		c.Assign(s.Assign, v)
		return "", nil
	}
	c.Assign("_", v)
	return c.Render(v), nil
}
