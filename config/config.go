// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings of a frac session: how results are
// displayed, how decimals are converted, and where output goes.
package config // import "github.com/zmath/frac/config"

import (
	"io"
	"os"
	"sort"
)

const BuildVersion = "v0.3.0"

// Config is the configuration of a session. The zero value is ready to
// use and writes to os.Stdout and os.Stderr.
type Config struct {
	prompt    string
	format    string
	mixed     bool
	glyph     bool
	bound     int
	repeat    int
	output    io.Writer
	errOutput io.Writer
	debug     map[string]bool
}

// Format returns the fmt format used to print results, or "" for the
// default rendering.
func (c *Config) Format() string {
	return c.format
}

func (c *Config) SetFormat(s string) {
	c.format = s
}

// Mixed reports whether improper fractions print as mixed numbers.
func (c *Config) Mixed() bool {
	return c.mixed
}

func (c *Config) SetMixed(on bool) {
	c.mixed = on
}

// Glyph reports whether results print with superscript and subscript digits.
func (c *Config) Glyph() bool {
	return c.glyph
}

func (c *Config) SetGlyph(on bool) {
	c.glyph = on
}

// Bound returns the largest denominator tried when converting decimals.
// Zero means the default.
func (c *Config) Bound() int {
	return c.bound
}

func (c *Config) SetBound(n int) {
	c.bound = n
}

// Repeat returns the number of decimal places captured as a repeating
// block when the denominator search fails. Zero means the default.
func (c *Config) Repeat() int {
	return c.repeat
}

func (c *Config) SetRepeat(n int) {
	c.repeat = n
}

func (c *Config) Debug(s string) bool {
	return c.debug[s]
}

func (c *Config) SetDebug(s string, state bool) {
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[s] = state
}

// DebugFlags returns the names of the debug flags that are set, sorted.
func (c *Config) DebugFlags() []string {
	var names []string
	for name, on := range c.debug {
		if on {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func (c *Config) Prompt() string {
	return c.prompt
}

func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}

// Output returns the writer to be used for program output.
func (c *Config) Output() io.Writer {
	if c.output == nil {
		return os.Stdout
	}
	return c.output
}

// SetOutput sets the writer to which program output is printed.
func (c *Config) SetOutput(output io.Writer) {
	c.output = output
}

// ErrOutput returns the writer to be used for error output.
func (c *Config) ErrOutput() io.Writer {
	if c.errOutput == nil {
		return os.Stderr
	}
	return c.errOutput
}

// SetErrOutput sets the writer to which error output is printed.
func (c *Config) SetErrOutput(output io.Writer) {
	c.errOutput = output
}
