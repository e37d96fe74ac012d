// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// File is the layout of a TOML configuration file:
//
//	prompt = "frac> "
//	debug = ["parse"]
//
//	[display]
//	mixed = true
//	glyph = false
//	format = "%.4f"
//
//	[convert]
//	bound = 10000
//	repeat = 5
//
//	[log]
//	level = 2
//	filter = ""
//	limiter = 0
type File struct {
	Prompt  string   `toml:"prompt"`
	Debug   []string `toml:"debug"`
	Display struct {
		Mixed  bool   `toml:"mixed"`
		Glyph  bool   `toml:"glyph"`
		Format string `toml:"format"`
	} `toml:"display"`
	Convert struct {
		Bound  int `toml:"bound"`
		Repeat int `toml:"repeat"`
	} `toml:"convert"`
	Log struct {
		Level   int    `toml:"level"`
		Filter  string `toml:"filter"`
		Limiter int    `toml:"limiter"`
	} `toml:"log"`
}

const (
	DefaultBound    = 10000
	DefaultRepeat   = 5
	DefaultLogLevel = 1
)

// Load reads and parses the configuration file, filling in defaults for
// settings it leaves out.
func Load(file string) (*File, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse is like Load but takes the file contents.
func Parse(data []byte) (*File, error) {
	var f File
	err := toml.Unmarshal(data, &f)
	if err != nil {
		return nil, err
	}
	if f.Convert.Bound == 0 {
		f.Convert.Bound = DefaultBound
	}
	if f.Convert.Repeat == 0 {
		f.Convert.Repeat = DefaultRepeat
	}
	if f.Log.Level == 0 {
		f.Log.Level = DefaultLogLevel
	}
	if f.Convert.Bound < 0 || f.Convert.Repeat < 0 || f.Convert.Repeat > 18 {
		return nil, fmt.Errorf("config: convert bound %d or repeat %d out of range", f.Convert.Bound, f.Convert.Repeat)
	}
	return &f, nil
}

// Apply copies the settings of f into c.
func (f *File) Apply(c *Config) {
	c.SetPrompt(f.Prompt)
	c.SetMixed(f.Display.Mixed)
	c.SetGlyph(f.Display.Glyph)
	c.SetFormat(f.Display.Format)
	c.SetBound(f.Convert.Bound)
	c.SetRepeat(f.Convert.Repeat)
	for _, name := range f.Debug {
		c.SetDebug(name, true)
	}
}
