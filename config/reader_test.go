// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
prompt = "> "
debug = ["parse", "inexact"]

[display]
mixed = true
format = "%.4f"

[convert]
bound = 500
repeat = 3

[log]
level = 3
filter = "inexact"
limiter = 10
`

func TestParse(t *testing.T) {
	assert := assert.New(t)

	f, err := Parse([]byte(sample))
	require.Nil(t, err)
	assert.Equal("> ", f.Prompt)
	assert.Equal([]string{"parse", "inexact"}, f.Debug)
	assert.True(f.Display.Mixed)
	assert.False(f.Display.Glyph)
	assert.Equal("%.4f", f.Display.Format)
	assert.Equal(500, f.Convert.Bound)
	assert.Equal(3, f.Convert.Repeat)
	assert.Equal(3, f.Log.Level)
	assert.Equal("inexact", f.Log.Filter)
	assert.Equal(10, f.Log.Limiter)
}

func TestParseDefaults(t *testing.T) {
	f, err := Parse(nil)
	require.Nil(t, err)
	assert.Equal(t, DefaultBound, f.Convert.Bound)
	assert.Equal(t, DefaultRepeat, f.Convert.Repeat)
	assert.Equal(t, DefaultLogLevel, f.Log.Level)
	assert.Empty(t, f.Prompt)
}

func TestParseErrors(t *testing.T) {
	for _, text := range []string{
		"[convert]\nbound = -1\n",
		"[convert]\nrepeat = 19\n",
		"prompt = \n",
		"[display]\nmixed = \"yes\"\n",
	} {
		_, err := Parse([]byte(text))
		assert.Error(t, err, "%q", text)
	}
}

func TestLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), "frac.toml")
	require.Nil(t, os.WriteFile(file, []byte("[display]\nglyph = true\n"), 0o644))
	f, err := Load(file)
	require.Nil(t, err)
	assert.True(t, f.Display.Glyph)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, os.IsNotExist(err))
}

func TestApply(t *testing.T) {
	assert := assert.New(t)

	f, err := Parse([]byte(sample))
	require.Nil(t, err)
	var c Config
	f.Apply(&c)
	assert.Equal("> ", c.Prompt())
	assert.True(c.Mixed())
	assert.False(c.Glyph())
	assert.Equal("%.4f", c.Format())
	assert.Equal(500, c.Bound())
	assert.Equal(3, c.Repeat())
	assert.True(c.Debug("parse"))
	assert.False(c.Debug("cpu"))
	assert.Equal([]string{"inexact", "parse"}, c.DebugFlags())
}

func TestConfigOutputs(t *testing.T) {
	var c Config
	assert.Equal(t, os.Stdout, c.Output())
	assert.Equal(t, os.Stderr, c.ErrOutput())
	assert.False(t, c.Debug("anything"))
}
