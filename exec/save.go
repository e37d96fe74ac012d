// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

// Saving variables to a file.

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v4"
	"github.com/zmath/frac/value"
)

var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder

	compressionVersionZero = []byte{0, 0, 0, 0}
)

func init() {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic(err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		panic(err)
	}
	zstdEncoder, zstdDecoder = enc, dec
}

// savedVar is the stored form of one variable.
type savedVar struct {
	Name  string         `msgpack:"n"`
	Value value.Rational `msgpack:"v"`
}

// Save writes the variables of the workspace to w, in sorted order.
func (c *Context) Save(w io.Writer) error {
	vars := make([]savedVar, 0, len(c.Globals))
	for _, name := range c.Names() {
		vars = append(vars, savedVar{name, c.Globals[name]})
	}
	return msgpack.NewEncoder(w).Encode(vars)
}

// Load reads variables written by Save and binds them in the workspace.
// It returns the number of variables read.
func (c *Context) Load(r io.Reader) (int, error) {
	var vars []savedVar
	err := msgpack.NewDecoder(r).Decode(&vars)
	if err != nil {
		return 0, err
	}
	for _, v := range vars {
		c.Assign(v.Name, v.Value)
	}
	return len(vars), nil
}

// SaveFile writes the variables of the workspace to the named file,
// compressed with zstd behind a four-byte version header.
func (c *Context) SaveFile(file string) error {
	var buf bytes.Buffer
	if err := c.Save(&buf); err != nil {
		return fmt.Errorf("save %s: %w", file, err)
	}
	data := zstdEncoder.EncodeAll(buf.Bytes(), make([]byte, 0, buf.Len()))
	return os.WriteFile(file, append(compressionVersionZero, data...), 0o644)
}

// LoadFile reads the variables stored in the named file.
// Files without the compression header are read as plain msgpack.
func (c *Context) LoadFile(file string) (int, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return 0, err
	}
	header := len(compressionVersionZero)
	if len(data) >= header && bytes.Equal(data[:header], compressionVersionZero) {
		data, err = zstdDecoder.DecodeAll(data[header:], nil)
		if err != nil {
			return 0, fmt.Errorf("load %s: %w", file, err)
		}
	}
	n, err := c.Load(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("load %s: %w", file, err)
	}
	return n, nil
}
