// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The mobile package provides a very narrow interface to frac,
// suitable for wrapping in a UI for mobile applications.
// It is designed to work well with the gomobile tool by exposing
// only primitive types. It's also handy for testing.
//
// The session is package state, so only one execution stream
// (Eval or Demo) can be active at a time.
package mobile // import "github.com/zmath/frac/mobile"

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/zmath/frac/config"
	"github.com/zmath/frac/exec"
	"github.com/zmath/frac/parse"
	"github.com/zmath/frac/run"
	"github.com/zmath/frac/scan"
)

var (
	conf    config.Config
	context *exec.Context
)

func init() {
	Reset()
}

// Eval evaluates the input string and returns its output.
// If execution caused errors, they will be returned concatenated
// together in the error value returned.
func Eval(expr string) (result string, errors error) {
	if !strings.HasSuffix(expr, "\n") {
		expr += "\n"
	}
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	conf.SetOutput(stdout)
	conf.SetErrOutput(stderr)

	parser := parse.NewParser(" ", scan.New(strings.NewReader(expr)), context)
	for !run.Run(parser, context, false) {
	}
	var err error
	if stderr.Len() > 0 {
		err = fmt.Errorf("%s", stderr)
	}
	return stdout.String(), err
}

// Demo represents a running line-by-line demonstration.
type Demo struct {
	scanner *bufio.Scanner
}

// NewDemo resets the session and returns a new Demo that will
// scan the input text line by line.
func NewDemo(input string) *Demo {
	Reset()
	return &Demo{
		scanner: bufio.NewScanner(strings.NewReader(input)),
	}
}

// Next returns the result (and error) produced by the next line of
// input. It returns ("", io.EOF) at EOF.
func (d *Demo) Next() (result string, err error) {
	if !d.scanner.Scan() {
		if err := d.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return Eval(d.scanner.Text())
}

// Reset clears all state to the initial value.
func Reset() {
	conf = config.Config{}
	conf.SetBound(config.DefaultBound)
	conf.SetRepeat(config.DefaultRepeat)
	context = exec.NewContext(&conf)
}

// Help returns a summary of the operators and special commands.
func Help() string {
	return parse.Help()
}
