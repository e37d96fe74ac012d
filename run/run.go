// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run provides the execution control for frac.
// It is factored out of main so it can be used for tests.
package run // import "github.com/zmath/frac/run"

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/zmath/frac/config"
	"github.com/zmath/frac/exec"
	"github.com/zmath/frac/logger"
	"github.com/zmath/frac/parse"
	"github.com/zmath/frac/scan"
	"github.com/zmath/frac/value"
)

// cpuTime returns the user and system time used by the process.
// It is replaced on systems that can report it.
var cpuTime = func() (user, sys time.Duration) { return 0, 0 }

// Run runs the parser/evaluator until EOF or error.
// The return value says whether we completed without error. If the return
// value is true, it means we ran out of data (EOF) and the run was successful.
// Typical execution is therefore to loop calling Run until it succeeds.
// Error details are reported to the configured error output stream.
func Run(p *parse.Parser, context *exec.Context, interactive bool) (success bool) {
	conf := context.Config()
	writer := conf.Output()
	defer func() {
		if conf.Debug("panic") {
			return
		}
		err := recover()
		if err == nil {
			return
		}
		if err, ok := err.(value.Error); ok {
			report(p, conf, err, interactive)
			success = false
			return
		}
		panic(err)
	}()
	for {
		if interactive {
			fmt.Fprint(writer, conf.Prompt())
		}
		stmts, ok := p.Line()
		user, sys := cpuTime()
		for _, s := range stmts {
			out, err := context.Exec(s)
			if err != nil {
				report(p, conf, err, interactive)
				return false
			}
			if out != "" {
				fmt.Fprintln(writer, out)
			}
		}
		if !ok {
			return true
		}
		if interactive && stmts != nil && conf.Debug("cpu") {
			u, s := cpuTime()
			if u != 0 || s != 0 {
				fmt.Fprintf(writer, "(%s user, %s sys)\n", u-user, s-sys)
			}
		}
	}
}

// report prints the error, prefixed by its location in the input.
func report(p *parse.Parser, conf *config.Config, err error, interactive bool) {
	logger.Debugf("error: %s%s", p.Loc(), err)
	fmt.Fprintf(conf.ErrOutput(), "%s%s\n", p.Loc(), err)
	if interactive {
		fmt.Fprintln(conf.Output())
	}
}

// Frac evaluates the input string, appending to stdout and stderr the
// results and errors generated by executing it. It is used by tests.
// It returns whether the evaluation completed without error.
func Frac(context *exec.Context, input string, stdout, stderr io.Writer) bool {
	conf := context.Config()
	conf.SetOutput(stdout)
	conf.SetErrOutput(stderr)
	scanner := scan.New(strings.NewReader(input))
	parser := parse.NewParser("<input>", scanner, context)
	return Run(parser, context, false)
}
