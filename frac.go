// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"
	"github.com/zmath/frac/config"
	"github.com/zmath/frac/demo"
	"github.com/zmath/frac/exec"
	"github.com/zmath/frac/logger"
	"github.com/zmath/frac/parse"
	"github.com/zmath/frac/run"
	"github.com/zmath/frac/scan"
	"github.com/zmath/frac/value"
)

// isTTY reports whether the file descriptor is a terminal.
// It is replaced on systems that can tell.
var isTTY = func(fd uintptr) bool { return false }

func main() {
	log.SetFlags(0)
	log.SetPrefix("frac: ")

	app := cli.NewApp()
	app.Name = "frac"
	app.Usage = "An exact calculator for fractions."
	app.ArgsUsage = "[file...]"
	app.Version = config.BuildVersion
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "the TOML configuration file",
		},
		&cli.BoolFlag{
			Name:  "mixed",
			Usage: "print improper fractions as mixed numbers",
		},
		&cli.BoolFlag{
			Name:  "glyph",
			Usage: "print fractions with superscript and subscript digits",
		},
		&cli.StringFlag{
			Name:  "prompt",
			Usage: "the command prompt",
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: "the fmt format for printing results, such as %.4f",
		},
		&cli.IntFlag{
			Name:  "bound",
			Value: config.DefaultBound,
			Usage: "the largest denominator tried when converting decimals",
		},
		&cli.IntFlag{
			Name:  "repeat",
			Value: config.DefaultRepeat,
			Usage: "the digits taken as a repeating block when the search fails",
		},
		&cli.IntFlag{
			Name:    "log",
			Aliases: []string{"l"},
			Value:   logger.ERROR,
			Usage:   "the log level",
		},
		&cli.StringFlag{
			Name:  "filter",
			Usage: "the RE2 regex pattern to filter log",
		},
	}
	app.Action = fracCmd
	app.Commands = []*cli.Command{
		{
			Name:      "convert",
			Usage:     "Print the fraction for each decimal argument",
			ArgsUsage: "decimal...",
			Action:    convertCmd,
		},
		{
			Name:   "demo",
			Usage:  "Step through a demonstration; hit return for the next line",
			Action: demoCmd,
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

// setup builds the configuration from the configuration file, if any,
// and then the command-line flags.
func setup(c *cli.Context) (*config.Config, error) {
	conf := new(config.Config)
	conf.SetBound(config.DefaultBound)
	conf.SetRepeat(config.DefaultRepeat)
	logger.SetLevel(c.Int("log"))
	if file := c.String("config"); file != "" {
		f, err := config.Load(file)
		if err != nil {
			return nil, err
		}
		f.Apply(conf)
		logger.SetLevel(f.Log.Level)
		logger.SetLimiter(f.Log.Limiter)
		if err := logger.SetFilter(f.Log.Filter); err != nil {
			return nil, err
		}
	}
	if c.IsSet("log") {
		logger.SetLevel(c.Int("log"))
	}
	if c.IsSet("filter") {
		if err := logger.SetFilter(c.String("filter")); err != nil {
			return nil, err
		}
	}
	if c.IsSet("mixed") {
		conf.SetMixed(c.Bool("mixed"))
	}
	if c.IsSet("glyph") {
		conf.SetGlyph(c.Bool("glyph"))
	}
	if c.IsSet("prompt") {
		conf.SetPrompt(c.String("prompt"))
	}
	if c.IsSet("format") {
		conf.SetFormat(c.String("format"))
	}
	if c.IsSet("bound") {
		conf.SetBound(c.Int("bound"))
	}
	if c.IsSet("repeat") {
		conf.SetRepeat(c.Int("repeat"))
	}
	return conf, nil
}

func fracCmd(c *cli.Context) error {
	conf, err := setup(c)
	if err != nil {
		return err
	}
	context := exec.NewContext(conf)
	if c.Args().Len() == 0 {
		interactive := isTTY(os.Stdin.Fd())
		if interactive && !c.IsSet("prompt") && conf.Prompt() == "" {
			conf.SetPrompt("frac> ")
		}
		parser := parse.NewParser("<stdin>", scan.New(bufio.NewReader(os.Stdin)), context)
		for !run.Run(parser, context, interactive) {
			if !interactive {
				return cli.Exit("", 1)
			}
		}
		return nil
	}
	for _, name := range c.Args().Slice() {
		if !runFile(context, name) {
			return cli.Exit("", 1)
		}
	}
	return nil
}

// runFile executes the contents of the named file, or standard input
// if the name is "-".
func runFile(context *exec.Context, name string) bool {
	var r io.Reader
	if name == "-" {
		name = "<stdin>"
		r = os.Stdin
	} else {
		fd, err := os.Open(name)
		if err != nil {
			fmt.Fprintln(context.Config().ErrOutput(), err)
			return false
		}
		defer fd.Close()
		r = fd
	}
	parser := parse.NewParser(name, scan.New(bufio.NewReader(r)), context)
	return run.Run(parser, context, false)
}

func convertCmd(c *cli.Context) error {
	conf, err := setup(c)
	if err != nil {
		return err
	}
	conv := value.Converter{Bound: conf.Bound(), Repeat: conf.Repeat()}
	context := exec.NewContext(conf)
	for _, arg := range c.Args().Slice() {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return cli.Exit(fmt.Sprintf("convert: bad decimal %q", arg), 2)
		}
		r, err := conv.FromDecimal(x)
		if err != nil {
			return cli.Exit(fmt.Sprintf("convert %s: %s", arg, err), 1)
		}
		fmt.Fprintf(conf.Output(), "%s\t%s\n", arg, context.Render(r))
	}
	return nil
}

func demoCmd(c *cli.Context) error {
	conf, err := setup(c)
	if err != nil {
		return err
	}
	context := exec.NewContext(conf)
	pr, pw := io.Pipe()
	go func() {
		pw.CloseWithError(demo.Run(os.Stdin, pw, conf.Output()))
	}()
	parser := parse.NewParser("<stdin>", scan.New(pr), context)
	for !run.Run(parser, context, false) {
	}
	return nil
}
