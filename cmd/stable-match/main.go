// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/someonegg/stablematch/prefs"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "stable-match",
		Usage: "Utility for computing stable matchings",
		Commands: []*cli.Command{
			matchCmd,
			showCmd,
			verifyCmd,
		},
	}
}

var tableFlags = []cli.Flag{
	&cli.StringFlag{
		Name:     "proposers",
		Aliases:  []string{"p"},
		Required: true,
		Usage:    "specify the proposers' preference file",
	},
	&cli.StringFlag{
		Name:     "receivers",
		Aliases:  []string{"r"},
		Required: true,
		Usage:    "specify the receivers' preference file",
	},
}

var matchCmd = &cli.Command{
	Name:    "match",
	Usage:   "Compute the proposer-optimal stable matching",
	Aliases: []string{"m"},
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:  "out",
			Usage: "specify the output file (default stdout)",
		},
		&cli.StringFlag{
			Name:  "format",
			Value: prefs.FormatText,
			Usage: "specify the output format (text, json, yaml)",
		},
		&cli.BoolFlag{
			Name:  "trace",
			Usage: "print every proposal",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "with --trace, also print the free queue before each proposal",
		},
		&cli.BoolFlag{
			Name:  "summary",
			Usage: "include rank statistics",
		},
		&cli.IntFlag{
			Name:  "max-iter",
			Usage: "abort after this many proposals (0 = n*n)",
		},
	}, tableFlags...),
	Action: func(ctx *cli.Context) error {
		opts := matchOptions{
			proposerFile: ctx.String("proposers"),
			receiverFile: ctx.String("receivers"),
			outFile:      ctx.String("out"),
			format:       ctx.String("format"),
			trace:        ctx.Bool("trace"),
			verbose:      ctx.Bool("verbose"),
			summary:      ctx.Bool("summary"),
			maxIter:      ctx.Int("max-iter"),
		}
		switch opts.format {
		case prefs.FormatText, prefs.FormatJSON, prefs.FormatYAML:
		default:
			return errors.New("invalid format")
		}
		if opts.maxIter < 0 {
			return errors.New("invalid max-iter")
		}
		return doMatch(ctx.App.Writer, opts)
	},
}

var showCmd = &cli.Command{
	Name:    "show",
	Usage:   "Print a preference file",
	Aliases: []string{"s"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "file",
			Aliases:  []string{"f"},
			Required: true,
			Usage:    "specify the preference file",
		},
	},
	Action: func(ctx *cli.Context) error {
		return doShow(ctx.App.Writer, ctx.String("file"))
	},
}

var verifyCmd = &cli.Command{
	Name:    "verify",
	Usage:   "Check a matching report for blocking pairs",
	Aliases: []string{"v"},
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:     "matches",
			Required: true,
			Usage:    "specify the json or yaml report to check",
		},
	}, tableFlags...),
	Action: func(ctx *cli.Context) error {
		return doVerify(ctx.App.Writer, ctx.String("proposers"), ctx.String("receivers"), ctx.String("matches"))
	},
}
