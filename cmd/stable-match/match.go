// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/someonegg/stablematch"
	"github.com/someonegg/stablematch/matchscore"
	"github.com/someonegg/stablematch/prefs"
)

type matchOptions struct {
	proposerFile string
	receiverFile string
	outFile      string
	format       string
	trace        bool
	verbose      bool
	summary      bool
	maxIter      int
}

func doMatch(w io.Writer, opts matchOptions) error {
	proposers, receivers, err := loadTables(opts.proposerFile, opts.receiverFile)
	if err != nil {
		return err
	}

	var observer stablematch.Observer
	if opts.trace {
		fmt.Fprintln(w, "Receiver preferences (unchanging)")
		if err := prefs.Format(w, receivers); err != nil {
			return err
		}
		fmt.Fprintln(w)
		observer = stablematch.TextTracer{W: w, Verbose: opts.verbose}
	}

	matches, err := stablematch.GaleShapleyMatcher(observer, opts.maxIter).Match(proposers, receivers)
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}
	if opts.trace {
		fmt.Fprintln(w)
	}

	report := prefs.NewReport(matches)
	if opts.summary {
		summ, err := matchscore.Summarize(matchscore.NewTableScorer(proposers, receivers), matches)
		if err != nil {
			return fmt.Errorf("summarize failed: %w", err)
		}
		report.Summary = &summ
	}

	if opts.outFile == "" {
		return prefs.WriteReport(w, report, opts.format)
	}

	var buf bytes.Buffer
	if err := prefs.WriteReport(&buf, report, opts.format); err != nil {
		return err
	}
	if err := os.WriteFile(opts.outFile, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write output file failed: %w", err)
	}
	return nil
}

func doShow(w io.Writer, file string) error {
	table, err := prefs.Load(file)
	if err != nil {
		return fmt.Errorf("load preference file failed: %w", err)
	}
	return prefs.Format(w, table)
}

func doVerify(w io.Writer, proposerFile, receiverFile, matchFile string) error {
	proposers, receivers, err := loadTables(proposerFile, receiverFile)
	if err != nil {
		return err
	}

	f, err := os.Open(matchFile)
	if err != nil {
		return fmt.Errorf("load match file failed: %w", err)
	}
	defer f.Close()
	report, err := prefs.ReadReport(f)
	if err != nil {
		return fmt.Errorf("load match file failed: %w", err)
	}

	matches, err := stablematch.MatchesOf(report.Matches)
	if err != nil {
		return fmt.Errorf("verify failed: %w", err)
	}
	blocking, err := stablematch.BlockingPairs(proposers, receivers, matches)
	if err != nil {
		return fmt.Errorf("verify failed: %w", err)
	}
	if len(blocking) > 0 {
		for _, p := range blocking {
			fmt.Fprintf(w, "  blocking: %s -> %s\n", p.Proposer, p.Receiver)
		}
		return fmt.Errorf("matching is unstable: %d blocking pairs", len(blocking))
	}

	fmt.Fprintln(w, "matching is stable")
	return nil
}

func loadTables(proposerFile, receiverFile string) (*stablematch.PreferenceTable, *stablematch.PreferenceTable, error) {
	proposers, err := prefs.Load(proposerFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load proposer file failed: %w", err)
	}
	receivers, err := prefs.Load(receiverFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load receiver file failed: %w", err)
	}
	return proposers, receivers, nil
}
