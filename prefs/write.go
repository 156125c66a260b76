// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prefs

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/someonegg/stablematch"
)

// Format writes one "  id -> [prefs]" line per person, sorted by id.
func Format(w io.Writer, table *stablematch.PreferenceTable) error {
	ids := table.IDs()
	sort.Strings(ids)

	for _, id := range ids {
		order, _ := table.Preferences(id)
		if _, err := fmt.Fprintf(w, "  %s -> [%s]\n", id, strings.Join(order, " ")); err != nil {
			return err
		}
	}
	return nil
}

func NewReport(matches stablematch.Matches) *Report {
	return &Report{Matches: matches.Pairs()}
}

func WriteReport(w io.Writer, report *Report, format string) error {
	switch format {
	case FormatText, "":
		for _, p := range report.Matches {
			if _, err := fmt.Fprintf(w, "  %s -> %s\n", p.Proposer, p.Receiver); err != nil {
				return err
			}
		}
		if s := report.Summary; s != nil {
			_, err := fmt.Fprintf(w, "pairs: %d, proposer_cost: %d, receiver_cost: %d, egalitarian: %d, "+
				"proposer_regret: %d, receiver_regret: %d, first_choices: %d\n",
				s.Pairs, s.ProposerCost, s.ReceiverCost, s.Egalitarian,
				s.ProposerRegret, s.ReceiverRegret, s.FirstChoices)
			return err
		}
		return nil

	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "   ")
		if err := encoder.Encode(report); err != nil {
			return fmt.Errorf("json encode: %w", err)
		}
		return nil

	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		if err := encoder.Encode(report); err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}
		return encoder.Close()
	}

	return fmt.Errorf("unknown format %q", format)
}
