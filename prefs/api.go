// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prefs reads preference tables and writes matching reports for
// stablematch.
//
// A preference file holds one person per line, "id;pref_1;...;pref_n",
// preferences ranked best first. Files ending in .yaml or .yml instead map
// each id to its list:
//
//	a: [x, y]
//	b: [y, x]
package prefs

import (
	"github.com/someonegg/stablematch"
	"github.com/someonegg/stablematch/matchscore"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

const fieldSep = ";"

type Report struct {
	Matches []stablematch.Pair  `json:"matches" yaml:"matches"`
	Summary *matchscore.Summary `json:"summary,omitempty" yaml:"summary,omitempty"`
}
