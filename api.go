// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stablematch computes stable one-to-one matchings between two
// equal-size groups with strict, complete preference lists.
package stablematch

import "sort"

type Matcher interface {
	Match(proposers, receivers *PreferenceTable) (Matches, error)
}

type Person struct {
	ID          string   `json:"id" yaml:"id"`
	Preferences []string `json:"preferences" yaml:"preferences"` // best first
}

type Pair struct {
	Proposer string `json:"proposer" yaml:"proposer"`
	Receiver string `json:"receiver" yaml:"receiver"`
}

type Matches map[string]string // proposerID -> receiverID

func (m Matches) Len() int {
	return len(m)
}

func (m Matches) Receiver(proposer string) (string, bool) {
	r, ok := m[proposer]
	return r, ok
}

func (m Matches) Proposer(receiver string) (string, bool) {
	for p, r := range m {
		if r == receiver {
			return p, true
		}
	}
	return "", false
}

// Pairs returns the matching ordered by proposer id.
func (m Matches) Pairs() []Pair {
	pairs := make([]Pair, 0, len(m))
	for p, r := range m {
		pairs = append(pairs, Pair{p, r})
	}
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Proposer < pairs[j].Proposer
	})
	return pairs
}

// MatchesOf builds Matches from a pair list, as read back from a report.
// A proposer listed twice is rejected.
func MatchesOf(pairs []Pair) (Matches, error) {
	m := make(Matches, len(pairs))
	for _, p := range pairs {
		if prev, dup := m[p.Proposer]; dup {
			return nil, &MalformedInputError{
				Group:  GroupProposers,
				Person: p.Proposer,
				Reason: "matched to both " + prev + " and",
				ID:     p.Receiver,
			}
		}
		m[p.Proposer] = p.Receiver
	}
	return m, nil
}
