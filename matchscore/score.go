// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matchscore

import "github.com/someonegg/stablematch"

type tableScorer struct {
	proposers *stablematch.PreferenceTable
	receivers *stablematch.PreferenceTable
}

func NewTableScorer(proposers, receivers *stablematch.PreferenceTable) Scorer {
	return tableScorer{proposers, receivers}
}

func (s tableScorer) Score(p stablematch.Pair) (int, int, error) {
	pr, ok := s.proposers.Rank(p.Proposer, p.Receiver)
	if !ok {
		return 0, 0, &stablematch.UnknownCandidateError{Person: p.Proposer, Candidate: p.Receiver}
	}
	rr, ok := s.receivers.Rank(p.Receiver, p.Proposer)
	if !ok {
		return 0, 0, &stablematch.UnknownCandidateError{Person: p.Receiver, Candidate: p.Proposer}
	}
	return pr, rr, nil
}

// Summarize scores every pair of matches.
func Summarize(scorer Scorer, matches stablematch.Matches) (Summary, error) {
	var summ Summary

	for _, pair := range matches.Pairs() {
		pr, rr, err := scorer.Score(pair)
		if err != nil {
			return Summary{}, err
		}
		summ.Pairs++
		summ.ProposerCost += pr
		summ.ReceiverCost += rr
		if pr > summ.ProposerRegret {
			summ.ProposerRegret = pr
		}
		if rr > summ.ReceiverRegret {
			summ.ReceiverRegret = rr
		}
		if pr == 0 {
			summ.FirstChoices++
		}
	}
	summ.Egalitarian = summ.ProposerCost + summ.ReceiverCost

	return summ, nil
}
