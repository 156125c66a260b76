// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package matchscore measures how well a matching treats each side.
package matchscore

import "github.com/someonegg/stablematch"

// Scorer reports where each partner of a pair ranks the other, 0 being
// first choice.
type Scorer interface {
	Score(p stablematch.Pair) (proposerRank, receiverRank int, err error)
}

type Summary struct {
	Pairs          int `json:"pairs" yaml:"pairs"`
	ProposerCost   int `json:"proposer_cost" yaml:"proposer_cost"` // sum of proposer ranks
	ReceiverCost   int `json:"receiver_cost" yaml:"receiver_cost"`
	Egalitarian    int `json:"egalitarian" yaml:"egalitarian"` // ProposerCost + ReceiverCost
	ProposerRegret int `json:"proposer_regret" yaml:"proposer_regret"` // worst proposer rank
	ReceiverRegret int `json:"receiver_regret" yaml:"receiver_regret"`
	FirstChoices   int `json:"first_choices" yaml:"first_choices"` // proposers on their top choice
}
