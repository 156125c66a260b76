// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stablematch

// Prefer returns whichever of a and b comes first in order.
func Prefer(order []string, a, b string) (string, error) {
	ia, ib := indexOf(order, a), indexOf(order, b)
	if ia < 0 {
		return "", &UnknownCandidateError{Candidate: a}
	}
	if ib < 0 {
		return "", &UnknownCandidateError{Candidate: b}
	}
	if ia <= ib {
		return a, nil
	}
	return b, nil
}

// Prefer is the table-backed form of Prefer for person id.
func (t *PreferenceTable) Prefer(id, a, b string) (string, error) {
	i, ok := t.index[id]
	if !ok {
		return "", &UnknownCandidateError{Person: id}
	}
	ra, ok := t.ranks[i][a]
	if !ok {
		return "", &UnknownCandidateError{Person: id, Candidate: a}
	}
	rb, ok := t.ranks[i][b]
	if !ok {
		return "", &UnknownCandidateError{Person: id, Candidate: b}
	}
	if ra <= rb {
		return a, nil
	}
	return b, nil
}

func indexOf(order []string, id string) int {
	for i := range order {
		if order[i] == id {
			return i
		}
	}
	return -1
}
