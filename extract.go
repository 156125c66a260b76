// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stablematch

func extractMatches(states []proposerState) (Matches, error) {
	matches := make(Matches, len(states))
	for _, s := range states {
		if !s.matched {
			return nil, &IncompleteMatchingError{Proposer: s.id}
		}
		matches[s.id] = s.match
	}
	return matches, nil
}
