// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stablematch

// BlockingPairs returns every (proposer, receiver) pair, not matched to each
// other, where both prefer each other to their assigned partners. A stable
// matching yields none. The matching must be one-to-one and total over
// both tables.
func BlockingPairs(proposers, receivers *PreferenceTable, matches Matches) ([]Pair, error) {
	if err := ValidatePair(proposers, receivers); err != nil {
		return nil, err
	}

	if len(matches) != proposers.Len() {
		for p := range matches {
			if !proposers.Has(p) {
				return nil, &MalformedInputError{Group: GroupProposers, Person: p, Reason: "is matched but not listed"}
			}
		}
	}

	holder := make(map[string]string, len(matches))
	for _, p := range proposers.people {
		r, ok := matches[p.ID]
		if !ok || !receivers.Has(r) {
			return nil, &IncompleteMatchingError{Proposer: p.ID}
		}
		if prev, dup := holder[r]; dup {
			return nil, &MalformedInputError{Group: GroupReceivers, Person: r, Reason: "matched to both " + prev + " and", ID: p.ID}
		}
		holder[r] = p.ID
	}

	var blocking []Pair
	for _, p := range proposers.people {
		current := matches[p.ID]
		for _, r := range p.Preferences {
			if r == current {
				break // everything after is ranked lower by p
			}
			best, err := receivers.Prefer(r, p.ID, holder[r])
			if err != nil {
				return nil, err
			}
			if best == p.ID {
				blocking = append(blocking, Pair{p.ID, r})
			}
		}
	}
	return blocking, nil
}
