// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stablematch

type galeShapleyMatcher struct {
	observer Observer
	maxIter  int
}

// GaleShapleyMatcher returns a proposer-proposing deferred acceptance
// matcher. observer may be nil. maxIterations <= 0 selects n*n, the most
// proposals a valid run can make.
//
// Free proposers wait in a FIFO queue seeded in the proposers' table order;
// rejected and displaced proposers rejoin at the back.
func GaleShapleyMatcher(observer Observer, maxIterations int) Matcher {
	return galeShapleyMatcher{observer, maxIterations}
}

type proposerState struct {
	id        string
	remaining []string // FIFO, attempted candidates removed from the front
	match     string
	matched   bool
}

func (m galeShapleyMatcher) Match(proposers, receivers *PreferenceTable) (Matches, error) {
	if err := ValidatePair(proposers, receivers); err != nil {
		return nil, err
	}

	n := proposers.Len()
	states := make([]proposerState, n)
	free := make([]int, n)
	for i, p := range proposers.people {
		states[i] = proposerState{
			id:        p.ID,
			remaining: append([]string(nil), p.Preferences...),
		}
		free[i] = i
	}
	holder := make(map[string]int, n) // receiverID -> proposer index

	maxIter := m.maxIter
	if maxIter <= 0 {
		maxIter = n * n
	}

	for iter := 1; len(free) > 0; iter++ {
		if iter > maxIter {
			return nil, &InternalInvariantError{Reason: "iteration limit exceeded"}
		}

		var unmatched []string
		if m.observer != nil {
			for _, i := range free {
				unmatched = append(unmatched, states[i].id)
			}
		}

		pi := free[0]
		free = free[1:]
		p := &states[pi]

		if len(p.remaining) == 0 {
			return nil, &InternalInvariantError{Proposer: p.id, Reason: "exhausted its preferences"}
		}
		r := p.remaining[0]
		p.remaining = p.remaining[1:]

		m.emit(Event{Seq: iter, Kind: EventPropose, Proposer: p.id, Receiver: r,
			Remaining: len(p.remaining), Unmatched: unmatched})

		qi, held := holder[r]
		if !held {
			p.match, p.matched = r, true
			holder[r] = pi
			m.emit(Event{Seq: iter, Kind: EventAccept, Proposer: p.id, Receiver: r})
			continue
		}

		q := &states[qi]
		best, err := receivers.Prefer(r, p.id, q.id)
		if err != nil {
			return nil, err
		}

		if best == p.id {
			q.match, q.matched = "", false
			free = append(free, qi)
			p.match, p.matched = r, true
			holder[r] = pi
			m.emit(Event{Seq: iter, Kind: EventDump, Proposer: p.id, Receiver: r, Displaced: q.id})
		} else {
			free = append(free, pi)
			m.emit(Event{Seq: iter, Kind: EventReject, Proposer: p.id, Receiver: r, Displaced: q.id})
		}
	}

	return extractMatches(states)
}

func (m galeShapleyMatcher) emit(e Event) {
	if m.observer != nil {
		m.observer.Observe(e)
	}
}
