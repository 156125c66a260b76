// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stablematch

import (
	"fmt"
	"io"
	"strings"
)

type EventKind int

const (
	EventPropose EventKind = iota
	EventAccept            // receiver was free
	EventReject            // receiver keeps its current match
	EventDump              // receiver drops Displaced for Proposer
)

func (k EventKind) String() string {
	switch k {
	case EventPropose:
		return "propose"
	case EventAccept:
		return "accept"
	case EventReject:
		return "reject"
	case EventDump:
		return "dump"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

type Event struct {
	Seq       int // 1-based proposal number
	Kind      EventKind
	Proposer  string
	Receiver  string
	Displaced string // previous holder of Receiver, for EventReject and EventDump

	// Set on EventPropose only.
	Remaining int      // candidates left in Proposer's queue after this one
	Unmatched []string // free proposers in queue order, Proposer first
}

// Observer receives engine events in order. It must not retain the
// engine's tables or expect to influence the run.
type Observer interface {
	Observe(e Event)
}

type ObserverFunc func(e Event)

func (f ObserverFunc) Observe(e Event) {
	f(e)
}

// Recorder keeps every observed event.
type Recorder struct {
	events []Event
}

func (r *Recorder) Observe(e Event) {
	r.events = append(r.events, e)
}

func (r *Recorder) Events() []Event {
	return append([]Event(nil), r.events...)
}

func (r *Recorder) Reset() {
	r.events = r.events[:0]
}

// TextTracer writes one sentence per decision. Propose events are folded
// into the decision line unless Verbose is set, in which case the free
// queue and the proposer's remaining preferences are printed first.
type TextTracer struct {
	W       io.Writer
	Verbose bool
}

func (t TextTracer) Observe(e Event) {
	switch e.Kind {
	case EventPropose:
		if t.Verbose {
			fmt.Fprintf(t.W, "unmatched proposers = [%s]\n", strings.Join(e.Unmatched, " "))
			fmt.Fprintf(t.W, "%s has %d preferences left after %s\n", e.Proposer, e.Remaining, e.Receiver)
		}
	case EventAccept:
		fmt.Fprintf(t.W, "%s proposes to %s, who is unmatched; so %s accepts the proposal\n",
			e.Proposer, e.Receiver, e.Receiver)
	case EventDump:
		fmt.Fprintf(t.W, "%s proposes to %s, who prefers the new proposer to %s; so %s accepts the proposal\n",
			e.Proposer, e.Receiver, e.Displaced, e.Receiver)
	case EventReject:
		fmt.Fprintf(t.W, "%s proposes to %s, who prefers the current match %s; so %s rejects the proposal\n",
			e.Proposer, e.Receiver, e.Displaced, e.Receiver)
	}
}
