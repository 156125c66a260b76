// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stablematch

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextTracer(t *testing.T) {
	var buf bytes.Buffer
	tracer := TextTracer{W: &buf}
	for _, e := range []Event{
		{Seq: 1, Kind: EventPropose, Proposer: "a", Receiver: "x"},
		{Seq: 1, Kind: EventAccept, Proposer: "a", Receiver: "x"},
		{Seq: 2, Kind: EventDump, Proposer: "b", Receiver: "x", Displaced: "a"},
		{Seq: 3, Kind: EventReject, Proposer: "c", Receiver: "x", Displaced: "b"},
	} {
		tracer.Observe(e)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "a proposes to x, who is unmatched; so x accepts the proposal", lines[0])
	assert.Contains(t, lines[1], "prefers the new proposer to a")
	assert.Contains(t, lines[2], "rejects the proposal")
}

func TestTextTracer_Verbose(t *testing.T) {
	proposers := mustTable(t, person("a", "x", "y"), person("b", "x", "y"))
	receivers := mustTable(t, person("x", "b", "a"), person("y", "a", "b"))

	var buf bytes.Buffer
	_, err := GaleShapleyMatcher(TextTracer{W: &buf, Verbose: true}, 0).Match(proposers, receivers)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "unmatched proposers = [a b]", lines[0])
	assert.Equal(t, "a has 1 preferences left after x", lines[1])
	assert.Equal(t, "unmatched proposers = [b]", lines[3])
	assert.Equal(t, "unmatched proposers = [a]", lines[6])
	assert.Equal(t, "a has 0 preferences left after y", lines[7])
}

func TestRecorder(t *testing.T) {
	proposers := mustTable(t, person("a", "x"))
	receivers := mustTable(t, person("x", "a"))

	rec := &Recorder{}
	_, err := GaleShapleyMatcher(rec, 0).Match(proposers, receivers)
	require.NoError(t, err)
	require.Len(t, rec.Events(), 2)

	// Events hands out a copy.
	events := rec.Events()
	events[0].Proposer = "z"
	assert.Equal(t, "a", rec.Events()[0].Proposer)

	rec.Reset()
	assert.Empty(t, rec.Events())

	_, err = GaleShapleyMatcher(rec, 0).Match(proposers, receivers)
	require.NoError(t, err)
	assert.Len(t, rec.Events(), 2)
	assert.Equal(t, 1, rec.Events()[0].Seq)
}

func TestObserverFunc(t *testing.T) {
	var kinds []string
	obs := ObserverFunc(func(e Event) { kinds = append(kinds, e.Kind.String()) })

	proposers := mustTable(t, person("a", "x"))
	receivers := mustTable(t, person("x", "a"))
	_, err := GaleShapleyMatcher(obs, 0).Match(proposers, receivers)
	require.NoError(t, err)
	assert.Equal(t, []string{"propose", "accept"}, kinds)
	assert.Equal(t, "EventKind(9)", EventKind(9).String())
}
