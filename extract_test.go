// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stablematch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMatches(t *testing.T) {
	t.Run("Idempotent", func(t *testing.T) {
		states := []proposerState{
			{id: "a", match: "y", matched: true},
			{id: "b", match: "x", matched: true},
		}
		first, err := extractMatches(states)
		require.NoError(t, err)
		second, err := extractMatches(states)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, []Pair{{"a", "y"}, {"b", "x"}}, first.Pairs())
	})

	t.Run("Unmatched", func(t *testing.T) {
		states := []proposerState{
			{id: "a", match: "y", matched: true},
			{id: "b", remaining: []string{"x"}},
		}
		matches, err := extractMatches(states)
		assert.Nil(t, matches)
		var ierr *IncompleteMatchingError
		require.True(t, errors.As(err, &ierr))
		assert.Equal(t, "b", ierr.Proposer)
		assert.True(t, errors.Is(err, ErrIncompleteMatching))
	})
}

func TestMatches(t *testing.T) {
	m, err := MatchesOf([]Pair{{"b", "x"}, {"a", "y"}})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())

	p, ok := m.Proposer("x")
	assert.True(t, ok)
	assert.Equal(t, "b", p)
	_, ok = m.Proposer("z")
	assert.False(t, ok)

	r, ok := m.Receiver("a")
	assert.True(t, ok)
	assert.Equal(t, "y", r)

	_, err = MatchesOf([]Pair{{"a", "x"}, {"a", "y"}})
	var merr *MalformedInputError
	require.True(t, errors.As(err, &merr))
	assert.Equal(t, "a", merr.Person)
	assert.Equal(t, "y", merr.ID)
}
