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

func TestNewPreferenceTable(t *testing.T) {
	t.Run("CopiesInput", func(t *testing.T) {
		people := []Person{person("b", "y", "x"), person("a", "x", "y")}
		table, err := NewPreferenceTable(people)
		require.NoError(t, err)

		people[0].Preferences[0] = "z"
		prefs, ok := table.Preferences("b")
		require.True(t, ok)
		assert.Equal(t, []string{"y", "x"}, prefs)

		prefs[1] = "z"
		again, _ := table.Preferences("b")
		assert.Equal(t, []string{"y", "x"}, again)

		assert.Equal(t, []string{"b", "a"}, table.IDs())
		assert.Equal(t, 2, table.Len())
	})

	t.Run("Rank", func(t *testing.T) {
		table := mustTable(t, person("a", "x", "y", "z"))
		r, ok := table.Rank("a", "z")
		assert.True(t, ok)
		assert.Equal(t, 2, r)
		_, ok = table.Rank("a", "w")
		assert.False(t, ok)
		_, ok = table.Rank("q", "x")
		assert.False(t, ok)
	})

	t.Run("FromMap", func(t *testing.T) {
		table, err := NewPreferenceTableFromMap(map[string][]string{
			"c": {"x"}, "a": {"x"}, "b": {"x"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, table.IDs())
	})

	cases := []struct {
		name   string
		people []Person
	}{
		{"EmptyID", []Person{person("", "x")}},
		{"DuplicatePerson", []Person{person("a", "x"), person("a", "x")}},
		{"DuplicatePreference", []Person{person("a", "x", "x")}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewPreferenceTable(c.people)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedInput))
		})
	}
}

func TestValidatePair(t *testing.T) {
	receivers := mustTable(t, person("x", "a", "b"), person("y", "b", "a"))

	t.Run("Valid", func(t *testing.T) {
		proposers := mustTable(t, person("a", "y", "x"), person("b", "x", "y"))
		assert.NoError(t, ValidatePair(proposers, receivers))
	})

	t.Run("Omits", func(t *testing.T) {
		proposers := mustTable(t, person("a", "y"), person("b", "x", "y"))
		err := ValidatePair(proposers, receivers)
		var merr *MalformedInputError
		require.True(t, errors.As(err, &merr))
		assert.Equal(t, "a", merr.Person)
		assert.Equal(t, "x", merr.ID)
		assert.Contains(t, err.Error(), `person "a"`)
	})

	t.Run("Unknown", func(t *testing.T) {
		proposers := mustTable(t, person("a", "y", "w"), person("b", "x", "y"))
		err := ValidatePair(proposers, receivers)
		var merr *MalformedInputError
		require.True(t, errors.As(err, &merr))
		assert.Equal(t, "w", merr.ID)
	})

	t.Run("Sizes", func(t *testing.T) {
		proposers := mustTable(t, person("a", "y", "x"))
		err := ValidatePair(proposers, receivers)
		assert.True(t, errors.Is(err, ErrMalformedInput))
		assert.Contains(t, err.Error(), "1 proposers, 2 receivers")
	})
}
