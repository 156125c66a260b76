// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stablematch

import (
	"fmt"
	"sort"
)

// PreferenceTable holds one group's ranked preference lists. It is
// immutable once built; input order of people is preserved.
type PreferenceTable struct {
	people []Person
	index  map[string]int
	ranks  []map[string]int // candidate -> position, per person
}

// NewPreferenceTable copies people into a new table. It rejects empty or
// duplicate person ids and lists that rank the same id twice; whether the
// lists cover the opposite group is checked by ValidatePair.
func NewPreferenceTable(people []Person) (*PreferenceTable, error) {
	t := &PreferenceTable{
		people: make([]Person, len(people)),
		index:  make(map[string]int, len(people)),
		ranks:  make([]map[string]int, len(people)),
	}

	for i, person := range people {
		if person.ID == "" {
			return nil, &MalformedInputError{Reason: "has a person with an empty id"}
		}
		if _, dup := t.index[person.ID]; dup {
			return nil, &MalformedInputError{Reason: "has a duplicate person", ID: person.ID}
		}

		prefs := make([]string, len(person.Preferences))
		rank := make(map[string]int, len(person.Preferences))
		for j, id := range person.Preferences {
			if _, dup := rank[id]; dup {
				return nil, &MalformedInputError{Person: person.ID, Reason: "ranks twice", ID: id}
			}
			prefs[j] = id
			rank[id] = j
		}

		t.people[i] = Person{ID: person.ID, Preferences: prefs}
		t.index[person.ID] = i
		t.ranks[i] = rank
	}

	return t, nil
}

// NewPreferenceTableFromMap builds a table ordered by person id.
func NewPreferenceTableFromMap(prefs map[string][]string) (*PreferenceTable, error) {
	people := make([]Person, 0, len(prefs))
	for id, order := range prefs {
		people = append(people, Person{ID: id, Preferences: order})
	}
	sort.Slice(people, func(i, j int) bool {
		return people[i].ID < people[j].ID
	})
	return NewPreferenceTable(people)
}

func (t *PreferenceTable) Len() int {
	return len(t.people)
}

// IDs returns the person ids in input order.
func (t *PreferenceTable) IDs() []string {
	ids := make([]string, len(t.people))
	for i, p := range t.people {
		ids[i] = p.ID
	}
	return ids
}

func (t *PreferenceTable) Has(id string) bool {
	_, ok := t.index[id]
	return ok
}

// Preferences returns a copy of id's preference list.
func (t *PreferenceTable) Preferences(id string) ([]string, bool) {
	i, ok := t.index[id]
	if !ok {
		return nil, false
	}
	return append([]string(nil), t.people[i].Preferences...), true
}

// People returns a copy of every record in input order.
func (t *PreferenceTable) People() []Person {
	people := make([]Person, len(t.people))
	for i, p := range t.people {
		people[i] = Person{ID: p.ID, Preferences: append([]string(nil), p.Preferences...)}
	}
	return people
}

// Rank returns the position of candidate in id's list, 0 being the best.
func (t *PreferenceTable) Rank(id, candidate string) (int, bool) {
	i, ok := t.index[id]
	if !ok {
		return 0, false
	}
	r, ok := t.ranks[i][candidate]
	return r, ok
}

// ValidatePair checks that both tables have the same size and that every
// list ranks each member of the opposite group exactly once.
func ValidatePair(proposers, receivers *PreferenceTable) error {
	if proposers.Len() != receivers.Len() {
		return &MalformedInputError{
			Reason: fmt.Sprintf("group sizes differ: %d proposers, %d receivers", proposers.Len(), receivers.Len()),
		}
	}
	if err := proposers.covers(receivers, GroupProposers); err != nil {
		return err
	}
	return receivers.covers(proposers, GroupReceivers)
}

func (t *PreferenceTable) covers(other *PreferenceTable, group string) error {
	for _, p := range t.people {
		for _, id := range p.Preferences {
			if !other.Has(id) {
				return &MalformedInputError{Group: group, Person: p.ID, Reason: "references unknown id", ID: id}
			}
		}
		// No duplicates and no unknown ids, so a short list must miss someone.
		if len(p.Preferences) != other.Len() {
			for _, o := range other.people {
				if _, ok := t.ranks[t.index[p.ID]][o.ID]; !ok {
					return &MalformedInputError{Group: group, Person: p.ID, Reason: "omits", ID: o.ID}
				}
			}
		}
	}
	return nil
}
