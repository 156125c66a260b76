// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stablematch

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput indicates a structurally invalid preference table.
	ErrMalformedInput = errors.New("stablematch: malformed input")
	// ErrUnknownCandidate indicates a comparison on an id absent from a preference list.
	ErrUnknownCandidate = errors.New("stablematch: unknown candidate")
	// ErrIncompleteMatching indicates a proposer without a match at extraction time.
	ErrIncompleteMatching = errors.New("stablematch: incomplete matching")
	// ErrInternalInvariant indicates the engine's own guarantees were violated.
	ErrInternalInvariant = errors.New("stablematch: internal invariant violated")
)

// Group names used in MalformedInputError.
const (
	GroupProposers = "proposers"
	GroupReceivers = "receivers"
)

type MalformedInputError struct {
	Group  string // may be empty when the table is not yet assigned a side
	Person string
	ID     string // offending id, if any
	Reason string
}

func (e *MalformedInputError) Error() string {
	msg := ErrMalformedInput.Error() + ":"
	if e.Group != "" {
		msg += " " + e.Group
	}
	if e.Person != "" {
		msg += fmt.Sprintf(" person %q", e.Person)
	}
	msg += " " + e.Reason
	if e.ID != "" {
		msg += fmt.Sprintf(" %q", e.ID)
	}
	return msg
}

func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

type UnknownCandidateError struct {
	Person    string // owner of the preference list, empty for a bare list
	Candidate string // empty when Person itself has no list
}

func (e *UnknownCandidateError) Error() string {
	if e.Candidate == "" {
		return fmt.Sprintf("%v: no preference list for %q", ErrUnknownCandidate, e.Person)
	}
	if e.Person == "" {
		return fmt.Sprintf("%v: %q", ErrUnknownCandidate, e.Candidate)
	}
	return fmt.Sprintf("%v: %q not ranked by %q", ErrUnknownCandidate, e.Candidate, e.Person)
}

func (e *UnknownCandidateError) Is(target error) bool {
	return target == ErrUnknownCandidate
}

type IncompleteMatchingError struct {
	Proposer string
}

func (e *IncompleteMatchingError) Error() string {
	return fmt.Sprintf("%v: proposer %q is unmatched", ErrIncompleteMatching, e.Proposer)
}

func (e *IncompleteMatchingError) Is(target error) bool {
	return target == ErrIncompleteMatching
}

type InternalInvariantError struct {
	Proposer string
	Reason   string
}

func (e *InternalInvariantError) Error() string {
	if e.Proposer == "" {
		return fmt.Sprintf("%v: %s", ErrInternalInvariant, e.Reason)
	}
	return fmt.Sprintf("%v: proposer %q %s", ErrInternalInvariant, e.Proposer, e.Reason)
}

func (e *InternalInvariantError) Is(target error) bool {
	return target == ErrInternalInvariant
}
