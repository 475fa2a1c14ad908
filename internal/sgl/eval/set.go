/*******************************************************************************
* Copyright (C) 2026 the structuredgrant Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

// Package eval implements the two evaluators for the structured grant
// language's criterion tree: a non-disjoint walk that lets conjuncts reuse
// the whole group, and a disjoint-subset search that requires sibling
// conjuncts of an All to be satisfied by non-overlapping subsets.
package eval

import "github.com/fraunhofer-iese/structuredgrant/internal/sgl/model"

// principalSet represents a group (or subset of one) keyed by each
// Principal's structural key, so that membership and set-difference are
// well-defined even for principals that carry only roles.
type principalSet map[model.PrincipalKey]*model.Principal

// DedupGroup normalizes a caller-supplied sequence of Principals into an
// unordered collection with duplicates collapsed by structural key —
// the Go equivalent of the Python entry point's `group = set(group)`.
// Evaluate assumes this has already happened: it iterates the slice
// directly and would otherwise double-count a repeated principal, and
// EvaluateDisjoint hands every shape except All to Evaluate.
func DedupGroup(group []*model.Principal) []*model.Principal {
	return newPrincipalSet(group).slice()
}

func newPrincipalSet(group []*model.Principal) principalSet {
	s := make(principalSet, len(group))
	for _, p := range group {
		s[p.Key()] = p
	}
	return s
}

func (s principalSet) slice() []*model.Principal {
	out := make([]*model.Principal, 0, len(s))
	for _, p := range s {
		out = append(out, p)
	}
	return out
}

// remainder returns the principals in s that are not in sub.
func (s principalSet) remainder(sub principalSet) principalSet {
	out := make(principalSet, len(s)-len(sub))
	for k, p := range s {
		if _, excluded := sub[k]; !excluded {
			out[k] = p
		}
	}
	return out
}

// union returns a new set containing every principal in s and in other.
func (s principalSet) union(other principalSet) principalSet {
	out := make(principalSet, len(s)+len(other))
	for k, p := range s {
		out[k] = p
	}
	for k, p := range other {
		out[k] = p
	}
	return out
}

func unionAll(sets []principalSet) principalSet {
	out := principalSet{}
	for _, s := range sets {
		out = out.union(s)
	}
	return out
}
