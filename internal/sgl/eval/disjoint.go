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

package eval

import "github.com/fraunhofer-iese/structuredgrant/internal/sgl/model"

// EvaluateDisjoint decides whether the group can be partitioned into
// non-overlapping subsets, one per conjunct of an All criterion, such that
// every conjunct is satisfied by its assigned subset. Only All triggers
// the disjoint search: Id and Role are leaves, and Any's alternatives are
// not all required at once, so they fall back to the non-disjoint walk.
// This means disjointness propagates only through All — an Any nested
// inside a disjoint All shares the group among its own alternatives.
func EvaluateDisjoint(group []*model.Principal, c model.Criterion) bool {
	all, ok := c.(model.AllCriterion)
	if !ok {
		return Evaluate(group, c)
	}
	subsets := mmsAll(newPrincipalSet(group), all.Children)
	return len(subsets) > 0
}

// minSize returns the fewest principals that could possibly satisfy c,
// used to prune recursion in mmsAll before trying a remainder group that's
// provably too small.
func minSize(c model.Criterion) int {
	switch cc := c.(type) {
	case model.IDCriterion:
		return 1
	case model.RoleCriterion:
		return cc.N
	case model.AnyCriterion:
		min := -1
		for _, child := range cc.Children {
			m := minSize(child)
			if min == -1 || m < min {
				min = m
			}
		}
		if min == -1 {
			return 0
		}
		return min
	case model.AllCriterion:
		total := 0
		for _, child := range cc.Children {
			total += minSize(child)
		}
		return total
	default:
		return 0
	}
}

func minSizeChildren(children []model.Criterion) int {
	total := 0
	for _, child := range children {
		total += minSize(child)
	}
	return total
}

// mms returns every minimal matching subset of group that satisfies c: a
// subset from which no member can be dropped while still satisfying c.
// Where c contains an Any, the subsets built from it are the flattened
// unions described on mmsAny and need not be minimal.
func mms(group principalSet, c model.Criterion) []principalSet {
	switch cc := c.(type) {
	case model.IDCriterion:
		return mmsID(group, cc)
	case model.RoleCriterion:
		return mmsRole(group, cc)
	case model.AnyCriterion:
		return mmsAny(group, cc)
	case model.AllCriterion:
		return mmsAll(group, cc.Children)
	default:
		return nil
	}
}

func mmsID(group principalSet, c model.IDCriterion) []principalSet {
	var out []principalSet
	for _, p := range group {
		if p.ID() == c.ID {
			out = append(out, principalSet{p.Key(): p})
		}
	}
	return out
}

func mmsRole(group principalSet, c model.RoleCriterion) []principalSet {
	var withRole []*model.Principal
	for _, p := range group {
		if p.HasRole(c.Role) {
			withRole = append(withRole, p)
		}
	}
	var out []principalSet
	eachCombination(withRole, c.N, func(combo []*model.Principal) {
		s := make(principalSet, len(combo))
		for _, p := range combo {
			s[p.Key()] = p
		}
		out = append(out, s)
	})
	return out
}

// mmsAny returns, for each child with a non-empty MMS, the flattened union
// of that child's matching subsets as a single contributed subset (n=1);
// for n>1, every size-n combination of such children contributes the
// union of their flattened supports. This flattens "any one child
// suffices" into "all principals that satisfy any (chosen) child are
// consumed" rather than returning each witness individually — the
// conservative behavior spec.md §9 note 2 calls out as a known,
// intentionally preserved limitation of the disjoint search.
func mmsAny(group principalSet, c model.AnyCriterion) []principalSet {
	var supports []principalSet
	for _, child := range c.Children {
		sub := mms(group, child)
		if len(sub) == 0 {
			continue
		}
		supports = append(supports, unionAll(sub))
	}
	if len(supports) == 0 {
		return nil
	}
	if c.N <= 1 {
		return supports
	}
	var out []principalSet
	eachIndexCombination(len(supports), c.N, func(idxs []int) {
		merged := principalSet{}
		for _, i := range idxs {
			merged = merged.union(supports[i])
		}
		out = append(out, merged)
	})
	return out
}

// mmsAll enumerates disjoint-subset solutions for a conjunction: take each
// minimal matching subset of the first child, then recurse on the
// remaining children against the group remainder, pruning branches that
// cannot possibly succeed.
func mmsAll(group principalSet, children []model.Criterion) []principalSet {
	if len(children) == 0 {
		return nil
	}
	first := children[0]
	subsets := mms(group, first)
	if len(subsets) == 0 {
		return nil
	}
	// Singleton-conjunction shortcut: an All with one child delegates
	// directly to that child's MMS.
	if len(children) == 1 {
		return subsets
	}

	rest := children[1:]
	minRestSize := minSizeChildren(rest)
	groupLen := len(group)

	var out []principalSet
	for _, subset := range subsets {
		if groupLen-len(subset) < minRestSize {
			continue
		}
		remainder := group.remainder(subset)
		if len(remainder) == 0 {
			continue
		}
		restSubsets := mmsAll(remainder, rest)
		for _, t := range restSubsets {
			out = append(out, t.union(subset))
		}
	}
	return out
}
