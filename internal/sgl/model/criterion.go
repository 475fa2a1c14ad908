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

package model

// Criterion is a node in the who-is-authorized tree: exactly one of Id,
// Role, All, or Any. It is modeled as a sum type — an interface
// implemented by exactly four concrete types — rather than a struct with
// four optional fields, so that "exactly one shape" is a property of the
// type system and evaluators dispatch with an exhaustive type switch
// instead of a cascade of presence checks.
type Criterion interface {
	isCriterion()
	// ToDict renders the criterion to its canonical dynamic-dictionary shape.
	ToDict() map[string]any
	// Equal reports structural equality with another Criterion.
	Equal(other Criterion) bool
}

// IDCriterion matches any principal whose id equals ID.
type IDCriterion struct {
	ID string
}

func (IDCriterion) isCriterion() {}

func (c IDCriterion) ToDict() map[string]any {
	return map[string]any{"id": c.ID}
}

func (c IDCriterion) Equal(other Criterion) bool {
	o, ok := other.(IDCriterion)
	return ok && c.ID == o.ID
}

// RoleCriterion matches when at least N principals in the evaluated set
// carry Role. N defaults to 1.
type RoleCriterion struct {
	Role string
	N    int
}

func (RoleCriterion) isCriterion() {}

func (c RoleCriterion) ToDict() map[string]any {
	if c.N == 1 {
		return map[string]any{"role": c.Role}
	}
	return map[string]any{"role": c.Role, "n": c.N}
}

func (c RoleCriterion) Equal(other Criterion) bool {
	o, ok := other.(RoleCriterion)
	return ok && c.Role == o.Role && c.N == o.N
}

// AllCriterion is a conjunction over a non-empty, ordered sequence of
// children: every child must be satisfied.
type AllCriterion struct {
	Children []Criterion
}

func (AllCriterion) isCriterion() {}

func (c AllCriterion) ToDict() map[string]any {
	children := make([]any, len(c.Children))
	for i, ch := range c.Children {
		children[i] = ch.ToDict()
	}
	return map[string]any{"all": children}
}

func (c AllCriterion) Equal(other Criterion) bool {
	o, ok := other.(AllCriterion)
	if !ok || len(c.Children) != len(o.Children) {
		return false
	}
	for i := range c.Children {
		if !c.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

// AnyCriterion is a disjunction over a non-empty, ordered sequence of
// children: at least N of them must be satisfied. N defaults to 1.
type AnyCriterion struct {
	Children []Criterion
	N        int
}

func (AnyCriterion) isCriterion() {}

func (c AnyCriterion) ToDict() map[string]any {
	children := make([]any, len(c.Children))
	for i, ch := range c.Children {
		children[i] = ch.ToDict()
	}
	if c.N == 1 {
		return map[string]any{"any": children}
	}
	return map[string]any{"any": children, "n": c.N}
}

func (c AnyCriterion) Equal(other Criterion) bool {
	o, ok := other.(AnyCriterion)
	if !ok || c.N != o.N || len(c.Children) != len(o.Children) {
		return false
	}
	for i := range c.Children {
		if !c.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

// ID builds an Id(s) criterion.
func ID(id string) (Criterion, error) {
	if id == "" {
		return nil, NewPreconditionViolation(`"id" must be a non-empty str.`)
	}
	return IDCriterion{ID: id}, nil
}

// Role builds a Role criterion with the default threshold (n=1).
func Role(role string) (Criterion, error) {
	return RoleN(role, 1)
}

// RoleN builds a Role criterion requiring at least n principals carrying
// role. n must be a positive integer.
func RoleN(role string, n int) (Criterion, error) {
	if role == "" {
		return nil, NewPreconditionViolation(`"role" must be a non-empty str.`)
	}
	if n <= 0 {
		return nil, NewPreconditionViolation(`"n" must be a positive integer.`)
	}
	return RoleCriterion{Role: role, N: n}, nil
}

// All builds a conjunction over a non-empty sequence of children.
func All(children ...Criterion) (Criterion, error) {
	if len(children) == 0 {
		return nil, NewPreconditionViolation(`"all" must be a non-empty sequence of Criterion.`)
	}
	return AllCriterion{Children: children}, nil
}

// Any builds a disjunction over a non-empty sequence of children, requiring
// at least one of them (n=1).
func Any(children ...Criterion) (Criterion, error) {
	return AnyN(1, children...)
}

// AnyN builds a disjunction over a non-empty sequence of children,
// requiring at least n of them. n must be a positive integer.
func AnyN(n int, children ...Criterion) (Criterion, error) {
	if len(children) == 0 {
		return nil, NewPreconditionViolation(`"any" must be a non-empty sequence of Criterion.`)
	}
	if n <= 0 {
		return nil, NewPreconditionViolation(`"n" must be a positive integer.`)
	}
	return AnyCriterion{Children: children, N: n}, nil
}
