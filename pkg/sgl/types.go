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

package sgl

import "github.com/fraunhofer-iese/structuredgrant/internal/sgl/model"

// Principal is an actor in a group: an id, a set of roles, or both.
type Principal = model.Principal

// Criterion is a node in the who-is-authorized tree: Id, Role, All, or Any.
type Criterion = model.Criterion

// Rule pairs a set of granted privileges with a Criterion describing who
// is authorized to receive them.
type Rule = model.Rule

// PreconditionViolation is raised when a caller-supplied value violates a
// documented constraint: an empty group, a malformed Criterion shape, and
// so on. There is no recovery path.
type PreconditionViolation = model.PreconditionViolation

// NewPrincipal validates and constructs a Principal. At least one of id or
// roles must be present; roles are canonicalized to sorted-unique.
func NewPrincipal(id string, roles []string) (*Principal, error) {
	return model.NewPrincipal(id, roles)
}

// PrincipalFromDict builds a Principal from a dynamic dictionary.
func PrincipalFromDict(value map[string]any) (*Principal, error) {
	return model.PrincipalFromDict(value)
}

// PrincipalFromJSON parses JSON text into a Principal.
func PrincipalFromJSON(text []byte) (*Principal, error) {
	return model.PrincipalFromJSON(text)
}

// ID builds an Id(s) criterion, matching any principal whose id equals s.
func ID(id string) (Criterion, error) {
	return model.ID(id)
}

// Role builds a Role criterion with the default threshold (n=1).
func Role(role string) (Criterion, error) {
	return model.Role(role)
}

// RoleN builds a Role criterion requiring at least n principals carrying
// role.
func RoleN(role string, n int) (Criterion, error) {
	return model.RoleN(role, n)
}

// All builds a conjunction over a non-empty sequence of children.
func All(children ...Criterion) (Criterion, error) {
	return model.All(children...)
}

// Any builds a disjunction requiring at least one of a non-empty sequence
// of children (n=1).
func Any(children ...Criterion) (Criterion, error) {
	return model.Any(children...)
}

// AnyN builds a disjunction requiring at least n of a non-empty sequence of
// children.
func AnyN(n int, children ...Criterion) (Criterion, error) {
	return model.AnyN(n, children...)
}

// CriterionFromDict builds a Criterion from a dynamic dictionary.
func CriterionFromDict(value map[string]any) (Criterion, error) {
	return model.CriterionFromDict(value)
}

// CriterionFromJSON parses JSON text into a Criterion.
func CriterionFromJSON(text []byte) (Criterion, error) {
	return model.CriterionFromJSON(text)
}

// CriterionToJSON renders a Criterion to canonical JSON text.
func CriterionToJSON(c Criterion) ([]byte, error) {
	return model.CriterionToJSON(c)
}

// NewRule validates and constructs a Rule.
func NewRule(grant []string, when Criterion) (*Rule, error) {
	return model.NewRule(grant, when)
}

// RuleFromDict builds a Rule from a dynamic dictionary.
func RuleFromDict(value map[string]any) (*Rule, error) {
	return model.RuleFromDict(value)
}

// RuleFromJSON parses JSON text into a Rule.
func RuleFromJSON(text []byte) (*Rule, error) {
	return model.RuleFromJSON(text)
}
