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

import (
	"slices"
	"sort"
)

// Rule pairs a sorted-deduplicated, non-empty set of privilege strings
// (Grant) with a single Criterion (When) describing who is authorized.
// Rules are value-typed and immutable after construction.
type Rule struct {
	grant []string
	when  Criterion
}

// NewRule validates and constructs a Rule. grant must be a non-empty
// sequence of non-empty strings; it is canonicalized to sorted-unique.
func NewRule(grant []string, when Criterion) (*Rule, error) {
	if len(grant) == 0 {
		return nil, NewPreconditionViolation(`"grant" must be a non-empty sequence of str.`)
	}
	for _, g := range grant {
		if g == "" {
			return nil, NewPreconditionViolation(`"grant" must be a non-empty sequence of non-empty str.`)
		}
	}
	if when == nil {
		return nil, NewPreconditionViolation(`"when" must be a Criterion.`)
	}
	canon := make([]string, len(grant))
	copy(canon, grant)
	sort.Strings(canon)
	canon = slices.Compact(canon)
	return &Rule{grant: canon, when: when}, nil
}

// Grant returns the rule's canonical (sorted, deduplicated) privileges.
func (r *Rule) Grant() []string {
	return r.grant
}

// When returns the rule's Criterion.
func (r *Rule) When() Criterion {
	return r.when
}

// Equal reports structural equality with another Rule.
func (r *Rule) Equal(other *Rule) bool {
	if other == nil {
		return false
	}
	return slices.Equal(r.grant, other.grant) && r.when.Equal(other.when)
}

// ToDict renders the Rule to its canonical dynamic-dictionary shape:
// {"grant": [...], "when": Criterion}.
func (r *Rule) ToDict() map[string]any {
	grant := make([]any, len(r.grant))
	for i, g := range r.grant {
		grant[i] = g
	}
	return map[string]any{
		"grant": grant,
		"when":  r.when.ToDict(),
	}
}

// ToJSON renders the Rule to canonical JSON text.
func (r *Rule) ToJSON() ([]byte, error) {
	return encodeDict(r.ToDict())
}

// RuleFromDict builds a Rule from a dynamic dictionary. "when" is the
// canonical key for the Criterion; the legacy "to" key (an earlier dialect
// of this language) is also accepted on input, but never emitted.
func RuleFromDict(value map[string]any) (*Rule, error) {
	if value == nil {
		return nil, NewPreconditionViolation(`"value" must be a dict`)
	}
	grantRaw, ok := value["grant"]
	if !ok {
		return nil, NewPreconditionViolation(`"grant" is required.`)
	}
	grant, ok := asStringSlice(grantRaw)
	if !ok {
		return nil, NewPreconditionViolation(`"grant" must be a non-empty sequence of str, not %T.`, grantRaw)
	}

	whenRaw, ok := value["when"]
	if !ok {
		whenRaw, ok = value["to"]
	}
	if !ok {
		return nil, NewPreconditionViolation(`"when" is required.`)
	}
	whenDict, ok := whenRaw.(map[string]any)
	if !ok {
		return nil, NewPreconditionViolation(`"when" must be a Criterion dict, not %T.`, whenRaw)
	}
	when, err := CriterionFromDict(whenDict)
	if err != nil {
		return nil, err
	}
	return NewRule(grant, when)
}

// RuleFromJSON parses JSON text into a Rule.
func RuleFromJSON(text []byte) (*Rule, error) {
	dict, err := decodeDict(text)
	if err != nil {
		return nil, err
	}
	return RuleFromDict(dict)
}
