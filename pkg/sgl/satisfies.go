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

import (
	"github.com/fraunhofer-iese/structuredgrant/internal/sgl/eval"
	"github.com/fraunhofer-iese/structuredgrant/internal/sgl/model"
)

// Satisfies reports whether group is authorized under ruleOrCriterion,
// using the disjoint-subset evaluator (the documented default — conjuncts
// of an All must be satisfied by non-overlapping subsets of group).
//
// group may be a *Principal, a non-empty []*Principal, or a dict (coerced
// to a single Principal). ruleOrCriterion may be a *Rule, a Criterion, or
// a dict: a dict with a "when" key (or the legacy "to" key) is treated as
// a Rule and that key's value becomes the Criterion; otherwise the whole
// dict is parsed as a Criterion.
func Satisfies(group any, ruleOrCriterion any) (bool, error) {
	return satisfies(group, ruleOrCriterion, true)
}

// SatisfiesMode is Satisfies with explicit control over evaluation mode.
// disjoint=false lets sibling conjuncts of an All reuse the whole group,
// so the same principal may satisfy more than one conjunct at once.
func SatisfiesMode(group any, ruleOrCriterion any, disjoint bool) (bool, error) {
	return satisfies(group, ruleOrCriterion, disjoint)
}

func satisfies(groupInput, ruleInput any, disjoint bool) (bool, error) {
	group, err := groupFromAny(groupInput)
	if err != nil {
		return false, err
	}
	criterion, err := criterionFromAny(ruleInput)
	if err != nil {
		return false, err
	}

	deduped := eval.DedupGroup(group)
	if disjoint {
		return eval.EvaluateDisjoint(deduped, criterion), nil
	}
	return eval.Evaluate(deduped, criterion), nil
}

func groupFromAny(input any) ([]*model.Principal, error) {
	switch v := input.(type) {
	case *model.Principal:
		if v == nil {
			return nil, model.NewPreconditionViolation(`"group" cannot be empty.`)
		}
		return []*model.Principal{v}, nil

	case []*model.Principal:
		if len(v) == 0 {
			return nil, model.NewPreconditionViolation(`"group" cannot be empty.`)
		}
		return v, nil

	case map[string]any:
		if len(v) == 0 {
			return nil, model.NewPreconditionViolation(`"group" cannot be empty.`)
		}
		p, err := model.PrincipalFromDict(v)
		if err != nil {
			return nil, err
		}
		return []*model.Principal{p}, nil

	default:
		return nil, model.NewPreconditionViolation(
			`"group" must be a Principal, a non-empty sequence of Principal, or a dict, not %T.`, input)
	}
}

func criterionFromAny(input any) (model.Criterion, error) {
	switch v := input.(type) {
	case *model.Rule:
		if v == nil {
			return nil, model.NewPreconditionViolation(`"rule" cannot be empty.`)
		}
		return v.When(), nil

	case model.Criterion:
		if v == nil {
			return nil, model.NewPreconditionViolation(`"rule" cannot be empty.`)
		}
		return v, nil

	case map[string]any:
		if len(v) == 0 {
			return nil, model.NewPreconditionViolation(`"rule" cannot be empty.`)
		}
		whenRaw, ok := v["when"]
		if !ok {
			whenRaw, ok = v["to"]
		}
		if ok {
			whenDict, ok := whenRaw.(map[string]any)
			if !ok {
				return nil, model.NewPreconditionViolation(`"when" must be a Criterion dict, not %T.`, whenRaw)
			}
			return model.CriterionFromDict(whenDict)
		}
		return model.CriterionFromDict(v)

	default:
		return nil, model.NewPreconditionViolation(
			`"rule" must be a Rule, Criterion, or non-empty dict, not %T.`, input)
	}
}
