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

// Evaluate answers satisfaction when overlap between the subsets used to
// satisfy sibling conjuncts is allowed: All and Any both re-use the entire
// group for each child, so the same principal may satisfy multiple
// conjuncts at once.
func Evaluate(group []*model.Principal, c model.Criterion) bool {
	switch cc := c.(type) {
	case model.IDCriterion:
		for _, p := range group {
			if p.ID() == cc.ID {
				return true
			}
		}
		return false

	case model.RoleCriterion:
		need := cc.N
		count := 0
		for _, p := range group {
			if p.HasRole(cc.Role) {
				count++
				if count >= need {
					return true
				}
			}
		}
		return false

	case model.AnyCriterion:
		need := cc.N
		matched := 0
		for _, child := range cc.Children {
			if Evaluate(group, child) {
				matched++
				if matched >= need {
					return true
				}
			}
		}
		return false

	case model.AllCriterion:
		for _, child := range cc.Children {
			if !Evaluate(group, child) {
				return false
			}
		}
		return true

	default:
		return false
	}
}
