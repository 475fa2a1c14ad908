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

// CriterionFromDict builds a Criterion from a dynamic dictionary. Exactly
// one of "id", "role" (or the legacy alias "roles", accepted on input
// only), "all", or "any" must be present; construction fails otherwise,
// the same "exactly one of ACL or USEACL" shape check the teacher's
// AccessPermissionRule.UnmarshalJSON performs for its own mutually
// exclusive fields. Unknown keys are ignored for forward compatibility.
func CriterionFromDict(value map[string]any) (Criterion, error) {
	if value == nil {
		return nil, NewPreconditionViolation(`"value" must be a dict`)
	}

	idRaw, hasID := value["id"]
	roleRaw, hasRole := value["role"]
	if !hasRole {
		roleRaw, hasRole = value["roles"]
	}
	allRaw, hasAll := value["all"]
	anyRaw, hasAny := value["any"]

	shapes := 0
	for _, present := range []bool{hasID, hasRole, hasAll, hasAny} {
		if present {
			shapes++
		}
	}
	if shapes != 1 {
		return nil, NewPreconditionViolation(
			`exactly one of "id", "role", "all", or "any" must be specified, got %d.`, shapes)
	}

	switch {
	case hasID:
		s, ok := asString(idRaw)
		if !ok {
			return nil, NewPreconditionViolation(`"id" must be a str, not %T.`, idRaw)
		}
		return ID(s)

	case hasRole:
		role, ok := asString(roleRaw)
		if !ok {
			return nil, NewPreconditionViolation(`"role" must be a str, not %T.`, roleRaw)
		}
		n := 1
		if raw, ok := value["n"]; ok {
			parsed, err := asPositiveInt(raw)
			if err != nil {
				return nil, err
			}
			n = parsed
		}
		return RoleN(role, n)

	case hasAll:
		dicts, ok := asDictSlice(allRaw)
		if !ok {
			return nil, NewPreconditionViolation(`"all" must be a non-empty sequence of Criterion.`)
		}
		children, err := criteriaFromDicts(dicts)
		if err != nil {
			return nil, err
		}
		return All(children...)

	default: // hasAny
		dicts, ok := asDictSlice(anyRaw)
		if !ok {
			return nil, NewPreconditionViolation(`"any" must be a non-empty sequence of Criterion.`)
		}
		children, err := criteriaFromDicts(dicts)
		if err != nil {
			return nil, err
		}
		n := 1
		if raw, ok := value["n"]; ok {
			parsed, err := asPositiveInt(raw)
			if err != nil {
				return nil, err
			}
			n = parsed
		}
		return AnyN(n, children...)
	}
}

func criteriaFromDicts(dicts []map[string]any) ([]Criterion, error) {
	out := make([]Criterion, 0, len(dicts))
	for _, d := range dicts {
		c, err := CriterionFromDict(d)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// CriterionFromJSON parses JSON text into a Criterion.
func CriterionFromJSON(text []byte) (Criterion, error) {
	dict, err := decodeDict(text)
	if err != nil {
		return nil, err
	}
	return CriterionFromDict(dict)
}

// CriterionToJSON renders a Criterion to canonical JSON text.
func CriterionToJSON(c Criterion) ([]byte, error) {
	return encodeDict(c.ToDict())
}
