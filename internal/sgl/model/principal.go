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
	"strings"

	"github.com/google/uuid"
)

// PrincipalKey is a structural, comparable handle for a Principal, suitable
// as a map key. Principals with an id get a key derived from that id, so
// two Principal values built from the same id collapse to one group member
// wherever a group is treated as a set. Principals with only roles get a
// random token minted once at construction: roles alone don't identify an
// actor (two different grandparents can carry the exact same role set), so
// two such Principals must remain distinguishable group members even when
// their roles are identical.
type PrincipalKey struct {
	hasID bool
	id    string
	token uuid.UUID
}

// Principal is an actor in a group: an id, a set of roles, or both.
// Principals are value-typed and immutable after construction.
type Principal struct {
	id    string
	roles []string
	key   PrincipalKey
}

// NewPrincipal validates and constructs a Principal. At least one of id or
// roles must be present and non-empty; roles are canonicalized to a
// sorted, deduplicated sequence.
func NewPrincipal(id string, roles []string) (*Principal, error) {
	hasRoles := len(roles) > 0
	if id == "" && !hasRoles {
		return nil, NewPreconditionViolation(`either "id" or "roles" must have a meaningful value.`)
	}
	p := &Principal{id: id}
	if hasRoles {
		canon := make([]string, 0, len(roles))
		for _, r := range roles {
			if strings.TrimSpace(r) == "" {
				return nil, NewPreconditionViolation(`"roles" must be a non-empty sequence of non-empty str.`)
			}
			canon = append(canon, r)
		}
		sort.Strings(canon)
		canon = slices.Compact(canon)
		p.roles = canon
	}
	if id != "" {
		p.key = PrincipalKey{hasID: true, id: id}
	} else {
		p.key = PrincipalKey{token: uuid.New()}
	}
	return p, nil
}

// ID returns the principal's id, or "" if it has none.
func (p *Principal) ID() string {
	return p.id
}

// Roles returns the principal's canonical (sorted, deduplicated) roles.
// The returned slice must not be mutated by the caller.
func (p *Principal) Roles() []string {
	return p.roles
}

// HasRole reports whether the principal carries the given role.
func (p *Principal) HasRole(role string) bool {
	return slices.Contains(p.roles, role)
}

// Key returns the structural key used by the evaluator's group-as-set
// bookkeeping. It is not part of the wire format.
func (p *Principal) Key() PrincipalKey {
	return p.key
}

// Equal reports whether two Principals represent the same logical actor:
// equal id and equal (canonicalized) roles.
func (p *Principal) Equal(other *Principal) bool {
	if other == nil {
		return false
	}
	return p.id == other.id && slices.Equal(p.roles, other.roles)
}

func (p *Principal) String() string {
	b, err := p.ToJSON()
	if err != nil {
		return ""
	}
	return string(b)
}

// ToDict renders the Principal to its canonical dynamic-dictionary shape.
// An id-and-roles Principal emits both keys; id-only or roles-only emits
// just that key.
func (p *Principal) ToDict() map[string]any {
	out := map[string]any{}
	if p.id != "" {
		out["id"] = p.id
	}
	if len(p.roles) > 0 {
		roles := make([]any, len(p.roles))
		for i, r := range p.roles {
			roles[i] = r
		}
		out["roles"] = roles
	}
	return out
}

// ToJSON renders the Principal to canonical JSON text.
func (p *Principal) ToJSON() ([]byte, error) {
	return encodeDict(p.ToDict())
}

// PrincipalFromDict builds a Principal from a dynamic dictionary. Unknown
// keys are ignored for forward compatibility.
func PrincipalFromDict(value map[string]any) (*Principal, error) {
	if value == nil {
		return nil, NewPreconditionViolation(`"value" must be a dict`)
	}
	var id string
	if raw, ok := value["id"]; ok {
		s, ok := asString(raw)
		if !ok {
			return nil, NewPreconditionViolation(`"id" must be a str, not %T.`, raw)
		}
		id = s
	}
	var roles []string
	if raw, ok := value["roles"]; ok {
		r, ok := asStringSlice(raw)
		if !ok {
			return nil, NewPreconditionViolation(`"roles" must be a non-empty sequence of str.`)
		}
		roles = r
	}
	return NewPrincipal(id, roles)
}

// PrincipalFromJSON parses JSON text into a Principal.
func PrincipalFromJSON(text []byte) (*Principal, error) {
	dict, err := decodeDict(text)
	if err != nil {
		return nil, err
	}
	return PrincipalFromDict(dict)
}
