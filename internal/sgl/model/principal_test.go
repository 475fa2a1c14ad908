package model

import (
	"testing"
)

func TestNewPrincipal_RequiresIDOrRoles(t *testing.T) {
	if _, err := NewPrincipal("", nil); err == nil {
		t.Fatal("expected error for empty Principal")
	}
	if _, err := NewPrincipal("", []string{}); err == nil {
		t.Fatal("expected error for empty roles slice")
	}
}

func TestNewPrincipal_CanonicalizesRoles(t *testing.T) {
	p, err := NewPrincipal("", []string{"investor", "employee", "investor"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := p.Roles()
	want := []string{"employee", "investor"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestNewPrincipal_RejectsEmptyRole(t *testing.T) {
	if _, err := NewPrincipal("Bob", []string{"  "}); err == nil {
		t.Fatal("expected error for blank role")
	}
}

func TestPrincipal_ToDict(t *testing.T) {
	cases := []struct {
		name  string
		id    string
		roles []string
		want  map[string]any
	}{
		{"id only", "Bob", nil, map[string]any{"id": "Bob"}},
		{
			"id and roles", "12345", []string{"investor", "employee"},
			map[string]any{"id": "12345", "roles": []any{"employee", "investor"}},
		},
		{"roles only", "", []string{"grandparent"}, map[string]any{"roles": []any{"grandparent"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewPrincipal(tc.id, tc.roles)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := p.ToDict()
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			if id, ok := tc.want["id"]; ok && got["id"] != id {
				t.Fatalf("got id %v, want %v", got["id"], id)
			}
			if roles, ok := tc.want["roles"]; ok {
				gotRoles, _ := got["roles"].([]any)
				wantRoles, _ := roles.([]any)
				if len(gotRoles) != len(wantRoles) {
					t.Fatalf("got roles %v, want %v", gotRoles, wantRoles)
				}
				for i := range wantRoles {
					if gotRoles[i] != wantRoles[i] {
						t.Fatalf("got roles %v, want %v", gotRoles, wantRoles)
					}
				}
			}
		})
	}
}

func TestPrincipal_RoundTrip(t *testing.T) {
	p1, err := NewPrincipal("Bob", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text, err := p1.ToJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p2, err := PrincipalFromJSON(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p1.Equal(p2) {
		t.Fatalf("round trip mismatch: %s", text)
	}

	p3, err := NewPrincipal("12345", []string{"investor", "employee"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text3, err := p3.ToJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p4, err := PrincipalFromJSON(text3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p3.Equal(p4) {
		t.Fatalf("round trip mismatch: %s", text3)
	}
}

func TestPrincipalFromDict_IgnoresUnknownFields(t *testing.T) {
	p1, err := PrincipalFromDict(map[string]any{"id": "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p2, err := PrincipalFromDict(map[string]any{"id": "x", "extra": 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p1.Equal(p2) {
		t.Fatal("expected unknown fields to be ignored")
	}
}

func TestPrincipalFromDict_RejectsBadTypes(t *testing.T) {
	if _, err := PrincipalFromDict(map[string]any{"id": 42}); err == nil {
		t.Fatal("expected error for non-string id")
	}
	if _, err := PrincipalFromDict(map[string]any{"roles": "not-a-list"}); err == nil {
		t.Fatal("expected error for non-list roles")
	}
	if _, err := PrincipalFromDict(nil); err == nil {
		t.Fatal("expected error for nil dict")
	}
}

func TestPrincipal_KeyDistinguishesRoleOnlyPrincipals(t *testing.T) {
	a, err := NewPrincipal("", []string{"grandparent"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewPrincipal("", []string{"grandparent"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Key() == b.Key() {
		t.Fatal("two distinct role-only principals must not share a structural key")
	}
	if !a.Equal(b) {
		t.Fatal("two principals with identical id/roles must compare Equal")
	}
}

func TestPrincipal_KeyMatchesForSameID(t *testing.T) {
	a, err := NewPrincipal("Carl", []string{"grandparent"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewPrincipal("Carl", []string{"grandparent"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Key() != b.Key() {
		t.Fatal("two principals built from the same id must share a structural key")
	}
}
