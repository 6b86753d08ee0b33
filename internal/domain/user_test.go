package domain

import "testing"

func TestRoleValid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		role Role
		want bool
	}{
		{RoleUser, true},
		{RoleAdmin, true},
		{Role(""), false},
		{Role("superadmin"), false},
		{Role("Admin"), false}, // roles are case-sensitive
	}
	for _, tc := range cases {
		if got := tc.role.Valid(); got != tc.want {
			t.Fatalf("Valid(%q) = %v, want %v", tc.role, got, tc.want)
		}
	}
}
