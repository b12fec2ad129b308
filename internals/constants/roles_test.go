// internals/constants/roles_test.go
package constants

import "testing"

func TestRoleAtLeast(t *testing.T) {
	tests := []struct {
		name string
		have string
		min  string
		want bool
	}{
		{"instructor meets instructor", RoleInstructor, RoleInstructor, true},
		{"instructor below admin", RoleInstructor, RoleAdmin, false},
		{"admin meets admin", RoleAdmin, RoleAdmin, true},
		{"admin below super admin", RoleAdmin, RoleSuperAdmin, false},
		{"super admin meets everything", RoleSuperAdmin, RoleInstructor, true},
		{"unknown role fails", "JANITOR", RoleInstructor, false},
		{"empty role fails", "", RoleInstructor, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoleAtLeast(tt.have, tt.min); got != tt.want {
				t.Fatalf("RoleAtLeast(%q, %q) = %v, want %v", tt.have, tt.min, got, tt.want)
			}
		})
	}
}

func TestIsValidRole(t *testing.T) {
	for _, r := range AllRoles {
		if !IsValidRole(r) {
			t.Fatalf("IsValidRole(%q) = false for a known role", r)
		}
	}
	if IsValidRole("STUDENT") {
		t.Fatal("students do not have accounts")
	}
}
