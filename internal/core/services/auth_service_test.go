package services

import "testing"

func TestResolveRole(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"admin@assofi.app", "admin"},
		{"ADMIN@assofi.app", "admin"},
		{"sysadmin@example.org", "admin"},
		{"tresorier@assofi.app", "tresorier"},
		{"awa.diallo@example.org", "tresorier"},
		{"", "tresorier"},
	}

	for _, tt := range tests {
		if got := ResolveRole(tt.email); got != tt.want {
			t.Errorf("ResolveRole(%q) = %q, want %q", tt.email, got, tt.want)
		}
	}
}
