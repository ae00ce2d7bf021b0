package gitinfo

import "testing"

func TestNormalizeRef(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{"refs/heads/main", "main"},
		{"refs/tags/v1.0", "v1.0"},
		{"refs/main", "main"},
		{"origin/main", "main"},
		{"tags/v1.0", "v1.0"},
		{"main", "main"},
		{"feature/nested/branch", "feature/nested/branch"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeRef(tt.ref); got != tt.want {
			t.Errorf("NormalizeRef(%q) = %q, want %q", tt.ref, got, tt.want)
		}
	}
}

func TestIsRefATag(t *testing.T) {
	tests := []struct {
		ref  string
		want bool
	}{
		{"refs/tags/v1.0", true},
		{"tags/v1.0", true},
		{"refs/heads/main", false},
		{"main", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsRefATag(tt.ref); got != tt.want {
			t.Errorf("IsRefATag(%q) = %v, want %v", tt.ref, got, tt.want)
		}
	}
}
