package version

import "testing"

func TestDisplay(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"1.2.3", "v1.2.3"},
		{"v1.2.3", "v1.2.3"},
		{"1.2", "v1.2.0"},
		{"2.0.0-rc.1", "v2.0.0-rc.1"},
		{"dev", "dev"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Display(tt.raw); got != tt.want {
			t.Errorf("Display(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestIsRelease(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"1.0.0", true},
		{"v1.0.0", true},
		{"1.0.0-beta.2", false},
		{"dev", false},
	}
	for _, tt := range tests {
		if got := IsRelease(tt.raw); got != tt.want {
			t.Errorf("IsRelease(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
