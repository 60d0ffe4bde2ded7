package ui

import "testing"

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short ascii untouched", "tower.webp", 28, "tower.webp"},
		{"exactly at limit", "abcd", 4, "abcd"},
		{"ascii truncated", "abcdefgh", 4, "abcd…"},
		{"korean truncated runewise", "한옥마을전경사진", 4, "한옥마을…"},
		{"empty", "", 28, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateRunes(tt.in, tt.max); got != tt.want {
				t.Errorf("truncateRunes(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}
