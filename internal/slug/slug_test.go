package slug

import "testing"

func TestGenerate(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Hello, World! 2026", "hello-world-2026"},
		{"  Sarah & Tom  ", "sarah-tom"},
		{"already-a-slug", "already-a-slug"},
		{"Multiple   spaces", "multiple-spaces"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Generate(tt.in); got != tt.want {
			t.Errorf("Generate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeID(t *testing.T) {
	tests := []struct{ in, want string }{
		{"sarah-and-tom", "sarah-and-tom"},
		{"Sarah+Tom", "Sarah-Tom"},
		{"film 42", "film-42"},
		{"a/b\\c", "a-b-c"},
		{"42", "42"},
		{"under_score", "under_score"},
	}
	for _, tt := range tests {
		if got := SanitizeID(tt.in); got != tt.want {
			t.Errorf("SanitizeID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
