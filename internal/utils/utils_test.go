package utils

import "testing"

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		limit  int
		expect string
	}{
		{
			name:   "returns empty when limit non-positive",
			input:  "java expert needed",
			limit:  0,
			expect: "",
		},
		{
			name:   "shorter than limit",
			input:  "rust",
			limit:  10,
			expect: "rust",
		},
		{
			name:   "truncates and adds ellipsis",
			input:  "javascript and c#",
			limit:  10,
			expect: "javascript...",
		},
		{
			name:   "trims surrounding whitespace",
			input:  "  spaced  ",
			limit:  5,
			expect: "space...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateForLog(tt.input, tt.limit); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}
