package phone

import "testing"

func TestNormalizeE164(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"national US number", "(512) 555-0187", "+15125550187"},
		{"already E164", "+15125550187", "+15125550187"},
		{"international number", "+31 6 12345678", "+31612345678"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"garbage passes through", "not-a-number", "not-a-number"},
		{"invalid number passes through", "123", "123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeE164(tt.input); got != tt.want {
				t.Errorf("NormalizeE164(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
