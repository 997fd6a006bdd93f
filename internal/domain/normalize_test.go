package domain

import "testing"

func TestCleanWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim spaces", input: "  Oscilloscope  ", want: "Oscilloscope"},
		{name: "case preserved", input: "Homer Simpson", want: "Homer Simpson"},
		{name: "compress multiple spaces", input: "Neon   Glow", want: "Neon Glow"},
		{name: "tab inside becomes space", input: "Coral\tReef", want: "Coral Reef"},
		{name: "hyphens preserved", input: "Binge-Watching", want: "Binge-Watching"},
		{name: "apostrophes preserved", input: "Moe's Tavern", want: "Moe's Tavern"},
		{name: "empty string", input: "", want: ""},
		{name: "only spaces", input: "   ", want: ""},
		{name: "tabs and spaces", input: "\t Drone \t", want: "Drone"},
		{name: "unicode preserved", input: "Café  Crème", want: "Café Crème"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CleanWord(tt.input); got != tt.want {
				t.Errorf("CleanWord(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
