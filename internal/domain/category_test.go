package domain

import (
	"errors"
	"testing"
)

func TestCategories_Order(t *testing.T) {
	t.Parallel()

	want := []Category{"Object", "Nature", "Random", "Person", "Action", "World"}
	got := Categories()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCategories_ReturnsCopy(t *testing.T) {
	t.Parallel()

	first := Categories()
	first[0] = "Broken"

	if Categories()[0] != CategoryObject {
		t.Fatal("mutating the returned slice must not affect later calls")
	}
}

func TestCategory_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		category Category
		want     bool
	}{
		{CategoryObject, true},
		{CategoryNature, true},
		{CategoryRandom, true},
		{CategoryPerson, true},
		{CategoryAction, true},
		{CategoryWorld, true},
		{Category("object"), false},
		{Category("Food"), false},
		{Category(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			t.Parallel()
			if got := tt.category.IsValid(); got != tt.want {
				t.Errorf("Category(%q).IsValid() = %v, want %v", tt.category, got, tt.want)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{"Object", CategoryObject, false},
		{"person", CategoryPerson, false},
		{"  WORLD ", CategoryWorld, false},
		{"Food", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownCategory) {
					t.Fatalf("ParseCategory(%q) error = %v, want ErrUnknownCategory", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCategory(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
