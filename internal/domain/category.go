package domain

import (
	"fmt"
	"strings"
)

// Category is one of the six fixed word classes on an Articulate card.
type Category string

const (
	CategoryObject Category = "Object"
	CategoryNature Category = "Nature"
	CategoryRandom Category = "Random"
	CategoryPerson Category = "Person"
	CategoryAction Category = "Action"
	CategoryWorld  Category = "World"
)

// Categories returns the fixed set of categories in card order.
// The returned slice is a fresh copy and may be modified by the caller.
func Categories() []Category {
	return []Category{
		CategoryObject,
		CategoryNature,
		CategoryRandom,
		CategoryPerson,
		CategoryAction,
		CategoryWorld,
	}
}

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryObject, CategoryNature, CategoryRandom, CategoryPerson, CategoryAction, CategoryWorld:
		return true
	}
	return false
}

// ParseCategory resolves user input to a category, ignoring case and
// surrounding whitespace.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories() {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
