package domain

import (
	"fmt"
	"slices"
	"strings"
)

const (
	MinPlayerAge = 1
	MaxPlayerAge = 120
)

// PlayerProfile describes the group the words are personalized for.
type PlayerProfile struct {
	Ages        []int
	Interests   []string
	Backgrounds []string
}

// Clone returns a deep copy so callers cannot mutate a held profile.
func (p PlayerProfile) Clone() PlayerProfile {
	return PlayerProfile{
		Ages:        slices.Clone(p.Ages),
		Interests:   slices.Clone(p.Interests),
		Backgrounds: slices.Clone(p.Backgrounds),
	}
}

// Validate checks ages are plausible and that no descriptor is blank.
func (p PlayerProfile) Validate() error {
	var errs []FieldError

	for i, age := range p.Ages {
		if age < MinPlayerAge || age > MaxPlayerAge {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("ages[%d]", i),
				Message: fmt.Sprintf("must be between %d and %d", MinPlayerAge, MaxPlayerAge),
			})
		}
	}
	for i, s := range p.Interests {
		if strings.TrimSpace(s) == "" {
			errs = append(errs, FieldError{Field: fmt.Sprintf("interests[%d]", i), Message: "required"})
		}
	}
	for i, s := range p.Backgrounds {
		if strings.TrimSpace(s) == "" {
			errs = append(errs, FieldError{Field: fmt.Sprintf("backgrounds[%d]", i), Message: "required"})
		}
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
