package domain

// GenerationRequest is everything a backend needs to produce one refill.
type GenerationRequest struct {
	Profile PlayerProfile
	// Used holds every dispensed word, sorted, keyed by all six categories.
	Used map[Category][]string
	// Amount is the number of words wanted per category.
	Amount int
}

// WordSet maps each category to the words a backend returned, in order.
type WordSet map[Category][]string

// Total returns the number of words across all categories.
func (w WordSet) Total() int {
	n := 0
	for _, words := range w {
		n += len(words)
	}
	return n
}
