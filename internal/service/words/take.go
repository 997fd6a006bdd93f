package words

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/articulate-words/internal/domain"
)

// Take draws one word from category and records it as dispensed. An empty
// pool triggers exactly one refill of the configured batch first. Which of
// the pooled words is returned is unspecified.
func (s *Service) Take(ctx context.Context, category domain.Category) (string, error) {
	if err := checkCategory(category); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pools[category]) == 0 {
		s.log.InfoContext(ctx, "out of words, refilling", slog.String("category", category.String()))
		if _, err := s.refillLocked(ctx, s.refillAmount); err != nil {
			return "", fmt.Errorf("take %s: %w", category, err)
		}
	}

	pool := s.pools[category]
	for word := range pool {
		delete(pool, word)
		s.history[category][word] = struct{}{}
		return word, nil
	}

	return "", fmt.Errorf("%w: %s has no words left after refill", domain.ErrExhaustedCategory, category)
}
