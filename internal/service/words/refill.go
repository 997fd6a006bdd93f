package words

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/articulate-words/internal/domain"
	"github.com/heartmarshall/articulate-words/internal/wordset"
)

// RefillResult reports what one refill did to each pool.
type RefillResult struct {
	// Added is the pool growth per category.
	Added map[domain.Category]int
	// Dropped counts returned words discarded because they were already
	// dispensed.
	Dropped map[domain.Category]int
}

// TotalAdded sums Added over all categories.
func (r RefillResult) TotalAdded() int {
	n := 0
	for _, v := range r.Added {
		n += v
	}
	return n
}

// Refill asks the backend for amount new words per category in one request
// and pools every word not already dispensed. Adding zero words is not an
// error.
func (s *Service) Refill(ctx context.Context, amount int) (RefillResult, error) {
	if amount < 1 {
		return RefillResult{}, domain.NewValidationError("amount", "must be at least 1")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refillLocked(ctx, amount)
}

func (s *Service) refillLocked(ctx context.Context, amount int) (RefillResult, error) {
	req := domain.GenerationRequest{
		Profile: s.profile.Clone(),
		Used:    s.usedSnapshot(),
		Amount:  amount,
	}

	s.log.InfoContext(ctx, "refilling words",
		slog.Int("amount", amount),
		slog.String("ages", joinInts(req.Profile.Ages)),
		slog.String("interests", strings.Join(req.Profile.Interests, ", ")),
		slog.String("backgrounds", strings.Join(req.Profile.Backgrounds, ", ")),
	)

	raw, err := s.gen.Generate(ctx, req)
	if err != nil {
		s.log.ErrorContext(ctx, "generation failed", slog.String("error", err.Error()))
		return RefillResult{}, fmt.Errorf("%w: %w", domain.ErrBackend, err)
	}

	s.log.DebugContext(ctx, "generation response", slog.String("raw", raw))

	resp, err := wordset.Parse(raw)
	if err != nil {
		s.log.ErrorContext(ctx, "parse generation response", slog.String("error", err.Error()))
		return RefillResult{}, fmt.Errorf("refill: %w", err)
	}
	if !resp.Success {
		s.log.WarnContext(ctx, "backend reported failure", slog.String("message", resp.Message))
	}

	result := RefillResult{
		Added:   make(map[domain.Category]int, len(resp.Words)),
		Dropped: make(map[domain.Category]int, len(resp.Words)),
	}
	for _, c := range domain.Categories() {
		pool, used := s.pools[c], s.history[c]
		before := len(pool)
		for _, w := range resp.Words[c] {
			w = domain.CleanWord(w)
			if w == "" {
				continue
			}
			if _, ok := used[w]; ok {
				result.Dropped[c]++
				continue
			}
			pool[w] = struct{}{}
		}
		result.Added[c] = len(pool) - before
	}

	s.log.InfoContext(ctx, "words refilled",
		slog.Int("added", result.TotalAdded()),
		slog.Int("returned", resp.Words.Total()),
	)
	return result, nil
}

// usedSnapshot copies the history; callers must hold mu.
func (s *Service) usedSnapshot() map[domain.Category][]string {
	used := make(map[domain.Category][]string, len(s.history))
	for c, set := range s.history {
		used[c] = sortedWords(set)
	}
	return used
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}
