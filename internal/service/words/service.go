// Package words keeps the per-category pools of undispensed Articulate words
// for one player session and refills them from a generation backend.
package words

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/articulate-words/internal/domain"
)

// DefaultRefillAmount is the per-category batch requested when a draw finds
// its pool empty.
const DefaultRefillAmount = 10

type generator interface {
	Generate(ctx context.Context, req domain.GenerationRequest) (string, error)
}

type wordSet map[string]struct{}

// Service is the word repository for a single player session.
//
// mu guards pools and history and is held for the whole refill sequence,
// backend call included, so concurrent draws never hand out the same word or
// trigger two refills at once.
type Service struct {
	log          *slog.Logger
	gen          generator
	profile      domain.PlayerProfile
	refillAmount int
	sessionID    uuid.UUID

	mu      sync.Mutex
	pools   map[domain.Category]wordSet
	history map[domain.Category]wordSet
}

// NewService creates a repository with empty pools. refillAmount <= 0 uses
// DefaultRefillAmount.
func NewService(log *slog.Logger, gen generator, profile domain.PlayerProfile, refillAmount int) *Service {
	if refillAmount <= 0 {
		refillAmount = DefaultRefillAmount
	}

	sessionID := uuid.New()
	s := &Service{
		log:          log.With("service", "words", slog.String("session_id", sessionID.String())),
		gen:          gen,
		profile:      profile.Clone(),
		refillAmount: refillAmount,
		sessionID:    sessionID,
		pools:        make(map[domain.Category]wordSet, 6),
		history:      make(map[domain.Category]wordSet, 6),
	}
	for _, c := range domain.Categories() {
		s.pools[c] = wordSet{}
		s.history[c] = wordSet{}
	}
	return s
}

// SessionID identifies this repository instance in logs.
func (s *Service) SessionID() uuid.UUID { return s.sessionID }

// Profile returns a copy of the player profile the words are tailored to.
func (s *Service) Profile() domain.PlayerProfile { return s.profile.Clone() }

// Categories returns the fixed ordered set of categories.
func (s *Service) Categories() []domain.Category { return domain.Categories() }

// Count returns the number of undispensed words pooled for category.
func (s *Service) Count(category domain.Category) (int, error) {
	if err := checkCategory(category); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pools[category]), nil
}

// History returns the words already dispensed for category, sorted.
func (s *Service) History(category domain.Category) ([]string, error) {
	if err := checkCategory(category); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedWords(s.history[category]), nil
}

func checkCategory(c domain.Category) error {
	if !c.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownCategory, c)
	}
	return nil
}

func sortedWords(set wordSet) []string {
	out := make([]string, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	slices.Sort(out)
	return out
}
