package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/vncsmyrnk/verifybot/internal/core/domain"
	"github.com/vncsmyrnk/verifybot/internal/core/ports"
)

type voteService struct {
	repo     ports.LedgerRepository
	capacity int
	logger   *slog.Logger

	mu     sync.Mutex
	ledger *domain.Ledger
}

// NewVoteService owns ledger from here on; callers must not mutate it.
func NewVoteService(repo ports.LedgerRepository, ledger *domain.Ledger, capacity int, logger *slog.Logger) ports.VoteService {
	if ledger == nil {
		ledger = domain.NewLedger(nil)
	}
	return &voteService{
		repo:     repo,
		capacity: capacity,
		logger:   resolveLogger(logger),
		ledger:   ledger,
	}
}

func (s *voteService) Vote(ctx context.Context, voterID string) (domain.VoteOutcome, error) {
	if voterID == "" {
		return domain.OutcomeUnknown, domain.ErrInvalidUser
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ledger.HasVoted(voterID) {
		return domain.OutcomeAlreadyVoted, nil
	}
	if s.ledger.VoteCount >= s.capacity {
		return domain.OutcomePollClosed, nil
	}

	next := s.ledger.WithVoter(voterID)
	if err := s.repo.Save(ctx, next); err != nil {
		return domain.OutcomeUnknown, fmt.Errorf("%w: %w", domain.ErrPersistLedger, err)
	}
	s.ledger = next

	outcome := domain.OutcomeAccepted
	if next.VoteCount == s.capacity {
		outcome = domain.OutcomeAcceptedAndClosed
	}

	s.logger.Info("vote accepted", "voter_id", voterID, "vote_count", next.VoteCount, "capacity", s.capacity, "outcome", outcome.String())
	return outcome, nil
}

func (s *voteService) Snapshot() domain.PollSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.NewPollSnapshot(s.ledger.VoteCount, s.capacity)
}
