package ports

import (
	"context"

	"github.com/vncsmyrnk/verifybot/internal/core/domain"
)

type VoteService interface {
	Vote(ctx context.Context, voterID string) (domain.VoteOutcome, error)
	Snapshot() domain.PollSnapshot
}
