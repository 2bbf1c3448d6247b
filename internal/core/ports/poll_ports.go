package ports

import "github.com/vncsmyrnk/verifybot/internal/core/domain"

// PollReader exposes the read side of the poll to adapters that never vote.
type PollReader interface {
	Snapshot() domain.PollSnapshot
}
