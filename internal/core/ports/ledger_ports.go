package ports

import (
	"context"

	"github.com/vncsmyrnk/verifybot/internal/core/domain"
)

type LedgerRepository interface {
	Load(ctx context.Context) (*domain.Ledger, error)
	Save(ctx context.Context, ledger *domain.Ledger) error
}
