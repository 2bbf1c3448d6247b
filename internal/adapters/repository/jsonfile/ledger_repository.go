// Package jsonfile persists the poll ledger as a single JSON document on
// local disk. Every save replaces the whole file; there is no append log.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/renameio/v2"
	"github.com/vncsmyrnk/verifybot/internal/core/domain"
	"github.com/vncsmyrnk/verifybot/internal/core/ports"
)

const filePerm = 0o644

// ledgerDocument is the on-disk shape. Field names are fixed.
type ledgerDocument struct {
	Votos    int      `json:"votos"`
	Votantes []string `json:"votantes"`
}

type ledgerRepository struct {
	path   string
	logger *slog.Logger
}

func NewLedgerRepository(path string, logger *slog.Logger) ports.LedgerRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &ledgerRepository{
		path:   path,
		logger: logger,
	}
}

// Load never fails to produce a ledger. A missing or corrupt file is replaced
// with the empty ledger; the returned error only reports that this
// replacement could not be written.
func (r *ledgerRepository) Load(ctx context.Context) (*domain.Ledger, error) {
	ledger, err := r.read()
	if err == nil {
		r.logger.Info("ledger loaded", "path", r.path, "vote_count", ledger.VoteCount)
		return ledger, nil
	}

	r.logger.Warn("could not read ledger, creating a new one", "path", r.path, "error", err)
	ledger = domain.NewLedger(nil)
	if err := r.Save(ctx, ledger); err != nil {
		return ledger, err
	}
	return ledger, nil
}

func (r *ledgerRepository) read() (*domain.Ledger, error) {
	content, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger file: %w", err)
	}

	var doc ledgerDocument
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode ledger file: %w", err)
	}

	ledger := domain.NewLedger(doc.Votantes)
	if doc.Votos != ledger.VoteCount {
		r.logger.Warn("stored vote count disagrees with voter list, using voter list",
			"path", r.path, "stored", doc.Votos, "voters", ledger.VoteCount)
	}
	return ledger, nil
}

func (r *ledgerRepository) Save(ctx context.Context, ledger *domain.Ledger) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	voters := ledger.Voters
	if voters == nil {
		voters = []string{}
	}
	doc := ledgerDocument{
		Votos:    ledger.VoteCount,
		Votantes: voters,
	}

	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}

	if err := renameio.WriteFile(r.path, content, filePerm); err != nil {
		return fmt.Errorf("failed to write ledger file: %w", err)
	}
	return nil
}
