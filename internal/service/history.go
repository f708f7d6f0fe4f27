package service

import (
	"context"
	"fmt"
	"log/slog"

	"affiliate_bot/internal/domain"
)

// History persists finished publications and serves the recent list.
type History struct {
	store     PublicationStore
	txManager TransactionManager
	logger    *slog.Logger
}

func NewHistory(store PublicationStore, txManager TransactionManager, logger *slog.Logger) *History {
	return &History{
		store:     store,
		txManager: txManager,
		logger:    logger.With("component", "history"),
	}
}

// Record stores the publication row and its outcomes atomically.
func (h *History) Record(ctx context.Context, rec *domain.PublicationRecord) error {
	err := h.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := h.store.Insert(txCtx, rec); err != nil {
			return fmt.Errorf("insert publication: %w", err)
		}
		if len(rec.Report) == 0 {
			return nil
		}
		if err := h.store.InsertOutcomes(txCtx, rec.ID, rec.Report); err != nil {
			return fmt.Errorf("insert outcomes: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	h.logger.Info("publication saved",
		"publication_id", rec.ID,
		"destinations", len(rec.Report),
		"failed", rec.Report.Failed(),
	)
	return nil
}

func (h *History) Recent(ctx context.Context, limit int) ([]domain.PublicationSummary, error) {
	items, err := h.store.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("recent publications: %w", err)
	}
	return items, nil
}
