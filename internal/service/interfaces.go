package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"affiliate_bot/internal/domain"
)

// Notifier delivers replies to the operator's chat.
type Notifier interface {
	SendText(ctx context.Context, chatID int64, text string) error
	SendMarkdown(ctx context.Context, chatID int64, text string) error
	SendChoices(ctx context.Context, chatID int64, text string, rows [][]domain.Choice) error
	AnswerCallback(ctx context.Context, callbackID, text string) error
}

type FanOut interface {
	Publish(
		ctx context.Context,
		sub domain.Submission,
		targets []domain.DestinationTarget,
		observe func(domain.PublishOutcome),
	) (domain.PublishReport, error)
}

type Prefiller interface {
	Lookup(ctx context.Context, url string) (domain.ProductInfo, error)
}

type MediaDownloader interface {
	Download(ctx context.Context, urls []string) ([]domain.MediaRef, error)
}

type HistoryReader interface {
	Recent(ctx context.Context, limit int) ([]domain.PublicationSummary, error)
}

type ReportSink interface {
	Record(ctx context.Context, rec *domain.PublicationRecord) error
}

type PublicationStore interface {
	Insert(ctx context.Context, rec *domain.PublicationRecord) error
	InsertOutcomes(ctx context.Context, publicationID string, report domain.PublishReport) error
	Recent(ctx context.Context, limit int) ([]domain.PublicationSummary, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
