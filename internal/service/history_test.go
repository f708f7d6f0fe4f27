package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"affiliate_bot/internal/domain"
	"affiliate_bot/internal/service/mocks"
)

type HistoryTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	store     *mocks.MockPublicationStore
	txManager *mocks.MockTransactionManager

	history *History
}

func (s *HistoryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockPublicationStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)

	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()

	s.history = NewHistory(s.store, s.txManager, quietLogger())
}

func (s *HistoryTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHistoryTestSuite(t *testing.T) {
	suite.Run(t, new(HistoryTestSuite))
}

func (s *HistoryTestSuite) record() *domain.PublicationRecord {
	return &domain.PublicationRecord{
		ID:         "01HZXAMPLE",
		Submission: domain.Submission{ProductName: "Red Sneakers", Price: "$59", Category: "shoes"},
		Report: domain.PublishReport{
			{Target: domain.DestinationTarget{Locale: "it", Address: "@it"}, Succeeded: true},
			{Target: domain.DestinationTarget{Locale: "en", Address: "@en"}, ErrorDetail: "timeout"},
		},
		CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *HistoryTestSuite) TestRecord_InsertsPublicationAndOutcomes() {
	ctx := context.Background()
	rec := s.record()

	gomock.InOrder(
		s.store.EXPECT().Insert(gomock.Any(), rec).Return(nil),
		s.store.EXPECT().InsertOutcomes(gomock.Any(), rec.ID, rec.Report).Return(nil),
	)

	s.NoError(s.history.Record(ctx, rec))
}

func (s *HistoryTestSuite) TestRecord_InsertFailureSkipsOutcomes() {
	rec := s.record()
	s.store.EXPECT().Insert(gomock.Any(), rec).Return(errors.New("unique violation"))

	err := s.history.Record(context.Background(), rec)

	s.ErrorContains(err, "insert publication: unique violation")
}

func (s *HistoryTestSuite) TestRecord_OutcomeFailure() {
	rec := s.record()
	s.store.EXPECT().Insert(gomock.Any(), rec).Return(nil)
	s.store.EXPECT().InsertOutcomes(gomock.Any(), rec.ID, rec.Report).Return(errors.New("connection reset"))

	err := s.history.Record(context.Background(), rec)

	s.ErrorContains(err, "insert outcomes")
}

func (s *HistoryTestSuite) TestRecent() {
	rows := []domain.PublicationSummary{{ID: "a", ProductName: "Red Sneakers"}}
	s.store.EXPECT().Recent(gomock.Any(), 5).Return(rows, nil)

	got, err := s.history.Recent(context.Background(), 5)

	s.NoError(err)
	s.Equal(rows, got)
}

func (s *HistoryTestSuite) TestRecent_Error() {
	s.store.EXPECT().Recent(gomock.Any(), 5).Return(nil, errors.New("boom"))

	_, err := s.history.Recent(context.Background(), 5)

	s.ErrorContains(err, "recent publications: boom")
}
