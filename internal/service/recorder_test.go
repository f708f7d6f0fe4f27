package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"affiliate_bot/internal/domain"
	"affiliate_bot/internal/service/mocks"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestRecorder_CallsEverySinkAndCombinesErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mocks.NewMockReportSink(ctrl)
	second := mocks.NewMockReportSink(ctrl)

	rec := &domain.PublicationRecord{ID: "01HZX"}
	first.EXPECT().Record(gomock.Any(), rec).Return(errors.New("db unavailable"))
	second.EXPECT().Record(gomock.Any(), rec).Return(nil)

	var thirdCalled bool
	r := NewRecorder(quietLogger())
	r.Add("postgres", first)
	r.Add("rabbitmq", second)
	r.Add("func", SinkFunc(func(context.Context, *domain.PublicationRecord) error {
		thirdCalled = true
		return errors.New("closed")
	}))
	assert.Equal(t, 3, r.Len())

	err := r.Record(context.Background(), rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres: db unavailable")
	assert.Contains(t, err.Error(), "func: closed")
	assert.NotContains(t, err.Error(), "rabbitmq")
	assert.True(t, thirdCalled)
}

func TestRecorder_NoSinks(t *testing.T) {
	r := NewRecorder(quietLogger())
	assert.NoError(t, r.Record(context.Background(), &domain.PublicationRecord{ID: "x"}))
}
