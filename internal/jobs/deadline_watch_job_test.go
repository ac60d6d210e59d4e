package jobs_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"deliveryescrow/internal/core/domain/model/commission"
	"deliveryescrow/internal/core/domain/model/delivery"
	"deliveryescrow/internal/core/domain/model/kernel"
	"deliveryescrow/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type scannerMock struct {
	mock.Mock
}

func (m *scannerMock) GetAllStartedPastDeadline(ctx context.Context, now time.Time) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

type publisherMock struct {
	mock.Mock
}

func (m *publisherMock) Publish(ctx context.Context, notification delivery.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func overdueDelivery(t *testing.T, deadline time.Time) *delivery.Delivery {
	t.Helper()

	hash, err := kernel.DeliveryHashFromBytes([]byte{
		0xde, 0xad, 0xde, 0xad, 0xde, 0xad, 0xde, 0xad,
		0xde, 0xad, 0xde, 0xad, 0xde, 0xad, 0xde, 0xad,
		0xde, 0xad, 0xde, 0xad, 0xde, 0xad, 0xde, 0xad,
		0xde, 0xad, 0xde, 0xad, 0xde, 0xad, 0xde, 0xad,
	})
	require.NoError(t, err)

	sender := kernel.NewAccount()
	courier := kernel.NewAccount()
	created := deadline.Add(-48 * time.Hour)

	d, err := delivery.RestoreDelivery(
		hash,
		sender,
		kernel.NewAccount(),
		&courier,
		"12 North Quay",
		"3 Harbor Lane",
		kernel.NewMoney(100),
		kernel.NewMoney(10),
		deadline,
		created.Add(time.Hour),
		time.Time{},
		commission.DefaultRate,
		delivery.Started,
	)
	require.NoError(t, err)

	return d
}

func TestDeadlineWatchJob_Run_PublishesNoticePerOverdueDelivery(t *testing.T) {
	now := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)
	first := overdueDelivery(t, now.Add(-time.Hour))
	second := overdueDelivery(t, now.Add(-2*time.Hour))

	scanner := &scannerMock{}
	scanner.On("GetAllStartedPastDeadline", mock.Anything, now).
		Return([]*delivery.Delivery{first, second}, nil).Once()

	publisher := &publisherMock{}
	publisher.On("Publish", mock.Anything, delivery.OverdueNoticeEvent{
		Hash:     first.Hash().String(),
		Deadline: first.Deadline(),
	}).Return(nil).Once()
	publisher.On("Publish", mock.Anything, delivery.OverdueNoticeEvent{
		Hash:     second.Hash().String(),
		Deadline: second.Deadline(),
	}).Return(nil).Once()

	job := jobs.NewDeadlineWatchJob(scanner, publisher,
		func() time.Time { return now }, slog.New(slog.DiscardHandler))

	job.Run(t.Context())

	scanner.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestDeadlineWatchJob_Run_NothingOverdue(t *testing.T) {
	now := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)

	scanner := &scannerMock{}
	scanner.On("GetAllStartedPastDeadline", mock.Anything, now).
		Return([]*delivery.Delivery{}, nil).Once()

	publisher := &publisherMock{}

	job := jobs.NewDeadlineWatchJob(scanner, publisher,
		func() time.Time { return now }, slog.New(slog.DiscardHandler))

	job.Run(t.Context())

	scanner.AssertExpectations(t)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestDeadlineWatchJob_Run_ScanErrorStopsRun(t *testing.T) {
	now := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)

	scanner := &scannerMock{}
	scanner.On("GetAllStartedPastDeadline", mock.Anything, now).
		Return(nil, errors.New("connection refused")).Once()

	publisher := &publisherMock{}

	job := jobs.NewDeadlineWatchJob(scanner, publisher,
		func() time.Time { return now }, slog.New(slog.DiscardHandler))

	job.Run(t.Context())

	scanner.AssertExpectations(t)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestDeadlineWatchJob_Run_PublishFailureDoesNotStopRemaining(t *testing.T) {
	now := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)
	first := overdueDelivery(t, now.Add(-time.Hour))
	second := overdueDelivery(t, now.Add(-2*time.Hour))

	scanner := &scannerMock{}
	scanner.On("GetAllStartedPastDeadline", mock.Anything, now).
		Return([]*delivery.Delivery{first, second}, nil).Once()

	publisher := &publisherMock{}
	publisher.On("Publish", mock.Anything, delivery.OverdueNoticeEvent{
		Hash:     first.Hash().String(),
		Deadline: first.Deadline(),
	}).Return(errors.New("broker unavailable")).Once()
	publisher.On("Publish", mock.Anything, delivery.OverdueNoticeEvent{
		Hash:     second.Hash().String(),
		Deadline: second.Deadline(),
	}).Return(nil).Once()

	job := jobs.NewDeadlineWatchJob(scanner, publisher,
		func() time.Time { return now }, slog.New(slog.DiscardHandler))

	job.Run(t.Context())

	publisher.AssertExpectations(t)
}

func TestJobManager_StartAllStopAll(t *testing.T) {
	scanner := &scannerMock{}
	publisher := &publisherMock{}

	manager := jobs.NewJobManager(scanner, publisher, time.Now, slog.New(slog.DiscardHandler))

	require.NoError(t, manager.StartAll())
	assert.NotPanics(t, manager.StopAll)
}
