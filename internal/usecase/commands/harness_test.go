//go:build unit

package commands_test

import (
	"context"
	"time"

	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/pkg/clock"
	"rental-marketplace/internal/usecase/shared"
	sharedmock "rental-marketplace/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

// txHarness runs every unit of work callback inline against mocked repositories.
type txHarness struct {
	uow        *sharedmock.MockUnitOfWork
	tx         *sharedmock.MockTx
	users      *sharedmock.MockUserRepository
	properties *sharedmock.MockPropertyRepository
	bookings   *sharedmock.MockBookingRepository
	intents    *sharedmock.MockPaymentIntentRepository
	reviews    *sharedmock.MockReviewRepository
	reads      *sharedmock.MockCommandReads
	clock      *clock.MockClock
}

func newTxHarness(ctrl *gomock.Controller) *txHarness {
	h := &txHarness{
		uow:        sharedmock.NewMockUnitOfWork(ctrl),
		tx:         sharedmock.NewMockTx(ctrl),
		users:      sharedmock.NewMockUserRepository(ctrl),
		properties: sharedmock.NewMockPropertyRepository(ctrl),
		bookings:   sharedmock.NewMockBookingRepository(ctrl),
		intents:    sharedmock.NewMockPaymentIntentRepository(ctrl),
		reviews:    sharedmock.NewMockReviewRepository(ctrl),
		reads:      sharedmock.NewMockCommandReads(ctrl),
		clock:      clock.NewMockClock(fixedNow),
	}

	runInline := func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
		return fn(ctx, h.tx)
	}
	h.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(runInline).AnyTimes()
	h.uow.EXPECT().WithinSerializable(gomock.Any(), gomock.Any()).DoAndReturn(runInline).AnyTimes()
	h.uow.EXPECT().CommandReads().Return(h.reads).AnyTimes()

	h.tx.EXPECT().Users().Return(h.users).AnyTimes()
	h.tx.EXPECT().Properties().Return(h.properties).AnyTimes()
	h.tx.EXPECT().Bookings().Return(h.bookings).AnyTimes()
	h.tx.EXPECT().PaymentIntents().Return(h.intents).AnyTimes()
	h.tx.EXPECT().Reviews().Return(h.reviews).AnyTimes()
	h.tx.EXPECT().Reads().Return(h.reads).AnyTimes()
	h.tx.EXPECT().DB().Return(nil).AnyTimes()

	return h
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func repoErr(kind infra.RepositoryErrorKind, constraint string) error {
	return infra.RepositoryError{Kind: kind, Constraint: constraint}
}
