package shared

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/shared/$GOFILE -package=sharedmock

import (
	"context"

	"rental-marketplace/internal/domain/review"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent from read-side query views.
type UserCredentials struct {
	ID           uuid.UUID
	Email        string
	Role         string
	PasswordHash string
	IsActive     bool
}

type PropertyOwnership struct {
	ID       uuid.UUID
	HostID   uuid.UUID
	Title    string
	IsActive bool
}

// RatingCache holds per-property rating summaries. Implementations swallow their own
// failures; a miss only costs a database round trip.
type RatingCache interface {
	Get(ctx context.Context, propertyID uuid.UUID) (*review.Summary, bool)
	Set(ctx context.Context, propertyID uuid.UUID, summary review.Summary)
	Invalidate(ctx context.Context, propertyID uuid.UUID)
}
