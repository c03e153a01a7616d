package shared

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/shared/$GOFILE -package=sharedmock

import (
	"context"

	"rental-marketplace/internal/domain/booking"
	"rental-marketplace/internal/domain/payment"
	"rental-marketplace/internal/domain/property"
	"rental-marketplace/internal/domain/review"
	"rental-marketplace/internal/domain/user"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: check-then-insert flows that must not interleave (availability)
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Properties() PropertyRepository
	Bookings() BookingRepository
	PaymentIntents() PaymentIntentRepository
	Reviews() ReviewRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	UserCredentials(ctx context.Context, email string) (*UserCredentials, error)
	PropertyOwnership(ctx context.Context, propertyID uuid.UUID) (*PropertyOwnership, error)
	ReviewEligibility(ctx context.Context, userID, propertyID uuid.UUID) (review.Eligibility, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*user.User, error)
	UpdateProfile(ctx context.Context, tx sqlc.DBTX, u *user.User) error
}

type PropertyRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *property.Property) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*property.Property, error)
	Update(ctx context.Context, tx sqlc.DBTX, p *property.Property) error
	Deactivate(ctx context.Context, tx sqlc.DBTX, p *property.Property) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	HasConflict(ctx context.Context, tx sqlc.DBTX, propertyID uuid.UUID, stay booking.Stay) (bool, error)
}

type PaymentIntentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, intent *payment.Intent) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id string) (*payment.Intent, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, intent *payment.Intent) error
}

type ReviewRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*review.Review, error)
	Update(ctx context.Context, tx sqlc.DBTX, rev *review.Review) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}
