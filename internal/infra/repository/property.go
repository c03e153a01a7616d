package repository

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/repository/$GOFILE -package=repositorymock

import (
	"context"

	"rental-marketplace/internal/domain/property"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/infra/repository/converter"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PropertyWriteQueries interface {
	CreateProperty(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePropertyParams) (sqlc.Properties, error)
	GetPropertyByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Properties, error)
	UpdateProperty(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePropertyParams) error
	DeactivateProperty(ctx context.Context, db sqlc.DBTX, arg sqlc.DeactivatePropertyParams) error
}

type PropertyRepository struct {
	queries PropertyWriteQueries
}

func NewPropertyRepository(queries PropertyWriteQueries) *PropertyRepository {
	return &PropertyRepository{queries: queries}
}

func (r *PropertyRepository) Create(ctx context.Context, tx sqlc.DBTX, p *property.Property) error {
	if _, err := r.queries.CreateProperty(ctx, tx, converter.PropertyToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create property", err)
	}
	return nil
}

// FindByID returns the property whether or not it is active; callers decide visibility.
func (r *PropertyRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*property.Property, error) {
	row, err := r.queries.GetPropertyByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find property by ID", err)
	}

	p, err := converter.PropertyFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert property row", err)
	}
	return p, nil
}

func (r *PropertyRepository) Update(ctx context.Context, tx sqlc.DBTX, p *property.Property) error {
	if err := r.queries.UpdateProperty(ctx, tx, converter.PropertyToUpdateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to update property", err)
	}
	return nil
}

func (r *PropertyRepository) Deactivate(ctx context.Context, tx sqlc.DBTX, p *property.Property) error {
	params := sqlc.DeactivatePropertyParams{
		ID:        p.ID(),
		UpdatedAt: pgconv.TimeToPgtype(p.UpdatedAt()),
	}
	if err := r.queries.DeactivateProperty(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to deactivate property", err)
	}
	return nil
}
