package readstore

import (
	"context"

	"rental-marketplace/internal/infra"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/pkg/pgconv"
	"rental-marketplace/internal/usecase/queries"
	"rental-marketplace/internal/usecase/shared"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	dialectPostgres = "postgres"

	// detailReviewLimit caps the reviews embedded in a property detail; the full list is paginated separately.
	detailReviewLimit = 20
)

type PropertyReadQueries interface {
	GetPropertyDetail(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetPropertyDetailRow, error)
	ListReviewsByProperty(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewsByPropertyParams) ([]sqlc.ListReviewsByPropertyRow, error)
	ListPropertiesByHost(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPropertiesByHostParams) ([]sqlc.ListPropertiesByHostRow, error)
	CountPropertiesByHost(ctx context.Context, db sqlc.DBTX, hostID uuid.UUID) (int64, error)
	GetPropertyByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Properties, error)
}

type PropertyReadStore struct {
	queries PropertyReadQueries
	db      sqlc.DBTX
}

func NewPropertyReadStore(queries PropertyReadQueries, db sqlc.DBTX) *PropertyReadStore {
	return &PropertyReadStore{
		queries: queries,
		db:      db,
	}
}

// Search runs the dynamic catalog query. Only active and available properties are listed.
func (r *PropertyReadStore) Search(ctx context.Context, filter queries.PropertyFilter, page queries.Page) ([]*queries.PropertyListItem, int64, error) {
	countSQL, countArgs, err := BuildPropertyCountQuery(filter)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to build property count query", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count properties", err)
	}
	if total == 0 {
		return []*queries.PropertyListItem{}, 0, nil
	}

	searchSQL, searchArgs, err := BuildPropertySearchQuery(filter, page)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to build property search query", err)
	}
	rows, err := r.db.Query(ctx, searchSQL, searchArgs...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to search properties", err)
	}
	items, err := pgx.CollectRows(rows, scanPropertyListItem)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to scan properties", err)
	}
	return items, total, nil
}

func (r *PropertyReadStore) FindDetail(ctx context.Context, id uuid.UUID) (*queries.PropertyDetailView, error) {
	row, err := r.queries.GetPropertyDetail(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get property detail", err)
	}

	reviews, err := r.queries.ListReviewsByProperty(ctx, r.db, sqlc.ListReviewsByPropertyParams{
		PropertyID: id,
		Limit:      detailReviewLimit,
		Offset:     0,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list property reviews", err)
	}

	lat, _ := pgconv.Float64PtrFromPgtype(row.Latitude)
	lng, _ := pgconv.Float64PtrFromPgtype(row.Longitude)

	return &queries.PropertyDetailView{
		ID:           row.ID,
		HostID:       row.HostID,
		Title:        row.Title,
		Description:  row.Description,
		Type:         row.Type,
		Address:      row.Address,
		City:         row.City,
		State:        row.State,
		Country:      row.Country,
		ZipCode:      row.ZipCode,
		Latitude:     lat,
		Longitude:    lng,
		Price:        amount(row.Price),
		Currency:     row.Currency,
		Bedrooms:     int(row.Bedrooms),
		Bathrooms:    int(row.Bathrooms),
		MaxGuests:    int(row.MaxGuests),
		Amenities:    nonNilStrings(row.Amenities),
		Images:       nonNilStrings(row.Images),
		Availability: row.Availability,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
		Host: queries.HostContact{
			FirstName: row.HostFirstName,
			LastName:  row.HostLastName,
			Email:     row.HostEmail,
			Phone:     pgconv.StringPtrFromPgtype(row.HostPhone),
			Avatar:    pgconv.StringPtrFromPgtype(row.HostAvatar),
		},
		AvgRating:   rating(row.AvgRating),
		ReviewCount: int(row.ReviewCount),
		Reviews:     toPropertyReviews(reviews),
	}, nil
}

func (r *PropertyReadStore) FindOwnership(ctx context.Context, id uuid.UUID) (*shared.PropertyOwnership, error) {
	row, err := r.queries.GetPropertyByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get property", err)
	}
	return &shared.PropertyOwnership{
		ID:       row.ID,
		HostID:   row.HostID,
		Title:    row.Title,
		IsActive: row.IsActive,
	}, nil
}

// ListByHost includes inactive listings so hosts can see what they delisted.
func (r *PropertyReadStore) ListByHost(ctx context.Context, hostID uuid.UUID, page queries.Page) ([]*queries.HostPropertyItem, int64, error) {
	rows, err := r.queries.ListPropertiesByHost(ctx, r.db, sqlc.ListPropertiesByHostParams{
		HostID: hostID,
		Limit:  page.Limit(),
		Offset: page.Offset(),
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list host properties", err)
	}
	total, err := r.queries.CountPropertiesByHost(ctx, r.db, hostID)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count host properties", err)
	}

	items := make([]*queries.HostPropertyItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.HostPropertyItem{
			ID:           row.ID,
			Title:        row.Title,
			Type:         row.Type,
			City:         row.City,
			Country:      row.Country,
			Price:        amount(row.Price),
			Currency:     row.Currency,
			MaxGuests:    int(row.MaxGuests),
			Images:       nonNilStrings(row.Images),
			Availability: row.Availability,
			IsActive:     row.IsActive,
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
			AvgRating:    rating(row.AvgRating),
			ReviewCount:  int(row.ReviewCount),
		})
	}
	return items, total, nil
}

func BuildPropertySearchQuery(filter queries.PropertyFilter, page queries.Page) (string, []any, error) {
	ds := propertySearchBase(filter).
		Select(
			goqu.I("p.id"),
			goqu.I("p.host_id"),
			goqu.I("p.title"),
			goqu.I("p.description"),
			goqu.I("p.type"),
			goqu.I("p.city"),
			goqu.I("p.state"),
			goqu.I("p.country"),
			goqu.I("p.price"),
			goqu.I("p.currency"),
			goqu.I("p.bedrooms"),
			goqu.I("p.bathrooms"),
			goqu.I("p.max_guests"),
			goqu.I("p.amenities"),
			goqu.I("p.images"),
			goqu.I("p.availability"),
			goqu.I("p.created_at"),
			goqu.I("h.first_name"),
			goqu.I("h.last_name"),
			goqu.I("h.avatar"),
			goqu.I("r.avg_rating"),
			goqu.COALESCE(goqu.I("r.review_count"), 0).As("review_count"),
		).
		Order(sortExpression(filter), goqu.I("p.id").Asc()).
		Limit(uint(page.Limit())).
		Offset(uint(page.Offset()))

	sql, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return "", nil, errs.Wrap(err, "build property search SQL")
	}
	return sql, args, nil
}

func BuildPropertyCountQuery(filter queries.PropertyFilter) (string, []any, error) {
	ds := propertySearchBase(filter).Select(goqu.COUNT(goqu.Star()))
	sql, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return "", nil, errs.Wrap(err, "build property count SQL")
	}
	return sql, args, nil
}

func propertySearchBase(filter queries.PropertyFilter) *goqu.SelectDataset {
	builder := goqu.Dialect(dialectPostgres)

	ratings := builder.
		From("reviews").
		Select(
			goqu.C("property_id"),
			goqu.Cast(goqu.AVG("rating"), "FLOAT8").As("avg_rating"),
			goqu.COUNT(goqu.Star()).As("review_count"),
		).
		GroupBy("property_id")

	ds := builder.
		From(goqu.T("properties").As("p")).
		Join(goqu.T("users").As("h"), goqu.On(goqu.I("h.id").Eq(goqu.I("p.host_id")))).
		LeftJoin(ratings.As("r"), goqu.On(goqu.I("r.property_id").Eq(goqu.I("p.id")))).
		Where(
			goqu.I("p.is_active").IsTrue(),
			goqu.I("p.availability").IsTrue(),
		)

	return ds.Where(filterExpressions(filter)...)
}

func filterExpressions(filter queries.PropertyFilter) []exp.Expression {
	expressions := make([]exp.Expression, 0)
	if filter.City != nil {
		expressions = append(expressions, goqu.I("p.city").ILike("%"+*filter.City+"%"))
	}
	if filter.Type != nil {
		expressions = append(expressions, goqu.I("p.type").Eq(*filter.Type))
	}
	if filter.MinPrice != nil {
		expressions = append(expressions, goqu.I("p.price").Gte(*filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		expressions = append(expressions, goqu.I("p.price").Lte(*filter.MaxPrice))
	}
	if filter.Bedrooms != nil {
		expressions = append(expressions, goqu.I("p.bedrooms").Gte(*filter.Bedrooms))
	}
	if filter.Guests != nil {
		expressions = append(expressions, goqu.I("p.max_guests").Gte(*filter.Guests))
	}
	// every requested amenity must be present
	for _, amenity := range filter.Amenities {
		expressions = append(expressions, goqu.L("? = ANY(?)", amenity, goqu.I("p.amenities")))
	}
	return expressions
}

func sortExpression(filter queries.PropertyFilter) exp.OrderedExpression {
	var col exp.IdentifierExpression
	switch filter.SortBy {
	case queries.SortByPrice:
		col = goqu.I("p.price")
	case queries.SortByTitle:
		col = goqu.I("p.title")
	case queries.SortByAvgRating:
		col = goqu.I("r.avg_rating")
	default:
		col = goqu.I("p.created_at")
	}
	if filter.SortOrder == queries.SortAsc {
		return col.Asc().NullsLast()
	}
	return col.Desc().NullsLast()
}

func scanPropertyListItem(row pgx.CollectableRow) (*queries.PropertyListItem, error) {
	var (
		item        queries.PropertyListItem
		price       pgtype.Numeric
		createdAt   pgtype.Timestamptz
		hostAvatar  pgtype.Text
		avgRating   pgtype.Float8
		reviewCount int64
		bedrooms    int32
		bathrooms   int32
		maxGuests   int32
	)
	if err := row.Scan(
		&item.ID,
		&item.HostID,
		&item.Title,
		&item.Description,
		&item.Type,
		&item.City,
		&item.State,
		&item.Country,
		&price,
		&item.Currency,
		&bedrooms,
		&bathrooms,
		&maxGuests,
		&item.Amenities,
		&item.Images,
		&item.Availability,
		&createdAt,
		&item.HostFirstName,
		&item.HostLastName,
		&hostAvatar,
		&avgRating,
		&reviewCount,
	); err != nil {
		return nil, err
	}

	item.Price = amount(price)
	item.Bedrooms = int(bedrooms)
	item.Bathrooms = int(bathrooms)
	item.MaxGuests = int(maxGuests)
	item.Amenities = nonNilStrings(item.Amenities)
	item.Images = nonNilStrings(item.Images)
	item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	item.HostAvatar = pgconv.StringPtrFromPgtype(hostAvatar)
	item.AvgRating = rating(avgRating)
	item.ReviewCount = int(reviewCount)
	return &item, nil
}
