//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"rental-marketplace/internal/domain/auth"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/pkg/ptr"
	"rental-marketplace/internal/usecase/queries"
	"rental-marketplace/tests/common/builder"
	queriesmock "rental-marketplace/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPropertyFilter_Normalized(t *testing.T) {
	tests := []struct {
		name string
		in   queries.PropertyFilter
		want queries.PropertyFilter
	}{
		{
			name: "unknown sort key falls back to newest first",
			in:   queries.PropertyFilter{SortBy: "host_email", SortOrder: "sideways"},
			want: queries.PropertyFilter{SortBy: queries.SortByCreatedAt, SortOrder: queries.SortDesc, Amenities: []string{}},
		},
		{
			name: "ascending price is kept",
			in:   queries.PropertyFilter{SortBy: queries.SortByPrice, SortOrder: "ASC"},
			want: queries.PropertyFilter{SortBy: queries.SortByPrice, SortOrder: queries.SortAsc, Amenities: []string{}},
		},
		{
			name: "blank city and amenities are dropped",
			in:   queries.PropertyFilter{City: ptr.Of("  "), Amenities: []string{"wifi", " ", " pool "}},
			want: queries.PropertyFilter{SortBy: queries.SortByCreatedAt, SortOrder: queries.SortDesc, Amenities: []string{"wifi", "pool"}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, tc.in.Normalized()); diff != "" {
				t.Errorf("Normalized mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPropertyQueries_Search(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockPropertyReadStore(ctrl)
	page := queries.NewPage(1, 10)
	item := builder.NewPropertyBuilder().BuildListItem()

	store.EXPECT().Search(ctx, gomock.Any(), page).DoAndReturn(
		func(_ context.Context, f queries.PropertyFilter, _ queries.Page) ([]*queries.PropertyListItem, int64, error) {
			assert.Equal(t, queries.SortByCreatedAt, f.SortBy)
			assert.Equal(t, queries.SortDesc, f.SortOrder)
			return []*queries.PropertyListItem{item}, 11, nil
		})

	res, err := queries.NewPropertyQueries(store).Search(ctx, queries.PropertyFilter{SortBy: "bogus"}, page)

	require.NoError(t, err)
	assert.Len(t, res.Items, 1)
	assert.Equal(t, 2, res.Pagination.TotalPages)
	assert.True(t, res.Pagination.HasNext)
}

func TestPropertyQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPropertyReadStore(ctrl)
		view := builder.NewPropertyBuilder().BuildDetailView()
		store.EXPECT().FindDetail(ctx, view.ID).Return(view, nil)

		got, err := queries.NewPropertyQueries(store).GetByID(ctx, view.ID)

		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("error: missing or inactive property", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPropertyReadStore(ctrl)
		id := uuid.New()
		store.EXPECT().FindDetail(ctx, id).Return(nil, infra.WrapRepoErr("property detail", nil, infra.KindNotFound))

		_, err := queries.NewPropertyQueries(store).GetByID(ctx, id)

		assert.True(t, errors.Is(err, queries.ErrPropertyNotFound))
	})
}

func TestPropertyQueries_ListMine(t *testing.T) {
	ctx := context.Background()
	page := queries.NewPage(1, 10)

	t.Run("success: host sees own listings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPropertyReadStore(ctrl)
		host := builder.HostPrincipal()
		store.EXPECT().ListByHost(ctx, host.UserID, page).Return([]*queries.HostPropertyItem{{ID: uuid.New()}}, int64(1), nil)

		res, err := queries.NewPropertyQueries(store).ListMine(ctx, host, page)

		require.NoError(t, err)
		assert.Len(t, res.Items, 1)
	})

	t.Run("error: guests have no listings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPropertyReadStore(ctrl)

		_, err := queries.NewPropertyQueries(store).ListMine(ctx, builder.GuestPrincipal(), page)

		assert.True(t, errors.Is(err, auth.ErrInsufficientRole))
	})
}
