//go:build unit

package response_test

import (
	"testing"
	"time"

	resdto "rental-marketplace/internal/handler/dto/response"
	"rental-marketplace/internal/pkg/ptr"
	"rental-marketplace/internal/usecase/queries"
	"rental-marketplace/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPropertyDetail(t *testing.T) {
	view := builder.NewPropertyBuilder().BuildDetailView()
	view.AvgRating = ptr.Of(4.5)
	view.ReviewCount = 2
	view.Latitude = ptr.Of(28.2096)
	view.Host.Phone = ptr.Of("+977 9800000000")
	view.Reviews = []*queries.PropertyReview{
		{ID: uuid.New(), UserID: uuid.New(), Rating: 5, Comment: "Lovely views over the lake", UserFirstName: "Sita", CreatedAt: time.Now()},
		{ID: uuid.New(), UserID: uuid.New(), Rating: 4, Comment: "Clean and quiet, good wifi", UserFirstName: "Hari", CreatedAt: time.Now()},
	}

	res, err := resdto.FromPropertyDetail(view)
	require.NoError(t, err)

	assert.Equal(t, view.ID, res.ID)
	assert.Equal(t, view.Address, res.Address)
	assert.Equal(t, view.Price, res.Price)
	assert.Equal(t, "Ram", res.Host.FirstName)
	assert.Equal(t, "+977 9800000000", *res.Host.Phone)
	require.NotNil(t, res.AvgRating)
	assert.InDelta(t, 4.5, *res.AvgRating, 0.0001)
	require.Len(t, res.Reviews, 2)
	assert.Equal(t, "Sita", res.Reviews[0].UserFirstName)
	assert.Equal(t, 4, res.Reviews[1].Rating)
}

func TestFromPropertyPage(t *testing.T) {
	items := []*queries.PropertyListItem{
		builder.NewPropertyBuilder().BuildListItem(),
		builder.NewPropertyBuilder().WithMaxGuests(8).BuildListItem(),
	}
	page := &queries.PageResult[*queries.PropertyListItem]{
		Items:      items,
		Pagination: queries.NewPagination(queries.NewPage(2, 2), 5),
	}

	res, err := resdto.FromPropertyPage(page)
	require.NoError(t, err)

	require.Len(t, res.Properties, 2)
	assert.Equal(t, items[1].ID, res.Properties[1].ID)
	assert.Equal(t, 8, res.Properties[1].MaxGuests)
	assert.Nil(t, res.Properties[0].AvgRating)
	assert.Equal(t, resdto.PaginationResponse{
		CurrentPage: 2, TotalPages: 3, TotalItems: 5, ItemsPerPage: 2, HasNext: true, HasPrev: true,
	}, res.Pagination)
}

func TestFromPropertyPage_Empty(t *testing.T) {
	page := &queries.PageResult[*queries.PropertyListItem]{
		Items:      []*queries.PropertyListItem{},
		Pagination: queries.NewPagination(queries.NewPage(1, 10), 0),
	}

	res, err := resdto.FromPropertyPage(page)
	require.NoError(t, err)

	assert.NotNil(t, res.Properties)
	assert.Empty(t, res.Properties)
	assert.False(t, res.Pagination.HasNext)
}
