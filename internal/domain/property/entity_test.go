//go:build unit

package property_test

import (
	"testing"
	"time"

	"rental-marketplace/internal/domain/property"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/pkg/ptr"
	"rental-marketplace/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.PropertyBuilder)
	errIs  error
}

func TestProperty(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		p, err := builder.NewPropertyBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, p.ID())
		assert.True(t, p.IsActive())
		assert.True(t, p.Availability())
		assert.Equal(t, property.TypeApartment, p.Type())
		assert.Equal(t, int64(350000), p.Price().Minor())
		assert.Equal(t, "NPR", p.Price().Currency())
		assert.Equal(t, 4, p.Capacity().MaxGuests)
	})

	t.Run("listing validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "unknown type",
				mutate: func(b *builder.PropertyBuilder) { b.Type = "castle" },
				errIs:  property.ErrInvalidType,
			},
			{
				name:   "short title",
				mutate: func(b *builder.PropertyBuilder) { b.Title = "Flat" },
				errIs:  property.ErrInvalidTitle,
			},
			{
				name:   "short description",
				mutate: func(b *builder.PropertyBuilder) { b.Description = "Too short" },
				errIs:  property.ErrInvalidDescription,
			},
			{
				name:   "missing city",
				mutate: func(b *builder.PropertyBuilder) { b.City = " " },
				errIs:  property.ErrIncompleteAddress,
			},
			{
				name:   "zero price",
				mutate: func(b *builder.PropertyBuilder) { b.Price = 0 },
				errIs:  errs.ErrValidation,
			},
			{
				name:   "zero max guests",
				mutate: func(b *builder.PropertyBuilder) { b.MaxGuests = 0 },
				errIs:  property.ErrInvalidCapacity,
			},
			{
				name:   "latitude out of range",
				mutate: func(b *builder.PropertyBuilder) { b.Latitude, b.Longitude = ptr.Of(91.0), ptr.Of(85.3) },
				errIs:  property.ErrInvalidCoordinates,
			},
			{
				name:   "blank amenity",
				mutate: func(b *builder.PropertyBuilder) { b.Amenities = []string{"WiFi", ""} },
				errIs:  property.ErrInvalidAmenity,
			},
			{
				name:   "relative image",
				mutate: func(b *builder.PropertyBuilder) { b.Images = []string{"/img/1.jpg"} },
				errIs:  property.ErrInvalidImage,
			},
		})
	})

	t.Run("amenities are de-duplicated", func(t *testing.T) {
		p, err := builder.NewPropertyBuilder().With(func(b *builder.PropertyBuilder) {
			b.Amenities = []string{"WiFi", "wifi", " Kitchen "}
		}).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, []string{"WiFi", "Kitchen"}, p.Amenities().Labels())
		assert.True(t, p.Amenities().Has("KITCHEN"))
	})
}

func TestCheckBookable(t *testing.T) {
	p, err := builder.NewPropertyBuilder().BuildDomain()
	require.NoError(t, err)

	t.Run("within capacity", func(t *testing.T) {
		require.NoError(t, p.CheckBookable(4))
	})

	t.Run("any guest count over capacity", func(t *testing.T) {
		for g := 5; g <= 50; g++ {
			err := p.CheckBookable(g)
			require.True(t, errs.Is(err, errs.ErrCapacity), "guests=%d", g)
		}
	})

	t.Run("unavailable listing", func(t *testing.T) {
		q, err := builder.NewPropertyBuilder().With(func(b *builder.PropertyBuilder) {
			b.Availability = ptr.Of(false)
		}).BuildDomain()
		require.NoError(t, err)
		require.ErrorIs(t, q.CheckBookable(1), property.ErrNotBookable)
	})

	t.Run("soft deleted listing", func(t *testing.T) {
		q, err := builder.NewPropertyBuilder().BuildDomain()
		require.NoError(t, err)
		q.Deactivate(time.Now())
		assert.False(t, q.IsActive())
		require.True(t, errs.Is(q.CheckBookable(1), errs.ErrNotFound))
	})
}

func TestApply(t *testing.T) {
	p, err := builder.NewPropertyBuilder().BuildDomain()
	require.NoError(t, err)
	later := p.CreatedAt().Add(time.Hour)

	t.Run("partial patch", func(t *testing.T) {
		err := p.Apply(property.Patch{Price: ptr.Of(4200.5), Availability: ptr.Of(false)}, later)
		require.NoError(t, err)
		assert.Equal(t, int64(420050), p.Price().Minor())
		assert.False(t, p.Availability())
		assert.Equal(t, "Cozy apartment in Thamel", p.Title())
		assert.Equal(t, later, p.UpdatedAt())
	})

	t.Run("invalid patch leaves property unchanged", func(t *testing.T) {
		err := p.Apply(property.Patch{Title: ptr.Of("Nice villa"), MaxGuests: ptr.Of(0)}, later.Add(time.Hour))
		require.ErrorIs(t, err, property.ErrInvalidCapacity)
		assert.Equal(t, "Cozy apartment in Thamel", p.Title())
		assert.Equal(t, later, p.UpdatedAt())
	})

	t.Run("empty amenities clear the set", func(t *testing.T) {
		require.NoError(t, p.Apply(property.Patch{Amenities: []string{}}, later))
		assert.Empty(t, p.Amenities().Labels())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewPropertyBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
