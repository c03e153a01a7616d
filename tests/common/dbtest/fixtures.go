//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"rental-marketplace/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestPassword is the plain-text password of every fixture user.
const TestPassword = "password123"

var (
	hashOnce     sync.Once
	testPassHash string
)

func testPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := password.HashPasswordWithCost(TestPassword, bcrypt.MinCost)
		if err != nil {
			panic(err)
		}
		testPassHash = h
	})
	return testPassHash
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, first_name, last_name, email, password_hash, role, is_active)
		VALUES ($1, 'Test', 'User', $2, $3, $4, true) ON CONFLICT (email) DO NOTHING`,
		userID, email, testPasswordHash(t), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

// CreateTestProperty inserts an active listing priced at pricePerNight major units (NPR).
func CreateTestProperty(t *testing.T, db DBLike, hostID uuid.UUID, pricePerNight float64, maxGuests int) uuid.UUID {
	t.Helper()

	propertyID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO properties
		(id, host_id, title, description, type, address, city, state, country, zip_code, price, currency, bedrooms, bathrooms, max_guests)
		VALUES ($1, $2, 'Lakeside cottage', 'Quiet two bedroom cottage a short walk from the lake.', 'house',
		        'Lakeside Road 12', 'Pokhara', 'Gandaki', 'Nepal', '33700', $3, 'NPR', 2, 1, $4)`,
		propertyID, hostID, pricePerNight, maxGuests)
	require.NoError(t, err)

	return propertyID
}

// CreateTestBooking inserts a booking directly, bypassing availability checks.
func CreateTestBooking(t *testing.T, db DBLike, userID, propertyID uuid.UUID, checkIn, checkOut time.Time, totalPrice float64, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO bookings
		(id, user_id, property_id, check_in, check_out, guests, total_price, status)
		VALUES ($1, $2, $3, $4, $5, 1, $6, $7)`,
		bookingID, userID, propertyID, checkIn, checkOut, totalPrice, status)
	require.NoError(t, err)

	return bookingID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
