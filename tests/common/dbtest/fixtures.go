//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"slotbook/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// CreateTestUser inserts a user with the given role and returns its ID. The
// password for every fixture user is "password123".
func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	hash, err := password.HashPassword("password123")
	require.NoError(t, err)

	userID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, name, role, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, email, hash, "Test "+role, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}
	return userID
}

// CreateTestService inserts an active bookable service and returns its ID.
func CreateTestService(t *testing.T, db DBLike, name string, durationMin int) uuid.UUID {
	t.Helper()

	serviceID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO services (id, name, duration_min, price_cents, is_active) VALUES ($1, $2, $3, $4, true)",
		serviceID, name, durationMin, int64(5000))
	require.NoError(t, err)
	return serviceID
}

// CreateTestStaff inserts an active staff member and returns its ID.
func CreateTestStaff(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	staffID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO staff (id, name, title, time_zone, is_active) VALUES ($1, $2, $3, $4, true)",
		staffID, name, "Therapist", "UTC")
	require.NoError(t, err)
	return staffID
}

// CreateTestBooking inserts a confirmed booking occupying [start, start+d).
func CreateTestBooking(t *testing.T, db DBLike, serviceID, staffID, clientID uuid.UUID, start time.Time, d time.Duration) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO bookings (id, service_id, staff_id, client_id, slot, status) VALUES ($1, $2, $3, $4, tstzrange($5, $6, '[)'), 'confirmed')",
		bookingID, serviceID, staffID, clientID, start, start.Add(d))
	require.NoError(t, err)
	return bookingID
}
