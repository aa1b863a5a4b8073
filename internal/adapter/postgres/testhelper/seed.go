package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/imespro/reid-backend/internal/domain"
)

// SeedZone inserts a zone with the given ID and a unit-square boundary.
func SeedZone(t *testing.T, pool *pgxpool.Pool, zoneID string) domain.WorkingZone {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var z domain.WorkingZone
	err := pool.QueryRow(ctx,
		`INSERT INTO working_zone (zone_id, zone_name, x1, y1, x2, y2, x3, y3, x4, y4)
		 VALUES ($1, $2, 0, 0, 1, 0, 1, 1, 0, 1)
		 RETURNING zone_id, zone_name, x1, y1, x2, y2, x3, y3, x4, y4, created_at, updated_at`,
		zoneID, "zone "+zoneID,
	).Scan(
		&z.ZoneID, &z.ZoneName,
		&z.X1, &z.Y1, &z.X2, &z.Y2, &z.X3, &z.Y3, &z.X4, &z.Y4,
		&z.CreatedAt, &z.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed zone %s: %v", zoneID, err)
	}
	return z
}

// SeedUser inserts a user with the given global ID and name; zoneID may be nil.
func SeedUser(t *testing.T, pool *pgxpool.Pool, globalID int64, name string, zoneID *string) domain.User {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var u domain.User
	err := pool.QueryRow(ctx,
		`INSERT INTO users (global_id, name, zone_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, global_id, name, zone_id, created_at, updated_at`,
		globalID, name, zoneID,
	).Scan(&u.ID, &u.GlobalID, &u.Name, &u.ZoneID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed user %d: %v", globalID, err)
	}
	return u
}

// Truncate wipes both tables so a test starts from an empty store.
func Truncate(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := pool.Exec(ctx, "TRUNCATE users, working_zone CASCADE"); err != nil {
		t.Fatalf("testhelper: truncate: %v", err)
	}
}
