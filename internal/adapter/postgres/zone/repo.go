// Package zone implements the WorkingZone repository using PostgreSQL.
package zone

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/imespro/reid-backend/internal/adapter/postgres"
	"github.com/imespro/reid-backend/internal/domain"
)

const zoneColumns = "zone_id, zone_name, x1, y1, x2, y2, x3, y3, x4, y4, created_at, updated_at"

// Repo provides working-zone persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new zone repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a zone by its identifier.
func (r *Repo) GetByID(ctx context.Context, zoneID string) (*domain.WorkingZone, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		"SELECT "+zoneColumns+" FROM working_zone WHERE zone_id = $1", zoneID)

	z, err := scanZone(row)
	if err != nil {
		return nil, postgres.MapError(err, "working_zone", zoneID)
	}
	return z, nil
}

// Create inserts a new zone and returns the persisted row.
func (r *Repo) Create(ctx context.Context, z domain.WorkingZone) (*domain.WorkingZone, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`INSERT INTO working_zone (zone_id, zone_name, x1, y1, x2, y2, x3, y3, x4, y4)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING `+zoneColumns,
		z.ZoneID, z.ZoneName, z.X1, z.Y1, z.X2, z.Y2, z.X3, z.Y3, z.X4, z.Y4)

	created, err := scanZone(row)
	if err != nil {
		return nil, postgres.MapError(err, "working_zone", z.ZoneID)
	}
	return created, nil
}

// Update applies a partial update and returns the updated row.
func (r *Repo) Update(ctx context.Context, zoneID string, fields domain.ZoneUpdateParams) (*domain.WorkingZone, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := sq.Update("working_zone").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"zone_id": zoneID}).
		Suffix("RETURNING " + zoneColumns).
		PlaceholderFormat(sq.Dollar)

	if fields.NewZoneID != nil {
		b = b.Set("zone_id", *fields.NewZoneID)
	}
	if fields.ZoneName != nil {
		b = b.Set("zone_name", *fields.ZoneName)
	}
	coords := []struct {
		col string
		val *float64
	}{
		{"x1", fields.X1}, {"y1", fields.Y1},
		{"x2", fields.X2}, {"y2", fields.Y2},
		{"x3", fields.X3}, {"y3", fields.Y3},
		{"x4", fields.X4}, {"y4", fields.Y4},
	}
	for _, c := range coords {
		if c.val != nil {
			b = b.Set(c.col, *c.val)
		}
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	z, err := scanZone(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "working_zone", zoneID)
	}
	return z, nil
}

// Delete removes a zone by ID. Returns false if the ID was unknown.
// Clearing user references is the service's job (same transaction).
func (r *Repo) Delete(ctx context.Context, zoneID string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, "DELETE FROM working_zone WHERE zone_id = $1", zoneID)
	if err != nil {
		return false, postgres.MapError(err, "working_zone", zoneID)
	}
	return tag.RowsAffected() > 0, nil
}

// List returns zones ordered by zone_id with offset/limit pagination.
func (r *Repo) List(ctx context.Context, offset, limit int) ([]domain.WorkingZone, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		"SELECT "+zoneColumns+" FROM working_zone ORDER BY zone_id ASC OFFSET $1 LIMIT $2",
		offset, limit)
	if err != nil {
		return nil, postgres.MapError(err, "working_zone", "list")
	}
	defer rows.Close()

	var zones []domain.WorkingZone
	for rows.Next() {
		var z domain.WorkingZone
		if err := rows.Scan(
			&z.ZoneID, &z.ZoneName,
			&z.X1, &z.Y1, &z.X2, &z.Y2, &z.X3, &z.Y3, &z.X4, &z.Y4,
			&z.CreatedAt, &z.UpdatedAt,
		); err != nil {
			return nil, postgres.MapError(err, "working_zone", "list")
		}
		zones = append(zones, z)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "working_zone", "list")
	}
	return zones, nil
}

// Count returns the total number of zones.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int64
	if err := q.QueryRow(ctx, "SELECT count(*) FROM working_zone").Scan(&n); err != nil {
		return 0, postgres.MapError(err, "working_zone", "count")
	}
	return n, nil
}

// UserCounts returns every zone with the number of users assigned to it,
// ordered by zone_id.
func (r *Repo) UserCounts(ctx context.Context) ([]domain.ZoneUserCount, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT z.zone_id, z.zone_name, count(u.id)
		 FROM working_zone z
		 LEFT JOIN users u ON u.zone_id = z.zone_id
		 GROUP BY z.zone_id, z.zone_name
		 ORDER BY z.zone_id`)
	if err != nil {
		return nil, postgres.MapError(err, "working_zone", "user_counts")
	}
	defer rows.Close()

	var counts []domain.ZoneUserCount
	for rows.Next() {
		var c domain.ZoneUserCount
		if err := rows.Scan(&c.ZoneID, &c.ZoneName, &c.UserCount); err != nil {
			return nil, postgres.MapError(err, "working_zone", "user_counts")
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "working_zone", "user_counts")
	}
	return counts, nil
}

func scanZone(row pgx.Row) (*domain.WorkingZone, error) {
	var z domain.WorkingZone
	if err := row.Scan(
		&z.ZoneID, &z.ZoneName,
		&z.X1, &z.Y1, &z.X2, &z.Y2, &z.X3, &z.Y3, &z.X4, &z.Y4,
		&z.CreatedAt, &z.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &z, nil
}
