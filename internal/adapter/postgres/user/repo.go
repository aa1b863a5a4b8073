// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/imespro/reid-backend/internal/adapter/postgres"
	"github.com/imespro/reid-backend/internal/domain"
)

const userColumns = "id, global_id, name, zone_id, created_at, updated_at"

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// Create inserts a new user and returns the persisted row.
func (r *Repo) Create(ctx context.Context, globalID int64, name string, zoneID *string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`INSERT INTO users (global_id, name, zone_id)
		 VALUES ($1, $2, $3)
		 RETURNING `+userColumns,
		globalID, name, zoneID)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", globalID)
	}
	return u, nil
}

// Update applies a partial update and returns the updated row.
// updated_at is always bumped.
func (r *Repo) Update(ctx context.Context, id int64, fields domain.UserUpdateParams) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := sq.Update("users").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + userColumns).
		PlaceholderFormat(sq.Dollar)

	if fields.GlobalID != nil {
		b = b.Set("global_id", *fields.GlobalID)
	}
	if fields.Name != nil {
		b = b.Set("name", *fields.Name)
	}
	if fields.ZoneID != nil {
		b = b.Set("zone_id", *fields.ZoneID)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	u, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// Delete removes a user by ID. Returns false if the ID was unknown.
func (r *Repo) Delete(ctx context.Context, id int64) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return false, postgres.MapError(err, "user", id)
	}
	return tag.RowsAffected() > 0, nil
}

// List returns users ordered by id ascending with offset/limit pagination.
func (r *Repo) List(ctx context.Context, offset, limit int) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		"SELECT "+userColumns+" FROM users ORDER BY id ASC OFFSET $1 LIMIT $2",
		offset, limit)
	if err != nil {
		return nil, postgres.MapError(err, "user", "list")
	}
	defer rows.Close()

	return collectUsers(rows)
}

// ListByZone returns all users assigned to the given zone, ordered by id.
func (r *Repo) ListByZone(ctx context.Context, zoneID string) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		"SELECT "+userColumns+" FROM users WHERE zone_id = $1 ORDER BY id ASC",
		zoneID)
	if err != nil {
		return nil, postgres.MapError(err, "user", zoneID)
	}
	defer rows.Close()

	return collectUsers(rows)
}

// Count returns the total number of users.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int64
	if err := q.QueryRow(ctx, "SELECT count(*) FROM users").Scan(&n); err != nil {
		return 0, postgres.MapError(err, "user", "count")
	}
	return n, nil
}

// Dict returns the global_id → name projection over the whole table.
// global_id is not unique; DISTINCT ON with a descending id sort makes the
// row with the highest id win deterministically.
func (r *Repo) Dict(ctx context.Context) (domain.UsersDict, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT DISTINCT ON (global_id) global_id, name
		 FROM users
		 ORDER BY global_id, id DESC`)
	if err != nil {
		return nil, postgres.MapError(err, "user", "dict")
	}
	defer rows.Close()

	dict := make(domain.UsersDict)
	for rows.Next() {
		var globalID int64
		var name string
		if err := rows.Scan(&globalID, &name); err != nil {
			return nil, postgres.MapError(err, "user", "dict")
		}
		dict[globalID] = name
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "user", "dict")
	}
	return dict, nil
}

// ClearZone nulls zone_id for every user referencing the given zone.
// Returns the number of affected rows.
func (r *Repo) ClearZone(ctx context.Context, zoneID string) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		"UPDATE users SET zone_id = NULL, updated_at = now() WHERE zone_id = $1",
		zoneID)
	if err != nil {
		return 0, postgres.MapError(err, "user", zoneID)
	}
	return tag.RowsAffected(), nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.GlobalID, &u.Name, &u.ZoneID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func collectUsers(rows pgx.Rows) ([]domain.User, error) {
	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.GlobalID, &u.Name, &u.ZoneID, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}
