package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-jobboard-portal/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	jsoniter "github.com/json-iterator/go"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	collection TEXT        NOT NULL,
	id         BIGINT      NOT NULL,
	data       JSONB       NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (collection, id)
)`

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type recordRepo struct {
	db *pgxpool.Pool
}

func NewRecordRepository(db *pgxpool.Pool) domain.RecordRepository {
	return &recordRepo{db: db}
}

// Migrate creates the records table when missing.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, schema)
	return err
}

func (r *recordRepo) List(ctx context.Context, collection string, filter domain.Query) ([]domain.Record, error) {
	query := `SELECT data::text FROM records WHERE collection = $1`
	args := []interface{}{collection}
	for k, v := range filter {
		args = append(args, k, v)
		query += fmt.Sprintf(` AND data->>$%d = $%d`, len(args)-1, len(args))
	}
	query += ` ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]domain.Record, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		rec, err := decode(raw)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *recordRepo) GetByID(ctx context.Context, collection string, id int64) (domain.Record, error) {
	var raw []byte
	err := r.db.QueryRow(ctx, `SELECT data::text FROM records WHERE collection = $1 AND id = $2`, collection, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return decode(raw)
}

func (r *recordRepo) Create(ctx context.Context, collection string, rec domain.Record) (domain.Record, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Serialise id assignment per collection
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, collection); err != nil {
		return nil, err
	}

	id, hasID := rec.ID()
	if !hasID || id <= 0 {
		err := tx.QueryRow(ctx, `SELECT COALESCE(MAX(id), 0) + 1 FROM records WHERE collection = $1`, collection).Scan(&id)
		if err != nil {
			return nil, err
		}
	}

	stored := make(domain.Record, len(rec)+1)
	for k, v := range rec {
		stored[k] = v
	}
	stored["id"] = id

	payload, err := json.Marshal(stored)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `INSERT INTO records (collection, id, data) VALUES ($1, $2, $3::jsonb)`, collection, id, string(payload))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, domain.ErrConflict
		}
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return stored, nil
}

func (r *recordRepo) Patch(ctx context.Context, collection string, id int64, fields domain.Record) (domain.Record, error) {
	patch := make(domain.Record, len(fields))
	for k, v := range fields {
		if !strings.EqualFold(k, "id") {
			patch[k] = v
		}
	}

	payload, err := json.Marshal(patch)
	if err != nil {
		return nil, err
	}

	var raw []byte
	err = r.db.QueryRow(ctx,
		`UPDATE records SET data = data || $3::jsonb WHERE collection = $1 AND id = $2 RETURNING data::text`,
		collection, id, string(payload),
	).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return decode(raw)
}

func (r *recordRepo) Count(ctx context.Context, collection string) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM records WHERE collection = $1`, collection).Scan(&total)
	return total, err
}

func decode(raw []byte) (domain.Record, error) {
	var rec domain.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}
