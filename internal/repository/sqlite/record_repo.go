package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"go-jobboard-portal/internal/domain"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type recordRepo struct {
	db *sql.DB
}

func NewRecordRepository(db *sql.DB) domain.RecordRepository {
	return &recordRepo{db: db}
}

func (r *recordRepo) List(ctx context.Context, collection string, filter domain.Query) ([]domain.Record, error) {
	query := `SELECT data FROM records WHERE collection = ?`
	args := []interface{}{collection}
	for k, v := range filter {
		// json_extract returns typed values; compare their text form like query params
		query += ` AND CAST(json_extract(data, ?) AS TEXT) = ?`
		args = append(args, "$."+k, v)
	}
	query += ` ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]domain.Record, 0)
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		rec, err := decode(raw)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *recordRepo) GetByID(ctx context.Context, collection string, id int64) (domain.Record, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM records WHERE collection = ? AND id = ?`, collection, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return decode(raw)
}

func (r *recordRepo) Create(ctx context.Context, collection string, rec domain.Record) (domain.Record, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	id, hasID := rec.ID()
	if hasID && id > 0 {
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM records WHERE collection = ? AND id = ?`, collection, id).Scan(&exists)
		if err != nil {
			return nil, err
		}
		if exists > 0 {
			return nil, domain.ErrConflict
		}
	} else {
		err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(id), 0) + 1 FROM records WHERE collection = ?`, collection).Scan(&id)
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
	if _, err := tx.ExecContext(ctx, `INSERT INTO records (collection, id, data) VALUES (?, ?, ?)`, collection, id, string(payload)); err != nil {
		return nil, err
	}

	committed = true
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return stored, nil
}

func (r *recordRepo) Patch(ctx context.Context, collection string, id int64, fields domain.Record) (domain.Record, error) {
	current, err := r.GetByID(ctx, collection, id)
	if err != nil {
		return nil, err
	}
	for k, v := range fields {
		if !strings.EqualFold(k, "id") {
			current[k] = v
		}
	}

	payload, err := json.Marshal(current)
	if err != nil {
		return nil, err
	}
	res, err := r.db.ExecContext(ctx, `UPDATE records SET data = ? WHERE collection = ? AND id = ?`, string(payload), collection, id)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, domain.ErrNotFound
	}
	return current, nil
}

func (r *recordRepo) Count(ctx context.Context, collection string) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records WHERE collection = ?`, collection).Scan(&total)
	return total, err
}

func decode(raw string) (domain.Record, error) {
	var rec domain.Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}
