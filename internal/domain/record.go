package domain

import (
	"context"
	"encoding/json"
	"strconv"
)

// Record is one schemaless JSON object held by the record store.
type Record map[string]interface{}

// ID extracts the numeric "id" field, whatever shape the decoder gave it.
func (r Record) ID() (int64, bool) {
	switch v := r["id"].(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		if v != float64(int64(v)) {
			return 0, false
		}
		return int64(v), true
	case json.Number:
		id, err := v.Int64()
		return id, err == nil
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		return id, err == nil
	}
	return 0, false
}

type RecordRepository interface {
	List(ctx context.Context, collection string, filter Query) ([]Record, error)
	GetByID(ctx context.Context, collection string, id int64) (Record, error)
	Create(ctx context.Context, collection string, rec Record) (Record, error)
	Patch(ctx context.Context, collection string, id int64, fields Record) (Record, error)
	Count(ctx context.Context, collection string) (int64, error)
}

type RecordUsecase interface {
	Collections() []string
	List(ctx context.Context, collection string, filter Query) ([]Record, error)
	Get(ctx context.Context, collection string, id int64) (Record, error)
	Create(ctx context.Context, collection string, rec Record) (Record, error)
	Patch(ctx context.Context, collection string, id int64, fields Record) (Record, error)
	Seed(ctx context.Context, data map[string][]Record) error
}
