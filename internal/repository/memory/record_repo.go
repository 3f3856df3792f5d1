package memory

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"go-jobboard-portal/internal/domain"
)

// recordRepo keeps every collection in process memory. Suitable for local
// development and tests; nothing survives a restart.
type recordRepo struct {
	mu          sync.RWMutex
	collections map[string]map[int64]domain.Record
}

func NewRecordRepository() domain.RecordRepository {
	return &recordRepo{collections: make(map[string]map[int64]domain.Record)}
}

func (r *recordRepo) List(ctx context.Context, collection string, filter domain.Query) ([]domain.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.collections[collection]
	ids := make([]int64, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	records := make([]domain.Record, 0, len(ids))
	for _, id := range ids {
		rec := items[id]
		if matches(rec, filter) {
			records = append(records, clone(rec))
		}
	}
	return records, nil
}

func (r *recordRepo) GetByID(ctx context.Context, collection string, id int64) (domain.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.collections[collection][id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return clone(rec), nil
}

func (r *recordRepo) Create(ctx context.Context, collection string, rec domain.Record) (domain.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, ok := r.collections[collection]
	if !ok {
		items = make(map[int64]domain.Record)
		r.collections[collection] = items
	}

	id, hasID := rec.ID()
	if hasID && id > 0 {
		if _, exists := items[id]; exists {
			return nil, domain.ErrConflict
		}
	} else {
		id = 1
		for existing := range items {
			if existing >= id {
				id = existing + 1
			}
		}
	}

	stored := clone(rec)
	stored["id"] = id
	items[id] = stored
	return clone(stored), nil
}

func (r *recordRepo) Patch(ctx context.Context, collection string, id int64, fields domain.Record) (domain.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.collections[collection][id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	for k, v := range fields {
		if k == "id" {
			continue
		}
		rec[k] = v
	}
	return clone(rec), nil
}

func (r *recordRepo) Count(ctx context.Context, collection string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.collections[collection])), nil
}

// matches compares the string form of each filtered field, the way query
// parameters arrive.
func matches(rec domain.Record, filter domain.Query) bool {
	for k, want := range filter {
		v, ok := rec[k]
		if !ok || stringify(v) != want {
			return false
		}
	}
	return true
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

func clone(rec domain.Record) domain.Record {
	out := make(domain.Record, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out
}
