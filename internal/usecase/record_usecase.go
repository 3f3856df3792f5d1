package usecase

import (
	"context"
	"errors"
	"regexp"

	"go-jobboard-portal/internal/domain"
	"go-jobboard-portal/pkg/apperror"
	"go-jobboard-portal/pkg/logger"
)

// filterKey restricts query filters to plain field names; repositories
// embed the key in a JSON path.
var filterKey = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

type recordUsecase struct {
	repo        domain.RecordRepository
	collections []string
	allowed     map[string]bool
}

func NewRecordUsecase(repo domain.RecordRepository, collections []string) domain.RecordUsecase {
	allowed := make(map[string]bool, len(collections))
	for _, c := range collections {
		allowed[c] = true
	}
	return &recordUsecase{repo: repo, collections: collections, allowed: allowed}
}

func (u *recordUsecase) Collections() []string {
	return u.collections
}

func (u *recordUsecase) List(ctx context.Context, collection string, filter domain.Query) ([]domain.Record, error) {
	if err := u.checkCollection(collection); err != nil {
		return nil, err
	}
	for k := range filter {
		if !filterKey.MatchString(k) {
			return nil, apperror.BadRequest("Invalid filter field: " + k)
		}
	}

	records, err := u.repo.List(ctx, collection, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return records, nil
}

func (u *recordUsecase) Get(ctx context.Context, collection string, id int64) (domain.Record, error) {
	if err := u.checkCollection(collection); err != nil {
		return nil, err
	}
	rec, err := u.repo.GetByID(ctx, collection, id)
	if err != nil {
		return nil, mapRecordError(err)
	}
	return rec, nil
}

func (u *recordUsecase) Create(ctx context.Context, collection string, rec domain.Record) (domain.Record, error) {
	if err := u.checkCollection(collection); err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperror.BadRequest("Request body must be a JSON object")
	}
	if _, present := rec["id"]; present {
		if id, ok := rec.ID(); !ok || id < 0 {
			return nil, apperror.BadRequest("Field id must be a positive integer")
		}
	}

	created, err := u.repo.Create(ctx, collection, rec)
	if err != nil {
		return nil, mapRecordError(err)
	}
	return created, nil
}

func (u *recordUsecase) Patch(ctx context.Context, collection string, id int64, fields domain.Record) (domain.Record, error) {
	if err := u.checkCollection(collection); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, apperror.BadRequest("Request body must be a JSON object")
	}

	updated, err := u.repo.Patch(ctx, collection, id, fields)
	if err != nil {
		return nil, mapRecordError(err)
	}
	return updated, nil
}

// Seed loads json-server style fixtures into every configured collection
// that is still empty. Collections with data are left alone.
func (u *recordUsecase) Seed(ctx context.Context, data map[string][]domain.Record) error {
	for _, collection := range u.collections {
		records, ok := data[collection]
		if !ok || len(records) == 0 {
			continue
		}

		count, err := u.repo.Count(ctx, collection)
		if err != nil {
			return err
		}
		if count > 0 {
			logger.Log.Info("Skipping seed for non-empty collection", "collection", collection, "count", count)
			continue
		}

		for _, rec := range records {
			if _, err := u.repo.Create(ctx, collection, rec); err != nil {
				return err
			}
		}
		logger.Log.Info("Seeded collection", "collection", collection, "records", len(records))
	}
	return nil
}

func (u *recordUsecase) checkCollection(collection string) error {
	if !u.allowed[collection] {
		return apperror.NotFound("Collection not found")
	}
	return nil
}

func mapRecordError(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return apperror.NotFound("Record not found")
	case errors.Is(err, domain.ErrConflict):
		return apperror.Conflict("Record with this id already exists")
	default:
		return apperror.Internal(err)
	}
}
