package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"go-jobboard-portal/internal/domain"
	"go-jobboard-portal/internal/repository/memory"
	"go-jobboard-portal/internal/usecase"
	"go-jobboard-portal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordUsecase(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewRecordUsecase(memory.NewRecordRepository(), []string{"users", "jobs"})

	t.Run("Should hide unconfigured collections", func(t *testing.T) {
		_, err := uc.List(ctx, "secrets", nil)
		assert.Equal(t, http.StatusNotFound, apperror.CodeOf(err))

		_, err = uc.Create(ctx, "secrets", domain.Record{"a": 1})
		assert.Equal(t, http.StatusNotFound, apperror.CodeOf(err))
	})

	t.Run("Should reject filter fields that are not plain names", func(t *testing.T) {
		_, err := uc.List(ctx, "jobs", domain.Query{"status') OR 1=1 --": "x"})
		assert.Equal(t, http.StatusBadRequest, apperror.CodeOf(err))
	})

	t.Run("Should reject non-numeric ids", func(t *testing.T) {
		_, err := uc.Create(ctx, "jobs", domain.Record{"id": "abc"})
		assert.Equal(t, http.StatusBadRequest, apperror.CodeOf(err))
	})

	t.Run("Should map repository errors", func(t *testing.T) {
		_, err := uc.Create(ctx, "jobs", domain.Record{"id": float64(1), "title": "A"})
		require.NoError(t, err)

		_, err = uc.Create(ctx, "jobs", domain.Record{"id": float64(1)})
		assert.Equal(t, http.StatusConflict, apperror.CodeOf(err))

		_, err = uc.Get(ctx, "jobs", 2)
		assert.Equal(t, http.StatusNotFound, apperror.CodeOf(err))

		_, err = uc.Patch(ctx, "jobs", 2, domain.Record{"status": "inactive"})
		assert.Equal(t, http.StatusNotFound, apperror.CodeOf(err))
	})

	t.Run("Should seed only empty collections", func(t *testing.T) {
		err := uc.Seed(ctx, map[string][]domain.Record{
			"users":   {{"id": float64(1), "email": "admin@example.com"}, {"id": float64(2), "email": "ana@example.com"}},
			"jobs":    {{"id": float64(5), "title": "ignored"}},
			"unknown": {{"id": float64(1)}},
		})
		require.NoError(t, err)

		users, err := uc.List(ctx, "users", nil)
		require.NoError(t, err)
		assert.Len(t, users, 2)

		jobs, err := uc.List(ctx, "jobs", nil)
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, "A", jobs[0]["title"])
	})
}

func TestHealthUsecase(t *testing.T) {
	ctx := context.Background()

	t.Run("Should report ok when every probe passes", func(t *testing.T) {
		uc := usecase.NewHealthUsecase(map[string]usecase.Probe{
			"store": func(ctx context.Context) error { return nil },
		})
		result, healthy := uc.Check(ctx)
		assert.True(t, healthy)
		assert.Equal(t, map[string]string{"status": "ok", "store": "ok"}, result)
	})

	t.Run("Should report degraded with the failing probe", func(t *testing.T) {
		uc := usecase.NewHealthUsecase(map[string]usecase.Probe{
			"store": func(ctx context.Context) error { return nil },
			"redis": func(ctx context.Context) error { return assert.AnError },
		})
		result, healthy := uc.Check(ctx)
		assert.False(t, healthy)
		assert.Equal(t, "degraded", result["status"])
		assert.Equal(t, assert.AnError.Error(), result["redis"])
	})
}
