package usecase_test

import (
	"context"

	"go-jobboard-portal/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockRepo stands in for one Resource Client collection.
type MockRepo[T any] struct {
	mock.Mock
}

func (m *MockRepo[T]) List(ctx context.Context, q domain.Query) ([]T, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockRepo[T]) Get(ctx context.Context, id int64) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRepo[T]) Create(ctx context.Context, record *T) (*T, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRepo[T]) Patch(ctx context.Context, id int64, fields map[string]interface{}) (*T, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}
