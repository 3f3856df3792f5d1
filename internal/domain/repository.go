package domain

import "context"

// Query holds equality filters sent to the record store as query parameters.
type Query map[string]string

// Repository is the typed view of one record store collection.
type Repository[T any] interface {
	List(ctx context.Context, q Query) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, record *T) (*T, error)
	Patch(ctx context.Context, id int64, fields map[string]interface{}) (*T, error)
}
