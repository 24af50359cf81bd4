package groups

import "context"

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Group, int, error)
}

type ListFilter struct {
	Limit  int
	Offset int
}
