package traits

import "context"

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Trait, int, error)
}

type ListFilter struct {
	// Name filtra por substring case-insensitive (vacío = todos).
	Name   string
	Limit  int
	Offset int
}
