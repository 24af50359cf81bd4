package groups

import "context"

// Service expone los grupos en modo lectura: se crean sólo como efecto de escribir mascotas.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List devuelve una página de grupos ordenados por id y el total.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Group, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.repo.List(ctx, filter)
}
