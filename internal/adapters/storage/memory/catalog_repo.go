package memory

import (
	"context"
	"strings"

	"pets-api/internal/domain/groups"
	"pets-api/internal/domain/traits"
)

type groupRepo struct {
	s *Store
}

func NewGroupRepo(s *Store) groups.Repository {
	return &groupRepo{s: s}
}

func (r *groupRepo) List(ctx context.Context, filter groups.ListFilter) ([]groups.Group, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ids := sortedKeys(r.s.st.groups)
	out := make([]groups.Group, 0, filter.Limit)
	for _, id := range page(ids, filter.Limit, filter.Offset) {
		out = append(out, r.s.st.groups[id])
	}
	return out, len(ids), nil
}

type traitRepo struct {
	s *Store
}

func NewTraitRepo(s *Store) traits.Repository {
	return &traitRepo{s: s}
}

func (r *traitRepo) List(ctx context.Context, filter traits.ListFilter) ([]traits.Trait, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(filter.Name))

	ids := make([]int64, 0, len(r.s.st.traits))
	for _, id := range sortedKeys(r.s.st.traits) {
		if q == "" || strings.Contains(traits.Key(r.s.st.traits[id].Name), q) {
			ids = append(ids, id)
		}
	}

	out := make([]traits.Trait, 0, filter.Limit)
	for _, id := range page(ids, filter.Limit, filter.Offset) {
		out = append(out, r.s.st.traits[id])
	}
	return out, len(ids), nil
}
