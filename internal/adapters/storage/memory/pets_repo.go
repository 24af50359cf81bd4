package memory

import (
	"context"
	"strings"

	"pets-api/internal/domain/groups"
	"pets-api/internal/domain/pets"
	"pets-api/internal/domain/traits"
)

type petRepo struct {
	s *Store
}

func NewPetRepo(s *Store) pets.Repository {
	return &petRepo{s: s}
}

func (r *petRepo) List(ctx context.Context, filter pets.ListFilter) ([]pets.Pet, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(filter.Trait))

	ids := make([]int64, 0, len(r.s.st.pets))
	for _, id := range sortedKeys(r.s.st.pets) {
		if q == "" || r.s.st.hasTraitLike(id, q) {
			ids = append(ids, id)
		}
	}

	out := make([]pets.Pet, 0, filter.Limit)
	for _, id := range page(ids, filter.Limit, filter.Offset) {
		out = append(out, r.s.st.hydrate(r.s.st.pets[id]))
	}
	return out, len(ids), nil
}

func (r *petRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.st.get(id)
}

func (r *petRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.st.pets[id]; !ok {
		return pets.ErrNotFound
	}
	delete(r.s.st.pets, id)
	delete(r.s.st.petTraits, id)
	return nil
}

func (r *petRepo) WithTx(ctx context.Context, fn func(tx pets.Tx) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	work := r.s.st.clone()
	if err := fn(&petTx{st: &work}); err != nil {
		return err
	}
	r.s.st = work
	return nil
}

// petTx opera sobre la copia de estado de una transacción.
type petTx struct {
	st *state
}

func (t *petTx) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	return t.st.get(id)
}

func (t *petTx) Insert(ctx context.Context, p pets.Pet) (int64, error) {
	return t.st.insert(p)
}

func (t *petTx) Update(ctx context.Context, p pets.Pet) error {
	return t.st.update(p)
}

func (t *petTx) AddTraits(ctx context.Context, petID int64, traitIDs ...int64) error {
	return t.st.addTraits(petID, traitIDs)
}

func (t *petTx) GetOrCreateGroup(ctx context.Context, g groups.Group) (groups.Group, bool, error) {
	out, created := t.st.getOrCreateGroup(g)
	return out, created, nil
}

func (t *petTx) GetOrCreateTrait(ctx context.Context, tr traits.Trait) (traits.Trait, bool, error) {
	out, created := t.st.getOrCreateTrait(tr)
	return out, created, nil
}
