package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pets-api/internal/domain/groups"
	"pets-api/internal/domain/pets"
	"pets-api/internal/domain/traits"
)

// Store guarda mascotas, grupos y traits en memoria (solo para dev/tests).
// Un único mutex serializa las escrituras; WithTx trabaja sobre una copia y la
// publica sólo si fn no falla.
type Store struct {
	mu sync.RWMutex
	st state
}

type petRow struct {
	pet     pets.Pet // Traits siempre vacío; se arma con petTraits
	groupID int64
}

type state struct {
	pets      map[int64]petRow
	groups    map[int64]groups.Group
	groupKeys map[string]int64
	traits    map[int64]traits.Trait
	traitKeys map[string]int64
	petTraits map[int64]map[int64]struct{}

	nextPetID   int64
	nextGroupID int64
	nextTraitID int64
}

func New() *Store {
	return &Store{st: newState()}
}

func newState() state {
	return state{
		pets:      make(map[int64]petRow),
		groups:    make(map[int64]groups.Group),
		groupKeys: make(map[string]int64),
		traits:    make(map[int64]traits.Trait),
		traitKeys: make(map[string]int64),
		petTraits: make(map[int64]map[int64]struct{}),
	}
}

func (s state) clone() state {
	c := newState()
	for k, v := range s.pets {
		c.pets[k] = v
	}
	for k, v := range s.groups {
		c.groups[k] = v
	}
	for k, v := range s.groupKeys {
		c.groupKeys[k] = v
	}
	for k, v := range s.traits {
		c.traits[k] = v
	}
	for k, v := range s.traitKeys {
		c.traitKeys[k] = v
	}
	for petID, set := range s.petTraits {
		cs := make(map[int64]struct{}, len(set))
		for id := range set {
			cs[id] = struct{}{}
		}
		c.petTraits[petID] = cs
	}
	c.nextPetID = s.nextPetID
	c.nextGroupID = s.nextGroupID
	c.nextTraitID = s.nextTraitID
	return c
}

// Ping siempre responde ok; existe para que /health trate igual a todos los stores.
func (s *Store) Ping(context.Context) error { return nil }

// ---- lectura ----

func (s *state) hydrate(row petRow) pets.Pet {
	p := row.pet
	p.Group = s.groups[row.groupID]

	ids := make([]int64, 0, len(s.petTraits[p.ID]))
	for id := range s.petTraits[p.ID] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	p.Traits = make([]traits.Trait, 0, len(ids))
	for _, id := range ids {
		p.Traits = append(p.Traits, s.traits[id])
	}
	return p
}

func (s *state) get(id int64) (pets.Pet, error) {
	row, ok := s.pets[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return s.hydrate(row), nil
}

func (s *state) hasTraitLike(petID int64, q string) bool {
	for id := range s.petTraits[petID] {
		if strings.Contains(traits.Key(s.traits[id].Name), q) {
			return true
		}
	}
	return false
}

// ---- escritura (sólo sobre la copia de una tx) ----

func (s *state) insert(p pets.Pet) (int64, error) {
	if _, ok := s.groups[p.Group.ID]; !ok {
		return 0, errors.New("memory: unknown group")
	}
	s.nextPetID++
	p.ID = s.nextPetID
	p.Traits = nil
	s.pets[p.ID] = petRow{pet: p, groupID: p.Group.ID}
	return p.ID, nil
}

func (s *state) update(p pets.Pet) error {
	if _, ok := s.pets[p.ID]; !ok {
		return pets.ErrNotFound
	}
	if _, ok := s.groups[p.Group.ID]; !ok {
		return errors.New("memory: unknown group")
	}
	p.Traits = nil
	s.pets[p.ID] = petRow{pet: p, groupID: p.Group.ID}
	return nil
}

func (s *state) addTraits(petID int64, ids []int64) error {
	if _, ok := s.pets[petID]; !ok {
		return pets.ErrNotFound
	}
	set := s.petTraits[petID]
	if set == nil {
		set = make(map[int64]struct{}, len(ids))
		s.petTraits[petID] = set
	}
	for _, id := range ids {
		if _, ok := s.traits[id]; !ok {
			return errors.New("memory: unknown trait")
		}
		set[id] = struct{}{}
	}
	return nil
}

func (s *state) getOrCreateGroup(g groups.Group) (groups.Group, bool) {
	key := groups.Key(g.ScientificName)
	if id, ok := s.groupKeys[key]; ok {
		return s.groups[id], false
	}
	s.nextGroupID++
	g.ID = s.nextGroupID
	s.groups[g.ID] = g
	s.groupKeys[key] = g.ID
	return g, true
}

func (s *state) getOrCreateTrait(t traits.Trait) (traits.Trait, bool) {
	key := traits.Key(t.Name)
	if id, ok := s.traitKeys[key]; ok {
		return s.traits[id], false
	}
	s.nextTraitID++
	t.ID = s.nextTraitID
	s.traits[t.ID] = t
	s.traitKeys[key] = t.ID
	return t, true
}

// page recorta ids ya ordenados.
func page(ids []int64, limit, offset int) []int64 {
	if offset >= len(ids) {
		return nil
	}
	end := len(ids)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return ids[offset:end]
}

func sortedKeys[V any](m map[int64]V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
