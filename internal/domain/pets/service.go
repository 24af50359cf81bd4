package pets

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"pets-api/internal/domain/groups"
	"pets-api/internal/domain/traits"
	"pets-api/internal/platform/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

type Service struct {
	repo Repository
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		repo: repo,
		log:  log.With(map[string]any{"component": "pets"}),
		now:  time.Now,
	}
}

type CreateInput struct {
	Name   string
	Age    int
	Weight float64
	Sex    Sex // vacío = Not Informed

	Group  groups.Input
	Traits []traits.Input
}

// UpdateInput es un PATCH: nil = no tocar.
type UpdateInput struct {
	Name   *string
	Age    *int
	Weight *float64
	Sex    *Sex

	Group *groups.Input
	// Traits se agregan a las ya asociadas; nil o vacío = no tocar.
	Traits []traits.Input
}

// Create resuelve (o crea) grupo y traits y guarda la mascota, todo en una transacción.
func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Sex == "" {
		in.Sex = SexNotInformed
	}
	if !validName(in.Name) || !in.Sex.Valid() || !validGroup(in.Group) || !validTraits(in.Traits) {
		return Pet{}, ErrInvalidInput
	}

	var created Pet
	err := s.repo.WithTx(ctx, func(tx Tx) error {
		g, err := s.resolveGroup(ctx, tx, in.Group)
		if err != nil {
			return err
		}

		id, err := tx.Insert(ctx, Pet{
			Name:   in.Name,
			Age:    in.Age,
			Weight: in.Weight,
			Sex:    in.Sex,
			Group:  g,
		})
		if err != nil {
			return err
		}

		if err := s.linkTraits(ctx, tx, id, in.Traits); err != nil {
			return err
		}

		created, err = tx.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return Pet{}, err
	}

	s.log.Info("pet created", map[string]any{
		"pet_id":   created.ID,
		"group_id": created.Group.ID,
		"traits":   len(created.Traits),
	})
	return created, nil
}

// Update aplica un PATCH. Si la mascota no existe devuelve ErrNotFound sin escribir nada.
// Los traits se resuelven igual que en Create (globales, se crean si faltan) y se agregan todos.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Pet, error) {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if !validName(name) {
			return Pet{}, ErrInvalidInput
		}
		in.Name = &name
	}
	if in.Sex != nil && !in.Sex.Valid() {
		return Pet{}, ErrInvalidInput
	}
	if in.Group != nil && !validGroup(*in.Group) {
		return Pet{}, ErrInvalidInput
	}
	if !validTraits(in.Traits) {
		return Pet{}, ErrInvalidInput
	}

	var updated Pet
	err := s.repo.WithTx(ctx, func(tx Tx) error {
		p, err := tx.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if in.Group != nil {
			g, err := s.resolveGroup(ctx, tx, *in.Group)
			if err != nil {
				return err
			}
			p.Group = g
		}

		if in.Name != nil {
			p.Name = *in.Name
		}
		if in.Age != nil {
			p.Age = *in.Age
		}
		if in.Weight != nil {
			p.Weight = *in.Weight
		}
		if in.Sex != nil {
			p.Sex = *in.Sex
		}

		if err := tx.Update(ctx, p); err != nil {
			return err
		}

		if err := s.linkTraits(ctx, tx, p.ID, in.Traits); err != nil {
			return err
		}

		updated, err = tx.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return Pet{}, err
	}

	s.log.Info("pet updated", map[string]any{"pet_id": updated.ID})
	return updated, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	if id <= 0 {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Pet, int, error) {
	filter.Trait = strings.TrimSpace(filter.Trait)
	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.repo.List(ctx, filter)
}

// Delete borra la mascota y sus asociaciones; grupo y traits quedan.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("pet deleted", map[string]any{"pet_id": id})
	return nil
}

func (s *Service) resolveGroup(ctx context.Context, tx Tx, in groups.Input) (groups.Group, error) {
	g, created, err := tx.GetOrCreateGroup(ctx, groups.Group{
		ScientificName: strings.TrimSpace(in.ScientificName),
		CreatedAt:      s.now(),
	})
	if err != nil {
		return groups.Group{}, err
	}
	if created {
		s.log.Debug("group created", map[string]any{"group_id": g.ID, "scientific_name": g.ScientificName})
	}
	return g, nil
}

func (s *Service) linkTraits(ctx context.Context, tx Tx, petID int64, in []traits.Input) error {
	if len(in) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(in))
	for _, ti := range in {
		t, created, err := tx.GetOrCreateTrait(ctx, traits.Trait{
			Name:      strings.TrimSpace(ti.Name),
			CreatedAt: s.now(),
		})
		if err != nil {
			return err
		}
		if created {
			s.log.Debug("trait created", map[string]any{"trait_id": t.ID, "name": t.Name})
		}
		ids = append(ids, t.ID)
	}
	return tx.AddTraits(ctx, petID, ids...)
}

func validName(name string) bool {
	return name != "" && utf8.RuneCountInString(name) <= MaxNameLength
}

func validGroup(in groups.Input) bool {
	return groups.Key(in.ScientificName) != "" &&
		utf8.RuneCountInString(strings.TrimSpace(in.ScientificName)) <= groups.MaxScientificNameLength
}

func validTraits(in []traits.Input) bool {
	for _, t := range in {
		if traits.Key(t.Name) == "" || utf8.RuneCountInString(strings.TrimSpace(t.Name)) > traits.MaxNameLength {
			return false
		}
	}
	return true
}
