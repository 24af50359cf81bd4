package pets_test

import (
	"context"
	"errors"
	"testing"

	"pets-api/internal/adapters/storage/memory"
	"pets-api/internal/domain/groups"
	"pets-api/internal/domain/pets"
	"pets-api/internal/domain/traits"
	"pets-api/internal/platform/logger"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fixture struct {
	svc    *pets.Service
	groups groups.Repository
	traits traits.Repository
	logs   *observer.ObservedLogs
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store := memory.New()
	core, logs := observer.New(zap.DebugLevel)
	return fixture{
		svc:    pets.NewService(memory.NewPetRepo(store), logger.FromZap(zap.New(core))),
		groups: memory.NewGroupRepo(store),
		traits: memory.NewTraitRepo(store),
		logs:   logs,
	}
}

func (f fixture) countGroups(t *testing.T) int {
	t.Helper()
	_, n, err := f.groups.List(context.Background(), groups.ListFilter{Limit: 100})
	if err != nil {
		t.Fatalf("list groups: %v", err)
	}
	return n
}

func (f fixture) countTraits(t *testing.T) int {
	t.Helper()
	_, n, err := f.traits.List(context.Background(), traits.ListFilter{Limit: 100})
	if err != nil {
		t.Fatalf("list traits: %v", err)
	}
	return n
}

func rexInput() pets.CreateInput {
	return pets.CreateInput{
		Name:   "Rex",
		Age:    3,
		Weight: 12.5,
		Group:  groups.Input{ScientificName: "Canis lupus"},
		Traits: []traits.Input{{Name: "Loyal"}},
	}
}

func TestService_Create_NewGroupCreatedOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.svc.Create(ctx, rexInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == 0 || p.Sex != pets.SexNotInformed {
		t.Fatalf("unexpected pet: %+v", p)
	}
	if p.Group.ID == 0 || p.Group.ScientificName != "Canis lupus" || p.Group.CreatedAt.IsZero() {
		t.Fatalf("unexpected group: %+v", p.Group)
	}
	if n := f.countGroups(t); n != 1 {
		t.Fatalf("expected 1 group, got %d", n)
	}
	if n := f.logs.FilterMessage("group created").Len(); n != 1 {
		t.Fatalf("expected one group created log, got %d", n)
	}

	in := rexInput()
	in.Name = "Fido"
	in.Group.ScientificName = "  canis LUPUS "
	in.Traits = []traits.Input{{Name: "LOYAL"}}
	p2, err := f.svc.Create(ctx, in)
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if p2.Group.ID != p.Group.ID || p2.Group.ScientificName != "Canis lupus" {
		t.Fatalf("expected existing group reused, got %+v", p2.Group)
	}
	if len(p2.Traits) != 1 || p2.Traits[0].ID != p.Traits[0].ID {
		t.Fatalf("expected existing trait reused, got %+v", p2.Traits)
	}
	if n := f.countGroups(t); n != 1 {
		t.Fatalf("expected still 1 group, got %d", n)
	}
	if n := f.countTraits(t); n != 1 {
		t.Fatalf("expected still 1 trait, got %d", n)
	}
}

func TestService_Create_DuplicateTraitsInPayloadLinkOnce(t *testing.T) {
	f := newFixture(t)

	in := rexInput()
	in.Traits = []traits.Input{{Name: "Calm"}, {Name: "calm"}, {Name: "Loyal"}}
	p, err := f.svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(p.Traits) != 2 {
		t.Fatalf("expected 2 distinct traits, got %+v", p.Traits)
	}
}

func TestService_Create_RejectsInvalidInput(t *testing.T) {
	f := newFixture(t)

	cases := map[string]func(*pets.CreateInput){
		"blank name":  func(in *pets.CreateInput) { in.Name = "  " },
		"bad sex":     func(in *pets.CreateInput) { in.Sex = "Dog" },
		"blank group": func(in *pets.CreateInput) { in.Group.ScientificName = "" },
		"long trait":  func(in *pets.CreateInput) { in.Traits = []traits.Input{{Name: "abcdefghijklmnopqrstu"}} },
	}
	for name, mutate := range cases {
		in := rexInput()
		mutate(&in)
		if _, err := f.svc.Create(context.Background(), in); !errors.Is(err, pets.ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
	if n := f.countGroups(t); n != 0 {
		t.Fatalf("expected no groups, got %d", n)
	}
}

func TestService_Update_MissingPetMutatesNothing(t *testing.T) {
	f := newFixture(t)

	name := "Ghost"
	_, err := f.svc.Update(context.Background(), 42, pets.UpdateInput{
		Name:   &name,
		Group:  &groups.Input{ScientificName: "Felis catus"},
		Traits: []traits.Input{{Name: "Fluffy"}},
	})
	if !errors.Is(err, pets.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if n := f.countGroups(t); n != 0 {
		t.Fatalf("expected no groups created, got %d", n)
	}
	if n := f.countTraits(t); n != 0 {
		t.Fatalf("expected no traits created, got %d", n)
	}
}

func TestService_Update_PartialAndAdditiveTraits(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.svc.Create(ctx, rexInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	sex := pets.SexMale
	got, err := f.svc.Update(ctx, p.ID, pets.UpdateInput{
		Sex:    &sex,
		Group:  &groups.Input{ScientificName: "CANIS LUPUS"},
		Traits: []traits.Input{{Name: "loyal"}, {Name: "Brave"}},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if got.Name != "Rex" || got.Age != 3 || got.Weight != 12.5 {
		t.Fatalf("untouched scalars changed: %+v", got)
	}
	if got.Sex != pets.SexMale {
		t.Fatalf("expected sex updated, got %s", got.Sex)
	}
	if got.Group.ID != p.Group.ID {
		t.Fatalf("case-insensitive group lookup must reuse group %d, got %d", p.Group.ID, got.Group.ID)
	}
	if len(got.Traits) != 2 || got.Traits[0].Name != "Loyal" || got.Traits[1].Name != "Brave" {
		t.Fatalf("expected Loyal kept and Brave added, got %+v", got.Traits)
	}

	// lista vacía no toca nada
	again, err := f.svc.Update(ctx, p.ID, pets.UpdateInput{Traits: []traits.Input{}})
	if err != nil {
		t.Fatalf("update empty: %v", err)
	}
	if len(again.Traits) != 2 {
		t.Fatalf("empty traits must be a no-op, got %+v", again.Traits)
	}
}

func TestService_Update_TraitsResolvedGlobally(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.svc.Create(ctx, rexInput())
	if err != nil {
		t.Fatalf("create a: %v", err)
	}
	in := rexInput()
	in.Name = "Luna"
	in.Traits = []traits.Input{{Name: "Playful"}}
	b, err := f.svc.Create(ctx, in)
	if err != nil {
		t.Fatalf("create b: %v", err)
	}

	// b toma "Loyal" que hoy sólo tiene a
	got, err := f.svc.Update(ctx, b.ID, pets.UpdateInput{Traits: []traits.Input{{Name: "LOYAL"}}})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(got.Traits) != 2 || got.Traits[0].ID != a.Traits[0].ID {
		t.Fatalf("expected existing Loyal linked, got %+v", got.Traits)
	}
	if n := f.countTraits(t); n != 2 {
		t.Fatalf("expected 2 traits total, got %d", n)
	}
}

func TestService_List_TraitFilter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	mk := func(name string, traitNames ...string) int64 {
		in := rexInput()
		in.Name = name
		in.Traits = nil
		for _, tn := range traitNames {
			in.Traits = append(in.Traits, traits.Input{Name: tn})
		}
		p, err := f.svc.Create(ctx, in)
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		return p.ID
	}

	a := mk("A", "Short fur", "Long fur")
	mk("B", "Loyal")
	c := mk("C", "FURRY")

	got, total, err := f.svc.List(ctx, pets.ListFilter{Trait: " fur ", Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 || len(got) != 2 || got[0].ID != a || got[1].ID != c {
		t.Fatalf("expected A and C once each, got total=%d %+v", total, got)
	}

	all, total, err := f.svc.List(ctx, pets.ListFilter{})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if total != 3 || len(all) != 3 {
		t.Fatalf("expected 3 pets, got %d", total)
	}
}

func TestService_Delete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.svc.Create(ctx, rexInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := f.svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := f.svc.GetByID(ctx, p.ID); !errors.Is(err, pets.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := f.svc.Delete(ctx, p.ID); !errors.Is(err, pets.ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting twice, got %v", err)
	}
	if n := f.countGroups(t); n != 1 {
		t.Fatalf("delete must not remove the group, got %d groups", n)
	}
	if n := f.countTraits(t); n != 1 {
		t.Fatalf("delete must not remove traits, got %d traits", n)
	}
}
