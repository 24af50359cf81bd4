package traits_test

import (
	"context"
	"testing"

	"pets-api/internal/adapters/storage/memory"
	"pets-api/internal/domain/groups"
	"pets-api/internal/domain/pets"
	"pets-api/internal/domain/traits"
)

func TestService_ListByName(t *testing.T) {
	store := memory.New()
	petsSvc := pets.NewService(memory.NewPetRepo(store), nil)

	_, err := petsSvc.Create(context.Background(), pets.CreateInput{
		Name:   "Rex",
		Age:    1,
		Weight: 1,
		Group:  groups.Input{ScientificName: "Canis lupus"},
		Traits: []traits.Input{{Name: "Short fur"}, {Name: "Loyal"}, {Name: "Long Fur"}},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	svc := traits.NewService(memory.NewTraitRepo(store))

	got, total, err := svc.List(context.Background(), traits.ListFilter{Name: " FUR "})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 || len(got) != 2 || got[0].Name != "Short fur" || got[1].Name != "Long Fur" {
		t.Fatalf("unexpected traits total=%d %+v", total, got)
	}

	got, total, err = svc.List(context.Background(), traits.ListFilter{Limit: 1, Offset: 1})
	if err != nil {
		t.Fatalf("list page: %v", err)
	}
	if total != 3 || len(got) != 1 || got[0].Name != "Loyal" {
		t.Fatalf("unexpected page total=%d %+v", total, got)
	}
}
