package repositories

import (
	"testing"

	"motosgarage-api/models"
)

func seedMoto(t *testing.T, repo *MemoryMotoRepository, marca, modelo string, year int, precio *float64, estado *string) models.Moto {
	t.Helper()
	moto, err := models.NewMoto(models.NewMotoParams{
		Marca:       marca,
		Modelo:      modelo,
		Year:        year,
		Descripcion: "test",
		UserID:      "user-1",
		Precio:      precio,
		Estado:      estado,
	})
	if err != nil {
		t.Fatalf("NewMoto: %v", err)
	}
	if _, err := repo.Create(moto); err != nil {
		t.Fatalf("Create: %v", err)
	}
	return moto
}

func f(v float64) *float64 { return &v }
func i(v int) *int         { return &v }
func s(v string) *string   { return &v }

func TestMemoryMotoRepositoryCRUD(t *testing.T) {
	repo := NewMemoryMotoRepository()
	moto := seedMoto(t, repo, "Yamaha", "MT-07", 2023, nil, nil)

	found, err := repo.FindByID(moto.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.Marca != "Yamaha" {
		t.Errorf("marca = %q", found.Marca)
	}

	if _, err := repo.FindByID("missing"); !models.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}

	moto.Marca = "Honda"
	if _, err := repo.Update(moto.ID, moto); err != nil {
		t.Fatalf("Update: %v", err)
	}
	found, _ = repo.FindByID(moto.ID)
	if found.Marca != "Honda" {
		t.Errorf("marca after update = %q", found.Marca)
	}

	if _, err := repo.Update("missing", moto); !models.IsNotFound(err) {
		t.Errorf("update missing id: expected not found, got %v", err)
	}

	if err := repo.Delete(moto.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(moto.ID); !models.IsNotFound(err) {
		t.Errorf("second delete: expected not found, got %v", err)
	}
}

func TestMemoryMotoRepositoryPreservesInsertionOrder(t *testing.T) {
	repo := NewMemoryMotoRepository()
	first := seedMoto(t, repo, "Yamaha", "MT-07", 2023, nil, nil)
	second := seedMoto(t, repo, "Honda", "CB500", 2022, nil, nil)

	all, err := repo.FindAll()
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(all) != 2 || all[0].ID != first.ID || all[1].ID != second.ID {
		t.Error("FindAll must keep insertion order")
	}
}

func TestMemoryMotoRepositorySearch(t *testing.T) {
	repo := NewMemoryMotoRepository()
	seedMoto(t, repo, "Yamaha", "MT-07", 2018, f(5000), s(models.EstadoUsado))
	seedMoto(t, repo, "Honda", "CB650R", 2024, f(9000), s(models.EstadoNuevo))

	tests := []struct {
		name    string
		filters MotoSearchFilters
		want    int
	}{
		{"substring marca case-insensitive", MotoSearchFilters{Marca: "yAmA"}, 1},
		{"substring modelo", MotoSearchFilters{Modelo: "650"}, 1},
		{"year min inclusive", MotoSearchFilters{YearMin: i(2024)}, 1},
		{"year max inclusive", MotoSearchFilters{YearMax: i(2018)}, 1},
		{"precio range", MotoSearchFilters{PrecioMin: f(5000), PrecioMax: f(5000)}, 1},
		{"estado", MotoSearchFilters{Estado: "nuevo"}, 1},
		{"conjunctive no match", MotoSearchFilters{Marca: "Yamaha", YearMin: i(2020)}, 0},
		{"no filters", MotoSearchFilters{}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Search(tt.filters)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("got %d motos, want %d", len(got), tt.want)
			}
		})
	}
}

func TestMemoryUserRepository(t *testing.T) {
	repo := NewMemoryUserRepository()

	if _, err := repo.Create(models.User{ID: "u1", Name: "John", Email: "john@example.com"}); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Create(models.User{ID: "u2", Name: "Jane", Email: "jane@example.com"}); err != nil {
		t.Fatal(err)
	}

	user, err := repo.FindByEmail("jane@example.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if user.ID != "u2" {
		t.Errorf("id = %q", user.ID)
	}

	if _, err := repo.FindByEmail("nobody@example.com"); !models.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}

	users, err := repo.FindByIDs([]string{"u1", "u2", "missing"})
	if err != nil {
		t.Fatalf("FindByIDs: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("got %d users, want 2", len(users))
	}
}
