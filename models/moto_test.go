package models

import (
	"sync"
	"testing"
	"time"

	"gorm.io/gorm/schema"
)

func validParams() NewMotoParams {
	return NewMotoParams{
		Marca:       "Yamaha",
		Modelo:      "MT-07",
		Year:        2023,
		Descripcion: "Naked de media cilindrada",
		UserID:      "user-1",
	}
}

func TestNewMotoYearRange(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		wantErr bool
	}{
		{"below minimum", 1899, true},
		{"minimum", 1900, false},
		{"current era", 2020, false},
		{"next year", MaxYear(), false},
		{"too far ahead", MaxYear() + 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			p.Year = tt.year

			_, err := NewMoto(p)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewMoto year=%d: err=%v, wantErr=%v", tt.year, err, tt.wantErr)
			}
			if err != nil && !IsValidation(err) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestNewMotoNegativeValues(t *testing.T) {
	precio := -1.0
	p := validParams()
	p.Precio = &precio
	if _, err := NewMoto(p); !IsValidation(err) {
		t.Errorf("negative precio: expected validation error, got %v", err)
	}

	km := -5.0
	p = validParams()
	p.Kilometraje = &km
	if _, err := NewMoto(p); !IsValidation(err) {
		t.Errorf("negative kilometraje: expected validation error, got %v", err)
	}

	// The entity itself only forbids negative prices; zero is rejected one
	// layer up, in the service.
	zero := 0.0
	p = validParams()
	p.Precio = &zero
	if _, err := NewMoto(p); err != nil {
		t.Errorf("zero precio at entity level: unexpected error %v", err)
	}
}

func TestNewMotoAssignsIdentityAndTimestamps(t *testing.T) {
	moto, err := NewMoto(validParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if moto.ID == "" {
		t.Error("expected a generated id")
	}
	if moto.CreatedAt.IsZero() || moto.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
	if !moto.CreatedAt.Equal(moto.UpdatedAt) {
		t.Error("expected createdAt and updatedAt to share the same instant")
	}

	other, _ := NewMoto(validParams())
	if other.ID == moto.ID {
		t.Error("expected unique ids")
	}
}

func TestUpdateEmptyPatch(t *testing.T) {
	moto, _ := NewMoto(validParams())

	time.Sleep(time.Millisecond)
	updated, err := moto.Update(MotoPatch{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Marca != moto.Marca || updated.Modelo != moto.Modelo ||
		updated.Year != moto.Year || updated.Descripcion != moto.Descripcion {
		t.Error("empty patch changed data fields")
	}
	if !updated.UpdatedAt.After(moto.UpdatedAt) {
		t.Error("expected updatedAt to strictly increase")
	}
	if !updated.CreatedAt.Equal(moto.CreatedAt) {
		t.Error("createdAt must not change")
	}
}

func TestUpdateKeepsIdentity(t *testing.T) {
	moto, _ := NewMoto(validParams())

	marca := "Honda"
	updated, err := moto.Update(MotoPatch{Marca: &marca})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.ID != moto.ID {
		t.Error("id must not change")
	}
	if updated.UserID != moto.UserID {
		t.Error("userId must not change")
	}
	if updated.Marca != "Honda" {
		t.Errorf("marca = %q, want Honda", updated.Marca)
	}
	// The receiver is a value; the original must be untouched.
	if moto.Marca != "Yamaha" {
		t.Errorf("original mutated: marca = %q", moto.Marca)
	}
}

func TestUpdateValidation(t *testing.T) {
	moto, _ := NewMoto(validParams())

	badYear := 1800
	if _, err := moto.Update(MotoPatch{Year: &badYear}); !IsValidation(err) {
		t.Errorf("bad year: expected validation error, got %v", err)
	}

	negPrecio := -10.0
	if _, err := moto.Update(MotoPatch{Precio: &negPrecio}); !IsValidation(err) {
		t.Errorf("negative precio: expected validation error, got %v", err)
	}

	negKm := -1.0
	if _, err := moto.Update(MotoPatch{Kilometraje: &negKm}); !IsValidation(err) {
		t.Errorf("negative kilometraje: expected validation error, got %v", err)
	}
}

func TestMotoDeclaresOwnerListingIndex(t *testing.T) {
	s, err := schema.Parse(&Moto{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatalf("parsing schema: %v", err)
	}

	idx, ok := s.ParseIndexes()["idx_motos_user_created"]
	if !ok {
		t.Fatal("idx_motos_user_created not declared; AutoMigrate would never create it")
	}
	if len(idx.Fields) != 2 {
		t.Fatalf("index has %d fields, want 2", len(idx.Fields))
	}
	if idx.Fields[0].DBName != "user_id" || idx.Fields[1].DBName != "created_at" {
		t.Errorf("index columns = (%s, %s), want (user_id, created_at)",
			idx.Fields[0].DBName, idx.Fields[1].DBName)
	}
	if idx.Fields[1].Sort != "desc" {
		t.Errorf("created_at sort = %q, want desc", idx.Fields[1].Sort)
	}
}

func TestValidEstado(t *testing.T) {
	for _, estado := range []string{EstadoNuevo, EstadoUsado, EstadoSeminuevo} {
		if !ValidEstado(estado) {
			t.Errorf("ValidEstado(%q) = false", estado)
		}
	}
	if ValidEstado("destruida") {
		t.Error("ValidEstado accepted an unknown value")
	}
}
