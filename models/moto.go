package models

import (
	"time"

	"github.com/google/uuid"
)

// Estado values a moto listing can carry.
const (
	EstadoNuevo     = "nuevo"
	EstadoUsado     = "usado"
	EstadoSeminuevo = "seminuevo"
)

// MinYear is the oldest accepted model year.
const MinYear = 1900

// Moto is a single motorcycle listing owned by a user. The struct is treated
// as an immutable value: Update returns a fresh copy instead of mutating the
// receiver, and ID, UserID and CreatedAt are fixed at creation.
type Moto struct {
	ID          string `json:"id" gorm:"primaryKey;size:191"`
	UserID      string `json:"userId" gorm:"not null;size:191;index:idx_motos_user_created,priority:1"`
	Marca       string `json:"marca" gorm:"not null;size:100"`
	Modelo      string `json:"modelo" gorm:"not null;size:100"`
	Year        int    `json:"year" gorm:"not null"`
	Descripcion string `json:"descripcion" gorm:"not null;type:text"`

	// Engine
	MotorCilindrada  *float64 `json:"motorCilindrada,omitempty"` // cc
	MotorTipo        *string  `json:"motorTipo,omitempty" gorm:"size:50"`
	MotorPotencia    *float64 `json:"motorPotencia,omitempty"` // HP
	MotorTorque      *float64 `json:"motorTorque,omitempty"`   // Nm
	MotorCombustible *string  `json:"motorCombustible,omitempty" gorm:"size:50"`

	// Speed
	VelocidadMaxima  *float64 `json:"velocidadMaxima,omitempty"`  // km/h
	Aceleracion0a100 *float64 `json:"aceleracion0a100,omitempty"` // s
	VelocidadCrucero *float64 `json:"velocidadCrucero,omitempty"` // km/h

	// Physical
	Peso            *float64 `json:"peso,omitempty"`            // kg
	AlturaAsiento   *float64 `json:"alturaAsiento,omitempty"`   // mm
	CapacidadTanque *float64 `json:"capacidadTanque,omitempty"` // L
	Autonomia       *float64 `json:"autonomia,omitempty"`       // km

	Colores StringSlice `json:"colores,omitempty"`

	Transmision      *string `json:"transmision,omitempty" gorm:"size:50"`
	FrenosDelanteros *string `json:"frenosDelanteros,omitempty" gorm:"size:50"`
	FrenosTraseros   *string `json:"frenosTraseros,omitempty" gorm:"size:50"`
	Suspension       *string `json:"suspension,omitempty" gorm:"size:100"`
	Neumaticos       *string `json:"neumaticos,omitempty" gorm:"size:100"`

	Precio      *float64 `json:"precio,omitempty"`
	Estado      *string  `json:"estado,omitempty" gorm:"size:20"`
	Kilometraje *float64 `json:"kilometraje,omitempty"`
	Imagen      *string  `json:"imagen,omitempty" gorm:"size:500"`

	CreatedAt time.Time `json:"createdAt" gorm:"index:idx_motos_user_created,priority:2,sort:desc"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewMotoParams carries everything needed to create a moto. Optional fields
// are pointers; nil means absent, never zero.
type NewMotoParams struct {
	Marca       string
	Modelo      string
	Year        int
	Descripcion string
	UserID      string

	MotorCilindrada  *float64
	MotorTipo        *string
	MotorPotencia    *float64
	MotorTorque      *float64
	MotorCombustible *string
	VelocidadMaxima  *float64
	Aceleracion0a100 *float64
	VelocidadCrucero *float64
	Peso             *float64
	AlturaAsiento    *float64
	CapacidadTanque  *float64
	Autonomia        *float64
	Colores          StringSlice
	Transmision      *string
	FrenosDelanteros *string
	FrenosTraseros   *string
	Suspension       *string
	Neumaticos       *string
	Precio           *float64
	Estado           *string
	Kilometraje      *float64
	Imagen           *string
}

// MotoPatch is a sparse update. A nil field leaves the current value
// untouched. ID, UserID and CreatedAt are not patchable.
type MotoPatch struct {
	Marca       *string
	Modelo      *string
	Year        *int
	Descripcion *string

	MotorCilindrada  *float64
	MotorTipo        *string
	MotorPotencia    *float64
	MotorTorque      *float64
	MotorCombustible *string
	VelocidadMaxima  *float64
	Aceleracion0a100 *float64
	VelocidadCrucero *float64
	Peso             *float64
	AlturaAsiento    *float64
	CapacidadTanque  *float64
	Autonomia        *float64
	Colores          StringSlice
	Transmision      *string
	FrenosDelanteros *string
	FrenosTraseros   *string
	Suspension       *string
	Neumaticos       *string
	Precio           *float64
	Estado           *string
	Kilometraje      *float64
	Imagen           *string
}

// MaxYear is the newest accepted model year (next year's models are already
// on sale).
func MaxYear() int {
	return time.Now().Year() + 1
}

// ValidEstado reports whether s is one of the accepted estado values.
func ValidEstado(s string) bool {
	return s == EstadoNuevo || s == EstadoUsado || s == EstadoSeminuevo
}

// NewMoto builds a new moto with a fresh ID and both timestamps set to the
// same instant. Business invariants are enforced here, not only at the
// transport boundary.
func NewMoto(p NewMotoParams) (Moto, error) {
	if p.Year < MinYear || p.Year > MaxYear() {
		return Moto{}, NewValidationError("año de la moto no válido")
	}
	if p.Precio != nil && *p.Precio < 0 {
		return Moto{}, NewValidationError("el precio no puede ser negativo")
	}
	if p.Kilometraje != nil && *p.Kilometraje < 0 {
		return Moto{}, NewValidationError("el kilometraje no puede ser negativo")
	}

	now := time.Now()
	return Moto{
		ID:          uuid.New().String(),
		UserID:      p.UserID,
		Marca:       p.Marca,
		Modelo:      p.Modelo,
		Year:        p.Year,
		Descripcion: p.Descripcion,

		MotorCilindrada:  p.MotorCilindrada,
		MotorTipo:        p.MotorTipo,
		MotorPotencia:    p.MotorPotencia,
		MotorTorque:      p.MotorTorque,
		MotorCombustible: p.MotorCombustible,
		VelocidadMaxima:  p.VelocidadMaxima,
		Aceleracion0a100: p.Aceleracion0a100,
		VelocidadCrucero: p.VelocidadCrucero,
		Peso:             p.Peso,
		AlturaAsiento:    p.AlturaAsiento,
		CapacidadTanque:  p.CapacidadTanque,
		Autonomia:        p.Autonomia,
		Colores:          p.Colores,
		Transmision:      p.Transmision,
		FrenosDelanteros: p.FrenosDelanteros,
		FrenosTraseros:   p.FrenosTraseros,
		Suspension:       p.Suspension,
		Neumaticos:       p.Neumaticos,
		Precio:           p.Precio,
		Estado:           p.Estado,
		Kilometraje:      p.Kilometraje,
		Imagen:           p.Imagen,

		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update applies a sparse patch and returns the resulting moto. The receiver
// is left untouched; ID, UserID and CreatedAt carry over unchanged and
// UpdatedAt is refreshed even when the patch is empty.
func (m Moto) Update(patch MotoPatch) (Moto, error) {
	if patch.Year != nil && (*patch.Year < MinYear || *patch.Year > MaxYear()) {
		return Moto{}, NewValidationError("año de la moto no válido")
	}
	if patch.Precio != nil && *patch.Precio < 0 {
		return Moto{}, NewValidationError("el precio no puede ser negativo")
	}
	if patch.Kilometraje != nil && *patch.Kilometraje < 0 {
		return Moto{}, NewValidationError("el kilometraje no puede ser negativo")
	}

	updated := m
	updated.UpdatedAt = time.Now()

	if patch.Marca != nil {
		updated.Marca = *patch.Marca
	}
	if patch.Modelo != nil {
		updated.Modelo = *patch.Modelo
	}
	if patch.Year != nil {
		updated.Year = *patch.Year
	}
	if patch.Descripcion != nil {
		updated.Descripcion = *patch.Descripcion
	}
	if patch.MotorCilindrada != nil {
		updated.MotorCilindrada = patch.MotorCilindrada
	}
	if patch.MotorTipo != nil {
		updated.MotorTipo = patch.MotorTipo
	}
	if patch.MotorPotencia != nil {
		updated.MotorPotencia = patch.MotorPotencia
	}
	if patch.MotorTorque != nil {
		updated.MotorTorque = patch.MotorTorque
	}
	if patch.MotorCombustible != nil {
		updated.MotorCombustible = patch.MotorCombustible
	}
	if patch.VelocidadMaxima != nil {
		updated.VelocidadMaxima = patch.VelocidadMaxima
	}
	if patch.Aceleracion0a100 != nil {
		updated.Aceleracion0a100 = patch.Aceleracion0a100
	}
	if patch.VelocidadCrucero != nil {
		updated.VelocidadCrucero = patch.VelocidadCrucero
	}
	if patch.Peso != nil {
		updated.Peso = patch.Peso
	}
	if patch.AlturaAsiento != nil {
		updated.AlturaAsiento = patch.AlturaAsiento
	}
	if patch.CapacidadTanque != nil {
		updated.CapacidadTanque = patch.CapacidadTanque
	}
	if patch.Autonomia != nil {
		updated.Autonomia = patch.Autonomia
	}
	if patch.Colores != nil {
		updated.Colores = patch.Colores
	}
	if patch.Transmision != nil {
		updated.Transmision = patch.Transmision
	}
	if patch.FrenosDelanteros != nil {
		updated.FrenosDelanteros = patch.FrenosDelanteros
	}
	if patch.FrenosTraseros != nil {
		updated.FrenosTraseros = patch.FrenosTraseros
	}
	if patch.Suspension != nil {
		updated.Suspension = patch.Suspension
	}
	if patch.Neumaticos != nil {
		updated.Neumaticos = patch.Neumaticos
	}
	if patch.Precio != nil {
		updated.Precio = patch.Precio
	}
	if patch.Estado != nil {
		updated.Estado = patch.Estado
	}
	if patch.Kilometraje != nil {
		updated.Kilometraje = patch.Kilometraje
	}
	if patch.Imagen != nil {
		updated.Imagen = patch.Imagen
	}

	return updated, nil
}
