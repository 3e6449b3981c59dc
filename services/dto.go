package services

import (
	"time"

	"motosgarage-api/models"
)

// MotoDTO is the wire-facing shape of a moto listing. Optional fields are
// omitted when absent. User is only populated on public (anonymous) listings.
type MotoDTO struct {
	ID          string `json:"id"`
	Marca       string `json:"marca"`
	Modelo      string `json:"modelo"`
	Year        int    `json:"year"`
	Descripcion string `json:"descripcion"`

	MotorCilindrada  *float64 `json:"motorCilindrada,omitempty"`
	MotorTipo        *string  `json:"motorTipo,omitempty"`
	MotorPotencia    *float64 `json:"motorPotencia,omitempty"`
	MotorTorque      *float64 `json:"motorTorque,omitempty"`
	MotorCombustible *string  `json:"motorCombustible,omitempty"`

	VelocidadMaxima  *float64 `json:"velocidadMaxima,omitempty"`
	Aceleracion0a100 *float64 `json:"aceleracion0a100,omitempty"`
	VelocidadCrucero *float64 `json:"velocidadCrucero,omitempty"`

	Peso            *float64 `json:"peso,omitempty"`
	AlturaAsiento   *float64 `json:"alturaAsiento,omitempty"`
	CapacidadTanque *float64 `json:"capacidadTanque,omitempty"`
	Autonomia       *float64 `json:"autonomia,omitempty"`

	Colores []string `json:"colores,omitempty"`

	Transmision      *string `json:"transmision,omitempty"`
	FrenosDelanteros *string `json:"frenosDelanteros,omitempty"`
	FrenosTraseros   *string `json:"frenosTraseros,omitempty"`
	Suspension       *string `json:"suspension,omitempty"`
	Neumaticos       *string `json:"neumaticos,omitempty"`

	Precio      *float64 `json:"precio,omitempty"`
	Estado      *string  `json:"estado,omitempty"`
	Kilometraje *float64 `json:"kilometraje,omitempty"`
	Imagen      *string  `json:"imagen,omitempty"`

	UserID string            `json:"userId"`
	User   *models.MotoOwner `json:"user,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewMotoDTO maps a moto entity to its wire shape.
func NewMotoDTO(m models.Moto) MotoDTO {
	return MotoDTO{
		ID:          m.ID,
		Marca:       m.Marca,
		Modelo:      m.Modelo,
		Year:        m.Year,
		Descripcion: m.Descripcion,

		MotorCilindrada:  m.MotorCilindrada,
		MotorTipo:        m.MotorTipo,
		MotorPotencia:    m.MotorPotencia,
		MotorTorque:      m.MotorTorque,
		MotorCombustible: m.MotorCombustible,
		VelocidadMaxima:  m.VelocidadMaxima,
		Aceleracion0a100: m.Aceleracion0a100,
		VelocidadCrucero: m.VelocidadCrucero,
		Peso:             m.Peso,
		AlturaAsiento:    m.AlturaAsiento,
		CapacidadTanque:  m.CapacidadTanque,
		Autonomia:        m.Autonomia,
		Colores:          m.Colores,
		Transmision:      m.Transmision,
		FrenosDelanteros: m.FrenosDelanteros,
		FrenosTraseros:   m.FrenosTraseros,
		Suspension:       m.Suspension,
		Neumaticos:       m.Neumaticos,
		Precio:           m.Precio,
		Estado:           m.Estado,
		Kilometraje:      m.Kilometraje,
		Imagen:           m.Imagen,

		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CreateMotoInput is the creation request body. The owner id comes from the
// session, never from the client.
type CreateMotoInput struct {
	Marca       string `json:"marca"`
	Modelo      string `json:"modelo"`
	Year        int    `json:"year"`
	Descripcion string `json:"descripcion"`
	UserID      string `json:"-"`

	MotorCilindrada  *float64 `json:"motorCilindrada"`
	MotorTipo        *string  `json:"motorTipo"`
	MotorPotencia    *float64 `json:"motorPotencia"`
	MotorTorque      *float64 `json:"motorTorque"`
	MotorCombustible *string  `json:"motorCombustible"`
	VelocidadMaxima  *float64 `json:"velocidadMaxima"`
	Aceleracion0a100 *float64 `json:"aceleracion0a100"`
	VelocidadCrucero *float64 `json:"velocidadCrucero"`
	Peso             *float64 `json:"peso"`
	AlturaAsiento    *float64 `json:"alturaAsiento"`
	CapacidadTanque  *float64 `json:"capacidadTanque"`
	Autonomia        *float64 `json:"autonomia"`
	Colores          []string `json:"colores"`
	Transmision      *string  `json:"transmision"`
	FrenosDelanteros *string  `json:"frenosDelanteros"`
	FrenosTraseros   *string  `json:"frenosTraseros"`
	Suspension       *string  `json:"suspension"`
	Neumaticos       *string  `json:"neumaticos"`
	Precio           *float64 `json:"precio"`
	Estado           *string  `json:"estado"`
	Kilometraje      *float64 `json:"kilometraje"`
	Imagen           *string  `json:"imagen"`
}

func (in CreateMotoInput) toParams() models.NewMotoParams {
	return models.NewMotoParams{
		Marca:       in.Marca,
		Modelo:      in.Modelo,
		Year:        in.Year,
		Descripcion: in.Descripcion,
		UserID:      in.UserID,

		MotorCilindrada:  in.MotorCilindrada,
		MotorTipo:        in.MotorTipo,
		MotorPotencia:    in.MotorPotencia,
		MotorTorque:      in.MotorTorque,
		MotorCombustible: in.MotorCombustible,
		VelocidadMaxima:  in.VelocidadMaxima,
		Aceleracion0a100: in.Aceleracion0a100,
		VelocidadCrucero: in.VelocidadCrucero,
		Peso:             in.Peso,
		AlturaAsiento:    in.AlturaAsiento,
		CapacidadTanque:  in.CapacidadTanque,
		Autonomia:        in.Autonomia,
		Colores:          in.Colores,
		Transmision:      in.Transmision,
		FrenosDelanteros: in.FrenosDelanteros,
		FrenosTraseros:   in.FrenosTraseros,
		Suspension:       in.Suspension,
		Neumaticos:       in.Neumaticos,
		Precio:           in.Precio,
		Estado:           in.Estado,
		Kilometraje:      in.Kilometraje,
		Imagen:           in.Imagen,
	}
}

// UpdateMotoInput is the partial update body. A field left out of the JSON
// stays nil and is neither validated nor applied.
type UpdateMotoInput struct {
	Marca       *string `json:"marca"`
	Modelo      *string `json:"modelo"`
	Year        *int    `json:"year"`
	Descripcion *string `json:"descripcion"`

	MotorCilindrada  *float64 `json:"motorCilindrada"`
	MotorTipo        *string  `json:"motorTipo"`
	MotorPotencia    *float64 `json:"motorPotencia"`
	MotorTorque      *float64 `json:"motorTorque"`
	MotorCombustible *string  `json:"motorCombustible"`
	VelocidadMaxima  *float64 `json:"velocidadMaxima"`
	Aceleracion0a100 *float64 `json:"aceleracion0a100"`
	VelocidadCrucero *float64 `json:"velocidadCrucero"`
	Peso             *float64 `json:"peso"`
	AlturaAsiento    *float64 `json:"alturaAsiento"`
	CapacidadTanque  *float64 `json:"capacidadTanque"`
	Autonomia        *float64 `json:"autonomia"`
	Colores          []string `json:"colores"`
	Transmision      *string  `json:"transmision"`
	FrenosDelanteros *string  `json:"frenosDelanteros"`
	FrenosTraseros   *string  `json:"frenosTraseros"`
	Suspension       *string  `json:"suspension"`
	Neumaticos       *string  `json:"neumaticos"`
	Precio           *float64 `json:"precio"`
	Estado           *string  `json:"estado"`
	Kilometraje      *float64 `json:"kilometraje"`
	Imagen           *string  `json:"imagen"`
}

func (in UpdateMotoInput) toPatch() models.MotoPatch {
	return models.MotoPatch{
		Marca:       in.Marca,
		Modelo:      in.Modelo,
		Year:        in.Year,
		Descripcion: in.Descripcion,

		MotorCilindrada:  in.MotorCilindrada,
		MotorTipo:        in.MotorTipo,
		MotorPotencia:    in.MotorPotencia,
		MotorTorque:      in.MotorTorque,
		MotorCombustible: in.MotorCombustible,
		VelocidadMaxima:  in.VelocidadMaxima,
		Aceleracion0a100: in.Aceleracion0a100,
		VelocidadCrucero: in.VelocidadCrucero,
		Peso:             in.Peso,
		AlturaAsiento:    in.AlturaAsiento,
		CapacidadTanque:  in.CapacidadTanque,
		Autonomia:        in.Autonomia,
		Colores:          in.Colores,
		Transmision:      in.Transmision,
		FrenosDelanteros: in.FrenosDelanteros,
		FrenosTraseros:   in.FrenosTraseros,
		Suspension:       in.Suspension,
		Neumaticos:       in.Neumaticos,
		Precio:           in.Precio,
		Estado:           in.Estado,
		Kilometraje:      in.Kilometraje,
		Imagen:           in.Imagen,
	}
}
