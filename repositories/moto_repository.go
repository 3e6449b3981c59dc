package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"motosgarage-api/models"
)

// MotoSearchFilters is the structural subset Search understands. String
// fields match as case-insensitive substrings, numeric bounds are inclusive,
// and every provided field is conjunctive.
type MotoSearchFilters struct {
	Marca     string
	Modelo    string
	YearMin   *int
	YearMax   *int
	PrecioMin *float64
	PrecioMax *float64
	Estado    string
	MotorTipo string
}

// Empty reports whether no filter field is set.
func (f MotoSearchFilters) Empty() bool {
	return f.Marca == "" && f.Modelo == "" && f.YearMin == nil && f.YearMax == nil &&
		f.PrecioMin == nil && f.PrecioMax == nil && f.Estado == "" && f.MotorTipo == ""
}

// MotoRepository is the persistence contract for moto listings. FindByID,
// Update and Delete signal a missing id with a NotFound error.
type MotoRepository interface {
	Create(moto models.Moto) (models.Moto, error)
	FindByID(id string) (*models.Moto, error)
	FindByUserID(userID string) ([]models.Moto, error)
	FindAll() ([]models.Moto, error)
	Update(id string, moto models.Moto) (models.Moto, error)
	Delete(id string) error
	Search(filters MotoSearchFilters) ([]models.Moto, error)
}

type gormMotoRepository struct {
	db *gorm.DB
}

// NewMotoRepository creates a MotoRepository backed by the given GORM database.
func NewMotoRepository(db *gorm.DB) MotoRepository {
	return &gormMotoRepository{db: db}
}

func (r *gormMotoRepository) Create(moto models.Moto) (models.Moto, error) {
	if err := r.db.Create(&moto).Error; err != nil {
		return models.Moto{}, mapError(err)
	}
	return moto, nil
}

func (r *gormMotoRepository) FindByID(id string) (*models.Moto, error) {
	var moto models.Moto
	if err := r.db.First(&moto, "id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}
	return &moto, nil
}

func (r *gormMotoRepository) FindByUserID(userID string) ([]models.Moto, error) {
	var motos []models.Moto
	if err := r.db.Where("user_id = ?", userID).Find(&motos).Error; err != nil {
		return nil, mapError(err)
	}
	return motos, nil
}

func (r *gormMotoRepository) FindAll() ([]models.Moto, error) {
	var motos []models.Moto
	if err := r.db.Find(&motos).Error; err != nil {
		return nil, mapError(err)
	}
	return motos, nil
}

// Update replaces the stored record. The read guards the NotFound contract;
// Save then writes every column, including cleared optional fields.
func (r *gormMotoRepository) Update(id string, moto models.Moto) (models.Moto, error) {
	var existing models.Moto
	if err := r.db.First(&existing, "id = ?", id).Error; err != nil {
		return models.Moto{}, mapError(err)
	}

	moto.ID = id
	if err := r.db.Save(&moto).Error; err != nil {
		return models.Moto{}, mapError(err)
	}
	return moto, nil
}

func (r *gormMotoRepository) Delete(id string) error {
	result := r.db.Delete(&models.Moto{}, "id = ?", id)
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("moto no encontrada")
	}
	return nil
}

func (r *gormMotoRepository) Search(filters MotoSearchFilters) ([]models.Moto, error) {
	query := r.db.Model(&models.Moto{})

	if filters.Marca != "" {
		query = query.Where("LOWER(marca) LIKE ?", substring(filters.Marca))
	}
	if filters.Modelo != "" {
		query = query.Where("LOWER(modelo) LIKE ?", substring(filters.Modelo))
	}
	if filters.YearMin != nil {
		query = query.Where("year >= ?", *filters.YearMin)
	}
	if filters.YearMax != nil {
		query = query.Where("year <= ?", *filters.YearMax)
	}
	if filters.PrecioMin != nil {
		query = query.Where("precio >= ?", *filters.PrecioMin)
	}
	if filters.PrecioMax != nil {
		query = query.Where("precio <= ?", *filters.PrecioMax)
	}
	if filters.Estado != "" {
		query = query.Where("LOWER(estado) LIKE ?", substring(filters.Estado))
	}
	if filters.MotorTipo != "" {
		query = query.Where("LOWER(motor_tipo) LIKE ?", substring(filters.MotorTipo))
	}

	var motos []models.Moto
	if err := query.Find(&motos).Error; err != nil {
		return nil, mapError(err)
	}
	return motos, nil
}

func substring(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

// mapError converts GORM errors into the business error taxonomy.
func mapError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError("moto no encontrada")
	}
	return models.NewInternalError("database error", err)
}
