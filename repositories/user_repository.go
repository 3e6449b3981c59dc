package repositories

import (
	"errors"

	"gorm.io/gorm"

	"motosgarage-api/models"
)

// UserRepository is the persistence contract for accounts. It backs the auth
// flows and the owner annotation of public listings.
type UserRepository interface {
	Create(user models.User) (models.User, error)
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByIDs(ids []string) ([]models.User, error)
	Update(user models.User) (models.User, error)
}

type gormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a UserRepository backed by the given GORM database.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) Create(user models.User) (models.User, error) {
	if err := r.db.Create(&user).Error; err != nil {
		return models.User{}, models.NewInternalError("database error", err)
	}
	return user, nil
}

func (r *gormUserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, mapUserError(err)
	}
	return &user, nil
}

func (r *gormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, mapUserError(err)
	}
	return &user, nil
}

func (r *gormUserRepository) FindByIDs(ids []string) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []models.User
	if err := r.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, models.NewInternalError("database error", err)
	}
	return users, nil
}

func (r *gormUserRepository) Update(user models.User) (models.User, error) {
	if err := r.db.Save(&user).Error; err != nil {
		return models.User{}, models.NewInternalError("database error", err)
	}
	return user, nil
}

func mapUserError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError("usuario no encontrado")
	}
	return models.NewInternalError("database error", err)
}
