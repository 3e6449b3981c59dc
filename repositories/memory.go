package repositories

import (
	"strings"
	"sync"

	"motosgarage-api/models"
)

// MemoryMotoRepository is an in-memory MotoRepository. It backs the test
// suites and keeps insertion order so listings stay deterministic.
type MemoryMotoRepository struct {
	mu    sync.RWMutex
	motos map[string]models.Moto
	order []string
}

// NewMemoryMotoRepository creates an empty in-memory moto store.
func NewMemoryMotoRepository() *MemoryMotoRepository {
	return &MemoryMotoRepository{motos: make(map[string]models.Moto)}
}

func (r *MemoryMotoRepository) Create(moto models.Moto) (models.Moto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.motos[moto.ID]; !exists {
		r.order = append(r.order, moto.ID)
	}
	r.motos[moto.ID] = moto
	return moto, nil
}

func (r *MemoryMotoRepository) FindByID(id string) (*models.Moto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	moto, ok := r.motos[id]
	if !ok {
		return nil, models.NewNotFoundError("moto no encontrada")
	}
	return &moto, nil
}

func (r *MemoryMotoRepository) FindByUserID(userID string) ([]models.Moto, error) {
	return r.collect(func(m models.Moto) bool { return m.UserID == userID })
}

func (r *MemoryMotoRepository) FindAll() ([]models.Moto, error) {
	return r.collect(func(models.Moto) bool { return true })
}

func (r *MemoryMotoRepository) Update(id string, moto models.Moto) (models.Moto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.motos[id]; !ok {
		return models.Moto{}, models.NewNotFoundError("moto no encontrada")
	}
	moto.ID = id
	r.motos[id] = moto
	return moto, nil
}

func (r *MemoryMotoRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.motos[id]; !ok {
		return models.NewNotFoundError("moto no encontrada")
	}
	delete(r.motos, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MemoryMotoRepository) Search(filters MotoSearchFilters) ([]models.Moto, error) {
	return r.collect(func(m models.Moto) bool { return matchesFilters(m, filters) })
}

func (r *MemoryMotoRepository) collect(match func(models.Moto) bool) ([]models.Moto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var motos []models.Moto
	for _, id := range r.order {
		if moto := r.motos[id]; match(moto) {
			motos = append(motos, moto)
		}
	}
	return motos, nil
}

func matchesFilters(m models.Moto, f MotoSearchFilters) bool {
	if f.Marca != "" && !containsFold(m.Marca, f.Marca) {
		return false
	}
	if f.Modelo != "" && !containsFold(m.Modelo, f.Modelo) {
		return false
	}
	if f.YearMin != nil && m.Year < *f.YearMin {
		return false
	}
	if f.YearMax != nil && m.Year > *f.YearMax {
		return false
	}
	if f.PrecioMin != nil && (m.Precio == nil || *m.Precio < *f.PrecioMin) {
		return false
	}
	if f.PrecioMax != nil && (m.Precio == nil || *m.Precio > *f.PrecioMax) {
		return false
	}
	if f.Estado != "" && (m.Estado == nil || !containsFold(*m.Estado, f.Estado)) {
		return false
	}
	if f.MotorTipo != "" && (m.MotorTipo == nil || !containsFold(*m.MotorTipo, f.MotorTipo)) {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// MemoryUserRepository is an in-memory UserRepository for tests.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

// NewMemoryUserRepository creates an empty in-memory user store.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]models.User)}
}

func (r *MemoryUserRepository) Create(user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return user, nil
}

func (r *MemoryUserRepository) FindByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, models.NewNotFoundError("usuario no encontrado")
	}
	return &user, nil
}

func (r *MemoryUserRepository) FindByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, models.NewNotFoundError("usuario no encontrado")
}

func (r *MemoryUserRepository) FindByIDs(ids []string) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var users []models.User
	for _, id := range ids {
		if user, ok := r.users[id]; ok {
			users = append(users, user)
		}
	}
	return users, nil
}

func (r *MemoryUserRepository) Update(user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return user, nil
}
