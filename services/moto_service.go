package services

import (
	"sort"
	"strings"

	"motosgarage-api/models"
	"motosgarage-api/repositories"
)

// Listing defaults and bounds.
const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

var sortFields = map[string]bool{
	"precio":    true,
	"year":      true,
	"marca":     true,
	"modelo":    true,
	"createdAt": true,
}

// MotoFilters narrows a listing. UserID takes precedence over every other
// field: when set, the listing is strictly that owner's motos.
type MotoFilters struct {
	Marca     string
	Modelo    string
	YearMin   *int
	YearMax   *int
	PrecioMin *float64
	PrecioMax *float64
	Estado    string
	MotorTipo string
	UserID    string
}

// ListOptions controls pagination and sorting of a listing.
type ListOptions struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// MotoListResult is a single page of listings plus pagination metadata.
// Total counts the whole matching set, not just this page.
type MotoListResult struct {
	Motos      []MotoDTO `json:"motos"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalPages int       `json:"totalPages"`
}

// MotoService implements the moto use cases: create, edit, delete and the
// listing variants. Every mutating call takes the acting user id explicitly;
// identity resolution happens only in the HTTP layer.
type MotoService struct {
	motos repositories.MotoRepository
	users repositories.UserRepository
}

// NewMotoService creates a MotoService over the given repositories.
func NewMotoService(motos repositories.MotoRepository, users repositories.UserRepository) *MotoService {
	return &MotoService{motos: motos, users: users}
}

// Create validates the request, builds a new moto owned by input.UserID and
// persists it.
func (s *MotoService) Create(input CreateMotoInput) (MotoDTO, error) {
	if err := validateCreate(input); err != nil {
		return MotoDTO{}, models.WrapError("error al crear moto", err)
	}

	moto, err := models.NewMoto(input.toParams())
	if err != nil {
		return MotoDTO{}, models.WrapError("error al crear moto", err)
	}

	saved, err := s.motos.Create(moto)
	if err != nil {
		return MotoDTO{}, models.WrapError("error al crear moto", err)
	}

	return NewMotoDTO(saved), nil
}

// Edit applies a partial update to an existing moto. Only the owner may
// edit; fields absent from the patch are left untouched. An empty patch is a
// valid no-op that still refreshes updatedAt.
func (s *MotoService) Edit(id string, input UpdateMotoInput, userID string) (MotoDTO, error) {
	existing, err := s.motos.FindByID(id)
	if err != nil {
		return MotoDTO{}, models.WrapError("error al editar moto", err)
	}

	if existing.UserID != userID {
		return MotoDTO{}, models.WrapError("error al editar moto",
			models.NewForbiddenError("no tienes permisos para editar esta moto"))
	}

	if err := validateUpdate(input); err != nil {
		return MotoDTO{}, models.WrapError("error al editar moto", err)
	}

	updated, err := existing.Update(input.toPatch())
	if err != nil {
		return MotoDTO{}, models.WrapError("error al editar moto", err)
	}

	saved, err := s.motos.Update(id, updated)
	if err != nil {
		return MotoDTO{}, models.WrapError("error al editar moto", err)
	}

	return NewMotoDTO(saved), nil
}

// Delete removes a moto after the same existence and ownership checks as
// Edit. Deletion is terminal; deleting the same id twice yields NotFound the
// second time.
func (s *MotoService) Delete(id, userID string) error {
	existing, err := s.motos.FindByID(id)
	if err != nil {
		return models.WrapError("error al eliminar moto", err)
	}

	if existing.UserID != userID {
		return models.WrapError("error al eliminar moto",
			models.NewForbiddenError("no tienes permisos para eliminar esta moto"))
	}

	if err := s.motos.Delete(id); err != nil {
		return models.WrapError("error al eliminar moto", err)
	}
	return nil
}

// List returns one page of listings. Resolution precedence: a UserID filter
// fetches strictly that owner's motos (other filters are ignored), any other
// filter goes through Search, no filters at all fetches everything. The
// matching set is sorted and paginated in memory, which is fine while
// collections stay small.
func (s *MotoService) List(filters MotoFilters, opts ListOptions) (*MotoListResult, error) {
	normOpts := normalizeOptions(opts)
	normFilters := normalizeFilters(filters)

	var (
		motos []models.Moto
		err   error
	)
	switch {
	case normFilters.UserID != "":
		motos, err = s.motos.FindByUserID(normFilters.UserID)
	case !normFilters.search().Empty():
		motos, err = s.motos.Search(normFilters.search())
	default:
		motos, err = s.motos.FindAll()
	}
	if err != nil {
		return nil, models.WrapError("error al obtener motos", err)
	}

	sortMotos(motos, normOpts.SortBy, normOpts.SortOrder)

	total := len(motos)
	totalPages := (total + normOpts.Limit - 1) / normOpts.Limit
	start := (normOpts.Page - 1) * normOpts.Limit
	end := start + normOpts.Limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	dtos := make([]MotoDTO, 0, end-start)
	for _, moto := range motos[start:end] {
		dtos = append(dtos, NewMotoDTO(moto))
	}

	return &MotoListResult{
		Motos:      dtos,
		Total:      total,
		Page:       normOpts.Page,
		Limit:      normOpts.Limit,
		TotalPages: totalPages,
	}, nil
}

// ListPublic is the anonymous browse mode: the same listing logic across all
// owners, with each moto annotated with its owner's display name and email.
func (s *MotoService) ListPublic(filters MotoFilters, opts ListOptions) (*MotoListResult, error) {
	filters.UserID = ""
	result, err := s.List(filters, opts)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(result.Motos))
	seen := make(map[string]bool)
	for _, dto := range result.Motos {
		if !seen[dto.UserID] {
			seen[dto.UserID] = true
			ids = append(ids, dto.UserID)
		}
	}

	owners, err := s.users.FindByIDs(ids)
	if err != nil {
		return nil, models.WrapError("error al obtener motos", err)
	}

	byID := make(map[string]models.MotoOwner, len(owners))
	for _, owner := range owners {
		byID[owner.ID] = owner.Owner()
	}
	for i := range result.Motos {
		if owner, ok := byID[result.Motos[i].UserID]; ok {
			o := owner
			result.Motos[i].User = &o
		}
	}

	return result, nil
}

// GetByUserID scopes the listing to one owner.
func (s *MotoService) GetByUserID(userID string, opts ListOptions) (*MotoListResult, error) {
	return s.List(MotoFilters{UserID: userID}, opts)
}

// GetByID fetches a single moto. A missing id yields (nil, nil) rather than
// an error.
func (s *MotoService) GetByID(id string) (*MotoDTO, error) {
	moto, err := s.motos.FindByID(id)
	if err != nil {
		if models.IsNotFound(err) {
			return nil, nil
		}
		return nil, models.WrapError("error al obtener moto", err)
	}
	dto := NewMotoDTO(*moto)
	return &dto, nil
}

func validateCreate(input CreateMotoInput) error {
	if strings.TrimSpace(input.Marca) == "" {
		return models.NewValidationError("la marca es obligatoria")
	}
	if strings.TrimSpace(input.Modelo) == "" {
		return models.NewValidationError("el modelo es obligatorio")
	}
	if strings.TrimSpace(input.Descripcion) == "" {
		return models.NewValidationError("la descripción es obligatoria")
	}
	if strings.TrimSpace(input.UserID) == "" {
		return models.NewValidationError("el ID del usuario es obligatorio")
	}
	if input.Precio != nil && *input.Precio <= 0 {
		return models.NewValidationError("el precio debe ser mayor a 0")
	}
	if input.Kilometraje != nil && *input.Kilometraje < 0 {
		return models.NewValidationError("el kilometraje no puede ser negativo")
	}
	if input.MotorCilindrada != nil && *input.MotorCilindrada <= 0 {
		return models.NewValidationError("la cilindrada debe ser mayor a 0")
	}
	if input.MotorPotencia != nil && *input.MotorPotencia <= 0 {
		return models.NewValidationError("la potencia debe ser mayor a 0")
	}
	if input.Estado != nil && !models.ValidEstado(*input.Estado) {
		return models.NewValidationError("estado no válido")
	}
	return nil
}

func validateUpdate(input UpdateMotoInput) error {
	if input.Marca != nil && strings.TrimSpace(*input.Marca) == "" {
		return models.NewValidationError("la marca no puede estar vacía")
	}
	if input.Modelo != nil && strings.TrimSpace(*input.Modelo) == "" {
		return models.NewValidationError("el modelo no puede estar vacío")
	}
	if input.Descripcion != nil && strings.TrimSpace(*input.Descripcion) == "" {
		return models.NewValidationError("la descripción no puede estar vacía")
	}
	if input.Year != nil && (*input.Year < models.MinYear || *input.Year > models.MaxYear()) {
		return models.NewValidationError("año de la moto no válido")
	}
	if input.Precio != nil && *input.Precio <= 0 {
		return models.NewValidationError("el precio debe ser mayor a 0")
	}
	if input.Kilometraje != nil && *input.Kilometraje < 0 {
		return models.NewValidationError("el kilometraje no puede ser negativo")
	}
	if input.MotorCilindrada != nil && *input.MotorCilindrada <= 0 {
		return models.NewValidationError("la cilindrada debe ser mayor a 0")
	}
	if input.MotorPotencia != nil && *input.MotorPotencia <= 0 {
		return models.NewValidationError("la potencia debe ser mayor a 0")
	}
	if input.VelocidadMaxima != nil && *input.VelocidadMaxima <= 0 {
		return models.NewValidationError("la velocidad máxima debe ser mayor a 0")
	}
	if input.Peso != nil && *input.Peso <= 0 {
		return models.NewValidationError("el peso debe ser mayor a 0")
	}
	if input.CapacidadTanque != nil && *input.CapacidadTanque <= 0 {
		return models.NewValidationError("la capacidad del tanque debe ser mayor a 0")
	}
	if input.Autonomia != nil && *input.Autonomia <= 0 {
		return models.NewValidationError("la autonomía debe ser mayor a 0")
	}
	if input.Estado != nil && !models.ValidEstado(*input.Estado) {
		return models.NewValidationError("estado no válido")
	}
	return nil
}

func normalizeOptions(opts ListOptions) ListOptions {
	if opts.Page < 1 {
		opts.Page = defaultPage
	}
	if opts.Limit < 1 {
		opts.Limit = defaultLimit
	}
	if opts.Limit > maxLimit {
		opts.Limit = maxLimit
	}
	if !sortFields[opts.SortBy] {
		opts.SortBy = "createdAt"
	}
	if opts.SortOrder != "asc" && opts.SortOrder != "desc" {
		opts.SortOrder = "desc"
	}
	return opts
}

// normalizeFilters trims string filters and drops numeric bounds outside the
// plausible range.
func normalizeFilters(filters MotoFilters) MotoFilters {
	norm := MotoFilters{
		Marca:     strings.TrimSpace(filters.Marca),
		Modelo:    strings.TrimSpace(filters.Modelo),
		Estado:    strings.TrimSpace(filters.Estado),
		MotorTipo: strings.TrimSpace(filters.MotorTipo),
		UserID:    strings.TrimSpace(filters.UserID),
	}
	if filters.YearMin != nil && *filters.YearMin >= models.MinYear {
		norm.YearMin = filters.YearMin
	}
	if filters.YearMax != nil && *filters.YearMax <= models.MaxYear() {
		norm.YearMax = filters.YearMax
	}
	if filters.PrecioMin != nil && *filters.PrecioMin >= 0 {
		norm.PrecioMin = filters.PrecioMin
	}
	if filters.PrecioMax != nil && *filters.PrecioMax > 0 {
		norm.PrecioMax = filters.PrecioMax
	}
	return norm
}

func (f MotoFilters) search() repositories.MotoSearchFilters {
	return repositories.MotoSearchFilters{
		Marca:     f.Marca,
		Modelo:    f.Modelo,
		YearMin:   f.YearMin,
		YearMax:   f.YearMax,
		PrecioMin: f.PrecioMin,
		PrecioMax: f.PrecioMax,
		Estado:    f.Estado,
		MotorTipo: f.MotorTipo,
	}
}

// sortMotos orders the set in place. The sort is stable so ties keep the
// underlying repository order; string keys compare case-insensitively and a
// missing precio sorts as zero.
func sortMotos(motos []models.Moto, sortBy, sortOrder string) {
	less := func(a, b models.Moto) bool {
		switch sortBy {
		case "precio":
			return precioOrZero(a) < precioOrZero(b)
		case "year":
			return a.Year < b.Year
		case "marca":
			return strings.ToLower(a.Marca) < strings.ToLower(b.Marca)
		case "modelo":
			return strings.ToLower(a.Modelo) < strings.ToLower(b.Modelo)
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}

	sort.SliceStable(motos, func(i, j int) bool {
		if sortOrder == "asc" {
			return less(motos[i], motos[j])
		}
		return less(motos[j], motos[i])
	})
}

func precioOrZero(m models.Moto) float64 {
	if m.Precio == nil {
		return 0
	}
	return *m.Precio
}
