package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"motosgarage-api/middleware"
	"motosgarage-api/services"
	"motosgarage-api/utils"
)

// MotoController exposes the moto use cases over HTTP. It is the only place
// where the session is resolved; the service takes explicit caller ids.
type MotoController struct {
	motos *services.MotoService
}

func NewMotoController(motos *services.MotoService) *MotoController {
	return &MotoController{motos: motos}
}

// List handles GET /motos. Authenticated callers see their own collection;
// anonymous callers browse all listings with owner info attached.
func (mc *MotoController) List(c *gin.Context) {
	opts := parseListOptions(c)

	var (
		result *services.MotoListResult
		err    error
	)
	if userID := c.GetString(middleware.ContextUserID); userID != "" {
		result, err = mc.motos.GetByUserID(userID, opts)
	} else {
		result, err = mc.motos.ListPublic(parseFilters(c), opts)
	}
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendPaginated(c, result.Motos, utils.ListMeta{
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

// Create handles POST /motos.
func (mc *MotoController) Create(c *gin.Context) {
	var input services.CreateMotoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "cuerpo de la petición no válido")
		return
	}
	input.UserID = c.GetString(middleware.ContextUserID)

	dto, err := mc.motos.Create(input)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto)
}

// GetByID handles GET /motos/:id. Only the owner may view a listing through
// the management API.
func (mc *MotoController) GetByID(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	dto, err := mc.motos.GetByID(c.Param("id"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	if dto == nil {
		utils.SendError(c, http.StatusNotFound, "moto no encontrada")
		return
	}
	if dto.UserID != userID {
		utils.SendError(c, http.StatusForbidden, "no tienes permiso para ver esta moto")
		return
	}

	c.JSON(http.StatusOK, dto)
}

// Update handles PUT /motos/:id with a partial payload.
func (mc *MotoController) Update(c *gin.Context) {
	var input services.UpdateMotoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "cuerpo de la petición no válido")
		return
	}

	dto, err := mc.motos.Edit(c.Param("id"), input, c.GetString(middleware.ContextUserID))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto)
}

// Delete handles DELETE /motos/:id.
func (mc *MotoController) Delete(c *gin.Context) {
	if err := mc.motos.Delete(c.Param("id"), c.GetString(middleware.ContextUserID)); err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseListOptions(c *gin.Context) services.ListOptions {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	return services.ListOptions{
		Page:      page,
		Limit:     limit,
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}
}

func parseFilters(c *gin.Context) services.MotoFilters {
	return services.MotoFilters{
		Marca:     c.Query("marca"),
		Modelo:    c.Query("modelo"),
		YearMin:   queryInt(c, "yearMin"),
		YearMax:   queryInt(c, "yearMax"),
		PrecioMin: queryFloat(c, "precioMin"),
		PrecioMax: queryFloat(c, "precioMax"),
		Estado:    c.Query("estado"),
		MotorTipo: c.Query("motorTipo"),
	}
}

func queryInt(c *gin.Context, key string) *int {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return &v
		}
	}
	return nil
}

func queryFloat(c *gin.Context, key string) *float64 {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return &v
		}
	}
	return nil
}
