package api

import (
	"net/http"

	reqdto "foody/internal/handler/dto/request"
	resdto "foody/internal/handler/dto/response"
	"foody/internal/handler/httperr"
	"foody/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type RestaurantHandler struct {
	cmds commands.RestaurantCommands
}

func NewRestaurantHandler(cmds commands.RestaurantCommands) *RestaurantHandler {
	return &RestaurantHandler{cmds: cmds}
}

// @Summary Register restaurant
// @Description Register a restaurant. The plain API key is returned only here.
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminKey
// @Param request body reqdto.RegisterRestaurantRequest true "Restaurant"
// @Success 201 {object} resdto.RegisterRestaurantResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/v1/admin/restaurants [post]
func (h *RestaurantHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRegisteredRestaurant(result.Restaurant, result.APIKey))
}

// @Summary Rotate API key
// @Description Issue a new API key; the previous one stops working immediately
// @Tags admin
// @Produce json
// @Security AdminKey
// @Param id path string true "Restaurant ID"
// @Success 200 {object} resdto.APIKeyResponse
// @Failure 404 {object} httperr.Response
// @Router /api/v1/admin/restaurants/{id}/rotate-key [post]
func (h *RestaurantHandler) RotateKey(c *gin.Context) {
	id, ok := pathUUID(c, "id", "Invalid restaurant id")
	if !ok {
		return
	}
	key, err := h.cmds.RotateAPIKey(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.APIKeyResponse{APIKey: key})
}

// @Summary Archive restaurant
// @Tags admin
// @Security AdminKey
// @Param id path string true "Restaurant ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/v1/admin/restaurants/{id}/archive [post]
func (h *RestaurantHandler) Archive(c *gin.Context) {
	id, ok := pathUUID(c, "id", "Invalid restaurant id")
	if !ok {
		return
	}
	if err := h.cmds.Archive(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
