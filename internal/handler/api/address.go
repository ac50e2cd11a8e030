package api

import (
	"net/http"

	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/httperr"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AddressHandler struct {
	cmds commands.AddressCommands
	q    queries.AddressQueries
}

func NewAddressHandler(cmds commands.AddressCommands, q queries.AddressQueries) *AddressHandler {
	return &AddressHandler{cmds: cmds, q: q}
}

// @Summary List addresses
// @Tags addresses
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.AddressView
// @Router /addresses [get]
func (h *AddressHandler) List(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	items, err := h.q.List(c.Request.Context(), a.ID)
	if err != nil {
		httperr.Abort(c, err, "Failed to list addresses")
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Create address
// @Description The first address becomes the default
// @Tags addresses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.AddressRequest true "Address"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 422 {object} httperr.Response
// @Router /addresses [post]
func (h *AddressHandler) Create(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), a.ID, req)
	if err != nil {
		httperr.Abort(c, err, "Failed to create address")
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update address
// @Tags addresses
// @Security BearerAuth
// @Accept json
// @Param id path string true "Address ID"
// @Param request body reqdto.AddressRequest true "Address"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /addresses/{id} [put]
func (h *AddressHandler) Update(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	if err := h.cmds.Update(c.Request.Context(), a.ID, id, req); err != nil {
		httperr.Abort(c, err, "Failed to update address")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete address
// @Description Deleting the default promotes the most recent remaining address
// @Tags addresses
// @Security BearerAuth
// @Param id path string true "Address ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /addresses/{id} [delete]
func (h *AddressHandler) Delete(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), a.ID, id); err != nil {
		httperr.Abort(c, err, "Failed to delete address")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Set default address
// @Tags addresses
// @Security BearerAuth
// @Param id path string true "Address ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /addresses/{id}/default [post]
func (h *AddressHandler) SetDefault(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.SetDefault(c.Request.Context(), a.ID, id); err != nil {
		httperr.Abort(c, err, "Failed to set default address")
		return
	}
	c.Status(http.StatusNoContent)
}
