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

type ContentHandler struct {
	cmds commands.ContentCommands
	q    queries.ContentQueries
}

func NewContentHandler(cmds commands.ContentCommands, q queries.ContentQueries) *ContentHandler {
	return &ContentHandler{cmds: cmds, q: q}
}

// @Summary Hero banners
// @Tags content
// @Produce json
// @Success 200 {array} queries.HeroView
// @Router /content/heroes [get]
func (h *ContentHandler) ListHeroes(c *gin.Context) {
	h.listHeroes(c, true)
}

// @Summary Hero banners (admin)
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.HeroView
// @Router /admin/heroes [get]
func (h *ContentHandler) AdminListHeroes(c *gin.Context) {
	h.listHeroes(c, false)
}

func (h *ContentHandler) listHeroes(c *gin.Context, activeOnly bool) {
	items, err := h.q.ListHeroes(c.Request.Context(), activeOnly)
	if err != nil {
		httperr.Abort(c, err, "Failed to list heroes")
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Create hero
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.HeroRequest true "Hero"
// @Success 201 {object} resdto.CreatedResponse
// @Router /admin/heroes [post]
func (h *ContentHandler) CreateHero(c *gin.Context) {
	var req reqdto.HeroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	id, err := h.cmds.CreateHero(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err, "Failed to create hero")
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update hero
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Hero ID"
// @Param request body reqdto.HeroRequest true "Hero"
// @Success 204 "No Content"
// @Router /admin/heroes/{id} [put]
func (h *ContentHandler) UpdateHero(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.HeroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	if err := h.cmds.UpdateHero(c.Request.Context(), id, req); err != nil {
		httperr.Abort(c, err, "Failed to update hero")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete hero
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Hero ID"
// @Success 204 "No Content"
// @Router /admin/heroes/{id} [delete]
func (h *ContentHandler) DeleteHero(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteHero(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err, "Failed to delete hero")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List broadcasts
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Max items (default 20)"
// @Success 200 {object} resdto.PageResponse[queries.BroadcastView]
// @Router /admin/broadcasts [get]
func (h *ContentHandler) ListBroadcasts(c *gin.Context) {
	var query reqdto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.BadRequest(c, err, "Invalid query")
		return
	}
	cursor, limit := pageArgs(query.Cursor, query.Limit)
	items, next, err := h.q.ListBroadcasts(c.Request.Context(), cursor, limit)
	if err != nil {
		httperr.Abort(c, err, "Failed to list broadcasts")
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage(items, nextCursor(next)))
}

// @Summary Get broadcast
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Broadcast ID"
// @Success 200 {object} queries.BroadcastView
// @Failure 404 {object} httperr.Response
// @Router /admin/broadcasts/{id} [get]
func (h *ContentHandler) GetBroadcast(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetBroadcast(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load broadcast")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create broadcast draft
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.BroadcastRequest true "Broadcast"
// @Success 201 {object} resdto.CreatedResponse
// @Router /admin/broadcasts [post]
func (h *ContentHandler) CreateBroadcast(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	id, err := h.cmds.CreateBroadcast(c.Request.Context(), a, req)
	if err != nil {
		httperr.Abort(c, err, "Failed to create broadcast")
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update broadcast draft
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Broadcast ID"
// @Param request body reqdto.BroadcastRequest true "Broadcast"
// @Success 204 "No Content"
// @Failure 409 {object} httperr.Response "Already sent"
// @Router /admin/broadcasts/{id} [put]
func (h *ContentHandler) UpdateBroadcast(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	if err := h.cmds.UpdateBroadcast(c.Request.Context(), id, req); err != nil {
		httperr.Abort(c, err, "Failed to update broadcast")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete broadcast draft
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Broadcast ID"
// @Success 204 "No Content"
// @Failure 409 {object} httperr.Response "Already sent"
// @Router /admin/broadcasts/{id} [delete]
func (h *ContentHandler) DeleteBroadcast(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteBroadcast(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err, "Failed to delete broadcast")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Send broadcast
// @Description Queues one email per active customer
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Broadcast ID"
// @Success 202 {object} resdto.SendBroadcastResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response "No recipients"
// @Router /admin/broadcasts/{id}/send [post]
func (h *ContentHandler) SendBroadcast(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	n, err := h.cmds.SendBroadcast(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to send broadcast")
		return
	}
	c.JSON(http.StatusAccepted, resdto.SendBroadcastResponse{Recipients: n})
}
