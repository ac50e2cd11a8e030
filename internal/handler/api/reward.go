package api

import (
	"net/http"

	"storefront/internal/handler/httperr"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RewardHandler struct {
	cmds commands.RewardCommands
	q    queries.RewardQueries
}

func NewRewardHandler(cmds commands.RewardCommands, q queries.RewardQueries) *RewardHandler {
	return &RewardHandler{cmds: cmds, q: q}
}

// @Summary Spin the wheel
// @Description One spin per cooldown window. Winning segments issue a single-use coupon.
// @Tags rewards
// @Security BearerAuth
// @Produce json
// @Success 200 {object} commands.SpinResult
// @Failure 409 {object} httperr.Response "Cooldown active"
// @Failure 429 {object} httperr.Response
// @Router /rewards/spin [post]
func (h *RewardHandler) Spin(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	result, err := h.cmds.Spin(c.Request.Context(), a)
	if err != nil {
		httperr.Abort(c, err, "Spin failed")
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Wheel state
// @Tags rewards
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.WheelView
// @Router /rewards/wheel [get]
func (h *RewardHandler) Wheel(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	view, err := h.q.Wheel(c.Request.Context(), a.ID)
	if err != nil {
		httperr.Abort(c, err, "Failed to load wheel")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary My rewards
// @Tags rewards
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.RewardView
// @Router /rewards [get]
func (h *RewardHandler) List(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	items, err := h.q.ListMine(c.Request.Context(), a.ID)
	if err != nil {
		httperr.Abort(c, err, "Failed to list rewards")
		return
	}
	c.JSON(http.StatusOK, items)
}
