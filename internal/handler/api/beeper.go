package api

import (
	"net/http"

	resdto "restaurant-pos/internal/handler/dto/response"
	"restaurant-pos/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BeeperHandler struct {
	beeperQueries queries.BeeperQueries
}

func NewBeeperHandler(beeperQueries queries.BeeperQueries) *BeeperHandler {
	return &BeeperHandler{beeperQueries: beeperQueries}
}

// @Summary List beepers
// @Description The whole pager pool with current availability
// @Tags beepers
// @Produce json
// @Success 200 {array} resdto.BeeperResponse
// @Router /beepers [get]
func (h *BeeperHandler) List(c *gin.Context) {
	views, err := h.beeperQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBeeperViews(views))
}
