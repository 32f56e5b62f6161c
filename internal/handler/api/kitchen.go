package api

import (
	"errors"
	"net/http"
	"time"

	resdto "restaurant-pos/internal/handler/dto/response"
	"restaurant-pos/internal/handler/middleware"
	"restaurant-pos/internal/pkg/busday"
	"restaurant-pos/internal/pkg/clock"
	"restaurant-pos/internal/pkg/config"
	"restaurant-pos/internal/usecase/commands"
	"restaurant-pos/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type KitchenHandler struct {
	orderCommands commands.OrderCommands
	orderQueries  queries.OrderQueries
	clock         clock.Clock
	loc           *time.Location
}

func NewKitchenHandler(
	orderCommands commands.OrderCommands,
	orderQueries queries.OrderQueries,
	clk clock.Clock,
	cfg config.POSConfig,
) (*KitchenHandler, error) {
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, err
	}

	return &KitchenHandler{
		orderCommands: orderCommands,
		orderQueries:  orderQueries,
		clock:         clk,
		loc:           loc,
	}, nil
}

// @Summary Kitchen queue
// @Description Orders waiting in the kitchen, oldest first, lines included
// @Tags kitchen
// @Produce json
// @Success 200 {array} resdto.OrderResponse
// @Router /kitchen/orders [get]
func (h *KitchenHandler) Queue(c *gin.Context) {
	businessDate := busday.Resolve(h.clock.Now(), h.loc)

	views, err := h.orderQueries.KitchenQueue(c.Request.Context(), businessDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderViews(views))
}

// @Summary Mark order ready
// @Description Move an order from the kitchen to ready; the beeper starts paging
// @Tags kitchen
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /kitchen/orders/{id}/ready [post]
func (h *KitchenHandler) MarkReady(c *gin.Context) {
	chefID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID",
		})
		return
	}

	view, err := h.orderCommands.MarkReady(c.Request.Context(), orderID, chefID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errors.Is(err, commands.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order is not in the kitchen",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}
