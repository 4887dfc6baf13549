package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/orderdesk-backend/internal/parser"
	"github.com/yungbote/orderdesk-backend/internal/services"
	"github.com/yungbote/orderdesk-backend/internal/types"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create accepts a delimited-text body of order lines. Malformed text is the
// caller's fault and answers 400 with the parser's message; storage failures
// answer 500 with the uniform error envelope.
func (oh *OrderHandler) Create(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, err := oh.orderService.CreateOrders(c.Request.Context(), string(body))
	if err != nil {
		var parseErr *parser.ParseError
		if errors.As(err, &parseErr) {
			c.String(http.StatusBadRequest, parseErr.Error())
			return
		}
		RespondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (oh *OrderHandler) List(c *gin.Context) {
	filter := types.OrderFilter{
		CompanyName:     c.Query("companyName"),
		CustomerAddress: c.Query("customerAddress"),
	}
	orders, err := oh.orderService.ListOrders(c.Request.Context(), filter)
	if err != nil {
		RespondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (oh *OrderHandler) Delete(c *gin.Context) {
	var body struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := oh.orderService.DeleteOrder(c.Request.Context(), body.ID); err != nil {
		RespondStorageError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
