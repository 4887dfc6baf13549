package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/orderdesk-backend/internal/services"
)

type StatsHandler struct {
	statsService services.StatsService
}

func NewStatsHandler(statsService services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

func (sh *StatsHandler) OrderFrequency(c *gin.Context) {
	items, err := sh.statsService.OrderFrequency(c.Request.Context())
	if err != nil {
		RespondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (sh *StatsHandler) OrdersByCompany(c *gin.Context) {
	items, err := sh.statsService.OrdersByCompany(c.Request.Context(), c.Query("name"))
	if err != nil {
		RespondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (sh *StatsHandler) CompaniesByOrderItem(c *gin.Context) {
	items, err := sh.statsService.CompaniesByOrderItem(c.Request.Context(), c.Query("name"))
	if err != nil {
		RespondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
