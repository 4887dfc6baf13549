package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/orderdesk-backend/internal/services"
)

type CompanyHandler struct {
	companyService services.CompanyService
}

func NewCompanyHandler(companyService services.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// Get responds with the raw company record, or null when the name is
// unknown; absence is not an error.
func (ch *CompanyHandler) Get(c *gin.Context) {
	company, err := ch.companyService.Get(c.Request.Context(), c.Query("name"))
	if err != nil {
		RespondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (ch *CompanyHandler) Update(c *gin.Context) {
	var body struct {
		CompanyName string                 `json:"companyName"`
		Info        map[string]interface{} `json:"info"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := ch.companyService.Update(c.Request.Context(), body.CompanyName, body.Info); err != nil {
		RespondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

func (ch *CompanyHandler) Delete(c *gin.Context) {
	var body struct {
		CompanyName string `json:"companyName"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := ch.companyService.Delete(c.Request.Context(), body.CompanyName); err != nil {
		RespondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

func (ch *CompanyHandler) Paid(c *gin.Context) {
	paid, err := ch.companyService.TotalPaid(c.Request.Context(), c.Query("name"))
	if err != nil {
		RespondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, paid)
}
