package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondStorageError is the uniform 500 shape for persistence failures.
func RespondStorageError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
