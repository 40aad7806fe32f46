package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PawanYadav007s/Design-Records-APP/services"
)

// Dashboard handles GET /api/v1/dashboard - summary counters for the landing view
func Dashboard(c *gin.Context) {
	pending, err := services.GetRecordService().PendingCount()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"pending_pos": pending,
		},
	})
}
