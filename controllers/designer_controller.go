package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PawanYadav007s/Design-Records-APP/services"
)

// DesignerRequest represents the request body for creating or renaming a
// roster entry
type DesignerRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateDesigner handles POST /api/v1/designers - adds a roster entry
func CreateDesigner(c *gin.Context) {
	var req DesignerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	designer, err := services.GetRecordService().CreateDesigner(req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    designer,
	})
}

// RenameDesigner handles PUT /api/v1/designers/:id - renames a roster entry.
// Historical design records keep the name they were filed with.
func RenameDesigner(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	var req DesignerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	designer, err := services.GetRecordService().RenameDesigner(id, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    designer,
	})
}

// DeleteDesigner handles DELETE /api/v1/designers/:id
func DeleteDesigner(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	if err := services.GetRecordService().DeleteDesigner(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"id": id},
	})
}

// ListDesigners handles GET /api/v1/designers - the roster ordered by name
func ListDesigners(c *gin.Context) {
	designers, err := services.GetRecordService().ListDesigners()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    designers,
	})
}
