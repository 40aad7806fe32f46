package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PawanYadav007s/Design-Records-APP/models"
	"github.com/PawanYadav007s/Design-Records-APP/services"
)

// CreateDesignRecordRequest represents the request body for filing design work
type CreateDesignRecordRequest struct {
	PONumber                string `json:"po_number" binding:"required"`
	DesignerName            string `json:"designer_name" binding:"required"`
	ReferenceDesignLocation string `json:"reference_design_location"`
	DesignLocation          string `json:"design_location" binding:"required"`
	DesignReleaseDate       string `json:"design_release_date" binding:"required"`
}

// UpdateDesignRecordRequest represents a partial design record correction
type UpdateDesignRecordRequest struct {
	DesignerName            *string `json:"designer_name"`
	ReferenceDesignLocation *string `json:"reference_design_location"`
	DesignLocation          *string `json:"design_location"`
	DesignReleaseDate       *string `json:"design_release_date"`
}

// CreateDesignRecord handles POST /api/v1/design-records - files completed
// design work against a pending PO, flipping it to completed.
func CreateDesignRecord(c *gin.Context) {
	var req CreateDesignRecordRequest
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

	record, err := services.GetRecordService().CreateDesignRecord(services.DesignInput{
		PONumber:                req.PONumber,
		DesignerName:            req.DesignerName,
		ReferenceDesignLocation: req.ReferenceDesignLocation,
		DesignLocation:          req.DesignLocation,
		DesignReleaseDate:       req.DesignReleaseDate,
	})

	var exportErr *models.ExportError
	if err != nil && !errors.As(err, &exportErr) {
		respondError(c, err)
		return
	}

	respondMutation(c, http.StatusCreated, record, err)
}

// UpdateDesignRecord handles PATCH /api/v1/design-records/:id - partial edit
func UpdateDesignRecord(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	var req UpdateDesignRecordRequest
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

	record, err := services.GetRecordService().UpdateDesignRecord(id, services.DesignUpdate{
		DesignerName:            req.DesignerName,
		ReferenceDesignLocation: req.ReferenceDesignLocation,
		DesignLocation:          req.DesignLocation,
		DesignReleaseDate:       req.DesignReleaseDate,
	})

	var exportErr *models.ExportError
	if err != nil && !errors.As(err, &exportErr) {
		respondError(c, err)
		return
	}

	respondMutation(c, http.StatusOK, record, err)
}

// DeleteDesignRecord handles DELETE /api/v1/design-records/:id
func DeleteDesignRecord(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	err := services.GetRecordService().DeleteDesignRecord(id)

	var exportErr *models.ExportError
	if err != nil && !errors.As(err, &exportErr) {
		respondError(c, err)
		return
	}

	respondMutation(c, http.StatusOK, gin.H{"id": id}, err)
}

// ListAllRecords handles GET /api/v1/design-records - full history, most recent first
func ListAllRecords(c *gin.Context) {
	records, err := services.GetRecordService().ListAll()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    records,
	})
}

// SearchRecords handles GET /api/v1/design-records/search?query=term -
// case-insensitive substring search over PO number, project name, client
// name and designer name. A blank query returns an empty list.
func SearchRecords(c *gin.Context) {
	records, err := services.GetRecordService().Search(c.Query("query"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    records,
	})
}

// recordID parses the :id path parameter, writing the error response itself
func recordID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": "Record ID must be a positive integer",
			},
		})
		return 0, false
	}
	return uint(id), true
}
