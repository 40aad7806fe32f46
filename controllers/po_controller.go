package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PawanYadav007s/Design-Records-APP/models"
	"github.com/PawanYadav007s/Design-Records-APP/services"
)

// CreatePORequest represents the request body for registering a purchase order
type CreatePORequest struct {
	PONumber          string `json:"po_number" binding:"required"`
	QuotationNumber   string `json:"quotation_number"`
	PODate            string `json:"po_date" binding:"required"`
	ClientCompanyName string `json:"client_company_name" binding:"required"`
	ProjectName       string `json:"project_name" binding:"required"`
}

// CreatePO handles POST /api/v1/pos - registers a new purchase order
func CreatePO(c *gin.Context) {
	var req CreatePORequest
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

	po, err := services.GetRecordService().CreatePO(services.POInput{
		PONumber:          req.PONumber,
		QuotationNumber:   req.QuotationNumber,
		PODate:            req.PODate,
		ClientCompanyName: req.ClientCompanyName,
		ProjectName:       req.ProjectName,
	})

	var exportErr *models.ExportError
	if err != nil && !errors.As(err, &exportErr) {
		respondError(c, err)
		return
	}

	respondMutation(c, http.StatusCreated, po, err)
}

// ListPendingPOs handles GET /api/v1/pos/pending - POs awaiting design work
func ListPendingPOs(c *gin.Context) {
	pos, err := services.GetRecordService().ListPending()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    pos,
	})
}

// DeletePO handles DELETE /api/v1/pos/:po_number - administrative removal of
// a purchase order. Refused while the PO still owns design records.
func DeletePO(c *gin.Context) {
	poNumber := c.Param("po_number")

	err := services.GetRecordService().DeletePO(poNumber)

	var exportErr *models.ExportError
	if err != nil && !errors.As(err, &exportErr) {
		respondError(c, err)
		return
	}

	respondMutation(c, http.StatusOK, gin.H{"po_number": poNumber}, err)
}
