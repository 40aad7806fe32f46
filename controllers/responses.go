package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/PawanYadav007s/Design-Records-APP/models"
)

// respondError translates a typed core error into the API error envelope
func respondError(c *gin.Context, err error) {
	var (
		validationErr *models.ValidationError
		duplicateErr  *models.DuplicateKeyError
		notFoundErr   *models.NotFoundError
		conflictErr   *models.ConflictError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": validationErr.Error(),
			},
		})
	case errors.As(err, &duplicateErr):
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DUPLICATE_KEY",
				"message": duplicateErr.Error(),
			},
		})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": notFoundErr.Error(),
			},
		})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CONFLICT",
				"message": conflictErr.Error(),
			},
		})
	default:
		logrus.WithError(err).Error("Unexpected error handling request")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Unexpected error",
			},
		})
	}
}

// respondMutation reports a committed mutation. When the post-commit export
// failed the write itself still succeeded, so the response stays successful
// and carries the export failure for the caller to surface.
func respondMutation(c *gin.Context, status int, data interface{}, exportErr error) {
	body := gin.H{
		"success": true,
		"data":    data,
	}
	if exportErr != nil {
		body["export_error"] = exportErr.Error()
	}
	c.JSON(status, body)
}
