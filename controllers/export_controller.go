package controllers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/PawanYadav007s/Design-Records-APP/config"
	"github.com/PawanYadav007s/Design-Records-APP/services"
)

// ExportSnapshot handles POST /api/v1/export - regenerates the spreadsheet
// snapshot on demand and reports where it was written.
func ExportSnapshot(c *gin.Context) {
	if err := services.GetExporter().ExportSnapshot(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "EXPORT_ERROR",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"path": snapshotPath(),
		},
	})
}

// DownloadSnapshot handles GET /api/v1/export/download - regenerates the
// snapshot and sends the workbook as an attachment.
func DownloadSnapshot(c *gin.Context) {
	if err := services.GetExporter().ExportSnapshot(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "EXPORT_ERROR",
				"message": err.Error(),
			},
		})
		return
	}

	c.FileAttachment(snapshotPath(), services.SnapshotFileName)
}

func snapshotPath() string {
	return filepath.Join(config.GetConfig().ExcelSavePath, services.SnapshotFileName)
}
