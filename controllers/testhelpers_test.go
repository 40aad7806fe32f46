package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/PawanYadav007s/Design-Records-APP/models"
	"github.com/PawanYadav007s/Design-Records-APP/services"
)

// setupAPITest wires an in-memory database, a mock exporter and a router
// with the full API surface for controller tests.
func setupAPITest(t *testing.T) (*gorm.DB, *services.MockExporter, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.AutoMigrate(&models.PORecord{}, &models.DesignRecord{}, &models.Designer{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	exporter := services.NewMockExporter()
	exporter.SetAsMockForTesting()
	services.SetRecordService(services.NewRecordService(db, exporter))

	router := gin.New()
	v1 := router.Group("/api/v1")
	{
		v1.GET("/dashboard", Dashboard)

		v1.POST("/pos", CreatePO)
		v1.GET("/pos/pending", ListPendingPOs)
		v1.DELETE("/pos/:po_number", DeletePO)

		v1.POST("/design-records", CreateDesignRecord)
		v1.GET("/design-records", ListAllRecords)
		v1.GET("/design-records/search", SearchRecords)
		v1.PATCH("/design-records/:id", UpdateDesignRecord)
		v1.DELETE("/design-records/:id", DeleteDesignRecord)

		v1.POST("/designers", CreateDesigner)
		v1.GET("/designers", ListDesigners)
		v1.PUT("/designers/:id", RenameDesigner)
		v1.DELETE("/designers/:id", DeleteDesigner)
	}

	return db, exporter, router
}

// performRequest runs one request through the router and decodes the JSON body
func performRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	response := map[string]interface{}{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, response
}

func errorCode(response map[string]interface{}) string {
	errObj, ok := response["error"].(map[string]interface{})
	if !ok {
		return ""
	}
	code, _ := errObj["code"].(string)
	return code
}

func validPOBody(poNumber string) map[string]interface{} {
	return map[string]interface{}{
		"po_number":           poNumber,
		"quotation_number":    "Q-01",
		"po_date":             "2024-01-10",
		"client_company_name": "Acme",
		"project_name":        "Widget",
	}
}

func validDesignBody(poNumber string) map[string]interface{} {
	return map[string]interface{}{
		"po_number":           poNumber,
		"designer_name":       "J. Lee",
		"design_location":     "/designs/w1.dwg",
		"design_release_date": "2024-02-01",
	}
}
