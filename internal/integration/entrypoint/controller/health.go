package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/personal-dashboard/backend/internal/infra/db"
	"github.com/personal-dashboard/backend/internal/integration/entrypoint/dto"
)

// HealthController handles health check endpoints.
type HealthController struct {
	database *db.Database
}

// NewHealthController creates a new health controller instance.
func NewHealthController(database *db.Database) *HealthController {
	return &HealthController{database: database}
}

// Check handles GET /health requests.
func (c *HealthController) Check(ctx *gin.Context) {
	database := "up"
	status := http.StatusOK
	if !c.database.HealthCheck() {
		database = "down"
		status = http.StatusServiceUnavailable
	}

	ctx.JSON(status, dto.HealthResponse{
		Status:   "ok",
		Database: database,
	})
}
