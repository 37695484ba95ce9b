package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/personal-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/personal-dashboard/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles the overview endpoint.
type DashboardController struct {
	overviewUseCase *dashboard.GetOverviewUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(overviewUseCase *dashboard.GetOverviewUseCase) *DashboardController {
	return &DashboardController{overviewUseCase: overviewUseCase}
}

// Overview handles GET /dashboard/overview requests.
func (c *DashboardController) Overview(ctx *gin.Context) {
	output, err := c.overviewUseCase.Execute(ctx.Request.Context(), dashboard.GetOverviewInput{
		StartDate: ctx.Query("startDate"),
		EndDate:   ctx.Query("endDate"),
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date range",
		})
		return
	}

	ctx.JSON(http.StatusOK, output)
}
