package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/personal-dashboard/backend/internal/application/usecase/agenda"
	"github.com/personal-dashboard/backend/internal/domain/entity"
	"github.com/personal-dashboard/backend/internal/integration/entrypoint/dto"
)

// AgendaController handles calendar event endpoints.
type AgendaController struct {
	scheduleUseCase *agenda.ScheduleEventUseCase
	listUseCase     *agenda.ListEventsUseCase
	deleteUseCase   *agenda.DeleteEventUseCase
}

// NewAgendaController creates a new agenda controller instance.
func NewAgendaController(
	scheduleUseCase *agenda.ScheduleEventUseCase,
	listUseCase *agenda.ListEventsUseCase,
	deleteUseCase *agenda.DeleteEventUseCase,
) *AgendaController {
	return &AgendaController{
		scheduleUseCase: scheduleUseCase,
		listUseCase:     listUseCase,
		deleteUseCase:   deleteUseCase,
	}
}

// List handles GET /events requests.
func (c *AgendaController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	events := output.Events
	if events == nil {
		events = []entity.CalendarEvent{}
	}
	ctx.JSON(http.StatusOK, dto.EventListResponse{Events: events})
}

// Create handles POST /events requests.
func (c *AgendaController) Create(ctx *gin.Context) {
	var req dto.ScheduleEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.scheduleUseCase.Execute(ctx.Request.Context(), agenda.ScheduleEventInput{
		Text: req.Text,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, output.Event)
}

// Delete handles DELETE /events/:id requests.
func (c *AgendaController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid event ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), agenda.DeleteEventInput{ID: id}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
