package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/personal-dashboard/backend/internal/application/usecase/idea"
	"github.com/personal-dashboard/backend/internal/domain/entity"
	"github.com/personal-dashboard/backend/internal/integration/entrypoint/dto"
)

// IdeaController handles idea endpoints.
type IdeaController struct {
	addUseCase    *idea.AddIdeaUseCase
	deleteUseCase *idea.DeleteIdeaUseCase
	listUseCase   *idea.ListIdeasUseCase
}

// NewIdeaController creates a new idea controller instance.
func NewIdeaController(
	addUseCase *idea.AddIdeaUseCase,
	deleteUseCase *idea.DeleteIdeaUseCase,
	listUseCase *idea.ListIdeasUseCase,
) *IdeaController {
	return &IdeaController{
		addUseCase:    addUseCase,
		deleteUseCase: deleteUseCase,
		listUseCase:   listUseCase,
	}
}

// List handles GET /ideas requests.
func (c *IdeaController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ideas := output.Ideas
	if ideas == nil {
		ideas = []entity.Idea{}
	}
	ctx.JSON(http.StatusOK, dto.IdeaListResponse{Ideas: ideas})
}

// Create handles POST /ideas requests.
func (c *IdeaController) Create(ctx *gin.Context) {
	var req dto.CreateIdeaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), idea.AddIdeaInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    entity.IdeaCategory(req.Category),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, output.Idea)
}

// Delete handles DELETE /ideas/:id requests.
func (c *IdeaController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid idea ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), idea.DeleteIdeaInput{ID: id}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
