package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devang/kalasangam/internal/app/models"
	"github.com/devang/kalasangam/internal/app/models/dto"
	"github.com/devang/kalasangam/internal/app/services"
	"github.com/devang/kalasangam/internal/middleware"
)

// FacultyController handles faculty content operations
type FacultyController struct {
	facultyService services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.FacultyService) *FacultyController {
	return &FacultyController{facultyService: facultyService}
}

// List returns every faculty member in display order. Public endpoint; an
// unconfigured store yields an empty list, not an error.
func (c *FacultyController) List(ctx *gin.Context) {
	members, err := c.facultyService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(members))
}

// Create stores a new faculty member
func (c *FacultyController) Create(ctx *gin.Context) {
	var req dto.CreateFacultyMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid faculty data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	id, err := c.facultyService.Create(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.CreatedResponse{ID: id}))
}

// Update applies a partial update to a faculty member
func (c *FacultyController) Update(ctx *gin.Context) {
	var patch models.FacultyMemberPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid faculty data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.facultyService.Update(ctx.Request.Context(), ctx.Param("id"), &patch); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil))
}

// Delete removes a faculty member
func (c *FacultyController) Delete(ctx *gin.Context) {
	if err := c.facultyService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil))
}
