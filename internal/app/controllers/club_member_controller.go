package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devang/kalasangam/internal/app/models"
	"github.com/devang/kalasangam/internal/app/models/dto"
	"github.com/devang/kalasangam/internal/app/services"
	"github.com/devang/kalasangam/internal/middleware"
)

// ClubMemberController handles club member content operations
type ClubMemberController struct {
	memberService services.ClubMemberService
}

// NewClubMemberController creates a new ClubMemberController
func NewClubMemberController(memberService services.ClubMemberService) *ClubMemberController {
	return &ClubMemberController{memberService: memberService}
}

// List returns every club member in insertion order.
func (c *ClubMemberController) List(ctx *gin.Context) {
	members, err := c.memberService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(members))
}

// Create stores a new club member
func (c *ClubMemberController) Create(ctx *gin.Context) {
	var req dto.CreateClubMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid member data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	id, err := c.memberService.Create(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.CreatedResponse{ID: id}))
}

// Update applies a partial update to a club member
func (c *ClubMemberController) Update(ctx *gin.Context) {
	var patch models.ClubMemberPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid member data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.memberService.Update(ctx.Request.Context(), ctx.Param("id"), &patch); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil))
}

// Delete removes a club member
func (c *ClubMemberController) Delete(ctx *gin.Context) {
	if err := c.memberService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil))
}
