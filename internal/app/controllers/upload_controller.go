package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devang/kalasangam/internal/app/models/dto"
	"github.com/devang/kalasangam/internal/middleware"
	"github.com/devang/kalasangam/internal/pkg/filestorage"
	"github.com/devang/kalasangam/internal/pkg/metrics"
)

// UploadController pushes admin-submitted assets to the media host.
type UploadController struct {
	storage filestorage.AssetStorage
}

// NewUploadController creates a new UploadController
func NewUploadController(storage filestorage.AssetStorage) *UploadController {
	return &UploadController{storage: storage}
}

// UploadImage accepts a multipart image and returns its public URL. The
// optional "folder" field routes the asset into a named collection folder.
func (c *UploadController) UploadImage(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing file").WithField("file")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	url, err := c.storage.UploadImage(ctx.Request.Context(), file, ctx.PostForm("folder"))
	if err != nil {
		metrics.AssetUploads.WithLabelValues("image", "failure").Inc()
		middleware.HandleAPIError(ctx, err)
		return
	}

	metrics.AssetUploads.WithLabelValues("image", "success").Inc()
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.UploadResponse{URL: url}))
}

// UploadFile accepts any multipart file, such as a PDF report.
func (c *UploadController) UploadFile(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing file").WithField("file")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	url, err := c.storage.UploadFile(ctx.Request.Context(), file, ctx.PostForm("folder"))
	if err != nil {
		metrics.AssetUploads.WithLabelValues("file", "failure").Inc()
		middleware.HandleAPIError(ctx, err)
		return
	}

	metrics.AssetUploads.WithLabelValues("file", "success").Inc()
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.UploadResponse{URL: url}))
}
