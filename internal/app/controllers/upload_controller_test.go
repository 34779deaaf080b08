package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devang/kalasangam/internal/app/models/dto"
	"github.com/devang/kalasangam/internal/pkg/apperrors"
)

type stubAssetStorage struct {
	url     string
	err     error
	folders []string
}

func (s *stubAssetStorage) UploadImage(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (string, error) {
	s.folders = append(s.folders, folder)
	return s.url, s.err
}

func (s *stubAssetStorage) UploadFile(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (string, error) {
	s.folders = append(s.folders, folder)
	return s.url, s.err
}

func (s *stubAssetStorage) Delete(ctx context.Context, publicID string) error {
	return nil
}

func newUploadRequest(t *testing.T, folder string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "poster.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	if folder != "" {
		require.NoError(t, writer.WriteField("folder", folder))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/uploads/image", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func performUpload(storage *stubAssetStorage, req *http.Request) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewUploadController(storage)
	router.POST("/admin/uploads/image", controller.UploadImage)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestUploadImageSuccess(t *testing.T) {
	storage := &stubAssetStorage{url: "https://res.example.com/events/poster.jpg"}

	rec := performUpload(storage, newUploadRequest(t, "events"))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "https://res.example.com/events/poster.jpg", data["url"])
	assert.Equal(t, []string{"events"}, storage.folders)
}

func TestUploadImageMediaHostFailure(t *testing.T) {
	storage := &stubAssetStorage{err: fmt.Errorf("%w: media host returned status 500", apperrors.ErrUploadFailed)}

	rec := performUpload(storage, newUploadRequest(t, "events"))

	require.Equal(t, http.StatusBadGateway, rec.Code)
	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeUploadFailed, resp.Error.Code)
}

func TestUploadImageMissingFile(t *testing.T) {
	storage := &stubAssetStorage{url: "unused"}

	req := httptest.NewRequest(http.MethodPost, "/admin/uploads/image", nil)
	rec := performUpload(storage, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, storage.folders, "storage is never called without a file")
}
