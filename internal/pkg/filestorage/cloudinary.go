package filestorage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/devang/kalasangam/internal/pkg/apperrors"
	"github.com/devang/kalasangam/internal/pkg/logger"
)

const defaultCloudinaryBaseURL = "https://api.cloudinary.com"

// CloudinaryStorage uploads assets to Cloudinary via unsigned upload presets.
type CloudinaryStorage struct {
	baseURL      string
	cloudName    string
	uploadPreset string
	client       *http.Client
}

// cloudinaryResponse mirrors the fields of the upload response we care about.
type cloudinaryResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Format    string `json:"format"`
}

// NewCloudinaryStorage creates a CloudinaryStorage for the given cloud and preset.
func NewCloudinaryStorage(cloudName, uploadPreset string) *CloudinaryStorage {
	return &CloudinaryStorage{
		baseURL:      defaultCloudinaryBaseURL,
		cloudName:    cloudName,
		uploadPreset: uploadPreset,
		client:       http.DefaultClient,
	}
}

// NewCloudinaryStorageWithBaseURL is like NewCloudinaryStorage with an explicit
// endpoint, used by tests to point at a stub server.
func NewCloudinaryStorageWithBaseURL(baseURL, cloudName, uploadPreset string) *CloudinaryStorage {
	s := NewCloudinaryStorage(cloudName, uploadPreset)
	s.baseURL = baseURL
	return s
}

// UploadImage performs a single multipart POST to the image upload endpoint.
func (s *CloudinaryStorage) UploadImage(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (string, error) {
	return s.upload(ctx, fileHeader, folder, "image")
}

// UploadFile uses the auto resource type so PDFs and other documents are accepted.
func (s *CloudinaryStorage) UploadFile(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (string, error) {
	return s.upload(ctx, fileHeader, folder, "auto")
}

// Delete is a no-op: unsigned client uploads cannot delete assets, that needs
// signed server credentials. Orphans are cleaned up via the Cloudinary console.
func (s *CloudinaryStorage) Delete(ctx context.Context, publicID string) error {
	logger.Warn().Str("publicID", publicID).Msg("Asset deletion is not supported with unsigned uploads; remove it via the media host console")
	return nil
}

func (s *CloudinaryStorage) upload(ctx context.Context, fileHeader *multipart.FileHeader, folder, resourceType string) (string, error) {
	if fileHeader == nil {
		return "", apperrors.NewValidationError("no file provided")
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	// Build the multipart body the upload API expects: file, upload_preset, folder
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)
	go func() {
		var werr error
		defer func() { pw.CloseWithError(werr) }()

		part, werr := writer.CreateFormFile("file", fileHeader.Filename)
		if werr != nil {
			return
		}
		if _, werr = io.Copy(part, file); werr != nil {
			return
		}
		if werr = writer.WriteField("upload_preset", s.uploadPreset); werr != nil {
			return
		}
		if werr = writer.WriteField("folder", folder); werr != nil {
			return
		}
		werr = writer.Close()
	}()

	endpoint := fmt.Sprintf("%s/v1_1/%s/%s/upload", s.baseURL, s.cloudName, resourceType)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, pr)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Error().Err(err).Str("endpoint", endpoint).Msg("Upload request failed")
		return "", fmt.Errorf("%w: %v", apperrors.ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		logger.Error().Int("status", resp.StatusCode).Str("body", string(body)).Msg("Media host rejected upload")
		return "", fmt.Errorf("%w: media host returned status %d", apperrors.ErrUploadFailed, resp.StatusCode)
	}

	var uploaded cloudinaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		return "", fmt.Errorf("%w: failed to decode upload response: %v", apperrors.ErrUploadFailed, err)
	}
	if uploaded.SecureURL == "" {
		return "", fmt.Errorf("%w: upload response missing secure_url", apperrors.ErrUploadFailed)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("folder", folder).Str("url", uploaded.SecureURL).Msg("Asset uploaded")
	return uploaded.SecureURL, nil
}
