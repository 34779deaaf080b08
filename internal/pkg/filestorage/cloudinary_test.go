package filestorage

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devang/kalasangam/internal/pkg/apperrors"
)

// makeFileHeader builds a real multipart.FileHeader around the given bytes.
func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["file"][0]
}

func TestCloudinaryUploadImageSuccess(t *testing.T) {
	var gotPath, gotPreset, gotFolder, gotFilename string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotPreset = r.FormValue("upload_preset")
		gotFolder = r.FormValue("folder")
		if files := r.MultipartForm.File["file"]; len(files) > 0 {
			gotFilename = files[0].Filename
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"secure_url":"https://res.example.com/club/poster.jpg","public_id":"club/poster","width":800,"height":600,"format":"jpg"}`))
	}))
	defer server.Close()

	storage := NewCloudinaryStorageWithBaseURL(server.URL, "demo-cloud", "unsigned-preset")
	fh := makeFileHeader(t, "poster.jpg", []byte("jpeg-bytes"))

	url, err := storage.UploadImage(context.Background(), fh, "events")

	require.NoError(t, err)
	assert.Equal(t, "https://res.example.com/club/poster.jpg", url)
	assert.Equal(t, "/v1_1/demo-cloud/image/upload", gotPath)
	assert.Equal(t, "unsigned-preset", gotPreset)
	assert.Equal(t, "events", gotFolder)
	assert.Equal(t, "poster.jpg", gotFilename)
}

func TestCloudinaryUploadFileUsesAutoResourceType(t *testing.T) {
	var gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"secure_url":"https://res.example.com/reports/annual.pdf"}`))
	}))
	defer server.Close()

	storage := NewCloudinaryStorageWithBaseURL(server.URL, "demo-cloud", "unsigned-preset")
	fh := makeFileHeader(t, "annual.pdf", []byte("%PDF-1.7"))

	url, err := storage.UploadFile(context.Background(), fh, "reports")

	require.NoError(t, err)
	assert.Equal(t, "https://res.example.com/reports/annual.pdf", url)
	assert.Equal(t, "/v1_1/demo-cloud/auto/upload", gotPath)
}

func TestCloudinaryUploadServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"Upload preset not found"}}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	storage := NewCloudinaryStorageWithBaseURL(server.URL, "demo-cloud", "missing-preset")
	fh := makeFileHeader(t, "poster.jpg", []byte("jpeg-bytes"))

	_, err := storage.UploadImage(context.Background(), fh, "events")

	assert.ErrorIs(t, err, apperrors.ErrUploadFailed)
}

func TestCloudinaryUploadMissingSecureURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"public_id":"club/poster"}`))
	}))
	defer server.Close()

	storage := NewCloudinaryStorageWithBaseURL(server.URL, "demo-cloud", "unsigned-preset")
	fh := makeFileHeader(t, "poster.jpg", []byte("jpeg-bytes"))

	_, err := storage.UploadImage(context.Background(), fh, "events")

	assert.ErrorIs(t, err, apperrors.ErrUploadFailed)
}

func TestCloudinaryUploadNilFile(t *testing.T) {
	storage := NewCloudinaryStorage("demo-cloud", "unsigned-preset")

	_, err := storage.UploadImage(context.Background(), nil, "events")

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCloudinaryDeleteIsNoOp(t *testing.T) {
	storage := NewCloudinaryStorage("demo-cloud", "unsigned-preset")

	assert.NoError(t, storage.Delete(context.Background(), "club/poster"))
}
