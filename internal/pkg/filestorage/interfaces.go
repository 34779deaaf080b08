package filestorage

import (
	"context"
	"mime/multipart"
)

// UploadResult carries the media host's response for a stored asset.
type UploadResult struct {
	URL      string // Publicly reachable URL of the asset
	PublicID string // Host-side identifier, used only for diagnostics
	Width    int    // Pixel width when the asset is an image
	Height   int    // Pixel height when the asset is an image
	Format   string // Host-reported format (jpg, png, pdf, ...)
}

// AssetStorage defines the interface for asset upload operations.
// Implementations perform a single upload attempt; callers decide what to do
// on failure (nothing is retried here).
type AssetStorage interface {
	// UploadImage stores an image under the given folder and returns its public URL
	UploadImage(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (string, error)

	// UploadFile stores a generic file (reports, PDFs) under the given folder
	UploadFile(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (string, error)

	// Delete removes a previously uploaded asset when the backend supports it
	Delete(ctx context.Context, publicID string) error
}
