package photostorage

import (
	"context"
	"mime/multipart"
)

// UploadResult describes where an uploaded photo ended up.
type UploadResult struct {
	URL      string // Public URL of the stored photo
	PublicID string // Storage-side reference id, used for deletion
}

// PhotoStorage is the narrow contract the photo service consumes. Upload
// stores the raw image and returns its URL plus an external reference id;
// Delete removes the image behind that id.
type PhotoStorage interface {
	Upload(ctx context.Context, fileHeader *multipart.FileHeader) (*UploadResult, error)
	Delete(ctx context.Context, publicID string) error
}
