package photostorage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/serkank/amora/internal/pkg/logger"
)

// LocalStorage keeps photos on the local filesystem, served as static files.
type LocalStorage struct {
	basePath string // The root directory where photos are stored
	baseURL  string // Prepended to returned photo paths
}

// NewLocalStorage creates a new LocalStorage instance.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Upload saves the photo under a collision-free name and returns its URL.
// The returned PublicID is the path relative to the storage root.
func (ls *LocalStorage) Upload(_ context.Context, fileHeader *multipart.FileHeader) (*UploadResult, error) {
	if fileHeader == nil {
		return nil, fmt.Errorf("no file provided")
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	uniqueFilename := uuid.New().String() + ext
	dstPath := filepath.Join(ls.basePath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		// Remove the partially written file; the upload failed as a whole
		_ = os.Remove(dstPath)
		return nil, fmt.Errorf("failed to save uploaded file: %w", err)
	}

	return &UploadResult{
		URL:      ls.baseURL + "/" + uniqueFilename,
		PublicID: uniqueFilename,
	}, nil
}

// Delete removes a stored photo by its PublicID.
func (ls *LocalStorage) Delete(_ context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}

	// Refuse anything trying to escape the storage root
	cleaned := filepath.Clean(publicID)
	if strings.Contains(cleaned, "..") || filepath.IsAbs(cleaned) {
		return fmt.Errorf("invalid storage reference: %s", publicID)
	}

	fullPath := filepath.Join(ls.basePath, cleaned)
	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", fullPath).Msg("Photo file already gone")
			return nil
		}
		return fmt.Errorf("failed to delete photo file: %w", err)
	}

	return nil
}
