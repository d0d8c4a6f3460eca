// Package media resolves where generated images live and fetches their bytes.
package media

import (
	"context"
	"fmt"
	"strings"

	"ai-architect-console/internal/backend"
	"ai-architect-console/internal/supabase"
	"github.com/gabriel-vasile/mimetype"
)

type Image struct {
	Data        []byte
	ContentType string
}

type Resolver interface {
	// OutputImageURL is the browser-facing URL of a generated image.
	OutputImageURL(projectID int64, fileName string) string
	FetchOutputImage(ctx context.Context, projectID int64, fileName string) (*Image, error)
}

type backendFetcher interface {
	FetchOutputImage(ctx context.Context, projectID int64, fileName string) ([]byte, string, error)
}

// BackendResolver serves images from the backend's /media/output route.
type BackendResolver struct {
	baseURL string
	fetcher backendFetcher
}

func NewBackendResolver(baseURL string, fetcher backendFetcher) *BackendResolver {
	return &BackendResolver{baseURL: baseURL, fetcher: fetcher}
}

func (r *BackendResolver) OutputImageURL(projectID int64, fileName string) string {
	return r.baseURL + backend.OutputImagePath(projectID, fileName)
}

func (r *BackendResolver) FetchOutputImage(ctx context.Context, projectID int64, fileName string) (*Image, error) {
	data, contentType, err := r.fetcher.FetchOutputImage(ctx, projectID, fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch output image: %w", err)
	}
	return newImage(data, contentType), nil
}

type storageReader interface {
	GetPublicURL(storagePath string) string
	DownloadFile(storagePath string) ([]byte, error)
}

// StorageResolver serves images mirrored into object storage.
type StorageResolver struct {
	storage storageReader
}

func NewStorageResolver(storage storageReader) *StorageResolver {
	return &StorageResolver{storage: storage}
}

func (r *StorageResolver) OutputImageURL(projectID int64, fileName string) string {
	return r.storage.GetPublicURL(supabase.OutputPath(projectID, fileName))
}

func (r *StorageResolver) FetchOutputImage(ctx context.Context, projectID int64, fileName string) (*Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := r.storage.DownloadFile(supabase.OutputPath(projectID, fileName))
	if err != nil {
		return nil, err
	}
	return newImage(data, ""), nil
}

// newImage keeps a declared content type and sniffs when none is useful.
func newImage(data []byte, declared string) *Image {
	mediaType, _, _ := strings.Cut(declared, ";")
	mediaType = strings.TrimSpace(mediaType)
	if mediaType == "" || mediaType == "application/octet-stream" {
		declared = mimetype.Detect(data).String()
	}
	return &Image{Data: data, ContentType: declared}
}
