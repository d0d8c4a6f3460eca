package supabase

import (
	"fmt"
	"strings"

	storage "github.com/supabase-community/storage-go"
)

// StorageClient reads generated images mirrored into a Supabase storage bucket
// under output/{project_id}/{file}.
type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, apiKey, bucket string) (*StorageClient, error) {
	if supabaseURL == "" {
		return nil, fmt.Errorf("storage url is required")
	}
	if bucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}

	baseURL := strings.TrimSuffix(supabaseURL, "/")
	client := storage.NewClient(baseURL+"/storage/v1", apiKey, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

func OutputPath(projectID int64, filename string) string {
	return fmt.Sprintf("output/%d/%s", projectID, filename)
}

func (s *StorageClient) Bucket() string {
	return s.bucket
}

func (s *StorageClient) GetPublicURL(storagePath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		s.baseURL, s.bucket, storagePath)
}

func (s *StorageClient) DownloadFile(storagePath string) ([]byte, error) {
	data, err := s.client.DownloadFile(s.bucket, storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}

	return data, nil
}
