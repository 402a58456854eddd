package uploader

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
)

// GCSStorage stores objects in a Google Cloud Storage bucket with public
// read URLs.
type GCSStorage struct {
	Client *storage.Client
	Bucket string
}

func NewGCSStorage(client *storage.Client, bucket string) *GCSStorage {
	return &GCSStorage{Client: client, Bucket: bucket}
}

func (s *GCSStorage) Put(ctx context.Context, object, contentType string, r io.Reader) (string, error) {
	wc := s.Client.Bucket(s.Bucket).Object(object).NewWriter(ctx)
	wc.ContentType = contentType
	wc.ChunkSize = 0 // disable chunking for small files
	if _, err := io.Copy(wc, r); err != nil {
		_ = wc.Close()
		return "", err
	}
	if err := wc.Close(); err != nil {
		return "", err
	}
	return PublicURL(s.Bucket, object), nil
}

// PublicURL builds a public URL for an object (assuming public read access)
func PublicURL(bucket, object string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, object)
}
