package artifact

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	storage_go "github.com/supabase-community/storage-go"
)

// Sink is the narrow create-or-overwrite interface the pipeline writes
// run artifacts through: summary JSON, report renderings, diagnostic
// screenshots.
type Sink interface {
	Put(ctx context.Context, path, contentType string, data []byte) error
}

// DirSink writes artifacts under a local directory. Default sink.
type DirSink struct {
	root string
}

func NewDirSink(root string) *DirSink {
	return &DirSink{root: root}
}

func (s *DirSink) Put(_ context.Context, path, _ string, data []byte) error {
	full := filepath.Join(s.root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return fmt.Errorf("create artifact directory: %w", err)
	}
	if err := os.WriteFile(full, data, 0644); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	log.Printf("[ARTIFACT] wrote %s (%d bytes)", full, len(data))
	return nil
}

// BucketSink uploads artifacts to a Supabase Storage bucket.
type BucketSink struct {
	client *storage_go.Client
	bucket string
}

// NewBucketSink builds a sink against <projectURL>/storage/v1.
func NewBucketSink(projectURL, serviceKey, bucket string) *BucketSink {
	return &BucketSink{
		client: storage_go.NewClient(projectURL+"/storage/v1", serviceKey, nil),
		bucket: bucket,
	}
}

func (s *BucketSink) Put(_ context.Context, path, contentType string, data []byte) error {
	upsert := true
	_, err := s.client.UploadFile(s.bucket, path, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", path, err)
	}
	log.Printf("[ARTIFACT] uploaded %s (%d bytes)", path, len(data))
	return nil
}
