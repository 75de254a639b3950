package storage

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	storage_go "github.com/supabase-community/storage-go"
)

const (
	imageBucket = "hackathon-images"
	keyPrefix   = "hackathons"
)

// ImageStore is the blob-store surface the form workflow depends on: upload a
// named binary payload, then resolve its public URL.
type ImageStore interface {
	Upload(key string, data []byte) error
	PublicURL(key string) string
}

// Supabase implements ImageStore against a Supabase Storage bucket.
type Supabase struct {
	client *storage_go.Client
}

// NewSupabase returns an ImageStore backed by the given storage client.
func NewSupabase(client *storage_go.Client) *Supabase {
	return &Supabase{client: client}
}

func (s *Supabase) Upload(key string, data []byte) error {
	_, err := s.client.UploadFile(imageBucket, key, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("uploading %s to bucket %s: %w", key, imageBucket, err)
	}
	return nil
}

func (s *Supabase) PublicURL(key string) string {
	return s.client.GetPublicUrl(imageBucket, key).SignedURL
}

// NewObjectKey builds a collision-resistant storage key for an uploaded image:
// a random token plus the original file extension, under the fixed
// "hackathons/" prefix.
func NewObjectKey(filename string) string {
	ext := filepath.Ext(filename)
	return fmt.Sprintf("%s/%s%s", keyPrefix, uuid.NewString(), ext)
}
