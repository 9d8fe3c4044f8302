package content

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/portal360/admin-api/internal/domain"
	"github.com/portal360/admin-api/internal/pkg/id"
)

// presignTTL is how long content-asset URLs handed to the website stay valid.
const presignTTL = 15 * time.Minute

type UploadInput struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
	Section     string
	UploaderID  string
}

type Service interface {
	Upload(ctx context.Context, input UploadInput) (*domain.ContentAsset, error)
	// Get returns the asset metadata plus a presigned URL for the bytes.
	Get(ctx context.Context, assetID string) (*domain.ContentAsset, string, error)
	Delete(ctx context.Context, assetID string) error
}

type assetStore interface {
	Put(ctx context.Context, a *domain.ContentAsset) error
	Get(ctx context.Context, assetID string) (*domain.ContentAsset, error)
	SoftDelete(ctx context.Context, assetID string) error
}

type objectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

type service struct {
	objects objectStore
	repo    assetStore
}

func NewService(objects objectStore, repo assetStore) Service {
	return &service{objects: objects, repo: repo}
}

func (s *service) Upload(ctx context.Context, input UploadInput) (*domain.ContentAsset, error) {
	section := input.Section
	if section == "" {
		section = "general"
	}
	safeName := sanitizeFilename(input.Filename)
	key := fmt.Sprintf("content/%s/%s", section, safeName)

	hasher := sha256.New()
	tee := io.TeeReader(input.Reader, hasher)
	if _, err := s.objects.Upload(ctx, key, tee, input.ContentType); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	a := &domain.ContentAsset{
		AssetID:          id.New(),
		Object:           key,
		Section:          section,
		Name:             safeName,
		Type:             input.ContentType,
		Size:             input.Size,
		Hash:             hex.EncodeToString(hasher.Sum(nil)),
		UploadedByUserID: input.UploaderID,
		Enable:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.repo.Put(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) Get(ctx context.Context, assetID string) (*domain.ContentAsset, string, error) {
	a, err := s.repo.Get(ctx, assetID)
	if err != nil {
		return nil, "", err
	}
	if !a.Enable {
		return nil, "", fmt.Errorf("content asset not found: %w", domain.ErrNotFound)
	}
	url, err := s.objects.PresignedURL(ctx, a.Object, presignTTL)
	if err != nil {
		return nil, "", err
	}
	return a, url, nil
}

func (s *service) Delete(ctx context.Context, assetID string) error {
	a, err := s.repo.Get(ctx, assetID)
	if err != nil {
		return err
	}
	if err := s.objects.Delete(ctx, a.Object); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, assetID)
}

// sanitizeFilename strips directory components and characters that would
// break an S3 key.
func sanitizeFilename(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "asset"
	}
	return b.String()
}
