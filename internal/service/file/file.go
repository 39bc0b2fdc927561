package file

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	s3pkg "github.com/medreach/hospital_backend/pkg/s3"
)

var (
	ErrUnsupportedImage = errors.New("unsupported image type")
	ErrFileTooLarge     = errors.New("file exceeds the size limit")
)

// maxImageSize bounds uploads at 5 MiB.
const maxImageSize = 5 << 20

var imageExts = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type UploadResult struct {
	Key      string
	FileName string
	Size     int64
	MimeType string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// UploadBlogImage stores a featured image under blog/{uuid}.{ext}.
	UploadBlogImage(ctx context.Context, fh *multipart.FileHeader) (*UploadResult, error)

	// UploadProfilePicture stores a picture under profiles/{uuid}.{ext}.
	UploadProfilePicture(ctx context.Context, fh *multipart.FileHeader) (*UploadResult, error)

	// GetDownloadURL returns a presigned GET URL for the given object key.
	GetDownloadURL(ctx context.Context, key string) (string, error)

	Delete(ctx context.Context, key string) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type fileService struct {
	s3 *s3pkg.Client
}

func New(s3Client *s3pkg.Client) Service {
	return &fileService{s3: s3Client}
}

func (s *fileService) UploadBlogImage(ctx context.Context, fh *multipart.FileHeader) (*UploadResult, error) {
	return s.uploadImage(ctx, "blog", fh)
}

func (s *fileService) UploadProfilePicture(ctx context.Context, fh *multipart.FileHeader) (*UploadResult, error) {
	return s.uploadImage(ctx, "profiles", fh)
}

func (s *fileService) uploadImage(ctx context.Context, prefix string, fh *multipart.FileHeader) (*UploadResult, error) {
	if fh.Size > maxImageSize {
		return nil, ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	mime, ok := imageExts[ext]
	if !ok {
		return nil, ErrUnsupportedImage
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	key := fmt.Sprintf("%s/%s%s", prefix, uuid.New(), ext)

	if err := s.s3.Upload(ctx, key, mime, src, fh.Size); err != nil {
		return nil, fmt.Errorf("s3 upload: %w", err)
	}

	return &UploadResult{
		Key:      key,
		FileName: fh.Filename,
		Size:     fh.Size,
		MimeType: mime,
	}, nil
}

func (s *fileService) GetDownloadURL(ctx context.Context, key string) (string, error) {
	url, err := s.s3.PresignDownload(ctx, key)
	if err != nil {
		return "", fmt.Errorf("presign: %w", err)
	}
	return url, nil
}

func (s *fileService) Delete(ctx context.Context, key string) error {
	if err := s.s3.Delete(ctx, key); err != nil {
		return fmt.Errorf("s3 delete: %w", err)
	}
	return nil
}
