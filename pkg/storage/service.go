package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"dealerdesk/internal/apperrors"
	"dealerdesk/internal/utils"
	"dealerdesk/pkg/logger"
)

// NamedFile is an in-memory upload candidate.
type NamedFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// FileService applies bucket policy on top of a Provider: key generation,
// size limits, URL resolution by visibility. All expected failures come
// back as error values, never panics.
type FileService struct {
	provider Provider
	log      *logger.Logger
}

func NewFileService(provider Provider, log *logger.Logger) *FileService {
	return &FileService{
		provider: provider,
		log:      log,
	}
}

// EnsureBuckets makes sure every bucket the application owns exists.
// Safe to call on every boot.
func (s *FileService) EnsureBuckets(ctx context.Context) error {
	for _, policy := range Buckets {
		if err := s.provider.EnsureBucket(ctx, string(policy.Name), policy.Public, policy.SizeLimit); err != nil {
			return apperrors.Configuration(fmt.Sprintf("failed to ensure bucket %s", policy.Name), err)
		}
		s.log.WithBucket(string(policy.Name)).Debug("bucket ready")
	}
	return nil
}

// BuildObjectKey combines the prefix, a millisecond timestamp and the
// whitespace-sanitized original filename into a collision-resistant key.
func BuildObjectKey(prefix, filename string) string {
	return fmt.Sprintf("%s%d_%s", prefix, time.Now().UnixMilli(), utils.SanitizeFilename(filename))
}

func (s *FileService) Upload(ctx context.Context, bucket Bucket, data []byte, filename, contentType, prefix string) (string, error) {
	policy, ok := PolicyFor(bucket)
	if !ok {
		return "", apperrors.Upload(fmt.Sprintf("unknown bucket %q", bucket), nil)
	}

	if len(data) == 0 {
		return "", apperrors.Upload(utils.ErrNoFileProvided, nil)
	}

	if int64(len(data)) > policy.SizeLimit {
		return "", apperrors.Upload(
			fmt.Sprintf("file size %d exceeds bucket limit %d", len(data), policy.SizeLimit), nil)
	}

	if contentType == "" {
		contentType = utils.GetContentType(filename)
	}

	key := BuildObjectKey(prefix, filename)

	result, err := s.provider.Upload(ctx, string(bucket), &UploadRequest{
		Key:          key,
		Reader:       bytes.NewReader(data),
		ContentType:  contentType,
		Size:         int64(len(data)),
		CacheControl: "max-age=3600",
	})
	if err != nil {
		return "", apperrors.Upload(fmt.Sprintf("failed to upload %s to %s", filename, bucket), err)
	}

	return result.Key, nil
}

// UploadMany uploads the files concurrently and collects whatever
// succeeded. A partial failure returns the successful paths together with
// an error naming the failures, mirroring the single-file contract.
func (s *FileService) UploadMany(ctx context.Context, bucket Bucket, files []NamedFile, prefix string) ([]string, error) {
	if len(files) == 0 {
		return nil, apperrors.Upload(utils.ErrNoFileProvided, nil)
	}

	paths := make([]string, len(files))
	errs := make([]string, len(files))

	var wg sync.WaitGroup
	for i := range files {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			path, err := s.Upload(ctx, bucket, files[i].Data, files[i].Name, files[i].ContentType, prefix)
			if err != nil {
				errs[i] = err.Error()
				return
			}
			paths[i] = path
		}(i)
	}
	wg.Wait()

	var uploaded []string
	var failed []string
	for i := range files {
		if paths[i] != "" {
			uploaded = append(uploaded, paths[i])
		}
		if errs[i] != "" {
			failed = append(failed, errs[i])
		}
	}

	if len(failed) > 0 {
		return uploaded, apperrors.Upload(
			fmt.Sprintf("some files failed to upload: %s", strings.Join(failed, ", ")), nil)
	}

	return uploaded, nil
}

// FileURL resolves a stored path to a URL: permanent public URLs for
// public buckets, time-limited signed URLs for private ones.
func (s *FileService) FileURL(ctx context.Context, bucket Bucket, path string, expires time.Duration) (string, error) {
	if path == "" {
		return "", apperrors.Upload(utils.ErrNoPathProvided, nil)
	}

	policy, ok := PolicyFor(bucket)
	if !ok {
		return "", apperrors.Upload(fmt.Sprintf("unknown bucket %q", bucket), nil)
	}

	if policy.Public {
		return s.provider.PublicURL(string(bucket), path), nil
	}

	url, err := s.provider.SignedURL(ctx, string(bucket), path, expires)
	if err != nil {
		return "", apperrors.Upload(fmt.Sprintf("failed to sign url for %s", path), err)
	}
	return url, nil
}

func (s *FileService) Download(ctx context.Context, bucket Bucket, path string) ([]byte, string, error) {
	if path == "" {
		return nil, "", apperrors.Upload(utils.ErrNoPathProvided, nil)
	}

	result, err := s.provider.Download(ctx, string(bucket), path)
	if err != nil {
		return nil, "", apperrors.Upload(fmt.Sprintf("failed to download %s", path), err)
	}
	defer result.Reader.Close()

	data, err := io.ReadAll(result.Reader)
	if err != nil {
		return nil, "", apperrors.Upload(fmt.Sprintf("failed to read %s", path), err)
	}

	return data, result.ContentType, nil
}

func (s *FileService) Delete(ctx context.Context, bucket Bucket, paths ...string) error {
	if len(paths) == 0 {
		return apperrors.Upload(utils.ErrNoPathProvided, nil)
	}

	if err := s.provider.Delete(ctx, string(bucket), paths...); err != nil {
		return apperrors.Upload(fmt.Sprintf("failed to delete from %s", bucket), err)
	}
	return nil
}

func (s *FileService) List(ctx context.Context, bucket Bucket, prefix string) ([]*ObjectInfo, error) {
	entries, err := s.provider.List(ctx, string(bucket), prefix)
	if err != nil {
		return nil, apperrors.Upload(fmt.Sprintf("failed to list %s", bucket), err)
	}
	return entries, nil
}
