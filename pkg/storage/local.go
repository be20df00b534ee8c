package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalProvider keeps blobs on the local filesystem, one directory per
// bucket. Used for development and tests.
type LocalProvider struct {
	basePath string
	baseURL  string
}

func NewLocalProvider(basePath, baseURL string) (*LocalProvider, error) {
	err := os.MkdirAll(basePath, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create base path: %w", err)
	}

	return &LocalProvider{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

func (l *LocalProvider) EnsureBucket(ctx context.Context, bucket string, public bool, sizeLimit int64) error {
	return os.MkdirAll(filepath.Join(l.basePath, bucket), 0755)
}

func (l *LocalProvider) Upload(ctx context.Context, bucket string, request *UploadRequest) (*UploadResult, error) {
	filePath := filepath.Join(l.basePath, bucket, filepath.FromSlash(request.Key))

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	size, err := io.Copy(file, request.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	return &UploadResult{
		Key:  request.Key,
		Size: size,
	}, nil
}

func (l *LocalProvider) Download(ctx context.Context, bucket, key string) (*DownloadResult, error) {
	filePath := filepath.Join(l.basePath, bucket, filepath.FromSlash(key))

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}

	return &DownloadResult{
		Reader:       file,
		Size:         stat.Size(),
		LastModified: stat.ModTime(),
	}, nil
}

func (l *LocalProvider) Delete(ctx context.Context, bucket string, keys ...string) error {
	for _, key := range keys {
		filePath := filepath.Join(l.basePath, bucket, filepath.FromSlash(key))
		if err := os.Remove(filePath); err != nil {
			return fmt.Errorf("failed to delete %s: %w", key, err)
		}
	}
	return nil
}

// SignedURL on local storage cannot expire; it returns the plain URL.
func (l *LocalProvider) SignedURL(ctx context.Context, bucket, key string, expires time.Duration) (string, error) {
	return l.PublicURL(bucket, key), nil
}

func (l *LocalProvider) PublicURL(bucket, key string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(l.baseURL, "/"), bucket, key)
}

func (l *LocalProvider) List(ctx context.Context, bucket, prefix string) ([]*ObjectInfo, error) {
	bucketPath := filepath.Join(l.basePath, bucket)

	var entries []*ObjectInfo

	err := filepath.Walk(bucketPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}

		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(bucketPath, path)
		if err != nil {
			return err
		}

		key := filepath.ToSlash(relPath)
		if prefix != "" && !strings.HasPrefix(key, prefix) {
			return nil
		}

		entries = append(entries, &ObjectInfo{
			Key:          key,
			Size:         info.Size(),
			LastModified: info.ModTime(),
		})

		return nil
	})

	return entries, err
}
