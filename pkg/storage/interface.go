package storage

import (
	"context"
	"io"
	"time"
)

// Provider is the bucket-scoped object storage contract. Every operation
// addresses a named bucket; buckets are created lazily via EnsureBucket.
type Provider interface {
	EnsureBucket(ctx context.Context, bucket string, public bool, sizeLimit int64) error
	Upload(ctx context.Context, bucket string, request *UploadRequest) (*UploadResult, error)
	Download(ctx context.Context, bucket, key string) (*DownloadResult, error)
	Delete(ctx context.Context, bucket string, keys ...string) error
	SignedURL(ctx context.Context, bucket, key string, expires time.Duration) (string, error)
	PublicURL(bucket, key string) string
	List(ctx context.Context, bucket, prefix string) ([]*ObjectInfo, error)
}

type UploadRequest struct {
	Key          string    `json:"key"`
	Reader       io.Reader `json:"-"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	CacheControl string    `json:"cache_control"`
}

type UploadResult struct {
	Key  string `json:"key"`
	Size int64  `json:"size"`
	ETag string `json:"etag"`
}

type DownloadResult struct {
	Reader       io.ReadCloser `json:"-"`
	Size         int64         `json:"size"`
	ContentType  string        `json:"content_type"`
	LastModified time.Time     `json:"last_modified"`
	ETag         string        `json:"etag"`
}

type ObjectInfo struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"content_type"`
	LastModified time.Time `json:"last_modified"`
	ETag         string    `json:"etag"`
}
