package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

type GCPStorageProvider struct {
	client       *gcs.Client
	projectID    string
	bucketPrefix string
}

func NewGCPStorageProvider(projectID, credentialsFile, bucketPrefix string) (*GCPStorageProvider, error) {
	ctx := context.Background()

	var client *gcs.Client
	var err error

	if credentialsFile != "" {
		client, err = gcs.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	} else {
		client, err = gcs.NewClient(ctx)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create GCP storage client: %w", err)
	}

	return &GCPStorageProvider{
		client:       client,
		projectID:    projectID,
		bucketPrefix: bucketPrefix,
	}, nil
}

func (g *GCPStorageProvider) bucketName(bucket string) string {
	return g.bucketPrefix + bucket
}

// EnsureBucket checks attributes first; a concurrent create answered with
// HTTP 409 is treated as success.
func (g *GCPStorageProvider) EnsureBucket(ctx context.Context, bucket string, public bool, sizeLimit int64) error {
	handle := g.client.Bucket(g.bucketName(bucket))

	_, err := handle.Attrs(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gcs.ErrBucketNotExist) {
		return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}

	attrs := &gcs.BucketAttrs{}
	if public {
		attrs.PredefinedACL = "publicRead"
	}

	if err := handle.Create(ctx, g.projectID, attrs); err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) && gerr.Code == http.StatusConflict {
			return nil
		}
		return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}

	return nil
}

func (g *GCPStorageProvider) Upload(ctx context.Context, bucket string, request *UploadRequest) (*UploadResult, error) {
	object := g.client.Bucket(g.bucketName(bucket)).Object(request.Key)

	writer := object.NewWriter(ctx)
	writer.ContentType = request.ContentType
	if request.CacheControl != "" {
		writer.CacheControl = request.CacheControl
	}

	size, err := io.Copy(writer, request.Reader)
	if err != nil {
		writer.Close()
		return nil, fmt.Errorf("failed to write to GCP storage: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close writer: %w", err)
	}

	return &UploadResult{
		Key:  request.Key,
		Size: size,
	}, nil
}

func (g *GCPStorageProvider) Download(ctx context.Context, bucket, key string) (*DownloadResult, error) {
	object := g.client.Bucket(g.bucketName(bucket)).Object(key)

	reader, err := object.NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader: %w", err)
	}

	attrs, err := object.Attrs(ctx)
	if err != nil {
		reader.Close()
		return nil, fmt.Errorf("failed to get object attributes: %w", err)
	}

	return &DownloadResult{
		Reader:       reader,
		Size:         attrs.Size,
		ContentType:  attrs.ContentType,
		LastModified: attrs.Updated,
		ETag:         attrs.Etag,
	}, nil
}

func (g *GCPStorageProvider) Delete(ctx context.Context, bucket string, keys ...string) error {
	handle := g.client.Bucket(g.bucketName(bucket))

	for _, key := range keys {
		if err := handle.Object(key).Delete(ctx); err != nil {
			return fmt.Errorf("failed to delete %s from GCP storage: %w", key, err)
		}
	}

	return nil
}

func (g *GCPStorageProvider) SignedURL(ctx context.Context, bucket, key string, expires time.Duration) (string, error) {
	url, err := g.client.Bucket(g.bucketName(bucket)).SignedURL(key, &gcs.SignedURLOptions{
		Method:  http.MethodGet,
		Expires: time.Now().Add(expires),
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate signed URL: %w", err)
	}

	return url, nil
}

func (g *GCPStorageProvider) PublicURL(bucket, key string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", g.bucketName(bucket), key)
}

func (g *GCPStorageProvider) List(ctx context.Context, bucket, prefix string) ([]*ObjectInfo, error) {
	it := g.client.Bucket(g.bucketName(bucket)).Objects(ctx, &gcs.Query{Prefix: prefix})

	var entries []*ObjectInfo
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}

		entries = append(entries, &ObjectInfo{
			Key:          attrs.Name,
			Size:         attrs.Size,
			ContentType:  attrs.ContentType,
			LastModified: attrs.Updated,
			ETag:         attrs.Etag,
		})
	}

	return entries, nil
}
