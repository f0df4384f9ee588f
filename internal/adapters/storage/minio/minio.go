// Package minio adapts an S3-compatible object store to the narrow
// gateway the core needs: signed PUT/GET URL issuance and a
// metadata-only existence probe. Bytes never flow through this
// service; clients talk to the store directly with the signed URLs.
package minio

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/LiamCoop/upload-prints/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Adapter is an adapter for an S3-compatible object store
type Adapter struct {
	client *minio.Client
	config config.StorageConfig
	logger *slog.Logger
}

// NewAdapter connects to the object store and verifies the configured
// bucket is reachable. Misconfiguration fails here, at startup, rather
// than surfacing later as signed URLs nothing can use.
func NewAdapter(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object store client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		logger.Info("bucket created", slog.String("bucket", cfg.Bucket))
	}

	return &Adapter{client: client, config: cfg, logger: logger}, nil
}

// IssueUploadURL returns a signed URL authorizing one PUT to key,
// valid for ttl
func (a *Adapter) IssueUploadURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	presignedURL, err := a.client.PresignedPutObject(ctx, a.config.Bucket, key, ttl)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned upload URL: %w", err)
	}
	return presignedURL.String(), nil
}

// IssueDownloadURL returns a signed URL authorizing GETs on key,
// valid for ttl
func (a *Adapter) IssueDownloadURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	presignedURL, err := a.client.PresignedGetObject(ctx, a.config.Bucket, key, ttl, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned download URL: %w", err)
	}
	return presignedURL.String(), nil
}

// Exists probes key with a metadata-only request. An absent object is
// (false, nil); every other failure (network, auth) propagates as an
// error so callers can tell "not uploaded" from "store unreachable".
func (a *Adapter) Exists(ctx context.Context, key string) (bool, error) {
	_, err := a.client.StatObject(ctx, a.config.Bucket, key, minio.StatObjectOptions{})
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.StatusCode == http.StatusNotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat object: %w", err)
	}
	return true, nil
}
