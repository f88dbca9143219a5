// Package objectstore publishes a generated tree to an S3-compatible bucket.
package objectstore

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog"

	"resumemcp/internal/ports"
)

const contentType = "application/json"

// Config selects the endpoint and bucket.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
	UseSSL    bool
}

// objectAPI is the subset of *minio.Client the store uses.
type objectAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// Store uploads artifacts as objects named prefix/path.
type Store struct {
	client objectAPI
	bucket string
	prefix string
	log    zerolog.Logger
}

// Ensure Store implements ArtifactStore
var _ ports.ArtifactStore = (*Store)(nil)

// New connects to the endpoint and makes sure the bucket exists.
func New(ctx context.Context, cfg Config, log zerolog.Logger) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("object store bucket is required")
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating object store client: %w", err)
	}

	s := newStore(client, cfg.Bucket, cfg.Prefix, log)
	if err := s.ensureBucket(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func newStore(client objectAPI, bucket, prefix string, log zerolog.Logger) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		log:    log,
	}
}

func (s *Store) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("checking bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("creating bucket %s: %w", s.bucket, err)
	}
	s.log.Info().Str("bucket", s.bucket).Msg("bucket created")
	return nil
}

// ObjectName maps an artifact path to its object key.
func (s *Store) ObjectName(p string) string {
	if s.prefix == "" {
		return p
	}
	return path.Join(s.prefix, p)
}

// Put uploads data unless an object with the same MD5 already exists.
func (s *Store) Put(ctx context.Context, p string, data []byte) (bool, error) {
	name := s.ObjectName(p)
	sum := md5.Sum(data)
	etag := hex.EncodeToString(sum[:])

	info, err := s.client.StatObject(ctx, s.bucket, name, minio.StatObjectOptions{})
	switch {
	case err == nil && strings.Trim(info.ETag, `"`) == etag:
		return false, nil
	case err != nil && minio.ToErrorResponse(err).Code != "NoSuchKey":
		return false, fmt.Errorf("stat %s: %w", name, err)
	}

	_, err = s.client.PutObject(ctx, s.bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return false, fmt.Errorf("uploading %s: %w", name, err)
	}
	return true, nil
}
