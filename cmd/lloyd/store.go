package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hupe1980/lloyd/blobstore"
	miniostore "github.com/hupe1980/lloyd/blobstore/minio"
	s3store "github.com/hupe1980/lloyd/blobstore/s3"
	"github.com/hupe1980/lloyd/catalog"
	ddbcatalog "github.com/hupe1980/lloyd/catalog/dynamodb"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const localCacheSize = 64

var errInvalidStore = errors.New("invalid store")

type storeKind int

const (
	storeMemory storeKind = iota
	storeLocal
	storeS3
	storeMinIO
)

type storeSpec struct {
	kind   storeKind
	dir    string
	bucket string
	prefix string
}

func parseStore(spec string) (storeSpec, error) {
	switch {
	case spec == "memory":
		return storeSpec{kind: storeMemory}, nil
	case strings.HasPrefix(spec, "local:"):
		dir := strings.TrimPrefix(spec, "local:")
		if dir == "" {
			return storeSpec{}, fmt.Errorf("%w: local store needs a directory", errInvalidStore)
		}
		return storeSpec{kind: storeLocal, dir: dir}, nil
	case strings.HasPrefix(spec, "s3://"), strings.HasPrefix(spec, "minio://"):
		u, err := url.Parse(spec)
		if err != nil {
			return storeSpec{}, fmt.Errorf("%w: %w", errInvalidStore, err)
		}
		if u.Host == "" {
			return storeSpec{}, fmt.Errorf("%w: %s store needs a bucket", errInvalidStore, u.Scheme)
		}
		kind := storeS3
		if u.Scheme == "minio" {
			kind = storeMinIO
		}
		return storeSpec{kind: kind, bucket: u.Host, prefix: strings.Trim(u.Path, "/")}, nil
	default:
		return storeSpec{}, fmt.Errorf("%w: %q", errInvalidStore, spec)
	}
}

func openStore(ctx context.Context, spec, table string) (blobstore.BlobStore, catalog.Catalog, error) {
	s, err := parseStore(spec)
	if err != nil {
		return nil, nil, err
	}

	switch s.kind {
	case storeLocal:
		cached, err := blobstore.NewCachingStore(blobstore.NewLocalStore(s.dir), localCacheSize)
		if err != nil {
			return nil, nil, err
		}
		return cached, catalog.NewMemoryCatalog(), nil

	case storeS3:
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		blobs := s3store.NewStore(s3.NewFromConfig(cfg), s.bucket, s.prefix)
		if table == "" {
			return blobs, catalog.NewMemoryCatalog(), nil
		}
		return blobs, ddbcatalog.New(dynamodb.NewFromConfig(cfg), table), nil

	case storeMinIO:
		endpoint := os.Getenv("MINIO_ENDPOINT")
		if endpoint == "" {
			endpoint = "localhost:9000"
		}
		client, err := minio.New(endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"), ""),
			Secure: os.Getenv("MINIO_SECURE") == "true",
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create MinIO client: %w", err)
		}
		return miniostore.NewStore(client, s.bucket, s.prefix), catalog.NewMemoryCatalog(), nil

	default:
		return blobstore.NewMemoryStore(), catalog.NewMemoryCatalog(), nil
	}
}
