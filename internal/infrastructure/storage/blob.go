package storage

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// OpenBucket opens the bucket behind bucketURL, for example
// file:///var/uploads, s3://bucket?region=eu-west-1 or gs://bucket.
// Local directories are created when missing.
func OpenBucket(ctx context.Context, bucketURL string) (*blob.Bucket, error) {
	if dir, ok := LocalDirectory(bucketURL); ok {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating upload directory %q: %w", dir, err)
		}
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, fmt.Errorf("opening bucket %q: %w", bucketURL, err)
	}

	return bucket, nil
}

// LocalDirectory returns the directory behind a file:// bucket URL so the
// HTTP server can serve it. Remote buckets serve their own objects.
func LocalDirectory(bucketURL string) (string, bool) {
	u, err := url.Parse(bucketURL)
	if err != nil || u.Scheme != fileblob.Scheme {
		return "", false
	}

	return u.Path, u.Path != ""
}
