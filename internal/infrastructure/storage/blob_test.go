package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalDirectory(t *testing.T) {
	type TestCase struct {
		Name        string
		URL         string
		ExpectedDir string
		ExpectedOK  bool
	}

	testCases := []TestCase{
		{Name: "File bucket", URL: "file:///var/green-nest/uploads", ExpectedDir: "/var/green-nest/uploads", ExpectedOK: true},
		{Name: "S3 bucket", URL: "s3://green-nest?region=ap-southeast-1"},
		{Name: "Memory bucket", URL: "mem://"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			dir, ok := LocalDirectory(tc.URL)
			assert.Equal(t, tc.ExpectedOK, ok)
			assert.Equal(t, tc.ExpectedDir, dir)
		})
	}
}

func TestOpenBucket_CreatesLocalDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")

	bucket, err := OpenBucket(context.Background(), "file://"+filepath.ToSlash(dir))
	require.NoError(t, err)
	defer bucket.Close()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
