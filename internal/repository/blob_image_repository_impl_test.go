package repository_test

import (
	"context"
	"strings"
	"testing"

	"github.com/Humayun167/green-nest/internal/repository"
	"github.com/Humayun167/green-nest/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobImageRepository(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	repo := repository.CreateNewBlobImageRepository(bucket, "http://localhost:4000/uploads/")

	url, err := repo.Upload(ctx, "posts", utils.UploadedFile{
		Filename:    "leaf.png",
		ContentType: "image/png",
		Extension:   ".png",
		Data:        []byte("png-bytes"),
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "http://localhost:4000/uploads/posts/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	key := strings.TrimPrefix(url, "http://localhost:4000/uploads/")
	data, err := bucket.ReadAll(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	attrs, err := bucket.Attributes(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)

	require.NoError(t, repo.Delete(ctx, url))
	exists, err := bucket.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, repo.Delete(ctx, url), "deleting twice is a no-op")
	assert.NoError(t, repo.Delete(ctx, "https://elsewhere.example/leaf.png"))
}

func TestNormalizeSearchLimit(t *testing.T) {
	assert.Equal(t, 10, repository.NormalizeSearchLimit(0))
	assert.Equal(t, 25, repository.NormalizeSearchLimit(25))
	assert.Equal(t, 50, repository.NormalizeSearchLimit(500))
}
