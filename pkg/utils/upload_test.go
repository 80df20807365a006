package utils_test

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/Humayun167/green-nest/pkg/errs"
	"github.com/Humayun167/green-nest/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89,
}

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(int64(len(content)) + 1024)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["image"][0]
}

func TestReadImage(t *testing.T) {
	t.Run("Sniffs the real type", func(t *testing.T) {
		upload, err := utils.ReadImage(fileHeader(t, "leaf.jpg", pngHeader))
		require.NoError(t, err)
		assert.Equal(t, "image/png", upload.ContentType)
		assert.Equal(t, ".png", upload.Extension)
		assert.Equal(t, "leaf.jpg", upload.Filename)
	})

	t.Run("Text disguised as an image", func(t *testing.T) {
		_, err := utils.ReadImage(fileHeader(t, "leaf.png", []byte("just some text")))
		assert.ErrorIs(t, err, errs.ErrNotAnImage)
	})

	t.Run("Too large", func(t *testing.T) {
		fh := fileHeader(t, "big.png", pngHeader)
		fh.Size = utils.MaxImageSize + 1
		_, err := utils.ReadImage(fh)
		assert.ErrorIs(t, err, errs.ErrFileTooLarge)
	})
}

func TestReadImages_StopsAtFirstBadFile(t *testing.T) {
	files := []*multipart.FileHeader{
		fileHeader(t, "a.png", pngHeader),
		fileHeader(t, "b.txt", []byte("plain")),
	}

	uploads, err := utils.ReadImages(files)
	assert.ErrorIs(t, err, errs.ErrNotAnImage)
	assert.Nil(t, uploads)
}
