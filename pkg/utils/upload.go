package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/Humayun167/green-nest/pkg/errs"
	"github.com/gabriel-vasile/mimetype"
)

const MaxImageSize = 5 << 20

type UploadedFile struct {
	Filename    string
	ContentType string
	Extension   string
	Data        []byte
}

// ReadImage loads a multipart image into memory after checking its size and
// sniffing its content. The declared content type of the part is ignored.
func ReadImage(fh *multipart.FileHeader) (UploadedFile, error) {
	if fh.Size > MaxImageSize {
		return UploadedFile{}, errs.ErrFileTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return UploadedFile{}, fmt.Errorf("opening upload %q: %w", fh.Filename, err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, MaxImageSize+1))
	if err != nil {
		return UploadedFile{}, fmt.Errorf("reading upload %q: %w", fh.Filename, err)
	}

	if len(data) > MaxImageSize {
		return UploadedFile{}, errs.ErrFileTooLarge
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") || mtype.Is("image/svg+xml") {
		return UploadedFile{}, errs.ErrNotAnImage
	}

	return UploadedFile{
		Filename:    fh.Filename,
		ContentType: mtype.String(),
		Extension:   mtype.Extension(),
		Data:        data,
	}, nil
}

func ReadImages(files []*multipart.FileHeader) ([]UploadedFile, error) {
	uploads := make([]UploadedFile, 0, len(files))
	for _, fh := range files {
		upload, err := ReadImage(fh)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, upload)
	}

	return uploads, nil
}
