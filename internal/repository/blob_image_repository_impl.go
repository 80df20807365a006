package repository

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	circuitbreaker "github.com/Humayun167/green-nest/internal/infrastructure/circuit-breaker"
	"github.com/Humayun167/green-nest/pkg/errs"
	"github.com/Humayun167/green-nest/pkg/utils"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

type BlobImageRepositoryImpl struct {
	bucket        *blob.Bucket
	publicBaseURL string
	cb            *gobreaker.CircuitBreaker[string]
}

func CreateNewBlobImageRepository(bucket *blob.Bucket, publicBaseURL string) ImageRepository {
	return &BlobImageRepositoryImpl{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		cb:            circuitbreaker.CreateCircuitBreaker[string]("object-storage"),
	}
}

// Upload writes file under folder with a ulid key and returns its public URL.
func (r *BlobImageRepositoryImpl) Upload(ctx context.Context, folder string, file utils.UploadedFile) (url string, err error) {
	key := path.Join(folder, ulid.Make().String()+file.Extension)

	url, err = r.cb.Execute(func() (string, error) {
		writeErr := r.bucket.WriteAll(ctx, key, file.Data, &blob.WriterOptions{
			ContentType: file.ContentType,
		})
		if writeErr != nil {
			return "", writeErr
		}
		return r.publicBaseURL + "/" + key, nil
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Upload").Str("key", key).Msg("")
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", fmt.Errorf("%w: %v", errs.ErrServiceUnavailable, err)
		}
		return "", fmt.Errorf("uploading image: %w", err)
	}

	return url, nil
}

// Delete removes the object behind url. URLs outside the bucket and objects
// that are already gone are ignored.
func (r *BlobImageRepositoryImpl) Delete(ctx context.Context, url string) (err error) {
	key, ok := strings.CutPrefix(url, r.publicBaseURL+"/")
	if !ok || key == "" {
		return nil
	}

	err = r.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		log.Ctx(ctx).Error().Err(err).Str("component", "Delete").Str("key", key).Msg("")
		return fmt.Errorf("deleting image: %w", err)
	}

	return nil
}
