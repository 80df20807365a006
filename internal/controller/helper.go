package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Humayun167/green-nest/pkg/errs"
	"github.com/Humayun167/green-nest/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// bindAndValidate binds the request into payload and runs the struct
// validator over it.
func bindAndValidate(e echo.Context, payload interface{}, component string) error {
	if err := e.Bind(payload); err != nil {
		log.Ctx(e.Request().Context()).Warn().Err(err).Str("component", component).Msg("")
		return errs.ErrValidation
	}

	return e.Validate(payload)
}

// bindFormJSON decodes a JSON document sent as a multipart form field.
func bindFormJSON(e echo.Context, field string, payload interface{}, component string) error {
	raw := e.FormValue(field)
	if raw == "" {
		return errs.ErrMissingFields
	}

	if err := json.Unmarshal([]byte(raw), payload); err != nil {
		log.Ctx(e.Request().Context()).Warn().Err(err).Str("component", component).Msg("")
		return errs.ErrValidation
	}

	return e.Validate(payload)
}

func formImages(e echo.Context, field string) ([]utils.UploadedFile, error) {
	form, err := e.MultipartForm()
	if err != nil {
		return nil, errs.ErrImageRequired
	}

	files := form.File[field]
	if len(files) == 0 {
		return nil, errs.ErrImageRequired
	}

	return utils.ReadImages(files)
}

// formImage returns nil when the optional image field is absent.
func formImage(e echo.Context, field string) (*utils.UploadedFile, error) {
	fh, err := e.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.ErrValidation
	}

	image, err := utils.ReadImage(fh)
	if err != nil {
		return nil, err
	}

	return &image, nil
}
