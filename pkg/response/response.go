package response

import (
	"errors"
	"net/http"

	"github.com/Humayun167/green-nest/pkg/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

type ValidationError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
}

type ErrorResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors"`
}

func WriteSuccessResponse(c echo.Context, message string, data interface{}) error {
	resp := SuccessResponse{}
	resp.Success = true
	resp.Data = data
	resp.Message = message

	return c.JSON(http.StatusOK, resp)
}

func WriteCreatedResponse(c echo.Context, message string, data interface{}) error {
	resp := SuccessResponse{}
	resp.Success = true
	resp.Data = data
	resp.Message = message

	return c.JSON(http.StatusCreated, resp)
}

func WriteErrorResponse(c echo.Context, err error, errors interface{}) error {
	statusCode := errs.GetErrorStatusCode(err)
	if statusCode == http.StatusInternalServerError {
		log.Ctx(c.Request().Context()).Error().Err(err).Str("component", "WriteErrorResponse").Str("path", c.Path()).Msg("")
	}

	resp := ErrorResponse{}
	resp.Success = false
	resp.Message = errs.PublicMessage(err)
	resp.Errors = errors

	return c.JSON(statusCode, resp)
}

// WriteValidationErrorResponse reports the failing fields of a validator error.
// Known client errors pass through and anything else becomes a plain bad request.
func WriteValidationErrorResponse(c echo.Context, err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		if errs.GetErrorStatusCode(err) == http.StatusInternalServerError {
			err = errs.ErrValidation
		}
		return WriteErrorResponse(c, err, nil)
	}

	fields := make([]ValidationError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, ValidationError{
			Field: fe.Field(),
			Tag:   fe.Tag(),
		})
	}

	return WriteErrorResponse(c, errs.ErrValidation, fields)
}
