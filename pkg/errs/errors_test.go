package errs_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Humayun167/green-nest/pkg/errs"
	"github.com/stretchr/testify/assert"
)

func TestGetErrorStatusCode(t *testing.T) {
	type TestCase struct {
		Name     string
		Err      error
		Expected int
	}

	testCases := []TestCase{
		{Name: "Sentinel", Err: errs.ErrAddressNotOwned, Expected: http.StatusForbidden},
		{Name: "Wrapped sentinel", Err: fmt.Errorf("approving request: %w", errs.ErrRequestNotPending), Expected: http.StatusConflict},
		{Name: "Missing reason", Err: errs.ErrRejectionReasonRequired, Expected: http.StatusBadRequest},
		{Name: "Not logged in", Err: errs.ErrNotLoggedIn, Expected: http.StatusUnauthorized},
		{Name: "Unknown error", Err: errors.New("mongo: connection reset"), Expected: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, errs.GetErrorStatusCode(tc.Err))
		})
	}
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "Product not found", errs.PublicMessage(fmt.Errorf("load 42: %w", errs.ErrProductNotFound)))
	assert.Equal(t, errs.ErrInternalServer.Error(), errs.PublicMessage(errors.New("dial tcp 10.0.0.3:27017: refused")))
}
