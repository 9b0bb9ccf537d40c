package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fabtrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"required", errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		{"invalid", errs.NewValueIsInvalidError("orderId"), http.StatusBadRequest},
		{"out of range", errs.NewValueIsOutOfRangeError("progress", 150, 0, 100), http.StatusBadRequest},
		{"not found", errs.NewObjectNotFoundError("order", int64(42)), http.StatusNotFound},
		{"conflict", errs.NewStateConflictError("order is not ready to complete"), http.StatusConflict},
		{"storage", errors.New("connection reset"), http.StatusInternalServerError},
	}

	e := echo.New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, respondError(ctx, tc.err))
			assert.Equal(t, tc.status, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.status, body.Code)
		})
	}
}

func TestRespondError_HidesInternalDetails(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, respondError(ctx, errors.New("dial tcp 10.0.0.5:5432: connection refused")))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body.Message)
}
