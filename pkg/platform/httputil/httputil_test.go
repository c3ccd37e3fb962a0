package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "assure/pkg/domain-errors"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestWriteError(t *testing.T) {
	t.Run("bad request maps to 400 with message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteError(rec, dErrors.New(dErrors.CodeBadRequest, "referenced project does not exist"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "bad_request", body.Error)
		assert.Equal(t, "referenced project does not exist", body.Description)
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteError(rec, dErrors.New(dErrors.CodeNotFound, "assessment not found"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not_found", decodeError(t, rec).Error)
	})

	t.Run("internal error carries the underlying fault in the description", func(t *testing.T) {
		cause := errors.New("pq: connection refused")
		rec := httptest.NewRecorder()
		WriteError(rec, dErrors.Wrap(cause, dErrors.CodeInternal, "failed to write assessment"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "internal_error", body.Error)
		assert.Contains(t, body.Description, "failed to write assessment")
		assert.Contains(t, body.Description, "connection refused")
	})

	t.Run("caller-facing codes never leak the cause", func(t *testing.T) {
		cause := errors.New("row scan mismatch")
		rec := httptest.NewRecorder()
		WriteError(rec, dErrors.Wrap(cause, dErrors.CodeBadRequest, "invalid request body"))

		body := decodeError(t, rec)
		assert.Equal(t, "invalid request body", body.Description)
		assert.NotContains(t, body.Description, "row scan")
	})

	t.Run("uncoded error defaults to internal", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteError(rec, errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "internal_error", decodeError(t, rec).Error)
	})
}
