package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/summitmind/backend/internal/domain/shared"
	"github.com/summitmind/backend/internal/interfaces/http/dto"
)

func performHandled(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	base := &BaseHandler{}
	r := gin.New()
	r.GET("/test", func(c *gin.Context) {
		base.HandleError(c, err)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorInfo {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return *resp.Error
}

func TestHandleError(t *testing.T) {
	t.Run("domain error maps to its status", func(t *testing.T) {
		w := performHandled(t, shared.NewDomainError("CHECKIN_EXISTS", "A check-in already exists for this date"))

		assert.Equal(t, http.StatusConflict, w.Code)
		info := decodeError(t, w)
		assert.Equal(t, "CHECKIN_EXISTS", info.Code)
		assert.Equal(t, "A check-in already exists for this date", info.Message)
	})

	t.Run("wrapped domain error still maps", func(t *testing.T) {
		inner := shared.NewDomainError("ATHLETE_NOT_FOUND", "Athlete not found")
		w := performHandled(t, errors.Join(errors.New("lookup failed"), inner))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown error becomes opaque 500", func(t *testing.T) {
		w := performHandled(t, errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		info := decodeError(t, w)
		assert.Equal(t, dto.ErrCodeInternal, info.Code)
		assert.NotContains(t, info.Message, "pq:")
	})
}

func TestParseIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	base := &BaseHandler{}
	r := gin.New()
	r.GET("/items/:id", func(c *gin.Context) {
		id, ok := base.parseIDParam(c)
		if !ok {
			return
		}
		c.String(http.StatusOK, id.String())
	})

	t.Run("valid uuid", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/4b66396b-dbd1-40e1-ab0a-e16b1e9d1a26", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("malformed id is a 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/not-a-uuid", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
