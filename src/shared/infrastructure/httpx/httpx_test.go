package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iagobrdev/orders-bootcamp/src/shared/domain/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusFor(apperror.KindNotFound))
	assert.Equal(t, http.StatusBadRequest, StatusFor(apperror.KindInvalidRequest))
	assert.Equal(t, http.StatusBadRequest, StatusFor(apperror.KindBusiness))
	assert.Equal(t, http.StatusConflict, StatusFor(apperror.KindInsufficientStock))
	assert.Equal(t, http.StatusConflict, StatusFor(apperror.KindConflict))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(apperror.KindInternal))
}

func newRouter(err error) *gin.Engine {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/boom", func(c *gin.Context) {
		RespondError(c, err)
	})
	return router
}

func TestRespondError_TypedError(t *testing.T) {
	notFound := apperror.New(apperror.KindNotFound, "order not found")
	router := newRouter(fmt.Errorf("%w: 9", notFound))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "order not found: 9", body.Message)
	assert.Equal(t, "/boom", body.Path)
	assert.NotEmpty(t, body.RequestID)
	assert.Equal(t, body.RequestID, rec.Header().Get(RequestIDHeader))
}

func TestRespondError_InternalHidesMessage(t *testing.T) {
	router := newRouter(errors.New("pq: connection refused"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestRequestID_KeepsValidIncomingHeader(t *testing.T) {
	router := newRouter(errors.New("x"))
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(RequestIDHeader, "6f1c1a52-2a4e-4a8e-9c43-0f7cba1d2b11")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "6f1c1a52-2a4e-4a8e-9c43-0f7cba1d2b11", rec.Header().Get(RequestIDHeader))
}
