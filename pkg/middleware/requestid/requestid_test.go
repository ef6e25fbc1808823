package requestid

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(header string) (*httptest.ResponseRecorder, string, string) {
	gin.SetMode(gin.TestMode)
	var fromGin, fromCtx string
	r := gin.New()
	r.Use(Middleware())
	r.GET("/", func(c *gin.Context) {
		fromGin = Value(c)
		fromCtx = FromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(headerKey, header)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec, fromGin, fromCtx
}

func TestMiddlewareGeneratesID(t *testing.T) {
	rec, fromGin, fromCtx := serve("")
	_, err := uuid.Parse(fromGin)
	require.NoError(t, err)
	assert.Equal(t, fromGin, fromCtx)
	assert.Equal(t, fromGin, rec.Header().Get(headerKey))
}

func TestMiddlewareKeepsInboundID(t *testing.T) {
	rec, fromGin, _ := serve("edge-42")
	assert.Equal(t, "edge-42", fromGin)
	assert.Equal(t, "edge-42", rec.Header().Get(headerKey))
}

func TestMiddlewareRejectsMalformedID(t *testing.T) {
	_, fromGin, _ := serve(strings.Repeat("x", maxIDLength+1))
	assert.Len(t, fromGin, 36)

	_, fromGin, _ = serve("has space")
	assert.NotEqual(t, "has space", fromGin)
}
