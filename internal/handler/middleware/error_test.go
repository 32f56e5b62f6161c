//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant-pos/internal/handler/httperr"
	"restaurant-pos/internal/handler/middleware"
	"restaurant-pos/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("renders a public error pushed without a response body", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/boom", func(c *gin.Context) {
			resp := httperr.Response{Status: http.StatusConflict, Error: "already taken"}
			_ = c.Error(gin.Error{
				Err:  errs.New("conflict"),
				Type: gin.ErrorTypePublic,
				Meta: resp,
			})
		})

		rec := httptest.NewRecorder()
		req, err := http.NewRequest(http.MethodGet, "/boom", nil)
		require.NoError(t, err)
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"error": "already taken"}`, rec.Body.String())
	})

	t.Run("leaves an already written response alone", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/written", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusNotFound, errs.New("missing"), "not found", nil)
		})

		rec := httptest.NewRecorder()
		req, err := http.NewRequest(http.MethodGet, "/written", nil)
		require.NoError(t, err)
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error": "not found"}`, rec.Body.String())
	})
}
