package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newMiddlewareTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:mw_%s?mode=memory&cache=shared", t.Name())), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	return db
}

func dbCaptureRouter(pool *gorm.DB, got **gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(DBMiddleware(pool))
	router.GET("/", func(c *gin.Context) {
		val, ok := c.Get(string(contextkeys.DBContextKey))
		if ok {
			*got = val.(*gorm.DB)
		}
		c.Status(http.StatusNoContent)
	})
	return router
}

func TestDBMiddleware_UsesPoolByDefault(t *testing.T) {
	pool := newMiddlewareTestDB(t)

	var got *gorm.DB
	router := dbCaptureRouter(pool, &got)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Same(t, pool, got)
}

// Хендл из контекста запроса имеет приоритет над пулом:
// так тест может подсунуть хендлерам открытую транзакцию
func TestDBMiddleware_PrefersContextHandle(t *testing.T) {
	pool := newMiddlewareTestDB(t)
	tx := pool.Begin()
	require.NoError(t, tx.Error)
	defer tx.Rollback()

	var got *gorm.DB
	router := dbCaptureRouter(pool, &got)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), contextkeys.DBContextKey, tx))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Same(t, tx, got)
}
