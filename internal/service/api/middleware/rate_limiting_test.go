package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/wework-notify/internal/service/api/httputil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiting(t *testing.T) {
	t.Run("버스트 초과 시 429 응답", func(t *testing.T) {
		e := echo.New()
		e.HTTPErrorHandler = httputil.ErrorHandler
		e.GET("/", func(c echo.Context) error {
			return httputil.Success(c)
		}, RateLimiting(1, 2))

		statuses := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "192.0.2.1:1234"
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			statuses = append(statuses, rec.Code)
		}

		// 버스트(2)까지는 허용, 세 번째 요청부터 제한
		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
	})

	t.Run("IP별로 독립적인 제한 적용", func(t *testing.T) {
		e := echo.New()
		e.HTTPErrorHandler = httputil.ErrorHandler
		e.GET("/", func(c echo.Context) error {
			return httputil.Success(c)
		}, RateLimiting(1, 1))

		first := httptest.NewRequest(http.MethodGet, "/", nil)
		first.RemoteAddr = "192.0.2.1:1234"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, first)
		assert.Equal(t, http.StatusOK, rec.Code)

		// 다른 IP의 요청은 앞선 IP의 소비량에 영향받지 않아야 한다.
		second := httptest.NewRequest(http.MethodGet, "/", nil)
		second.RemoteAddr = "192.0.2.2:1234"
		rec = httptest.NewRecorder()
		e.ServeHTTP(rec, second)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("잘못된 설정값은 panic", func(t *testing.T) {
		assert.Panics(t, func() { RateLimiting(0, 10) })
		assert.Panics(t, func() { RateLimiting(10, 0) })
	})
}
