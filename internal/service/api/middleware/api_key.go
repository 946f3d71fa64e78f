package middleware

import (
	"crypto/subtle"

	"github.com/darkkaiser/wework-notify/internal/service/api/httputil"
	applog "github.com/darkkaiser/wework-notify/pkg/log"
	"github.com/labstack/echo/v4"
)

// HeaderAPIKey API 키 인증용 HTTP 헤더 키
const HeaderAPIKey = "X-Api-Key"

// RequireAPIKey API 키 인증을 수행하는 미들웨어를 반환합니다.
//
// X-Api-Key 헤더의 값을 설정된 API 키와 비교하며,
// 타이밍 공격을 피하기 위해 상수 시간 비교를 사용합니다.
//
// 인증 실패 시:
//   - 400 Bad Request: 헤더 누락
//   - 401 Unauthorized: 잘못된 API 키
//
// Panics:
//   - apiKey가 비어있는 경우
func RequireAPIKey(apiKey string) echo.MiddlewareFunc {
	if apiKey == "" {
		panic("[RequireAPIKey] apiKey는 필수입니다")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			provided := c.Request().Header.Get(HeaderAPIKey)
			if provided == "" {
				return httputil.NewBadRequestError("X-Api-Key 헤더가 필요합니다")
			}

			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				applog.WithComponentAndFields(componentMiddleware, applog.Fields{
					"remote_ip": c.RealIP(),
					"path":      c.Request().URL.Path,
					"api_key":   applog.MaskSensitiveData(provided),
				}).Warn("잘못된 API 키로 접근이 시도되었습니다.")

				return httputil.NewUnauthorizedError("API 키가 유효하지 않습니다")
			}

			return next(c)
		}
	}
}
