package middleware

import (
	"net/url"
	"time"

	applog "github.com/darkkaiser/wework-notify/pkg/log"
	"github.com/labstack/echo/v4"
)

// defaultBytesIn Content-Length 헤더가 존재하지 않는 경우 bytes_in 로그 필드에 기록될 기본값입니다.
// 빈 문자열 대신 "0"을 사용하여 숫자형 값을 기대하는 로그 수집 시스템에서의 파싱 오류를 방지합니다.
const defaultBytesIn = "0"

// sensitiveQueryParams HTTP 요청 로깅 시 값을 마스킹 처리해야 하는 쿼리 파라미터 키 목록입니다.
var sensitiveQueryParams = []string{
	"api_key",
	"key",
	"access_token",
	"corpsecret",
	"password",
	"token",
	"secret",
}

// HTTPLogger HTTP 요청/응답을 구조화된 로그로 기록하는 미들웨어를 반환합니다.
//
// 기록되는 정보:
//   - 요청: IP, 메서드, URI, User-Agent, Content-Length
//   - 응답: 상태 코드, 응답 크기, Request ID
//   - 성능: 처리 시간
//   - 보안: 민감한 쿼리 파라미터 자동 마스킹
func HTTPLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			start := time.Now()

			// defer를 사용하여 패닉 발생 시에도 로그가 기록되도록 보장
			defer func() {
				latency := time.Since(start)

				path := req.URL.Path
				if path == "" {
					path = "/"
				}

				bytesIn := req.Header.Get(echo.HeaderContentLength)
				if bytesIn == "" {
					bytesIn = defaultBytesIn
				}

				applog.WithComponentAndFields(componentMiddleware, applog.Fields{
					"remote_ip":     c.RealIP(),
					"method":        req.Method,
					"uri":           maskSensitiveQuery(req.URL),
					"path":          path,
					"status":        res.Status,
					"bytes_in":      bytesIn,
					"bytes_out":     res.Size,
					"latency":       latency.String(),
					"latency_us":    latency.Microseconds(),
					"user_agent":    req.UserAgent(),
					"request_id":    res.Header().Get(echo.HeaderXRequestID),
					"protocol":      req.Proto,
					"forwarded_for": req.Header.Get(echo.HeaderXForwardedFor),
				}).Info("HTTP 요청이 처리되었습니다.")
			}()

			return next(c)
		}
	}
}

// maskSensitiveQuery URI의 민감한 쿼리 파라미터 값을 마스킹하여 반환합니다.
func maskSensitiveQuery(u *url.URL) string {
	query := u.Query()

	masked := false
	for _, key := range sensitiveQueryParams {
		if query.Has(key) {
			query.Set(key, applog.MaskSensitiveData(query.Get(key)))
			masked = true
		}
	}
	if !masked {
		return u.RequestURI()
	}

	clone := *u
	clone.RawQuery = query.Encode()
	return clone.RequestURI()
}
