package api

import (
	"time"

	"github.com/darkkaiser/wework-notify/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/wework-notify/internal/service/api/middleware"
	applog "github.com/darkkaiser/wework-notify/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	// defaultReadTimeout 요청 본문 읽기 제한시간
	defaultReadTimeout = 15 * time.Second

	// defaultReadHeaderTimeout 요청 헤더 읽기 제한시간
	defaultReadHeaderTimeout = 5 * time.Second

	// defaultWriteTimeout 응답 쓰기 제한시간
	defaultWriteTimeout = 30 * time.Second

	// defaultIdleTimeout Keep-Alive 연결 유휴 제한시간
	defaultIdleTimeout = 60 * time.Second

	// defaultRequestTimeout 각 HTTP 요청의 최대 처리 시간
	defaultRequestTimeout = 60 * time.Second

	// defaultMaxBodySize 요청 본문 최대 크기
	// 그룹 로봇의 이미지 메시지(Base64 인코딩, 원본 최대 2MB)를 수용할 수 있는 크기입니다.
	defaultMaxBodySize = "4M"
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// RateLimitPerSecond IP당 초당 허용 요청 수
	RateLimitPerSecond float64

	// RateLimitBurst IP당 순간 최대 허용 요청 수
	RateLimitBurst int

	// RequestTimeout 각 HTTP 요청의 최대 처리 시간 (미설정 시 60초)
	RequestTimeout time.Duration
}

// NewHTTPServer 설정된 미들웨어를 포함한 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 다음 순서로 적용됩니다 (순서가 중요합니다):
//
//  1. PanicRecovery - 패닉 복구 및 로깅
//  2. RequestID - 요청별 고유 ID 부여 (X-Request-ID 헤더)
//  3. Server 헤더 제거 - 기술 스택 노출 방지
//  4. HTTPLogger - 구조화된 요청/응답 로깅 (민감 정보 마스킹 포함)
//  5. RateLimiting - IP 기반 요청 제한 (초과 시 429 응답)
//  6. BodyLimit - 요청 본문 크기 제한 (초과 시 413 응답)
//  7. Timeout - 요청 처리 시간 제한 (초과 시 503 응답)
//  8. Secure - 보안 헤더 설정 (X-XSS-Protection 등)
//
// 라우트 설정은 포함되지 않으며, 반환된 Echo 인스턴스에 별도로 설정해야 합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true

	// 보안 및 리소스 관리를 위한 HTTP 서버 타임아웃 설정
	e.Server.ReadTimeout = defaultReadTimeout
	e.Server.ReadHeaderTimeout = defaultReadHeaderTimeout
	e.Server.WriteTimeout = defaultWriteTimeout
	e.Server.IdleTimeout = defaultIdleTimeout

	// Echo 프레임워크의 내부 로그를 애플리케이션 로거로 통합합니다.
	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}

	// 전역 HTTP 에러 핸들러 설정
	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = defaultRequestTimeout
	}

	// 미들웨어 적용 (권장 순서)

	// 1. Panic 복구
	e.Use(appmiddleware.PanicRecovery())
	// 2. Request ID
	e.Use(middleware.RequestID())
	// 3. Server 헤더 제거
	// 공격자에게 서버 스택 정보(Go/Echo 버전 등)를 노출하지 않도록 합니다.
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	})
	// 4. HTTP 로깅 (RateLimit/Timeout 이전에 위치하여 429/503 에러도 기록)
	e.Use(appmiddleware.HTTPLogger())
	// 5. Rate Limiting
	e.Use(appmiddleware.RateLimiting(cfg.RateLimitPerSecond, cfg.RateLimitBurst))
	// 6. Body Limit
	e.Use(middleware.BodyLimit(defaultMaxBodySize))
	// 7. Timeout
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: timeout,
	}))
	// 8. 보안 헤더
	e.Use(middleware.Secure())

	return e
}
