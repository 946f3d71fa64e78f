package api

import (
	"github.com/darkkaiser/wework-notify/internal/service/api/handler/system"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes API 서비스의 전역 라우트를 등록합니다.
//
// 시스템 엔드포인트는 서비스 상태 확인(/health)과 버전 정보(/version)를 제공하며,
// 인증 없이 접근할 수 있습니다.
func RegisterRoutes(e *echo.Echo, h *system.Handler) {
	e.GET("/health", h.HealthCheckHandler)
	e.GET("/version", h.VersionHandler)
}
