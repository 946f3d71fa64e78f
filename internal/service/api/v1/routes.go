// Package v1 메시지 발송 API의 v1 버전 라우트를 정의하고 설정합니다.
//
// 이 패키지는 /api/v1 경로 하위의 엔드포인트를 관리합니다.
//
// 주요 엔드포인트:
//   - POST /api/v1/messages - 메시지 발송
//
// 모든 엔드포인트는 API 키 인증(X-Api-Key 헤더)을 요구합니다.
package v1

import (
	"github.com/darkkaiser/wework-notify/internal/service/api/middleware"
	"github.com/darkkaiser/wework-notify/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes Echo 인스턴스에 v1 API 라우트를 설정합니다.
func RegisterRoutes(e *echo.Echo, h *handler.Handler, apiKey string) {
	v1Group := e.Group("/api/v1")

	authMiddleware := middleware.RequireAPIKey(apiKey)

	v1Group.POST("/messages", h.SendMessageHandler, authMiddleware)
}
