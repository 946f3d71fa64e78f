// Package system 서비스 상태 확인 및 버전 정보 제공을 위한 시스템 핸들러를 제공합니다.
package system

import (
	"net/http"
	"sort"
	"time"

	"github.com/darkkaiser/wework-notify/internal/pkg/version"
	"github.com/labstack/echo/v4"
)

// EntryLister 등록된 발송 채널의 목록을 조회하는 기능을 추상화한 인터페이스입니다.
type EntryLister interface {
	// EntryIDs 등록된 모든 채널의 ID 목록을 반환합니다.
	EntryIDs() []string
}

// Handler 시스템 엔드포인트(/health, /version)를 처리하는 핸들러입니다.
type Handler struct {
	entryLister EntryLister
	buildInfo   version.Info
	startedAt   time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(entryLister EntryLister, buildInfo version.Info) *Handler {
	return &Handler{
		entryLister: entryLister,
		buildInfo:   buildInfo,
		startedAt:   time.Now(),
	}
}

// healthResponse /health 엔드포인트의 응답 형식입니다.
type healthResponse struct {
	Status  string   `json:"status"`
	Uptime  string   `json:"uptime"`
	Entries []string `json:"entries"`
}

// HealthCheckHandler 서비스의 상태와 등록된 채널 목록을 반환합니다.
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	entries := h.entryLister.EntryIDs()
	sort.Strings(entries)

	return c.JSON(http.StatusOK, healthResponse{
		Status:  "ok",
		Uptime:  time.Since(h.startedAt).Truncate(time.Second).String(),
		Entries: entries,
	})
}

// VersionHandler 애플리케이션의 빌드 정보를 반환합니다.
func (h *Handler) VersionHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, h.buildInfo)
}
