// Package api 메시지 발송 API 서버의 생명주기와 라우팅을 관리합니다.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/darkkaiser/wework-notify/internal/config"
	"github.com/darkkaiser/wework-notify/internal/pkg/version"
	"github.com/darkkaiser/wework-notify/internal/service/api/handler/system"
	v1 "github.com/darkkaiser/wework-notify/internal/service/api/v1"
	v1handler "github.com/darkkaiser/wework-notify/internal/service/api/v1/handler"
	"github.com/darkkaiser/wework-notify/internal/service/wework"
	applog "github.com/darkkaiser/wework-notify/pkg/log"
	"github.com/labstack/echo/v4"
)

// componentService API 서비스의 로깅용 컴포넌트 이름
const componentService = "api.service"

// shutdownTimeout Graceful Shutdown 시 최대 대기 시간
const shutdownTimeout = 5 * time.Second

// Service 메시지 발송 API 서버의 생명주기를 관리하는 서비스입니다.
//
// 다음과 같은 역할을 수행합니다:
//   - Echo 기반 HTTP/HTTPS 서버 시작 및 종료
//   - 미들웨어 체인 및 라우팅 설정
//   - Graceful Shutdown 지원 (5초 타임아웃)
//
// 서비스는 고루틴으로 실행되며, context를 통해 종료 신호를 받습니다.
type Service struct {
	appConfig *config.AppConfig

	weworkService *wework.Service

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
//
// Panics:
//   - appConfig 또는 weworkService가 nil인 경우
func NewService(appConfig *config.AppConfig, weworkService *wework.Service, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic("AppConfig는 필수입니다")
	}
	if weworkService == nil {
		panic("wework.Service는 필수입니다")
	}

	return &Service{
		appConfig: appConfig,

		weworkService: weworkService,

		buildInfo: buildInfo,
	}
}

// Start API 서비스를 시작합니다.
//
// 이 함수는 즉시 반환되며, 실제 서버는 고루틴에서 실행됩니다.
// serviceStopCtx가 취소되면 Graceful Shutdown을 수행한 뒤 serviceStopWG에 완료를 알립니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(componentService).Info("API 서비스를 시작합니다.")

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(componentService).Warn("API 서비스가 이미 실행 중입니다.")
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(componentService).Info("API 서비스가 시작되었습니다.")

	return nil
}

// runServiceLoop 서비스의 메인 실행 루프입니다.
// 서버 설정, HTTP 서버 시작, Shutdown 대기를 순차적으로 수행합니다.
func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer Echo 서버 인스턴스를 생성하고 모든 설정을 완료합니다.
func (s *Service) setupServer() *echo.Echo {
	// 1. Handler 생성
	systemHandler := system.NewHandler(s.weworkService, s.buildInfo)
	v1Handler := v1handler.NewHandler(s.weworkService)

	// 2. Echo 서버 생성 (미들웨어 체인 포함)
	e := NewHTTPServer(HTTPServerConfig{
		Debug:              s.appConfig.Debug,
		RateLimitPerSecond: s.appConfig.NotifyAPI.RateLimitPerSecond,
		RateLimitBurst:     s.appConfig.NotifyAPI.RateLimitBurst,
	})

	// 3. 라우트 등록
	RegisterRoutes(e, systemHandler)
	v1.RegisterRoutes(e, v1Handler, s.appConfig.NotifyAPI.APIKey)

	return e
}

// startHTTPServer HTTP/HTTPS 서버를 시작합니다.
// 이 함수는 블로킹되며, 서버가 종료되면 done 채널을 닫아 대기 중인 고루틴에 신호를 보냅니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	port := s.appConfig.NotifyAPI.ListenPort
	applog.WithComponentAndFields(componentService, applog.Fields{
		"port": port,
	}).Debug("HTTP 서버를 시작합니다.")

	var err error
	if s.appConfig.NotifyAPI.WS.TLSServer {
		err = e.StartTLS(
			fmt.Sprintf(":%d", port),
			s.appConfig.NotifyAPI.WS.TLSCertFile,
			s.appConfig.NotifyAPI.WS.TLSKeyFile,
		)
	} else {
		err = e.Start(fmt.Sprintf(":%d", port))
	}

	s.handleServerError(err)
}

// handleServerError HTTP 서버 종료 시 반환된 에러를 처리합니다.
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	// http.ErrServerClosed: Graceful Shutdown 완료
	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(componentService).Info("HTTP 서버가 정상적으로 종료되었습니다.")
		return
	}

	applog.WithComponentAndFields(componentService, applog.Fields{
		"port":  s.appConfig.NotifyAPI.ListenPort,
		"error": err,
	}).Error("HTTP 서버가 예기치 않은 에러로 종료되었습니다.")
}

// waitForShutdown 종료 신호를 대기하고 Graceful Shutdown을 수행합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(componentService).Info("API 서비스를 종료합니다.")
	case <-httpServerDone:
		// HTTP 서버가 예기치 않게 종료됨 (포트 바인딩 실패 등)
		// 이미 종료되었으므로 Shutdown 호출 없이 상태만 정리
		applog.WithComponent(componentService).Error("HTTP 서버가 예기치 않게 종료되었습니다.")

		s.cleanup()

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(componentService, applog.Fields{
			"error": err,
		}).Error("HTTP 서버 Shutdown 중 에러가 발생했습니다.")
	}

	<-httpServerDone

	s.cleanup()
}

// cleanup 서비스 종료 후 상태를 정리합니다.
func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(componentService).Info("API 서비스가 종료되었습니다.")
}
