package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/wework-notify/internal/config"
	"github.com/darkkaiser/wework-notify/internal/pkg/version"
	"github.com/darkkaiser/wework-notify/internal/service/api"
	"github.com/darkkaiser/wework-notify/internal/service/wework"
	applog "github.com/darkkaiser/wework-notify/pkg/log"
	log "github.com/sirupsen/logrus"
)

const banner = `
 __        __   __        __         _      _   _         _    _   _
 \ \      / /___\ \      / /__  _ __| | __ | \ | |  ___  | |_ (_) / _| _   _
  \ \ /\ / // _ \\ \ /\ / // _ \| '__| |/ / |  \| | / _ \ | __|| || |_ | | | |
   \ V  V /|  __/ \ V  V /| (_) | |  |   <  | |\  || (_) || |_ | ||  _|| |_| |
    \_/\_/  \___|  \_/\_/  \___/|_|  |_|\_\ |_| \_| \___/  \__||_||_|   \__, |
                                                                        |___/  %s
--------------------------------------------------------------------------------
`

func main() {
	// 실행 인자 처리
	configFile := flag.String("config", config.DefaultFilename, "설정 파일 경로")
	flag.Parse()

	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.LoadWithFile(*configFile)
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}
	if appConfig.Log.Dir != "" {
		logOpts.Dir = appConfig.Log.Dir
	}
	if appConfig.Log.Level != "" {
		if level, err := log.ParseLevel(appConfig.Log.Level); err == nil {
			logOpts.Level = level
		}
	}
	if appConfig.Log.MaxAge > 0 {
		logOpts.MaxAge = appConfig.Log.MaxAge
	}
	if appConfig.Log.MaxSizeMB > 0 {
		logOpts.MaxSizeMB = appConfig.Log.MaxSizeMB
	}
	if appConfig.Log.MaxBackups > 0 {
		logOpts.MaxBackups = appConfig.Log.MaxBackups
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	buildInfo := version.Get()

	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields("main", log.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	// 3. 메시지 발송 서비스 생성
	weworkService, err := wework.NewServiceFromConfig(appConfig)
	if err != nil {
		applog.WithComponentAndFields("main", log.Fields{
			"error": err,
		}).Fatal("메시지 발송 서비스 초기화에 실패하여 프로그램을 종료합니다")
	}

	applog.WithComponentAndFields("main", log.Fields{
		"entries": weworkService.EntryIDs(),
	}).Info("메시지 발송 채널 구성 완료")

	// 4. API 서비스 시작
	apiService := api.NewService(appConfig, weworkService, buildInfo)

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	serviceStopWG.Add(1)
	if err := apiService.Start(serviceStopCtx, serviceStopWG); err != nil {
		applog.WithComponentAndFields("main", log.Fields{
			"error": err,
		}).Error("서비스 초기화 실패")

		cancel()
		serviceStopWG.Wait()

		log.Fatal("서비스 초기화 실패로 프로그램을 종료합니다")
	}

	// 종료 신호 대기
	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent("main").Info("서버 가동 완료")

	<-termC

	applog.WithComponent("main").Info("Shutdown signal received")
	cancel()
	serviceStopWG.Wait()
}
