package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/umbra-platform/umbra-security-service/internal/alert"
	"github.com/umbra-platform/umbra-security-service/internal/config"
	"github.com/umbra-platform/umbra-security-service/internal/pkg/version"
	"github.com/umbra-platform/umbra-security-service/internal/service"
	"github.com/umbra-platform/umbra-security-service/internal/service/api"
	applog "github.com/umbra-platform/umbra-security-service/pkg/log"
)

// @title Umbra Security Service API
// @version 1.0.0
// @description 보안 플랫폼의 상태 확인용 REST API입니다.
// @description
// @description 모든 응답은 success, data, message, error, meta 필드를 갖는
// @description 표준 Envelope JSON 구조를 따릅니다. 값이 없는 필드는 null로 직렬화됩니다.

// @license.name MIT

// @BasePath /

const (
	banner = `
  _   _           _
 | | | |_ __ ___ | |__  _ __ __ _
 | | | | '_ ' _ \| '_ \| '__/ _' |
 | |_| | | | | | | |_) | | | (_| |
  \___/|_| |_| |_|_.__/|_|  \__,_|   security-service %s
--------------------------------------------------------------------------------
`
)

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.Load()
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

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	// 3. 로그 레벨 최종 확정
	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()

	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields("main", log.Fields{
		"version": buildInfo.String(),
		"port":    appConfig.Server.ListenPort,
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	// 권장 설정 위반 사항은 경고로만 알리고 구동은 계속한다.
	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	// 운영자 알림 채널 초기화
	alertNotifier, err := alert.NewNotifier(&appConfig.Alert)
	if err != nil {
		applog.WithComponentAndFields("main", log.Fields{
			"error": err,
		}).Error("운영자 알림 채널 초기화 실패")
		os.Exit(1)
	}

	// 서비스를 생성하고 초기화한다.
	apiService := api.NewService(appConfig, alertNotifier, buildInfo)

	// Set up cancellation context and waitgroup
	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	// 서비스를 시작한다.
	services := []service.Service{apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", log.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel() // 다른 서비스들도 종료
			serviceStopWG.Wait()

			log.Fatal("서비스 초기화 실패로 프로그램을 종료합니다")
		}
	}

	// Handle sigterm and await termC signal
	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent("main").Info("서버 가동 완료")

	<-termC // Blocks here until interrupted

	// Handle shutdown
	applog.WithComponent("main").Info("Shutdown signal received")
	cancel()             // Signal cancellation to context.Context
	serviceStopWG.Wait() // Block here until are workers are done
}
