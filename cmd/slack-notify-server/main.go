package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/slack-notify-server/internal/config"
	"github.com/darkkaiser/slack-notify-server/internal/pkg/version"
	"github.com/darkkaiser/slack-notify-server/internal/service"
	"github.com/darkkaiser/slack-notify-server/internal/service/api"
	"github.com/darkkaiser/slack-notify-server/internal/service/notification"
	"github.com/darkkaiser/slack-notify-server/internal/service/notification/history"
	"github.com/darkkaiser/slack-notify-server/internal/service/scheduler"
	applog "github.com/darkkaiser/slack-notify-server/pkg/log"
	log "github.com/sirupsen/logrus"
)

// @title Slack Notify Server API
// @version 1.0.0
// @description Slack Incoming Webhook을 통해 알림 메시지를 발송하는 서버의 REST API입니다.
// @description
// @description 이 API를 사용하면 외부 애플리케이션에서 사전에 등록된 Slack 채널로 알림 메시지를 전송할 수 있습니다.
// @description
// @description ## 주요 기능
// @description - 텍스트 알림 메시지 발송 (제목/본문/오류 표시 지원)
// @description - Block Kit 블록 메시지 발송 (사전 구성된 블록 JSON 전달)
// @description - 발송 가능한 알림 채널 목록 조회
// @description - 채널별 알림 발송 이력 조회
// @description
// @description ## 인증 방법
// @description API 사용을 위해서는 사전에 등록된 애플리케이션 ID와 App Key가 필요합니다.
// @description 설정 파일(slack-notify-server.json)의 notify_api.applications에 애플리케이션을 등록한 후 사용하세요.
// @description
// @description ## 인증 플로우
// @description 1. **사전 준비**: slack-notify-server.json의 notify_api.applications에 애플리케이션 등록
// @description    - id, app_key, default_channel 설정
// @description 2. **API 호출**: X-App-Key 헤더로 App Key 전달 (권장)
// @description    - POST /api/v1/notifications + X-App-Key: YOUR_KEY
// @description    - 레거시 클라이언트는 Query Parameter(app_key)도 사용 가능하나 권장하지 않습니다.
// @description 3. **인증 검증**: 서버에서 application_id와 app_key 확인
// @description    - 미등록 앱: 401 Unauthorized
// @description    - 잘못된 app_key: 401 Unauthorized
// @description 4. **알림 발송**: 인증 성공 시 Slack 채널로 메시지 전송
// @description    - 성공: 200 OK

// @termsOfService http://swagger.io/terms/

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser
// @contact.email darkkaiser@gmail.com

// @license.name MIT
// @license.url https://github.com/DarkKaiser/slack-notify-server/blob/master/LICENSE

// @host api.darkkaiser.com:2443
// @BasePath /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-App-Key
// @description Application Key for authentication

// @externalDocs.description API 인증 가이드
// @externalDocs.url https://github.com/DarkKaiser/slack-notify-server#api-인증-플로우

const (
	banner = `
  ____   _                _
 / ___| | |  __ _   ___  | | __
 \___ \ | | / _' | / __| | |/ /
  ___) || || (_| || (__  |   <
 |____/ |_| \__,_| \___| |_|\_\
  _   _         _    _   __          ____
 | \ | |  ___  | |_ (_) / _| _   _  / ___|   ___  _ __ __   __  ___  _ __
 |  \| | / _ \ | __|| || |_ | | | | \___ \  / _ \| '__|\ \ / / / _ \| '__|
 | |\  || (_) || |_ | ||  _|| |_| |  ___) ||  __/| |    \ V / |  __/| |
 |_| \_| \___/  \__||_||_|   \__, | |____/  \___||_|     \_/   \___||_|
                             |___/                           %s
                                                        developed by DarkKaiser
--------------------------------------------------------------------------------
`
)

func main() {
	// 0. 실행 인자 파싱
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

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	// 3. 로그 레벨 최종 확정
	applog.SetDebugMode(appConfig.Debug)

	// 아스키아트 출력(https://ko.rakko.tools/tools/68/, 폰트:standard)
	buildInfo := version.Get()
	fmt.Printf(banner, buildInfo.Version)

	// 빌드 정보 출력
	applog.WithComponentAndFields("main", log.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	// 권장 설정 미준수 항목 진단 (기동은 차단하지 않는다)
	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	// 발송 이력 저장소를 생성한다.
	historyStore, err := history.NewFileDeliveryHistoryStore("", 0)
	if err != nil {
		log.Fatalf("발송 이력 저장소 초기화 실패로 프로그램을 종료합니다: %v", err)
	}

	// 서비스를 생성하고 초기화한다.
	notificationService := notification.NewService(appConfig, historyStore)
	schedulerService := scheduler.NewService(appConfig.Scheduler.Jobs, notificationService)
	apiService := api.NewService(appConfig, notificationService, buildInfo)

	// Set up cancellation context and waitgroup
	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	// 서비스를 시작한다.
	// Notification 서비스가 먼저 가동되어야 Scheduler/API 서비스가 알림을 발송할 수 있다.
	services := []service.Service{notificationService, schedulerService, apiService}
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

	applog.WithComponent("main").Info("서버 종료됨")
}
