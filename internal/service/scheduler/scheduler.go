// Package scheduler 설정 파일에 정의된 알림 작업(Job)들을 Cron 스케줄에 맞춰 주기적으로 발송하는 서비스를 제공합니다.
package scheduler

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/darkkaiser/slack-notify-server/internal/config"
	"github.com/darkkaiser/slack-notify-server/internal/service/contract"
	"github.com/darkkaiser/slack-notify-server/pkg/cronx"
	applog "github.com/darkkaiser/slack-notify-server/pkg/log"
	"github.com/darkkaiser/slack-notify-server/pkg/maputil"
	"github.com/robfig/cron/v3"
)

// component Scheduler 서비스의 로깅용 컴포넌트 이름
const component = "scheduler.service"

// defaultNotifyTimeout 알림 발송 1회에 허용되는 기본 최대 시간 (블로킹 방지)
const defaultNotifyTimeout = 10 * time.Second

// timePlaceholder 메시지 본문에서 발송 시각으로 치환되는 자리표시자입니다.
const timePlaceholder = "{{time}}"

// jobSettings Job의 세부 설정(settings 맵)에서 디코딩되는 실행 옵션입니다.
type jobSettings struct {
	// MessageTemplate 설정 시 Job의 기본 메시지(message) 대신 사용할 메시지 템플릿입니다.
	MessageTemplate string `json:"message_template"`

	// NotifyTimeout 알림 발송 1회에 허용되는 최대 시간입니다. (예: "30s")
	NotifyTimeout time.Duration `json:"notify_timeout"`
}

// Scheduler 애플리케이션 설정 파일(AppConfig)에 정의된 알림 작업들을 Cron 스케줄에 맞춰 자동으로 발송하는 서비스입니다.
type Scheduler struct {
	jobConfigs []config.JobConfig

	cron *cron.Cron

	// notificationSender 알림 전송을 담당하는 인터페이스입니다.
	notificationSender contract.NotificationSender

	running   bool
	runningMu sync.Mutex
}

// NewService 새로운 Scheduler 서비스 인스턴스를 생성합니다.
func NewService(jobConfigs []config.JobConfig, notificationSender contract.NotificationSender) *Scheduler {
	if notificationSender == nil {
		panic("NotificationSender는 필수입니다")
	}

	return &Scheduler{
		jobConfigs: jobConfigs,

		notificationSender: notificationSender,
	}
}

// Start 스케줄러를 시작하고 설정 파일에 정의된 알림 작업들을 Cron 엔진에 등록합니다.
//
// 매개변수:
//   - serviceStopCtx: 서비스 종료 신호를 받기 위한 Context
//   - serviceStopWG: 서비스 종료 완료를 알리기 위한 WaitGroup
//
// 반환값:
//   - error: notificationSender가 nil인 경우
func (s *Scheduler) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("Scheduler 서비스 시작중...")

	if s.notificationSender == nil {
		serviceStopWG.Done()
		return ErrNotificationSenderNotInitialized
	}

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Scheduler 서비스가 이미 시작됨!!!")
		return nil
	}

	// 1. Cron 엔진 초기화
	// - StandardParser: 초 단위 스케줄링 지원 (6개 필드: 초 분 시 일 월 요일)
	// - Recover: Panic 발생 시 복구하여 다른 작업에 영향을 주지 않음
	// - SkipIfStillRunning: 이전 실행이 끝나지 않았으면 다음 실행을 건너뜀
	s.cron = cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithLogger(cron.VerbosePrintfLogger(applog.StandardLogger())),
		cron.WithChain(
			cron.Recover(cron.VerbosePrintfLogger(applog.StandardLogger())),
			cron.SkipIfStillRunning(cron.VerbosePrintfLogger(applog.StandardLogger())),
		),
	)

	// 2. 알림 작업 등록
	s.registerJobs(serviceStopCtx)

	// 3. 스케줄러 시작
	s.cron.Start()
	s.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"registered_schedules": len(s.cron.Entries()),
		"total_defined_jobs":   len(s.jobConfigs),
	}).Info("Scheduler 서비스 시작됨")

	// 4. 종료 신호 대기 (고루틴)
	// 서비스 생명주기 컨텍스트(serviceStopCtx)의 취소 이벤트를 비동기로 모니터링합니다.
	// 종료 시그널 수신 시 stop() 메서드를 호출하여 리소스를 안전하게 해제하고 그 결과를 보장합니다.
	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		s.stop()
	}()

	return nil
}

// stop 실행 중인 스케줄러를 안전하게 중지합니다.
func (s *Scheduler) stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return
	}

	applog.WithComponent(component).Info("Scheduler 서비스 중지중...")

	// Cron 엔진 중지 및 실행 중인 작업 완료 대기
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}

	s.cron = nil
	s.running = false

	applog.WithComponent(component).Info("Scheduler 서비스 중지됨")
}

// registerJobs 설정 파일에 정의된 모든 알림 작업을 하나씩 살펴보며, "실행 가능(Runnable)" 플래그가 켜진 작업들만
// Cron 스케줄러에 등록합니다. 등록되지 않은 작업은 건너뛰므로, 필요에 따라 작업을 활성화/비활성화할 수 있습니다.
func (s *Scheduler) registerJobs(serviceStopCtx context.Context) {
	for _, j := range s.jobConfigs {
		if !j.Runnable {
			continue
		}

		// 클로저 캡처 문제 방지를 위해 로컬 변수에 재할당 (중요!)
		// Go의 클로저는 변수의 참조를 캡처하므로, 루프 변수를 직접 사용하면 모든 클로저가 마지막 값을 참조하게 됩니다.
		job := j
		channelID := contract.ChannelID(job.Channel)

		// Job의 세부 설정(settings) 디코딩
		settings, err := maputil.Decode[jobSettings](job.Settings)
		if err != nil {
			message := fmt.Sprintf("스케줄 등록 실패: Job['%s']의 세부 설정(settings)이 올바르지 않습니다", job.ID)
			s.logAndNotifyError(serviceStopCtx, job.ID, channelID, message, err)
			continue
		}

		notifyTimeout := settings.NotifyTimeout
		if notifyTimeout <= 0 {
			notifyTimeout = defaultNotifyTimeout
		}

		message := job.Message
		if strings.TrimSpace(settings.MessageTemplate) != "" {
			message = settings.MessageTemplate
		}

		// Cron 스케줄 등록
		_, err = s.cron.AddFunc(job.TimeSpec, func() {
			// ========================================
			// 알림 발송 (Notification Delivery)
			// ========================================
			//
			// [컨텍스트 설계 배경]
			//
			// 1. context.Background() 사용 이유:
			//    - 알림 발송의 생명주기를 스케줄러 서비스의 종료 시그널(serviceStopCtx)과 분리합니다.
			//    - Graceful Shutdown 시 cron.Stop()이 실행 중인 모든 작업의 완료를 대기하므로,
			//      발송 도중 컨텍스트 취소로 인한 강제 중단을 방지합니다.
			//
			// 2. WithTimeout 적용 이유:
			//    - Slack 웹훅 응답이 지연될 때 무한 대기(Hang)를 방지합니다.
			//    - notifyTimeout 내에 발송이 완료되지 않으면 에러를 반환하여,
			//      스케줄러가 블로킹되지 않고 다음 스케줄을 정상적으로 처리할 수 있도록 합니다.
			ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
			defer cancel()

			if err := s.notificationSender.Notify(ctx, contract.Notification{
				ChannelID: channelID,
				Title:     job.Title,
				Message:   renderMessage(message, time.Now()),
			}); err != nil {
				failMessage := fmt.Sprintf("정기 알림 발송 실패: Job['%s'] 실행 중 오류가 발생했습니다", job.ID)
				s.logAndNotifyError(serviceStopCtx, job.ID, channelID, failMessage, err)
			}
		})

		if err != nil {
			// 스케줄 파싱 실패 시 해당 작업만 건너뛰고 계속 진행
			message := fmt.Sprintf("스케줄 등록 실패: Job['%s']의 Cron 표현식이 잘못되었습니다 (TimeSpec: %s)", job.ID, job.TimeSpec)
			s.logAndNotifyError(serviceStopCtx, job.ID, channelID, message, err)
			continue
		}

		applog.WithComponentAndFields(component, applog.Fields{
			"job_id":     job.ID,
			"channel_id": channelID,
			"time_spec":  job.TimeSpec,
		}).Debug("알림 작업이 Cron 스케줄러에 등록됨")
	}
}

// renderMessage 메시지 본문의 자리표시자를 실제 값으로 치환합니다.
//
// 지원하는 자리표시자:
//   - {{time}}: 발송 시각 (예: 2026-08-25 09:30:00)
func renderMessage(message string, now time.Time) string {
	return strings.ReplaceAll(message, timePlaceholder, now.Format("2006-01-02 15:04:05"))
}

// logAndNotifyError 스케줄러 실행 중 발생한 오류를 로깅하고 관리자에게 알림을 전송합니다.
func (s *Scheduler) logAndNotifyError(serviceStopCtx context.Context, jobID string, channelID contract.ChannelID, message string, err error) {
	fields := applog.Fields{
		"job_id":     jobID,
		"channel_id": channelID,
	}
	if err != nil {
		fields["error"] = err
	}

	applog.WithComponentAndFields(component, fields).Error(message)

	// 운영자가 설정 오류나 발송 실패를 인지할 수 있도록 기본 채널로 오류 알림을 발송합니다.
	// (안내 발송의 실패는 무시)
	_ = s.notificationSender.NotifyDefaultWithError(serviceStopCtx, message, err)
}
