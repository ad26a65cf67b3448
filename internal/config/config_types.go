package config

import (
	"fmt"
	"slices"
	"strings"

	apperrors "github.com/darkkaiser/slack-notify-server/internal/pkg/errors"
	"github.com/darkkaiser/slack-notify-server/pkg/cronx"
	"github.com/darkkaiser/slack-notify-server/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// AppConfig 애플리케이션의 모든 설정을 포함하는 최상위 구조체
type AppConfig struct {
	Debug        bool               `json:"debug"`
	Notification NotificationConfig `json:"notification"`
	NotifyAPI    NotifyAPIConfig    `json:"notify_api"`
	Scheduler    SchedulerConfig    `json:"scheduler"`
}

// validate 설정 파일 로드 직후, 각 설정 항목의 정합성과 필수 값의 유효성을 검증합니다.
func (c *AppConfig) validate(v *validator.Validate) error {
	channelIDs, err := c.Notification.validate(v)
	if err != nil {
		return err
	}

	if err := c.NotifyAPI.validate(v, channelIDs); err != nil {
		return err
	}

	if err := c.Scheduler.validate(v, channelIDs); err != nil {
		return err
	}

	return nil
}

// VerifyRecommendations 서비스 운영의 안정성과 보안을 위해 권장되는 설정 준수 여부를 진단합니다.
// 강제적인 에러를 발생시키지는 않으나, 잠재적 위험 요소(예: Well-known Port 사용)에 대한 경고 메시지를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string
	warnings = append(warnings, c.Notification.VerifyRecommendations()...)
	warnings = append(warnings, c.NotifyAPI.VerifyRecommendations()...)
	return warnings
}

// NotificationConfig Slack 알림 채널과 전송 동작을 정의하는 설정 구조체
type NotificationConfig struct {
	DefaultChannel string          `json:"default_channel"`
	Verbose        bool            `json:"verbose"`
	SendToSlack    bool            `json:"send_to_slack"`
	Channels       []ChannelConfig `json:"channels"`
}

func (c *NotificationConfig) validate(v *validator.Validate) ([]string, error) {
	// 채널 ID 중복은 오류가 아니다. 동일 ID가 여러 번 정의되면 나중에 정의된
	// 채널이 이전 정의를 대체한다(Last-Write-Wins).
	for _, channel := range c.Channels {
		if err := checkStruct(v, channel, fmt.Sprintf("Channel['%s']", channel.ID)); err != nil {
			return nil, err
		}
	}

	var channelIDs []string
	for _, channel := range c.Channels {
		channelIDs = append(channelIDs, channel.ID)
	}

	// 기본 채널 ID 검사
	if !slices.Contains(channelIDs, c.DefaultChannel) {
		return nil, apperrors.New(apperrors.NotFound, fmt.Sprintf("기본 채널 ID('%s')가 정의된 채널 목록에 존재하지 않습니다", c.DefaultChannel))
	}

	return channelIDs, nil
}

func (c *NotificationConfig) VerifyRecommendations() []string {
	var warnings []string

	// Slack 공식 웹훅 도메인이 아닌 URL 사용 경고
	for _, channel := range c.Channels {
		if !validation.IsSlackWebhookURL(channel.WebhookURL) {
			warnings = append(warnings, fmt.Sprintf("Channel['%s']의 웹훅 URL이 Slack 공식 웹훅 형식(https://hooks.slack.com/services/...)이 아닙니다. 운영 환경에서는 공식 웹훅 URL 사용을 권장합니다", channel.ID))
		}
	}

	return warnings
}

// ChannelConfig 하나의 Slack 수신 채널(Incoming Webhook)을 정의하는 설정 구조체
type ChannelConfig struct {
	ID          string `json:"id" validate:"required"`
	Description string `json:"description"`
	WebhookURL  string `json:"webhook_url" validate:"required,webhook_url"`
}

// NotifyAPIConfig 알림 발송을 위한 REST API 서버 설정 구조체
type NotifyAPIConfig struct {
	WS           WSConfig            `json:"ws"`
	CORS         CORSConfig          `json:"cors"`
	Applications []ApplicationConfig `json:"applications" validate:"unique=ID"`
}

func (c *NotifyAPIConfig) validate(v *validator.Validate, channelIDs []string) error {
	// WS 유효성 검사
	if err := c.WS.validate(v); err != nil {
		return err
	}

	// CORS 유효성 검사
	if err := c.CORS.validate(v); err != nil {
		return err
	}

	// Applications 중복 ID 검사
	if err := checkUniqueField(v, c.Applications, "ID", "Application"); err != nil {
		return err
	}

	for _, app := range c.Applications {
		if !slices.Contains(channelIDs, app.DefaultChannel) {
			return apperrors.New(apperrors.NotFound, fmt.Sprintf("Application['%s']에서 참조하는 기본 채널 ID('%s')가 정의되지 않았습니다", app.ID, app.DefaultChannel))
		}

		if strings.TrimSpace(app.AppKey) == "" {
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("Application['%s']의 API 키(APP_KEY)가 설정되지 않았습니다", app.ID))
		}
	}

	return nil
}

func (c *NotifyAPIConfig) VerifyRecommendations() []string {
	return c.WS.VerifyRecommendations()
}

// ApplicationConfig 알림 API를 사용할 수 있는 클라이언트 어플리케이션의 인증 정보를 정의하는 구조체
type ApplicationConfig struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	DefaultChannel string `json:"default_channel"`
	AppKey         string `json:"app_key"`
}

// WSConfig 웹 서비스의 포트 및 TLS(HTTPS) 보안 설정을 정의하는 구조체
type WSConfig struct {
	TLSServer   bool   `json:"tls_server"`
	TLSCertFile string `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile  string `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`
	ListenPort  int    `json:"listen_port" validate:"min=1,max=65535"`
}

func (c *WSConfig) validate(v *validator.Validate) error {
	return checkStruct(v, c, "웹 서버")
}

func (c *WSConfig) VerifyRecommendations() []string {
	var warnings []string

	// 시스템 예약 포트(1024 미만) 사용 경고
	if c.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.ListenPort))
	}

	return warnings
}

// CORSConfig 웹 브라우저의 교차 출처 리소스 공유(CORS) 정책을 설정하는 구조체
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

func (c *CORSConfig) validate(v *validator.Validate) error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	}

	for _, origin := range c.AllowOrigins {
		if origin == "*" {
			if len(c.AllowOrigins) > 1 {
				return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
			}

			// 와일드카드만 있는 경우는 유효함 (validator skip)
			return nil
		}
	}

	// 각 Origin 유효성 검사
	return checkStruct(v, c, "CORS")
}

// SchedulerConfig 주기적으로 실행되는 알림 작업(Job)들을 정의하는 설정 구조체
type SchedulerConfig struct {
	Jobs []JobConfig `json:"jobs" validate:"unique=ID"`
}

func (c *SchedulerConfig) validate(v *validator.Validate, channelIDs []string) error {
	// Jobs 중복 ID 검사
	if err := checkUniqueField(v, c.Jobs, "ID", "Job"); err != nil {
		return err
	}

	for _, job := range c.Jobs {
		// Job 구조체 유효성 검사
		if err := checkStruct(v, job, fmt.Sprintf("Job['%s']", job.ID)); err != nil {
			return err
		}

		// Cron 표현식 검증 (Job이 활성화된 경우)
		if job.Runnable {
			if strings.TrimSpace(job.TimeSpec) == "" {
				return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("실행 가능(runnable)한 Job['%s']의 스케줄(time_spec)이 설정되지 않았습니다", job.ID))
			}
			if err := cronx.Validate(job.TimeSpec); err != nil {
				return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("Job['%s']의 스케줄(time_spec) 설정이 유효하지 않습니다", job.ID))
			}
		}

		// 채널 존재 여부 확인 (비어있으면 기본 채널로 발송)
		if job.Channel != "" && !slices.Contains(channelIDs, job.Channel) {
			return apperrors.New(apperrors.NotFound, fmt.Sprintf("Job['%s']에서 참조하는 채널 ID('%s')가 정의되지 않았습니다", job.ID, job.Channel))
		}
	}

	return nil
}

// JobConfig 스케줄러가 주기적으로 발송하는 하나의 알림 작업을 정의하는 구조체
type JobConfig struct {
	ID          string                 `json:"id" validate:"required"`
	Description string                 `json:"description"`
	Runnable    bool                   `json:"runnable"`
	TimeSpec    string                 `json:"time_spec"`
	Channel     string                 `json:"channel"`
	Title       string                 `json:"title"`
	Message     string                 `json:"message" validate:"required"`
	Settings    map[string]interface{} `json:"settings"`
}
