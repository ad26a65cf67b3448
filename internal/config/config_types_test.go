package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Unit Tests: Validation Logic (AppConfig.validate)
// =============================================================================

func TestAppConfig_Validate_TableDriven(t *testing.T) {
	t.Parallel()

	// 1. Base Valid Configuration Factory
	baseConfig := func() *AppConfig {
		return &AppConfig{
			Debug: false,
			Notification: NotificationConfig{
				DefaultChannel: "alerts",
				SendToSlack:    true,
				Channels: []ChannelConfig{
					{ID: "alerts", Description: "운영 알림 채널", WebhookURL: "https://hooks.slack.com/services/T000/B000/XXXX"},
					{ID: "deploys", WebhookURL: "https://hooks.slack.com/services/T000/B111/YYYY"},
				},
			},
			NotifyAPI: NotifyAPIConfig{
				WS:   WSConfig{ListenPort: 8080},
				CORS: CORSConfig{AllowOrigins: []string{"*"}},
				Applications: []ApplicationConfig{
					{ID: "app-1", Title: "Test App", AppKey: "secret-key", DefaultChannel: "alerts"},
				},
			},
			Scheduler: SchedulerConfig{
				Jobs: []JobConfig{
					{ID: "job-1", Runnable: true, TimeSpec: "@daily", Channel: "deploys", Title: "데일리 리포트", Message: "일일 점검 결과를 확인하세요"},
				},
			},
		}
	}

	tests := []struct {
		name        string
		modifier    func(*AppConfig) // Config을 망가뜨리는 함수
		expectError bool
		errorMsg    string
	}{
		// Happy Path
		{
			name:        "Valid Configuration",
			modifier:    func(c *AppConfig) {},
			expectError: false,
		},
		// Notification
		{
			name: "Channel: Duplicate ID Allowed (Last-Write-Wins)",
			modifier: func(c *AppConfig) {
				c.Notification.Channels = append(c.Notification.Channels, ChannelConfig{
					ID: "alerts", WebhookURL: "https://hooks.slack.com/services/T000/B222/ZZZZ",
				})
			},
			expectError: false,
		},
		{
			name:        "Channel: Default Channel Not Found",
			modifier:    func(c *AppConfig) { c.Notification.DefaultChannel = "invalid-id" },
			expectError: true,
			errorMsg:    "기본 채널 ID('invalid-id')가 정의된 채널 목록에 존재하지 않습니다",
		},
		{
			name: "Channel: Missing ID",
			modifier: func(c *AppConfig) {
				c.Notification.Channels[0].ID = ""
			},
			expectError: true,
			errorMsg:    "(조건: required)",
		},
		{
			name: "Channel: Missing Webhook URL",
			modifier: func(c *AppConfig) {
				c.Notification.Channels[0].WebhookURL = ""
			},
			expectError: true,
			errorMsg:    "Channel['alerts']의 웹훅 URL(webhook_url)은 필수입니다",
		},
		{
			name: "Channel: Invalid Webhook URL Scheme",
			modifier: func(c *AppConfig) {
				c.Notification.Channels[0].WebhookURL = "ftp://hooks.slack.com/services/T000/B000/XXXX"
			},
			expectError: true,
			errorMsg:    "웹훅 URL 형식이 올바르지 않습니다",
		},
		// Notify API
		{
			name: "API: Duplicate Application ID",
			modifier: func(c *AppConfig) {
				c.NotifyAPI.Applications = append(c.NotifyAPI.Applications, ApplicationConfig{ID: "app-1"})
			},
			expectError: true,
			errorMsg:    "중복된 Application ID가 존재합니다",
		},
		{
			name: "API: App Missing AppKey",
			modifier: func(c *AppConfig) {
				c.NotifyAPI.Applications[0].AppKey = ""
			},
			expectError: true,
			errorMsg:    "API 키(APP_KEY)가 설정되지 않았습니다",
		},
		{
			name: "API: App Unknown Channel Ref",
			modifier: func(c *AppConfig) {
				c.NotifyAPI.Applications[0].DefaultChannel = "unknown"
			},
			expectError: true,
			errorMsg:    "참조하는 기본 채널 ID('unknown')가 정의되지 않았습니다",
		},
		// TLS Validation
		{
			name: "WS: TLS Enabled but Missing Cert",
			modifier: func(c *AppConfig) {
				c.NotifyAPI.WS.TLSServer = true
				c.NotifyAPI.WS.TLSCertFile = ""
			},
			expectError: true,
			errorMsg:    "TLS 서버 활성화 시 TLS 인증서 파일 경로(tls_cert_file)는 필수입니다",
		},
		{
			name: "WS: TLS Cert File Not Found",
			modifier: func(c *AppConfig) {
				c.NotifyAPI.WS.TLSServer = true
				c.NotifyAPI.WS.TLSCertFile = "non-existent.pem"
				c.NotifyAPI.WS.TLSKeyFile = "non-existent.key"
			},
			expectError: true,
			errorMsg:    "지정된 TLS 인증서 파일(tls_cert_file)을 찾을 수 없습니다",
		},
		{
			name: "WS: Invalid Port (Zero)",
			modifier: func(c *AppConfig) {
				c.NotifyAPI.WS.ListenPort = 0
			},
			expectError: true,
			errorMsg:    "웹 서비스 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다",
		},
		// CORS
		{
			name: "CORS: Empty Origins",
			modifier: func(c *AppConfig) {
				c.NotifyAPI.CORS.AllowOrigins = []string{}
			},
			expectError: true,
			errorMsg:    "CORS 허용 도메인(allow_origins) 목록이 비어있습니다",
		},
		{
			name: "CORS: Wildcard Mixed with Others",
			modifier: func(c *AppConfig) {
				c.NotifyAPI.CORS.AllowOrigins = []string{"*", "https://google.com"}
			},
			expectError: true,
			errorMsg:    "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다",
		},
		{
			name: "CORS: Invalid Origin Format",
			modifier: func(c *AppConfig) {
				c.NotifyAPI.CORS.AllowOrigins = []string{"ht tp://bad-url"}
			},
			expectError: true,
			errorMsg:    "CORS Origin 형식이 올바르지 않습니다",
		},
		// Scheduler
		{
			name: "Job: Duplicate ID",
			modifier: func(c *AppConfig) {
				c.Scheduler.Jobs = append(c.Scheduler.Jobs, JobConfig{ID: "job-1", Message: "중복 작업"})
			},
			expectError: true,
			errorMsg:    "중복된 Job ID가 존재합니다",
		},
		{
			name: "Job: Missing Message",
			modifier: func(c *AppConfig) {
				c.Scheduler.Jobs[0].Message = ""
			},
			expectError: true,
			errorMsg:    "Job['job-1']의 설정이 올바르지 않습니다: message (조건: required)",
		},
		{
			name: "Job: Runnable Without TimeSpec",
			modifier: func(c *AppConfig) {
				c.Scheduler.Jobs[0].TimeSpec = "  "
			},
			expectError: true,
			errorMsg:    "스케줄(time_spec)이 설정되지 않았습니다",
		},
		{
			name: "Job: Invalid Cron Spec",
			modifier: func(c *AppConfig) {
				c.Scheduler.Jobs[0].TimeSpec = "invalid-cron"
			},
			expectError: true,
			errorMsg:    "스케줄(time_spec) 설정이 유효하지 않습니다",
		},
		{
			name: "Job: Stale TimeSpec Tolerated When Not Runnable",
			modifier: func(c *AppConfig) {
				c.Scheduler.Jobs[0].Runnable = false
				c.Scheduler.Jobs[0].TimeSpec = "invalid-cron"
			},
			expectError: false,
		},
		{
			name: "Job: Unknown Channel Ref",
			modifier: func(c *AppConfig) {
				c.Scheduler.Jobs[0].Channel = "unknown"
			},
			expectError: true,
			errorMsg:    "Job['job-1']에서 참조하는 채널 ID('unknown')가 정의되지 않았습니다",
		},
		{
			name: "Job: Empty Channel Falls Back To Default",
			modifier: func(c *AppConfig) {
				c.Scheduler.Jobs[0].Channel = ""
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		tt := tt // Capture range variable
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := baseConfig()
			tt.modifier(cfg)

			err := cfg.validate(newValidator())

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// =============================================================================
// Unit Tests: Operational Recommendations
// =============================================================================

func TestVerifyRecommendations(t *testing.T) {
	t.Parallel()

	t.Run("Privileged Port Warning", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name       string
			port       int
			expectWarn bool
		}{
			{"Safe Port", 8080, false},
			{"Privileged Port (HTTP)", 80, true},
			{"Privileged Port (HTTPS)", 443, true},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				cfg := &AppConfig{NotifyAPI: NotifyAPIConfig{WS: WSConfig{ListenPort: tt.port}}}
				warnings := cfg.VerifyRecommendations()

				if tt.expectWarn {
					assert.NotEmpty(t, warnings)
					assert.Contains(t, warnings[0], "시스템 예약 포트")
				} else {
					assert.Empty(t, warnings)
				}
			})
		}
	})

	t.Run("Non-Slack Webhook URL Warning", func(t *testing.T) {
		t.Parallel()

		cfg := &AppConfig{
			Notification: NotificationConfig{
				Channels: []ChannelConfig{
					{ID: "official", WebhookURL: "https://hooks.slack.com/services/T000/B000/XXXX"},
					{ID: "proxy", WebhookURL: "https://relay.example.com/webhook"},
				},
			},
			NotifyAPI: NotifyAPIConfig{WS: WSConfig{ListenPort: 8080}},
		}

		warnings := cfg.VerifyRecommendations()
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "Channel['proxy']")
		assert.Contains(t, warnings[0], "Slack 공식 웹훅 형식")
	})
}
