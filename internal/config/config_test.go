package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/darkkaiser/slack-notify-server/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Unit Tests: Configuration Logic & Helpers
// =============================================================================

func TestNormalizeEnvKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"NOTIFY_DEBUG", "debug"},
		{"NOTIFY_NOTIFICATION__SEND_TO_SLACK", "notification.send_to_slack"},
		{"NOTIFY_NOTIFICATION__DEFAULT_CHANNEL", "notification.default_channel"},
		{"NOTIFY_NOTIFY_API__CORS__ALLOW_ORIGINS", "notify_api.cors.allow_origins"},
		{"DEBUG", "debug"}, // Prefix가 없어도 동작은 하지만, 실제 호출부는 prefix가 있는 키만 전달함
		{"NOTIFY_Mixed_Case__Key", "mixed_case.key"},
	}

	for _, tt := range tests {
		got := normalizeEnvKey(tt.input)
		assert.Equal(t, tt.expected, got, "Input: %s", tt.input)
	}
}

func TestNewDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := newDefaultConfig()

	// Assert Default Values
	assert.False(t, cfg.Debug)
	assert.True(t, cfg.Notification.SendToSlack, "기본 구성은 실제 Slack 전송이 활성화된 상태여야 합니다")
	assert.False(t, cfg.Notification.Verbose)
	assert.Equal(t, DefaultListenPort, cfg.NotifyAPI.WS.ListenPort)
	assert.Empty(t, cfg.Notification.Channels)
	assert.Empty(t, cfg.Scheduler.Jobs)
}

// =============================================================================
// Integration Tests: Load Logic
// =============================================================================

func TestLoad_Integration(t *testing.T) {
	// t.Setenv를 사용하므로 이 테스트는 병렬로 실행하지 않습니다.

	createTempConfig := func(t *testing.T, content string) string {
		t.Helper()
		dir := t.TempDir()
		path := filepath.Join(dir, "config.json")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	t.Run("Priority: Env > File > Defaults", func(t *testing.T) {
		// 1. File Config (Overrides Defaults)
		jsonContent := `{
			"notification": {
				"default_channel": "alerts",
				"channels": [{"id": "alerts", "webhook_url": "https://hooks.slack.com/services/T000/B000/XXXX"}]
			},
			"notify_api": { "ws": {"listen_port": 9000}, "cors": {"allow_origins": ["*"]}, "applications": [] }
		}`
		path := createTempConfig(t, jsonContent)

		// 2. Env Config (Overrides File)
		t.Setenv("NOTIFY_NOTIFICATION__VERBOSE", "true")

		// 3. Load
		cfg, err := LoadWithFile(path)
		require.NoError(t, err)

		// 4. Verification
		assert.True(t, cfg.Notification.Verbose, "Environment variable should take precedence over file")
		assert.Equal(t, 9000, cfg.NotifyAPI.WS.ListenPort, "File config should take precedence over defaults")
		assert.True(t, cfg.Notification.SendToSlack, "Default value should persist if not overridden")
		require.Len(t, cfg.Notification.Channels, 1)
		assert.Equal(t, "alerts", cfg.Notification.Channels[0].ID)
	})

	t.Run("Env Override: Boolean Coercion", func(t *testing.T) {
		jsonContent := `{
			"notification": {
				"default_channel": "alerts",
				"channels": [{"id": "alerts", "webhook_url": "https://hooks.slack.com/services/T000/B000/XXXX"}]
			},
			"notify_api": { "ws": {"listen_port": 9000}, "cors": {"allow_origins": ["*"]}, "applications": [] }
		}`
		path := createTempConfig(t, jsonContent)

		t.Setenv("NOTIFY_NOTIFICATION__SEND_TO_SLACK", "false")

		cfg, err := LoadWithFile(path)
		require.NoError(t, err)
		assert.False(t, cfg.Notification.SendToSlack, "환경 변수의 문자열 'false'가 bool로 변환되어야 합니다")
	})

	t.Run("Error: File Not Found", func(t *testing.T) {
		cfg, err := LoadWithFile("non-existent-config.json")
		require.Error(t, err)
		assert.Nil(t, cfg)

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			assert.Equal(t, apperrors.System, appErr.Type)
			assert.Contains(t, err.Error(), "설정 파일을 찾을 수 없습니다")
		}
	})

	t.Run("Error: Malformed JSON", func(t *testing.T) {
		path := createTempConfig(t, "{ invalid_json: ... }")
		cfg, err := LoadWithFile(path)
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "설정 파일 로드 중 오류")
	})

	t.Run("Error: Unknown Fields (Strict Unmarshal)", func(t *testing.T) {
		jsonContent := `{
			"unknown_field": "hacking",
			"debug": true
		}`
		path := createTempConfig(t, jsonContent)
		cfg, err := LoadWithFile(path)
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "구조체로 변환하는데 실패했습니다")
	})

	t.Run("Error: Validation Failure After Load", func(t *testing.T) {
		// JSON 구조는 유효하지만 논리적으로 잘못된 설정 (예: 음수 포트)
		jsonContent := `{
			"notification": {
				"default_channel": "alerts",
				"channels": [{"id": "alerts", "webhook_url": "https://hooks.slack.com/services/T000/B000/XXXX"}]
			},
			"notify_api": { "ws": {"listen_port": -1}, "cors": {"allow_origins": ["*"]}, "applications": [] }
		}`
		path := createTempConfig(t, jsonContent)
		cfg, err := LoadWithFile(path)
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "웹 서비스 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다")
	})

	t.Run("Error: Webhook URL Never Exposed In Validation Error", func(t *testing.T) {
		// 검증 에러 메시지에 웹훅 URL 원문(인증 토큰 포함)이 노출되지 않아야 한다.
		jsonContent := `{
			"notification": {
				"default_channel": "alerts",
				"channels": [{"id": "alerts", "webhook_url": "ftp://hooks.slack.com/services/SECRETTOKENVALUE0001"}]
			},
			"notify_api": { "ws": {"listen_port": 9000}, "cors": {"allow_origins": ["*"]}, "applications": [] }
		}`
		path := createTempConfig(t, jsonContent)
		cfg, err := LoadWithFile(path)
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "웹훅 URL 형식이 올바르지 않습니다")
		assert.NotContains(t, err.Error(), "SECRETTOKENVALUE0001")
	})
}
