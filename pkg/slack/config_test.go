package slack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Config Validation Tests
// =============================================================================

// TestConfig_Validate는 채널 설정 검증 규칙을 검증합니다.
func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errContains string
	}{
		{
			name: "Valid Config",
			config: Config{
				Channels: []Channel{
					{Reference: "alerts", WebhookURL: "https://hooks.slack.com/services/T000/B000/XXXX"},
					{Reference: "deploys", WebhookURL: "https://hooks.slack.com/services/T000/B111/YYYY"},
				},
				DefaultChannel: "alerts",
			},
			wantErr: false,
		},
		{
			name:    "Empty Channels - 채널이 없어도 구성 자체는 유효",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "HTTP URL - 로컬 테스트 서버 허용",
			config: Config{
				Channels: []Channel{
					{Reference: "local", WebhookURL: "http://127.0.0.1:8080/webhook"},
				},
			},
			wantErr: false,
		},
		{
			name: "Duplicate References - 중복 참조는 검증 단계에서 허용",
			config: Config{
				Channels: []Channel{
					{Reference: "alerts", WebhookURL: "https://hooks.slack.com/services/T000/B000/AAAA"},
					{Reference: "alerts", WebhookURL: "https://hooks.slack.com/services/T000/B000/BBBB"},
				},
			},
			wantErr: false,
		},
		{
			name: "Empty Reference",
			config: Config{
				Channels: []Channel{
					{Reference: "", WebhookURL: "https://hooks.slack.com/services/T000/B000/XXXX"},
				},
			},
			wantErr:     true,
			errContains: "채널 참조가 비어 있습니다",
		},
		{
			name: "Empty Webhook URL",
			config: Config{
				Channels: []Channel{
					{Reference: "alerts", WebhookURL: ""},
				},
			},
			wantErr:     true,
			errContains: "웹훅 URL은 비어있을 수 없습니다",
		},
		{
			name: "Invalid Webhook URL Scheme",
			config: Config{
				Channels: []Channel{
					{Reference: "alerts", WebhookURL: "ftp://hooks.slack.com/services/T000/B000/XXXX"},
				},
			},
			wantErr:     true,
			errContains: "'http' 또는 'https'만 허용됩니다",
		},
		{
			name: "Default Channel Not Defined",
			config: Config{
				Channels: []Channel{
					{Reference: "alerts", WebhookURL: "https://hooks.slack.com/services/T000/B000/XXXX"},
				},
				DefaultChannel: "missing",
			},
			wantErr:     true,
			errContains: "기본 채널이 채널 목록에 정의되어 있지 않습니다",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.config.Validate()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)

				var configErr *ConfigError
				assert.ErrorAs(t, err, &configErr, "설정 검증 실패는 ConfigError 타입이어야 합니다")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestConfig_Validate_ErrorIdentifiesChannel은 오류 메시지에 문제가 된 채널 참조가
// 포함되는지 검증합니다.
func TestConfig_Validate_ErrorIdentifiesChannel(t *testing.T) {
	t.Parallel()

	config := Config{
		Channels: []Channel{
			{Reference: "alerts", WebhookURL: "https://hooks.slack.com/services/T000/B000/XXXX"},
			{Reference: "broken", WebhookURL: "://invalid"},
		},
	}

	err := config.Validate()
	require.Error(t, err)

	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "broken", configErr.Reference)
}
