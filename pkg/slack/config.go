package slack

import (
	"strings"

	"github.com/darkkaiser/slack-notify-server/pkg/validation"
)

// Channel 하나의 논리적 전송 대상입니다.
//
// Reference는 서비스 인스턴스 내에서 채널을 식별하는 사람이 읽을 수 있는
// 문자열이며, WebhookURL은 해당 채널로 메시지를 게시하는 Slack Incoming
// Webhook 엔드포인트입니다. 생성 이후 변경되지 않습니다.
type Channel struct {
	Reference  string
	WebhookURL string
}

// Config Slack 알림 서비스의 동작을 결정하는 불변 설정입니다.
type Config struct {
	// Channels 채널 정의 목록입니다. 순서가 의미를 가집니다.
	// 동일한 Reference가 여러 번 정의된 경우 뒤의 항목이 앞의 항목을
	// 덮어쓰며(Last-Write-Wins), 에러로 처리되지 않습니다.
	Channels []Channel

	// DefaultChannel 호출자가 채널을 명시하지 않았을 때 사용할 기본 채널 참조입니다. (선택)
	DefaultChannel string

	// SendToSlack false이면 실제 네트워크 호출을 수행하지 않고,
	// 구성/검증 로직만 수행한 뒤 진단 싱크에 페이로드를 기록합니다. (Dry-Run)
	SendToSlack bool

	// Verbose true이면 전송 전에 구성된 페이로드를 진단 싱크로 출력합니다.
	Verbose bool
}

// Validate 채널 설정의 구조적 유효성을 검사합니다.
//
// 이 검사는 선택 사항입니다. 생성 시점에는 느슨한 구성을 허용하므로
// (등록되지 않은 채널 참조는 전송 시점에야 실패), 설정 파일 로드 직후처럼
// 조기에 오류를 발견하고 싶은 경우에만 호출하면 됩니다.
//
// 검사 항목:
//   - 채널 참조가 비어있지 않아야 합니다.
//   - 웹훅 URL이 구조적으로 유효해야 합니다. (http/https 스키마, 호스트 포함)
//   - DefaultChannel이 지정된 경우, 해당 참조가 Channels에 존재해야 합니다.
func (c Config) Validate() error {
	references := make(map[string]struct{}, len(c.Channels))

	for _, channel := range c.Channels {
		if strings.TrimSpace(channel.Reference) == "" {
			return &ConfigError{Reference: channel.Reference, Reason: "채널 참조가 비어 있습니다"}
		}
		if err := validation.ValidateWebhookURL(channel.WebhookURL); err != nil {
			return &ConfigError{Reference: channel.Reference, Reason: err.Error()}
		}
		references[channel.Reference] = struct{}{}
	}

	if c.DefaultChannel != "" {
		if _, exists := references[c.DefaultChannel]; !exists {
			return &ConfigError{Reference: c.DefaultChannel, Reason: "기본 채널이 채널 목록에 정의되어 있지 않습니다"}
		}
	}

	return nil
}
