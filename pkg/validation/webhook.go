package validation

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/darkkaiser/slack-notify-server/pkg/strutil"
)

// SlackWebhookHost Slack Incoming Webhook의 표준 호스트입니다.
const SlackWebhookHost = "hooks.slack.com"

// ValidateWebhookURL 메시지 전송에 사용할 웹훅 URL이 유효한지 검증합니다.
//
// 웹훅 URL은 인증 토큰을 경로에 포함하는 민감 정보이므로, 에러 메시지에는
// 원본 URL 대신 마스킹된 값만 포함됩니다.
//
// 검증 규칙:
//   - 빈 문자열은 허용되지 않습니다.
//   - 스키마: 'http' 또는 'https'만 허용됩니다. (테스트/프록시 환경을 위해 http 허용)
//   - 호스트: 반드시 포함되어야 합니다.
//   - 사용자 자격 증명(UserInfo) 및 URL Fragment(#)는 포함할 수 없습니다.
func ValidateWebhookURL(rawURL string) error {
	trimmedURL := strings.TrimSpace(rawURL)
	if trimmedURL == "" {
		return fmt.Errorf("웹훅 URL은 비어있을 수 없습니다")
	}

	maskedURL := strutil.Mask(trimmedURL)

	parsedURL, err := url.Parse(trimmedURL)
	if err != nil {
		return fmt.Errorf("웹훅 URL 파싱 실패: 유효한 URL 형식이 아닙니다 (url=%q): %w", maskedURL, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("웹훅 URL 스키마 오류: 'http' 또는 'https'만 허용됩니다 (url=%q)", maskedURL)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("웹훅 URL 포맷 오류: 호스트(Host) 정보가 누락되었습니다 (url=%q)", maskedURL)
	}

	if parsedURL.User != nil {
		return fmt.Errorf("웹훅 URL 포맷 오류: 보안 정책상 사용자 자격 증명(UserInfo)을 포함할 수 없습니다 (url=%q)", maskedURL)
	}

	if parsedURL.Fragment != "" {
		return fmt.Errorf("웹훅 URL 포맷 오류: URL Fragment(#)를 포함할 수 없습니다 (url=%q)", maskedURL)
	}

	return nil
}

// IsSlackWebhookURL 주어진 URL이 Slack Incoming Webhook의 표준 형식인지 확인합니다.
//
// 표준 형식: https://hooks.slack.com/services/{workspace}/{channel}/{token}
//
// 이 함수는 유효성 검증이 아닌 권장 사항 확인 용도입니다. 표준 형식이 아니더라도
// 전송 자체는 가능하므로, 호출 측에서는 경고 출력 등의 용도로만 사용해야 합니다.
func IsSlackWebhookURL(rawURL string) bool {
	parsedURL, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return false
	}
	return parsedURL.Scheme == "https" &&
		parsedURL.Host == SlackWebhookHost &&
		strings.HasPrefix(parsedURL.Path, "/services/")
}
