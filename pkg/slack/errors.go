package slack

import "fmt"

// UnknownChannelError 레지스트리에 등록되지 않은 채널 참조로 전송을 시도할 때 반환됩니다.
//
// 이 에러가 반환된 경우 네트워크 호출은 한 번도 수행되지 않은 상태입니다.
type UnknownChannelError struct {
	// Reference 조회에 실패한 채널 참조입니다.
	Reference string
}

// Error error 인터페이스를 구현합니다.
func (e *UnknownChannelError) Error() string {
	return fmt.Sprintf("등록되지 않은 Slack 채널입니다: %s", e.Reference)
}

// DeliveryError 웹훅 전송이 실패했을 때 반환됩니다.
//
// 연결 실패 등 전송 자체가 실패한 경우에는 Err에 원인 에러가 담기고,
// 성공 범위(2xx)를 벗어난 HTTP 응답을 받은 경우에는 StatusCode와
// 응답 본문 일부(BodySnippet)가 담깁니다. 라이브러리는 내부적으로
// 재시도하지 않으며, 재시도 정책은 호출자의 책임입니다.
type DeliveryError struct {
	// Reference 전송 대상 채널 참조입니다.
	Reference string

	// StatusCode HTTP 응답 상태 코드입니다. 전송 자체가 실패한 경우 0입니다.
	StatusCode int

	// Status HTTP 응답 상태 문자열입니다. (예: "500 Internal Server Error")
	Status string

	// BodySnippet 진단을 위한 응답 본문 일부입니다.
	BodySnippet string

	// Err 전송 실패의 원인 에러입니다. (연결 실패, 요청 생성 실패 등)
	Err error
}

// Error error 인터페이스를 구현합니다.
func (e *DeliveryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Slack 웹훅 전송 실패 (channel=%s): %v", e.Reference, e.Err)
	}
	if e.BodySnippet != "" {
		return fmt.Sprintf("Slack 웹훅 전송 실패 (channel=%s, status=%d): %s", e.Reference, e.StatusCode, e.BodySnippet)
	}
	return fmt.Sprintf("Slack 웹훅 전송 실패 (channel=%s, status=%d)", e.Reference, e.StatusCode)
}

// Unwrap 원인 에러를 반환합니다. (errors.Is / errors.As 지원)
func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// ConfigError 채널 설정이 구조적으로 유효하지 않을 때 Config.Validate()에서 반환됩니다.
//
// Validate() 호출은 선택 사항입니다. 검증을 생략한 경우에도 잘못된 설정은
// 전송 시점에 *DeliveryError로 드러납니다. (Lazy Degradation)
type ConfigError struct {
	// Reference 문제가 발견된 채널 참조입니다.
	Reference string

	// Reason 유효하지 않은 이유입니다.
	Reason string
}

// Error error 인터페이스를 구현합니다.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("잘못된 Slack 채널 설정입니다 (channel=%s): %s", e.Reference, e.Reason)
}
