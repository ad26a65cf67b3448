package contract

import (
	"context"
)

// Notification 발송할 알림 메시지 한 건의 내용을 담는 구조체입니다.
type Notification struct {
	// ChannelID 알림을 발송할 대상 Slack 채널의 식별자입니다.
	// 비어있으면 시스템에 설정된 기본 채널로 발송됩니다.
	ChannelID ChannelID

	// Title 알림 메시지의 제목입니다. 비어있으면 본문만 발송됩니다.
	Title string

	// Message 전송할 메시지 본문입니다.
	Message string

	// ErrorOccurred 오류 상황에 대한 알림인지 여부입니다.
	// true인 경우 수신자가 즉시 인지할 수 있도록 시각적 강조가 적용됩니다.
	ErrorOccurred bool
}

// NotificationSender 알림 발송 기능을 제공하는 인터페이스입니다.
// API, Scheduler와 같은 클라이언트는 이 인터페이스를 통해 알림 서비스를 사용합니다.
type NotificationSender interface {
	// Notify 지정된 채널로 알림 메시지를 발송합니다.
	// 발송은 동기적으로 처리되며, Slack 전송이 완료(또는 실패)된 후에 반환됩니다.
	//
	// 파라미터:
	//   - ctx: 발송 취소 및 타임아웃 제어를 위한 Context
	//   - notification: 발송할 알림 내용 (ChannelID가 비어있으면 기본 채널로 발송)
	//
	// 반환값:
	//   - error: 발송 성공 시 nil, 실패 시 에러 반환 (ErrServiceNotRunning, ErrChannelNotFound, 전송 에러 등)
	Notify(ctx context.Context, notification Notification) error

	// NotifyDefault 시스템에 설정된 기본 채널로 알림 메시지를 발송합니다.
	// 주로 시스템 전반적인 알림이나, 특정 대상을 지정하지 않은 일반적인 정보 전달에 사용됩니다.
	//
	// 파라미터:
	//   - ctx: 발송 취소 및 타임아웃 제어를 위한 Context
	//   - message: 전송할 메시지 내용
	//
	// 반환값:
	//   - error: 발송 성공 시 nil, 실패 시 에러 반환
	NotifyDefault(ctx context.Context, message string) error

	// NotifyDefaultWithError 시스템에 설정된 기본 채널로 "오류" 성격의 알림 메시지를 발송합니다.
	// 시스템 내부 에러, 작업 실패 등 관리자의 주의가 필요한 긴급 상황 알림에 적합합니다.
	// 내부적으로 오류 플래그가 설정되어 발송되므로, 수신 측에서 이를 인지하여 처리할 수 있습니다.
	//
	// 파라미터:
	//   - ctx: 발송 취소 및 타임아웃 제어를 위한 Context
	//   - message: 전송할 오류 메시지 내용
	//   - cause: 오류의 원인이 된 에러 (nil이 아니면 메시지에 상세 내용이 추가됩니다)
	//
	// 반환값:
	//   - error: 발송 성공 시 nil, 실패 시 에러 반환
	NotifyDefaultWithError(ctx context.Context, message string, cause error) error

	// NotifyBlocks 사전에 구성된 Slack Block Kit 블록 배열(JSON)을 지정된 채널로 발송합니다.
	// 블록 구성은 호출자의 책임이며, 서비스는 제목/본문 조립이나 푸터 추가 없이 그대로 전달합니다.
	//
	// 파라미터:
	//   - ctx: 발송 취소 및 타임아웃 제어를 위한 Context
	//   - channelID: 발송 대상 채널 (비어있으면 기본 채널로 발송)
	//   - blocksJSON: Block Kit 블록 배열의 JSON 표현 (예: `[{"type":"divider"}]`)
	//
	// 반환값:
	//   - error: 발송 성공 시 nil, 블록 JSON이 유효하지 않거나 전송에 실패하면 에러 반환
	NotifyBlocks(ctx context.Context, channelID ChannelID, blocksJSON []byte) error
}

// NotificationHealthChecker Notification 서비스의 상태를 확인하는 인터페이스입니다.
type NotificationHealthChecker interface {
	// Health 서비스가 정상적으로 실행 중인지 확인합니다.
	//
	// 반환값:
	//   - error: 서비스가 정상 동작 중이면 nil, 그렇지 않으면 에러 반환 (예: ErrServiceNotRunning)
	Health() error
}
