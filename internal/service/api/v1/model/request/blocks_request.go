package request

import "encoding/json"

// BlocksRequest 사전에 구성된 Block Kit 블록 배열을 그대로 발송하는 요청
//
// Blocks 필드는 의도적으로 json.RawMessage로 선언되어 바인딩 시 파싱되지 않으며,
// 핸들러에서 gjson으로 배열 형태와 블록 타입을 검사한 후 원문 그대로 전달됩니다.
type BlocksRequest struct {
	// 인증에 사용할 애플리케이션 식별자
	ApplicationID string `json:"application_id" validate:"required" korean:"애플리케이션 ID" example:"my-app"`
	// 알림을 발송할 채널 ID (생략 시 애플리케이션의 기본 채널로 발송)
	Channel string `json:"channel,omitempty" korean:"알림 채널" example:"deploy-alerts"`
	// Slack Block Kit 블록 배열 (원문 그대로 전달됨)
	Blocks json.RawMessage `json:"blocks" validate:"required" korean:"블록" swaggertype:"array,object"`
}
