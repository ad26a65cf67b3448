// Package response v1 API 엔드포인트의 응답 모델을 정의합니다.
package response

// ChannelInfo 설정에 등록된 단일 알림 채널 정보
//
// 보안상 Webhook URL은 절대 포함되지 않으며, 채널 ID와 설명만 노출됩니다.
type ChannelInfo struct {
	// 채널 ID (알림 발송 시 channel 필드에 지정하는 값)
	ID string `json:"id" example:"deploy-alerts"`
	// 채널 설명
	Description string `json:"description,omitempty" example:"배포 관련 알림 채널"`
	// 기본 채널 여부
	Default bool `json:"default,omitempty" example:"false"`
}

// ChannelsResponse 등록된 알림 채널 목록 응답
type ChannelsResponse struct {
	// 등록된 채널 목록
	Channels []ChannelInfo `json:"channels"`
	// 등록된 채널 수
	Total int `json:"total" example:"2"`
}
