package contract

// ChannelID 알림을 발송할 Slack 채널의 고유 ID 타입입니다.
// NOTE: 이 타입은 여러 패키지(config, service, api)에서 공통으로 참조되므로,
// 순환 참조를 피하기 위해 contract 패키지에 정의되었습니다.
type ChannelID string

// String ChannelID를 문자열로 변환합니다.
func (id ChannelID) String() string {
	return string(id)
}

// IsEmpty ChannelID가 비어있는지 여부를 반환합니다.
func (id ChannelID) IsEmpty() bool {
	return id == ""
}
