package contract

import (
	"time"

	apperrors "github.com/darkkaiser/slack-notify-server/internal/pkg/errors"
)

// ErrDeliveryHistoryNotFound 저장된 발송 이력을 찾을 수 없을 때 반환하는 에러입니다.
var ErrDeliveryHistoryNotFound = apperrors.New(apperrors.NotFound, "조회 실패: 저장된 발송 이력 없음")

// DeliveryRecord 알림 발송 1건의 결과를 기록하는 구조체입니다.
type DeliveryRecord struct {
	// Title 발송된 알림의 제목입니다.
	Title string `json:"title,omitempty"`

	// Message 발송된 알림의 본문입니다.
	Message string `json:"message"`

	// ErrorOccurred 오류 알림 여부입니다.
	ErrorOccurred bool `json:"error_occurred,omitempty"`

	// Succeeded Slack 전송 성공 여부입니다.
	Succeeded bool `json:"succeeded"`

	// StatusCode Slack 웹훅이 응답한 HTTP 상태 코드입니다.
	// 실제 HTTP 요청이 발생하지 않은 경우(Dry-Run, 연결 실패 등) 0입니다.
	StatusCode int `json:"status_code,omitempty"`

	// SentAt 발송을 시도한 시각입니다.
	SentAt time.Time `json:"sent_at"`
}

// DeliveryHistoryProvider 채널별 발송 이력 조회 기능을 제공하는 인터페이스입니다.
// API 핸들러 등 읽기 전용 소비자는 저장소 대신 이 인터페이스에 의존합니다.
type DeliveryHistoryProvider interface {
	// History 지정된 채널의 최근 발송 이력을 최신순으로 반환합니다.
	//
	// 등록되지 않은 채널이면 에러를 반환하고, 등록된 채널이지만 아직
	// 발송 이력이 없으면 빈 슬라이스를 반환합니다.
	History(channelID ChannelID) ([]DeliveryRecord, error)
}

// DeliveryHistoryStore 채널별 알림 발송 이력을 저장하고 불러오는 저장소 인터페이스입니다.
//
// 이 인터페이스는 알림이 발송될 때마다 그 결과를 기록하여,
// 관리자가 최근 발송 내역과 실패 이력을 조회할 수 있도록 합니다.
type DeliveryHistoryStore interface {
	// Append 발송 이력 1건을 해당 채널의 이력에 추가합니다.
	//
	// 채널별로 최근 발송 이력만 보관하며, 보관 한도를 초과하는
	// 오래된 이력은 자동으로 삭제됩니다.
	Append(channelID ChannelID, record DeliveryRecord) error

	// Load 지정된 채널의 저장된 발송 이력을 최신순으로 불러옵니다.
	//
	// 저장된 이력이 없는 경우 ErrDeliveryHistoryNotFound 에러를 반환합니다.
	// 호출자는 이 에러를 확인하여 최초 발송 여부를 판단해야 합니다.
	Load(channelID ChannelID) ([]DeliveryRecord, error)
}
