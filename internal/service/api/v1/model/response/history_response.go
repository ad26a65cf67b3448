package response

import (
	"github.com/darkkaiser/slack-notify-server/internal/service/contract"
)

// HistoryResponse 단일 채널의 최근 알림 발송 이력 응답
type HistoryResponse struct {
	// 조회 대상 채널 ID
	Channel string `json:"channel" example:"deploy-alerts"`
	// 최근 발송 이력 (최신순)
	Records []contract.DeliveryRecord `json:"records"`
	// 반환된 이력 수
	Total int `json:"total" example:"10"`
}
