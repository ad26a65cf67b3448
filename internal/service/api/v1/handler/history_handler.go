package handler

import (
	"net/http"

	"github.com/darkkaiser/slack-notify-server/internal/service/api/constants"
	"github.com/darkkaiser/slack-notify-server/internal/service/api/v1/model/response"
	"github.com/darkkaiser/slack-notify-server/internal/service/contract"
	applog "github.com/darkkaiser/slack-notify-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// DeliveryHistoryHandler godoc
// @Summary 채널별 알림 발송 이력 조회
// @Description 지정된 채널의 최근 알림 발송 이력을 최신순으로 반환합니다.
// @Description
// @Description 발송 이력은 채널별로 최근 발송분만 보관되며, 성공/실패 여부와
// @Description 발송 시각이 함께 기록됩니다. 등록된 채널이지만 아직 발송 이력이
// @Description 없는 경우 빈 목록이 반환됩니다.
// @Description
// @Description ## 사용 예시 (로컬 환경)
// @Description ```bash
// @Description curl "http://localhost:2443/api/v1/notifications/history/deploy-alerts" \
// @Description   -H "X-App-Key: your-app-key" \
// @Description   -H "X-Application-Id: my-app"
// @Description ```
// @Tags Notification
// @Produce json
// @Param X-App-Key header string false "Application Key (인증용, 권장)" example(your-app-key-here)
// @Param X-Application-Id header string true "Application ID (인증용)" example(my-app)
// @Param channel path string true "조회 대상 채널 ID" example(deploy-alerts)
// @Success 200 {object} response.HistoryResponse "최근 발송 이력 (최신순)"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청 (인증 정보 누락)"
// @Failure 401 {object} response.ErrorResponse "인증 실패 (잘못된 App Key 또는 미등록 애플리케이션)"
// @Failure 404 {object} response.ErrorResponse "등록되지 않은 알림 채널"
// @Failure 503 {object} response.ErrorResponse "서비스 중지됨"
// @Security ApiKeyAuth
// @Router /api/v1/notifications/history/{channel} [get]
func (h *Handler) DeliveryHistoryHandler(c echo.Context) error {
	channel := c.Param(constants.PathParamChannel)

	h.log(c).WithFields(applog.Fields{
		"channel": channel,
	}).Debug(constants.LogMsgHistoryRequested)

	records, err := h.historyProvider.History(contract.ChannelID(channel))
	if err != nil {
		return h.mapServiceError(c, err, constants.LogMsgHistoryFailed, applog.Fields{
			"channel": channel,
		})
	}

	return c.JSON(http.StatusOK, response.HistoryResponse{
		Channel: channel,
		Records: records,
		Total:   len(records),
	})
}
