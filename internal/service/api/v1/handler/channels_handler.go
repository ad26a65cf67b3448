package handler

import (
	"net/http"

	"github.com/darkkaiser/slack-notify-server/internal/service/api/constants"
	"github.com/darkkaiser/slack-notify-server/internal/service/api/v1/model/response"
	"github.com/labstack/echo/v4"
)

// ChannelsHandler godoc
// @Summary 알림 채널 목록 조회
// @Description 설정에 등록된 알림 채널 목록을 반환합니다.
// @Description
// @Description 알림 발송 시 channel 필드에 지정할 수 있는 채널 ID와 설명을 제공하며,
// @Description 보안상 채널의 Webhook URL은 절대 포함되지 않습니다.
// @Description
// @Description ## 사용 예시 (로컬 환경)
// @Description ```bash
// @Description curl "http://localhost:2443/api/v1/channels" \
// @Description   -H "X-App-Key: your-app-key" \
// @Description   -H "X-Application-Id: my-app"
// @Description ```
// @Tags Notification
// @Produce json
// @Param X-App-Key header string false "Application Key (인증용, 권장)" example(your-app-key-here)
// @Param X-Application-Id header string true "Application ID (인증용)" example(my-app)
// @Success 200 {object} response.ChannelsResponse "등록된 채널 목록"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청 (인증 정보 누락)"
// @Failure 401 {object} response.ErrorResponse "인증 실패 (잘못된 App Key 또는 미등록 애플리케이션)"
// @Security ApiKeyAuth
// @Router /api/v1/channels [get]
func (h *Handler) ChannelsHandler(c echo.Context) error {
	h.log(c).Debug(constants.LogMsgChannelListRequested)

	return c.JSON(http.StatusOK, response.ChannelsResponse{
		Channels: h.channels,
		Total:    len(h.channels),
	})
}
