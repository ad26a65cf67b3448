package handler

import (
	"github.com/darkkaiser/slack-notify-server/internal/pkg/validator"
	"github.com/darkkaiser/slack-notify-server/internal/service/api/auth"
	"github.com/darkkaiser/slack-notify-server/internal/service/api/constants"
	"github.com/darkkaiser/slack-notify-server/internal/service/api/httputil"
	"github.com/darkkaiser/slack-notify-server/internal/service/api/v1/model/request"
	"github.com/darkkaiser/slack-notify-server/internal/service/contract"
	applog "github.com/darkkaiser/slack-notify-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// PublishNotificationHandler godoc
// @Summary 알림 메시지 게시
// @Description 외부 애플리케이션에서 Slack 채널로 알림 메시지를 전송합니다.
// @Description
// @Description 이 API를 사용하려면 사전에 등록된 애플리케이션 ID와 App Key가 필요합니다.
// @Description 설정 파일(slack-notify-server.json)의 notify_api.applications에 애플리케이션을 등록해야 합니다.
// @Description
// @Description ## 인증 방식
// @Description - **권장**: X-App-Key 헤더로 전달
// @Description - **레거시**: app_key 쿼리 파라미터로 전달 (하위 호환성 유지)
// @Description
// @Description ## 발송 채널 결정
// @Description - channel 필드를 지정하면 해당 채널로 발송됩니다.
// @Description - 생략하면 애플리케이션의 기본 채널(default_channel)로 발송됩니다.
// @Description
// @Description ## 사용 예시 (로컬 환경)
// @Description ### 헤더 방식 (권장)
// @Description ```bash
// @Description curl -X POST "http://localhost:2443/api/v1/notifications" \
// @Description   -H "Content-Type: application/json" \
// @Description   -H "X-App-Key: your-app-key" \
// @Description   -d '{"application_id":"my-app","message":"테스트 메시지","error_occurred":false}'
// @Description ```
// @Description
// @Description ### 쿼리 파라미터 방식 (레거시)
// @Description ```bash
// @Description curl -X POST "http://localhost:2443/api/v1/notifications?app_key=your-app-key" \
// @Description   -H "Content-Type: application/json" \
// @Description   -d '{"application_id":"my-app","message":"테스트 메시지","error_occurred":false}'
// @Description ```
// @Tags Notification
// @Accept json
// @Produce json
// @Param X-App-Key header string false "Application Key (인증용, 권장)" example(your-app-key-here)
// @Param app_key query string false "Application Key (인증용, 레거시)" example(your-app-key-here)
// @Param message body request.NotificationRequest true "알림 메시지 정보"
// @Success 200 {object} response.SuccessResponse "성공"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청 (필수 필드 누락, JSON 형식 오류 등)"
// @Failure 401 {object} response.ErrorResponse "인증 실패 (잘못된 App Key 또는 미등록 애플리케이션)"
// @Failure 404 {object} response.ErrorResponse "등록되지 않은 알림 채널"
// @Failure 500 {object} response.ErrorResponse "서버 내부 오류"
// @Failure 503 {object} response.ErrorResponse "서비스 중지됨"
// @Security ApiKeyAuth
// @Router /api/v1/notifications [post]
func (h *Handler) PublishNotificationHandler(c echo.Context) error {
	// 1. 요청 바인딩
	req := new(request.NotificationRequest)
	if err := c.Bind(req); err != nil {
		return NewErrInvalidBody()
	}

	// 2. 입력 검증
	if err := validator.Struct(req); err != nil {
		return NewErrValidationFailed(validator.FormatValidationError(err))
	}

	// 3. 인증된 애플리케이션 조회 (인증은 미들웨어에서 선행됨)
	app := auth.MustGetApplication(c)
	if req.ApplicationID != app.ID {
		return NewErrAppIDMismatch(req.ApplicationID, app.ID)
	}

	// 4. 발송 채널/제목 결정 (생략 시 애플리케이션의 기본값 사용)
	channelID := contract.ChannelID(req.Channel)
	if channelID.IsEmpty() {
		channelID = app.DefaultChannel
	}

	title := req.Title
	if title == "" {
		title = app.Title
	}

	// 5. 알림 발송 (동기)
	// Slack 전송이 완료(또는 실패)될 때까지 대기한 후 결과를 반환합니다.
	err := h.notificationSender.Notify(c.Request().Context(), contract.Notification{
		ChannelID:     channelID,
		Title:         title,
		Message:       req.Message,
		ErrorOccurred: req.ErrorOccurred,
	})
	if err != nil {
		return h.mapServiceError(c, err, constants.LogMsgNotificationFailed, applog.Fields{
			"application_id": app.ID,
			"channel":        channelID,
		})
	}

	h.log(c).WithFields(applog.Fields{
		"application_id": app.ID,
		"channel":        channelID,
		"message_length": len(req.Message),
		"error_occurred": req.ErrorOccurred,
	}).Info(constants.LogMsgNotificationPublished)

	// 6. 성공 응답
	return httputil.Success(c)
}
