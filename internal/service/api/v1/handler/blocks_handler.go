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
	"github.com/tidwall/gjson"
)

// PublishBlocksHandler godoc
// @Summary Block Kit 블록 메시지 게시
// @Description 사전에 구성된 Slack Block Kit 블록 배열을 가공 없이 그대로 채널로 전송합니다.
// @Description
// @Description 제목/본문 조립과 푸터 추가를 수행하는 일반 알림 API와 달리,
// @Description 클라이언트가 블록 레이아웃을 완전히 제어해야 할 때 사용합니다.
// @Description blocks 필드는 "type 필드를 가진 객체의 배열" 형태만 검사되며,
// @Description 각 블록의 세부 구조는 Slack 서버에서 최종 검증됩니다.
// @Description
// @Description ## 사용 예시 (로컬 환경)
// @Description ```bash
// @Description curl -X POST "http://localhost:2443/api/v1/notifications/blocks" \
// @Description   -H "Content-Type: application/json" \
// @Description   -H "X-App-Key: your-app-key" \
// @Description   -d '{"application_id":"my-app","blocks":[{"type":"divider"},{"type":"section","text":{"type":"mrkdwn","text":"*배포 완료*"}}]}'
// @Description ```
// @Tags Notification
// @Accept json
// @Produce json
// @Param X-App-Key header string false "Application Key (인증용, 권장)" example(your-app-key-here)
// @Param app_key query string false "Application Key (인증용, 레거시)" example(your-app-key-here)
// @Param message body request.BlocksRequest true "Block Kit 블록 메시지 정보"
// @Success 200 {object} response.SuccessResponse "성공"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청 (블록 배열 형식 오류 등)"
// @Failure 401 {object} response.ErrorResponse "인증 실패 (잘못된 App Key 또는 미등록 애플리케이션)"
// @Failure 404 {object} response.ErrorResponse "등록되지 않은 알림 채널"
// @Failure 500 {object} response.ErrorResponse "서버 내부 오류"
// @Failure 503 {object} response.ErrorResponse "서비스 중지됨"
// @Security ApiKeyAuth
// @Router /api/v1/notifications/blocks [post]
func (h *Handler) PublishBlocksHandler(c echo.Context) error {
	// 1. 요청 바인딩
	req := new(request.BlocksRequest)
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

	// 4. 블록 배열 형태 검사 및 블록 타입 집계
	blockCount, blockTypes, err := inspectBlocks(req.Blocks)
	if err != nil {
		return err
	}

	// 5. 발송 채널 결정 (생략 시 애플리케이션의 기본 채널 사용)
	channelID := contract.ChannelID(req.Channel)
	if channelID.IsEmpty() {
		channelID = app.DefaultChannel
	}

	// 6. 블록 발송 (동기)
	if err := h.notificationSender.NotifyBlocks(c.Request().Context(), channelID, req.Blocks); err != nil {
		return h.mapServiceError(c, err, constants.LogMsgBlocksFailed, applog.Fields{
			"application_id": app.ID,
			"channel":        channelID,
		})
	}

	h.log(c).WithFields(applog.Fields{
		"application_id": app.ID,
		"channel":        channelID,
		"block_count":    blockCount,
		"block_types":    blockTypes,
	}).Info(constants.LogMsgBlocksPublished)

	// 7. 성공 응답
	return httputil.Success(c)
}

// inspectBlocks blocks 원문이 Block Kit 블록 배열의 형태를 갖추었는지 검사하고,
// 로깅을 위해 블록 타입별 개수를 집계합니다.
//
// 각 블록의 세부 구조(text, elements 등)는 검사하지 않으며,
// "type 필드를 가진 객체의 배열"이라는 최소한의 형태만 확인합니다.
func inspectBlocks(blocksJSON []byte) (int, map[string]int, error) {
	if !gjson.ValidBytes(blocksJSON) {
		return 0, nil, NewErrInvalidBlocks()
	}

	parsed := gjson.ParseBytes(blocksJSON)
	if !parsed.IsArray() {
		return 0, nil, NewErrInvalidBlocks()
	}

	blocks := parsed.Array()
	if len(blocks) == 0 {
		return 0, nil, NewErrInvalidBlocks()
	}

	blockTypes := make(map[string]int, len(blocks))
	for _, block := range blocks {
		if !block.IsObject() {
			return 0, nil, NewErrInvalidBlocks()
		}

		blockType := block.Get("type")
		if blockType.Type != gjson.String || blockType.String() == "" {
			return 0, nil, NewErrInvalidBlocks()
		}

		blockTypes[blockType.String()]++
	}

	return len(blocks), blockTypes, nil
}
