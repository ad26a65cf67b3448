// Package v1 Notify API의 v1 버전 라우트를 정의하고 설정합니다.
//
// 이 패키지는 /api/v1 경로 하위의 모든 엔드포인트를 관리하며,
// Slack 채널로의 알림 발송과 관련 조회를 위한 RESTful API를 제공합니다.
//
// 주요 엔드포인트:
//   - POST /api/v1/notifications                  - 알림 메시지 발송 (권장)
//   - POST /api/v1/notifications/blocks           - Block Kit 블록 메시지 발송
//   - GET  /api/v1/channels                       - 등록된 알림 채널 목록 조회
//   - GET  /api/v1/notifications/history/:channel - 채널별 최근 발송 이력 조회
//   - POST /notice/message                        - 알림 메시지 발송 (레거시, deprecated)
//
// 모든 엔드포인트는 애플리케이션 인증(app_key)을 요구하며,
// 인증 미들웨어를 통해 요청을 검증합니다.
package v1

import (
	"github.com/darkkaiser/slack-notify-server/internal/service/api/auth"
	"github.com/darkkaiser/slack-notify-server/internal/service/api/constants"
	"github.com/darkkaiser/slack-notify-server/internal/service/api/middleware"
	"github.com/darkkaiser/slack-notify-server/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes Echo 인스턴스에 v1 API 라우트를 설정합니다.
//
// 이 함수는 /api/v1 그룹을 생성하고, 인증 미들웨어를 적용한 후
// 알림 발송/조회 엔드포인트를 등록합니다.
//
// Parameters:
//   - e: Echo 서버 인스턴스
//   - h: v1 API 요청을 처리하는 핸들러
//   - authenticator: 애플리케이션 인증을 담당하는 인증자
//
// 미들웨어 적용:
//   - 모든 엔드포인트: RequireAuthentication (인증)
//   - 발송(POST) 엔드포인트: ValidateContentType (JSON 검증)
//   - 레거시 엔드포인트: DeprecatedEndpoint (경고 헤더 추가)
//
// 레거시 엔드포인트 응답 헤더:
//   - Warning: 299 - "Deprecated API endpoint. ..."
//   - X-API-Deprecated: true
//   - X-API-Deprecated-Replacement: /api/v1/notifications
func RegisterRoutes(e *echo.Echo, h *handler.Handler, authenticator *auth.Authenticator) {
	// 1. 공통 미들웨어 생성
	authMiddleware := middleware.RequireAuthentication(authenticator)
	jsonOnly := middleware.ValidateContentType(echo.MIMEApplicationJSON)

	// 2. API v1 그룹 생성 (/api/v1 prefix)
	v1Group := e.Group("/api/v1")

	// 3. 발송 엔드포인트 등록 (인증 + Content-Type 검증)
	v1Group.POST("/notifications", h.PublishNotificationHandler, authMiddleware, jsonOnly)
	v1Group.POST("/notifications/blocks", h.PublishBlocksHandler, authMiddleware, jsonOnly)

	// 4. 조회 엔드포인트 등록 (인증)
	v1Group.GET("/channels", h.ChannelsHandler, authMiddleware)
	v1Group.GET("/notifications/history/:"+constants.PathParamChannel, h.DeliveryHistoryHandler, authMiddleware)

	// 5. 레거시 엔드포인트 등록 (인증 + deprecated 경고 미들웨어 + Content-Type 검증)
	// 기존 클라이언트와의 호환성을 위해 루트 경로에 유지합니다.
	e.POST("/notice/message", h.PublishNotificationHandler,
		authMiddleware,
		middleware.DeprecatedEndpoint("/api/v1/notifications"),
		jsonOnly,
	)
}
