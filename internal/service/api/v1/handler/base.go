// Package handler v1 API의 HTTP 요청 핸들러를 제공합니다.
//
// 이 패키지는 HTTP 요청을 받아 검증하고, 비즈니스 로직을 호출한 후,
// 적절한 HTTP 응답을 반환하는 핸들러 함수들을 포함합니다.
//
// 애플리케이션 인증은 RequireAuthentication 미들웨어에서 선행되며,
// 핸들러는 auth.MustGetApplication을 통해 인증된 애플리케이션 정보를 꺼내 사용합니다.
package handler

import (
	"github.com/darkkaiser/slack-notify-server/internal/config"
	"github.com/darkkaiser/slack-notify-server/internal/service/api/constants"
	"github.com/darkkaiser/slack-notify-server/internal/service/api/v1/model/response"
	"github.com/darkkaiser/slack-notify-server/internal/service/contract"
	applog "github.com/darkkaiser/slack-notify-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// Handler v1 API 요청을 처리하고 비즈니스 로직을 연결하는 핸들러입니다.
//
// 이 구조체는 다음 역할을 수행합니다:
//   - HTTP 요청 바인딩 및 검증
//   - 비즈니스 로직(알림 발송, 이력 조회) 호출
//   - HTTP 응답 생성
//
// Handler는 의존성 주입을 통해 생성되며, 알림 발송 서비스와 발송 이력 조회
// 서비스를 주입받습니다. 채널 목록은 설정으로부터 생성 시점에 한 번만 구성되며,
// 보안을 위해 Webhook URL은 응답 모델에 포함되지 않습니다.
type Handler struct {
	// notificationSender 알림 메시지 발송을 담당하는 인터페이스
	// Slack Incoming Webhook을 통해 채널로 메시지를 전송합니다.
	notificationSender contract.NotificationSender

	// historyProvider 채널별 최근 발송 이력 조회를 담당하는 인터페이스
	historyProvider contract.DeliveryHistoryProvider

	// channels 설정에 등록된 채널 목록 (생성 시점에 구성된 불변 스냅샷)
	channels []response.ChannelInfo
}

// NewHandler Handler 인스턴스를 생성합니다.
//
// 매개변수:
//   - appConfig: 채널 목록 구성에 사용되는 애플리케이션 설정
//   - notificationSender: 알림 발송을 담당하는 NotificationSender 구현체
//   - historyProvider: 발송 이력 조회를 담당하는 DeliveryHistoryProvider 구현체
//
// Panics:
//   - appConfig, notificationSender, historyProvider가 nil인 경우
func NewHandler(appConfig *config.AppConfig, notificationSender contract.NotificationSender, historyProvider contract.DeliveryHistoryProvider) *Handler {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if notificationSender == nil {
		panic(constants.PanicMsgNotificationSenderRequired)
	}
	if historyProvider == nil {
		panic(constants.PanicMsgHistoryProviderRequired)
	}

	return &Handler{
		notificationSender: notificationSender,
		historyProvider:    historyProvider,
		channels:           buildChannelInfos(appConfig),
	}
}

// buildChannelInfos 설정의 채널 목록을 클라이언트에 노출 가능한 형태로 변환합니다.
//
// 중복 선언된 채널 ID는 설정 로딩 규칙과 동일하게 마지막 선언이 우선하되,
// 목록에서의 위치는 최초 선언 순서를 유지합니다. Webhook URL은 보안상 제외됩니다.
func buildChannelInfos(appConfig *config.AppConfig) []response.ChannelInfo {
	channels := make([]response.ChannelInfo, 0, len(appConfig.Notification.Channels))
	indexByID := make(map[string]int, len(appConfig.Notification.Channels))

	for _, channel := range appConfig.Notification.Channels {
		info := response.ChannelInfo{
			ID:          channel.ID,
			Description: channel.Description,
			Default:     channel.ID == appConfig.Notification.DefaultChannel,
		}

		if i, ok := indexByID[channel.ID]; ok {
			channels[i] = info
			continue
		}

		indexByID[channel.ID] = len(channels)
		channels = append(channels, info)
	}

	return channels
}

// log 핸들러 공통 필드(component, endpoint)를 포함한 로그 Entry를 반환합니다.
func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint": c.Path(),
	})
}
