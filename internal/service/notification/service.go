// Package notification Slack Incoming Webhook을 통해 알림 메시지를 발송하는 서비스를 제공합니다.
//
// 이 패키지는 pkg/slack의 전송기를 애플리케이션 생명주기(Start/Stop)와 발송 이력 기록에
// 연결하는 서버 측 계층입니다. 모든 발송은 동기적으로 처리되며, 전송 결과는 호출자에게
// 그대로 전파됩니다.
package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/darkkaiser/slack-notify-server/internal/config"
	"github.com/darkkaiser/slack-notify-server/internal/pkg/mark"
	"github.com/darkkaiser/slack-notify-server/internal/service/contract"
	applog "github.com/darkkaiser/slack-notify-server/pkg/log"
	"github.com/darkkaiser/slack-notify-server/pkg/slack"
	"github.com/darkkaiser/slack-notify-server/pkg/strutil"
)

// component Notification 서비스의 로깅용 컴포넌트 이름
const component = "notification.service"

// Service Slack 웹훅 채널로 알림을 발송하는 서비스입니다.
type Service struct {
	appConfig *config.AppConfig

	// sender 실제 Slack 전송을 수행하는 전송기입니다. Start 시점에 생성됩니다.
	sender *slack.Service

	// slackOpts 전송기 생성 시 전달할 옵션입니다. (테스트에서 트랜스포트 주입 등)
	slackOpts []slack.Option

	// historyStore 채널별 발송 이력을 기록하는 저장소입니다.
	historyStore contract.DeliveryHistoryStore

	// defaultChannelID 채널을 지정하지 않은 알림이 발송되는 기본 채널입니다.
	defaultChannelID contract.ChannelID

	running   bool
	runningMu sync.Mutex
}

// 컴파일 타임에 인터페이스 구현 여부를 검증합니다.
var (
	_ contract.NotificationSender        = (*Service)(nil)
	_ contract.NotificationHealthChecker = (*Service)(nil)
	_ contract.DeliveryHistoryProvider   = (*Service)(nil)
)

// NewService 새로운 Notification 서비스 인스턴스를 생성합니다.
//
// 전송기(slack.Service)는 이 시점이 아닌 Start 호출 시점에 설정으로부터 구성됩니다.
// slackOpts는 전송기 생성 시 그대로 전달되므로, 테스트에서 HTTP 트랜스포트나
// 진단 싱크를 교체할 때 사용할 수 있습니다.
func NewService(appConfig *config.AppConfig, historyStore contract.DeliveryHistoryStore, slackOpts ...slack.Option) *Service {
	return &Service{
		appConfig: appConfig,

		slackOpts: slackOpts,

		historyStore: historyStore,

		running:   false,
		runningMu: sync.Mutex{},
	}
}

// Start 알림 서비스를 시작하여 설정된 Slack 채널들을 활성화합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("Notification 서비스 시작중...")

	if s.historyStore == nil {
		defer serviceStopWG.Done()
		return ErrHistoryStoreNotInitialized
	}

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(component).Warn("Notification 서비스가 이미 시작됨!!!")
		return nil
	}

	// 1. 채널 레지스트리 구성
	// 동일한 채널 ID가 중복 정의된 경우 나중 항목이 이전 항목을 덮어씁니다. (Last-Write-Wins)
	// 중복은 오류가 아니지만, 운영자가 의도하지 않은 설정을 인지할 수 있도록 경고를 남깁니다.
	channels := make([]slack.Channel, 0, len(s.appConfig.Notification.Channels))
	seen := make(map[string]config.ChannelConfig, len(s.appConfig.Notification.Channels))
	for _, c := range s.appConfig.Notification.Channels {
		if prev, exists := seen[c.ID]; exists {
			applog.WithComponentAndFields(component, applog.Fields{
				"channel_id":              c.ID,
				"overwritten_webhook_url": strutil.Mask(prev.WebhookURL),
			}).Warn("중복된 채널 ID가 감지되어 이전 채널 정의를 덮어씁니다 (Last-Write-Wins)")
		}
		seen[c.ID] = c

		channels = append(channels, slack.Channel{
			Reference:  c.ID,
			WebhookURL: c.WebhookURL,
		})
	}

	// 2. Slack 전송기 생성
	sender := slack.NewService(slack.Config{
		Channels:       channels,
		DefaultChannel: s.appConfig.Notification.DefaultChannel,
		SendToSlack:    s.appConfig.Notification.SendToSlack,
		Verbose:        s.appConfig.Notification.Verbose,
	}, s.slackOpts...)

	// 3. 기본 채널 존재 여부 확인
	// 설정 검증 단계에서 이미 확인되지만, 서비스는 자신의 필수 조건을 스스로 보장합니다.
	if _, err := sender.Resolve(sender.DefaultChannel()); err != nil {
		defer serviceStopWG.Done()
		return NewErrDefaultChannelNotFound(sender.DefaultChannel())
	}

	s.sender = sender
	s.defaultChannelID = contract.ChannelID(sender.DefaultChannel())

	for _, reference := range sender.Channels() {
		applog.WithComponentAndFields(component, applog.Fields{
			"channel_id": reference,
		}).Debug("Slack 채널이 Notification 서비스에 등록됨")
	}

	// 4. 서비스 종료 감시 루틴 실행
	go s.waitForShutdown(serviceStopCtx, serviceStopWG)

	s.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"registered_channels": len(sender.Channels()),
		"default_channel":     sender.DefaultChannel(),
		"send_to_slack":       s.appConfig.Notification.SendToSlack,
	}).Info("Notification 서비스 시작됨")

	return nil
}

// waitForShutdown 서비스의 종료 신호를 감지하고 리소스를 안전하게 정리합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	<-serviceStopCtx.Done()

	applog.WithComponent(component).Info("Notification 서비스 중지중...")

	s.runningMu.Lock()
	s.running = false
	s.sender = nil
	s.runningMu.Unlock()

	applog.WithComponent(component).Info("Notification 서비스 중지됨")
}

// Notify 지정된 채널로 알림 메시지를 발송합니다.
//
// 발송은 동기적으로 수행되며, Slack 전송이 완료(또는 실패)된 후에야 반환됩니다.
// 발송 결과는 성공/실패 여부와 관계없이 채널별 발송 이력에 기록됩니다.
func (s *Service) Notify(ctx context.Context, n contract.Notification) error {
	sender, err := s.senderSnapshot()
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"channel_id": n.ChannelID,
		}).Warn("Notification 서비스가 실행 중이 아니어서 메시지를 전송할 수 없습니다")

		return err
	}

	if strings.TrimSpace(n.Message) == "" {
		return contract.ErrMessageRequired
	}

	channelID := n.ChannelID
	if channelID.IsEmpty() {
		channelID = s.defaultChannelID
	}

	// 등록되지 않은 채널로의 발송 요청은 거부하되, 관리자가 설정 오류를 인지할 수 있도록
	// 기본 채널로 안내 알림을 발송합니다. (안내 발송의 실패는 무시)
	if _, err := sender.Resolve(channelID.String()); err != nil {
		m := fmt.Sprintf("알 수 없는 채널('%s')입니다. 알림 메시지 발송이 실패하였습니다.(Message:%s)", channelID, n.Message)

		applog.WithComponentAndFields(component, applog.Fields{
			"channel_id": channelID,
		}).Error(m)

		_ = s.deliver(ctx, sender, s.defaultChannelID, contract.Notification{
			Message:       m,
			ErrorOccurred: true,
		})

		return ErrChannelNotFound
	}

	return s.deliver(ctx, sender, channelID, n)
}

// NotifyBlocks 사전에 구성된 Block Kit 블록 배열(JSON)을 지정된 채널로 발송합니다.
//
// Notify와 달리 제목/본문 조립과 푸터 추가를 수행하지 않고 블록을 그대로 전달하며,
// 발송 결과는 블록 원문을 본문으로 하여 발송 이력에 기록됩니다.
func (s *Service) NotifyBlocks(ctx context.Context, channelID contract.ChannelID, blocksJSON []byte) error {
	sender, err := s.senderSnapshot()
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"channel_id": channelID,
		}).Warn("Notification 서비스가 실행 중이 아니어서 블록 메시지를 전송할 수 없습니다")

		return err
	}

	var blocks []slack.Block
	if err := json.Unmarshal(blocksJSON, &blocks); err != nil {
		return contract.ErrBlocksRequired
	}
	if len(blocks) == 0 {
		return contract.ErrBlocksRequired
	}

	if channelID.IsEmpty() {
		channelID = s.defaultChannelID
	}

	// 블록 발송은 API 핸들러처럼 즉시 응답을 받는 호출자가 사용하므로,
	// 알 수 없는 채널에 대해 기본 채널로의 안내 알림은 발송하지 않습니다.
	if _, err := sender.Resolve(channelID.String()); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"channel_id": channelID,
		}).Error("알 수 없는 채널로의 블록 메시지 발송 요청이 거부되었습니다")

		return ErrChannelNotFound
	}

	sendErr := sender.SendMessage(ctx, channelID.String(), blocks)

	s.recordDelivery(channelID, contract.Notification{
		Message: string(blocksJSON),
	}, sendErr)

	return sendErr
}

// NotifyDefault 시스템 기본 채널로 알림 메시지를 발송합니다.
func (s *Service) NotifyDefault(ctx context.Context, message string) error {
	return s.Notify(ctx, contract.Notification{
		Message: message,
	})
}

// NotifyDefaultWithError 시스템 기본 채널로 "오류" 알림 메시지를 발송합니다.
// 시스템 오류, 작업 실패 등 관리자의 주의가 필요한 상황에서 사용합니다.
func (s *Service) NotifyDefaultWithError(ctx context.Context, message string, cause error) error {
	if cause != nil {
		message = fmt.Sprintf("%s: %v", message, cause)
	}

	return s.Notify(ctx, contract.Notification{
		Message:       message,
		ErrorOccurred: true,
	})
}

// Health 서비스가 정상적으로 실행 중인지 확인합니다.
func (s *Service) Health() error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return ErrServiceNotRunning
	}

	return nil
}

// History 지정된 채널의 최근 발송 이력을 최신순으로 반환합니다.
//
// 등록되지 않은 채널이면 ErrChannelNotFound를 반환하고,
// 등록된 채널이지만 아직 발송 이력이 없으면 빈 슬라이스를 반환합니다.
func (s *Service) History(channelID contract.ChannelID) ([]contract.DeliveryRecord, error) {
	sender, err := s.senderSnapshot()
	if err != nil {
		return nil, err
	}

	if _, err := sender.Resolve(channelID.String()); err != nil {
		return nil, ErrChannelNotFound
	}

	records, err := s.historyStore.Load(channelID)
	if err != nil {
		if errors.Is(err, contract.ErrDeliveryHistoryNotFound) {
			return []contract.DeliveryRecord{}, nil
		}
		return nil, err
	}

	return records, nil
}

// deliver 알림 메시지를 블록으로 구성하여 전송하고, 그 결과를 발송 이력에 기록합니다.
func (s *Service) deliver(ctx context.Context, sender *slack.Service, channelID contract.ChannelID, n contract.Notification) error {
	message := n.Message
	if n.ErrorOccurred {
		message = fmt.Sprintf("%s %s", mark.Alert, message)
	}

	// 제목이 있으면 "굵은 제목 + 본문" 형태로, 없으면 본문만으로 블록을 구성하고
	// 발신 서버를 식별할 수 있도록 하단에 푸터를 추가합니다.
	var blocks []slack.Block
	if strings.TrimSpace(n.Title) != "" {
		blocks = slack.MessageBlocks(n.Title, message)
	} else {
		blocks = []slack.Block{slack.SectionBlock(message)}
	}
	blocks = append(blocks, slack.FooterBlock(config.AppName))

	sendErr := sender.SendMessage(ctx, channelID.String(), blocks)

	s.recordDelivery(channelID, n, sendErr)

	return sendErr
}

// recordDelivery 발송 결과를 채널별 이력 저장소에 기록합니다.
// 이력 저장 실패는 로그만 남기며, 알림 발송 결과에는 영향을 주지 않습니다.
func (s *Service) recordDelivery(channelID contract.ChannelID, n contract.Notification, sendErr error) {
	record := contract.DeliveryRecord{
		Title:         n.Title,
		Message:       n.Message,
		ErrorOccurred: n.ErrorOccurred,
		Succeeded:     sendErr == nil,
		StatusCode:    deliveryStatusCode(s.appConfig.Notification.SendToSlack, sendErr),
		SentAt:        time.Now(),
	}

	if err := s.historyStore.Append(channelID, record); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"channel_id": channelID,
			"error":      err,
		}).Warn("발송 이력 기록 실패: 저장소 쓰기 중 오류가 발생했습니다")
	}
}

// senderSnapshot 현재 실행 중인 전송기를 반환합니다.
//
// 전송기는 생성 이후 불변이므로, 락은 스냅샷을 얻는 동안만 유지하고
// 실제 전송(네트워크 I/O)은 락 없이 수행합니다. 이를 통해 여러 알림을
// 동시에 발송할 수 있고, 전송 중에도 서비스 종료가 지연되지 않습니다.
func (s *Service) senderSnapshot() (*slack.Service, error) {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running || s.sender == nil {
		return nil, ErrServiceNotRunning
	}

	return s.sender, nil
}

// deliveryStatusCode 발송 결과로부터 이력에 기록할 HTTP 상태 코드를 결정합니다.
//
// Slack 웹훅은 성공 시 항상 200 OK를 반환하므로 성공한 실제 전송은 200으로 기록합니다.
// Dry-Run 모드이거나 HTTP 요청 자체가 실패한 경우는 상태 코드가 없으므로 0입니다.
func deliveryStatusCode(sendToSlack bool, sendErr error) int {
	if sendErr == nil {
		if sendToSlack {
			return http.StatusOK
		}
		return 0
	}

	var deliveryErr *slack.DeliveryError
	if errors.As(sendErr, &deliveryErr) {
		return deliveryErr.StatusCode
	}

	return 0
}
