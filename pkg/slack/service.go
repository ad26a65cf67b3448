package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	applog "github.com/darkkaiser/slack-notify-server/pkg/log"
)

const (
	// defaultHTTPTimeout 별도의 HTTP 클라이언트를 주입하지 않았을 때 적용되는 전송 제한 시간입니다.
	defaultHTTPTimeout = 10 * time.Second

	// maxBodySnippetSize DeliveryError에 담는 응답 본문의 최대 크기입니다.
	// Slack 웹훅의 오류 응답("invalid_payload" 등)은 짧은 문자열이므로 이 정도면 충분합니다.
	maxBodySnippetSize = 512
)

// Payload 웹훅으로 전송되는 최상위 JSON 문서입니다.
// 유일한 최상위 키는 blocks이며, 슬라이스의 블록 순서가 그대로 유지됩니다.
type Payload struct {
	Blocks []Block `json:"blocks"`
}

// Sender 메시지 전송 능력을 표현하는 최소 인터페이스입니다.
//
// 고수준 조합 헬퍼가 필요한 소비자는 상속 대신 이 인터페이스와
// 패키지의 블록 빌더 함수들을 조합하여 구현합니다.
type Sender interface {
	SendMessage(ctx context.Context, channelReference string, blocks []Block) error
}

// Sink 진단 메시지 한 줄을 기록하는 협력자입니다.
//
// Verbose 모드와 Dry-Run 모드에서만 사용되며, 기록 대상(콘솔, 로그 파일 등)은
// 구현체가 결정합니다.
type Sink interface {
	WriteLine(line string)
}

// SinkFunc 함수를 Sink 인터페이스로 사용할 수 있게 하는 어댑터입니다.
type SinkFunc func(line string)

// WriteLine Sink 인터페이스를 구현합니다.
func (f SinkFunc) WriteLine(line string) {
	f(line)
}

// logSink 애플리케이션 로거로 진단 메시지를 기록하는 기본 싱크입니다.
type logSink struct{}

func (logSink) WriteLine(line string) {
	applog.WithComponent("slack").Info(line)
}

// HTTPDoer HTTP 요청을 수행하는 트랜스포트 추상화입니다.
// *http.Client가 이 인터페이스를 만족하며, 테스트에서는 스파이 구현체를 주입할 수 있습니다.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Service 채널 레지스트리를 소유하고 메시지 전송을 수행하는 Slack 알림 서비스입니다.
//
// 모든 필드는 생성 이후 불변이므로, 여러 고루틴에서 동시에 사용해도 안전합니다.
type Service struct {
	registry       map[string]string
	defaultChannel string
	sendToSlack    bool
	verbose        bool

	client HTTPDoer
	sink   Sink
}

// Option Service 생성 시 협력자를 교체하기 위한 함수형 옵션 타입입니다.
type Option func(*Service)

// WithHTTPDoer 전송에 사용할 HTTP 트랜스포트를 지정합니다. (기본값: 10초 제한의 *http.Client)
func WithHTTPDoer(doer HTTPDoer) Option {
	return func(s *Service) {
		if doer != nil {
			s.client = doer
		}
	}
}

// WithSink 진단 메시지를 기록할 싱크를 지정합니다. (기본값: 애플리케이션 로거)
func WithSink(sink Sink) Option {
	return func(s *Service) {
		if sink != nil {
			s.sink = sink
		}
	}
}

// NewService 주어진 설정으로 Slack 알림 서비스를 생성합니다.
//
// 채널 레지스트리는 Channels를 순서대로 순회하며 구성되고, 동일한 참조가
// 중복 정의된 경우 뒤의 항목이 앞의 항목을 덮어씁니다. (Last-Write-Wins)
// 등록되지 않은 채널 참조에 대한 검사는 생성 시점이 아닌 전송 시점에 수행되므로,
// 생성은 항상 성공합니다.
func NewService(config Config, opts ...Option) *Service {
	registry := make(map[string]string, len(config.Channels))
	for _, channel := range config.Channels {
		registry[channel.Reference] = channel.WebhookURL
	}

	s := &Service{
		registry:       registry,
		defaultChannel: config.DefaultChannel,
		sendToSlack:    config.SendToSlack,
		verbose:        config.Verbose,
		client:         &http.Client{Timeout: defaultHTTPTimeout},
		sink:           logSink{},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	if s.verbose {
		s.sink.WriteLine(fmt.Sprintf("Slack 알림 서비스가 다음 채널들로 초기화되었습니다: %s", strings.Join(s.Channels(), ", ")))
	}

	return s
}

// Resolve 채널 참조를 웹훅 URL로 변환합니다.
// 등록되지 않은 참조인 경우 *UnknownChannelError를 반환합니다.
func (s *Service) Resolve(channelReference string) (string, error) {
	webhookURL, exists := s.registry[channelReference]
	if !exists {
		return "", &UnknownChannelError{Reference: channelReference}
	}
	return webhookURL, nil
}

// Channels 등록된 모든 채널 참조를 정렬된 순서로 반환합니다.
func (s *Service) Channels() []string {
	references := make([]string, 0, len(s.registry))
	for reference := range s.registry {
		references = append(references, reference)
	}
	sort.Strings(references)
	return references
}

// DefaultChannel 설정된 기본 채널 참조를 반환합니다. 설정되지 않은 경우 빈 문자열입니다.
func (s *Service) DefaultChannel() string {
	return s.defaultChannel
}

// SendMessage 블록 목록을 지정된 채널로 전송합니다.
//
// 각 호출은 불변 설정에 대한 독립적이고 상태 없는 단일 트랜잭션입니다.
//
// 처리 순서:
//  1. 채널 참조를 웹훅 URL로 변환합니다. 실패 시 네트워크 호출 없이
//     *UnknownChannelError를 반환합니다.
//  2. blocks를 순서 그대로 담은 {"blocks": [...]} 페이로드를 구성합니다.
//     빈 목록도 유효한 메시지로 취급되어 전송이 시도됩니다.
//  3. Verbose 모드이면 전송 여부를 결정하기 전에 채널 참조와 직렬화된
//     페이로드를 진단 싱크에 기록합니다.
//  4. SendToSlack이 false이면 전송을 생략했다는 진단 메시지를 남기고
//     성공으로 종료합니다. (Dry-Run)
//  5. 웹훅 URL로 한 번의 동기 HTTP POST를 수행합니다. 재시도는 없습니다.
//  6. 2xx 응답이면 nil을, 전송 실패나 그 외 상태 코드면 *DeliveryError를 반환합니다.
func (s *Service) SendMessage(ctx context.Context, channelReference string, blocks []Block) error {
	webhookURL, err := s.Resolve(channelReference)
	if err != nil {
		return err
	}

	// nil 슬라이스도 와이어 상에서는 빈 배열로 직렬화되도록 정규화합니다.
	if blocks == nil {
		blocks = []Block{}
	}

	body, err := json.Marshal(Payload{Blocks: blocks})
	if err != nil {
		return fmt.Errorf("Slack 메시지 페이로드 직렬화 실패: %w", err)
	}

	if s.verbose {
		s.sink.WriteLine(fmt.Sprintf("[SLACK MESSAGE] %s : %s", channelReference, body))
	}

	if !s.sendToSlack {
		s.sink.WriteLine(fmt.Sprintf("[DUMMY SLACK MESSAGE] %s : %s", channelReference, body))
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return &DeliveryError{Reference: channelReference, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return &DeliveryError{Reference: channelReference, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodySnippetSize))
		return &DeliveryError{
			Reference:   channelReference,
			StatusCode:  resp.StatusCode,
			Status:      resp.Status,
			BodySnippet: strings.TrimSpace(string(snippet)),
		}
	}

	// Keep-Alive 연결 재사용을 위해 남은 본문을 소진합니다.
	_, _ = io.Copy(io.Discard, resp.Body)

	if s.verbose {
		s.sink.WriteLine(fmt.Sprintf("Slack 메시지 전송 성공 (channel=%s, status=%d)", channelReference, resp.StatusCode))
	}

	return nil
}
