/*
Package slack Slack Incoming Webhook을 통해 구조화된 알림 메시지를 전송하는 클라이언트 라이브러리입니다.

채널 참조(Reference)와 웹훅 URL의 매핑을 관리하는 채널 레지스트리,
Slack Block Kit 스키마를 직접 다루지 않고도 메시지를 구성할 수 있는 블록 빌더,
그리고 구성된 블록을 JSON 페이로드로 직렬화하여 전송하는 단일 동기 전송 연산을 제공합니다.

주요 특징:

  - 채널 레지스트리: 참조 문자열로 웹훅 URL을 조회하며, 동일 참조가 중복 정의된 경우
    뒤에 정의된 항목이 앞의 항목을 덮어씁니다. (Last-Write-Wins)
  - 블록 빌더: Divider/Section/Footer 블록과 mrkdwn 텍스트 헬퍼(굵게, 기울임, 링크, 목록)를
    순수 함수로 제공합니다.
  - Dry-Run 모드: SendToSlack을 끄면 네트워크 호출 없이 구성 로직만 수행하고
    진단 싱크에 페이로드를 기록합니다.
  - 전송 정책: 재시도/큐잉/비동기 처리 없이 요청당 한 번의 동기 HTTP POST만 수행하며,
    모든 실패는 호출자에게 그대로 전파됩니다.

사용 예시:

	service := slack.NewService(slack.Config{
	    Channels: []slack.Channel{
	        {Reference: "alerts", WebhookURL: "https://hooks.slack.com/services/..."},
	    },
	    SendToSlack: true,
	})

	blocks := []slack.Block{
	    slack.SectionBlock(slack.BoldText("배포 완료")),
	    slack.DividerBlock(),
	    slack.FooterBlock("slack-notify-server"),
	}
	if err := service.SendMessage(ctx, "alerts", blocks); err != nil {
	    // *UnknownChannelError 또는 *DeliveryError
	}

구성(Config)과 레지스트리는 생성 이후 불변이므로, 여러 고루틴에서 동시에
SendMessage를 호출해도 별도의 잠금 없이 안전합니다.
*/
package slack
