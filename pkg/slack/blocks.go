package slack

import (
	"fmt"
	"strings"
)

// 블록 및 텍스트 오브젝트의 type 판별자 값입니다. (Slack Block Kit 스키마)
const (
	BlockTypeDivider = "divider"
	BlockTypeSection = "section"
	BlockTypeContext = "context"

	TextTypeMrkdwn    = "mrkdwn"
	TextTypePlainText = "plain_text"
)

// TextObject Slack 블록 내부의 텍스트 구성 요소입니다.
type TextObject struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Block Slack 메시지를 구성하는 하나의 시각적 단위입니다.
//
// type 판별자와 블록 종류별 필드만 직렬화되도록 선택적 멤버에는 omitempty가
// 지정되어 있습니다. 블록은 단일 전송 호출에서 소비되는 값이며, 별도의
// 식별자나 생명주기를 가지지 않습니다.
type Block struct {
	Type     string       `json:"type"`
	Text     *TextObject  `json:"text,omitempty"`
	Elements []TextObject `json:"elements,omitempty"`
}

// DividerBlock 수평 구분선 블록을 생성합니다.
func DividerBlock() Block {
	return Block{Type: BlockTypeDivider}
}

// SectionBlock mrkdwn 텍스트를 포함하는 Section 블록을 생성합니다.
//
// text에는 BoldText, ItalicText 등의 헬퍼로 미리 포맷팅된 문자열을
// 전달할 수 있으며, 입력 문자열은 이스케이프 없이 그대로 사용됩니다.
func SectionBlock(text string) Block {
	return Block{
		Type: BlockTypeSection,
		Text: &TextObject{Type: TextTypeMrkdwn, Text: text},
	}
}

// FooterBlock 메시지 하단에 낮은 시각적 강조로 표시되는 Context 블록을 생성합니다.
func FooterBlock(label string) Block {
	return Block{
		Type:     BlockTypeContext,
		Elements: []TextObject{{Type: TextTypeMrkdwn, Text: label}},
	}
}

// MessageBlocks 제목과 본문으로 구성된 가장 일반적인 메시지 블록 목록을 생성합니다.
//
// 제목은 굵게 표시되며, 본문은 제목 다음 줄에 이어집니다.
func MessageBlocks(title, message string) []Block {
	return []Block{
		SectionBlock(fmt.Sprintf("%s\n%s", BoldText(title), message)),
	}
}

// BoldText 문자열을 Slack mrkdwn 굵은 글씨(*text*)로 감쌉니다.
//
// 입력 문자열은 변형하지 않고 구분 기호만 정확히 한 겹 추가하는 순수 함수입니다.
func BoldText(s string) string {
	return fmt.Sprintf("*%s*", s)
}

// ItalicText 문자열을 Slack mrkdwn 기울임 글씨(_text_)로 감쌉니다.
func ItalicText(s string) string {
	return fmt.Sprintf("_%s_", s)
}

// URLLink Slack mrkdwn 링크 문법(<url|text>)으로 포맷팅합니다.
func URLLink(url, text string) string {
	return fmt.Sprintf("<%s|%s>", url, text)
}

// BulletList 항목들을 글머리표(•) 목록 문자열로 변환합니다.
// 각 항목은 새 줄로 구분됩니다.
func BulletList(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("• %s", item))
	}
	return strings.Join(lines, "\n")
}

// NumberedList 항목들을 번호(1부터 시작) 목록 문자열로 변환합니다.
// 각 항목은 새 줄로 구분됩니다.
func NumberedList(items []string) string {
	lines := make([]string, 0, len(items))
	for i, item := range items {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, item))
	}
	return strings.Join(lines, "\n")
}
