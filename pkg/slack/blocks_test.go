package slack

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Block Builder Tests
// =============================================================================

// TestDividerBlock은 구분선 블록의 구조와 직렬화 형태를 검증합니다.
func TestDividerBlock(t *testing.T) {
	t.Parallel()

	block := DividerBlock()

	assert.Equal(t, BlockTypeDivider, block.Type)
	assert.Nil(t, block.Text, "구분선 블록은 텍스트를 가지지 않아야 합니다")
	assert.Nil(t, block.Elements)

	// 와이어 포맷: type 외의 필드는 직렬화되지 않아야 함
	data, err := json.Marshal(block)
	require.NoError(t, err)
	assert.Equal(t, `{"type":"divider"}`, string(data))
}

// TestSectionBlock은 Section 블록의 구조와 직렬화 형태를 검증합니다.
func TestSectionBlock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		wantJSON string
	}{
		{
			name:     "Plain Text",
			text:     "배포가 완료되었습니다",
			wantJSON: `{"type":"section","text":{"type":"mrkdwn","text":"배포가 완료되었습니다"}}`,
		},
		{
			name:     "Pre-formatted Bold Text",
			text:     BoldText("Hi"),
			wantJSON: `{"type":"section","text":{"type":"mrkdwn","text":"*Hi*"}}`,
		},
		{
			name:     "Empty Text",
			text:     "",
			wantJSON: `{"type":"section","text":{"type":"mrkdwn","text":""}}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			block := SectionBlock(tt.text)

			assert.Equal(t, BlockTypeSection, block.Type)
			require.NotNil(t, block.Text)
			assert.Equal(t, TextTypeMrkdwn, block.Text.Type)
			assert.Equal(t, tt.text, block.Text.Text, "입력 문자열은 이스케이프 없이 그대로 유지되어야 합니다")

			data, err := json.Marshal(block)
			require.NoError(t, err)
			assert.Equal(t, tt.wantJSON, string(data))
		})
	}
}

// TestFooterBlock은 Context 블록으로 직렬화되는 푸터 블록을 검증합니다.
func TestFooterBlock(t *testing.T) {
	t.Parallel()

	block := FooterBlock("slack-notify-server")

	assert.Equal(t, BlockTypeContext, block.Type)
	assert.Nil(t, block.Text)
	require.Len(t, block.Elements, 1)
	assert.Equal(t, TextTypeMrkdwn, block.Elements[0].Type)
	assert.Equal(t, "slack-notify-server", block.Elements[0].Text)

	data, err := json.Marshal(block)
	require.NoError(t, err)
	assert.Equal(t, `{"type":"context","elements":[{"type":"mrkdwn","text":"slack-notify-server"}]}`, string(data))
}

// TestMessageBlocks는 제목 + 본문 조합 헬퍼를 검증합니다.
func TestMessageBlocks(t *testing.T) {
	t.Parallel()

	blocks := MessageBlocks("배포 알림", "v1.2.3 릴리스가 반영되었습니다")

	require.Len(t, blocks, 1, "단일 Section 블록만 생성되어야 합니다")
	require.NotNil(t, blocks[0].Text)
	assert.Equal(t, BlockTypeSection, blocks[0].Type)
	assert.Equal(t, "*배포 알림*\nv1.2.3 릴리스가 반영되었습니다", blocks[0].Text.Text,
		"제목은 굵게, 본문은 다음 줄에 배치되어야 합니다")
}

// =============================================================================
// Text Helper Tests
// =============================================================================

// TestTextHelpers_TableDriven은 mrkdwn 텍스트 헬퍼들의 변환 규칙을 검증합니다.
//
// 검증 항목:
//   - 구분 기호가 정확히 한 겹만 추가되는지 (입력 문자열 무변형)
//   - 빈 문자열 처리
//   - 이미 포맷팅된 문자열에 대한 중첩 동작
func TestTextHelpers_TableDriven(t *testing.T) {
	t.Parallel()

	t.Run("BoldText", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			input string
			want  string
		}{
			{"x", "*x*"},
			{"", "**"},
			{"여러 단어 문장", "*여러 단어 문장*"},
			{"*x*", "**x**"}, // 중첩 호출 시에도 정확히 한 겹만 추가
		}
		for _, tt := range tests {
			assert.Equal(t, tt.want, BoldText(tt.input))
		}
	})

	t.Run("ItalicText", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			input string
			want  string
		}{
			{"x", "_x_"},
			{"", "__"},
			{"기울임 텍스트", "_기울임 텍스트_"},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.want, ItalicText(tt.input))
		}
	})

	t.Run("URLLink", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "<https://example.com|예시 링크>", URLLink("https://example.com", "예시 링크"))
		assert.Equal(t, "<|>", URLLink("", ""))
	})

	t.Run("Purity - 동일 입력에 대해 항상 동일한 출력", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, BoldText("x"), BoldText("x"))
		assert.Equal(t, ItalicText("x"), ItalicText("x"))
		assert.Equal(t, URLLink("u", "t"), URLLink("u", "t"))
	})
}

// TestListHelpers는 목록 포맷팅 헬퍼들을 검증합니다.
func TestListHelpers(t *testing.T) {
	t.Parallel()

	t.Run("BulletList", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name  string
			items []string
			want  string
		}{
			{"Empty", nil, ""},
			{"Single Item", []string{"첫 번째"}, "• 첫 번째"},
			{"Multiple Items", []string{"a", "b", "c"}, "• a\n• b\n• c"},
		}
		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				assert.Equal(t, tt.want, BulletList(tt.items))
			})
		}
	})

	t.Run("NumberedList", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name  string
			items []string
			want  string
		}{
			{"Empty", nil, ""},
			{"Single Item", []string{"첫 번째"}, "1. 첫 번째"},
			{"Numbering Starts At One", []string{"a", "b", "c"}, "1. a\n2. b\n3. c"},
		}
		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				assert.Equal(t, tt.want, NumberedList(tt.items))
			})
		}
	})
}

// TestPayload_WireFormat은 페이로드의 최상위 와이어 포맷을 검증합니다.
//
// blocks는 유일한 최상위 키이며, 블록 순서는 슬라이스 순서 그대로 유지되어야 합니다.
func TestPayload_WireFormat(t *testing.T) {
	t.Parallel()

	payload := Payload{
		Blocks: []Block{
			DividerBlock(),
			SectionBlock(BoldText("Hi")),
		},
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.Equal(t,
		`{"blocks":[{"type":"divider"},{"type":"section","text":{"type":"mrkdwn","text":"*Hi*"}}]}`,
		string(data))
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkSectionBlock(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = SectionBlock("벤치마크 텍스트")
	}
}

func BenchmarkMessageBlocks(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = MessageBlocks("제목", "본문")
	}
}
