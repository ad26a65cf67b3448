// Package mark 알림 메시지 전반에서 사용되는 이모지 상수를 중앙 관리하는 패키지입니다.
package mark

import "fmt"

// Mark 이모지 상수를 위한 타입입니다.
type Mark string

const (
	// 성공/완료
	Success Mark = "✅"

	// 경고
	Warning Mark = "⚠️"

	// 긴급/오류
	Alert Mark = "🚨"

	// 안내/정보
	Info Mark = "ℹ️"
)

// all 정의된 모든 마크 목록입니다.
// 새로운 마크 상수를 추가할 때는 반드시 이 목록에도 등록해야 합니다.
var all = []Mark{Success, Warning, Alert, Info}

// Values 정의된 모든 마크의 복사본 슬라이스를 반환합니다.
//
// 반환된 슬라이스는 호출 시마다 새로 생성되므로, 호출 측에서 수정해도
// 내부 상태에는 영향을 주지 않습니다.
func Values() []Mark {
	values := make([]Mark, len(all))
	copy(values, all)
	return values
}

// Parse 문자열을 Mark로 파싱합니다.
//
// 정의되지 않은 값이거나 공백 등이 포함된 순수하지 않은 데이터인 경우 에러를 반환합니다.
func Parse(s string) (Mark, error) {
	m := Mark(s)
	if !m.IsValid() {
		return "", fmt.Errorf("정의되지 않은 마크입니다 (input=%q)", s)
	}
	return m, nil
}

// IsValid 정의된 마크인지 확인합니다.
func (m Mark) IsValid() bool {
	for _, v := range all {
		if m == v {
			return true
		}
	}
	return false
}

// WithSpace 마크(이모지) 앞에 구분용 공백을 추가하여 반환합니다.
func (m Mark) WithSpace() string {
	if m == "" {
		return ""
	}
	return " " + string(m)
}

// String 마크의 순수 이모지 값을 문자열로 반환합니다.
func (m Mark) String() string {
	return string(m)
}
