package cronx

import (
	"fmt"
	"strings"
)

// Validate 주어진 Cron 표현식이 애플리케이션 표준 스펙에 부합하는지 검사합니다.
//
// StandardParser와 동일한 6필드 확장 형식(초 단위 포함)을 기준으로 하며,
// 앞뒤 공백은 제거한 뒤 검사합니다. 파싱에 실패하면 원인 에러를 래핑하여 반환합니다.
func Validate(spec string) error {
	if _, err := StandardParser().Parse(strings.TrimSpace(spec)); err != nil {
		return fmt.Errorf("Cron 표현식 파싱 실패(spec=%q): %w", spec, err)
	}
	return nil
}
