package constants

import "time"

// 서버 설정 기본값 상수입니다.
const (
	// DefaultRequestTimeout HTTP 요청 처리의 기본 타임아웃 시간 (60초)
	// 별도의 타임아웃 설정이 없는 경우 이 값이 적용되며, 요청 처리가 이 시간을 초과하면
	// 자동으로 취소되어 서버 리소스를 보호합니다.
	DefaultRequestTimeout = 60 * time.Second

	// DefaultReadTimeout 요청 전체(헤더 + 본문)를 읽는 데 허용되는 최대 시간 (30초)
	DefaultReadTimeout = 30 * time.Second

	// DefaultWriteTimeout 응답 쓰기에 허용되는 최대 시간 (60초)
	// 요청 처리 타임아웃(DefaultRequestTimeout)과 동일하게 설정하여,
	// 처리 지연으로 인한 응답까지 정상적으로 전송될 수 있도록 합니다.
	DefaultWriteTimeout = 60 * time.Second

	// DefaultIdleTimeout Keep-Alive 연결이 다음 요청을 기다리며 유휴 상태로 유지될 수 있는 최대 시간 (120초)
	DefaultIdleTimeout = 120 * time.Second
)

// Rate Limiting 기본값 상수입니다.
const (
	// DefaultRateLimitPerSecond IP당 초당 허용 요청 수
	DefaultRateLimitPerSecond = 20

	// DefaultRateLimitBurst IP당 순간 허용되는 최대 버스트 요청 수
	DefaultRateLimitBurst = 40
)
