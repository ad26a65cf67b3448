package constants

// URL 쿼리 파라미터 키 상수입니다.
const (
	// QueryParamAppKey 애플리케이션 인증용 쿼리 파라미터 키 (레거시)
	QueryParamAppKey = "app_key"
)

// HTTP 헤더 키 상수입니다.
const (
	// ------------------------------------------------------------------------------------------------
	// 인증
	// ------------------------------------------------------------------------------------------------

	// HeaderXAppKey 애플리케이션 인증용 HTTP 헤더 키 (권장 방식)
	HeaderXAppKey = "X-App-Key"

	// HeaderXApplicationID 애플리케이션 식별용 HTTP 헤더 키 (성능 최적화 및 GET 요청용)
	// 이 헤더가 존재하면 Body 파싱을 건너뛰고 헤더 값으로 인증합니다.
	HeaderXApplicationID = "X-Application-Id"

	// ------------------------------------------------------------------------------------------------
	// Deprecated 엔드포인트
	// ------------------------------------------------------------------------------------------------

	// HeaderWarning RFC 7234 표준 Warning 헤더 (deprecated 엔드포인트 경고용)
	HeaderWarning = "Warning"

	// HeaderXAPIDeprecated deprecated 상태 표시용 커스텀 헤더
	HeaderXAPIDeprecated = "X-API-Deprecated"

	// HeaderXAPIDeprecatedReplacement 대체 엔드포인트 표시용 커스텀 헤더
	HeaderXAPIDeprecatedReplacement = "X-API-Deprecated-Replacement"
)

// URL 경로 파라미터 키 상수입니다.
const (
	// PathParamChannel 발송 이력 조회 대상 채널을 지정하는 경로 파라미터 키
	PathParamChannel = "channel"
)

// Context 키 상수입니다.
const (
	// ContextKeyApplication 인증된 Application 객체 저장용 Context 키
	// 다른 미들웨어/라이브러리와의 키 충돌을 피하기 위해 모듈 경로로 네임스페이스를 지정합니다.
	ContextKeyApplication = "darkkaiser/slack-notify-server/api/auth/AuthenticatedApplication"
)
