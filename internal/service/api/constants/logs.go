package constants

// 내부 로깅을 위한 메시지 상수입니다.
const (
	// ------------------------------------------------------------------------------------------------
	// 서비스 생명주기
	// ------------------------------------------------------------------------------------------------

	LogMsgServiceStarting       = "API 서비스 시작중..."
	LogMsgServiceStarted        = "API 서비스 시작됨"
	LogMsgServiceAlreadyStarted = "API 서비스가 이미 시작됨!!!"
	LogMsgServiceStopping       = "API 서비스 중지중..."
	LogMsgServiceStopped        = "API 서비스 중지됨"
	LogMsgServiceUnexpectedExit = "API 서비스가 예기치 않게 종료되었습니다"

	LogMsgServiceHTTPServerStarting      = "API 서비스 > http 서버 시작"
	LogMsgServiceHTTPServerStopped       = "API 서비스 > http 서버 중지됨"
	LogMsgServiceHTTPServerShutdownError = "API 서비스 > http 서버 종료 중 오류 발생"
	LogMsgServiceHTTPServerFatalError    = "API 서비스 > http 서버를 구성하는 중에 치명적인 오류가 발생하였습니다."

	// ------------------------------------------------------------------------------------------------
	// 시스템 엔드포인트
	// ------------------------------------------------------------------------------------------------

	LogMsgHealthCheck = "헬스체크 요청 수신"
	LogMsgVersionInfo = "버전 정보 요청 수신"

	// ------------------------------------------------------------------------------------------------
	// v1 엔드포인트
	// ------------------------------------------------------------------------------------------------

	LogMsgNotificationPublished = "알림 메시지 발송 완료"
	LogMsgNotificationFailed    = "알림 메시지 발송 실패"
	LogMsgBlocksPublished       = "블록 메시지 발송 완료"
	LogMsgBlocksFailed          = "블록 메시지 발송 실패"
	LogMsgChannelListRequested  = "채널 목록 요청 수신"
	LogMsgHistoryRequested      = "발송 이력 요청 수신"
	LogMsgHistoryFailed         = "발송 이력 조회 실패"

	// ------------------------------------------------------------------------------------------------
	// 요청 처리
	// ------------------------------------------------------------------------------------------------

	LogMsgUnsupportedContentType = "지원하지 않는 Content-Type의 요청이 거부되었습니다"
	LogMsgDeprecatedEndpointUsed = "Deprecated API 엔드포인트 사용됨"
	LogMsgHTTP4xxClientError     = "HTTP 클라이언트 요청 오류"
	LogMsgHTTP5xxServerError     = "HTTP 서버 내부 오류"
)
