package notification

import (
	"fmt"

	apperrors "github.com/darkkaiser/slack-notify-server/internal/pkg/errors"
)

var (
	// ErrServiceNotRunning 시스템 종료 절차가 진행 중이거나, 필수 컴포넌트가 초기화되지 않아 알림 요청을 처리할 수 없는 경우 반환하는 에러입니다.
	ErrServiceNotRunning = apperrors.New(apperrors.Unavailable, "시스템 종료 절차가 진행 중이거나, 초기화되지 않아 알림을 보낼 수 없습니다")

	// ErrChannelNotFound 지정된 알림 채널을 찾을 수 없거나, 설정 파일에 등록되지 않은 채널 ID가 요청되었을 때 반환하는 에러입니다.
	ErrChannelNotFound = apperrors.New(apperrors.NotFound, "등록되지 않은 알림 채널입니다. 설정 파일을 확인해 주세요")

	// ErrHistoryStoreNotInitialized 서비스 시작 시 필수 컴포넌트인 발송 이력 저장소가 초기화되지 않았을 때 반환하는 에러입니다.
	ErrHistoryStoreNotInitialized = apperrors.New(apperrors.Internal, "발송 이력 저장소가 초기화되지 않았습니다")
)

// NewErrDefaultChannelNotFound 시스템 필수 설정인 기본 채널 ID가 누락되었거나 찾을 수 없을 때 반환하는 에러를 생성합니다.
func NewErrDefaultChannelNotFound(id string) error {
	return apperrors.New(apperrors.NotFound, fmt.Sprintf("기본 채널('%s')을 찾을 수 없습니다", id))
}
