package handler

import (
	"fmt"

	apperrors "github.com/darkkaiser/slack-notify-server/internal/pkg/errors"
	"github.com/darkkaiser/slack-notify-server/internal/service/api/constants"
	"github.com/darkkaiser/slack-notify-server/internal/service/api/httputil"
	applog "github.com/darkkaiser/slack-notify-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// NewErrAppIDMismatch 요청 본문(Body)의 Application ID와 인증 정보(Header/Query)가 불일치할 때 발생하는 보안 에러를 생성합니다.
func NewErrAppIDMismatch(reqAppID, authAppID string) error {
	return httputil.NewBadRequestError(fmt.Sprintf(constants.ErrMsgBadRequestAppIDMismatch, reqAppID, authAppID))
}

// NewErrInvalidBody 요청 본문(Body)의 데이터 형식이 올바르지 않거나(예: 잘못된 JSON), 파싱에 실패했을 때 발생하는 에러를 생성합니다.
func NewErrInvalidBody() error {
	return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidBody)
}

// NewErrValidationFailed 요청 데이터의 필수 값 누락, 형식 위반 등 유효성 검증(Validation)에 실패했을 때 발생하는 에러를 생성합니다.
func NewErrValidationFailed(msg string) error {
	return httputil.NewBadRequestError(msg)
}

// NewErrInvalidBlocks blocks 필드가 Block Kit 블록 배열의 형태를 갖추지 못했을 때 발생하는 에러를 생성합니다.
func NewErrInvalidBlocks() error {
	return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidBlocks)
}

// NewErrServiceStopped 서버 종료(Graceful Shutdown) 등으로 인해 서비스가 잠시 중지되었을 때 발생하는 에러를 생성합니다.
func NewErrServiceStopped() error {
	return httputil.NewServiceUnavailableError(constants.ErrMsgServiceUnavailable)
}

// NewErrServiceInterrupted 요청 처리 중 예기치 않은 시스템 오류나 인터럽트(Context Cancelled)가 발생했을 때 발생하는 에러를 생성합니다.
func NewErrServiceInterrupted() error {
	return httputil.NewInternalServerError(constants.ErrMsgInternalServerInterrupted)
}

// NewErrChannelNotFound 지정된 알림 채널을 찾을 수 없거나, 설정에 등록되지 않았을 때 발생하는 에러를 생성합니다.
func NewErrChannelNotFound() error {
	return httputil.NewNotFoundError(constants.ErrMsgNotFoundChannel)
}

// mapServiceError 알림 서비스 계층의 에러를 API 응답 에러로 변환합니다.
//
// 서비스 계층의 에러 타입에 따라 상태 코드를 결정하며, 분류되지 않은
// 에러(Slack 전송 실패, 저장소 오류 등)는 원인 보존을 위해 failureMsg와
// 함께 로그로 남긴 후 500 에러로 변환합니다.
func (h *Handler) mapServiceError(c echo.Context, err error, failureMsg string, fields applog.Fields) error {
	switch {
	case apperrors.Is(err, apperrors.Unavailable):
		return NewErrServiceStopped()
	case apperrors.Is(err, apperrors.NotFound):
		return NewErrChannelNotFound()
	case apperrors.Is(err, apperrors.InvalidInput):
		var appErr *apperrors.AppError
		if apperrors.As(err, &appErr) {
			return NewErrValidationFailed(appErr.Message())
		}
		return NewErrValidationFailed(constants.ErrMsgBadRequest)
	default:
		fields["error"] = err
		h.log(c).WithFields(fields).Error(failureMsg)

		return NewErrServiceInterrupted()
	}
}
