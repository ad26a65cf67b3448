// Package auth API 요청의 애플리케이션 인증을 담당합니다.
//
// 설정 파일에 등록된 애플리케이션 정보를 기반으로 Application ID와 App Key를 검증하며,
// App Key는 평문이 아닌 SHA-256 해시 형태로만 메모리에 유지됩니다.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"sync"

	"github.com/darkkaiser/slack-notify-server/internal/config"
	"github.com/darkkaiser/slack-notify-server/internal/service/api/constants"
	"github.com/darkkaiser/slack-notify-server/internal/service/api/model/domain"
	"github.com/darkkaiser/slack-notify-server/internal/service/contract"
	applog "github.com/darkkaiser/slack-notify-server/pkg/log"
	"github.com/darkkaiser/slack-notify-server/pkg/strutil"
)

// registeredApplication 인증 가능한 애플리케이션 1건의 런타임 표현입니다.
//
// App Key는 설정 로드 직후 SHA-256으로 해시되어 저장되며,
// 평문 키는 Authenticator 내부 어디에도 유지되지 않습니다.
type registeredApplication struct {
	application *domain.Application
	appKeyHash  [sha256.Size]byte
}

// Authenticator 애플리케이션 인증을 담당하는 인증자입니다.
//
// 이 구조체는 다음과 같은 역할을 수행합니다:
//   - 설정 파일에서 등록된 애플리케이션 정보를 메모리에 로드 (App Key는 SHA-256 해시로 변환)
//   - Application ID와 App Key를 통한 인증 처리 (상수 시간 비교)
//   - 인증 실패 시 적절한 HTTP 에러 반환 (실패 로그의 App Key는 마스킹 처리)
//
// Authenticator는 API 버전(v1, v2 등)과 무관하게 모든 핸들러에서 재사용 가능하며,
// 애플리케이션 인증이 필요한 모든 엔드포인트에서 공통으로 사용됩니다.
//
// 동시성 안전성:
//   - sync.RWMutex를 사용하여 동시성 안전을 보장합니다.
//   - 여러 고루틴에서 동시에 Authenticate를 호출해도 안전합니다.
//   - 현재는 초기화 후 읽기 전용이지만, 향후 동적 추가/삭제 기능 확장 가능합니다.
//
// 사용 예시:
//
//	authenticator := auth.NewAuthenticator(appConfig)
//	app, err := authenticator.Authenticate(applicationID, appKey)
//	if err != nil {
//	    return err // 401 Unauthorized
//	}
//	// app 사용 (AppKey는 포함되지 않음)
type Authenticator struct {
	mu           sync.RWMutex
	applications map[string]registeredApplication
}

// NewAuthenticator 설정에서 애플리케이션을 로드하여 Authenticator를 생성합니다.
//
// 등록 과정에서 각 애플리케이션의 App Key는 SHA-256으로 해시되며,
// 이후 평문 키는 설정 객체 외부로 전파되지 않습니다.
func NewAuthenticator(appConfig *config.AppConfig) *Authenticator {
	applications := make(map[string]registeredApplication, len(appConfig.NotifyAPI.Applications))
	for _, application := range appConfig.NotifyAPI.Applications {
		applications[application.ID] = registeredApplication{
			application: &domain.Application{
				ID:             application.ID,
				Title:          application.Title,
				Description:    application.Description,
				DefaultChannel: contract.ChannelID(application.DefaultChannel),
			},
			appKeyHash: sha256.Sum256([]byte(application.AppKey)),
		}
	}

	return &Authenticator{
		applications: applications,
	}
}

// Authenticate 애플리케이션을 찾고 인증을 수행합니다.
// 성공 시 Application 객체를 반환하고, 실패 시 적절한 HTTP 에러를 반환합니다.
//
// App Key 비교는 해시값에 대한 상수 시간 비교(constant-time compare)로 수행되어
// 타이밍 공격(Timing Attack)을 통한 키 추측을 방지합니다.
//
// 이 메서드는 동시성 안전하며, 여러 고루틴에서 동시에 호출 가능합니다.
func (a *Authenticator) Authenticate(applicationID, appKey string) (*domain.Application, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	registered, ok := a.applications[applicationID]
	if !ok {
		applog.WithComponentAndFields(constants.ComponentMiddlewareAuthentication, applog.Fields{
			"application_id": applicationID,
		}).Warn("등록되지 않은 application_id로 인증 시도됨")

		return nil, NewErrInvalidApplicationID(applicationID)
	}

	receivedHash := sha256.Sum256([]byte(appKey))
	if subtle.ConstantTimeCompare(registered.appKeyHash[:], receivedHash[:]) != 1 {
		applog.WithComponentAndFields(constants.ComponentMiddlewareAuthentication, applog.Fields{
			"application_id":   applicationID,
			"received_app_key": strutil.Mask(appKey),
		}).Warn("APP_KEY 불일치")

		return nil, NewErrInvalidAppKey(applicationID)
	}

	return registered.application, nil
}
