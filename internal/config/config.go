// Package config 애플리케이션 설정의 로드와 검증을 담당합니다.
//
// 설정은 다음 우선순위로 병합됩니다 (아래로 갈수록 높은 우선순위).
//
//  1. 기본값 (newDefaultConfig)
//  2. JSON 설정 파일 (기본: slack-notify-server.json)
//  3. 환경 변수 (접두사: NOTIFY_, 구분자: __)
//
// 병합된 설정은 구조체로 언마샬링된 후 정합성 검증을 거치며, 검증에 실패하면
// 애플리케이션은 기동되지 않습니다.
package config

import (
	"fmt"
	"os"
	"strings"

	apperrors "github.com/darkkaiser/slack-notify-server/internal/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "slack-notify-server"

	// DefaultFilename 애플리케이션 초기화 시 참조하는 기본 설정 파일명입니다.
	// 실행 인자를 통해 명시적인 경로가 제공되지 않을 경우, 시스템은 이 파일을 탐색하여 구성을 로드합니다.
	DefaultFilename = AppName + ".json"

	// DefaultListenPort 웹 서비스 포트가 설정되지 않았을 때 사용되는 기본 포트입니다.
	DefaultListenPort = 8080

	// envPrefix 설정을 덮어쓰는 환경 변수의 접두사입니다.
	envPrefix = "NOTIFY_"
)

// newDefaultConfig 모든 설정 항목의 기본값을 담은 AppConfig를 생성합니다.
//
// 기본 구성은 실제 Slack 전송이 활성화된 상태입니다. Dry-Run으로 운영하려면
// 설정 파일에서 notification.send_to_slack을 false로 명시해야 합니다.
func newDefaultConfig() *AppConfig {
	return &AppConfig{
		Notification: NotificationConfig{
			SendToSlack: true,
		},
		NotifyAPI: NotifyAPIConfig{
			WS: WSConfig{
				ListenPort: DefaultListenPort,
			},
		},
	}
}

// normalizeEnvKey 환경 변수명을 koanf 설정 키로 변환합니다.
//
// 접두사(NOTIFY_)를 제거하고 소문자로 변환한 뒤, 이중 언더스코어(__)를
// 점(.)으로 치환하여 계층 구조를 표현합니다.
// 예: NOTIFY_NOTIFICATION__SEND_TO_SLACK -> notification.send_to_slack
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, envPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정된 경로의 설정 파일을 읽어 AppConfig 객체를 생성합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 로드 (가장 낮은 우선순위)
	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일 로드 (기본값 덮어쓰기)
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
		}
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
	}

	// 3. 환경 변수 로드 (최우선 순위, JSON 설정 덮어쓰기)
	// 예: NOTIFY_NOTIFICATION__DEFAULT_CHANNEL -> notification.default_channel
	if err := k.Load(env.Provider(envPrefix, ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 언마샬링 (Strict Validation 적용)
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:      true, // 파일에 존재하지만 구조체에 없는 필드가 있을 경우 에러를 발생시킴
			WeaklyTypedInput: true,
		},
	}
	var appConfig AppConfig
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 5. 유효성 검사 수행 (정합성 체크)
	if err := appConfig.validate(newValidator()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}
