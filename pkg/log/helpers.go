package log

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

// StandardLogger 전역 로거 인스턴스를 반환합니다.
// 외부 라이브러리(Echo, Cron 등)에 로거 주입이 필요할 때 사용합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// SetOutput 전역 로거의 출력 대상을 지정합니다.
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

// SetLevel 전역 로거의 로그 레벨을 지정합니다.
func SetLevel(level Level) {
	logrus.SetLevel(level)
}

// SetFormatter 전역 로거의 포맷터를 지정합니다.
func SetFormatter(formatter Formatter) {
	logrus.SetFormatter(formatter)
}

// SetDebugMode Debug 모드 여부에 따라 전역 로그 레벨을 조정합니다.
//   - Debug 모드: Trace 레벨 (모든 로그 출력)
//   - 운영 모드: Info 레벨 (Info 이상만 출력)
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(logrus.TraceLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// WithFields 지정된 필드들을 포함한 로그 Entry를 반환합니다.
func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

// WithContext 지정된 Context를 포함한 로그 Entry를 반환합니다.
func WithContext(ctx context.Context) *Entry {
	return logrus.WithContext(ctx)
}

// WithError 에러 필드를 포함한 로그 Entry를 반환합니다.
func WithError(err error) *Entry {
	return logrus.WithError(err)
}

// WithComponent component 필드를 포함한 로그 Entry를 반환합니다.
// 모든 로그에 component 필드를 일관되게 추가하기 위해 사용합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField("component", component)
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 로그 Entry를 반환합니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	newFields := make(Fields, len(fields)+1)
	for k, v := range fields {
		newFields[k] = v
	}
	newFields["component"] = component
	return logrus.WithFields(newFields)
}
