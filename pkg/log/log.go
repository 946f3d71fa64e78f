// Package log logrus 기반의 전역 로깅 시스템을 제공합니다.
//
// 애플리케이션 전역에서 일관된 로그 포맷과 컴포넌트 필드를 사용하도록
// logrus를 얇게 감싸며, 파일 로테이션(lumberjack)과 콘솔 출력을 지원합니다.
package log

import (
	log "github.com/sirupsen/logrus"
)

// StandardLogger 전역 표준 로거를 반환합니다.
// Echo 등 외부 프레임워크에 로거를 주입할 때 사용합니다.
func StandardLogger() *Logger {
	return log.StandardLogger()
}

// WithComponent component 필드를 포함한 로그 Entry를 반환합니다.
// 모든 로그에 component 필드를 일관되게 추가하기 위해 사용합니다.
func WithComponent(component string) *log.Entry {
	return log.WithFields(log.Fields{
		"component": component,
	})
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 로그 Entry를 반환합니다.
func WithComponentAndFields(component string, fields log.Fields) *log.Entry {
	newFields := make(log.Fields, len(fields)+1)
	for k, v := range fields {
		newFields[k] = v
	}
	newFields["component"] = component
	return log.WithFields(newFields)
}

// WithError error 필드를 포함한 로그 Entry를 반환합니다.
func WithError(err error) *log.Entry {
	return log.WithError(err)
}

// MaskSensitiveData 민감한 정보를 마스킹합니다.
// 액세스 토큰, 웹훅 키 등의 민감 정보를 안전하게 로깅하기 위해 사용합니다.
func MaskSensitiveData(data string) string {
	if data == "" {
		return ""
	}

	// 3자 이하는 전체 마스킹
	if len(data) <= 3 {
		return "***"
	}

	// 앞 4자만 표시하고 나머지는 마스킹
	if len(data) <= 12 {
		return data[:4] + "***"
	}

	// 긴 토큰은 앞 4자 + 마스킹 + 뒤 4자
	return data[:4] + "***" + data[len(data)-4:]
}
