// Package log 애플리케이션 전역 로깅 시스템을 제공합니다.
//
// Logrus를 기반으로 lumberjack 로테이션과 레벨별 파일 분리(Main/Critical/Verbose)를
// 결합하여, 운영 로그의 명확성과 디버깅 정보의 격리를 동시에 보장합니다.
package log

import (
	log "github.com/sirupsen/logrus"
)

// StandardLogger 전역 logrus 표준 로거를 반환합니다.
func StandardLogger() *Logger {
	return log.StandardLogger()
}

// SetDebugMode Debug 모드에 따라 전역 로그 레벨을 조정합니다.
//   - Debug 모드: Trace 레벨 (모든 로그 출력)
//   - 운영 모드: Info 레벨
func SetDebugMode(debug bool) {
	if debug {
		log.SetLevel(log.TraceLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

// WithFields 필드를 포함한 로그 Entry를 반환합니다.
func WithFields(fields Fields) *Entry {
	return log.WithFields(fields)
}

// WithComponent component 필드를 포함한 로그 Entry를 반환합니다.
// 모든 로그에 component 필드를 일관되게 추가하기 위해 사용합니다.
func WithComponent(component string) *Entry {
	return log.WithFields(log.Fields{
		"component": component,
	})
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 로그 Entry를 반환합니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	newFields := make(log.Fields, len(fields)+1)
	for k, v := range fields {
		newFields[k] = v
	}
	newFields["component"] = component
	return log.WithFields(newFields)
}
