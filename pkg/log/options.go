package log

import (
	"fmt"
	"os"
)

// Options 로깅 시스템 초기화에 사용되는 설정입니다.
type Options struct {
	Name  string // 로그 파일명 생성에 사용되는 애플리케이션 식별자
	Dir   string // 로그 파일 저장 디렉토리 (빈 값: "logs")
	Level Level  // 최소 로그 레벨 (0: InfoLevel)

	MaxAge     int // 로그 파일 보관 일수 (0: 삭제 안 함)
	MaxSizeMB  int // 로그 파일 하나의 최대 크기 (0: 기본값 사용)
	MaxBackups int // 로테이션 된 파일의 최대 보관 개수 (0: 기본값 사용)

	EnableCriticalLog bool // ERROR 이상의 로그를 별도 파일로 분리 저장할지 여부
	EnableVerboseLog  bool // DEBUG 이하의 로그를 별도 파일로 분리 저장할지 여부
	EnableConsoleLog  bool // 표준 출력(Stdout)에도 로그를 출력할지 여부 (개발 환경 권장)

	// ReportCaller 로그를 호출한 소스 코드의 위치(함수명:라인번호)를 함께 기록할지 여부
	ReportCaller bool

	// CallerPathPrefix 호출자 경로 표시 시 축약할 prefix
	// 예: "github.com/umbra-platform" 설정 시 해당 prefix가 "..."으로 대체됩니다.
	CallerPathPrefix string
}

// Validate Options의 필드 값이 유효한지 검증합니다.
func (opts *Options) Validate() error {
	if opts.Name == "" {
		return fmt.Errorf("애플리케이션 식별자(Name)가 설정되지 않았습니다")
	}

	// Dir이 이미 일반 파일로 존재하면 로그 디렉토리로 사용할 수 없다.
	if opts.Dir != "" {
		if info, err := os.Stat(opts.Dir); err == nil && !info.IsDir() {
			return fmt.Errorf("로그 디렉토리 경로(%s)가 이미 파일로 존재합니다", opts.Dir)
		}
	}

	if opts.MaxAge < 0 {
		return fmt.Errorf("MaxAge는 0 이상이어야 합니다: %d", opts.MaxAge)
	}
	if opts.MaxSizeMB < 0 {
		return fmt.Errorf("MaxSizeMB는 0 이상이어야 합니다: %d", opts.MaxSizeMB)
	}
	if opts.MaxBackups < 0 {
		return fmt.Errorf("MaxBackups는 0 이상이어야 합니다: %d", opts.MaxBackups)
	}

	return nil
}
