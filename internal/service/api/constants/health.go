package constants

// 헬스체크 및 시스템 상태 관련 상수입니다.
const (
	// HealthStatusOK 헬스체크 상태: 정상
	// 모니터링 시스템과의 호환성을 위해 값은 영문 소문자로 고정합니다.
	HealthStatusOK = "ok"
)
