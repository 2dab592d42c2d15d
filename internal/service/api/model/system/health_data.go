package system

// HealthData 헬스체크 응답의 data 필드 구조입니다.
type HealthData struct {
	// Status 서버 상태 (ok)
	Status string `json:"status" example:"ok"`

	// Service 서비스 식별자
	Service string `json:"service" example:"umbra-security-service"`

	// Uptime 서버 가동 시간(초)
	Uptime int64 `json:"uptime" example:"42"`

	// Version 실행중인 서버의 버전
	Version string `json:"version" example:"v1.0.0"`
}
