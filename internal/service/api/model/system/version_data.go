package system

// VersionData 버전 정보 응답의 data 필드 구조입니다.
type VersionData struct {
	// Version 애플리케이션의 버전
	Version string `json:"version" example:"v1.0.0"`

	// Commit Git 커밋 해시
	Commit string `json:"commit" example:"f25b8bf"`

	// BuildDate 빌드 날짜
	BuildDate string `json:"build_date" example:"2025-08-25T00:00:00Z"`

	// BuildNumber CI 빌드 번호
	BuildNumber string `json:"build_number" example:"155"`

	// GoVersion 빌드에 사용된 Go 컴파일러 버전
	GoVersion string `json:"go_version" example:"go1.24.0"`
}
