// Package strutil 문자열 처리를 위한 유틸리티 함수들을 제공합니다.
package strutil

// Mask 토큰, 키 등의 민감한 값을 로그에 안전하게 남기기 위해 마스킹합니다.
func Mask(data string) string {
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
