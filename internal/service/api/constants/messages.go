package constants

// 클라이언트에게 반환되는 에러 메시지 상수입니다.
const (
	// 400 Bad Request
	ErrMsgBadRequest = "잘못된 요청입니다"

	// 404 Not Found
	ErrMsgNotFound = "요청한 리소스를 찾을 수 없습니다"

	// 405 Method Not Allowed
	ErrMsgMethodNotAllowed = "허용되지 않은 HTTP 메서드입니다"

	// 413 Request Entity Too Large
	ErrMsgRequestEntityTooLarge = "요청 본문이 너무 큽니다"

	// 429 Too Many Requests
	ErrMsgTooManyRequests = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요"

	// 500 Internal Server Error
	ErrMsgInternalServer = "내부 서버 오류가 발생했습니다"

	// 503 Service Unavailable
	ErrMsgServiceUnavailable = "서비스를 일시적으로 사용할 수 없습니다. 잠시 후 다시 시도해주세요"
)

// 클라이언트에게 반환되는 에러 코드 상수입니다.
//
// HTTP 상태 코드와 별개로, 클라이언트가 분기 처리에 사용할 수 있는
// 안정적인 기계 판독용 식별자입니다. 값은 변경하지 않습니다.
const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeConflict           = "CONFLICT"
	ErrCodePayloadTooLarge    = "PAYLOAD_TOO_LARGE"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// 로그 메시지 상수입니다.
const (
	LogMsgServiceStarting             = "API 서비스 시작중"
	LogMsgServiceStarted              = "API 서비스 시작됨"
	LogMsgServiceAlreadyStarted       = "API 서비스가 이미 시작되었습니다"
	LogMsgServiceStopping             = "API 서비스 종료중"
	LogMsgServiceStopped              = "API 서비스 종료됨"
	LogMsgServiceHTTPServerStarting   = "HTTP 서버 시작중"
	LogMsgServiceHTTPServerStopped    = "HTTP 서버가 정상적으로 종료되었습니다"
	LogMsgServiceHTTPServerFatalError = "HTTP 서버 실행중에 치명적인 에러가 발생하였습니다"
	LogMsgServiceUnexpectedExit       = "HTTP 서버가 예기치 않게 종료되었습니다"
	LogMsgServiceShutdownError        = "HTTP 서버 Graceful Shutdown 처리중에 에러가 발생하였습니다"
	LogMsgHealthCheck                 = "헬스체크 요청"
	LogMsgVersionInfo                 = "버전 정보 요청"
	LogMsgHTTP4xxClientError          = "HTTP 클라이언트 요청 오류"
	LogMsgHTTP5xxServerError          = "HTTP 서버 내부 오류"
)
