package httputil

import (
	"net/http"

	"github.com/labstack/echo/v4"
	apperrors "github.com/umbra-platform/umbra-security-service/internal/pkg/errors"
	"github.com/umbra-platform/umbra-security-service/internal/service/api/constants"
	"github.com/umbra-platform/umbra-security-service/internal/service/api/model/response"
	applog "github.com/umbra-platform/umbra-security-service/pkg/log"
)

// statusCodeMap HTTP 상태 코드를 기계 판독용 에러 코드로 변환하는 테이블입니다.
var statusCodeMap = map[int]string{
	http.StatusBadRequest:            constants.ErrCodeBadRequest,
	http.StatusUnauthorized:          constants.ErrCodeUnauthorized,
	http.StatusForbidden:             constants.ErrCodeForbidden,
	http.StatusNotFound:              constants.ErrCodeNotFound,
	http.StatusMethodNotAllowed:      constants.ErrCodeMethodNotAllowed,
	http.StatusConflict:              constants.ErrCodeConflict,
	http.StatusRequestEntityTooLarge: constants.ErrCodePayloadTooLarge,
	http.StatusTooManyRequests:       constants.ErrCodeTooManyRequests,
	http.StatusInternalServerError:   constants.ErrCodeInternalError,
	http.StatusServiceUnavailable:    constants.ErrCodeServiceUnavailable,
}

// errorCodeOf HTTP 상태 코드에 해당하는 에러 코드를 반환합니다.
// 매핑되지 않은 상태 코드는 범위(4xx/5xx)에 따라 일반 코드로 대체합니다.
func errorCodeOf(statusCode int) string {
	if code, exists := statusCodeMap[statusCode]; exists {
		return code
	}
	if statusCode >= http.StatusInternalServerError {
		return constants.ErrCodeInternalError
	}
	return constants.ErrCodeBadRequest
}

// statusOfAppError AppError의 에러 타입을 HTTP 상태 코드로 변환합니다.
func statusOfAppError(errType apperrors.ErrorType) int {
	switch errType {
	case apperrors.InvalidInput, apperrors.ParsingFailed:
		return http.StatusBadRequest
	case apperrors.NotFound:
		return http.StatusNotFound
	case apperrors.Conflict:
		return http.StatusConflict
	case apperrors.Timeout:
		return http.StatusServiceUnavailable
	case apperrors.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// 모든 HTTP 에러를 가로채서 표준 Envelope JSON 형식으로 변환하여 반환합니다.
// 핸들러가 어떤 형태의 에러를 반환하더라도 클라이언트는 항상
// {success:false, error:{code, message}} 구조의 응답을 받습니다.
// 에러 발생 시 적절한 로그 레벨(Error/Warn)로 상세 정보를 기록합니다.
func ErrorHandler(err error, c echo.Context) {
	statusCode := http.StatusInternalServerError
	message := constants.ErrMsgInternalServer
	var envelope *response.Envelope

	var appErr *apperrors.AppError
	if he, ok := err.(*echo.HTTPError); ok {
		statusCode = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		} else if env, ok := he.Message.(response.Envelope); ok {
			envelope = &env
		}
	} else if apperrors.As(err, &appErr) {
		// AppError: 에러 타입에 따라 상태 코드 결정
		statusCode = statusOfAppError(appErr.Type())
		message = appErr.Message()
	}

	// 404 에러는 사용자 친화적인 메시지로 통일
	if statusCode == http.StatusNotFound && envelope == nil {
		message = constants.ErrMsgNotFound
	}

	// 에러 로깅 (보안 및 디버깅 용도)
	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": statusCode,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if statusCode >= http.StatusInternalServerError {
		// 5xx: 서버 내부 오류 - 즉시 조치 필요
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	} else if statusCode >= http.StatusBadRequest {
		// 4xx: 클라이언트 요청 오류 - 정상적인 거부 응답
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	// 이중 응답 방지: 이미 응답이 전송된 경우 추가 응답 시도하지 않음
	if c.Response().Committed {
		return
	}

	// HEAD 요청 처리: HTTP 명세에 따라 헤더만 반환하고 본문은 생략
	if c.Request().Method == http.MethodHead {
		c.NoContent(statusCode)
		return
	}

	if envelope == nil {
		env := response.NewError(errorCodeOf(statusCode), message)
		envelope = &env
	}

	// 일반 요청: 표준 Envelope JSON 형식으로 응답
	c.JSON(statusCode, *envelope)
}
