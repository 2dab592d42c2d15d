package httputil

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umbra-platform/umbra-security-service/internal/service/api/constants"
	"github.com/umbra-platform/umbra-security-service/internal/service/api/model/response"
)

// Success 표준 성공 응답(200 OK)을 Envelope JSON 형식으로 반환합니다.
func Success(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, response.NewSuccess(data))
}

// SuccessWithMessage 부가 메시지를 포함한 성공 응답(200 OK)을 반환합니다.
func SuccessWithMessage(c echo.Context, data any, message string) error {
	return c.JSON(http.StatusOK, response.NewSuccess(data).WithMessage(message))
}

// NewBadRequestError 400 Bad Request 에러를 생성합니다
func NewBadRequestError(message string) error {
	return echo.NewHTTPError(http.StatusBadRequest,
		response.NewError(constants.ErrCodeBadRequest, message))
}

// NewNotFoundError 404 Not Found 에러를 생성합니다
func NewNotFoundError(message string) error {
	return echo.NewHTTPError(http.StatusNotFound,
		response.NewError(constants.ErrCodeNotFound, message))
}

// NewTooManyRequestsError 429 Too Many Requests 에러를 생성합니다
func NewTooManyRequestsError(message string) error {
	return echo.NewHTTPError(http.StatusTooManyRequests,
		response.NewError(constants.ErrCodeTooManyRequests, message))
}

// NewInternalServerError 500 Internal Server Error 에러를 생성합니다
func NewInternalServerError(message string) error {
	return echo.NewHTTPError(http.StatusInternalServerError,
		response.NewError(constants.ErrCodeInternalError, message))
}

// NewServiceUnavailableError 503 Service Unavailable 에러를 생성합니다
func NewServiceUnavailableError(message string) error {
	return echo.NewHTTPError(http.StatusServiceUnavailable,
		response.NewError(constants.ErrCodeServiceUnavailable, message))
}
