package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	apperrors "github.com/umbra-platform/umbra-security-service/internal/pkg/errors"
	"github.com/umbra-platform/umbra-security-service/internal/service/api/constants"
)

// newTestContext 에러 핸들러 테스트용 Echo 컨텍스트를 생성합니다.
func newTestContext(method, path string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	t.Run("404 에러는 표준 Envelope으로 변환됨", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestContext(http.MethodGet, "/unknown")
		ErrorHandler(echo.NewHTTPError(http.StatusNotFound), c)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		body := rec.Body.String()
		assert.False(t, gjson.Get(body, "success").Bool())
		assert.Equal(t, gjson.Null, gjson.Get(body, "data").Type)
		assert.Equal(t, constants.ErrCodeNotFound, gjson.Get(body, "error.code").String())
		assert.Equal(t, constants.ErrMsgNotFound, gjson.Get(body, "error.message").String())
		assert.True(t, gjson.Get(body, "meta").Exists(), "meta 필드는 null이라도 항상 존재해야 합니다")
	})

	t.Run("알 수 없는 에러는 500 INTERNAL_ERROR로 변환됨", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestContext(http.MethodGet, "/health")
		ErrorHandler(assert.AnError, c)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		body := rec.Body.String()
		assert.Equal(t, constants.ErrCodeInternalError, gjson.Get(body, "error.code").String())
		assert.Equal(t, constants.ErrMsgInternalServer, gjson.Get(body, "error.message").String(),
			"내부 에러의 상세 내용은 클라이언트에게 노출하지 않아야 합니다")
	})

	t.Run("AppError는 에러 타입에 따라 상태 코드가 결정됨", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			errType      apperrors.ErrorType
			expectedCode int
		}{
			{apperrors.InvalidInput, http.StatusBadRequest},
			{apperrors.NotFound, http.StatusNotFound},
			{apperrors.Conflict, http.StatusConflict},
			{apperrors.Unavailable, http.StatusServiceUnavailable},
			{apperrors.Internal, http.StatusInternalServerError},
		}

		for _, tt := range tests {
			c, rec := newTestContext(http.MethodGet, "/health")
			ErrorHandler(apperrors.New(tt.errType, "테스트 에러"), c)
			assert.Equal(t, tt.expectedCode, rec.Code, "ErrorType: %s", tt.errType)
		}
	})

	t.Run("HEAD 요청은 본문 없이 상태 코드만 반환됨", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestContext(http.MethodHead, "/unknown")
		ErrorHandler(echo.NewHTTPError(http.StatusNotFound), c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("이미 응답이 전송된 경우 추가 응답하지 않음", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestContext(http.MethodGet, "/health")
		require.NoError(t, c.NoContent(http.StatusOK))

		ErrorHandler(echo.NewHTTPError(http.StatusInternalServerError), c)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestErrorCodeOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, constants.ErrCodeNotFound, errorCodeOf(http.StatusNotFound))
	assert.Equal(t, constants.ErrCodeTooManyRequests, errorCodeOf(http.StatusTooManyRequests))
	// 매핑되지 않은 상태 코드는 범위에 따라 일반 코드로 대체
	assert.Equal(t, constants.ErrCodeBadRequest, errorCodeOf(http.StatusTeapot))
	assert.Equal(t, constants.ErrCodeInternalError, errorCodeOf(http.StatusBadGateway))
}
