package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"

	"github.com/umbra-platform/umbra-security-service/internal/pkg/version"
	"github.com/umbra-platform/umbra-security-service/internal/service/api/constants"
	"github.com/umbra-platform/umbra-security-service/internal/service/api/handler/system"
)

// newTestServer 라우트가 등록된 테스트용 Echo 서버를 생성합니다.
func newTestServer() http.Handler {
	e := NewHTTPServer(HTTPServerConfig{
		Debug:              true,
		AllowOrigins:       []string{"*"},
		RateLimitPerSecond: 100,
		RateLimitBurst:     200,
	})
	RegisterRoutes(e, system.NewHandler(version.Info{Version: "v1.0.0-test"}))
	return e
}

func doRequest(srv http.Handler, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHTTPServer_HealthEndpoint(t *testing.T) {
	t.Parallel()

	srv := newTestServer()
	rec := doRequest(srv, http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, gjson.Get(body, "success").Bool())
	assert.Equal(t, "ok", gjson.Get(body, "data.status").String())
	assert.Equal(t, "v1.0.0-test", gjson.Get(body, "data.version").String())
	assert.Equal(t, gjson.Null, gjson.Get(body, "error").Type)
}

func TestHTTPServer_VersionEndpoint(t *testing.T) {
	t.Parallel()

	srv := newTestServer()
	rec := doRequest(srv, http.MethodGet, "/version")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v1.0.0-test", gjson.Get(rec.Body.String(), "data.version").String())
}

func TestHTTPServer_NotFound(t *testing.T) {
	t.Parallel()

	srv := newTestServer()
	rec := doRequest(srv, http.MethodGet, "/no-such-route")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	body := rec.Body.String()
	assert.False(t, gjson.Get(body, "success").Bool())
	assert.Equal(t, constants.ErrCodeNotFound, gjson.Get(body, "error.code").String())
	assert.Equal(t, gjson.Null, gjson.Get(body, "data").Type)
}

func TestHTTPServer_SecurityHeaders(t *testing.T) {
	t.Parallel()

	srv := newTestServer()
	rec := doRequest(srv, http.MethodGet, "/health")

	// Server 헤더는 기술 스택 노출 방지를 위해 비워져야 함
	assert.Empty(t, rec.Header().Get("Server"))

	// Secure 미들웨어가 추가하는 보안 헤더
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))

	// Request ID가 부여되어야 함
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestHTTPServer_RateLimiting(t *testing.T) {
	t.Parallel()

	e := NewHTTPServer(HTTPServerConfig{
		Debug:              true,
		AllowOrigins:       []string{"*"},
		RateLimitPerSecond: 1,
		RateLimitBurst:     1,
	})
	RegisterRoutes(e, system.NewHandler(version.Info{}))

	assert.Equal(t, http.StatusOK, doRequest(e, http.MethodGet, "/health").Code)

	rec := doRequest(e, http.MethodGet, "/health")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, constants.ErrCodeTooManyRequests, gjson.Get(rec.Body.String(), "error.code").String())
}
