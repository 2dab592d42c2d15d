package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umbra-platform/umbra-security-service/internal/alert"
	"github.com/umbra-platform/umbra-security-service/internal/config"
	"github.com/umbra-platform/umbra-security-service/internal/pkg/version"
)

// freePort 테스트용으로 사용 가능한 TCP 포트를 할당받아 반환합니다.
func freePort(t *testing.T) int {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port
}

// newTestAppConfig 테스트용 AppConfig를 생성합니다.
func newTestAppConfig(port int) *config.AppConfig {
	cfg := &config.AppConfig{Debug: true}
	cfg.Server.ListenPort = port
	cfg.Server.CORS.AllowOrigins = []string{"*"}
	cfg.Server.RateLimit.PerSecond = 100
	cfg.Server.RateLimit.Burst = 200
	return cfg
}

func TestNewService(t *testing.T) {
	t.Parallel()

	t.Run("정상 생성", func(t *testing.T) {
		t.Parallel()

		s := NewService(newTestAppConfig(5006), alert.NopNotifier(), version.Info{})
		assert.NotNil(t, s)
		assert.False(t, s.running)
	})

	t.Run("AppConfig가 nil이면 panic", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			NewService(nil, alert.NopNotifier(), version.Info{})
		})
	})

	t.Run("alertNotifier가 nil이면 panic", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			NewService(newTestAppConfig(5006), nil, version.Info{})
		})
	})
}

func TestService_StartAndShutdown(t *testing.T) {
	port := freePort(t)
	s := NewService(newTestAppConfig(port), alert.NopNotifier(), version.Info{Version: "v0.0.0-test"})

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))

	// 서버가 요청을 받을 수 있을 때까지 대기
	baseURL := fmt.Sprintf("http://127.0.0.1:%d", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(baseURL + "/health")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond, "서버가 시작되지 않았습니다")

	// 종료 신호 전송 후 서비스가 정리되는지 확인
	cancel()
	wg.Wait()

	s.runningMu.Lock()
	running := s.running
	s.runningMu.Unlock()
	assert.False(t, running, "종료 후 running 플래그가 초기화되어야 합니다")
}

func TestService_DuplicateStart(t *testing.T) {
	port := freePort(t)
	s := NewService(newTestAppConfig(port), alert.NopNotifier(), version.Info{})

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))

	// 중복 시작은 에러 없이 무시되어야 함
	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))

	cancel()
	wg.Wait()
}
