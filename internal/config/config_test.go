package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/umbra-platform/umbra-security-service/internal/pkg/errors"
)

// =============================================================================
// Unit Tests: Configuration Logic & Helpers
// =============================================================================

func TestNormalizeEnvKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"UMBRA_DEBUG", "debug"},
		{"UMBRA_SERVER__LISTEN_PORT", "server.listen_port"},
		{"UMBRA_SERVER__CORS__ALLOW_ORIGINS", "server.cors.allow_origins"},
		{"UMBRA_ALERT__TELEGRAM__BOT_TOKEN", "alert.telegram.bot_token"},
		{"UMBRA_DATASTORE__URL", "datastore.url"},
	}

	for _, tt := range tests {
		got := normalizeEnvKey(tt.input)
		assert.Equal(t, tt.expected, got, "Input: %s", tt.input)
	}
}

func TestNewDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := newDefaultConfig()

	assert.False(t, cfg.Debug, "기본값은 운영 모드여야 합니다")
	assert.Equal(t, DefaultListenPort, cfg.Server.ListenPort)
	assert.Equal(t, []string{"*"}, cfg.Server.CORS.AllowOrigins)
	assert.Equal(t, DefaultRateLimitPerSecond, cfg.Server.RateLimit.PerSecond)
	assert.Equal(t, DefaultRateLimitBurst, cfg.Server.RateLimit.Burst)
	assert.False(t, cfg.Alert.Telegram.Enabled)
	assert.Empty(t, cfg.Datastore.URL, "데이터스토어 URL은 선언만 된 플레이스홀더입니다")
	assert.Empty(t, cfg.Cache.URL, "캐시 URL은 선언만 된 플레이스홀더입니다")
}

// =============================================================================
// Unit Tests: Validation Logic (AppConfig.validate)
// =============================================================================

func TestAppConfig_Validate_TableDriven(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		modifier    func(*AppConfig) // Config을 망가뜨리는 함수
		expectError bool
		errorMsg    string
	}{
		// Happy Path
		{
			name:        "기본 설정은 유효함",
			modifier:    func(c *AppConfig) {},
			expectError: false,
		},
		// Server
		{
			name:        "Server: 포트 0은 거부",
			modifier:    func(c *AppConfig) { c.Server.ListenPort = 0 },
			expectError: true,
			errorMsg:    "listen_port",
		},
		{
			name:        "Server: 포트 범위 초과는 거부",
			modifier:    func(c *AppConfig) { c.Server.ListenPort = 70000 },
			expectError: true,
			errorMsg:    "listen_port",
		},
		// CORS
		{
			name:        "CORS: 빈 목록은 거부",
			modifier:    func(c *AppConfig) { c.Server.CORS.AllowOrigins = nil },
			expectError: true,
			errorMsg:    "allow_origins",
		},
		{
			name:        "CORS: 와일드카드와 도메인 혼용은 거부",
			modifier:    func(c *AppConfig) { c.Server.CORS.AllowOrigins = []string{"*", "https://example.com"} },
			expectError: true,
			errorMsg:    "와일드카드",
		},
		{
			name:        "CORS: 형식이 잘못된 Origin은 거부",
			modifier:    func(c *AppConfig) { c.Server.CORS.AllowOrigins = []string{"example.com/path"} },
			expectError: true,
		},
		{
			name: "CORS: 유효한 Origin 목록은 허용",
			modifier: func(c *AppConfig) {
				c.Server.CORS.AllowOrigins = []string{"https://example.com", "http://localhost:3000"}
			},
			expectError: false,
		},
		// Rate Limit
		{
			name:        "RateLimit: 초당 요청 수 0은 거부",
			modifier:    func(c *AppConfig) { c.Server.RateLimit.PerSecond = 0 },
			expectError: true,
		},
		{
			name:        "RateLimit: 버스트가 초당 요청 수보다 작으면 거부",
			modifier:    func(c *AppConfig) { c.Server.RateLimit = RateLimitConfig{PerSecond: 20, Burst: 10} },
			expectError: true,
			errorMsg:    "버스트",
		},
		// Alert
		{
			name: "Alert: 활성화 시 봇 토큰 필수",
			modifier: func(c *AppConfig) {
				c.Alert.Telegram = TelegramAlertConfig{Enabled: true, ChatID: 12345}
			},
			expectError: true,
			errorMsg:    "봇 토큰",
		},
		{
			name: "Alert: 활성화 시 채팅 ID 필수",
			modifier: func(c *AppConfig) {
				c.Alert.Telegram = TelegramAlertConfig{Enabled: true, BotToken: "123456789:ABC-DEF1234ghIkl-zyx57W2v1u123ew11"}
			},
			expectError: true,
			errorMsg:    "채팅 ID",
		},
		{
			name: "Alert: 올바른 설정은 허용",
			modifier: func(c *AppConfig) {
				c.Alert.Telegram = TelegramAlertConfig{
					Enabled:  true,
					BotToken: "123456789:ABC-DEF1234ghIkl-zyx57W2v1u123ew11",
					ChatID:   12345,
				}
			},
			expectError: false,
		},
		{
			name: "Alert: 비활성화 상태에서는 나머지 필드를 검증하지 않음",
			modifier: func(c *AppConfig) {
				c.Alert.Telegram = TelegramAlertConfig{Enabled: false}
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := newDefaultConfig()
			tt.modifier(cfg)

			err := cfg.validate()
			if tt.expectError {
				require.Error(t, err)
				assert.True(t, apperrors.Is(err, apperrors.InvalidInput), "설정 오류는 InvalidInput 타입이어야 합니다")
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// =============================================================================
// Integration Tests: LoadWithFile
// =============================================================================

func TestLoadWithFile(t *testing.T) {
	t.Run("파일이 없으면 기본값으로 동작", func(t *testing.T) {
		cfg, err := LoadWithFile(filepath.Join(t.TempDir(), "missing.json"))
		require.NoError(t, err)
		assert.Equal(t, DefaultListenPort, cfg.Server.ListenPort)
	})

	t.Run("JSON 파일이 기본값을 덮어씀", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "umbra-security-service.json")
		content := `{
			"debug": true,
			"server": {"listen_port": 8080},
			"datastore": {"url": "postgres://localhost:5432/umbra"}
		}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := LoadWithFile(path)
		require.NoError(t, err)

		assert.True(t, cfg.Debug)
		assert.Equal(t, 8080, cfg.Server.ListenPort)
		assert.Equal(t, "postgres://localhost:5432/umbra", cfg.Datastore.URL)
		// 파일에 명시하지 않은 값은 기본값 유지
		assert.Equal(t, DefaultRateLimitPerSecond, cfg.Server.RateLimit.PerSecond)
	})

	t.Run("환경 변수가 파일 설정을 덮어씀", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "umbra-security-service.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"server": {"listen_port": 8080}}`), 0644))

		t.Setenv("UMBRA_SERVER__LISTEN_PORT", "9090")
		t.Setenv("UMBRA_CACHE__URL", "redis://localhost:6379/0")

		cfg, err := LoadWithFile(path)
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.ListenPort)
		assert.Equal(t, "redis://localhost:6379/0", cfg.Cache.URL)
	})

	t.Run("잘못된 포트 환경 변수는 로드 실패", func(t *testing.T) {
		t.Setenv("UMBRA_SERVER__LISTEN_PORT", "99999")

		cfg, err := LoadWithFile(filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
	})

	t.Run("손상된 JSON 파일은 로드 실패", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"server": `), 0644))

		cfg, err := LoadWithFile(path)
		require.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("정의되지 않은 설정 키는 로드 실패", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "unknown.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"unknown_key": true}`), 0644))

		cfg, err := LoadWithFile(path)
		require.Error(t, err)
		assert.Nil(t, cfg)
	})
}

func TestVerifyRecommendations(t *testing.T) {
	t.Parallel()

	t.Run("권장 설정 준수 시 경고 없음", func(t *testing.T) {
		t.Parallel()
		cfg := newDefaultConfig()
		cfg.Debug = true
		assert.Empty(t, cfg.VerifyRecommendations())
	})

	t.Run("예약 포트 사용 시 경고", func(t *testing.T) {
		t.Parallel()
		cfg := newDefaultConfig()
		cfg.Server.ListenPort = 80
		warnings := cfg.VerifyRecommendations()
		require.NotEmpty(t, warnings)
		assert.Contains(t, warnings[0], "예약 포트")
	})

	t.Run("운영 모드에서 CORS 전체 허용 시 경고", func(t *testing.T) {
		t.Parallel()
		cfg := newDefaultConfig()
		cfg.Debug = false
		warnings := cfg.VerifyRecommendations()
		require.NotEmpty(t, warnings)
	})
}
