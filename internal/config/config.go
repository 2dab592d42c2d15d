// Package config 애플리케이션 설정의 로드와 검증을 담당합니다.
//
// 설정은 다음 우선순위로 병합됩니다. (뒤로 갈수록 우선)
//  1. 구조체 기본값
//  2. JSON 설정 파일 (존재하는 경우에만)
//  3. UMBRA_ 접두사의 환경 변수
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/iancoleman/strcase"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	apperrors "github.com/umbra-platform/umbra-security-service/internal/pkg/errors"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "umbra-security-service"

	// DefaultFilename 기본 설정 파일명입니다.
	// 파일이 존재하지 않아도 에러가 아니며, 이 경우 기본값과 환경 변수만으로 동작합니다.
	DefaultFilename = AppName + ".json"

	// envPrefix 설정을 덮어쓰는 환경 변수의 접두사입니다.
	// 계층 구조는 이중 언더스코어(__)로 표현합니다.
	// 예: UMBRA_SERVER__LISTEN_PORT=8080 -> server.listen_port
	envPrefix = "UMBRA_"

	// DefaultListenPort HTTP 서버의 기본 리슨 포트입니다.
	DefaultListenPort = 5006

	// 기본 Rate Limit 정책 (IP당 초당 요청 수 / 버스트 허용량)
	DefaultRateLimitPerSecond = 20
	DefaultRateLimitBurst     = 40
)

// AppConfig 애플리케이션의 모든 설정을 관장하는 최상위 루트 구조체입니다.
// 프로세스 시작 시 한 번 생성된 후 변경되지 않으며, 필요한 컴포넌트에 참조로 전달됩니다.
type AppConfig struct {
	Debug     bool            `json:"debug"`
	Server    ServerConfig    `json:"server"`
	Alert     AlertConfig     `json:"alert"`
	Datastore DatastoreConfig `json:"datastore"`
	Cache     CacheConfig     `json:"cache"`
}

// validate 설정 로드 직후, 각 설정 항목의 정합성과 필수 값의 유효성을 검증합니다.
func (c *AppConfig) validate() error {
	if err := c.Server.validate(); err != nil {
		return err
	}
	if err := c.Alert.validate(); err != nil {
		return err
	}
	return nil
}

// VerifyRecommendations 운영 안정성을 위해 권장되는 설정 준수 여부를 진단합니다.
// 에러를 발생시키지는 않으나, 잠재적 위험 요소에 대한 경고 메시지를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	// 시스템 예약 포트(1024 미만) 사용 경고
	if c.Server.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.Server.ListenPort))
	}

	// 운영 모드에서 CORS 전체 허용 경고
	if !c.Debug {
		for _, origin := range c.Server.CORS.AllowOrigins {
			if origin == "*" {
				warnings = append(warnings, "운영 모드에서 모든 Origin(*)을 허용하도록 설정되어 있습니다. 특정 도메인만 허용할 것을 권장합니다")
			}
		}
	}

	return warnings
}

// ServerConfig HTTP 서버의 포트 및 요청 처리 정책을 정의하는 구조체입니다.
type ServerConfig struct {
	ListenPort int             `json:"listen_port" validate:"min=1,max=65535"`
	CORS       CORSConfig      `json:"cors"`
	RateLimit  RateLimitConfig `json:"rate_limit"`
}

func (c *ServerConfig) validate() error {
	if err := validate.Struct(c); err != nil {
		if msg, ok := firstValidationMessage(err, map[string]string{
			"listen_port": fmt.Sprintf("웹 서버 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다: %d", c.ListenPort),
		}); ok {
			return apperrors.New(apperrors.InvalidInput, msg)
		}
		return apperrors.Wrap(err, apperrors.InvalidInput, "웹 서버 설정 검증 중 알 수 없는 오류가 발생했습니다")
	}

	if err := c.CORS.validate(); err != nil {
		return err
	}

	if err := c.RateLimit.validate(); err != nil {
		return err
	}

	return nil
}

// CORSConfig 웹 브라우저의 교차 출처 리소스 공유(CORS) 정책을 설정하는 구조체입니다.
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

func (c *CORSConfig) validate() error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	}

	for _, origin := range c.AllowOrigins {
		if origin == "*" {
			if len(c.AllowOrigins) > 1 {
				return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
			}

			// 와일드카드만 있는 경우는 유효함 (validator skip)
			return nil
		}
	}

	if err := validate.Struct(c); err != nil {
		if msg, ok := firstValidationMessage(err, nil); ok {
			return apperrors.New(apperrors.InvalidInput, msg)
		}
		return apperrors.Wrap(err, apperrors.InvalidInput, "CORS 설정 검증 중 알 수 없는 오류가 발생했습니다")
	}
	return nil
}

// RateLimitConfig IP 기반 요청 제한 정책을 정의하는 구조체입니다.
type RateLimitConfig struct {
	PerSecond int `json:"per_second" validate:"min=1"`
	Burst     int `json:"burst" validate:"min=1"`
}

func (c *RateLimitConfig) validate() error {
	if err := validate.Struct(c); err != nil {
		if msg, ok := firstValidationMessage(err, map[string]string{
			"per_second": fmt.Sprintf("Rate Limit 초당 요청 수(per_second)는 1 이상이어야 합니다: %d", c.PerSecond),
			"burst":      fmt.Sprintf("Rate Limit 버스트 허용량(burst)은 1 이상이어야 합니다: %d", c.Burst),
		}); ok {
			return apperrors.New(apperrors.InvalidInput, msg)
		}
		return apperrors.Wrap(err, apperrors.InvalidInput, "Rate Limit 설정 검증 중 알 수 없는 오류가 발생했습니다")
	}

	if c.Burst < c.PerSecond {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("Rate Limit 버스트 허용량(burst: %d)은 초당 요청 수(per_second: %d)보다 작을 수 없습니다", c.Burst, c.PerSecond))
	}

	return nil
}

// AlertConfig 운영자 알림 채널 설정 구조체입니다.
type AlertConfig struct {
	Telegram TelegramAlertConfig `json:"telegram"`
}

func (c *AlertConfig) validate() error {
	return c.Telegram.validate()
}

// TelegramAlertConfig 텔레그램 운영자 알림 설정 구조체입니다.
// Enabled가 false이면 나머지 필드는 검증하지 않습니다.
type TelegramAlertConfig struct {
	Enabled  bool   `json:"enabled"`
	BotToken string `json:"bot_token" validate:"required_if=Enabled true,omitempty,telegram_bot_token"`
	ChatID   int64  `json:"chat_id" validate:"required_if=Enabled true"`
}

func (c *TelegramAlertConfig) validate() error {
	if err := validate.Struct(c); err != nil {
		if msg, ok := firstValidationMessage(err, map[string]string{
			"bot_token": "텔레그램 알림 활성화 시 봇 토큰(bot_token)이 올바르게 설정되어야 합니다",
			"chat_id":   "텔레그램 알림 활성화 시 채팅 ID(chat_id)는 필수입니다",
		}); ok {
			return apperrors.New(apperrors.InvalidInput, msg)
		}
		return apperrors.Wrap(err, apperrors.InvalidInput, "텔레그램 알림 설정 검증 중 알 수 없는 오류가 발생했습니다")
	}
	return nil
}

// DatastoreConfig 관계형 데이터베이스 연결 설정 구조체입니다.
// 현재 범위에서는 선언만 되어 있으며, 이 값을 소비하는 로직은 존재하지 않습니다.
type DatastoreConfig struct {
	URL string `json:"url"`
}

// CacheConfig 인메모리 캐시/브로커 연결 설정 구조체입니다.
// 현재 범위에서는 선언만 되어 있으며, 이 값을 소비하는 로직은 존재하지 않습니다.
type CacheConfig struct {
	URL string `json:"url"`
}

// newDefaultConfig 모든 필드가 기본값으로 채워진 AppConfig를 반환합니다.
func newDefaultConfig() *AppConfig {
	return &AppConfig{
		Debug: false,
		Server: ServerConfig{
			ListenPort: DefaultListenPort,
			CORS: CORSConfig{
				AllowOrigins: []string{"*"},
			},
			RateLimit: RateLimitConfig{
				PerSecond: DefaultRateLimitPerSecond,
				Burst:     DefaultRateLimitBurst,
			},
		},
	}
}

// normalizeEnvKey 환경 변수 이름을 koanf 설정 키로 변환합니다.
// 예: UMBRA_SERVER__LISTEN_PORT -> server.listen_port
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, envPrefix)

	parts := strings.Split(s, "__")
	for i, part := range parts {
		parts[i] = strcase.ToSnake(part)
	}
	return strings.Join(parts, ".")
}

// Load 기본 설정 파일을 사용하여 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정된 경로의 설정 파일을 병합하여 AppConfig 객체를 생성합니다.
// 파일이 존재하지 않는 경우는 에러가 아니며, 기본값과 환경 변수만으로 설정을 구성합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 로드 (가장 낮은 우선순위)
	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일 로드 (기본값 덮어쓰기, 파일이 없으면 건너뜀)
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if !os.IsNotExist(err) {
			return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
		}
	}

	// 3. 환경 변수 로드 (최우선 순위)
	if err := k.Load(env.Provider(envPrefix, ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 언마샬링 (Strict Validation 적용)
	var appConfig AppConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:      true, // 구조체에 정의되지 않은 키가 있으면 에러를 발생시킴
			WeaklyTypedInput: true,
			Result:           &appConfig,
		},
	}
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 5. 유효성 검사 수행 (정합성 체크)
	if err := appConfig.validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정의 유효성 검증에 실패했습니다")
	}

	return &appConfig, nil
}
