// Package alert 운영자에게 장애 상황을 통지하는 알림 채널을 제공합니다.
//
// HTTP 서버의 치명적인 에러 등 즉각적인 조치가 필요한 상황에서 사용되며,
// 현재는 텔레그램 채널을 지원합니다. 알림 전송 실패가 서비스 동작에
// 영향을 주어서는 안 되므로, 모든 구현체는 에러를 내부에서 로깅만 하고
// 호출자에게 전파하지 않습니다.
package alert

import (
	"fmt"

	"github.com/umbra-platform/umbra-security-service/internal/config"
)

// Notifier 운영자 알림 채널의 공통 인터페이스입니다.
type Notifier interface {
	// Notify 일반 알림 메시지를 전송합니다.
	Notify(message string)

	// NotifyError 에러 상황 알림을 전송합니다.
	NotifyError(message string, cause error)
}

// NewNotifier 설정에 따라 적절한 Notifier 구현체를 생성합니다.
//
// 텔레그램 알림이 비활성화된 경우 아무 동작도 하지 않는 nopNotifier를
// 반환하므로, 호출측에서는 nil 검사 없이 항상 사용할 수 있습니다.
func NewNotifier(cfg *config.AlertConfig) (Notifier, error) {
	if cfg == nil || !cfg.Telegram.Enabled {
		return NopNotifier(), nil
	}

	notifier, err := newTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if err != nil {
		return nil, fmt.Errorf("텔레그램 알림 채널 초기화 실패: %w", err)
	}

	return notifier, nil
}

// nopNotifier 아무 동작도 하지 않는 Notifier 구현체입니다.
type nopNotifier struct{}

// NopNotifier 아무 동작도 하지 않는 Notifier를 반환합니다. (알림 비활성화 시, 테스트용)
func NopNotifier() Notifier {
	return nopNotifier{}
}

func (nopNotifier) Notify(string) {}

func (nopNotifier) NotifyError(string, error) {}
