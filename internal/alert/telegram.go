package alert

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	applog "github.com/umbra-platform/umbra-security-service/pkg/log"
)

const (
	// maxMessageLength 텔레그램 메시지 최대 길이
	// 초과분은 잘라내어 전송 실패를 방지합니다.
	maxMessageLength = 4096

	componentTelegram = "alert.telegram"
)

// botSender 텔레그램 Bot API 중 메시지 전송에 필요한 최소 인터페이스입니다.
// 테스트에서 실제 API 호출 없이 전송 동작을 검증할 수 있도록 분리합니다.
type botSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// telegramNotifier 텔레그램 채널로 운영자 알림을 전송하는 Notifier 구현체입니다.
type telegramNotifier struct {
	bot    botSender
	chatID int64
}

// newTelegramNotifier 텔레그램 Notifier를 생성합니다.
// 봇 토큰 검증을 위해 텔레그램 API 서버와 통신하므로 네트워크 연결이 필요합니다.
func newTelegramNotifier(botToken string, chatID int64) (*telegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	applog.WithComponentAndFields(componentTelegram, applog.Fields{
		"bot_username": bot.Self.UserName,
		"chat_id":      chatID,
	}).Info("텔레그램 알림 채널 초기화 완료")

	return &telegramNotifier{
		bot:    bot,
		chatID: chatID,
	}, nil
}

// Notify 일반 알림 메시지를 전송합니다.
func (n *telegramNotifier) Notify(message string) {
	n.send(message)
}

// NotifyError 에러 상황 알림을 전송합니다. cause가 nil이 아니면 메시지에 덧붙입니다.
func (n *telegramNotifier) NotifyError(message string, cause error) {
	if cause != nil {
		message = fmt.Sprintf("%s\r\n\r\n%s", message, cause)
	}
	n.send("⚠️ " + message)
}

// send 메시지를 전송합니다. 전송 실패는 로깅만 하고 호출자에게 전파하지 않습니다.
func (n *telegramNotifier) send(message string) {
	if len(message) > maxMessageLength {
		message = message[:maxMessageLength]
	}

	msg := tgbotapi.NewMessage(n.chatID, message)
	if _, err := n.bot.Send(msg); err != nil {
		applog.WithComponentAndFields(componentTelegram, applog.Fields{
			"chat_id": n.chatID,
			"error":   err,
		}).Error("텔레그램 알림 전송 실패")
	}
}
