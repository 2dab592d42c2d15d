package alert

import (
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umbra-platform/umbra-security-service/internal/config"
)

// mockBotSender 전송된 메시지를 기록하는 botSender 목(Mock)입니다.
type mockBotSender struct {
	sent    []tgbotapi.MessageConfig
	sendErr error
}

func (m *mockBotSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		m.sent = append(m.sent, msg)
	}
	return tgbotapi.Message{}, m.sendErr
}

func TestNewNotifier_Disabled(t *testing.T) {
	t.Parallel()

	t.Run("nil 설정은 NopNotifier 반환", func(t *testing.T) {
		t.Parallel()
		n, err := NewNotifier(nil)
		require.NoError(t, err)
		assert.NotNil(t, n)
	})

	t.Run("비활성화 설정은 NopNotifier 반환", func(t *testing.T) {
		t.Parallel()
		n, err := NewNotifier(&config.AlertConfig{})
		require.NoError(t, err)
		assert.NotNil(t, n)

		// NopNotifier는 호출해도 아무 동작도 하지 않아야 함
		assert.NotPanics(t, func() {
			n.Notify("테스트")
			n.NotifyError("테스트", assert.AnError)
		})
	})
}

func TestTelegramNotifier_Notify(t *testing.T) {
	t.Parallel()

	mock := &mockBotSender{}
	n := &telegramNotifier{bot: mock, chatID: 12345}

	n.Notify("서버 가동 완료")

	require.Len(t, mock.sent, 1)
	assert.Equal(t, int64(12345), mock.sent[0].ChatID)
	assert.Equal(t, "서버 가동 완료", mock.sent[0].Text)
}

func TestTelegramNotifier_NotifyError(t *testing.T) {
	t.Parallel()

	t.Run("에러 내용이 메시지에 포함됨", func(t *testing.T) {
		t.Parallel()

		mock := &mockBotSender{}
		n := &telegramNotifier{bot: mock, chatID: 12345}

		n.NotifyError("HTTP 서버 치명적 에러", assert.AnError)

		require.Len(t, mock.sent, 1)
		assert.Contains(t, mock.sent[0].Text, "HTTP 서버 치명적 에러")
		assert.Contains(t, mock.sent[0].Text, assert.AnError.Error())
	})

	t.Run("cause가 nil이면 메시지만 전송됨", func(t *testing.T) {
		t.Parallel()

		mock := &mockBotSender{}
		n := &telegramNotifier{bot: mock, chatID: 12345}

		n.NotifyError("경고", nil)

		require.Len(t, mock.sent, 1)
		assert.Contains(t, mock.sent[0].Text, "경고")
	})
}

func TestTelegramNotifier_Send(t *testing.T) {
	t.Parallel()

	t.Run("최대 길이를 초과하는 메시지는 잘라서 전송", func(t *testing.T) {
		t.Parallel()

		mock := &mockBotSender{}
		n := &telegramNotifier{bot: mock, chatID: 1}

		n.Notify(strings.Repeat("a", maxMessageLength+100))

		require.Len(t, mock.sent, 1)
		assert.Len(t, mock.sent[0].Text, maxMessageLength)
	})

	t.Run("전송 실패는 패닉 없이 무시됨", func(t *testing.T) {
		t.Parallel()

		mock := &mockBotSender{sendErr: assert.AnError}
		n := &telegramNotifier{bot: mock, chatID: 1}

		assert.NotPanics(t, func() { n.Notify("실패하는 메시지") })
	})
}
