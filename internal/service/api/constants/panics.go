package constants

// 프로그래밍 오류(필수 의존성 누락 등)에 대한 패닉 메시지 상수입니다.
const (
	// PanicMsgAppConfigRequired AppConfig가 nil인 경우
	PanicMsgAppConfigRequired = "AppConfig는 필수입니다"

	// PanicMsgAlertNotifierRequired 운영자 알림 Notifier가 nil인 경우
	PanicMsgAlertNotifierRequired = "alert.Notifier는 필수입니다"
)
