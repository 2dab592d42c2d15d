// Package response API의 표준 응답 포맷(Envelope)을 정의합니다.
//
// 모든 엔드포인트는 성공/실패와 무관하게 동일한 5개 필드(success, data,
// message, error, meta)를 갖는 JSON 객체로 응답합니다. 값이 없는 필드는
// 생략하지 않고 null로 직렬화하여 클라이언트가 항상 동일한 구조를
// 기대할 수 있도록 합니다.
package response

// Envelope API의 표준 응답 구조입니다.
//
// 불변 조건: Success가 false인 경우에만 Error가 채워지며,
// Success가 true인 경우 Error는 항상 null입니다.
// 이 불변 조건은 NewSuccess/NewError 생성자를 통해 보장됩니다.
type Envelope struct {
	// Success 요청 처리 성공 여부
	Success bool `json:"success" example:"true"`

	// Data 응답 본문 데이터 (실패 시 null)
	Data any `json:"data"`

	// Message 사람이 읽을 수 있는 부가 메시지 (없으면 null)
	Message *string `json:"message"`

	// Error 에러 상세 정보 (성공 시 null)
	Error *ErrorDetail `json:"error"`

	// Meta 페이징 등 부가 메타데이터 (없으면 null)
	Meta any `json:"meta"`
}

// ErrorDetail 실패 응답의 에러 상세 정보입니다.
type ErrorDetail struct {
	// Code 기계 판독용 에러 코드 (예: NOT_FOUND)
	Code string `json:"code" example:"NOT_FOUND"`

	// Message 사람이 읽을 수 있는 에러 메시지
	Message string `json:"message" example:"요청한 리소스를 찾을 수 없습니다"`
}

// NewSuccess 성공 응답 Envelope을 생성합니다.
func NewSuccess(data any) Envelope {
	return Envelope{
		Success: true,
		Data:    data,
	}
}

// NewError 실패 응답 Envelope을 생성합니다.
func NewError(code, message string) Envelope {
	return Envelope{
		Success: false,
		Error: &ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// WithMessage Envelope에 부가 메시지를 설정한 복사본을 반환합니다.
func (e Envelope) WithMessage(message string) Envelope {
	e.Message = &message
	return e
}

// WithMeta Envelope에 메타데이터를 설정한 복사본을 반환합니다.
func (e Envelope) WithMeta(meta any) Envelope {
	e.Meta = meta
	return e
}
