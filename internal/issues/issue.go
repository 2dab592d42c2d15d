// Package issues Git 저장소에 커밋되는 체크리스트 파일 기반의 이슈 관리 기능을 제공합니다.
//
// 이슈는 GitHub의 마크다운 체크리스트 형식을 따르는 텍스트 파일로 관리됩니다:
//
//	- [ ] ISSUE-1: 인증 기능 추가 | assignee=alice | labels=backend, auth
//	- [x] ISSUE-2: API 문서화
//	- [/] ISSUE-3: 이상 행위 점수 개선
//
// [ ]는 미해결(open), [x]는 종료(closed), [/]는 완료(completed) 상태를
// 나타냅니다. 테스트 편의를 위해 동일한 내용의 JSON 표현도 지원합니다.
package issues

import "strings"

// Status 이슈의 처리 상태입니다.
type Status string

const (
	// StatusOpen 미해결 상태
	StatusOpen Status = "open"

	// StatusClosed 종료 상태
	StatusClosed Status = "closed"

	// StatusCompleted 완료 상태
	StatusCompleted Status = "completed"
)

// Issue 단일 이슈 항목입니다.
type Issue struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Status   Status            `json:"status"`
	Assignee string            `json:"assignee,omitempty"`
	Labels   []string          `json:"labels,omitempty"`
	Metadata map[string]string `json:"-"`
}

// normalize 이슈의 각 필드를 정규화한 복사본을 반환합니다.
func (i Issue) normalize() Issue {
	i.ID = normalizeIssueID(i.ID)
	i.Title = strings.TrimSpace(i.Title)
	i.Status = normalizeStatus(string(i.Status))

	var labels []string
	for _, label := range i.Labels {
		if label = strings.TrimSpace(label); label != "" {
			labels = append(labels, label)
		}
	}
	i.Labels = labels

	metadata := make(map[string]string)
	for key, value := range i.Metadata {
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key != "" && value != "" {
			metadata[key] = value
		}
	}
	if len(metadata) == 0 {
		metadata = nil
	}
	i.Metadata = metadata

	return i
}

// normalizeStatus 임의의 입력 문자열을 지원되는 상태 값으로 변환합니다.
// 인식할 수 없는 값은 open으로 처리합니다.
func normalizeStatus(value string) Status {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "open":
		return StatusOpen
	case "closed", "close":
		return StatusClosed
	case "completed", "done", "resolved", "complete":
		return StatusCompleted
	default:
		return StatusOpen
	}
}

// normalizeIssueID 이슈 식별자를 비교 가능한 형태로 정규화합니다. (공백 및 선행 # 제거)
func normalizeIssueID(issueID string) string {
	return strings.TrimLeft(strings.TrimSpace(issueID), "#")
}

// statusFromToken 마크다운 체크박스 토큰을 상태 값으로 변환합니다.
func statusFromToken(token string) Status {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "x", "✗", "✔", "v":
		return StatusClosed
	case "/", "~", "c":
		return StatusCompleted
	default:
		return StatusOpen
	}
}

// statusToken 상태 값을 마크다운 체크박스 토큰으로 변환합니다.
func statusToken(status Status) string {
	switch status {
	case StatusClosed:
		return "x"
	case StatusCompleted:
		return "/"
	default:
		return " "
	}
}
