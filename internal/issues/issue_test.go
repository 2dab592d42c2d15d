package issues

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected Status
	}{
		{"open", StatusOpen},
		{"OPEN", StatusOpen},
		{" closed ", StatusClosed},
		{"close", StatusClosed},
		{"completed", StatusCompleted},
		{"done", StatusCompleted},
		{"resolved", StatusCompleted},
		{"complete", StatusCompleted},
		{"", StatusOpen},
		{"nonsense", StatusOpen},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, normalizeStatus(tt.input), "입력: %q", tt.input)
	}
}

func TestNormalizeIssueID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ISSUE-1", normalizeIssueID(" #ISSUE-1 "))
	assert.Equal(t, "ISSUE-2", normalizeIssueID("##ISSUE-2"))
	assert.Equal(t, "", normalizeIssueID("  "))
}

func TestStatusFromToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token    string
		expected Status
	}{
		{" ", StatusOpen},
		{"x", StatusClosed},
		{"X", StatusClosed},
		{"✔", StatusClosed},
		{"v", StatusClosed},
		{"/", StatusCompleted},
		{"~", StatusCompleted},
		{"c", StatusCompleted},
		{"?", StatusOpen},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, statusFromToken(tt.token), "토큰: %q", tt.token)
	}
}

func TestParseMarkdown(t *testing.T) {
	t.Parallel()

	t.Run("구분자 없는 헤드라인은 첫 공백 기준으로 분리", func(t *testing.T) {
		t.Parallel()

		parsed := parseMarkdown("- [ ] ISSUE-9 제목 없는 형식")
		require.Len(t, parsed, 1)
		assert.Equal(t, "ISSUE-9", parsed[0].ID)
		assert.Equal(t, "제목 없는 형식", parsed[0].Title)
	})

	t.Run("별표 불릿과 엔대시 구분자 지원", func(t *testing.T) {
		t.Parallel()

		parsed := parseMarkdown("* [x] ISSUE-10 – 엔대시 제목")
		require.Len(t, parsed, 1)
		assert.Equal(t, "ISSUE-10", parsed[0].ID)
		assert.Equal(t, "엔대시 제목", parsed[0].Title)
		assert.Equal(t, StatusClosed, parsed[0].Status)
	})

	t.Run("체크리스트 형식이 아닌 줄은 무시", func(t *testing.T) {
		t.Parallel()

		parsed := parseMarkdown("# 제목\n\n일반 텍스트\n- [ ] A-1: 유효한 항목")
		require.Len(t, parsed, 1)
		assert.Equal(t, "A-1", parsed[0].ID)
	})

	t.Run("등호 없는 메타데이터 세그먼트는 무시", func(t *testing.T) {
		t.Parallel()

		parsed := parseMarkdown("- [ ] A-1: 제목 | 잘못된세그먼트 | priority=low")
		require.Len(t, parsed, 1)
		assert.Equal(t, map[string]string{"priority": "low"}, parsed[0].Metadata)
	})
}

func TestFormatMarkdownIssue(t *testing.T) {
	t.Parallel()

	t.Run("전체 필드 직렬화", func(t *testing.T) {
		t.Parallel()

		line := formatMarkdownIssue(Issue{
			ID:       "ISSUE-1",
			Title:    "인증 기능 추가",
			Status:   StatusOpen,
			Assignee: "alice",
			Labels:   []string{"backend", "auth"},
			Metadata: map[string]string{"priority": "high"},
		})
		assert.Equal(t, "- [ ] ISSUE-1: 인증 기능 추가 | assignee=alice | labels=backend, auth | priority=high", line)
	})

	t.Run("제목 없는 이슈는 ID만 기록", func(t *testing.T) {
		t.Parallel()

		line := formatMarkdownIssue(Issue{ID: "ISSUE-2", Status: StatusClosed})
		assert.Equal(t, "- [x] ISSUE-2", line)
	})

	t.Run("파싱-직렬화 왕복 후 내용 유지", func(t *testing.T) {
		t.Parallel()

		original := "- [/] ISSUE-3: 점수 개선 | assignee=bob | labels=ml"
		parsed := parseMarkdown(original)
		require.Len(t, parsed, 1)
		assert.Equal(t, original, formatMarkdownIssue(parsed[0]))
	})
}
