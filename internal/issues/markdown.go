package issues

import (
	"regexp"
	"strings"
)

var (
	// markdownLinePattern 마크다운 체크리스트 항목 패턴 (- [x] 또는 * [ ] 형식)
	markdownLinePattern = regexp.MustCompile(`^\s*[-*]\s*\[([^\]])\]\s*(.+?)\s*$`)

	// idTitlePattern "ID: 제목" 형식의 헤드라인 패턴 (구분자: 콜론, 하이픈, 엔대시)
	idTitlePattern = regexp.MustCompile(`^([#A-Za-z0-9._-]+)\s*[:\-–]\s*(.+)$`)
)

// parseMarkdown 마크다운 체크리스트 텍스트를 이슈 목록으로 파싱합니다.
// 체크리스트 형식이 아닌 줄(제목, 빈 줄 등)은 무시합니다.
func parseMarkdown(text string) []Issue {
	var parsed []Issue

	for _, line := range strings.Split(text, "\n") {
		match := markdownLinePattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		token, body := match[1], strings.TrimSpace(match[2])

		// 파이프(|)로 구분된 세그먼트: 첫 번째는 헤드라인, 나머지는 메타데이터
		var segments []string
		for _, segment := range strings.Split(body, "|") {
			if segment = strings.TrimSpace(segment); segment != "" {
				segments = append(segments, segment)
			}
		}

		var headline string
		if len(segments) > 0 {
			headline = segments[0]
		}

		issueID, title := parseHeadline(headline)

		issue := Issue{
			ID:     issueID,
			Title:  title,
			Status: statusFromToken(token),
		}

		var metadataSegments []string
		if len(segments) > 1 {
			metadataSegments = segments[1:]
		}

		for _, segment := range metadataSegments {
			key, value, found := strings.Cut(segment, "=")
			if !found {
				continue
			}
			key = strings.ToLower(strings.TrimSpace(key))
			value = strings.TrimSpace(value)

			switch key {
			case "assignee":
				issue.Assignee = value
			case "labels":
				issue.Labels = splitLabels(value)
			default:
				if issue.Metadata == nil {
					issue.Metadata = make(map[string]string)
				}
				issue.Metadata[key] = value
			}
		}

		parsed = append(parsed, issue.normalize())
	}

	return parsed
}

// parseHeadline 헤드라인에서 이슈 ID와 제목을 분리합니다.
//
// "ID: 제목" 형식을 우선 적용하고, 구분자가 없으면 첫 번째 공백을
// 기준으로 분리합니다.
func parseHeadline(headline string) (issueID, title string) {
	if match := idTitlePattern.FindStringSubmatch(headline); match != nil {
		return match[1], strings.TrimSpace(match[2])
	}

	parts := strings.Fields(headline)
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(strings.TrimPrefix(headline, parts[0]))
}

// splitLabels 쉼표로 구분된 라벨 문자열을 분리합니다.
func splitLabels(value string) []string {
	var labels []string
	for _, label := range strings.Split(value, ",") {
		if label = strings.TrimSpace(label); label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}

// formatMarkdown 이슈 목록을 마크다운 체크리스트 텍스트로 직렬화합니다.
func formatMarkdown(issueList []Issue) string {
	var sb strings.Builder
	for _, issue := range issueList {
		sb.WriteString(formatMarkdownIssue(issue))
		sb.WriteString("\n")
	}
	return sb.String()
}

// formatMarkdownIssue 단일 이슈를 마크다운 체크리스트 한 줄로 직렬화합니다.
func formatMarkdownIssue(issue Issue) string {
	headline := issue.ID
	if issue.Title != "" {
		headline = issue.ID + ": " + issue.Title
	}

	segments := []string{headline}
	if issue.Assignee != "" {
		segments = append(segments, "assignee="+issue.Assignee)
	}
	if len(issue.Labels) > 0 {
		segments = append(segments, "labels="+strings.Join(issue.Labels, ", "))
	}
	for _, key := range sortedKeys(issue.Metadata) {
		if value := issue.Metadata[key]; value != "" {
			segments = append(segments, key+"="+value)
		}
	}

	return "- [" + statusToken(issue.Status) + "] " + strings.Join(segments, " | ")
}
