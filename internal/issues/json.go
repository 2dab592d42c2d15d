package issues

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

// knownJSONKeys JSON 표현에서 고정 필드로 취급되는 키 목록입니다.
// 이외의 키는 모두 Metadata로 수집됩니다.
var knownJSONKeys = map[string]bool{
	"id":       true,
	"title":    true,
	"status":   true,
	"assignee": true,
	"labels":   true,
}

// parseJSON JSON 텍스트를 이슈 목록으로 파싱합니다.
//
// 최상위가 배열인 형식과 {"issues": [...]} 형식을 모두 지원합니다.
// 객체가 아닌 배열 요소는 무시합니다.
func parseJSON(text string) []Issue {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	root := gjson.Parse(text)
	items := root
	if root.IsObject() {
		items = root.Get("issues")
	}
	if !items.IsArray() {
		return nil
	}

	var parsed []Issue
	items.ForEach(func(_, entry gjson.Result) bool {
		if !entry.IsObject() {
			return true
		}

		issue := Issue{
			ID:       entry.Get("id").String(),
			Title:    entry.Get("title").String(),
			Status:   normalizeStatus(entry.Get("status").String()),
			Assignee: strings.TrimSpace(entry.Get("assignee").String()),
			Labels:   parseJSONLabels(entry.Get("labels")),
		}

		entry.ForEach(func(key, value gjson.Result) bool {
			if !knownJSONKeys[key.String()] {
				if issue.Metadata == nil {
					issue.Metadata = make(map[string]string)
				}
				issue.Metadata[key.String()] = value.String()
			}
			return true
		})

		parsed = append(parsed, issue.normalize())
		return true
	})

	return parsed
}

// parseJSONLabels labels 필드를 파싱합니다.
// 문자열("a, b")과 배열(["a","b"]) 표현을 모두 지원합니다.
func parseJSONLabels(value gjson.Result) []string {
	if value.IsArray() {
		var labels []string
		value.ForEach(func(_, label gjson.Result) bool {
			if s := strings.TrimSpace(label.String()); s != "" {
				labels = append(labels, s)
			}
			return true
		})
		return labels
	}
	if value.Type == gjson.String {
		return splitLabels(value.String())
	}
	return nil
}

// formatJSON 이슈 목록을 JSON 배열 텍스트로 직렬화합니다.
// 값이 없는 선택 필드(assignee, labels)는 생략하고, 메타데이터는 최상위에 평탄화합니다.
func formatJSON(issueList []Issue) (string, error) {
	payload := make([]map[string]any, 0, len(issueList))
	for _, issue := range issueList {
		entry := map[string]any{
			"id":     issue.ID,
			"title":  issue.Title,
			"status": issue.Status,
		}
		if issue.Assignee != "" {
			entry["assignee"] = issue.Assignee
		}
		if len(issue.Labels) > 0 {
			entry["labels"] = issue.Labels
		}
		for key, value := range issue.Metadata {
			entry[key] = value
		}
		payload = append(payload, entry)
	}

	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b) + "\n", nil
}

// sortedKeys 맵의 키를 정렬하여 반환합니다. (직렬화 결과의 결정성 보장)
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
