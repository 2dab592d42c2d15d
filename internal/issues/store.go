package issues

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	apperrors "github.com/umbra-platform/umbra-security-service/internal/pkg/errors"
)

const (
	// DefaultIssuesFile 기본 이슈 파일명
	DefaultIssuesFile = "GIT_ISSUES.md"

	// EnvIssuesFile 이슈 파일 경로를 지정하는 환경 변수
	EnvIssuesFile = "GIT_ISSUES_FILE"

	// EnvIssuesFormat 파일 형식(markdown/json)을 강제하는 환경 변수
	EnvIssuesFormat = "GIT_ISSUES_FORMAT"
)

// 이슈 파일의 저장 형식입니다.
const (
	formatMarkdownName = "markdown"
	formatJSONName     = "json"
)

// Store 이슈 파일에 대한 영속성 계층입니다.
//
// 파일 형식(markdown/json)은 최초 접근 시 한 번 판별되어 캐시되며,
// 이후의 읽기/쓰기는 동일한 형식을 유지합니다.
type Store struct {
	path   string
	format string // 판별 전에는 빈 문자열
}

// NewStore 지정된 경로의 이슈 파일을 다루는 Store를 생성합니다.
//
// path가 빈 문자열이면 GIT_ISSUES_FILE 환경 변수를, 그것도 없으면
// 기본 파일명(GIT_ISSUES.md)을 사용합니다.
func NewStore(path string) *Store {
	if path == "" {
		path = os.Getenv(EnvIssuesFile)
	}
	if path == "" {
		path = DefaultIssuesFile
	}
	return &Store{path: path}
}

// ListOpenIssues 상태가 open인 모든 이슈를 반환합니다.
func (s *Store) ListOpenIssues() ([]Issue, error) {
	all, err := s.loadIssues()
	if err != nil {
		return nil, err
	}

	var open []Issue
	for _, issue := range all {
		if issue.Status == StatusOpen {
			open = append(open, issue)
		}
	}
	return open, nil
}

// CloseIssue 단일 이슈를 closed 상태로 변경합니다.
// 이슈가 존재하지 않으면 NotFound 에러를 반환합니다.
func (s *Store) CloseIssue(issueID string) (Issue, error) {
	return s.updateSingle(issueID, StatusClosed)
}

// CompleteIssue 단일 이슈를 completed 상태로 변경합니다.
// 이슈가 존재하지 않으면 NotFound 에러를 반환합니다.
func (s *Store) CompleteIssue(issueID string) (Issue, error) {
	return s.updateSingle(issueID, StatusCompleted)
}

// CloseImplementedIssues 지정된 모든 이슈를 closed 상태로 변경합니다.
// 상태가 실제로 변경된 이슈만 반환하며, 목록에 존재하지 않는 이슈가
// 포함되어 있으면 NotFound 에러를 반환합니다.
func (s *Store) CloseImplementedIssues(implementedIDs []string) ([]Issue, error) {
	return s.bulkUpdate(implementedIDs, StatusClosed, nil)
}

// CompleteOpenIssues 현재 open 상태인 모든 이슈를 completed 상태로 변경합니다.
func (s *Store) CompleteOpenIssues() ([]Issue, error) {
	all, err := s.loadIssues()
	if err != nil {
		return nil, err
	}

	var openIDs []string
	for _, issue := range all {
		if issue.Status == StatusOpen {
			openIDs = append(openIDs, issue.ID)
		}
	}
	return s.bulkUpdate(openIDs, StatusCompleted, all)
}

func (s *Store) updateSingle(issueID string, status Status) (Issue, error) {
	updated, err := s.bulkUpdate([]string{issueID}, status, nil)
	if err != nil {
		return Issue{}, err
	}
	if len(updated) == 0 {
		// 이미 목표 상태인 경우: 변경 없음
		return Issue{}, apperrors.Newf(apperrors.Conflict, "이슈가 이미 %s 상태입니다: %s", status, issueID)
	}
	return updated[0], nil
}

// bulkUpdate 지정된 이슈들의 상태를 일괄 변경하고 파일에 반영합니다.
//
// issueList가 nil이면 파일에서 새로 로드합니다. 상태가 실제로 변경된
// 이슈만 반환하며, 존재하지 않는 이슈 ID가 있으면 NotFound 에러를
// 반환하고 파일은 변경하지 않습니다.
func (s *Store) bulkUpdate(issueIDs []string, status Status, issueList []Issue) ([]Issue, error) {
	targetIDs := make(map[string]bool)
	for _, issueID := range issueIDs {
		if normalized := normalizeIssueID(issueID); normalized != "" {
			targetIDs[normalized] = true
		}
	}
	if len(targetIDs) == 0 {
		return nil, nil
	}

	if issueList == nil {
		var err error
		if issueList, err = s.loadIssues(); err != nil {
			return nil, err
		}
	}

	found := make(map[string]bool)
	var updated []Issue
	newList := make([]Issue, 0, len(issueList))

	for _, issue := range issueList {
		if targetIDs[issue.ID] {
			found[issue.ID] = true
			if issue.Status != status {
				issue.Status = status
				updated = append(updated, issue)
			}
		}
		newList = append(newList, issue)
	}

	var missing []string
	for issueID := range targetIDs {
		if !found[issueID] {
			missing = append(missing, issueID)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, apperrors.Newf(apperrors.NotFound, "존재하지 않는 이슈입니다: %s", strings.Join(missing, ", "))
	}

	if len(updated) > 0 {
		if err := s.persistIssueList(newList); err != nil {
			return nil, err
		}
	}

	return updated, nil
}

// loadIssues 이슈 파일을 읽어 이슈 목록을 반환합니다. 파일이 없으면 빈 목록을 반환합니다.
func (s *Store) loadIssues() ([]Issue, error) {
	text, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, apperrors.Wrapf(err, apperrors.System, "이슈 파일을 읽을 수 없습니다: %s", s.path)
	}

	if s.detectFormat() == formatJSONName {
		return parseJSON(string(text)), nil
	}
	return parseMarkdown(string(text)), nil
}

// detectFormat 이슈 파일의 저장 형식을 판별합니다.
//
// 판별 우선순위:
//  1. GIT_ISSUES_FORMAT 환경 변수 (markdown 또는 json)
//  2. 파일 확장자 (.json)
//  3. 파일 내용의 선행 문자 ('['로 시작하면 JSON)
//  4. 기본값: markdown
func (s *Store) detectFormat() string {
	if s.format != "" {
		return s.format
	}

	if override := os.Getenv(EnvIssuesFormat); override == formatJSONName || override == formatMarkdownName {
		s.format = override
		return s.format
	}

	if strings.EqualFold(filepath.Ext(s.path), ".json") {
		s.format = formatJSONName
		return s.format
	}

	if text, err := os.ReadFile(s.path); err == nil {
		if strings.HasPrefix(strings.TrimSpace(string(text)), "[") {
			s.format = formatJSONName
			return s.format
		}
	}

	s.format = formatMarkdownName
	return s.format
}

// persistIssueList 이슈 목록 전체를 판별된 형식으로 파일에 기록합니다.
func (s *Store) persistIssueList(issueList []Issue) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return apperrors.Wrapf(err, apperrors.System, "이슈 파일 디렉터리를 생성할 수 없습니다: %s", dir)
		}
	}

	var text string
	if s.detectFormat() == formatJSONName {
		var err error
		if text, err = formatJSON(issueList); err != nil {
			return apperrors.Wrap(err, apperrors.ParsingFailed, "이슈 목록 JSON 직렬화 실패")
		}
	} else {
		text = formatMarkdown(issueList)
	}

	if err := os.WriteFile(s.path, []byte(text), 0o644); err != nil {
		return apperrors.Wrapf(err, apperrors.System, "이슈 파일을 기록할 수 없습니다: %s", s.path)
	}
	return nil
}
