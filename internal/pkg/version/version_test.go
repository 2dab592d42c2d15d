package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnrichBuildInfo(t *testing.T) {
	t.Run("런타임 정보 보강", func(t *testing.T) {
		bi := enrichBuildInfo(Info{Version: "v1.2.3"})

		assert.Equal(t, "v1.2.3", bi.Version)
		assert.Equal(t, runtime.Version(), bi.GoVersion)
		assert.Equal(t, runtime.GOOS, bi.OS)
		assert.Equal(t, runtime.GOARCH, bi.Arch)
	})

	t.Run("빈 버전은 unknown으로 대체", func(t *testing.T) {
		orig := readBuildInfo
		readBuildInfo = func() (*debug.BuildInfo, bool) { return nil, false }
		defer func() { readBuildInfo = orig }()

		bi := enrichBuildInfo(Info{})
		assert.Equal(t, "unknown", bi.Version)
		assert.Equal(t, "unknown", bi.Commit)
	})

	t.Run("VCS 메타데이터로 커밋 정보 보강", func(t *testing.T) {
		orig := readBuildInfo
		readBuildInfo = func() (*debug.BuildInfo, bool) {
			return &debug.BuildInfo{
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "f25b8bf"},
					{Key: "vcs.modified", Value: "true"},
				},
			}, true
		}
		defer func() { readBuildInfo = orig }()

		bi := enrichBuildInfo(Info{})
		assert.Equal(t, "f25b8bf", bi.Commit)
		assert.True(t, bi.DirtyBuild)
	})
}

func TestInfo_String(t *testing.T) {
	t.Parallel()

	t.Run("빈 정보", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "unknown", Info{}.String())
	})

	t.Run("Dirty 빌드 표시", func(t *testing.T) {
		t.Parallel()
		s := Info{Version: "v1.0.0", DirtyBuild: true}.String()
		assert.Contains(t, s, "v1.0.0+dirty")
	})

	t.Run("커밋 해시는 7자로 축약", func(t *testing.T) {
		t.Parallel()
		s := Info{Version: "v1.0.0", Commit: "f25b8bf0123456789"}.String()
		assert.Contains(t, s, "commit: f25b8bf")
		assert.NotContains(t, s, "f25b8bf0")
	})
}

func TestGet(t *testing.T) {
	bi := Get()
	assert.NotEmpty(t, bi.Version, "버전은 최소한 unknown이어야 합니다")
	assert.NotEmpty(t, bi.GoVersion)
}
