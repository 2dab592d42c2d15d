// Package system 시스템 엔드포인트 핸들러를 제공합니다.
//
// 헬스체크, 버전 정보 등 인증이 필요 없는 시스템 수준의 API를 처리합니다.
package system

import (
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/umbra-platform/umbra-security-service/internal/config"
	"github.com/umbra-platform/umbra-security-service/internal/pkg/version"
	"github.com/umbra-platform/umbra-security-service/internal/service/api/constants"
	"github.com/umbra-platform/umbra-security-service/internal/service/api/httputil"
	"github.com/umbra-platform/umbra-security-service/internal/service/api/model/system"
	applog "github.com/umbra-platform/umbra-security-service/pkg/log"
)

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 버전 정보)
type Handler struct {
	buildInfo version.Info

	serverStartTime time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(buildInfo version.Info) *Handler {
	return &Handler{
		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버의 동작 상태를 확인합니다.
// @Description 인증 없이 호출 가능하며, 로드밸런서와 모니터링 시스템에서 사용됩니다.
// @Description
// @Description data 필드:
// @Description - status: 서버 상태 (ok)
// @Description - service: 서비스 식별자
// @Description - uptime: 서버 가동 시간(초)
// @Description - version: 실행중인 서버의 버전
// @Tags System
// @Produce json
// @Success 200 {object} response.Envelope{data=system.HealthData} "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	uptime := int64(time.Since(h.serverStartTime).Seconds())

	return httputil.Success(c, system.HealthData{
		Status:  constants.HealthStatusOK,
		Service: config.AppName,
		Uptime:  uptime,
		Version: h.buildInfo.Version,
	})
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 버전, Git 커밋 해시, 빌드 날짜, 빌드 번호, Go 버전을 반환합니다.
// @Description 디버깅 및 배포 버전 확인에 사용됩니다.
// @Tags System
// @Produce json
// @Success 200 {object} response.Envelope{data=system.VersionData} "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return httputil.Success(c, system.VersionData{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   runtime.Version(),
	})
}
