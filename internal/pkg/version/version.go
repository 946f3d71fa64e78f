// Package version 애플리케이션의 빌드 및 버저닝 정보를 관리합니다.
//
// 빌드 시점에 링커 플래그(-ldflags)를 통해 주입된 메타데이터와
// 실행 시점의 환경 정보(Go 버전, OS, 아키텍처)를 통합하여 제공합니다.
package version

import (
	"fmt"
	"runtime"
	"strings"
)

const unknown = "unknown"

// 다음 변수들은 컴파일 시점에 링커 플래그(ldflags)를 통해 주입됩니다.
// 애플리케이션 로직에서는 이 변수들에 직접 접근하지 말고 Get() 함수를 통해 접근해야 합니다.
var (
	appVersion    = "" // 애플리케이션 버전 (예: v1.0.1-15-gf25b8bf)
	gitCommitHash = "" // Git 커밋 해시 (예: f25b8bf)
	buildDate     = "" // 빌드 수행 시간
)

// Info 애플리케이션의 빌드 정보를 담고 있습니다.
// 주로 /version API 엔드포인트나 로그 출력에 사용됩니다.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// Get 애플리케이션의 빌드 정보를 반환합니다.
// 주입되지 않은 빌드 메타데이터는 "unknown"으로 채워집니다.
func Get() Info {
	return Info{
		Version:   orUnknown(appVersion),
		Commit:    orUnknown(gitCommitHash),
		BuildDate: orUnknown(buildDate),
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// String 빌드 정보를 사람이 읽기 쉬운 한 줄 문자열로 반환합니다.
func (i Info) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s, %s %s/%s)",
		i.Version, i.Commit, i.BuildDate, i.GoVersion, i.OS, i.Arch)
}

func orUnknown(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return unknown
	}
	return s
}
