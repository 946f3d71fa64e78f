// Package wework 기업용 메신저 플랫폼으로 알림 메시지를 발송하는 핵심 기능을 제공합니다.
//
// 두 가지 발송 채널을 지원합니다.
//   - app: 접근 토큰 기반의 기업용 애플리케이션 API
//   - bot: 웹훅 키 기반의 그룹 로봇 API
package wework

import "time"

const (
	// DefaultBaseURL 플랫폼 API의 기본 URL입니다.
	DefaultBaseURL = "https://qyapi.weixin.qq.com/cgi-bin"

	// DefaultHTTPTimeout 플랫폼 API 호출의 기본 제한시간입니다.
	DefaultHTTPTimeout = 10 * time.Second

	// DefaultTokenTTL 플랫폼이 만료시간을 알려주지 않은 경우 적용되는 접근 토큰의 기본 유효기간입니다.
	DefaultTokenTTL = 7200 * time.Second

	// TokenExpirySkew 접근 토큰 만료 판정 시 적용되는 여유시간입니다.
	// 실제 만료 직전의 토큰으로 발송을 시도하다 실패하는 것을 방지합니다.
	TokenExpirySkew = 30 * time.Second
)

// DefaultTokenInvalidCodes 접근 토큰이 무효함을 의미하는 플랫폼 오류 코드의 기본 목록입니다.
//   - 40014: 유효하지 않은 접근 토큰
//   - 42001: 접근 토큰 만료
//   - 40001: 유효하지 않은 자격 증명
//
// 플랫폼이 코드를 추가할 수 있으므로 채널 설정을 통해 재정의할 수 있습니다.
var DefaultTokenInvalidCodes = []int64{40014, 42001, 40001}

// 로그 컴포넌트 이름
const (
	componentDispatcher = "wework.dispatcher"
	componentAppClient  = "wework.app-client"
	componentBotClient  = "wework.bot-client"
	componentService    = "wework.service"
)
