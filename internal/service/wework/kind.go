package wework

import (
	"fmt"

	apperrors "github.com/darkkaiser/wework-notify/internal/pkg/errors"
)

// EntryKind 발송 채널의 종류입니다.
type EntryKind string

const (
	// EntryKindApp 접근 토큰 기반의 기업용 애플리케이션 채널
	EntryKindApp EntryKind = "app"

	// EntryKindBot 웹훅 키 기반의 그룹 로봇 채널
	EntryKindBot EntryKind = "bot"
)

// ParseEntryKind 문자열을 EntryKind로 변환합니다. 지원하지 않는 값이면 에러를 반환합니다.
func ParseEntryKind(s string) (EntryKind, error) {
	switch EntryKind(s) {
	case EntryKindApp:
		return EntryKindApp, nil
	case EntryKindBot:
		return EntryKindBot, nil
	default:
		return "", apperrors.New(apperrors.InvalidInput, fmt.Sprintf("지원하지 않는 채널 종류입니다: '%s'", s))
	}
}

func (k EntryKind) String() string {
	return string(k)
}
