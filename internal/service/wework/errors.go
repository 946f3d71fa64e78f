package wework

import (
	"fmt"

	apperrors "github.com/darkkaiser/wework-notify/internal/pkg/errors"
)

// 메시지 유효성 검증 실패 에러
//
// 모두 로컬에서 판정되며, 네트워크 접근 전에 호출자에게 즉시 반환됩니다.
var (
	// ErrUnsupportedMessageKind 지원하지 않는 메시지 종류가 지정된 경우
	ErrUnsupportedMessageKind = apperrors.New(apperrors.InvalidInput, "지원하지 않는 메시지 종류입니다")

	// ErrEmptyMessageBody text/markdown 메시지의 본문이 비어있는 경우
	ErrEmptyMessageBody = apperrors.New(apperrors.InvalidInput, "메시지 본문이 비어있습니다")

	// ErrMissingMediaID app 채널의 이미지 메시지에 미디어 ID가 없는 경우
	ErrMissingMediaID = apperrors.New(apperrors.InvalidInput, "이미지 메시지에 image_media_id가 필요합니다")

	// ErrMissingImagePayload bot 채널의 이미지 메시지에 Base64 데이터 또는 MD5 해시값이 없는 경우
	ErrMissingImagePayload = apperrors.New(apperrors.InvalidInput, "이미지 메시지에 image_base64와 image_md5가 모두 필요합니다")

	// ErrNoRecipients app 채널의 발송 요청에 수신자가 하나도 없는 경우
	ErrNoRecipients = apperrors.New(apperrors.InvalidInput, "메시지를 수신할 대상이 지정되지 않았습니다")
)

// DispatchErrorKind 발송 실패의 분류입니다. 호출자는 메시지 문자열이 아닌 이 값으로 분기합니다.
type DispatchErrorKind string

const (
	// DispatchErrorInvalidRequest 발송 요청 자체가 유효하지 않음 (네트워크 접근 없음)
	DispatchErrorInvalidRequest DispatchErrorKind = "invalid_request"

	// DispatchErrorAuthFailed 접근 토큰 발급에 실패함
	DispatchErrorAuthFailed DispatchErrorKind = "auth_failed"

	// DispatchErrorAuthRejected 토큰 재발급 후에도 플랫폼이 토큰을 거부함 (자격 증명 또는 권한 문제 의심)
	DispatchErrorAuthRejected DispatchErrorKind = "auth_rejected"

	// DispatchErrorRemoteFailure 플랫폼이 토큰 이외의 사유로 발송을 거부함
	DispatchErrorRemoteFailure DispatchErrorKind = "remote_failure"

	// DispatchErrorTransportFailure 발송 중 전송 계층 오류가 발생함
	DispatchErrorTransportFailure DispatchErrorKind = "transport_failure"
)

// DispatchStage 발송 처리 과정에서 실패가 발생한 단계입니다.
type DispatchStage string

const (
	// StageValidate 메시지 유효성 검증 단계
	StageValidate DispatchStage = "validate"

	// StageToken 접근 토큰 발급 단계
	StageToken DispatchStage = "token"

	// StageSend 메시지 발송 단계
	StageSend DispatchStage = "send"
)

// DispatchError 발송 실패의 상세 정보를 담는 구조화된 에러입니다.
type DispatchError struct {
	// Kind 실패 분류
	Kind DispatchErrorKind

	// Stage 실패가 발생한 단계
	Stage DispatchStage

	// Code 플랫폼이 보고한 오류 코드 (플랫폼 응답에 의한 실패인 경우)
	Code int64

	// Message 실패 상세 메시지
	Message string

	// Cause 원인 에러
	Cause error
}

// Error error 인터페이스를 구현합니다.
func (e *DispatchError) Error() string {
	msg := fmt.Sprintf("[%s/%s] %s", e.Kind, e.Stage, e.Message)
	if e.Code != 0 {
		msg = fmt.Sprintf("%s (code: %d)", msg, e.Code)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap 원인 에러를 반환하여 errors.Is/As 체인을 지원합니다.
func (e *DispatchError) Unwrap() error {
	return e.Cause
}

// newDispatchError 새로운 DispatchError를 생성합니다.
func newDispatchError(kind DispatchErrorKind, stage DispatchStage, message string, cause error) *DispatchError {
	return &DispatchError{
		Kind:    kind,
		Stage:   stage,
		Message: message,
		Cause:   cause,
	}
}

// DispatchErrorKindOf 에러에서 DispatchErrorKind를 추출합니다.
// DispatchError가 아닌 경우 빈 값과 false를 반환합니다.
func DispatchErrorKindOf(err error) (DispatchErrorKind, bool) {
	var dispatchErr *DispatchError
	if apperrors.As(err, &dispatchErr) {
		return dispatchErr.Kind, true
	}
	return "", false
}
