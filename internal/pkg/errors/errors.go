// Package errors 애플리케이션 전용 에러 처리 시스템을 제공합니다.
//
// 표준 errors 패키지를 확장하여 타입 기반 에러 분류와 에러 체이닝을 지원합니다.
// 모든 에러는 ErrorType으로 분류되며, Wrap 함수를 통해 컨텍스트를 누적할 수 있습니다.
//
// # 기본 사용법
//
// 새 에러 생성:
//
//	err := errors.New(errors.InvalidInput, "메시지 본문이 비어 있습니다")
//
// 에러 래핑 (컨텍스트 추가):
//
//	if err != nil {
//	    return errors.Wrap(err, errors.Unavailable, "토큰 발급 요청 실패")
//	}
//
// 에러 타입 검사:
//
//	if errors.Is(err, errors.Unauthorized) {
//	    // 인증 실패 처리
//	}
package errors

import (
	"errors"
	"fmt"
)

// ErrorType 에러의 종류를 나타내는 타입입니다.
type ErrorType string

// 에러 타입 상수
const (
	// Unknown 분류할 수 없는 에러 (기본값, 사용 지양)
	Unknown ErrorType = "Unknown"

	// Internal 애플리케이션 내부 로직 오류 (버그로 간주)
	Internal ErrorType = "Internal"

	// System 시스템 또는 인프라 수준의 장애 (디스크, 네트워크 등)
	System ErrorType = "System"

	// Unauthorized 인증 실패 (토큰 발급 실패, 만료된 자격증명 등)
	Unauthorized ErrorType = "Unauthorized"

	// Forbidden 권한 부족 (인증은 성공했지만 플랫폼이 전송을 거부)
	Forbidden ErrorType = "Forbidden"

	// InvalidInput 입력값 검증 실패 (필수 필드 누락, 잘못된 형식 등)
	InvalidInput ErrorType = "InvalidInput"

	// NotFound 요청한 리소스를 찾을 수 없음 (미등록 엔트리 등)
	NotFound ErrorType = "NotFound"

	// ExecutionFailed 비즈니스 로직 수행 실패 (외부 API 호출 실패 등)
	ExecutionFailed ErrorType = "ExecutionFailed"

	// ParsingFailed 데이터 파싱 또는 형식 변환 실패 (응답 JSON 파싱 오류 등)
	ParsingFailed ErrorType = "ParsingFailed"

	// Timeout 작업 시간 초과
	Timeout ErrorType = "Timeout"

	// Unavailable 서비스 일시적 사용 불가 (플랫폼 점검, 과부하 등)
	Unavailable ErrorType = "Unavailable"
)

// AppError 애플리케이션 전용 에러 구조체입니다.
type AppError struct {
	Type    ErrorType // 에러 종류
	Message string    // 사용자에게 보여줄 메시지
	Cause   error     // 원인 에러 (Wrapping)
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New 새로운 에러를 생성합니다.
func New(errType ErrorType, msg string) error {
	return &AppError{
		Type:    errType,
		Message: msg,
	}
}

// Newf 포맷 문자열을 사용하여 새로운 에러를 생성합니다.
func Newf(errType ErrorType, format string, args ...any) error {
	return &AppError{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap 기존 에러를 감싸서 새로운 에러를 생성합니다.
func Wrap(err error, errType ErrorType, msg string) error {
	return &AppError{
		Type:    errType,
		Message: msg,
		Cause:   err,
	}
}

// Is 에러 타입이 일치하는지 확인합니다.
func Is(err error, errType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// As 표준 errors.As 함수를 래핑합니다.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Cause 원인 에러를 반환합니다.
func Cause(err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Cause
	}
	return nil
}

// RootCause 에러 체인의 최상위 원인 에러를 반환합니다.
// 중첩된 에러를 재귀적으로 unwrap하여 가장 근본적인 원인을 찾습니다.
func RootCause(err error) error {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err
		}
		err = unwrapped
	}
}

// GetType 에러 타입을 반환합니다. AppError가 아니거나 nil이면 Unknown을 반환합니다.
func GetType(err error) ErrorType {
	if err == nil {
		return Unknown
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return Unknown
}
