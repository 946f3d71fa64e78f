package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStd = errors.New("standard error")

// TestNew는 New 함수의 에러 생성 동작을 검증합니다.
func TestNew(t *testing.T) {
	err := New(InvalidInput, "메시지 본문이 비어 있습니다")
	require.Error(t, err)

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, InvalidInput, appErr.Type)
	assert.Equal(t, "메시지 본문이 비어 있습니다", appErr.Message)
	assert.Nil(t, appErr.Cause)
}

// TestNewf는 포맷 문자열을 사용한 에러 생성을 검증합니다.
func TestNewf(t *testing.T) {
	err := Newf(NotFound, "엔트리('%s')를 찾을 수 없습니다", "wework-app")
	require.Error(t, err)
	assert.Equal(t, "엔트리('wework-app')를 찾을 수 없습니다", err.Error())
	assert.Equal(t, NotFound, GetType(err))
}

// TestWrap은 에러 래핑과 원인 에러 보존 여부를 검증합니다.
func TestWrap(t *testing.T) {
	wrapped := Wrap(errStd, Unavailable, "토큰 발급 요청 실패")
	require.Error(t, wrapped)

	assert.Equal(t, "토큰 발급 요청 실패: standard error", wrapped.Error())
	assert.Equal(t, errStd, Cause(wrapped))
	assert.True(t, errors.Is(wrapped, errStd))
}

// TestIs는 타입 기반 에러 검사 동작을 검증합니다.
//
// 검증 항목:
//   - 일치하는 타입
//   - 일치하지 않는 타입
//   - AppError가 아닌 에러
//   - 래핑된 AppError
func TestIs(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		errType  ErrorType
		expected bool
	}{
		{name: "Matching type", err: New(Unauthorized, "인증 실패"), errType: Unauthorized, expected: true},
		{name: "Mismatched type", err: New(Unauthorized, "인증 실패"), errType: NotFound, expected: false},
		{name: "Standard error", err: errStd, errType: Internal, expected: false},
		{name: "Nil error", err: nil, errType: Internal, expected: false},
		{name: "Wrapped AppError", err: fmt.Errorf("outer: %w", New(Timeout, "시간 초과")), errType: Timeout, expected: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, Is(c.err, c.errType))
		})
	}
}

// TestRootCause는 중첩된 에러 체인에서 최상위 원인 에러를 찾는 동작을 검증합니다.
func TestRootCause(t *testing.T) {
	level1 := Wrap(errStd, System, "레벨 1")
	level2 := Wrap(level1, ExecutionFailed, "레벨 2")
	level3 := Wrap(level2, Internal, "레벨 3")

	assert.Equal(t, errStd, RootCause(level3))
	assert.Equal(t, errStd, RootCause(errStd))
}

// TestGetType은 에러 타입 추출 동작을 검증합니다.
func TestGetType(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		expected ErrorType
	}{
		{name: "AppError", err: New(ParsingFailed, "JSON 파싱 실패"), expected: ParsingFailed},
		{name: "Standard error", err: errStd, expected: Unknown},
		{name: "Nil error", err: nil, expected: Unknown},
		{name: "Wrapped AppError", err: fmt.Errorf("outer: %w", New(Forbidden, "권한 없음")), expected: Forbidden},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, GetType(c.err))
		})
	}
}

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = New(Internal, "error message")
	}
}

func BenchmarkWrap(b *testing.B) {
	err := errors.New("base error")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Wrap(err, Internal, "wrapped message")
	}
}
