package maputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testMessage struct {
	MessageType string `json:"message_type"`
	Message     string `json:"message"`
	ToUser      string `json:"to_user"`
	AgentID     int    `json:"agent_id"`
	Safe        bool   `json:"safe"`
}

// TestDecode는 맵 데이터를 구조체로 변환하는 기본 동작을 검증합니다.
func TestDecode(t *testing.T) {
	input := map[string]any{
		"message_type": "text",
		"message":      "테스트 메시지",
		"to_user":      "user1|user2",
	}

	decoded, err := Decode[testMessage](input)
	require.NoError(t, err)
	assert.Equal(t, "text", decoded.MessageType)
	assert.Equal(t, "테스트 메시지", decoded.Message)
	assert.Equal(t, "user1|user2", decoded.ToUser)
}

// TestDecode_WeaklyTyped는 문자열로 전달된 숫자/불리언 값의 자동 보정을 검증합니다.
func TestDecode_WeaklyTyped(t *testing.T) {
	input := map[string]any{
		"agent_id": "1000002",
		"safe":     "1",
	}

	decoded, err := Decode[testMessage](input)
	require.NoError(t, err)
	assert.Equal(t, 1000002, decoded.AgentID)
	assert.True(t, decoded.Safe)
}

// TestDecode_TrimSpace는 문자열 값의 앞뒤 공백 제거 동작을 검증합니다.
func TestDecode_TrimSpace(t *testing.T) {
	input := map[string]any{
		"message": "  hello  ",
	}

	decoded, err := Decode[testMessage](input)
	require.NoError(t, err)
	assert.Equal(t, "hello", decoded.Message)

	// 옵션으로 비활성화한 경우 원본 유지
	decoded, err = Decode[testMessage](input, WithTrimSpace(false))
	require.NoError(t, err)
	assert.Equal(t, "  hello  ", decoded.Message)
}

// TestDecode_UnusedFields는 정의되지 않은 필드 처리 동작을 검증합니다.
func TestDecode_UnusedFields(t *testing.T) {
	input := map[string]any{
		"message": "hi",
		"unknown": "value",
	}

	// 기본값: 무시
	_, err := Decode[testMessage](input)
	assert.NoError(t, err)

	// WithErrorUnused(true): 에러 발생
	_, err = Decode[testMessage](input, WithErrorUnused(true))
	assert.Error(t, err)
}

// TestDecodeTo_NilOutput은 nil 포인터 전달 시 에러 반환을 검증합니다.
func TestDecodeTo_NilOutput(t *testing.T) {
	var output *testMessage
	err := DecodeTo[testMessage](map[string]any{}, output)
	assert.Error(t, err)
}
