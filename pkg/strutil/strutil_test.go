package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSplitAndTrim은 SplitAndTrim 함수의 문자열 분리 및 정리 동작을 검증합니다.
//
// 검증 항목:
//   - 빈 문자열 처리
//   - 공백만 있는 항목 제외
//   - 앞뒤 공백 제거
func TestSplitAndTrim(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		s        string
		sep      string
		expected []string
	}{
		{name: "Empty string", s: "", sep: "|", expected: nil},
		{name: "Only separators", s: "||", sep: "|", expected: nil},
		{name: "Simple", s: "a|b|c", sep: "|", expected: []string{"a", "b", "c"}},
		{name: "With spaces", s: " a | b |c ", sep: "|", expected: []string{"a", "b", "c"}},
		{name: "Empty tokens skipped", s: "a||b", sep: "|", expected: []string{"a", "b"}},
		{name: "Single token", s: "user1", sep: "|", expected: []string{"user1"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, SplitAndTrim(c.s, c.sep))
		})
	}
}

// TestSplitUnique는 SplitUnique 함수의 중복 제거 및 순서 유지 동작을 검증합니다.
func TestSplitUnique(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		s        string
		sep      string
		expected []string
	}{
		{name: "Empty string", s: "", sep: "|", expected: nil},
		{name: "No duplicates", s: "u1|u2|u3", sep: "|", expected: []string{"u1", "u2", "u3"}},
		{name: "Duplicates collapsed", s: "u1|u2|u1|u3|u2", sep: "|", expected: []string{"u1", "u2", "u3"}},
		{name: "Duplicates with spaces", s: "u1| u1 |u2", sep: "|", expected: []string{"u1", "u2"}},
		{name: "Order preserved", s: "z|a|z|b", sep: "|", expected: []string{"z", "a", "b"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, SplitUnique(c.s, c.sep))
		})
	}
}

// TestHasAnyContent는 HasAnyContent 함수의 내용 존재 여부 판단을 검증합니다.
func TestHasAnyContent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		strs     []string
		expected bool
	}{
		{name: "Single with content", strs: []string{"hello"}, expected: true},
		{name: "Single empty", strs: []string{""}, expected: false},
		{name: "Mixed", strs: []string{"", "world", ""}, expected: true},
		{name: "Nil slice", strs: nil, expected: false},
		{name: "Whitespace only", strs: []string{"  ", "\t"}, expected: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, HasAnyContent(c.strs...))
		})
	}
}
