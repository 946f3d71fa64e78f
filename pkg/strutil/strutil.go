// Package strutil은 문자열 처리를 위한 다양한 유틸리티 함수들을 제공합니다.
package strutil

import (
	"strings"
)

// SplitAndTrim 주어진 구분자로 문자열을 분리한 후, 각 항목의 앞뒤 공백을 제거하고 빈 문자열을 제외한 슬라이스를 반환합니다.
// 결과가 없거나 입력 문자열이 비어있는 경우 nil을 반환합니다.
// 예: "a, , b,c" (구분자 ",") -> ["a", "b", "c"]
func SplitAndTrim(s, sep string) []string {
	tokens := strings.Split(s, sep)
	if len(tokens) == 0 {
		return nil
	}

	result := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token != "" {
			result = append(result, token)
		}
	}

	if len(result) == 0 {
		return nil
	}

	return result
}

// SplitUnique 주어진 구분자로 문자열을 분리한 후, 공백 제거/빈 문자열 제외에 더해 중복 항목을 제거한 슬라이스를 반환합니다.
// 항목의 순서는 최초 등장 순서를 유지합니다.
// 예: "u1| u2 |u1" (구분자 "|") -> ["u1", "u2"]
func SplitUnique(s, sep string) []string {
	tokens := SplitAndTrim(s, sep)
	if tokens == nil {
		return nil
	}

	seen := make(map[string]struct{}, len(tokens))
	result := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		result = append(result, token)
	}

	return result
}

// HasAnyContent 전달받은 문자열들 중 공백을 제외한 내용이 하나라도 존재하는지 확인합니다.
func HasAnyContent(strs ...string) bool {
	for _, s := range strs {
		if strings.TrimSpace(s) != "" {
			return true
		}
	}
	return false
}
