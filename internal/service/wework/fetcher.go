package wework

import (
	"net/http"
	"time"
)

// Fetcher HTTP 요청의 실행을 추상화한 인터페이스입니다.
// 테스트에서 실제 네트워크 호출 없이 플랫폼 응답을 모의할 수 있도록 합니다.
type Fetcher interface {
	// Do HTTP 요청을 실행하고 응답을 반환합니다.
	Do(req *http.Request) (*http.Response, error)
}

// HTTPFetcher 제한시간 설정이 내장된 HTTP 클라이언트 구현체입니다.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher 지정된 제한시간이 설정된 새로운 HTTPFetcher 인스턴스를 생성합니다.
// 제한시간이 0 이하인 경우 기본값이 적용됩니다.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Do HTTP 요청을 실행합니다.
func (h *HTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}
