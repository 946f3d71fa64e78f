package wework

import (
	"context"
	"sync"
	"time"
)

// TokenFetcher 플랫폼으로부터 접근 토큰을 발급받는 기능을 추상화한 인터페이스입니다.
type TokenFetcher interface {
	// FetchToken 플랫폼의 토큰 발급 엔드포인트를 호출하여 접근 토큰과 유효기간을 반환합니다.
	FetchToken(ctx context.Context) (token string, ttl time.Duration, err error)
}

// TokenCache 채널 하나의 접근 토큰을 보관하는 인메모리 캐시입니다.
//
// 캐시는 채널 인스턴스에 소유되며 프로세스 수명을 넘어 유지되지 않습니다.
// 동일 채널에 대한 동시 발송 호출 간에 공유되므로, 확인/발급/저장 과정은
// 단일 뮤텍스로 직렬화되어 만료된 토큰에 대한 중복 발급 호출을 방지합니다.
type TokenCache struct {
	mu        sync.Mutex
	token     string
	expiresAt time.Time

	// skew 만료 판정 여유시간
	skew time.Duration

	// now 현재시각 조회 함수. 테스트에서 시간 흐름을 제어하기 위해 주입 가능합니다.
	now func() time.Time
}

// NewTokenCache 새로운 TokenCache 인스턴스를 생성합니다.
func NewTokenCache() *TokenCache {
	return &TokenCache{
		skew: TokenExpirySkew,
		now:  time.Now,
	}
}

// GetToken 유효한 접근 토큰을 반환합니다.
//
// 캐시된 토큰이 아직 유효하면 네트워크 호출 없이 그대로 반환하고,
// 비어있거나 만료된 경우에만 fetcher를 통해 새로 발급받아 저장 후 반환합니다.
// 발급에 실패하면 캐시 상태를 변경하지 않고 에러를 전파합니다.
func (c *TokenCache) GetToken(ctx context.Context, fetcher TokenFetcher) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Add(c.skew).Before(c.expiresAt) {
		return c.token, nil
	}

	token, ttl, err := fetcher.FetchToken(ctx)
	if err != nil {
		return "", err
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	c.token = token
	c.expiresAt = c.now().Add(ttl)

	return token, nil
}

// Invalidate 캐시된 토큰을 무조건 제거합니다.
// 플랫폼이 토큰을 무효로 판정했을 때 Dispatcher에 의해 호출됩니다.
func (c *TokenCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = ""
	c.expiresAt = time.Time{}
}
