package wework

import (
	"fmt"

	"github.com/darkkaiser/wework-notify/internal/config"
	apperrors "github.com/darkkaiser/wework-notify/internal/pkg/errors"
)

// NewServiceFromConfig 애플리케이션 설정으로부터 모든 채널의 Dispatcher를 구성하여 Service를 생성합니다.
// 모든 채널은 동일한 HTTP 클라이언트를 공유합니다.
func NewServiceFromConfig(cfg *config.AppConfig) (*Service, error) {
	fetcher := NewHTTPFetcher(cfg.HTTP.ParseTimeout())

	dispatchers := make([]*Dispatcher, 0, len(cfg.Entries))
	for i := range cfg.Entries {
		dispatcher, err := newDispatcherFromConfig(&cfg.Entries[i], cfg.HTTP.BaseURL, fetcher)
		if err != nil {
			return nil, err
		}
		dispatchers = append(dispatchers, dispatcher)
	}

	return NewService(dispatchers)
}

// newDispatcherFromConfig 채널 설정 하나로부터 Dispatcher를 생성합니다.
func newDispatcherFromConfig(entry *config.EntryConfig, baseURL string, fetcher Fetcher) (*Dispatcher, error) {
	kind, err := ParseEntryKind(entry.Kind)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("채널('%s') 구성에 실패했습니다", entry.ID))
	}

	switch kind {
	case EntryKindApp:
		client := NewAppClient(AppCredentials{
			CorpID:     entry.CorpID,
			CorpSecret: entry.CorpSecret,
			AgentID:    entry.AgentID,
		}, baseURL, fetcher, entry.TokenInvalidCodes)

		defaults := &RecipientSet{
			Users:   entry.Defaults.ToUser,
			Parties: entry.Defaults.ToParty,
			Tags:    entry.Defaults.ToTag,
		}

		return NewAppDispatcher(entry.ID, client, defaults), nil

	case EntryKindBot:
		client := NewBotClient(entry.WebhookKey, baseURL, fetcher)
		return NewBotDispatcher(entry.ID, client), nil

	default:
		return nil, apperrors.New(apperrors.InvalidInput, fmt.Sprintf("지원하지 않는 채널 종류입니다: '%s'", entry.Kind))
	}
}
