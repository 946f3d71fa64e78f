package wework

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/wework-notify/internal/config"
	apperrors "github.com/darkkaiser/wework-notify/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Dispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("등록되지 않은 채널로의 발송 요청", func(t *testing.T) {
		service, err := NewService(nil)
		require.NoError(t, err)

		_, err = service.Dispatch(ctx, "unknown", map[string]any{"message": "hi"})
		require.Error(t, err)
		assert.Equal(t, apperrors.NotFound, apperrors.GetType(err))
	})

	t.Run("발송 옵션 맵의 해석", func(t *testing.T) {
		client := &fakeBackendClient{kind: EntryKindBot, outcomes: []SendOutcome{{Status: OutcomeDelivered}}}
		service, err := NewService([]*Dispatcher{newTestBotDispatcher(client)})
		require.NoError(t, err)

		outcome, err := service.Dispatch(ctx, "test-bot", map[string]any{
			"message_type":   "text",
			"message":        "hello",
			"mentioned_list": "u1|u2",
		})
		require.NoError(t, err)
		assert.True(t, outcome.Delivered())
		assert.Equal(t, []string{"u1", "u2"}, client.lastRecipients.MentionedUsers)
	})

	t.Run("채널 ID 중복 시 생성 실패", func(t *testing.T) {
		client := &fakeBackendClient{kind: EntryKindBot, outcomes: []SendOutcome{{Status: OutcomeDelivered}}}
		_, err := NewService([]*Dispatcher{newTestBotDispatcher(client), newTestBotDispatcher(client)})
		require.Error(t, err)
	})
}

// TestService_EndToEnd 설정 로드부터 플랫폼 호출까지의 전체 발송 흐름을 검증합니다.
func TestService_EndToEnd(t *testing.T) {
	ctx := context.Background()

	t.Run("app 채널의 기본 수신자 병합 발송", func(t *testing.T) {
		var captured map[string]any
		tokenCalls := 0

		mux := http.NewServeMux()
		mux.HandleFunc("/gettoken", func(w http.ResponseWriter, _ *http.Request) {
			tokenCalls++
			fmt.Fprint(w, `{"errcode":0,"errmsg":"ok","access_token":"tok-1","expires_in":7200}`)
		})
		mux.HandleFunc("/message/send", func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(body, &captured))
			fmt.Fprint(w, `{"errcode":0,"errmsg":"ok"}`)
		})
		server := httptest.NewServer(mux)
		t.Cleanup(server.Close)

		cfg := &config.AppConfig{
			HTTP: config.HTTPConfig{BaseURL: server.URL, Timeout: "10s"},
			Entries: []config.EntryConfig{
				{
					ID:         "ops-app",
					Kind:       config.EntryKindApp,
					CorpID:     "wwabc123",
					CorpSecret: "secret-value",
					AgentID:    1000002,
					Defaults:   config.EntryDefaultsConfig{ToUser: []string{"u1"}},
				},
			},
		}

		service, err := NewServiceFromConfig(cfg)
		require.NoError(t, err)

		outcome, err := service.Dispatch(ctx, "ops-app", map[string]any{
			"message_type": "text",
			"message":      "hi",
			"to_user":      "u2",
		})
		require.NoError(t, err)
		assert.True(t, outcome.Delivered())

		assert.Equal(t, 1, tokenCalls)
		assert.Equal(t, "u1|u2", captured["touser"])

		// 토큰이 캐시되어 두 번째 발송에서는 재발급되지 않아야 한다.
		_, err = service.Dispatch(ctx, "ops-app", map[string]any{"message": "again"})
		require.NoError(t, err)
		assert.Equal(t, 1, tokenCalls)
	})

	t.Run("bot 채널의 이미지 발송 요청 검증 실패 시 네트워크 무접근", func(t *testing.T) {
		requests := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			requests++
			fmt.Fprint(w, `{"errcode":0,"errmsg":"ok"}`)
		}))
		t.Cleanup(server.Close)

		cfg := &config.AppConfig{
			HTTP: config.HTTPConfig{BaseURL: server.URL, Timeout: "10s"},
			Entries: []config.EntryConfig{
				{ID: "dev-bot", Kind: config.EntryKindBot, WebhookKey: "webhook-key-1"},
			},
		}

		service, err := NewServiceFromConfig(cfg)
		require.NoError(t, err)

		_, err = service.Dispatch(ctx, "dev-bot", map[string]any{
			"message_type": "image",
			"image_base64": "aGVsbG8=",
		})
		requireDispatchErrorKind(t, err, DispatchErrorInvalidRequest)
		assert.Zero(t, requests)
	})
}
