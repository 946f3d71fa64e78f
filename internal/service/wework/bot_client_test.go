package wework

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBotTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/webhook/send", handler)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestBotClient_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("text 메시지 발송 요청의 본문 구성", func(t *testing.T) {
		var captured map[string]any
		server := newBotTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "webhook-key-1", r.URL.Query().Get("key"))

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &captured))

			fmt.Fprint(w, `{"errcode":0,"errmsg":"ok"}`)
		})

		client := NewBotClient("webhook-key-1", server.URL, NewHTTPFetcher(0))

		req := &MessageRequest{Kind: MessageKindText, Body: "hello"}
		recipients := &RecipientSet{MentionedUsers: []string{"u1"}, MentionedMobiles: []string{"010-1234-5678"}}

		outcome, err := client.Send(ctx, req, recipients, "")
		require.NoError(t, err)
		assert.True(t, outcome.Delivered())

		assert.Equal(t, "text", captured["msgtype"])
		text, ok := captured["text"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "hello", text["content"])
		assert.Equal(t, []any{"u1"}, text["mentioned_list"])
		assert.Equal(t, []any{"010-1234-5678"}, text["mentioned_mobile_list"])
	})

	t.Run("멘션 대상이 없으면 멘션 필드 생략", func(t *testing.T) {
		var captured map[string]any
		server := newBotTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(body, &captured))
			fmt.Fprint(w, `{"errcode":0,"errmsg":"ok"}`)
		})

		client := NewBotClient("webhook-key-1", server.URL, NewHTTPFetcher(0))

		outcome, err := client.Send(ctx, &MessageRequest{Kind: MessageKindText, Body: "hello"}, &RecipientSet{}, "")
		require.NoError(t, err)
		assert.True(t, outcome.Delivered())

		text, ok := captured["text"].(map[string]any)
		require.True(t, ok)
		assert.NotContains(t, text, "mentioned_list")
		assert.NotContains(t, text, "mentioned_mobile_list")
	})

	t.Run("image 메시지 발송 요청의 본문 구성", func(t *testing.T) {
		var captured map[string]any
		server := newBotTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(body, &captured))
			fmt.Fprint(w, `{"errcode":0,"errmsg":"ok"}`)
		})

		client := NewBotClient("webhook-key-1", server.URL, NewHTTPFetcher(0))

		req := &MessageRequest{Kind: MessageKindImage, ImageBase64: "aGVsbG8=", ImageMD5: "d41d8cd9"}
		outcome, err := client.Send(ctx, req, &RecipientSet{}, "")
		require.NoError(t, err)
		assert.True(t, outcome.Delivered())

		assert.Equal(t, "image", captured["msgtype"])
		assert.Equal(t, map[string]any{"base64": "aGVsbG8=", "md5": "d41d8cd9"}, captured["image"])
	})

	t.Run("모든 플랫폼 오류는 OutcomeRemoteError로 분류", func(t *testing.T) {
		// 그룹 로봇은 토큰을 사용하지 않으므로 토큰 무효 계열 코드도 원격 오류로 분류되어야 한다.
		server := newBotTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"errcode":40014,"errmsg":"invalid key"}`)
		})

		client := NewBotClient("webhook-key-1", server.URL, NewHTTPFetcher(0))

		outcome, err := client.Send(ctx, &MessageRequest{Kind: MessageKindText, Body: "hi"}, &RecipientSet{}, "")
		require.NoError(t, err)
		assert.Equal(t, OutcomeRemoteError, outcome.Status)
		assert.Equal(t, int64(40014), outcome.Code)
	})

	t.Run("서버 접속 불가 시 전송 에러 반환", func(t *testing.T) {
		server := newBotTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"errcode":0,"errmsg":"ok"}`)
		})
		serverURL := server.URL
		server.Close()

		client := NewBotClient("webhook-key-1", serverURL, NewHTTPFetcher(0))

		_, err := client.Send(ctx, &MessageRequest{Kind: MessageKindText, Body: "hi"}, &RecipientSet{}, "")
		require.Error(t, err)
	})
}
