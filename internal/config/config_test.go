package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfigFile 임시 디렉터리에 설정 파일을 생성하고 경로를 반환합니다.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const validConfigJSON = `{
  "debug": true,
  "log": {
    "level": "debug",
    "dir": "logs"
  },
  "entries": [
    {
      "id": "ops-app",
      "kind": "app",
      "corp_id": "wwabc123",
      "corp_secret": "secret-value",
      "agent_id": 1000002,
      "defaults": {
        "to_user": ["zhangsan", "lisi"]
      }
    },
    {
      "id": "dev-bot",
      "kind": "bot",
      "webhook_key": "693a91f6-7xxx-4bc4-97a0-0ec2sifa5aaa"
    }
  ],
  "notify_api": {
    "listen_port": 8443,
    "api_key": "test-api-key"
  }
}`

func TestLoadWithFile(t *testing.T) {
	t.Run("정상적인 설정 파일 로드", func(t *testing.T) {
		path := writeConfigFile(t, validConfigJSON)

		cfg, err := LoadWithFile(path)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.True(t, cfg.Debug)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "10s", cfg.HTTP.Timeout) // 기본값 적용 확인

		require.Len(t, cfg.Entries, 2)
		assert.Equal(t, "ops-app", cfg.Entries[0].ID)
		assert.Equal(t, EntryKindApp, cfg.Entries[0].Kind)
		assert.Equal(t, int64(1000002), cfg.Entries[0].AgentID)
		assert.Equal(t, []string{"zhangsan", "lisi"}, cfg.Entries[0].Defaults.ToUser)
		assert.Equal(t, EntryKindBot, cfg.Entries[1].Kind)

		assert.Equal(t, 8443, cfg.NotifyAPI.ListenPort)
		assert.Equal(t, "test-api-key", cfg.NotifyAPI.APIKey)
	})

	t.Run("존재하지 않는 설정 파일", func(t *testing.T) {
		cfg, err := LoadWithFile(filepath.Join(t.TempDir(), "no-such-file.json"))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "설정 파일을 찾을 수 없습니다")
	})

	t.Run("JSON 문법 오류", func(t *testing.T) {
		path := writeConfigFile(t, `{ "debug": true, `)

		_, err := LoadWithFile(path)
		require.Error(t, err)
	})

	t.Run("알 수 없는 설정 키 거부", func(t *testing.T) {
		path := writeConfigFile(t, `{
  "unknown_key": 1,
  "entries": [{"id": "b", "kind": "bot", "webhook_key": "k"}],
  "notify_api": {"api_key": "x"}
}`)

		_, err := LoadWithFile(path)
		require.Error(t, err)
	})

	t.Run("환경 변수 우선순위 적용", func(t *testing.T) {
		t.Setenv("WEWORK_NOTIFY_API__LISTEN_PORT", "9000")
		t.Setenv("WEWORK_HTTP__TIMEOUT", "3s")

		path := writeConfigFile(t, validConfigJSON)

		cfg, err := LoadWithFile(path)
		require.NoError(t, err)
		assert.Equal(t, 9000, cfg.NotifyAPI.ListenPort)
		assert.Equal(t, "3s", cfg.HTTP.Timeout)
	})
}

func TestLoadWithFile_Validation(t *testing.T) {
	cases := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name: "채널 목록 누락",
			content: `{
  "entries": [],
  "notify_api": {"api_key": "x"}
}`,
			errMsg: "entries",
		},
		{
			name: "API 키 누락",
			content: `{
  "entries": [{"id": "b", "kind": "bot", "webhook_key": "k"}],
  "notify_api": {}
}`,
			errMsg: "api_key",
		},
		{
			name: "채널 ID 중복",
			content: `{
  "entries": [
    {"id": "dup", "kind": "bot", "webhook_key": "k1"},
    {"id": "dup", "kind": "bot", "webhook_key": "k2"}
  ],
  "notify_api": {"api_key": "x"}
}`,
			errMsg: "중복 정의",
		},
		{
			name: "지원하지 않는 채널 종류",
			content: `{
  "entries": [{"id": "a", "kind": "sms"}],
  "notify_api": {"api_key": "x"}
}`,
			errMsg: "kind",
		},
		{
			name: "app 채널 자격 증명 누락",
			content: `{
  "entries": [{"id": "a", "kind": "app", "corp_id": "wwabc"}],
  "notify_api": {"api_key": "x"}
}`,
			errMsg: "corp_secret",
		},
		{
			name: "app 채널 agent_id 누락",
			content: `{
  "entries": [{"id": "a", "kind": "app", "corp_id": "wwabc", "corp_secret": "s"}],
  "notify_api": {"api_key": "x"}
}`,
			errMsg: "agent_id",
		},
		{
			name: "bot 채널 webhook_key 누락",
			content: `{
  "entries": [{"id": "b", "kind": "bot"}],
  "notify_api": {"api_key": "x"}
}`,
			errMsg: "webhook_key",
		},
		{
			name: "bot 채널에 app 자격 증명 지정",
			content: `{
  "entries": [{"id": "b", "kind": "bot", "webhook_key": "k", "corp_id": "wwabc"}],
  "notify_api": {"api_key": "x"}
}`,
			errMsg: "사용할 수 없습니다",
		},
		{
			name: "bot 채널에 token_invalid_codes 지정",
			content: `{
  "entries": [{"id": "b", "kind": "bot", "webhook_key": "k", "token_invalid_codes": [40014]}],
  "notify_api": {"api_key": "x"}
}`,
			errMsg: "token_invalid_codes",
		},
		{
			name: "잘못된 HTTP 제한시간 형식",
			content: `{
  "http": {"timeout": "10 seconds"},
  "entries": [{"id": "b", "kind": "bot", "webhook_key": "k"}],
  "notify_api": {"api_key": "x"}
}`,
			errMsg: "제한시간 형식",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := writeConfigFile(t, c.content)

			cfg, err := LoadWithFile(path)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), c.errMsg)
		})
	}
}

func TestHTTPConfig_ParseTimeout(t *testing.T) {
	c := HTTPConfig{Timeout: "5s"}
	assert.Equal(t, "5s", c.Timeout)
	assert.Equal(t, int64(5000), c.ParseTimeout().Milliseconds())

	invalid := HTTPConfig{Timeout: "bad"}
	assert.Zero(t, invalid.ParseTimeout())
}
