package config

import (
	"fmt"
	"time"

	apperrors "github.com/darkkaiser/wework-notify/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// =============================================================================
// 메시지 채널 종류
// =============================================================================

const (
	// EntryKindApp 기업용 애플리케이션 채널입니다. (자격 증명 기반 발송)
	EntryKindApp = "app"

	// EntryKindBot 그룹 로봇 채널입니다. (웹훅 기반 발송)
	EntryKindBot = "bot"
)

// =============================================================================
// AppConfig (최상위 설정)
// =============================================================================

// AppConfig 애플리케이션 전체 설정 정보를 담는 최상위 구조체입니다.
type AppConfig struct {
	Debug bool `json:"debug"`

	Log LogConfig `json:"log"`

	HTTP HTTPConfig `json:"http"`

	// Entries 메시지 발송 채널의 목록입니다. 최소 1개 이상 정의되어야 합니다.
	Entries []EntryConfig `json:"entries" validate:"required,min=1,dive"`

	NotifyAPI NotifyAPIConfig `json:"notify_api"`
}

// validate AppConfig 전체의 유효성을 검증합니다.
func (c *AppConfig) validate(validate *validator.Validate) error {
	if err := checkStruct(validate, c, "전체 설정"); err != nil {
		return err
	}

	if err := checkUniqueField(c.Entries, func(e EntryConfig) string { return e.ID }, "채널 ID"); err != nil {
		return err
	}

	for i := range c.Entries {
		if err := c.Entries[i].validate(); err != nil {
			return err
		}
	}

	if err := c.HTTP.validate(); err != nil {
		return err
	}

	return nil
}

// =============================================================================
// LogConfig (로그 설정)
// =============================================================================

// LogConfig 로그 관련 설정 정보를 담는 구조체입니다.
type LogConfig struct {
	// Level 로그 레벨입니다. (trace, debug, info, warn, error, fatal, panic)
	Level string `json:"level"`

	// Dir 로그 파일이 저장될 디렉터리 경로입니다.
	Dir string `json:"dir"`

	// MaxAge 로그 파일 최대 보관 기간(일)입니다.
	MaxAge int `json:"max_age"`

	// MaxSizeMB 로그 파일 하나의 최대 크기(MB)입니다.
	MaxSizeMB int `json:"max_size_mb"`

	// MaxBackups 보관할 이전 로그 파일의 최대 개수입니다.
	MaxBackups int `json:"max_backups"`
}

// =============================================================================
// HTTPConfig (HTTP 클라이언트 설정)
// =============================================================================

// HTTPConfig 플랫폼 API 호출에 사용되는 HTTP 클라이언트 설정입니다.
type HTTPConfig struct {
	// BaseURL 플랫폼 API의 기본 URL입니다. 비어있으면 기본값이 사용됩니다.
	BaseURL string `json:"base_url"`

	// Timeout HTTP 요청 제한시간입니다. (예: "10s")
	Timeout string `json:"timeout"`
}

func (c *HTTPConfig) validate() error {
	if c.Timeout != "" {
		if _, err := time.ParseDuration(c.Timeout); err != nil {
			return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("HTTP 제한시간 형식이 올바르지 않습니다: '%s'", c.Timeout))
		}
	}
	return nil
}

// ParseTimeout Timeout 문자열을 time.Duration으로 변환하여 반환합니다.
// validate()를 통과한 설정에 대해서만 호출되어야 합니다.
func (c *HTTPConfig) ParseTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// =============================================================================
// EntryConfig (메시지 채널 설정)
// =============================================================================

// EntryConfig 메시지를 발송할 채널 하나의 설정 정보를 담는 구조체입니다.
type EntryConfig struct {
	// ID 채널의 고유 식별자입니다. 발송 요청 시 이 값으로 채널을 선택합니다.
	ID string `json:"id" validate:"required"`

	// Kind 채널 종류입니다. (app 또는 bot)
	Kind string `json:"kind" validate:"required,oneof=app bot"`

	// CorpID 기업 식별자입니다. (app 채널에서만 사용)
	CorpID string `json:"corp_id"`

	// CorpSecret 애플리케이션 비밀키입니다. (app 채널에서만 사용)
	CorpSecret string `json:"corp_secret"`

	// AgentID 애플리케이션 에이전트 식별자입니다. (app 채널에서만 사용)
	AgentID int64 `json:"agent_id"`

	// WebhookKey 그룹 로봇의 웹훅 키입니다. (bot 채널에서만 사용)
	WebhookKey string `json:"webhook_key"`

	// Defaults 발송 요청에 수신자가 지정되지 않았을 때 적용되는 기본 수신자입니다. (app 채널에서만 사용)
	Defaults EntryDefaultsConfig `json:"defaults"`

	// TokenInvalidCodes 접근 토큰 무효로 간주할 플랫폼 오류 코드 목록입니다.
	// 비어있으면 기본 코드 목록이 사용됩니다. (app 채널에서만 사용)
	TokenInvalidCodes []int64 `json:"token_invalid_codes"`
}

// validate 채널 종류에 따른 필수 설정값의 정합성을 검증합니다.
func (c *EntryConfig) validate() error {
	switch c.Kind {
	case EntryKindApp:
		if c.CorpID == "" {
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("app 채널('%s')에는 corp_id 설정이 필요합니다", c.ID))
		}
		if c.CorpSecret == "" {
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("app 채널('%s')에는 corp_secret 설정이 필요합니다", c.ID))
		}
		if c.AgentID == 0 {
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("app 채널('%s')에는 agent_id 설정이 필요합니다", c.ID))
		}
		if c.WebhookKey != "" {
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("app 채널('%s')에는 webhook_key 설정을 사용할 수 없습니다", c.ID))
		}

	case EntryKindBot:
		if c.WebhookKey == "" {
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("bot 채널('%s')에는 webhook_key 설정이 필요합니다", c.ID))
		}
		if c.CorpID != "" || c.CorpSecret != "" || c.AgentID != 0 {
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("bot 채널('%s')에는 corp_id/corp_secret/agent_id 설정을 사용할 수 없습니다", c.ID))
		}
		if len(c.TokenInvalidCodes) != 0 {
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("bot 채널('%s')에는 token_invalid_codes 설정을 사용할 수 없습니다", c.ID))
		}
	}

	return nil
}

// EntryDefaultsConfig 채널의 기본 수신자 설정입니다.
type EntryDefaultsConfig struct {
	// ToUser 기본 수신 사용자 ID의 목록입니다.
	ToUser []string `json:"to_user"`

	// ToParty 기본 수신 부서 ID의 목록입니다.
	ToParty []string `json:"to_party"`

	// ToTag 기본 수신 태그 ID의 목록입니다.
	ToTag []string `json:"to_tag"`
}

// =============================================================================
// NotifyAPIConfig (알림 API 서비스 설정)
// =============================================================================

// NotifyAPIConfig 알림 API 서비스 관련 설정 정보를 담는 구조체입니다.
type NotifyAPIConfig struct {
	// WS 웹서버 설정 정보
	WS struct {
		// TLSServer HTTPS 사용 여부
		TLSServer bool `json:"tls_server"`

		// TLSCertFile 인증서 파일 경로
		TLSCertFile string `json:"tls_cert_file"`

		// TLSKeyFile 개인키 파일 경로
		TLSKeyFile string `json:"tls_key_file"`
	} `json:"ws"`

	// ListenPort 웹서버 포트 번호
	ListenPort int `json:"listen_port" validate:"min=1,max=65535"`

	// APIKey 발송 요청 인증에 사용되는 API 키입니다.
	APIKey string `json:"api_key" validate:"required"`

	// RateLimitPerSecond IP당 초당 허용 요청 수입니다.
	RateLimitPerSecond float64 `json:"rate_limit_per_second" validate:"gt=0"`

	// RateLimitBurst IP당 순간 최대 허용 요청 수입니다.
	RateLimitBurst int `json:"rate_limit_burst" validate:"gt=0"`
}
