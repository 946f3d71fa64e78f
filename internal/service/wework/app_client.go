package wework

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/wework-notify/internal/pkg/errors"
	"github.com/darkkaiser/wework-notify/pkg/log"
)

// AppCredentials 기업용 애플리케이션 채널의 자격 증명입니다. 생성 후 변경되지 않습니다.
type AppCredentials struct {
	// CorpID 기업 식별자
	CorpID string

	// CorpSecret 애플리케이션 비밀키
	CorpSecret string

	// AgentID 애플리케이션 에이전트 식별자
	AgentID int64
}

// AppClient 기업용 애플리케이션 API를 통해 메시지를 발송하는 클라이언트입니다.
// 접근 토큰 발급(TokenFetcher)과 메시지 발송(BackendClient)을 모두 담당합니다.
type AppClient struct {
	credentials AppCredentials

	baseURL string
	fetcher Fetcher

	// tokenInvalidCodes 토큰 무효로 분류할 플랫폼 오류 코드의 집합
	tokenInvalidCodes map[int64]struct{}

	logger *log.Entry
}

// NewAppClient 새로운 AppClient 인스턴스를 생성합니다.
// tokenInvalidCodes가 비어있으면 기본 코드 목록이 적용됩니다.
func NewAppClient(credentials AppCredentials, baseURL string, fetcher Fetcher, tokenInvalidCodes []int64) *AppClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if len(tokenInvalidCodes) == 0 {
		tokenInvalidCodes = DefaultTokenInvalidCodes
	}

	codes := make(map[int64]struct{}, len(tokenInvalidCodes))
	for _, code := range tokenInvalidCodes {
		codes[code] = struct{}{}
	}

	return &AppClient{
		credentials:       credentials,
		baseURL:           strings.TrimSuffix(baseURL, "/"),
		fetcher:           fetcher,
		tokenInvalidCodes: codes,
		logger:            log.WithComponent(componentAppClient),
	}
}

// Kind BackendClient 인터페이스를 구현합니다.
func (c *AppClient) Kind() EntryKind {
	return EntryKindApp
}

// FetchToken 플랫폼의 토큰 발급 엔드포인트를 호출하여 접근 토큰을 발급받습니다.
func (c *AppClient) FetchToken(ctx context.Context) (string, time.Duration, error) {
	endpoint := fmt.Sprintf("%s/gettoken?corpid=%s&corpsecret=%s",
		c.baseURL, url.QueryEscape(c.credentials.CorpID), url.QueryEscape(c.credentials.CorpSecret))

	c.logger.WithField("corp_id", log.MaskSensitiveData(c.credentials.CorpID)).Debug("접근 토큰 발급을 요청합니다.")

	resp, err := callPlatform(ctx, c.fetcher, endpoint, nil)
	if err != nil {
		return "", 0, err
	}

	if resp.Code != 0 {
		return "", 0, apperrors.New(apperrors.Unauthorized, fmt.Sprintf("접근 토큰 발급이 거부되었습니다(code: %d, message: %s)", resp.Code, resp.Message))
	}
	if resp.AccessToken == "" {
		return "", 0, apperrors.New(apperrors.ParsingFailed, "플랫폼 응답에 접근 토큰이 없습니다")
	}

	ttl := time.Duration(resp.ExpiresIn) * time.Second
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	return resp.AccessToken, ttl, nil
}

// appMessagePayload 애플리케이션 메시지 발송 요청의 본문입니다.
type appMessagePayload struct {
	ToUser  string `json:"touser,omitempty"`
	ToParty string `json:"toparty,omitempty"`
	ToTag   string `json:"totag,omitempty"`
	AgentID int64  `json:"agentid"`
	MsgType string `json:"msgtype"`
	Safe    int    `json:"safe"`

	Text     *messageContent `json:"text,omitempty"`
	Markdown *messageContent `json:"markdown,omitempty"`
	Image    *appImage       `json:"image,omitempty"`
}

type messageContent struct {
	Content string `json:"content"`
}

type appImage struct {
	MediaID string `json:"media_id"`
}

// Send BackendClient 인터페이스를 구현합니다.
// 수신자 목록은 파이프(|)로 구분된 문자열로 직렬화되어 전송됩니다.
func (c *AppClient) Send(ctx context.Context, req *MessageRequest, recipients *RecipientSet, token string) (SendOutcome, error) {
	payload := appMessagePayload{
		ToUser:  strings.Join(recipients.Users, recipientListSeparator),
		ToParty: strings.Join(recipients.Parties, recipientListSeparator),
		ToTag:   strings.Join(recipients.Tags, recipientListSeparator),
		AgentID: c.credentials.AgentID,
		MsgType: string(req.Kind),
		Safe:    0,
	}

	switch req.Kind {
	case MessageKindText:
		payload.Text = &messageContent{Content: req.Body}
	case MessageKindMarkdown:
		payload.Markdown = &messageContent{Content: req.Body}
	case MessageKindImage:
		payload.Image = &appImage{MediaID: req.MediaID}
	}

	endpoint := fmt.Sprintf("%s/message/send?access_token=%s", c.baseURL, url.QueryEscape(token))

	resp, err := callPlatform(ctx, c.fetcher, endpoint, payload)
	if err != nil {
		return SendOutcome{}, err
	}

	return outcomeFromResponse(resp, c.tokenInvalidCodes), nil
}
