package wework

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/darkkaiser/wework-notify/pkg/log"
)

// BotClient 그룹 로봇의 웹훅 API를 통해 메시지를 발송하는 클라이언트입니다.
// 접근 토큰이 필요 없으며, 플랫폼 오류는 모두 원격 오류로 분류합니다.
type BotClient struct {
	webhookKey string

	baseURL string
	fetcher Fetcher

	logger *log.Entry
}

// NewBotClient 새로운 BotClient 인스턴스를 생성합니다.
func NewBotClient(webhookKey string, baseURL string, fetcher Fetcher) *BotClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &BotClient{
		webhookKey: webhookKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		fetcher:    fetcher,
		logger:     log.WithComponent(componentBotClient),
	}
}

// Kind BackendClient 인터페이스를 구현합니다.
func (c *BotClient) Kind() EntryKind {
	return EntryKindBot
}

// botMessagePayload 그룹 로봇 발송 요청의 본문입니다.
type botMessagePayload struct {
	MsgType string `json:"msgtype"`

	Text     *botTextContent `json:"text,omitempty"`
	Markdown *messageContent `json:"markdown,omitempty"`
	Image    *botImage       `json:"image,omitempty"`
}

type botTextContent struct {
	Content string `json:"content"`

	// 멘션 대상이 비어있는 경우 필드 자체를 생략합니다. (멘션 없는 일반 발송)
	MentionedList       []string `json:"mentioned_list,omitempty"`
	MentionedMobileList []string `json:"mentioned_mobile_list,omitempty"`
}

type botImage struct {
	Base64 string `json:"base64"`
	MD5    string `json:"md5"`
}

// Send BackendClient 인터페이스를 구현합니다. token 인자는 사용하지 않습니다.
func (c *BotClient) Send(ctx context.Context, req *MessageRequest, recipients *RecipientSet, _ string) (SendOutcome, error) {
	payload := botMessagePayload{
		MsgType: string(req.Kind),
	}

	switch req.Kind {
	case MessageKindText:
		payload.Text = &botTextContent{
			Content:             req.Body,
			MentionedList:       recipients.MentionedUsers,
			MentionedMobileList: recipients.MentionedMobiles,
		}
	case MessageKindMarkdown:
		payload.Markdown = &messageContent{Content: req.Body}
	case MessageKindImage:
		payload.Image = &botImage{
			Base64: req.ImageBase64,
			MD5:    req.ImageMD5,
		}
	}

	endpoint := fmt.Sprintf("%s/webhook/send?key=%s", c.baseURL, url.QueryEscape(c.webhookKey))

	c.logger.WithField("webhook_key", log.MaskSensitiveData(c.webhookKey)).Debug("그룹 로봇으로 메시지를 발송합니다.")

	resp, err := callPlatform(ctx, c.fetcher, endpoint, payload)
	if err != nil {
		return SendOutcome{}, err
	}

	// 그룹 로봇은 토큰을 사용하지 않으므로 토큰 무효 분류가 발생하지 않습니다.
	return outcomeFromResponse(resp, nil), nil
}
