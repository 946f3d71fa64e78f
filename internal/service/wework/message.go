package wework

import (
	"strings"

	"github.com/darkkaiser/wework-notify/pkg/strutil"
)

// MessageKind 메시지의 종류입니다.
type MessageKind string

const (
	// MessageKindText 일반 텍스트 메시지
	MessageKindText MessageKind = "text"

	// MessageKindMarkdown 마크다운 메시지
	MessageKindMarkdown MessageKind = "markdown"

	// MessageKindImage 이미지 메시지
	MessageKindImage MessageKind = "image"
)

// recipientListSeparator 수신자 목록 문자열의 구분자입니다. (예: "user1|user2")
const recipientListSeparator = "|"

// MessageOptions 발송 요청 시 호출자가 전달하는 필드의 집합입니다.
//
// 수신자 목록 필드는 파이프(|)로 구분된 문자열입니다.
type MessageOptions struct {
	// MessageType 메시지 종류입니다. 생략 시 text로 취급됩니다.
	MessageType string `json:"message_type"`

	// Message 메시지 본문입니다. (text/markdown 메시지에서 사용)
	Message string `json:"message"`

	// ToUser 수신 사용자 ID 목록 (app 채널 전용)
	ToUser string `json:"to_user"`

	// ToParty 수신 부서 ID 목록 (app 채널 전용)
	ToParty string `json:"to_party"`

	// ToTag 수신 태그 ID 목록 (app 채널 전용)
	ToTag string `json:"to_tag"`

	// MentionedList 멘션할 사용자 ID 목록 (bot 채널 전용)
	MentionedList string `json:"mentioned_list"`

	// MentionedMobileList 멘션할 휴대폰 번호 목록 (bot 채널 전용)
	MentionedMobileList string `json:"mentioned_mobile_list"`

	// ImageMediaID 업로드된 이미지의 미디어 ID (app 채널의 이미지 메시지에서 사용)
	ImageMediaID string `json:"image_media_id"`

	// ImageBase64 이미지 데이터의 Base64 인코딩 문자열 (bot 채널의 이미지 메시지에서 사용)
	ImageBase64 string `json:"image_base64"`

	// ImageMD5 이미지 데이터의 MD5 해시값 (bot 채널의 이미지 메시지에서 사용)
	ImageMD5 string `json:"image_md5"`
}

// Recipients 옵션에 지정된 수신자 목록 필드를 파싱하여 RecipientSet을 생성합니다.
func (o *MessageOptions) Recipients() *RecipientSet {
	return &RecipientSet{
		Users:            strutil.SplitUnique(o.ToUser, recipientListSeparator),
		Parties:          strutil.SplitUnique(o.ToParty, recipientListSeparator),
		Tags:             strutil.SplitUnique(o.ToTag, recipientListSeparator),
		MentionedUsers:   strutil.SplitUnique(o.MentionedList, recipientListSeparator),
		MentionedMobiles: strutil.SplitUnique(o.MentionedMobileList, recipientListSeparator),
	}
}

// MessageRequest 발송할 메시지 하나를 표현하는 값 객체입니다. 채널 종류와 무관하게 구성됩니다.
type MessageRequest struct {
	// Kind 메시지 종류
	Kind MessageKind

	// Body 메시지 본문 (text/markdown 메시지에서 사용)
	Body string

	// MediaID 이미지 미디어 ID (app 채널의 이미지 메시지에서 사용)
	MediaID string

	// ImageBase64 이미지 Base64 데이터 (bot 채널의 이미지 메시지에서 사용)
	ImageBase64 string

	// ImageMD5 이미지 MD5 해시값 (bot 채널의 이미지 메시지에서 사용)
	ImageMD5 string
}

// NewMessageRequest 발송 옵션으로부터 MessageRequest를 생성합니다.
// 메시지 종류가 생략된 경우 text로 취급하며, 유효성 검증은 수행하지 않습니다.
func NewMessageRequest(opts *MessageOptions) *MessageRequest {
	kind := MessageKind(strings.TrimSpace(opts.MessageType))
	if kind == "" {
		kind = MessageKindText
	}

	return &MessageRequest{
		Kind:        kind,
		Body:        opts.Message,
		MediaID:     strings.TrimSpace(opts.ImageMediaID),
		ImageBase64: strings.TrimSpace(opts.ImageBase64),
		ImageMD5:    strings.TrimSpace(opts.ImageMD5),
	}
}

// Validate 채널 종류에 따른 메시지의 형태 규칙을 검증합니다.
//
// 검증은 네트워크 접근 전에 순수 계산으로만 수행되므로,
// 잘못된 요청이 토큰 발급이나 발송 호출을 유발하지 않습니다.
func (r *MessageRequest) Validate(kind EntryKind) error {
	switch r.Kind {
	case MessageKindText, MessageKindMarkdown:
		if strings.TrimSpace(r.Body) == "" {
			return ErrEmptyMessageBody
		}

	case MessageKindImage:
		if kind == EntryKindApp {
			if r.MediaID == "" {
				return ErrMissingMediaID
			}
		} else {
			if r.ImageBase64 == "" || r.ImageMD5 == "" {
				return ErrMissingImagePayload
			}
		}

	default:
		return ErrUnsupportedMessageKind
	}

	return nil
}
