package wework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageOptions_Recipients(t *testing.T) {
	opts := &MessageOptions{
		ToUser:        "u1|u2|u1",
		ToParty:       "p1",
		MentionedList: " m1 | m2 ",
	}

	r := opts.Recipients()
	assert.Equal(t, []string{"u1", "u2"}, r.Users)
	assert.Equal(t, []string{"p1"}, r.Parties)
	assert.Empty(t, r.Tags)
	assert.Equal(t, []string{"m1", "m2"}, r.MentionedUsers)
	assert.Empty(t, r.MentionedMobiles)
}

func TestNewMessageRequest(t *testing.T) {
	t.Run("메시지 종류 생략 시 text로 취급", func(t *testing.T) {
		req := NewMessageRequest(&MessageOptions{Message: "hello"})
		assert.Equal(t, MessageKindText, req.Kind)
		assert.Equal(t, "hello", req.Body)
	})

	t.Run("지정된 메시지 종류 유지", func(t *testing.T) {
		req := NewMessageRequest(&MessageOptions{MessageType: "markdown", Message: "# title"})
		assert.Equal(t, MessageKindMarkdown, req.Kind)
	})

	t.Run("이미지 필드의 공백 제거", func(t *testing.T) {
		req := NewMessageRequest(&MessageOptions{MessageType: "image", ImageMediaID: " m1 "})
		assert.Equal(t, "m1", req.MediaID)
	})
}

func TestMessageRequest_Validate(t *testing.T) {
	cases := []struct {
		name      string
		opts      *MessageOptions
		entryKind EntryKind
		expected  error
	}{
		{
			name:      "정상적인 text 메시지",
			opts:      &MessageOptions{MessageType: "text", Message: "hello"},
			entryKind: EntryKindApp,
			expected:  nil,
		},
		{
			name:      "정상적인 markdown 메시지",
			opts:      &MessageOptions{MessageType: "markdown", Message: "# title"},
			entryKind: EntryKindBot,
			expected:  nil,
		},
		{
			name:      "지원하지 않는 메시지 종류",
			opts:      &MessageOptions{MessageType: "file", Message: "x"},
			entryKind: EntryKindApp,
			expected:  ErrUnsupportedMessageKind,
		},
		{
			name:      "본문이 비어있는 text 메시지",
			opts:      &MessageOptions{MessageType: "text"},
			entryKind: EntryKindApp,
			expected:  ErrEmptyMessageBody,
		},
		{
			name:      "본문이 공백뿐인 markdown 메시지",
			opts:      &MessageOptions{MessageType: "markdown", Message: "   "},
			entryKind: EntryKindBot,
			expected:  ErrEmptyMessageBody,
		},
		{
			name:      "app 채널의 미디어 ID 없는 이미지 메시지",
			opts:      &MessageOptions{MessageType: "image"},
			entryKind: EntryKindApp,
			expected:  ErrMissingMediaID,
		},
		{
			name:      "app 채널의 정상적인 이미지 메시지",
			opts:      &MessageOptions{MessageType: "image", ImageMediaID: "m1"},
			entryKind: EntryKindApp,
			expected:  nil,
		},
		{
			name:      "bot 채널의 md5 없는 이미지 메시지",
			opts:      &MessageOptions{MessageType: "image", ImageBase64: "aGVsbG8="},
			entryKind: EntryKindBot,
			expected:  ErrMissingImagePayload,
		},
		{
			name:      "bot 채널의 base64 없는 이미지 메시지",
			opts:      &MessageOptions{MessageType: "image", ImageMD5: "d41d8cd9"},
			entryKind: EntryKindBot,
			expected:  ErrMissingImagePayload,
		},
		{
			name:      "bot 채널의 정상적인 이미지 메시지",
			opts:      &MessageOptions{MessageType: "image", ImageBase64: "aGVsbG8=", ImageMD5: "d41d8cd9"},
			entryKind: EntryKindBot,
			expected:  nil,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := NewMessageRequest(c.opts).Validate(c.entryKind)
			if c.expected == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, c.expected)
			}
		})
	}
}
