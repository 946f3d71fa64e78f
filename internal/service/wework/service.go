package wework

import (
	"context"
	"fmt"

	apperrors "github.com/darkkaiser/wework-notify/internal/pkg/errors"
	"github.com/darkkaiser/wework-notify/pkg/log"
	"github.com/darkkaiser/wework-notify/pkg/maputil"
)

// Service 설정된 모든 발송 채널을 관리하고 단일 발송 진입점을 제공하는 퍼사드입니다.
type Service struct {
	// dispatchers 채널 ID를 키로 하는 Dispatcher의 맵. 생성 이후 변경되지 않습니다.
	dispatchers map[string]*Dispatcher

	logger *log.Entry
}

// NewService Dispatcher 목록으로부터 새로운 Service 인스턴스를 생성합니다.
func NewService(dispatchers []*Dispatcher) (*Service, error) {
	m := make(map[string]*Dispatcher, len(dispatchers))
	for _, d := range dispatchers {
		if _, exists := m[d.EntryID()]; exists {
			return nil, apperrors.New(apperrors.InvalidInput, fmt.Sprintf("채널 ID('%s')가 중복 정의되었습니다", d.EntryID()))
		}
		m[d.EntryID()] = d
	}

	return &Service{
		dispatchers: m,
		logger:      log.WithComponent(componentService),
	}, nil
}

// EntryIDs 등록된 모든 채널의 ID 목록을 반환합니다.
func (s *Service) EntryIDs() []string {
	ids := make([]string, 0, len(s.dispatchers))
	for id := range s.dispatchers {
		ids = append(ids, id)
	}
	return ids
}

// Dispatch 지정된 채널로 메시지를 발송합니다.
// params는 발송 옵션 필드(message_type, message, to_user 등)를 담은 맵입니다.
func (s *Service) Dispatch(ctx context.Context, entryID string, params map[string]any) (SendOutcome, error) {
	dispatcher, exists := s.dispatchers[entryID]
	if !exists {
		return SendOutcome{}, apperrors.New(apperrors.NotFound, fmt.Sprintf("등록되지 않은 채널입니다: '%s'", entryID))
	}

	opts, err := maputil.Decode[MessageOptions](params)
	if err != nil {
		return SendOutcome{}, apperrors.Wrap(err, apperrors.InvalidInput, "발송 옵션 해석에 실패했습니다")
	}

	s.logger.WithFields(log.Fields{
		"entry_id":     entryID,
		"message_type": opts.MessageType,
	}).Debug("메시지 발송을 시작합니다.")

	return dispatcher.Dispatch(ctx, opts)
}
