package wework

import (
	"context"
	"fmt"

	"github.com/darkkaiser/wework-notify/pkg/log"
)

// Dispatcher 채널 하나의 메시지 발송 흐름을 총괄하는 오케스트레이터입니다.
//
// 발송 흐름: 메시지 검증 → 수신자 병합 → (app 채널: 토큰 획득) → 발송 →
// 토큰 무효 시 캐시 무효화 후 정확히 1회 재시도.
//
// 서로 다른 채널의 Dispatcher는 상태를 공유하지 않으므로 동시에 실행될 수 있습니다.
type Dispatcher struct {
	entryID string
	kind    EntryKind

	client BackendClient

	// tokenCache/tokenFetcher app 채널에서만 설정되며 bot 채널에서는 nil입니다.
	tokenCache   *TokenCache
	tokenFetcher TokenFetcher

	// defaults 채널에 설정된 기본 수신자
	defaults *RecipientSet

	logger *log.Entry
}

// NewAppDispatcher 기업용 애플리케이션 채널의 Dispatcher를 생성합니다.
func NewAppDispatcher(entryID string, client *AppClient, defaults *RecipientSet) *Dispatcher {
	return &Dispatcher{
		entryID:      entryID,
		kind:         EntryKindApp,
		client:       client,
		tokenCache:   NewTokenCache(),
		tokenFetcher: client,
		defaults:     defaults,
		logger:       log.WithComponentAndFields(componentDispatcher, log.Fields{"entry_id": entryID}),
	}
}

// NewBotDispatcher 그룹 로봇 채널의 Dispatcher를 생성합니다.
func NewBotDispatcher(entryID string, client *BotClient) *Dispatcher {
	return &Dispatcher{
		entryID: entryID,
		kind:    EntryKindBot,
		client:  client,
		logger:  log.WithComponentAndFields(componentDispatcher, log.Fields{"entry_id": entryID}),
	}
}

// EntryID 채널의 고유 식별자를 반환합니다.
func (d *Dispatcher) EntryID() string {
	return d.entryID
}

// Kind 채널 종류를 반환합니다.
func (d *Dispatcher) Kind() EntryKind {
	return d.kind
}

// Dispatch 발송 옵션에 따라 메시지 하나를 발송합니다.
//
// 실패 시 반환되는 에러는 항상 *DispatchError이며,
// 호출자는 Kind 필드로 실패 분류를 판별할 수 있습니다.
func (d *Dispatcher) Dispatch(ctx context.Context, opts *MessageOptions) (SendOutcome, error) {
	// 1. 메시지 유효성 검증 (네트워크 접근 전 순수 계산)
	req := NewMessageRequest(opts)
	if err := req.Validate(d.kind); err != nil {
		return SendOutcome{}, newDispatchError(DispatchErrorInvalidRequest, StageValidate, "발송 요청이 유효하지 않습니다", err)
	}

	// 2. 기본 수신자와 호출 시 지정된 수신자 병합
	merged := MergeRecipients(d.defaults, opts.Recipients())

	// app 채널은 병합 후 주소 지정 필드(to_user/to_party/to_tag)에
	// 수신자가 최소 1개 이상이어야 합니다. 멘션 필드는 bot 채널 전용이므로 계산에 포함하지 않습니다.
	// bot 채널은 멘션 없는 발송이 유효하므로 검사하지 않습니다.
	if d.kind == EntryKindApp && !merged.HasAddressees() {
		return SendOutcome{}, newDispatchError(DispatchErrorInvalidRequest, StageValidate, "발송 요청이 유효하지 않습니다", ErrNoRecipients)
	}

	// 3~4. 토큰 획득(app 채널) 및 발송
	outcome, err := d.sendOnce(ctx, req, merged)
	if err != nil {
		return SendOutcome{}, err
	}

	// 5. 토큰 무효 시 캐시 무효화 후 정확히 1회 재시도
	if outcome.Status == OutcomeTokenInvalid && d.tokenCache != nil {
		d.logger.WithField("code", outcome.Code).Warn("플랫폼이 접근 토큰을 무효로 판정하여 토큰 재발급 후 재시도합니다.")

		d.tokenCache.Invalidate()

		outcome, err = d.sendOnce(ctx, req, merged)
		if err != nil {
			return SendOutcome{}, err
		}

		// 재발급된 토큰마저 거부된 경우, 자격 증명이나 권한 문제로 판단하여 즉시 실패로 처리합니다.
		if outcome.Status == OutcomeTokenInvalid {
			return outcome, &DispatchError{
				Kind:    DispatchErrorAuthRejected,
				Stage:   StageSend,
				Code:    outcome.Code,
				Message: fmt.Sprintf("토큰 재발급 후에도 플랫폼이 발송을 거부했습니다(%s)", outcome.Message),
			}
		}
	}

	switch outcome.Status {
	case OutcomeDelivered:
		d.logger.Debug("메시지가 정상적으로 발송되었습니다.")
		return outcome, nil

	case OutcomeRemoteError:
		return outcome, &DispatchError{
			Kind:    DispatchErrorRemoteFailure,
			Stage:   StageSend,
			Code:    outcome.Code,
			Message: outcome.Message,
		}

	default:
		// bot 채널은 토큰을 사용하지 않으므로 이 분기에 도달하지 않습니다.
		return outcome, &DispatchError{
			Kind:    DispatchErrorRemoteFailure,
			Stage:   StageSend,
			Code:    outcome.Code,
			Message: outcome.Message,
		}
	}
}

// sendOnce 토큰 획득(필요 시)과 발송 호출을 한 번 수행합니다.
func (d *Dispatcher) sendOnce(ctx context.Context, req *MessageRequest, recipients *RecipientSet) (SendOutcome, error) {
	var token string
	if d.tokenCache != nil {
		fetched, err := d.tokenCache.GetToken(ctx, d.tokenFetcher)
		if err != nil {
			return SendOutcome{}, newDispatchError(DispatchErrorAuthFailed, StageToken, "접근 토큰 발급에 실패했습니다", err)
		}
		token = fetched
	}

	outcome, err := d.client.Send(ctx, req, recipients, token)
	if err != nil {
		return SendOutcome{}, newDispatchError(DispatchErrorTransportFailure, StageSend, "메시지 발송 중 전송 오류가 발생했습니다", err)
	}

	return outcome, nil
}
