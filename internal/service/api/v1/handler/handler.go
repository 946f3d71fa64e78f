// Package handler v1 API의 HTTP 요청 핸들러를 제공합니다.
//
// 이 패키지는 HTTP 요청을 받아 검증하고, 메시지 발송 로직을 호출한 후,
// 적절한 HTTP 응답을 반환하는 핸들러 함수들을 포함합니다.
package handler

import (
	"context"
	"fmt"

	apperrors "github.com/darkkaiser/wework-notify/internal/pkg/errors"
	"github.com/darkkaiser/wework-notify/internal/service/api/httputil"
	"github.com/darkkaiser/wework-notify/internal/service/wework"
	applog "github.com/darkkaiser/wework-notify/pkg/log"
	"github.com/labstack/echo/v4"
)

// componentHandler v1 핸들러의 로깅용 컴포넌트 이름
const componentHandler = "api.v1.handler"

// paramEntryID 발송 채널을 선택하는 요청 필드 이름
const paramEntryID = "entry_id"

// MessageDispatcher 메시지 발송 기능을 추상화한 인터페이스입니다.
type MessageDispatcher interface {
	// Dispatch 지정된 채널로 메시지를 발송합니다.
	Dispatch(ctx context.Context, entryID string, params map[string]any) (wework.SendOutcome, error)
}

// Handler v1 API 요청을 처리하고 메시지 발송 로직을 연결하는 핸들러입니다.
type Handler struct {
	// dispatcher 메시지 발송을 담당하는 서비스
	dispatcher MessageDispatcher
}

// NewHandler Handler 인스턴스를 생성합니다.
//
// Panics:
//   - dispatcher가 nil인 경우
func NewHandler(dispatcher MessageDispatcher) *Handler {
	if dispatcher == nil {
		panic("MessageDispatcher는 필수입니다")
	}

	return &Handler{
		dispatcher: dispatcher,
	}
}

// SendMessageHandler 메시지 발송 요청을 처리합니다.
//
// 요청 본문은 entry_id와 발송 옵션 필드(message_type, message, to_user 등)를 담은
// JSON 객체이며, entry_id로 선택된 채널을 통해 메시지를 발송합니다.
func (h *Handler) SendMessageHandler(c echo.Context) error {
	// 1. 요청 바인딩
	var body map[string]any
	if err := c.Bind(&body); err != nil {
		return httputil.NewBadRequestError("잘못된 요청 형식입니다")
	}
	if len(body) == 0 {
		return httputil.NewBadRequestError("요청 본문이 비어있습니다")
	}

	// 2. 발송 채널 식별자 추출
	entryID, _ := body[paramEntryID].(string)
	if entryID == "" {
		return httputil.NewBadRequestError("entry_id 필드가 필요합니다")
	}
	delete(body, paramEntryID)

	// 3. 메시지 발송
	outcome, err := h.dispatcher.Dispatch(c.Request().Context(), entryID, body)
	if err != nil {
		return h.translateDispatchError(c, entryID, err)
	}

	h.log(c).WithFields(applog.Fields{
		"entry_id": entryID,
		"status":   outcome.Status,
	}).Info("메시지 발송 요청 성공")

	// 4. 성공 응답
	return httputil.Success(c)
}

// translateDispatchError 발송 실패 에러를 HTTP 에러 응답으로 변환합니다.
func (h *Handler) translateDispatchError(c echo.Context, entryID string, err error) error {
	h.log(c).WithFields(applog.Fields{
		"entry_id": entryID,
		"error":    err,
	}).Warn("메시지 발송 요청 실패")

	if kind, ok := wework.DispatchErrorKindOf(err); ok {
		switch kind {
		case wework.DispatchErrorInvalidRequest:
			return httputil.NewBadRequestError(fmt.Sprintf("발송 요청이 유효하지 않습니다: %v", err))
		case wework.DispatchErrorAuthFailed, wework.DispatchErrorAuthRejected:
			return httputil.NewBadGatewayError("플랫폼 인증에 실패했습니다. 채널의 자격 증명 설정을 확인해주세요.")
		case wework.DispatchErrorRemoteFailure:
			return httputil.NewBadGatewayError(fmt.Sprintf("플랫폼이 발송을 거부했습니다: %v", err))
		case wework.DispatchErrorTransportFailure:
			return httputil.NewGatewayTimeoutError("플랫폼 호출에 실패했습니다. 잠시 후 다시 시도해주세요.")
		}
	}

	switch apperrors.GetType(err) {
	case apperrors.NotFound:
		return httputil.NewNotFoundError(fmt.Sprintf("등록되지 않은 채널입니다: '%s'", entryID))
	case apperrors.InvalidInput:
		return httputil.NewBadRequestError(fmt.Sprintf("발송 요청이 유효하지 않습니다: %v", err))
	default:
		return httputil.NewInternalServerError("메시지 발송 처리 중 오류가 발생했습니다")
	}
}

// log 공통 로깅 필드가 설정된 로거 엔트리를 반환합니다.
func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(componentHandler, applog.Fields{
		"endpoint": c.Path(),
	})
}
