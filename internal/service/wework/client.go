package wework

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apperrors "github.com/darkkaiser/wework-notify/internal/pkg/errors"
	"github.com/tidwall/gjson"
)

// BackendClient 발송 채널별 프로토콜 세부사항을 추상화한 인터페이스입니다.
//
// 채널 종류는 app과 bot 두 가지로 닫혀 있으며, 새로운 종류의 추가는 상정하지 않습니다.
type BackendClient interface {
	// Kind 이 클라이언트가 담당하는 채널 종류를 반환합니다.
	Kind() EntryKind

	// Send 검증된 메시지를 플랫폼으로 발송하고 결과를 해석하여 반환합니다.
	// token은 app 채널에서만 사용되며 bot 채널에서는 무시됩니다.
	//
	// 반환되는 error는 전송 계층의 실패만을 의미합니다.
	// 플랫폼이 보고한 오류는 SendOutcome을 통해 전달됩니다.
	Send(ctx context.Context, req *MessageRequest, recipients *RecipientSet, token string) (SendOutcome, error)
}

// platformResponse 플랫폼 API 응답의 공통 필드입니다.
type platformResponse struct {
	// Code 플랫폼 오류 코드 (0이면 성공)
	Code int64

	// Message 플랫폼 오류 메시지
	Message string

	// AccessToken 발급된 접근 토큰 (토큰 발급 응답에서만 존재)
	AccessToken string

	// ExpiresIn 접근 토큰 유효기간(초) (토큰 발급 응답에서만 존재)
	ExpiresIn int64
}

// callPlatform 플랫폼 API를 호출하고 응답의 공통 필드를 파싱하여 반환합니다.
// payload가 nil이 아니면 JSON 본문과 함께 POST, nil이면 GET으로 호출합니다.
func callPlatform(ctx context.Context, fetcher Fetcher, url string, payload any) (platformResponse, error) {
	var (
		method string
		body   io.Reader
	)
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return platformResponse{}, apperrors.Wrap(err, apperrors.Internal, "플랫폼 요청 본문 생성에 실패했습니다")
		}
		method = http.MethodPost
		body = bytes.NewReader(data)
	} else {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return platformResponse{}, apperrors.Wrap(err, apperrors.Internal, "플랫폼 요청 생성에 실패했습니다")
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
	}

	resp, err := fetcher.Do(req)
	if err != nil {
		return platformResponse{}, apperrors.Wrap(err, apperrors.Unavailable, "플랫폼 호출에 실패했습니다")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return platformResponse{}, apperrors.Wrap(err, apperrors.Unavailable, "플랫폼 응답을 읽는데 실패했습니다")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return platformResponse{}, apperrors.New(apperrors.Unavailable, fmt.Sprintf("플랫폼이 비정상 상태 코드를 반환했습니다(HTTP %d)", resp.StatusCode))
	}

	if !gjson.ValidBytes(respBody) {
		return platformResponse{}, apperrors.New(apperrors.ParsingFailed, "플랫폼 응답이 유효한 JSON 형식이 아닙니다")
	}

	parsed := gjson.ParseBytes(respBody)
	return platformResponse{
		Code:        parsed.Get("errcode").Int(),
		Message:     parsed.Get("errmsg").String(),
		AccessToken: parsed.Get("access_token").String(),
		ExpiresIn:   parsed.Get("expires_in").Int(),
	}, nil
}

// outcomeFromResponse 플랫폼 응답의 오류 코드를 SendOutcome으로 변환합니다.
// tokenInvalidCodes에 포함된 코드는 토큰 무효로, 그 외의 0이 아닌 코드는 원격 오류로 분류합니다.
func outcomeFromResponse(resp platformResponse, tokenInvalidCodes map[int64]struct{}) SendOutcome {
	if resp.Code == 0 {
		return SendOutcome{Status: OutcomeDelivered}
	}

	if _, invalid := tokenInvalidCodes[resp.Code]; invalid {
		return SendOutcome{Status: OutcomeTokenInvalid, Code: resp.Code, Message: resp.Message}
	}

	return SendOutcome{Status: OutcomeRemoteError, Code: resp.Code, Message: resp.Message}
}
