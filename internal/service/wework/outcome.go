package wework

// OutcomeStatus 플랫폼 발송 호출 한 번의 결과 분류입니다.
type OutcomeStatus string

const (
	// OutcomeDelivered 플랫폼이 메시지를 정상 수신함
	OutcomeDelivered OutcomeStatus = "delivered"

	// OutcomeTokenInvalid 플랫폼이 접근 토큰을 무효로 판정함
	// 이 경우에만 토큰 캐시 무효화 후 1회 재시도가 수행됩니다.
	OutcomeTokenInvalid OutcomeStatus = "token_invalid"

	// OutcomeRemoteError 플랫폼이 토큰 이외의 사유로 발송을 거부함
	OutcomeRemoteError OutcomeStatus = "remote_error"
)

// SendOutcome 플랫폼 발송 호출 한 번의 결과입니다.
type SendOutcome struct {
	// Status 결과 분류
	Status OutcomeStatus

	// Code 플랫폼이 보고한 오류 코드 (정상 수신 시 0)
	Code int64

	// Message 플랫폼이 보고한 오류 메시지
	Message string
}

// Delivered 메시지가 정상 수신되었는지 여부를 반환합니다.
func (o SendOutcome) Delivered() bool {
	return o.Status == OutcomeDelivered
}
