package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// hook 로그 이벤트를 파일 Writer와 콘솔 Writer로 분배하는 logrus Hook 구현체입니다.
//
// logrus의 기본 출력은 io.Discard로 비활성화하고, 모든 로그 처리를 이 Hook에 위임합니다.
// 파일 쓰기 실패와 콘솔 쓰기 실패를 분리하여, 콘솔 오류가 파일 로깅을 방해하지 않도록 합니다.
type hook struct {
	fileWriter    io.Writer // 로그 파일 기록용 Writer (lumberjack)
	consoleWriter io.Writer // 표준 출력(Stdout) Writer (활성화된 경우에만 설정)

	formatter Formatter

	mu sync.RWMutex // 로그 기록(Read Lock)과 종료 처리(Write Lock) 간의 동시성 제어

	closed bool // Hook의 종료 여부를 나타내며, true일 경우 모든 로그 기록 요청을 거부
}

// Levels 이 Hook이 수신할 로그 레벨의 집합을 반환합니다.
func (h *hook) Levels() []Level {
	return AllLevels
}

// Fire 발생한 로그 이벤트를 수신하여 파일과 콘솔 Writer에 기록합니다.
func (h *hook) Fire(entry *Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return nil
	}

	// 로그 포맷팅 (한 번만 수행하여 재사용)
	msg, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	// 콘솔 출력 실패는 전체 로깅 시스템의 가용성에 영향을 주지 않도록 에러를 전파하지 않습니다.
	if h.consoleWriter != nil {
		if _, err := h.consoleWriter.Write(msg); err != nil {
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-WARN] 표준 출력(Console) 쓰기 실패: %v\n", err)
		}
	}

	if h.fileWriter != nil {
		if _, err := h.fileWriter.Write(msg); err != nil {
			return err
		}
	}

	return nil
}

// close Hook을 종료 상태로 전환하여 이후의 모든 로그 기록 요청을 거부합니다.
// Closer가 파일 핸들을 닫은 뒤에 Write가 호출되는 것을 방지합니다.
func (h *hook) close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
}
