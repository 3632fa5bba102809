package hook

import (
	"context"
	"log"

	"github.com/NARUBROWN/tether/core"
	"github.com/NARUBROWN/tether/pkg/event/publish"
)

// Writer는 도메인 이벤트를 외부 브로커로 내보내는 계약입니다.
type Writer interface {
	Publish(ctx context.Context, event publish.DomainEvent) error
	Close() error
}

/*
PublishHook은 Action이 정상 종료된 경우에만 EventBus를 비우고
수집된 이벤트를 구성된 모든 Writer로 내보냅니다.

발행 실패는 요청 실패로 번지지 않고 로그로만 남습니다.
*/
type PublishHook struct {
	writers []Writer
}

func NewPublishHook(writers ...Writer) *PublishHook {
	return &PublishHook{writers: writers}
}

func (h *PublishHook) AfterExecution(ctx core.ExecutionContext, results []any, err error) {
	if err != nil {
		// 실패한 실행의 이벤트는 방출하지 않는다.
		return
	}

	bus := ctx.EventBus()
	if bus == nil {
		return
	}

	for _, event := range bus.Drain() {
		for _, w := range h.writers {
			if pubErr := w.Publish(ctx.Context(), event); pubErr != nil {
				log.Printf("[Event] 이벤트 발행 실패 (%s): %v", event.Name(), pubErr)
			}
		}
	}
}
