package publish

import (
	"sync"

	"github.com/NARUBROWN/tether/pkg/event/publish"
)

// Bus는 실행 범위의 도메인 이벤트 수집기입니다. core.EventBus 구현체.
type Bus struct {
	mu     sync.Mutex
	events []publish.DomainEvent
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) Publish(events ...publish.DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, events...)
}

// Drain은 수집된 이벤트를 반환하고 버퍼를 비웁니다.
func (b *Bus) Drain() []publish.DomainEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	drained := b.events
	b.events = nil
	return drained
}
