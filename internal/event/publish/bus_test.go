package publish

import (
	"testing"
	"time"

	pub "github.com/NARUBROWN/tether/pkg/event/publish"
)

type testEvent struct {
	name string
	at   time.Time
}

func (e testEvent) Name() string          { return e.name }
func (e testEvent) OccurredAt() time.Time { return e.at }

func TestBus_PublishAndDrain(t *testing.T) {
	bus := NewBus()
	bus.Publish(testEvent{name: "a"})
	bus.Publish(testEvent{name: "b"}, testEvent{name: "c"})

	drained := bus.Drain()
	if len(drained) != 3 {
		t.Fatalf("발행한 이벤트 수가 예상과 다릅니다: %d", len(drained))
	}
	if drained[0].Name() != "a" || drained[1].Name() != "b" || drained[2].Name() != "c" {
		t.Fatalf("이벤트 순서가 발행 순서와 달라졌습니다: %v", drained)
	}
}

func TestBus_DrainClearsBuffer(t *testing.T) {
	bus := NewBus()
	bus.Publish(testEvent{name: "a"})

	bus.Drain()
	if got := bus.Drain(); len(got) != 0 {
		t.Fatalf("Drain 이후 버퍼는 비어 있어야 합니다: %v", got)
	}
}

var _ pub.DomainEvent = testEvent{}
