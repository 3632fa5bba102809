package hook

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NARUBROWN/tether/core"
	internalPublish "github.com/NARUBROWN/tether/internal/event/publish"
	"github.com/NARUBROWN/tether/pkg/event/publish"
)

type testEvent struct {
	name string
}

func (e testEvent) Name() string          { return e.name }
func (e testEvent) OccurredAt() time.Time { return time.Now() }

type fakeWriter struct {
	published []publish.DomainEvent
	err       error
	closed    bool
}

func (w *fakeWriter) Publish(ctx context.Context, event publish.DomainEvent) error {
	if w.err != nil {
		return w.err
	}
	w.published = append(w.published, event)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

type fakeExecutionContext struct {
	bus core.EventBus
}

func (c *fakeExecutionContext) Context() context.Context     { return context.Background() }
func (c *fakeExecutionContext) EventBus() core.EventBus      { return c.bus }
func (c *fakeExecutionContext) Method() string               { return "" }
func (c *fakeExecutionContext) Path() string                 { return "" }
func (c *fakeExecutionContext) Params() map[string]string    { return nil }
func (c *fakeExecutionContext) Header(name string) string    { return "" }
func (c *fakeExecutionContext) PathKeys() []string           { return nil }
func (c *fakeExecutionContext) Queries() map[string][]string { return nil }
func (c *fakeExecutionContext) Bind(out any) error           { return nil }
func (c *fakeExecutionContext) Set(key string, value any)    {}
func (c *fakeExecutionContext) Get(key string) (any, bool)   { return nil, false }

func TestPublishHook_DrainsEventsOnSuccess(t *testing.T) {
	bus := internalPublish.NewBus()
	bus.Publish(testEvent{name: "order.created"}, testEvent{name: "order.paid"})

	writer := &fakeWriter{}
	hook := NewPublishHook(writer)

	hook.AfterExecution(&fakeExecutionContext{bus: bus}, nil, nil)

	if len(writer.published) != 2 {
		t.Fatalf("수집된 이벤트가 모두 발행되어야 합니다: %d", len(writer.published))
	}
	if writer.published[0].Name() != "order.created" {
		t.Fatalf("발행 순서가 수집 순서와 달라졌습니다: %v", writer.published)
	}
	if got := bus.Drain(); len(got) != 0 {
		t.Fatal("발행 후 EventBus는 비어 있어야 합니다")
	}
}

func TestPublishHook_SkipsEventsOnFailure(t *testing.T) {
	bus := internalPublish.NewBus()
	bus.Publish(testEvent{name: "order.created"})

	writer := &fakeWriter{}
	hook := NewPublishHook(writer)

	hook.AfterExecution(&fakeExecutionContext{bus: bus}, nil, errors.New("action failed"))

	if len(writer.published) != 0 {
		t.Fatalf("실패한 실행의 이벤트는 발행되면 안 됩니다: %v", writer.published)
	}
	if got := bus.Drain(); len(got) != 1 {
		t.Fatal("실패한 실행의 이벤트는 버스에 남아 있어야 합니다")
	}
}

func TestPublishHook_WriterErrorDoesNotPanic(t *testing.T) {
	bus := internalPublish.NewBus()
	bus.Publish(testEvent{name: "order.created"})

	failing := &fakeWriter{err: errors.New("broker down")}
	healthy := &fakeWriter{}
	hook := NewPublishHook(failing, healthy)

	hook.AfterExecution(&fakeExecutionContext{bus: bus}, nil, nil)

	// 한 Writer의 실패가 다른 Writer의 발행을 막지 않는다.
	if len(healthy.published) != 1 {
		t.Fatalf("정상 Writer는 이벤트를 발행해야 합니다: %d", len(healthy.published))
	}
}
