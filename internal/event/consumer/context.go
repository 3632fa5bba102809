package consumer

import (
	"context"
	"encoding/json"

	"github.com/NARUBROWN/tether/core"
)

// MethodConsume은 Consumer 실행을 라우팅하기 위한 의사(pseudo) 메서드입니다.
const MethodConsume = "CONSUME"

// TopicPath는 topic을 라우트 경로로 변환합니다.
func TopicPath(topic string) string {
	return "/" + topic
}

// requestContext는 메시지 하나의 실행 모델입니다. core.ExecutionContext 구현체.
type requestContext struct {
	ctx      context.Context
	msg      Message
	eventBus core.EventBus
	store    map[string]any
}

func NewRequestContext(ctx context.Context, msg Message, eventBus core.EventBus) core.ExecutionContext {
	return &requestContext{
		ctx:      ctx,
		msg:      msg,
		eventBus: eventBus,
		store:    make(map[string]any),
	}
}

func (c *requestContext) Context() context.Context { return c.ctx }
func (c *requestContext) EventBus() core.EventBus  { return c.eventBus }
func (c *requestContext) Method() string           { return MethodConsume }
func (c *requestContext) Path() string             { return TopicPath(c.msg.EventName) }

func (c *requestContext) Params() map[string]string {
	if raw, ok := c.store[core.StoreKeyParams]; ok {
		if m, ok := raw.(map[string]string); ok {
			return m
		}
	}
	return map[string]string{}
}

func (c *requestContext) Header(name string) string { return "" }

func (c *requestContext) PathKeys() []string {
	if raw, ok := c.store[core.StoreKeyPathKeys]; ok {
		if keys, ok := raw.([]string); ok {
			return keys
		}
	}
	return nil
}

func (c *requestContext) Queries() map[string][]string { return map[string][]string{} }

// Bind는 메시지 페이로드를 JSON으로 역직렬화합니다.
func (c *requestContext) Bind(out any) error {
	return json.Unmarshal(c.msg.Payload, out)
}

func (c *requestContext) Set(key string, value any) { c.store[key] = value }

func (c *requestContext) Get(key string) (any, bool) {
	v, ok := c.store[key]
	return v, ok
}
