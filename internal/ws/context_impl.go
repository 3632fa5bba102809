package ws

import (
	"context"
	"encoding/json"

	"github.com/NARUBROWN/tether/core"
	pkgws "github.com/NARUBROWN/tether/pkg/ws"
)

// MethodWS는 WebSocket 메시지 실행을 라우팅하기 위한 의사(pseudo) 메서드입니다.
const MethodWS = "WS"

type senderFunc func(messageType int, data []byte) error

func (f senderFunc) Send(messageType int, data []byte) error {
	return f(messageType, data)
}

// wsContext는 WebSocket 메시지 하나의 실행 모델입니다. core.ExecutionContext 구현체.
type wsContext struct {
	ctx      context.Context
	path     string
	msgType  int
	payload  []byte
	eventBus core.EventBus
	store    map[string]any
}

func NewWSExecutionContext(
	parent context.Context,
	connID string,
	path string,
	msgType int,
	payload []byte,
	eventBus core.EventBus,
	send senderFunc,
) core.ExecutionContext {
	// 핸들러가 pkgws.Send로 응답을 보낼 수 있도록 Sender를 심는다.
	ctx := context.WithValue(parent, pkgws.SenderKey, pkgws.Sender(send))

	c := &wsContext{
		ctx:      ctx,
		path:     path,
		msgType:  msgType,
		payload:  payload,
		eventBus: eventBus,
		store:    make(map[string]any),
	}
	c.store[core.StoreKeyConnID] = pkgws.ConnID(connID)
	return c
}

func (c *wsContext) Context() context.Context { return c.ctx }
func (c *wsContext) EventBus() core.EventBus  { return c.eventBus }
func (c *wsContext) Method() string           { return MethodWS }
func (c *wsContext) Path() string             { return c.path }

func (c *wsContext) Params() map[string]string {
	if raw, ok := c.store[core.StoreKeyParams]; ok {
		if m, ok := raw.(map[string]string); ok {
			return m
		}
	}
	return map[string]string{}
}

func (c *wsContext) Header(name string) string { return "" }

func (c *wsContext) PathKeys() []string {
	if raw, ok := c.store[core.StoreKeyPathKeys]; ok {
		if keys, ok := raw.([]string); ok {
			return keys
		}
	}
	return nil
}

func (c *wsContext) Queries() map[string][]string { return map[string][]string{} }

// Bind는 메시지 페이로드를 JSON으로 역직렬화합니다.
func (c *wsContext) Bind(out any) error {
	return json.Unmarshal(c.payload, out)
}

func (c *wsContext) Set(key string, value any) { c.store[key] = value }

func (c *wsContext) Get(key string) (any, bool) {
	v, ok := c.store[key]
	return v, ok
}
