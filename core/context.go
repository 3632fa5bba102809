package core

import (
	"context"
)

type ContextCarrier interface {
	Context() context.Context
}

// ExecutionContext는 하나의 실행(요청/메시지)이 끝날 때까지 Pipeline이 사용하는 실행 모델입니다.
// HTTP, WebSocket, Consumer 등 모든 Transport가 이 계약을 구현합니다.
type ExecutionContext interface {
	ContextCarrier

	// 실행 중 발생한 도메인 이벤트 수집용
	EventBus() EventBus

	Method() string
	Path() string
	Params() map[string]string
	Header(name string) string
	PathKeys() []string
	Queries() map[string][]string

	// body(또는 메시지 페이로드) 바인딩
	Bind(out any) error

	// 실행 범위 key/value 저장소
	Set(key string, value any)
	Get(key string) (any, bool)
}
