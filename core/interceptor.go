package core

import (
	"errors"
	"reflect"
)

// ErrAbortPipeline은 Interceptor가 의도적으로 요청 처리를 종료했음을 알리는 신호입니다.
// 이 에러를 반환한 Interceptor는 이미 응답을 작성했어야 합니다.
var ErrAbortPipeline = errors.New("tether: pipeline aborted")

// Interceptor는 Action 실행 전후에 개입하는 훅 계약입니다.
type Interceptor interface {
	// PreHandle은 Action 실행 전에 호출됩니다.
	// 에러를 반환하면 Action은 호출되지 않습니다.
	PreHandle(ctx ExecutionContext, meta HandlerMeta) error
	// PostHandle은 Action이 정상 종료된 뒤 역순으로 호출됩니다.
	PostHandle(ctx ExecutionContext, meta HandlerMeta)
	// AfterCompletion은 성공/실패와 무관하게 항상 역순으로 호출됩니다.
	AfterCompletion(ctx ExecutionContext, meta HandlerMeta, err error)
}

// HandlerMeta는 Router가 결정한 실행 대상입니다.
type HandlerMeta struct {
	ControllerType reflect.Type
	Method         reflect.Method

	// Action은 컨트롤러 메서드 이름입니다. 라우트 범위 지정에 사용됩니다.
	Action string

	// 라우트에 바인딩된 Interceptor 목록
	Interceptors []Interceptor
}
